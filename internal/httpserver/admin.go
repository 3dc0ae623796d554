package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medicare-gateway/internal/backend"
)

// The gate already guarantees only admins reach these routes; the backend
// additionally enforces the role from the forwarded cookie.

func listUsersHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := users.ListUsers(c.Request.Context(), c.GetHeader("Cookie"))
		if err != nil {
			respondBackendError(c, err, "failed to get all users")
			return
		}
		if out == nil {
			out = []backend.User{}
		}
		respondData(c, http.StatusOK, out)
	}
}

type updateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func updateUserStatusHandler(users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateUserStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "status required")
			return
		}
		user, err := users.UpdateUserStatus(c.Request.Context(), c.GetHeader("Cookie"), c.Param("id"), req.Status)
		if err != nil {
			respondBackendError(c, err, "failed to update user status")
			return
		}
		respondData(c, http.StatusOK, user)
	}
}
