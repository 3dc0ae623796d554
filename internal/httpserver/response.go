package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"medicare-gateway/internal/domain"
	"medicare-gateway/internal/gate"
)

// respondData wraps payloads in the same {"data": ...} envelope the backend
// uses, so display surfaces read one shape everywhere.
func respondData(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, gin.H{"data": payload})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondBackendError maps collaborator failures onto storefront statuses.
func respondBackendError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "unauthorized")
	default:
		respondError(c, http.StatusBadGateway, fallback)
	}
}

// pageHandler answers gate-protected page routes with a shell payload; the
// visual layer is rendered client-side and out of scope here.
func pageHandler(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := gin.H{"page": name}
		if session := gate.SessionFromContext(c.Request.Context()); session != nil {
			payload["user"] = session.User
		}
		c.JSON(http.StatusOK, payload)
	}
}
