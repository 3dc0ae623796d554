package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medicare-gateway/internal/domain"
)

func listMyOrdersHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := orders.ListMine(c.Request.Context(), c.GetHeader("Cookie"))
		if err != nil {
			respondBackendError(c, err, "failed to fetch orders")
			return
		}
		if out == nil {
			out = []domain.Order{}
		}
		respondData(c, http.StatusOK, out)
	}
}

func trackOrderHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, err := orders.Track(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondBackendError(c, err, "failed to track order")
			return
		}
		respondData(c, http.StatusOK, gin.H{
			"id":     order.ID,
			"status": order.Status,
		})
	}
}
