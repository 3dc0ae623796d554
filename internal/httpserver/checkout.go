package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"medicare-gateway/internal/backend"
	"medicare-gateway/internal/domain"
)

// Shipping policy of the storefront: flat fee, waived above the free
// threshold. Amounts in cents.
const (
	shippingFeeCents       = 5000
	freeShippingAboveCents = 50000
)

type checkoutRequest struct {
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shippingAddress"`
}

type checkoutResponse struct {
	Order         *domain.Order `json:"order"`
	SubtotalCents int64         `json:"subtotalCents"`
	ShippingCents int64         `json:"shippingCents"`
	TotalCents    int64         `json:"totalCents"`
}

// checkoutHandler packages the cart as {medicineId, quantity} pairs and
// submits the order. Stock is not re-validated here; the order backend is
// the authority and its rejection is surfaced to the caller. The cart is
// cleared only after the backend accepts the order.
func checkoutHandler(orders orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cartFromContext(c)
		if store == nil {
			respondError(c, http.StatusInternalServerError, "cart unavailable")
			return
		}

		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request body")
			return
		}

		phone := strings.TrimSpace(req.Phone)
		address := strings.TrimSpace(req.ShippingAddress)
		switch {
		case phone == "":
			respondError(c, http.StatusBadRequest, "phone number is required")
			return
		case len(phone) < 10:
			respondError(c, http.StatusBadRequest, "phone number must be at least 10 digits")
			return
		case address == "":
			respondError(c, http.StatusBadRequest, "shipping address is required")
			return
		case len(address) < 10:
			respondError(c, http.StatusBadRequest, "please enter a complete address")
			return
		}

		items := store.Items()
		if len(items) == 0 {
			respondError(c, http.StatusBadRequest, "cart is empty")
			return
		}

		orderItems := make([]domain.OrderItem, 0, len(items))
		for _, it := range items {
			orderItems = append(orderItems, domain.OrderItem{
				MedicineID: it.ID,
				Quantity:   it.Quantity,
			})
		}

		subtotal := store.SubtotalCents()

		order, err := orders.Create(c.Request.Context(), c.GetHeader("Cookie"), backend.CreateOrderInput{
			Phone:           phone,
			ShippingAddress: address,
			OrderItems:      orderItems,
		})
		if err != nil {
			respondBackendError(c, err, "failed to create order")
			return
		}

		store.Clear()

		shipping := int64(shippingFeeCents)
		if subtotal > freeShippingAboveCents {
			shipping = 0
		}
		respondData(c, http.StatusCreated, checkoutResponse{
			Order:         order,
			SubtotalCents: subtotal,
			ShippingCents: shipping,
			TotalCents:    subtotal + shipping,
		})
	}
}
