package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medicare-gateway/internal/domain"
)

// cartView is the cart payload served to display surfaces: the ordered
// items plus the derived selectors.
type cartView struct {
	Items         []domain.CartItem `json:"items"`
	SubtotalCents int64             `json:"subtotalCents"`
	TotalQuantity int               `json:"totalQuantity"`
}

func viewCart(c *gin.Context) (cartView, bool) {
	store := cartFromContext(c)
	if store == nil {
		respondError(c, http.StatusInternalServerError, "cart unavailable")
		return cartView{}, false
	}
	items := store.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartView{
		Items:         items,
		SubtotalCents: store.SubtotalCents(),
		TotalQuantity: store.TotalQuantity(),
	}, true
}

func getCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		view, ok := viewCart(c)
		if !ok {
			return
		}
		respondData(c, http.StatusOK, view)
	}
}

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// addCartItemHandler resolves the product against the catalog and merges it
// into the cart. Over-limit quantities are clamped, never rejected; the
// response carries a clamped flag so the UI can surface "can't add more"
// without the store itself raising errors.
func addCartItemHandler(products productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cartFromContext(c)
		if store == nil {
			respondError(c, http.StatusInternalServerError, "cart unavailable")
			return
		}

		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "productId required")
			return
		}
		if req.Quantity <= 0 {
			req.Quantity = 1
		}

		product, err := products.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			respondBackendError(c, err, "failed to fetch product")
			return
		}
		if product.Stock <= 0 {
			respondError(c, http.StatusConflict, "out of stock")
			return
		}

		var before int
		for _, it := range store.Items() {
			if it.ID == product.ID {
				before = it.Quantity
				break
			}
		}

		result := store.AddItem(domain.CartItem{
			ID:           product.ID,
			Name:         product.Name,
			ImageURL:     product.ImageURL,
			Manufacturer: product.Manufacturer,
			PriceCents:   product.PriceCents,
			Quantity:     req.Quantity,
			Stock:        product.Stock,
		})

		view, ok := viewCart(c)
		if !ok {
			return
		}
		respondData(c, http.StatusOK, gin.H{
			"cart":    view,
			"item":    result,
			"clamped": result.Quantity != before+req.Quantity,
		})
	}
}

func incrementCartItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cartFromContext(c)
		if store == nil {
			respondError(c, http.StatusInternalServerError, "cart unavailable")
			return
		}
		store.IncrementQuantity(c.Param("id"))
		view, ok := viewCart(c)
		if !ok {
			return
		}
		respondData(c, http.StatusOK, view)
	}
}

func decrementCartItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cartFromContext(c)
		if store == nil {
			respondError(c, http.StatusInternalServerError, "cart unavailable")
			return
		}
		store.DecrementQuantity(c.Param("id"))
		view, ok := viewCart(c)
		if !ok {
			return
		}
		respondData(c, http.StatusOK, view)
	}
}

func removeCartItemHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cartFromContext(c)
		if store == nil {
			respondError(c, http.StatusInternalServerError, "cart unavailable")
			return
		}
		store.RemoveItem(c.Param("id"))
		view, ok := viewCart(c)
		if !ok {
			return
		}
		respondData(c, http.StatusOK, view)
	}
}

func clearCartHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cartFromContext(c)
		if store == nil {
			respondError(c, http.StatusInternalServerError, "cart unavailable")
			return
		}
		store.Clear()
		view, ok := viewCart(c)
		if !ok {
			return
		}
		respondData(c, http.StatusOK, view)
	}
}
