package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medicare-gateway/internal/cart"
)

const (
	cartStoreKey  = "cartStore"
	cartCookieTTL = 60 * 60 * 24 * 7 // one week, matches a browsing session at most
)

// cartSessionMiddleware binds the request to the caller's cart store. The
// cart is keyed by an opaque cookie minted here on first contact; it is
// deliberately independent of the auth session, matching the browser-local
// cart of the storefront UI.
func cartSessionMiddleware(registry *cart.Registry, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := c.Cookie(cookieName)
		if err != nil || key == "" {
			key = cart.NewGuestKey()
			c.SetCookie(cookieName, key, cartCookieTTL, "/", "", false, true)
		}
		c.Set(cartStoreKey, registry.Get(key))
		c.Next()
	}
}

// cartFromContext returns the store bound by cartSessionMiddleware.
func cartFromContext(c *gin.Context) *cart.Store {
	v, ok := c.Get(cartStoreKey)
	if !ok {
		return nil
	}
	st, _ := v.(*cart.Store)
	return st
}

// logoutHandler drops the caller's cart and expires the cart cookie so the
// next visitor on this browser starts clean. The auth session itself is
// terminated against the auth backend by the UI.
func logoutHandler(registry *cart.Registry, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key, err := c.Cookie(cookieName); err == nil && key != "" {
			registry.Drop(key)
		}
		c.SetCookie(cookieName, "", -1, "/", "", false, true)
		c.Status(http.StatusNoContent)
	}
}
