package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"medicare-gateway/internal/backend"
	"medicare-gateway/internal/domain"
)

func listProductsHandler(products productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := backend.ListProductsQuery{
			Search:     c.Query("search"),
			CategoryID: c.Query("category"),
		}
		if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
			q.Page = page
		}
		if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
			q.Limit = limit
		}

		items, total, err := products.List(c.Request.Context(), q)
		if err != nil {
			respondBackendError(c, err, "failed to fetch products")
			return
		}
		if items == nil {
			items = []domain.Product{}
		}
		respondData(c, http.StatusOK, gin.H{"items": items, "total": total})
	}
}

func getProductHandler(products productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondBackendError(c, err, "failed to fetch product details")
			return
		}
		respondData(c, http.StatusOK, product)
	}
}

func listCategoriesHandler(categories categoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := categories.List(c.Request.Context())
		if err != nil {
			respondBackendError(c, err, "failed to fetch categories")
			return
		}
		if out == nil {
			out = []domain.Category{}
		}
		respondData(c, http.StatusOK, out)
	}
}
