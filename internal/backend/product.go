package backend

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"medicare-gateway/internal/domain"
)

// ProductClient wraps the backend's medicine catalog endpoints.
type ProductClient struct {
	c *Client
}

// NewProductClient builds a ProductClient on the shared plumbing.
func NewProductClient(c *Client) *ProductClient {
	return &ProductClient{c: c}
}

// productPayload is the backend's medicine shape before reshaping.
type productPayload struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	Manufacturer string    `json:"manufacturer"`
	CategoryID   string    `json:"categoryId"`
	Price        float64   `json:"price"`
	Stock        int       `json:"stock"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (p productPayload) toDomain() domain.Product {
	return domain.Product{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		ImageURL:     p.ImageURL,
		Manufacturer: p.Manufacturer,
		CategoryID:   p.CategoryID,
		PriceCents:   toCents(p.Price),
		Stock:        p.Stock,
		CreatedAt:    p.CreatedAt,
	}
}

// ListProductsQuery carries the shop page filters.
type ListProductsQuery struct {
	Search     string
	CategoryID string
	Page       int
	Limit      int
}

// productListPayload mirrors the backend's nested paging envelope
// (data.data holds the rows).
type productListPayload struct {
	Data  []productPayload `json:"data"`
	Total int              `json:"total"`
}

// List fetches catalog entries matching q.
func (pc *ProductClient) List(ctx context.Context, q ListProductsQuery) ([]domain.Product, int, error) {
	params := url.Values{}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.CategoryID != "" {
		params.Set("categoryId", q.CategoryID)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	path := "/medicine"
	if enc := params.Encode(); enc != "" {
		path += "?" + enc
	}

	var payload productListPayload
	if err := pc.c.do(ctx, "GET", path, "", nil, &payload); err != nil {
		return nil, 0, err
	}

	out := make([]domain.Product, 0, len(payload.Data))
	for _, p := range payload.Data {
		out = append(out, p.toDomain())
	}
	total := payload.Total
	if total == 0 {
		total = len(out)
	}
	return out, total, nil
}

// Get fetches a single catalog entry by ID.
func (pc *ProductClient) Get(ctx context.Context, id string) (*domain.Product, error) {
	var payload productPayload
	if err := pc.c.do(ctx, "GET", "/medicine/"+url.PathEscape(id), "", nil, &payload); err != nil {
		return nil, err
	}
	p := payload.toDomain()
	return &p, nil
}
