package backend

import (
	"context"

	"medicare-gateway/internal/domain"
)

// CategoryClient wraps the backend's category endpoint.
type CategoryClient struct {
	c *Client
}

// NewCategoryClient builds a CategoryClient on the shared plumbing.
func NewCategoryClient(c *Client) *CategoryClient {
	return &CategoryClient{c: c}
}

// List fetches all shop categories.
func (cc *CategoryClient) List(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := cc.c.do(ctx, "GET", "/api/category", "", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
