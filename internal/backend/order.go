package backend

import (
	"context"
	"net/url"

	"medicare-gateway/internal/domain"
)

// OrderClient wraps the backend's order endpoints. All calls forward the
// caller's cookie so the order backend can attribute them to the session.
type OrderClient struct {
	c *Client
}

// NewOrderClient builds an OrderClient on the shared plumbing.
func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{c: c}
}

// CreateOrderInput is the order-creation payload: contact details plus the
// cart lines packaged as {medicineId, quantity} pairs.
type CreateOrderInput struct {
	Phone           string             `json:"phone"`
	ShippingAddress string             `json:"shippingAddress"`
	OrderItems      []domain.OrderItem `json:"orderItems"`
}

// Create submits a new order.
func (oc *OrderClient) Create(ctx context.Context, cookie string, in CreateOrderInput) (*domain.Order, error) {
	var order domain.Order
	if err := oc.c.do(ctx, "POST", "/api/order", cookie, in, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListMine fetches the caller's own orders.
func (oc *OrderClient) ListMine(ctx context.Context, cookie string) ([]domain.Order, error) {
	var orders []domain.Order
	if err := oc.c.do(ctx, "GET", "/api/orders/my-orders", cookie, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Track fetches a single order for status tracking.
func (oc *OrderClient) Track(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := oc.c.do(ctx, "GET", "/api/order/"+url.PathEscape(id), "", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
