package domain

import "time"

// Product is a catalog entry as served by the medicine backend, with the
// decimal price already converted to cents.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Manufacturer string    `json:"manufacturer,omitempty"`
	CategoryID   string    `json:"categoryId,omitempty"`
	PriceCents   int64     `json:"priceCents"`
	Stock        int       `json:"stock"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
}

// Category groups products for shop filtering.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}
