package domain

// CartItem is a single product entry in a shopper's cart. Display attributes
// (name, image, manufacturer) are carried through untouched; only price,
// quantity and the stock ceiling participate in cart logic.
type CartItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	PriceCents   int64  `json:"priceCents"`
	Quantity     int    `json:"quantity"`
	Stock        int    `json:"stock"`
}

// LineTotalCents is the item's contribution to the cart subtotal.
func (i CartItem) LineTotalCents() int64 {
	return i.PriceCents * int64(i.Quantity)
}
