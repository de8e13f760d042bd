package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the in-memory view of a user's cart. It is built by LoadCart or
// assembled from cart detail records; it has no mutation methods.
type Cart struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	Contents []Product `json:"contents"`
	Cost     float64   `json:"cost"`
}

// CartRecord is one persisted cart detail row. Contents holds a JSON array
// of product ids, see ParseContents.
type CartRecord struct {
	ID        int64
	Username  string
	Contents  string
	CreatedAt time.Time
}

// TotalCost sums price amounts as they are. No currency conversion is done.
func TotalCost(products []Product) float64 {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price.Amount)
	}

	return total.InexactFloat64()
}
