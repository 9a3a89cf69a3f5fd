package entity

import (
	"math"
	"time"
)

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is an immutable rating a buyer leaves for a seller.
// BuyerName is a read-time enrichment and is never persisted.
type Review struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"sellerId"`
	BuyerID   string    `json:"buyerId"`
	ItemID    string    `json:"itemId,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	BuyerName string    `json:"buyerName,omitempty"`
}

// ValidRating reports whether r is within the inclusive [1,5] range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// RoundRating rounds a mean rating to one decimal place, half away from zero.
func RoundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
