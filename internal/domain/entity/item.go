package entity

import (
	"strings"
	"time"
)

// Listing types. Donated items always carry a price of 0.
const (
	ListingSell   = "sell"
	ListingDonate = "donate"
)

// Item lifecycle states. Items are never physically deleted.
const (
	StatusActive  = "active"
	StatusRemoved = "removed"
)

// Item conditions, best to worst.
const (
	ConditionNew       = "new"
	ConditionExcellent = "excellent"
	ConditionGood      = "good"
	ConditionFair      = "fair"
)

// Item is a clothing listing offered for sale or donation.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Size        string    `json:"size"`
	Condition   string    `json:"condition"`
	Price       float64   `json:"price"`
	ListingType string    `json:"listingType"`
	SellerID    string    `json:"sellerId"`
	Images      []string  `json:"images"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// InCategory reports whether the item matches the category, case-insensitively.
func (it *Item) InCategory(category string) bool {
	return strings.EqualFold(it.Category, category)
}
