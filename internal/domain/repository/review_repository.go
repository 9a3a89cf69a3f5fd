package repository

import (
	"context"

	"github.com/abizer007/EcoThreads/internal/domain/entity"
)

// ReviewRepository defines the interface for review persistence.
// Create also owns the seller aggregate: it recomputes the seller's rating
// and total_reviews from all persisted reviews and writes the user record back.
type ReviewRepository interface {
	Create(ctx context.Context, rv *entity.Review) error
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Review, error)
}
