package repository

import (
	"context"

	"github.com/abizer007/EcoThreads/internal/domain/entity"
)

// ItemRepository defines the interface for listing persistence.
// All list operations return only active items, newest first.
type ItemRepository interface {
	Create(ctx context.Context, it *entity.Item) error
	ListAll(ctx context.Context) ([]*entity.Item, error)
	ListByCategory(ctx context.Context, category string) ([]*entity.Item, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Item, error)
}
