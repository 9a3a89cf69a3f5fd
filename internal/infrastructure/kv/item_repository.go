package kv

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/abizer007/EcoThreads/internal/domain/entity"
	"github.com/abizer007/EcoThreads/internal/domain/repository"
)

// ItemRepository persists listings at item:{id} and maintains the
// seller:{sellerId}:item:{itemId} secondary index, which ListBySeller reads
// so per-seller lookups cost only the seller's own items.
type ItemRepository struct {
	store *Store
}

func NewItemRepository(store *Store) *ItemRepository {
	return &ItemRepository{store: store}
}

func (r *ItemRepository) Create(ctx context.Context, it *entity.Item) error {
	now := time.Now().UTC()
	if it.CreatedAt.IsZero() {
		it.CreatedAt = now
	}
	it.UpdatedAt = now
	if it.Status == "" {
		it.Status = entity.StatusActive
	}
	if it.Images == nil {
		it.Images = []string{}
	}

	if err := r.store.Set(ctx, itemKey(it.ID), it); err != nil {
		return err
	}
	return r.store.Set(ctx, sellerItemKey(it.SellerID, it.ID), it.ID)
}

// ListAll returns every active item, newest first. Full scan of the item
// namespace on every call; fine at catalog sizes in the low thousands.
func (r *ItemRepository) ListAll(ctx context.Context) ([]*entity.Item, error) {
	return r.list(ctx, func(*entity.Item) bool { return true })
}

// ListByCategory returns active items whose category matches, case-insensitively.
func (r *ItemRepository) ListByCategory(ctx context.Context, category string) ([]*entity.Item, error) {
	return r.list(ctx, func(it *entity.Item) bool { return it.InCategory(category) })
}

func (r *ItemRepository) list(ctx context.Context, match func(*entity.Item) bool) ([]*entity.Item, error) {
	raws, err := r.store.GetByPrefix(ctx, itemPrefix)
	if err != nil {
		return nil, err
	}
	return decodeItems(raws, match)
}

// ListBySeller resolves the seller's items through the secondary index.
func (r *ItemRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Item, error) {
	rawIDs, err := r.store.GetByPrefix(ctx, sellerItemPrefix(sellerID))
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(rawIDs))
	for _, raw := range rawIDs {
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			continue
		}
		keys = append(keys, itemKey(id))
	}
	raws, err := r.store.GetMany(ctx, keys)
	if err != nil {
		return nil, err
	}
	return decodeItems(raws, func(*entity.Item) bool { return true })
}

func decodeItems(raws []json.RawMessage, match func(*entity.Item) bool) ([]*entity.Item, error) {
	items := make([]*entity.Item, 0, len(raws))
	for _, raw := range raws {
		it := &entity.Item{}
		if err := json.Unmarshal(raw, it); err != nil {
			return nil, err
		}
		if it.Status != entity.StatusActive {
			continue
		}
		if match(it) {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

var _ repository.ItemRepository = (*ItemRepository)(nil)
