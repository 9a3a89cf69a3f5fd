package kv

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/abizer007/EcoThreads/internal/domain/entity"
	"github.com/abizer007/EcoThreads/internal/domain/repository"
)

const ratingLockTTL = 5 * time.Second

// ReviewRepository persists reviews at review:{id} with a
// seller:{sellerId}:review:{reviewId} index, and owns the seller aggregate:
// every write recomputes rating and total_reviews from a full scan of the
// seller's reviews rather than folding the prior aggregate, so a lost or
// replayed update can never make the stored value drift from the data.
type ReviewRepository struct {
	store *Store
}

func NewReviewRepository(store *Store) *ReviewRepository {
	return &ReviewRepository{store: store}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *entity.Review) error {
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now().UTC()
	}

	// BuyerName is a read-time enrichment; never persist it.
	stored := *rv
	stored.BuyerName = ""
	if err := r.store.Set(ctx, reviewKey(rv.ID), &stored); err != nil {
		return err
	}
	if err := r.store.Set(ctx, sellerReviewKey(rv.SellerID, rv.ID), rv.ID); err != nil {
		return err
	}

	// Two concurrent reviews for one seller would otherwise both scan before
	// the other's write and the second write-back would win; the per-seller
	// lock serializes the recompute cycle.
	return r.store.WithLock(ctx, sellerRatingLockKey(rv.SellerID), ratingLockTTL, func() error {
		return r.recomputeSellerRating(ctx, rv.SellerID)
	})
}

func (r *ReviewRepository) recomputeSellerRating(ctx context.Context, sellerID string) error {
	reviews, err := r.loadSellerReviews(ctx, sellerID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	sum := 0
	for _, rv := range reviews {
		sum += rv.Rating
	}
	avg := entity.RoundRating(float64(sum) / float64(len(reviews)))

	seller := &entity.User{}
	found, err := GetJSON(ctx, r.store, userKey(sellerID), seller)
	if err != nil {
		return err
	}
	if !found {
		// Reviews for unknown sellers are recorded; the aggregate write-back
		// is a tolerated no-op, not an error.
		return nil
	}
	seller.Rating = avg
	seller.TotalReviews = len(reviews)
	seller.UpdatedAt = time.Now().UTC()
	return r.store.Set(ctx, userKey(sellerID), seller)
}

// ListBySeller returns the seller's reviews newest first, each enriched with
// the buyer's display name ("Anonymous" when the buyer record is missing).
func (r *ReviewRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Review, error) {
	reviews, err := r.loadSellerReviews(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	buyerKeys := make([]string, 0, len(reviews))
	seen := map[string]bool{}
	for _, rv := range reviews {
		if rv.BuyerID != "" && !seen[rv.BuyerID] {
			seen[rv.BuyerID] = true
			buyerKeys = append(buyerKeys, userKey(rv.BuyerID))
		}
	}
	rawBuyers, err := r.store.GetMany(ctx, buyerKeys)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rawBuyers))
	for _, raw := range rawBuyers {
		u := &entity.User{}
		if err := json.Unmarshal(raw, u); err != nil {
			continue
		}
		names[u.ID] = u.Name
	}

	for _, rv := range reviews {
		if name, ok := names[rv.BuyerID]; ok && name != "" {
			rv.BuyerName = name
		} else {
			rv.BuyerName = "Anonymous"
		}
	}

	sort.Slice(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (r *ReviewRepository) loadSellerReviews(ctx context.Context, sellerID string) ([]*entity.Review, error) {
	rawIDs, err := r.store.GetByPrefix(ctx, sellerReviewPrefix(sellerID))
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(rawIDs))
	for _, raw := range rawIDs {
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			continue
		}
		keys = append(keys, reviewKey(id))
	}
	raws, err := r.store.GetMany(ctx, keys)
	if err != nil {
		return nil, err
	}
	reviews := make([]*entity.Review, 0, len(raws))
	for _, raw := range raws {
		rv := &entity.Review{}
		if err := json.Unmarshal(raw, rv); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, nil
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)
