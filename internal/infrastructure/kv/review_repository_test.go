package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abizer007/EcoThreads/internal/domain/entity"
)

func setupReviewRepos(t *testing.T) (*ReviewRepository, *UserRepository) {
	t.Helper()
	store, _ := setupTestStore(t)
	return NewReviewRepository(store), NewUserRepository(store)
}

func newTestReview(id, sellerID, buyerID string, rating int, createdAt time.Time) *entity.Review {
	return &entity.Review{
		ID:        id,
		SellerID:  sellerID,
		BuyerID:   buyerID,
		Rating:    rating,
		Comment:   "as described",
		CreatedAt: createdAt,
	}
}

func TestReviewRepository_Create_RecomputesSellerRating(t *testing.T) {
	reviews, users := setupReviewRepos(t)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, newTestUser("s1", "seller@example.com", "Seller")))

	now := time.Now().UTC()
	for i, rating := range []int{5, 5, 4} {
		rv := newTestReview(string(rune('a'+i)), "s1", "b1", rating, now.Add(time.Duration(i)*time.Minute))
		require.NoError(t, reviews.Create(ctx, rv))
	}

	seller, err := users.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 4.7, seller.Rating)
	assert.Equal(t, 3, seller.TotalReviews)

	// A fourth review shifts the mean to 17/4 = 4.25 -> 4.3.
	require.NoError(t, reviews.Create(ctx, newTestReview("d", "s1", "b1", 3, now.Add(time.Hour))))
	seller, err = users.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 4.3, seller.Rating)
	assert.Equal(t, 4, seller.TotalReviews)
}

func TestReviewRepository_Create_MissingSeller_NoError(t *testing.T) {
	reviews, _ := setupReviewRepos(t)
	ctx := context.Background()

	err := reviews.Create(ctx, newTestReview("r1", "ghost", "b1", 5, time.Now().UTC()))
	require.NoError(t, err)

	// The review itself is still recorded.
	got, err := reviews.ListBySeller(ctx, "ghost")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestReviewRepository_ListBySeller_NewestFirstAndBuyerNames(t *testing.T) {
	reviews, users := setupReviewRepos(t)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, newTestUser("s1", "seller@example.com", "Seller")))
	require.NoError(t, users.Create(ctx, newTestUser("b1", "buyer@example.com", "Bea Buyer")))

	base := time.Now().UTC().Add(-time.Hour)
	require.NoError(t, reviews.Create(ctx, newTestReview("r1", "s1", "b1", 5, base)))
	require.NoError(t, reviews.Create(ctx, newTestReview("r2", "s1", "missing-buyer", 4, base.Add(time.Minute))))

	got, err := reviews.ListBySeller(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "r2", got[0].ID)
	assert.Equal(t, "Anonymous", got[0].BuyerName)
	assert.Equal(t, "r1", got[1].ID)
	assert.Equal(t, "Bea Buyer", got[1].BuyerName)
}

func TestReviewRepository_BuyerNameNotPersisted(t *testing.T) {
	reviews, _ := setupReviewRepos(t)
	ctx := context.Background()

	rv := newTestReview("r1", "s1", "b1", 5, time.Now().UTC())
	rv.BuyerName = "Should Not Stick"
	require.NoError(t, reviews.Create(ctx, rv))

	stored := &entity.Review{}
	found, err := GetJSON(ctx, reviews.store, reviewKey("r1"), stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Empty(t, stored.BuyerName)
}

func TestReviewRepository_ListBySeller_Empty(t *testing.T) {
	reviews, _ := setupReviewRepos(t)

	got, err := reviews.ListBySeller(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}
