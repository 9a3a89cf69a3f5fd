package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewHandler_CreateAndAggregate(t *testing.T) {
	env := setupTestEnv(t)
	sellerID, _ := env.signup(t, "seller@example.com", "Seller")
	_, buyerToken := env.signup(t, "buyer@example.com", "Bea Buyer")

	for _, rating := range []int{5, 5, 4} {
		w := env.do(http.MethodPost, "/reviews", buyerToken, gin.H{
			"sellerId": sellerID,
			"rating":   rating,
			"comment":  "smooth transaction",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// Seller profile carries the updated aggregate.
	w := env.do(http.MethodGet, "/user/"+sellerID, buyerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.InDelta(t, 4.7, data["rating"], 0.001)
	assert.EqualValues(t, 3, data["total_reviews"])
}

func TestReviewHandler_Create_Unauthenticated(t *testing.T) {
	env := setupTestEnv(t)
	sellerID, _ := env.signup(t, "seller@example.com", "Seller")

	w := env.do(http.MethodPost, "/reviews", "", gin.H{
		"sellerId": sellerID,
		"rating":   5,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodGet, "/reviews/seller/"+sellerID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeDataList(t, w.Body.Bytes()))
}

func TestReviewHandler_Create_RatingOutOfRange(t *testing.T) {
	env := setupTestEnv(t)
	sellerID, _ := env.signup(t, "seller@example.com", "Seller")
	_, buyerToken := env.signup(t, "buyer@example.com", "Bea Buyer")

	for _, rating := range []int{0, 6} {
		w := env.do(http.MethodPost, "/reviews", buyerToken, gin.H{
			"sellerId": sellerID,
			"rating":   rating,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating=%d", rating)
	}
}

func TestReviewHandler_ListBySeller_PublicWithBuyerNames(t *testing.T) {
	env := setupTestEnv(t)
	sellerID, _ := env.signup(t, "seller@example.com", "Seller")
	_, buyerToken := env.signup(t, "buyer@example.com", "Bea Buyer")

	w := env.do(http.MethodPost, "/reviews", buyerToken, gin.H{
		"sellerId": sellerID,
		"rating":   4,
		"comment":  "as described",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodGet, "/reviews/seller/"+sellerID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	reviews := decodeDataList(t, w.Body.Bytes())
	require.Len(t, reviews, 1)
	assert.Equal(t, "Bea Buyer", reviews[0]["buyerName"])
	assert.EqualValues(t, 4, reviews[0]["rating"])
}
