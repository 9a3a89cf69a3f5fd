package kv

import "strings"

// Key naming conventions for the flat namespace. Prefix locality is the only
// index the store has, so these must not change between releases:
//
//	user:{id}                          user record
//	user:email:{email}                 email -> user id
//	item:{id}                          item record
//	seller:{sellerId}:item:{itemId}    seller -> item id
//	review:{id}                        review record
//	seller:{sellerId}:review:{reviewId} seller -> review id

const itemPrefix = "item:"

func userKey(id string) string { return "user:" + id }

func userEmailKey(email string) string {
	return "user:email:" + strings.ToLower(strings.TrimSpace(email))
}

func itemKey(id string) string { return itemPrefix + id }

func sellerItemKey(sellerID, itemID string) string {
	return "seller:" + sellerID + ":item:" + itemID
}

func sellerItemPrefix(sellerID string) string {
	return "seller:" + sellerID + ":item:"
}

func reviewKey(id string) string { return "review:" + id }

func sellerReviewKey(sellerID, reviewID string) string {
	return "seller:" + sellerID + ":review:" + reviewID
}

func sellerReviewPrefix(sellerID string) string {
	return "seller:" + sellerID + ":review:"
}

func sellerRatingLockKey(sellerID string) string {
	return "lock:seller:" + sellerID + ":rating"
}
