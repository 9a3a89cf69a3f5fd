package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/abizer007/EcoThreads/config"
	"github.com/abizer007/EcoThreads/internal/domain/entity"
	"github.com/abizer007/EcoThreads/internal/domain/repository"
	"github.com/abizer007/EcoThreads/internal/infrastructure/kv"
	"github.com/abizer007/EcoThreads/pkg/helpers"
)

// seed loads a demo seller, buyer, a few listings, and a couple of reviews
// so the storefront has data to browse right after a fresh start.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	store := kv.NewStore(rdb)
	users := kv.NewUserRepository(store)
	items := kv.NewItemRepository(store)
	reviews := kv.NewReviewRepository(store)

	seller := seedUser(ctx, users, "seller@ecothreads.dev", "password123", "Demo Seller")
	buyer := seedUser(ctx, users, "buyer@ecothreads.dev", "password123", "Demo Buyer")

	listings := []*entity.Item{
		{
			Title:       "Vintage Denim Jacket",
			Description: "Lightly faded, classic fit.",
			Category:    "jackets",
			Size:        "M",
			Condition:   entity.ConditionGood,
			Price:       35,
			ListingType: entity.ListingSell,
		},
		{
			Title:       "Wool Winter Coat",
			Description: "Warm and barely worn.",
			Category:    "coats",
			Size:        "L",
			Condition:   entity.ConditionExcellent,
			Price:       60,
			ListingType: entity.ListingSell,
		},
		{
			Title:       "Kids T-Shirt Bundle",
			Description: "Five tees, mixed colors.",
			Category:    "kids",
			Size:        "6Y",
			Condition:   entity.ConditionFair,
			ListingType: entity.ListingDonate,
		},
	}
	for _, it := range listings {
		it.ID = uuid.NewString()
		it.SellerID = seller.ID
		if err := items.Create(ctx, it); err != nil {
			log.Fatalf("failed to seed item %q: %v", it.Title, err)
		}
		fmt.Printf("seeded item: id=%s title=%q\n", it.ID, it.Title)
	}

	for _, rating := range []int{5, 4} {
		rv := &entity.Review{
			ID:        uuid.NewString(),
			SellerID:  seller.ID,
			BuyerID:   buyer.ID,
			Rating:    rating,
			Comment:   "Smooth transaction, item as described.",
			CreatedAt: time.Now().UTC(),
		}
		if err := reviews.Create(ctx, rv); err != nil {
			log.Fatalf("failed to seed review: %v", err)
		}
	}
	fmt.Printf("seeded reviews for seller %s\n", seller.ID)
}

func seedUser(ctx context.Context, users *kv.UserRepository, email, password, name string) *entity.User {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}
	now := time.Now().UTC()
	u := &entity.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = users.Create(ctx, u)
	if errors.Is(err, repository.ErrAlreadyExists) {
		existing, gerr := users.GetByEmail(ctx, email)
		if gerr != nil {
			log.Fatalf("failed to load existing user %s: %v", email, gerr)
		}
		fmt.Printf("user exists: id=%s email=%s\n", existing.ID, email)
		return existing
	}
	if err != nil {
		log.Fatalf("failed to seed user %s: %v", email, err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", u.ID, email, password)
	return u
}
