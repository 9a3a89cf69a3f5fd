package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abizer007/EcoThreads/internal/domain/entity"
	repo "github.com/abizer007/EcoThreads/internal/domain/repository"
	"github.com/abizer007/EcoThreads/pkg/helpers"
	"github.com/abizer007/EcoThreads/pkg/mailer"
	tpl "github.com/abizer007/EcoThreads/pkg/mailer/templates"
)

// ReviewService owns review submission and per-seller review reads.
// The buyer identity always comes from the authenticated principal; the
// request body only names the seller being reviewed.
type ReviewService struct {
	Reviews     repo.ReviewRepository
	Users       repo.UserRepository
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewReviewService(reviews repo.ReviewRepository, users repo.UserRepository, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailEnabled bool) *ReviewService {
	return &ReviewService{Reviews: reviews, Users: users, Logger: logger, Pub: pub, MailEnabled: mailEnabled}
}

type CreateReviewInput struct {
	SellerID string
	ItemID   string
	Rating   int
	Comment  string
}

func (s *ReviewService) Create(ctx context.Context, buyerID string, in CreateReviewInput) (*entity.Review, error) {
	if in.SellerID == "" || !entity.ValidRating(in.Rating) {
		return nil, fmt.Errorf("%w: seller id and a rating between 1 and 5 are required", ErrValidation)
	}

	rv := &entity.Review{
		ID:        uuid.NewString(),
		SellerID:  in.SellerID,
		BuyerID:   buyerID,
		ItemID:    in.ItemID,
		Rating:    in.Rating,
		Comment:   in.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Reviews.Create(ctx, rv); err != nil {
		return nil, err
	}

	s.notifySeller(ctx, rv)
	return rv, nil
}

func (s *ReviewService) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Review, error) {
	return s.Reviews.ListBySeller(ctx, sellerID)
}

// notifySeller enqueues a review-received mail. Failures only log: a review
// is never rejected because the notification path is down.
func (s *ReviewService) notifySeller(ctx context.Context, rv *entity.Review) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	seller, err := s.Users.GetByID(ctx, rv.SellerID)
	if err != nil || seller.Email == "" {
		return
	}
	buyerName := "Anonymous"
	if buyer, err := s.Users.GetByID(ctx, rv.BuyerID); err == nil && buyer.Name != "" {
		buyerName = buyer.Name
	}
	job := mailer.EmailJob{
		To:       seller.Email,
		Template: tpl.ReviewReceived,
		Data: map[string]any{
			"BuyerName":    buyerName,
			"Rating":       rv.Rating,
			"Comment":      rv.Comment,
			"SellerRating": seller.Rating,
			"TotalReviews": seller.TotalReviews,
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("seller_id", rv.SellerID).Warn("enqueue review mail failed")
	}
}
