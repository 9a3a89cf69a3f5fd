package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abizer007/EcoThreads/internal/domain/entity"
	repo "github.com/abizer007/EcoThreads/internal/domain/repository"
)

const maxItemImages = 5

// ItemService owns listing creation and catalog reads. Elasticsearch
// indexing is best-effort: a nil client disables search without affecting
// the write path.
type ItemService struct {
	Repo         repo.ItemRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESItemsIndex string
}

func NewItemService(r repo.ItemRepository, logger *logrus.Logger, es *elasticsearch.Client, esItemsIndex string) *ItemService {
	return &ItemService{Repo: r, Logger: logger, ES: es, ESItemsIndex: esItemsIndex}
}

type CreateItemInput struct {
	Title       string
	Description string
	Category    string
	Size        string
	Condition   string
	Price       float64
	ListingType string
	Images      []string
}

// Create validates the listing and persists it for the authenticated seller.
// Donated items always store price 0, whatever the client sent.
func (s *ItemService) Create(ctx context.Context, sellerID string, in CreateItemInput) (*entity.Item, error) {
	if in.Title == "" || in.Category == "" || in.Condition == "" || in.ListingType == "" {
		return nil, fmt.Errorf("%w: title, category, condition, and listing type are required", ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if len(in.Images) > maxItemImages {
		return nil, fmt.Errorf("%w: at most %d images per item", ErrValidation, maxItemImages)
	}

	price := 0.0
	if in.ListingType == entity.ListingSell {
		price = in.Price
	}

	it := &entity.Item{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Size:        in.Size,
		Condition:   in.Condition,
		Price:       price,
		ListingType: in.ListingType,
		SellerID:    sellerID,
		Images:      in.Images,
		Status:      entity.StatusActive,
	}
	if err := s.Repo.Create(ctx, it); err != nil {
		return nil, err
	}

	_ = s.indexItem(ctx, it)
	return it, nil
}

func (s *ItemService) ListAll(ctx context.Context) ([]*entity.Item, error) {
	return s.Repo.ListAll(ctx)
}

func (s *ItemService) ListByCategory(ctx context.Context, category string) ([]*entity.Item, error) {
	return s.Repo.ListByCategory(ctx, category)
}

func (s *ItemService) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Item, error) {
	return s.Repo.ListBySeller(ctx, sellerID)
}

func (s *ItemService) indexItem(ctx context.Context, it *entity.Item) error {
	if s.ES == nil || s.ESItemsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":          it.ID,
		"title":       it.Title,
		"description": it.Description,
		"category":    it.Category,
		"condition":   it.Condition,
		"price":       it.Price,
		"listingType": it.ListingType,
		"sellerId":    it.SellerID,
		"created_at":  it.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESItemsIndex, DocumentID: it.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("item_id", it.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("item_id", it.ID).Warn("es index response error")
	}
	return nil
}

// Search performs a multi_match query over title, description and category.
// Returns an empty result when Elasticsearch is not configured.
func (s *ItemService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESItemsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "category"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESItemsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
