package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/abizer007/EcoThreads/internal/application"
	"github.com/abizer007/EcoThreads/pkg/response"
	"github.com/abizer007/EcoThreads/pkg/validation"
)

type ItemHandler struct {
	Svc    *application.ItemService
	Logger *logrus.Logger
}

func NewItemHandler(svc *application.ItemService, logger *logrus.Logger) *ItemHandler {
	return &ItemHandler{Svc: svc, Logger: logger}
}

type createItemRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Size        string   `json:"size"`
	Condition   string   `json:"condition" binding:"required,oneof=new excellent good fair"`
	Price       float64  `json:"price" binding:"gte=0"`
	ListingType string   `json:"listingType" binding:"required,oneof=sell donate"`
	Images      []string `json:"images" binding:"max=5"`
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	sellerID := c.GetString("userID")
	it, err := h.Svc.Create(c.Request.Context(), sellerID, application.CreateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Size:        req.Size,
		Condition:   req.Condition,
		Price:       req.Price,
		ListingType: req.ListingType,
		Images:      req.Images,
	})
	if err != nil {
		if errors.Is(err, application.ErrValidation) {
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("item create failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create item", nil)
		return
	}
	response.Success(c, http.StatusCreated, it, "item created", nil)
}

func (h *ItemHandler) ListAll(c *gin.Context) {
	items, err := h.Svc.ListAll(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("item list failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to list items", nil)
		return
	}
	response.Success(c, http.StatusOK, items, "items", map[string]any{"count": len(items)})
}

func (h *ItemHandler) ListByCategory(c *gin.Context) {
	category := c.Param("category")
	items, err := h.Svc.ListByCategory(c.Request.Context(), category)
	if err != nil {
		h.Logger.WithError(err).Error("item list by category failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to list items", nil)
		return
	}
	response.Success(c, http.StatusOK, items, "items", map[string]any{"count": len(items), "category": category})
}

func (h *ItemHandler) ListBySeller(c *gin.Context) {
	sellerID := c.Param("sellerId")
	items, err := h.Svc.ListBySeller(c.Request.Context(), sellerID)
	if err != nil {
		h.Logger.WithError(err).Error("item list by seller failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to list items", nil)
		return
	}
	response.Success(c, http.StatusOK, items, "items", map[string]any{"count": len(items), "sellerId": sellerID})
}

func (h *ItemHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("item search failed")
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits), "q": q})
}
