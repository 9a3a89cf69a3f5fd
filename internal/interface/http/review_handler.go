package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/abizer007/EcoThreads/internal/application"
	"github.com/abizer007/EcoThreads/pkg/response"
	"github.com/abizer007/EcoThreads/pkg/validation"
)

type ReviewHandler struct {
	Svc    *application.ReviewService
	Logger *logrus.Logger
}

func NewReviewHandler(svc *application.ReviewService, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{Svc: svc, Logger: logger}
}

type createReviewRequest struct {
	SellerID string `json:"sellerId" binding:"required"`
	ItemID   string `json:"itemId"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	buyerID := c.GetString("userID")
	rv, err := h.Svc.Create(c.Request.Context(), buyerID, application.CreateReviewInput{
		SellerID: req.SellerID,
		ItemID:   req.ItemID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		if errors.Is(err, application.ErrValidation) {
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("review create failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to create review", nil)
		return
	}
	response.Success(c, http.StatusCreated, rv, "review created", nil)
}

func (h *ReviewHandler) ListBySeller(c *gin.Context) {
	sellerID := c.Param("sellerId")
	reviews, err := h.Svc.ListBySeller(c.Request.Context(), sellerID)
	if err != nil {
		h.Logger.WithError(err).Error("review list failed")
		response.Error[any](c, http.StatusInternalServerError, "failed to list reviews", nil)
		return
	}
	response.Success(c, http.StatusOK, reviews, "reviews", map[string]any{"count": len(reviews), "sellerId": sellerID})
}
