package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abizer007/EcoThreads/internal/container"
	handlers "github.com/abizer007/EcoThreads/internal/interface/http"
	"github.com/abizer007/EcoThreads/internal/interface/middleware"
	"github.com/abizer007/EcoThreads/pkg/helpers"
)

// ReviewModule wires seller reviews.
// Public: GET /reviews/seller/:sellerId
// Protected: POST /reviews
type ReviewModule struct {
	Handler *handlers.ReviewHandler
	JWT     *helpers.JWTManager
}

func NewReviewModule(h *handlers.ReviewHandler, jwt *helpers.JWTManager) *ReviewModule {
	return &ReviewModule{Handler: h, JWT: jwt}
}

func (m *ReviewModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/reviews/seller/:sellerId", browseLimiter, m.Handler.ListBySeller)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/reviews", m.Handler.Create)
	}
}
