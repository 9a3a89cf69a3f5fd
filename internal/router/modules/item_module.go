package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abizer007/EcoThreads/internal/container"
	handlers "github.com/abizer007/EcoThreads/internal/interface/http"
	"github.com/abizer007/EcoThreads/internal/interface/middleware"
	"github.com/abizer007/EcoThreads/pkg/helpers"
)

// ItemModule wires the catalog.
// Public: GET /items, GET /items/category/:category, GET /items/seller/:sellerId, GET /items/search
// Protected: POST /items
type ItemModule struct {
	Handler *handlers.ItemHandler
	JWT     *helpers.JWTManager
}

func NewItemModule(h *handlers.ItemHandler, jwt *helpers.JWTManager) *ItemModule {
	return &ItemModule{Handler: h, JWT: jwt}
}

func (m *ItemModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/items", browseLimiter, m.Handler.ListAll)
	rg.GET("/items/category/:category", browseLimiter, m.Handler.ListByCategory)
	rg.GET("/items/seller/:sellerId", browseLimiter, m.Handler.ListBySeller)
	rg.GET("/items/search", browseLimiter, m.Handler.Search)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/items", m.Handler.Create)
	}
}
