package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abizer007/EcoThreads/internal/container"
	handlers "github.com/abizer007/EcoThreads/internal/interface/http"
	"github.com/abizer007/EcoThreads/internal/interface/middleware"
	"github.com/abizer007/EcoThreads/pkg/helpers"
)

// MediaModule wires image uploads.
// Protected: POST /upload
type MediaModule struct {
	Handler *handlers.MediaHandler
	JWT     *helpers.JWTManager
}

func NewMediaModule(h *handlers.MediaHandler, jwt *helpers.JWTManager) *MediaModule {
	return &MediaModule{Handler: h, JWT: jwt}
}

func (m *MediaModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 20, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/upload", m.Handler.Upload)
	}
}
