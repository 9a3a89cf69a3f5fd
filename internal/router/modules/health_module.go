package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/abizer007/EcoThreads/internal/interface/http"
)

// HealthModule exposes the liveness probe. Never rate limited.
type HealthModule struct{}

func NewHealthModule() *HealthModule { return &HealthModule{} }

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", handlers.Health)
}
