package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/abizer007/EcoThreads/internal/application"
	"github.com/abizer007/EcoThreads/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// GetByID returns a user's public profile, including the seller rating
// aggregate. The password hash never leaves the storage layer.
func (h *UserHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	u, err := h.Svc.GetProfile(c.Request.Context(), id)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "user profile", nil)
}

// Me returns the authenticated caller's own profile.
func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetString("userID")
	u, err := h.Svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, u.Public(), "profile", nil)
}
