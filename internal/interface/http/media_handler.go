package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/abizer007/EcoThreads/internal/application"
	"github.com/abizer007/EcoThreads/pkg/response"
)

type MediaHandler struct {
	Svc    *application.MediaService
	Logger *logrus.Logger
}

func NewMediaHandler(svc *application.MediaService, logger *logrus.Logger) *MediaHandler {
	return &MediaHandler{Svc: svc, Logger: logger}
}

// Upload accepts a single multipart image under the "file" field and returns
// the stored object path and public URL.
func (h *MediaHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "file field is required", nil)
		return
	}

	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "failed to read file", nil)
		return
	}
	defer f.Close()

	uid := c.GetString("userID")
	contentType := fh.Header.Get("Content-Type")
	path, url, err := h.Svc.Upload(c.Request.Context(), uid, f, fh.Filename, contentType, fh.Size)
	if err != nil {
		if errors.Is(err, application.ErrValidation) {
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("upload failed")
		response.Error[any](c, http.StatusInternalServerError, "upload failed", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"path": path, "url": url}, "file uploaded", nil)
}
