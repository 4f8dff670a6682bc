package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/quiltanddrapes/fabrication-api/internal/service"
)

type ImageHandler struct {
	imageService *service.ImageService
	maxUploadMB  int64
	logger       *zap.Logger
}

func NewImageHandler(imageService *service.ImageService, maxUploadMB int64, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		maxUploadMB:  maxUploadMB,
		logger:       logger,
	}
}

// @Summary Upload a window photo
// @Tags Images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image to upload"
// @Success 201 {object} domain.UploadResponse
// @Failure 413 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /images [post]
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadMB*1024*1024)

	if err := r.ParseMultipartForm(h.maxUploadMB * 1024 * 1024); err != nil {
		respondWithError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File too large: maximum size is %dMB", h.maxUploadMB))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid upload: file field is required")
		return
	}
	defer file.Close()

	resp, err := h.imageService.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.logger.Error("failed to upload image", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	respondJSON(w, http.StatusCreated, resp)
}

// Retrieve streams a stored image. This route is public so the
// dashboard can put the URL straight into an img tag; the ids are
// unguessable.
//
// @Summary Retrieve a window photo
// @Tags Images
// @Produce image/jpeg
// @Param id path string true "Image ID"
// @Success 200
// @Failure 404 {object} domain.APIError
// @Router /images/gridfs/{id} [get]
func (h *ImageHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	reader, contentType, err := h.imageService.Download(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Image not found")
			return
		}
		h.logger.Error("failed to retrieve image", zap.Error(err), zap.String("image_id", id))
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve image")
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")

	_, _ = io.Copy(w, reader)
}

// @Summary Delete a window photo
// @Tags Images
// @Param id path string true "Image ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /images/gridfs/{id} [delete]
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.imageService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Image not found")
			return
		}
		h.logger.Error("failed to delete image", zap.Error(err), zap.String("image_id", id))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete image")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
