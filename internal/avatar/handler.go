// AngelaMos | 2026
// handler.go

package avatar

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bite-platform/bite-backend/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/{key}", h.Get)
}

// Get serves the raw image. Blobs are content-addressed and immutable,
// so the cache header is aggressive.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	blob, err := h.service.Get(r.Context(), key)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(blob.Size))
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck // nothing useful to do if the client hung up
	_, _ = w.Write(blob.Content)
}
