package handlers

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"
)

// StaticHandler serves the profile and link-relations documents that the
// hypermedia controls point at, plus the OpenAPI document for the
// Swagger UI.
type StaticHandler struct {
	root string
}

func NewStaticHandler(root string) *StaticHandler {
	return &StaticHandler{root: root}
}

func (h *StaticHandler) SendProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "profile")
	h.sendLocalFile(w, filepath.Join(h.root, "profiles", path.Base(name)+".html"), "text/html")
}

func (h *StaticHandler) SendLinkRelations(w http.ResponseWriter, r *http.Request) {
	h.sendLocalFile(w, filepath.Join(h.root, "link-relations.html"), "text/html")
}

func (h *StaticHandler) SendOpenAPI(w http.ResponseWriter, r *http.Request) {
	h.sendLocalFile(w, filepath.Join(h.root, "openapi.json"), "application/json")
}

func (h *StaticHandler) sendLocalFile(w http.ResponseWriter, filename, contentType string) {
	body, err := os.ReadFile(filename)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "Target file could not be read")
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
