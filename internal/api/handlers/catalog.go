package handlers

import (
	"net/http"
	"strings"

	"github.com/dom/rift-companion/internal/catalog"
	"github.com/dom/rift-companion/internal/domain"
	"github.com/dom/rift-companion/internal/service"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type ChampionsResponse struct {
	Champions []domain.Champion `json:"champions"`
	Version   string            `json:"version"`
}

type ItemsResponse struct {
	Items   []domain.Item `json:"items"`
	Version string        `json:"version"`
}

type RunesResponse struct {
	Runes   []domain.Rune `json:"runes"`
	Version string        `json:"version"`
}

// ListChampions handles GET /champions?q=&exclude=a,b
func (h *CatalogHandler) ListChampions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	var exclude []string
	if raw := r.URL.Query().Get("exclude"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				exclude = append(exclude, id)
			}
		}
	}

	champions, err := h.catalogService.SearchChampions(r.Context(), query, exclude)
	if err != nil {
		writeServiceError(w, "catalog.ListChampions", err)
		return
	}

	writeJSON(w, http.StatusOK, ChampionsResponse{Champions: champions, Version: catalog.Version})
}

func (h *CatalogHandler) GetChampion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	champion, err := h.catalogService.GetChampion(r.Context(), id)
	if err != nil {
		writeServiceError(w, "catalog.GetChampion", err)
		return
	}

	writeJSON(w, http.StatusOK, champion)
}

// ListItems handles GET /items?category=
func (h *CatalogHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	category := domain.ItemCategory(r.URL.Query().Get("category"))

	items, err := h.catalogService.ListItems(r.Context(), category)
	if err != nil {
		writeServiceError(w, "catalog.ListItems", err)
		return
	}

	writeJSON(w, http.StatusOK, ItemsResponse{Items: items, Version: catalog.Version})
}

func (h *CatalogHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.catalogService.GetItem(r.Context(), id)
	if err != nil {
		writeServiceError(w, "catalog.GetItem", err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *CatalogHandler) ListRunes(w http.ResponseWriter, r *http.Request) {
	runes, err := h.catalogService.ListRunes(r.Context())
	if err != nil {
		writeServiceError(w, "catalog.ListRunes", err)
		return
	}

	writeJSON(w, http.StatusOK, RunesResponse{Runes: runes, Version: catalog.Version})
}

// Sync re-seeds catalog storage. Mounted behind AdminAuth.
func (h *CatalogHandler) Sync(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.Sync(r.Context())
	if err != nil {
		writeServiceError(w, "catalog.Sync", err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
