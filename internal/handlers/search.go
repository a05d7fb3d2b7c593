package handlers

import (
	"net/http"

	"worldforge/internal/contextutil"
	"worldforge/internal/search"
	"worldforge/internal/service"
)

// SearchHandler handles HTTP requests for cross-entity search.
type SearchHandler struct {
	worldService service.WorldService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(worldService service.WorldService) *SearchHandler {
	return &SearchHandler{worldService: worldService}
}

// SearchResponse represents the HTTP response payload for search.
//
// swagger:model SearchResponse
type SearchResponse struct {
	Query   string          `json:"query"`
	Results []search.Result `json:"results"`
}

// ServeHTTP handles HTTP requests for search.
//
// swagger:route GET /api/projects/{projectID}/search searchEntities
//
// Ranks every entity of the project against the query in the q parameter.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	projectID, err := intParam(r, "projectID")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid project")
		return
	}

	query := r.URL.Query().Get("q")
	results, err := h.worldService.Search(ctx, projectID, query)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to search entities")
		return
	}

	writeJSON(ctx, w, http.StatusOK, SearchResponse{Query: query, Results: results})
}
