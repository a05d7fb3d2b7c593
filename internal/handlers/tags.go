package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"worldforge/internal/contextutil"
	"worldforge/internal/service"
)

// TagHandler handles HTTP requests for tag recommendations.
type TagHandler struct {
	worldService service.WorldService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(worldService service.WorldService) *TagHandler {
	return &TagHandler{worldService: worldService}
}

// AnalyzeRequest represents the HTTP request payload for tag analysis.
//
// swagger:model AnalyzeRequest
type AnalyzeRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// CategoryTagsResponse lists the seed tags of a category.
//
// swagger:model CategoryTagsResponse
type CategoryTagsResponse struct {
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// Analyze handles POST /api/tags/analyze.
func (h *TagHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp := h.worldService.RecommendTags(ctx, service.TagRequest{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	writeJSON(ctx, w, http.StatusOK, resp)
}

// CategoryTags handles GET /api/tags/categories/{category}. Unknown
// categories have no seed tags.
func (h *TagHandler) CategoryTags(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	category := chi.URLParam(r, "category")
	writeJSON(ctx, w, http.StatusOK, CategoryTagsResponse{
		Category: category,
		Tags:     h.worldService.BaseTags(ctx, category),
	})
}
