package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"worldforge/internal/contextutil"
	"worldforge/internal/entity"
	"worldforge/internal/graph"
	"worldforge/internal/service"
	"worldforge/internal/storage"
)

// ProjectHandler handles HTTP requests for projects, their entities and
// relationship rows.
type ProjectHandler struct {
	worldService service.WorldService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(worldService service.WorldService) *ProjectHandler {
	return &ProjectHandler{worldService: worldService}
}

// CreateProjectRequest represents the HTTP request payload for a new project.
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProjectResponse represents a project in HTTP responses.
type ProjectResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

func toProjectResponse(p storage.ProjectRecord) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projects, err := h.worldService.ListProjects(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list projects")
		return
	}
	resp := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toProjectResponse(p))
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	project, err := h.worldService.CreateProject(ctx, req.Name, req.Description)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create project")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, toProjectResponse(project))
}

// newEntity returns an empty pointer to the variant of kind.
func newEntity(kind entity.Kind) entity.Entity {
	switch kind {
	case entity.KindCharacter:
		return &entity.Character{}
	case entity.KindLocation:
		return &entity.Location{}
	case entity.KindTimeline:
		return &entity.TimelineEvent{}
	case entity.KindMagic:
		return &entity.MagicSystem{}
	case entity.KindLore:
		return &entity.LoreEntry{}
	case entity.KindNote:
		return &entity.Note{}
	}
	return nil
}

// CreateEntity handles POST /api/projects/{projectID}/entities/{kind}.
// The body is the JSON form of the variant named by kind.
func (h *ProjectHandler) CreateEntity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	projectID, err := intParam(r, "projectID")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid project")
		return
	}
	kind, err := entity.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		handleServiceError(w, ctx, &service.ValidationError{Field: "kind", Message: "must be an entity type", Allowed: kindNames()}, "Invalid entity type")
		return
	}

	e := newEntity(kind)
	if err := json.NewDecoder(r.Body).Decode(e); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.worldService.CreateEntity(ctx, projectID, e); err != nil {
		handleServiceError(w, ctx, err, "Failed to create entity")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, e)
}

// DeleteEntity handles DELETE /api/projects/{projectID}/entities/{kind}/{entityID}.
func (h *ProjectHandler) DeleteEntity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projectID, err := intParam(r, "projectID")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid project")
		return
	}
	entityID, err := intParam(r, "entityID")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid entity")
		return
	}

	ref := entity.Ref{Kind: entity.Kind(chi.URLParam(r, "kind")), ID: entityID}
	if err := h.worldService.DeleteEntity(ctx, projectID, ref); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete entity")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RelationTables names the relationship tables accepted by CreateRelation.
var RelationTables = []string{
	"character-magic-systems",
	"timeline-event-characters",
	"character-relationships",
	"lore-entity-references",
	"location-hierarchies",
}

func decodeRelation[T service.Relation](body *json.Decoder) (service.Relation, error) {
	var v T
	if err := body.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// CreateRelation handles POST /api/projects/{projectID}/relations/{table}.
func (h *ProjectHandler) CreateRelation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	projectID, err := intParam(r, "projectID")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid project")
		return
	}

	body := json.NewDecoder(r.Body)
	var rel service.Relation
	switch table := chi.URLParam(r, "table"); table {
	case "character-magic-systems":
		rel, err = decodeRelation[graph.CharacterMagicSystem](body)
	case "timeline-event-characters":
		rel, err = decodeRelation[graph.TimelineEventCharacter](body)
	case "character-relationships":
		rel, err = decodeRelation[graph.CharacterRelationship](body)
	case "lore-entity-references":
		rel, err = decodeRelation[graph.LoreEntityReference](body)
	case "location-hierarchies":
		rel, err = decodeRelation[graph.LocationHierarchy](body)
	default:
		handleServiceError(w, ctx, &service.ValidationError{
			Field:   "table",
			Message: "unknown relationship table",
			Allowed: RelationTables,
		}, "Invalid relationship table")
		return
	}
	if err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.worldService.AddRelation(ctx, projectID, rel); err != nil {
		handleServiceError(w, ctx, err, "Failed to add relation")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, rel)
}
