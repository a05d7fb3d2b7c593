package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"worldforge/internal/contextutil"
	"worldforge/internal/entity"
	"worldforge/internal/graph"
	"worldforge/internal/service"
)

// ConnectionHandler handles HTTP requests for entity connections and
// graph queries.
type ConnectionHandler struct {
	worldService service.WorldService
}

// NewConnectionHandler creates a new ConnectionHandler.
func NewConnectionHandler(worldService service.WorldService) *ConnectionHandler {
	return &ConnectionHandler{worldService: worldService}
}

// CreateConnectionRequest represents the HTTP request payload for a new connection.
//
// swagger:model CreateConnectionRequest
type CreateConnectionRequest struct {
	Source         entity.Ref `json:"source"`
	Target         entity.Ref `json:"target"`
	ConnectionType string     `json:"connectionType"`
	Description    string     `json:"description"`
}

// ConnectionTypesResponse lists the connection types permitted between two kinds.
//
// swagger:model ConnectionTypesResponse
type ConnectionTypesResponse struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Types  []string `json:"types"`
}

// ConnectionsResponse wraps a list of connections.
type ConnectionsResponse struct {
	Connections []graph.Connection `json:"connections"`
}

// EdgesResponse wraps a list of graph edges.
type EdgesResponse struct {
	Edges []graph.Edge `json:"edges"`
}

// Types handles GET /api/connection-types?source=&target=.
func (h *ConnectionHandler) Types(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	source := r.URL.Query().Get("source")
	target := r.URL.Query().Get("target")

	types, err := h.worldService.ConnectionTypes(ctx, source, target)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list connection types")
		return
	}
	writeJSON(ctx, w, http.StatusOK, ConnectionTypesResponse{Source: source, Target: target, Types: types})
}

// List handles GET /api/projects/{projectID}/connections.
func (h *ConnectionHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID, err := intParam(r, "projectID")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid project")
		return
	}

	conns, err := h.worldService.ListConnections(ctx, projectID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list connections")
		return
	}
	writeJSON(ctx, w, http.StatusOK, ConnectionsResponse{Connections: conns})
}

// Create handles POST /api/projects/{projectID}/connections.
func (h *ConnectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	projectID, err := intParam(r, "projectID")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid project")
		return
	}

	var req CreateConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	conn, err := h.worldService.AddConnection(ctx, projectID, service.AddConnectionRequest{
		Source:         req.Source,
		Target:         req.Target,
		ConnectionType: req.ConnectionType,
		Description:    req.Description,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to add connection")
		return
	}
	writeJSON(ctx, w, http.StatusCreated, conn)
}

// Delete handles DELETE /api/projects/{projectID}/connections/{connectionID}.
func (h *ConnectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID, err := intParam(r, "projectID")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid project")
		return
	}

	if err := h.worldService.DeleteConnection(ctx, projectID, chi.URLParam(r, "connectionID")); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete connection")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CharacterConnections handles GET /api/projects/{projectID}/characters/{characterID}/connections.
func (h *ConnectionHandler) CharacterConnections(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID, err := intParam(r, "projectID")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid project")
		return
	}
	characterID, err := intParam(r, "characterID")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid character")
		return
	}

	edges, err := h.worldService.CharacterConnections(ctx, projectID, characterID)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list character connections")
		return
	}
	writeJSON(ctx, w, http.StatusOK, EdgesResponse{Edges: edges})
}

// Network handles GET /api/projects/{projectID}/network?type=&id=&depth=.
// Depth defaults to 1.
func (h *ConnectionHandler) Network(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID, err := intParam(r, "projectID")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid project")
		return
	}
	root, err := refQuery(r, "type", "id")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid entity")
		return
	}

	depth := 1
	if raw := r.URL.Query().Get("depth"); raw != "" {
		depth, err = strconv.Atoi(raw)
		if err != nil {
			handleServiceError(w, ctx, &service.ValidationError{Field: "depth", Message: "must be an integer"}, "Invalid depth")
			return
		}
	}

	network, err := h.worldService.Network(ctx, projectID, root, depth)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to build network")
		return
	}
	writeJSON(ctx, w, http.StatusOK, network)
}

// Path handles GET /api/projects/{projectID}/path?from_type=&from_id=&to_type=&to_id=.
func (h *ConnectionHandler) Path(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projectID, err := intParam(r, "projectID")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid project")
		return
	}
	from, err := refQuery(r, "from_type", "from_id")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid entity")
		return
	}
	to, err := refQuery(r, "to_type", "to_id")
	if err != nil {
		handleServiceError(w, ctx, err, "Invalid entity")
		return
	}

	path, err := h.worldService.FindPath(ctx, projectID, from, to)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to find path")
		return
	}
	writeJSON(ctx, w, http.StatusOK, path)
}
