package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"worldforge/internal/contextutil"
	"worldforge/internal/entity"
	"worldforge/internal/service"
)

// --- Input types ---

type ListProjectsInput struct{}

type SearchEntitiesInput struct {
	ProjectID int    `json:"project_id" jsonschema:"ID of the project to search"`
	Query     string `json:"query" jsonschema:"Search text; matched case-insensitively against names, titles and descriptions"`
}

type RecommendTagsInput struct {
	Title    string `json:"title,omitempty" jsonschema:"Title of the lore entry"`
	Content  string `json:"content" jsonschema:"Body text to analyze"`
	Category string `json:"category,omitempty" jsonschema:"Lore category such as History or Religion"`
}

type CategoryTagsInput struct {
	Category string `json:"category" jsonschema:"Lore category (case-sensitive)"`
}

type ConnectionTypesInput struct {
	SourceType string `json:"source_type" jsonschema:"Entity type of the source: character, location, timeline, magic, lore or note"`
	TargetType string `json:"target_type" jsonschema:"Entity type of the target"`
}

type AddConnectionInput struct {
	ProjectID      int    `json:"project_id" jsonschema:"ID of the project"`
	SourceType     string `json:"source_type" jsonschema:"Entity type of the source"`
	SourceID       int    `json:"source_id" jsonschema:"ID of the source entity"`
	TargetType     string `json:"target_type" jsonschema:"Entity type of the target"`
	TargetID       int    `json:"target_id" jsonschema:"ID of the target entity"`
	ConnectionType string `json:"connection_type" jsonschema:"One of the types returned by connection_types for this pair"`
	Description    string `json:"description,omitempty" jsonschema:"Optional free-text description"`
}

type ListConnectionsInput struct {
	ProjectID int `json:"project_id" jsonschema:"ID of the project"`
}

type EntityNetworkInput struct {
	ProjectID int    `json:"project_id" jsonschema:"ID of the project"`
	Type      string `json:"type" jsonschema:"Entity type of the root"`
	ID        int    `json:"id" jsonschema:"ID of the root entity"`
	Depth     *int   `json:"depth,omitempty" jsonschema:"Number of hops to expand (0-5, default 1)"`
}

type FindPathInput struct {
	ProjectID int    `json:"project_id" jsonschema:"ID of the project"`
	FromType  string `json:"from_type" jsonschema:"Entity type of the start"`
	FromID    int    `json:"from_id" jsonschema:"ID of the start entity"`
	ToType    string `json:"to_type" jsonschema:"Entity type of the destination"`
	ToID      int    `json:"to_id" jsonschema:"ID of the destination entity"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List every worldbuilding project",
	}, s.listProjects)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_entities",
		Description: "Search all entities of a project, ranked by relevance (at most 20 results)",
	}, s.searchEntities)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "recommend_tags",
		Description: "Suggest tags for lore text with confidence scores and matched keywords",
	}, s.recommendTags)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "category_tags",
		Description: "List the seed tags of a lore category",
	}, s.categoryTags)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "connection_types",
		Description: "List the connection types allowed from one entity type to another",
	}, s.connectionTypes)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_connection",
		Description: "Connect two entities of a project with a typed, directed connection",
	}, s.addConnection)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_connections",
		Description: "List the user-authored connections of a project",
	}, s.listConnections)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "entity_network",
		Description: "Expand the connection graph around an entity up to a number of hops",
	}, s.entityNetwork)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_connection_path",
		Description: "Find the shortest chain of connections between two entities",
	}, s.findPath)
}

// --- Handlers ---

func (s *Server) listProjects(ctx context.Context, _ *mcp.CallToolRequest, _ ListProjectsInput) (*mcp.CallToolResult, any, error) {
	projects, err := s.world.ListProjects(ctx)
	if err != nil {
		return serviceError(ctx, "list_projects", err), nil, nil
	}
	return toolJSON(projects)
}

func (s *Server) searchEntities(ctx context.Context, _ *mcp.CallToolRequest, input SearchEntitiesInput) (*mcp.CallToolResult, any, error) {
	results, err := s.world.Search(ctx, input.ProjectID, input.Query)
	if err != nil {
		return serviceError(ctx, "search_entities", err), nil, nil
	}
	return toolJSON(map[string]any{"query": input.Query, "results": results})
}

func (s *Server) recommendTags(ctx context.Context, _ *mcp.CallToolRequest, input RecommendTagsInput) (*mcp.CallToolResult, any, error) {
	return toolJSON(s.world.RecommendTags(ctx, service.TagRequest{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
	}))
}

func (s *Server) categoryTags(ctx context.Context, _ *mcp.CallToolRequest, input CategoryTagsInput) (*mcp.CallToolResult, any, error) {
	return toolJSON(map[string]any{"category": input.Category, "tags": s.world.BaseTags(ctx, input.Category)})
}

func (s *Server) connectionTypes(ctx context.Context, _ *mcp.CallToolRequest, input ConnectionTypesInput) (*mcp.CallToolResult, any, error) {
	types, err := s.world.ConnectionTypes(ctx, input.SourceType, input.TargetType)
	if err != nil {
		return serviceError(ctx, "connection_types", err), nil, nil
	}
	return toolJSON(map[string]any{"source": input.SourceType, "target": input.TargetType, "types": types})
}

func (s *Server) addConnection(ctx context.Context, _ *mcp.CallToolRequest, input AddConnectionInput) (*mcp.CallToolResult, any, error) {
	source, err := parseRef("source_type", input.SourceType, input.SourceID)
	if err != nil {
		return serviceError(ctx, "add_connection", err), nil, nil
	}
	target, err := parseRef("target_type", input.TargetType, input.TargetID)
	if err != nil {
		return serviceError(ctx, "add_connection", err), nil, nil
	}

	conn, err := s.world.AddConnection(ctx, input.ProjectID, service.AddConnectionRequest{
		Source:         source,
		Target:         target,
		ConnectionType: input.ConnectionType,
		Description:    input.Description,
	})
	if err != nil {
		return serviceError(ctx, "add_connection", err), nil, nil
	}
	return toolJSON(conn)
}

func (s *Server) listConnections(ctx context.Context, _ *mcp.CallToolRequest, input ListConnectionsInput) (*mcp.CallToolResult, any, error) {
	conns, err := s.world.ListConnections(ctx, input.ProjectID)
	if err != nil {
		return serviceError(ctx, "list_connections", err), nil, nil
	}
	return toolJSON(conns)
}

func (s *Server) entityNetwork(ctx context.Context, _ *mcp.CallToolRequest, input EntityNetworkInput) (*mcp.CallToolResult, any, error) {
	root, err := parseRef("type", input.Type, input.ID)
	if err != nil {
		return serviceError(ctx, "entity_network", err), nil, nil
	}
	depth := 1
	if input.Depth != nil {
		depth = *input.Depth
	}

	network, err := s.world.Network(ctx, input.ProjectID, root, depth)
	if err != nil {
		return serviceError(ctx, "entity_network", err), nil, nil
	}
	return toolJSON(network)
}

func (s *Server) findPath(ctx context.Context, _ *mcp.CallToolRequest, input FindPathInput) (*mcp.CallToolResult, any, error) {
	from, err := parseRef("from_type", input.FromType, input.FromID)
	if err != nil {
		return serviceError(ctx, "find_connection_path", err), nil, nil
	}
	to, err := parseRef("to_type", input.ToType, input.ToID)
	if err != nil {
		return serviceError(ctx, "find_connection_path", err), nil, nil
	}

	path, err := s.world.FindPath(ctx, input.ProjectID, from, to)
	if err != nil {
		return serviceError(ctx, "find_connection_path", err), nil, nil
	}
	return toolJSON(path)
}

// --- Helpers ---

func parseRef(field, kind string, id int) (entity.Ref, error) {
	k, err := entity.ParseKind(kind)
	if err != nil {
		allowed := make([]string, len(entity.Kinds))
		for i, known := range entity.Kinds {
			allowed[i] = string(known)
		}
		return entity.Ref{}, &service.ValidationError{Field: field, Message: fmt.Sprintf("%q is not allowed", kind), Allowed: allowed}
	}
	return entity.Ref{Kind: k, ID: id}, nil
}

// serviceError turns a service error into a tool error result. Allowed
// values of a rejected field are listed so the caller can retry.
func serviceError(ctx context.Context, tool string, err error) *mcp.CallToolResult {
	contextutil.LoggerFromContext(ctx).WarnContext(ctx, "tool call failed", "tool", tool, "error", err)

	var vErr *service.ValidationError
	if errors.As(err, &vErr) && len(vErr.Allowed) > 0 {
		return toolError("%v (allowed: %s)", err, strings.Join(vErr.Allowed, ", "))
	}
	return toolError("%v", err)
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError("Failed to marshal result: %v", err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}
