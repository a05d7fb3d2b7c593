package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_world_service.go -package=mocks -mock_names=WorldService=MockWorldService worldforge/internal/service WorldService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"worldforge/internal/contextutil"
	"worldforge/internal/entity"
	"worldforge/internal/graph"
	"worldforge/internal/search"
	"worldforge/internal/storage"
	"worldforge/internal/tags"
)

// MaxNetworkDepth bounds the hop count of a network query.
const MaxNetworkDepth = 5

// TagRequest is the text a writer wants tag suggestions for.
type TagRequest struct {
	Title    string
	Content  string
	Category string
}

// TagResponse holds the ranked recommendations, the subset above the
// recommendation threshold and the seed tags of the category.
type TagResponse struct {
	Recommendations []tags.Recommendation `json:"recommendations"`
	Recommended     []string              `json:"recommended"`
	BaseTags        []string              `json:"baseTags"`
}

// AddConnectionRequest is a user's request to connect two entities.
type AddConnectionRequest struct {
	Source         entity.Ref
	Target         entity.Ref
	ConnectionType string
	Description    string
}

// NetworkResponse is a network with display names keyed by "kind:id".
type NetworkResponse struct {
	graph.Network
	Names map[string]string `json:"names"`
}

// PathResponse is the result of a path query. Steps is empty when the
// endpoints are the same entity and nil when no path exists.
type PathResponse struct {
	From  entity.Ref        `json:"from"`
	To    entity.Ref        `json:"to"`
	Found bool              `json:"found"`
	Steps []graph.Step      `json:"steps"`
	Names map[string]string `json:"names"`
}

// Relation is a row of one of the typed relationship tables.
type Relation interface {
	Validate() error
	Edge() graph.Edge
}

// WorldService is the application API over one SQLite-backed world.
type WorldService interface {
	CreateProject(ctx context.Context, name, description string) (storage.ProjectRecord, error)
	ListProjects(ctx context.Context) ([]storage.ProjectRecord, error)
	// CreateEntity stores a pointer to one of the entity variants in a project and sets its ID.
	CreateEntity(ctx context.Context, projectID int, e entity.Entity) error
	DeleteEntity(ctx context.Context, projectID int, ref entity.Ref) error
	GetNote(ctx context.Context, projectID, noteID int) (*entity.Note, error)

	Search(ctx context.Context, projectID int, query string) ([]search.Result, error)
	RecommendTags(ctx context.Context, req TagRequest) TagResponse
	BaseTags(ctx context.Context, category string) []string
	ConnectionTypes(ctx context.Context, source, target string) ([]string, error)

	AddConnection(ctx context.Context, projectID int, req AddConnectionRequest) (graph.Connection, error)
	ListConnections(ctx context.Context, projectID int) ([]graph.Connection, error)
	DeleteConnection(ctx context.Context, projectID int, connectionID string) error
	AddRelation(ctx context.Context, projectID int, rel Relation) error

	CharacterConnections(ctx context.Context, projectID, characterID int) ([]graph.Edge, error)
	Network(ctx context.Context, projectID int, root entity.Ref, depth int) (NetworkResponse, error)
	FindPath(ctx context.Context, projectID int, from, to entity.Ref) (PathResponse, error)
}

// worldService implements WorldService.
type worldService struct {
	projects    storage.ProjectStore
	entities    storage.EntityStore
	connections storage.ConnectionStore
	relations   storage.RelationStore
	taxonomy    *tags.Taxonomy
}

// NewWorldService creates a new WorldService. A nil taxonomy selects the
// embedded default.
func NewWorldService(
	projects storage.ProjectStore,
	entities storage.EntityStore,
	connections storage.ConnectionStore,
	relations storage.RelationStore,
	taxonomy *tags.Taxonomy,
) WorldService {
	if taxonomy == nil {
		taxonomy = tags.Default()
	}
	return &worldService{
		projects:    projects,
		entities:    entities,
		connections: connections,
		relations:   relations,
		taxonomy:    taxonomy,
	}
}

func (s *worldService) getLogger(ctx context.Context) *slog.Logger {
	return contextutil.LoggerFromContext(ctx)
}

func (s *worldService) CreateProject(ctx context.Context, name, description string) (storage.ProjectRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.ProjectRecord{}, &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	project, err := s.projects.Create(ctx, name, strings.TrimSpace(description))
	if err != nil {
		s.getLogger(ctx).ErrorContext(ctx, "failed to create project", "error", err)
		return storage.ProjectRecord{}, WrapError(err, "failed to create project")
	}
	s.getLogger(ctx).InfoContext(ctx, "project created", "project_id", project.ID)
	return project, nil
}

func (s *worldService) ListProjects(ctx context.Context) ([]storage.ProjectRecord, error) {
	projects, err := s.projects.ListAll(ctx)
	if err != nil {
		return nil, WrapError(err, "failed to list projects")
	}
	if projects == nil {
		projects = []storage.ProjectRecord{}
	}
	return projects, nil
}

// requireProject returns a NotFoundError when the project does not exist.
func (s *worldService) requireProject(ctx context.Context, projectID int) error {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &NotFoundError{Resource: "project", ID: strconv.Itoa(projectID)}
		}
		return WrapError(err, "failed to load project")
	}
	return nil
}

func (s *worldService) CreateEntity(ctx context.Context, projectID int, e entity.Entity) error {
	if e == nil {
		return &ValidationError{Field: "type", Message: "is required", Allowed: kindNames()}
	}
	if strings.TrimSpace(e.DisplayTitle()) == "" {
		field := "name"
		if k := e.Ref().Kind; k == entity.KindTimeline || k == entity.KindLore || k == entity.KindNote {
			field = "title"
		}
		return &ValidationError{Field: field, Message: "cannot be empty"}
	}
	if err := s.requireProject(ctx, projectID); err != nil {
		return err
	}

	var err error
	switch v := e.(type) {
	case *entity.Character:
		v.ProjectID = projectID
		err = s.entities.CreateCharacter(ctx, v)
	case *entity.Location:
		v.ProjectID = projectID
		err = s.entities.CreateLocation(ctx, v)
	case *entity.TimelineEvent:
		v.ProjectID = projectID
		err = s.entities.CreateTimelineEvent(ctx, v)
	case *entity.MagicSystem:
		v.ProjectID = projectID
		err = s.entities.CreateMagicSystem(ctx, v)
	case *entity.LoreEntry:
		v.ProjectID = projectID
		err = s.entities.CreateLoreEntry(ctx, v)
	case *entity.Note:
		v.ProjectID = projectID
		err = s.entities.CreateNote(ctx, v)
	default:
		return fmt.Errorf("%w: unsupported entity %T", ErrInvalidInput, e)
	}
	if err != nil {
		s.getLogger(ctx).ErrorContext(ctx, "failed to create entity", "project_id", projectID, "type", e.Ref().Kind, "error", err)
		return WrapError(err, "failed to create entity")
	}

	s.getLogger(ctx).InfoContext(ctx, "entity created", "project_id", projectID, "entity", e.Ref().String())
	return nil
}

func (s *worldService) DeleteEntity(ctx context.Context, projectID int, ref entity.Ref) error {
	if !ref.Kind.Valid() {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("%q is not allowed", ref.Kind), Allowed: kindNames()}
	}
	if err := s.requireProject(ctx, projectID); err != nil {
		return err
	}
	if err := s.entities.DeleteEntity(ctx, projectID, ref); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &NotFoundError{Resource: "entity", ID: ref.String()}
		}
		return WrapError(err, "failed to delete entity")
	}
	s.getLogger(ctx).InfoContext(ctx, "entity deleted", "project_id", projectID, "entity", ref.String())
	return nil
}

func (s *worldService) GetNote(ctx context.Context, projectID, noteID int) (*entity.Note, error) {
	note, err := s.entities.GetNote(ctx, projectID, noteID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, &NotFoundError{Resource: "note", ID: strconv.Itoa(noteID)}
		}
		return nil, WrapError(err, "failed to load note")
	}
	return note, nil
}

// Search runs cross-entity search over every entity of the project.
func (s *worldService) Search(ctx context.Context, projectID int, query string) ([]search.Result, error) {
	logger := s.getLogger(ctx)
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	collections, err := s.entities.LoadCollections(ctx, projectID)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load entities", "project_id", projectID, "error", err)
		return nil, WrapError(err, "failed to load entities")
	}

	results := search.SearchAcrossEntities(query, collections)
	logger.InfoContext(ctx, "search completed",
		"project_id", projectID,
		"entities", collections.Len(),
		"results", len(results),
	)
	return results, nil
}

func (s *worldService) RecommendTags(ctx context.Context, req TagRequest) TagResponse {
	recs := s.taxonomy.Analyze(req.Content, req.Title, req.Category)
	recommended := tags.Filter(recs)
	s.getLogger(ctx).DebugContext(ctx, "tags analyzed", "recommendations", len(recs), "recommended", len(recommended))
	return TagResponse{
		Recommendations: recs,
		Recommended:     recommended,
		BaseTags:        s.taxonomy.CategoryBaseTags(req.Category),
	}
}

func (s *worldService) BaseTags(_ context.Context, category string) []string {
	return s.taxonomy.CategoryBaseTags(category)
}

func (s *worldService) ConnectionTypes(_ context.Context, source, target string) ([]string, error) {
	sourceKind, err := entity.ParseKind(source)
	if err != nil {
		return nil, &ValidationError{Field: "source", Message: fmt.Sprintf("%q is not allowed", source), Allowed: kindNames()}
	}
	targetKind, err := entity.ParseKind(target)
	if err != nil {
		return nil, &ValidationError{Field: "target", Message: fmt.Sprintf("%q is not allowed", target), Allowed: kindNames()}
	}
	return graph.ConnectionTypes(sourceKind, targetKind), nil
}

// AddConnection resolves both endpoints in the project, validates the
// connection type and stores the connection.
func (s *worldService) AddConnection(ctx context.Context, projectID int, req AddConnectionRequest) (graph.Connection, error) {
	logger := s.getLogger(ctx)
	if err := s.requireProject(ctx, projectID); err != nil {
		return graph.Connection{}, err
	}

	summaries, err := s.entities.ListSummaries(ctx, projectID)
	if err != nil {
		return graph.Connection{}, WrapError(err, "failed to list entities")
	}
	if !hasRef(summaries, req.Source) {
		return graph.Connection{}, &NotFoundError{Resource: "entity", ID: req.Source.String()}
	}

	var created graph.Connection
	err = graph.Author(graph.AuthorRequest{
		Source:         req.Source,
		Target:         req.Target,
		ConnectionType: req.ConnectionType,
		Description:    req.Description,
	}, summaries, func(c graph.Connection) error {
		if err := s.connections.Insert(ctx, projectID, &c); err != nil {
			return WrapError(err, "failed to store connection")
		}
		created = c
		return nil
	})
	if err != nil {
		logger.WarnContext(ctx, "connection rejected", "project_id", projectID, "source", req.Source.String(), "target", req.Target.String(), "error", err)
		return graph.Connection{}, fromGraphError(err)
	}

	logger.InfoContext(ctx, "connection added",
		"project_id", projectID,
		"connection_id", created.ID,
		"type", created.ConnectionType,
	)
	return created, nil
}

func (s *worldService) ListConnections(ctx context.Context, projectID int) ([]graph.Connection, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	conns, err := s.connections.ListByProject(ctx, projectID)
	if err != nil {
		return nil, WrapError(err, "failed to list connections")
	}
	if conns == nil {
		conns = []graph.Connection{}
	}
	return conns, nil
}

func (s *worldService) DeleteConnection(ctx context.Context, projectID int, connectionID string) error {
	if strings.TrimSpace(connectionID) == "" {
		return &ValidationError{Field: "connectionId", Message: "cannot be empty"}
	}
	if err := s.connections.Delete(ctx, projectID, connectionID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &NotFoundError{Resource: "connection", ID: connectionID}
		}
		return WrapError(err, "failed to delete connection")
	}
	s.getLogger(ctx).InfoContext(ctx, "connection deleted", "project_id", projectID, "connection_id", connectionID)
	return nil
}

// AddRelation validates a relationship row, checks that both endpoints
// belong to the project and upserts it.
func (s *worldService) AddRelation(ctx context.Context, projectID int, rel Relation) error {
	if err := rel.Validate(); err != nil {
		return fromGraphError(err)
	}
	if err := s.requireProject(ctx, projectID); err != nil {
		return err
	}

	summaries, err := s.entities.ListSummaries(ctx, projectID)
	if err != nil {
		return WrapError(err, "failed to list entities")
	}
	edge := rel.Edge()
	for _, ref := range []entity.Ref{edge.Source, edge.Target} {
		if !hasRef(summaries, ref) {
			return &NotFoundError{Resource: "entity", ID: ref.String()}
		}
	}

	switch r := rel.(type) {
	case graph.CharacterMagicSystem:
		err = s.relations.AddCharacterMagicSystem(ctx, r)
	case graph.TimelineEventCharacter:
		err = s.relations.AddTimelineEventCharacter(ctx, r)
	case graph.CharacterRelationship:
		err = s.relations.AddCharacterRelationship(ctx, r)
	case graph.LoreEntityReference:
		err = s.relations.AddLoreEntityReference(ctx, r)
	case graph.LocationHierarchy:
		err = s.relations.AddLocationHierarchy(ctx, r)
	default:
		return fmt.Errorf("%w: unsupported relation %T", ErrInvalidInput, rel)
	}
	if err != nil {
		return WrapError(err, "failed to store relation")
	}

	s.getLogger(ctx).InfoContext(ctx, "relation added", "project_id", projectID, "origin", edge.Origin, "label", edge.Label)
	return nil
}

// loadGraph builds the project graph from user connections followed by
// relationship rows, and returns the entity summaries alongside.
func (s *worldService) loadGraph(ctx context.Context, projectID int) (*graph.Graph, []entity.Summary, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, nil, err
	}
	summaries, err := s.entities.ListSummaries(ctx, projectID)
	if err != nil {
		return nil, nil, WrapError(err, "failed to list entities")
	}
	conns, err := s.connections.ListByProject(ctx, projectID)
	if err != nil {
		return nil, nil, WrapError(err, "failed to list connections")
	}
	rels, err := s.relations.ListEdges(ctx, projectID)
	if err != nil {
		return nil, nil, WrapError(err, "failed to list relations")
	}

	edges := make([]graph.Edge, 0, len(conns)+len(rels))
	for _, c := range conns {
		edges = append(edges, c.Edge())
	}
	edges = append(edges, rels...)
	return graph.New(edges), summaries, nil
}

func (s *worldService) CharacterConnections(ctx context.Context, projectID, characterID int) ([]graph.Edge, error) {
	g, summaries, err := s.loadGraph(ctx, projectID)
	if err != nil {
		return nil, err
	}
	ref := entity.Ref{Kind: entity.KindCharacter, ID: characterID}
	if !hasRef(summaries, ref) {
		return nil, &NotFoundError{Resource: "entity", ID: ref.String()}
	}
	return g.CharacterConnections(characterID), nil
}

func (s *worldService) Network(ctx context.Context, projectID int, root entity.Ref, depth int) (NetworkResponse, error) {
	if depth < 0 || depth > MaxNetworkDepth {
		return NetworkResponse{}, &ValidationError{
			Field:   "depth",
			Message: fmt.Sprintf("must be between 0 and %d", MaxNetworkDepth),
		}
	}
	g, summaries, err := s.loadGraph(ctx, projectID)
	if err != nil {
		return NetworkResponse{}, err
	}
	if !hasRef(summaries, root) {
		return NetworkResponse{}, &NotFoundError{Resource: "entity", ID: root.String()}
	}

	n := g.Network(root, depth)
	names := make(map[string]string, len(n.Nodes))
	index := nameIndex(summaries)
	for _, node := range n.Nodes {
		names[node.Ref.String()] = index[node.Ref]
	}
	s.getLogger(ctx).DebugContext(ctx, "network built", "root", root.String(), "depth", depth, "nodes", len(n.Nodes), "edges", len(n.Edges))
	return NetworkResponse{Network: n, Names: names}, nil
}

func (s *worldService) FindPath(ctx context.Context, projectID int, from, to entity.Ref) (PathResponse, error) {
	g, summaries, err := s.loadGraph(ctx, projectID)
	if err != nil {
		return PathResponse{}, err
	}
	for _, ref := range []entity.Ref{from, to} {
		if !hasRef(summaries, ref) {
			return PathResponse{}, &NotFoundError{Resource: "entity", ID: ref.String()}
		}
	}

	steps, found := g.FindPath(from, to)
	index := nameIndex(summaries)
	names := map[string]string{from.String(): index[from], to.String(): index[to]}
	for _, st := range steps {
		names[st.To.String()] = index[st.To]
	}
	return PathResponse{From: from, To: to, Found: found, Steps: steps, Names: names}, nil
}

func hasRef(summaries []entity.Summary, ref entity.Ref) bool {
	for _, s := range summaries {
		if s.Ref == ref {
			return true
		}
	}
	return false
}

func nameIndex(summaries []entity.Summary) map[entity.Ref]string {
	index := make(map[entity.Ref]string, len(summaries))
	for _, s := range summaries {
		index[s.Ref] = s.Name
	}
	return index
}

func kindNames() []string {
	names := make([]string, len(entity.Kinds))
	for i, k := range entity.Kinds {
		names[i] = string(k)
	}
	return names
}
