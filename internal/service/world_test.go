package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/mock/gomock"

	"worldforge/internal/entity"
	"worldforge/internal/graph"
	"worldforge/internal/search"
	"worldforge/internal/service"
	"worldforge/internal/storage"
	"worldforge/internal/storage/mocks"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testContext returns a context for testing.
// The default logger is already set to discard in init().
func testContext() context.Context {
	return context.Background()
}

var (
	aria    = entity.Ref{Kind: entity.KindCharacter, ID: 1}
	borin   = entity.Ref{Kind: entity.KindCharacter, ID: 2}
	ashford = entity.Ref{Kind: entity.KindLocation, ID: 1}
	ember   = entity.Ref{Kind: entity.KindMagic, ID: 1}
	lore    = entity.Ref{Kind: entity.KindLore, ID: 1}
)

var summaries = []entity.Summary{
	{Ref: aria, Name: "Aria"},
	{Ref: borin, Name: "Borin"},
	{Ref: ashford, Name: "Ashford"},
	{Ref: ember, Name: "Emberweave"},
	{Ref: lore, Name: "The First Flame"},
}

type fixture struct {
	projects    *mocks.MockProjectStore
	entities    *mocks.MockEntityStore
	connections *mocks.MockConnectionStore
	relations   *mocks.MockRelationStore
	svc         service.WorldService
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		projects:    mocks.NewMockProjectStore(ctrl),
		entities:    mocks.NewMockEntityStore(ctrl),
		connections: mocks.NewMockConnectionStore(ctrl),
		relations:   mocks.NewMockRelationStore(ctrl),
	}
	f.svc = service.NewWorldService(f.projects, f.entities, f.connections, f.relations, nil)
	return f
}

func (f *fixture) expectProject(id int) {
	f.projects.EXPECT().GetByID(gomock.Any(), id).Return(&storage.ProjectRecord{ID: id, Name: "Ashen Realms"}, nil)
}

func (f *fixture) expectGraph(id int, conns []graph.Connection, rels []graph.Edge) {
	f.expectProject(id)
	f.entities.EXPECT().ListSummaries(gomock.Any(), id).Return(summaries, nil)
	f.connections.EXPECT().ListByProject(gomock.Any(), id).Return(conns, nil)
	f.relations.EXPECT().ListEdges(gomock.Any(), id).Return(rels, nil)
}

func isValidation(field string) func(error) bool {
	return func(err error) bool {
		var v *service.ValidationError
		return errors.As(err, &v) && v.Field == field
	}
}

func isNotFound(resource, id string) func(error) bool {
	return func(err error) bool {
		var nf *service.NotFoundError
		return errors.As(err, &nf) && nf.Resource == resource && nf.ID == id
	}
}

func TestWorldService_CreateProject(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateProject(testContext(), "   ", "")
	if !isValidation("name")(err) {
		t.Fatalf("CreateProject() error = %v, want name validation", err)
	}

	f.projects.EXPECT().Create(gomock.Any(), "Ashen Realms", "ash").
		Return(storage.ProjectRecord{ID: 7, Name: "Ashen Realms", Description: "ash"}, nil)
	project, err := f.svc.CreateProject(testContext(), " Ashen Realms ", " ash ")
	if err != nil {
		t.Fatalf("CreateProject() error = %v", err)
	}
	if project.ID != 7 {
		t.Errorf("CreateProject() ID = %d, want 7", project.ID)
	}
}

func TestWorldService_CreateEntity(t *testing.T) {
	tests := []struct {
		name      string
		entity    entity.Entity
		mockSetup func(f *fixture)
		checkErr  func(error) bool
	}{
		{
			name:   "character",
			entity: &entity.Character{Name: "Aria"},
			mockSetup: func(f *fixture) {
				f.expectProject(3)
				f.entities.EXPECT().CreateCharacter(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *entity.Character) error {
						if c.ProjectID != 3 {
							t.Errorf("ProjectID = %d, want 3", c.ProjectID)
						}
						c.ID = 11
						return nil
					})
			},
		},
		{
			name:   "note",
			entity: &entity.Note{Title: "Plot"},
			mockSetup: func(f *fixture) {
				f.expectProject(3)
				f.entities.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:   "magic system",
			entity: &entity.MagicSystem{Name: "Emberweave"},
			mockSetup: func(f *fixture) {
				f.expectProject(3)
				f.entities.EXPECT().CreateMagicSystem(gomock.Any(), &entity.MagicSystem{ProjectID: 3, Name: "Emberweave"}).Return(nil)
			},
		},
		{
			name:      "lore without title",
			entity:    &entity.LoreEntry{Content: "..."},
			mockSetup: func(f *fixture) {},
			checkErr:  isValidation("title"),
		},
		{
			name:   "missing project",
			entity: &entity.Location{Name: "Ashford"},
			mockSetup: func(f *fixture) {
				f.projects.EXPECT().GetByID(gomock.Any(), 3).Return(nil, storage.ErrNotFound)
			},
			checkErr: isNotFound("project", "3"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.mockSetup(f)

			err := f.svc.CreateEntity(testContext(), 3, tt.entity)
			if tt.checkErr != nil {
				if !tt.checkErr(err) {
					t.Errorf("CreateEntity() error = %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateEntity() error = %v", err)
			}
		})
	}
}

func TestWorldService_Search(t *testing.T) {
	f := newFixture(t)
	f.expectProject(1)
	f.entities.EXPECT().LoadCollections(gomock.Any(), 1).Return(search.Collections{
		Characters:   []entity.Character{{ID: 1, Name: "Aria", Description: "A fire mage"}},
		MagicSystems: []entity.MagicSystem{{ID: 1, Name: "Fire", Description: "Elemental fire magic"}},
	}, nil)

	results, err := f.svc.Search(testContext(), 1, "fire")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Search() = %d results, want 2", len(results))
	}
	if results[0].Type != entity.KindMagic || results[0].Relevance != 12 {
		t.Errorf("Search()[0] = %+v, want magic with relevance 12", results[0])
	}
}

func TestWorldService_Search_Errors(t *testing.T) {
	f := newFixture(t)
	f.projects.EXPECT().GetByID(gomock.Any(), 9).Return(nil, storage.ErrNotFound)
	if _, err := f.svc.Search(testContext(), 9, "fire"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Search() error = %v, want ErrNotFound", err)
	}

	boom := errors.New("database is locked")
	f.expectProject(1)
	f.entities.EXPECT().LoadCollections(gomock.Any(), 1).Return(search.Collections{}, boom)
	if _, err := f.svc.Search(testContext(), 1, "fire"); !errors.Is(err, boom) {
		t.Errorf("Search() error = %v, want wrapped store error", err)
	}
}

func TestWorldService_RecommendTags(t *testing.T) {
	f := newFixture(t)

	resp := f.svc.RecommendTags(testContext(), service.TagRequest{
		Title:    "The Prophecy",
		Content:  "An ancient prophecy foretold the war",
		Category: "Religion",
	})
	if len(resp.Recommendations) == 0 || resp.Recommendations[0].Tag != "prophecy" {
		t.Fatalf("RecommendTags() = %+v, want prophecy first", resp.Recommendations)
	}
	if resp.Recommended[0] != "prophecy" {
		t.Errorf("Recommended = %v", resp.Recommended)
	}
	if len(resp.BaseTags) != 5 || resp.BaseTags[0] != "gods" {
		t.Errorf("BaseTags = %v", resp.BaseTags)
	}

	if got := f.svc.BaseTags(testContext(), "Unknown"); len(got) != 0 {
		t.Errorf("BaseTags(Unknown) = %v, want empty", got)
	}
}

func TestWorldService_ConnectionTypes(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.ConnectionTypes(testContext(), "character", "Location")
	if err != nil {
		t.Fatalf("ConnectionTypes() error = %v", err)
	}
	if len(got) != 5 || got[0] != "lives_in" {
		t.Errorf("ConnectionTypes() = %v", got)
	}

	if _, err := f.svc.ConnectionTypes(testContext(), "dragon", "location"); !isValidation("source")(err) {
		t.Errorf("ConnectionTypes() error = %v, want source validation", err)
	}
	if _, err := f.svc.ConnectionTypes(testContext(), "character", ""); !isValidation("target")(err) {
		t.Errorf("ConnectionTypes() error = %v, want target validation", err)
	}
}

func TestWorldService_AddConnection(t *testing.T) {
	tests := []struct {
		name      string
		req       service.AddConnectionRequest
		mockSetup func(f *fixture)
		checkErr  func(error) bool
	}{
		{
			name: "stores connection",
			req:  service.AddConnectionRequest{Source: aria, Target: ashford, ConnectionType: "lives_in", Description: "Born there"},
			mockSetup: func(f *fixture) {
				f.connections.EXPECT().Insert(gomock.Any(), 1, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int, c *graph.Connection) error {
						if c.TargetName != "Ashford" {
							t.Errorf("TargetName = %q, want Ashford", c.TargetName)
						}
						c.ID = "conn-1"
						return nil
					})
			},
		},
		{
			name:      "unknown source",
			req:       service.AddConnectionRequest{Source: entity.Ref{Kind: entity.KindNote, ID: 4}, Target: ashford, ConnectionType: "related_to"},
			mockSetup: func(f *fixture) {},
			checkErr:  isNotFound("entity", "note:4"),
		},
		{
			name:      "unknown target",
			req:       service.AddConnectionRequest{Source: aria, Target: entity.Ref{Kind: entity.KindTimeline, ID: 4}, ConnectionType: "participates"},
			mockSetup: func(f *fixture) {},
			checkErr:  isNotFound("entity", "timeline:4"),
		},
		{
			name:      "type outside vocabulary",
			req:       service.AddConnectionRequest{Source: aria, Target: ember, ConnectionType: "lives_in"},
			mockSetup: func(f *fixture) {},
			checkErr: func(err error) bool {
				var v *service.ValidationError
				return errors.As(err, &v) && v.Field == "connectionType" && len(v.Allowed) == 5
			},
		},
		{
			name:      "missing type",
			req:       service.AddConnectionRequest{Source: ember, Target: aria},
			mockSetup: func(f *fixture) {},
			checkErr: func(err error) bool {
				var v *service.ValidationError
				return errors.As(err, &v) && v.Message == "is required" &&
					len(v.Allowed) == 3 && v.Allowed[0] == "related_to"
			},
		},
		{
			name: "store failure",
			req:  service.AddConnectionRequest{Source: aria, Target: borin, ConnectionType: "friend"},
			mockSetup: func(f *fixture) {
				f.connections.EXPECT().Insert(gomock.Any(), 1, gomock.Any()).Return(errors.New("disk full"))
			},
			checkErr: func(err error) bool {
				return err != nil && !errors.Is(err, service.ErrInvalidInput) && !errors.Is(err, service.ErrNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.expectProject(1)
			f.entities.EXPECT().ListSummaries(gomock.Any(), 1).Return(summaries, nil)
			tt.mockSetup(f)

			conn, err := f.svc.AddConnection(testContext(), 1, tt.req)
			if tt.checkErr != nil {
				if !tt.checkErr(err) {
					t.Errorf("AddConnection() error = %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddConnection() error = %v", err)
			}
			if conn.ID != "conn-1" || conn.Description != "Born there" {
				t.Errorf("AddConnection() = %+v", conn)
			}
		})
	}
}

func TestWorldService_DeleteConnection(t *testing.T) {
	f := newFixture(t)

	f.connections.EXPECT().Delete(gomock.Any(), 1, "gone").Return(storage.ErrNotFound)
	if err := f.svc.DeleteConnection(testContext(), 1, "gone"); !isNotFound("connection", "gone")(err) {
		t.Errorf("DeleteConnection() error = %v", err)
	}

	f.connections.EXPECT().Delete(gomock.Any(), 1, "conn-1").Return(nil)
	if err := f.svc.DeleteConnection(testContext(), 1, "conn-1"); err != nil {
		t.Errorf("DeleteConnection() error = %v", err)
	}

	if err := f.svc.DeleteConnection(testContext(), 1, " "); !isValidation("connectionId")(err) {
		t.Errorf("DeleteConnection() error = %v", err)
	}
}

func TestWorldService_AddRelation(t *testing.T) {
	f := newFixture(t)

	err := f.svc.AddRelation(testContext(), 1, graph.CharacterMagicSystem{CharacterID: 1, MagicSystemID: 1, ProficiencyLevel: "godlike"})
	if !isValidation("proficiencyLevel")(err) {
		t.Errorf("AddRelation() error = %v, want proficiencyLevel validation", err)
	}

	f.expectProject(1)
	f.entities.EXPECT().ListSummaries(gomock.Any(), 1).Return(summaries, nil)
	err = f.svc.AddRelation(testContext(), 1, graph.LocationHierarchy{ParentLocationID: 1, ChildLocationID: 8, HierarchyType: "contains"})
	if !isNotFound("entity", "location:8")(err) {
		t.Errorf("AddRelation() error = %v, want missing location", err)
	}

	rel := graph.CharacterRelationship{CharacterID: 1, RelatedCharacterID: 2, RelationshipType: "mentor"}
	f.expectProject(1)
	f.entities.EXPECT().ListSummaries(gomock.Any(), 1).Return(summaries, nil)
	f.relations.EXPECT().AddCharacterRelationship(gomock.Any(), rel).Return(nil)
	if err := f.svc.AddRelation(testContext(), 1, rel); err != nil {
		t.Errorf("AddRelation() error = %v", err)
	}

	ref := graph.LoreEntityReference{LoreEntryID: 1, Entity: ember, Relevance: "primary"}
	f.expectProject(1)
	f.entities.EXPECT().ListSummaries(gomock.Any(), 1).Return(summaries, nil)
	f.relations.EXPECT().AddLoreEntityReference(gomock.Any(), ref).Return(nil)
	if err := f.svc.AddRelation(testContext(), 1, ref); err != nil {
		t.Errorf("AddRelation() error = %v", err)
	}
}

func TestWorldService_CharacterConnections(t *testing.T) {
	f := newFixture(t)
	f.expectGraph(1,
		[]graph.Connection{{Source: aria, Target: ashford, ConnectionType: "lives_in"}},
		[]graph.Edge{
			{Source: aria, Target: ember, Label: "adept", Origin: "character_magic_systems"},
			{Source: borin, Target: ashford, Label: "from", Origin: "entity_connections"},
		},
	)

	edges, err := f.svc.CharacterConnections(testContext(), 1, 1)
	if err != nil {
		t.Fatalf("CharacterConnections() error = %v", err)
	}
	if len(edges) != 2 {
		t.Fatalf("CharacterConnections() = %+v, want 2 edges", edges)
	}
	if edges[0].Origin != "entity_connections" || edges[1].Origin != "character_magic_systems" {
		t.Errorf("CharacterConnections() order = %+v", edges)
	}

	f.expectGraph(1, nil, nil)
	if _, err := f.svc.CharacterConnections(testContext(), 1, 42); !isNotFound("entity", "character:42")(err) {
		t.Errorf("CharacterConnections() error = %v", err)
	}
}

func TestWorldService_Network(t *testing.T) {
	f := newFixture(t)

	if _, err := f.svc.Network(testContext(), 1, aria, service.MaxNetworkDepth+1); !isValidation("depth")(err) {
		t.Errorf("Network() error = %v, want depth validation", err)
	}

	f.expectGraph(1, []graph.Connection{
		{Source: aria, Target: borin, ConnectionType: "friend"},
		{Source: borin, Target: ashford, ConnectionType: "lives_in"},
	}, nil)
	n, err := f.svc.Network(testContext(), 1, aria, 1)
	if err != nil {
		t.Fatalf("Network() error = %v", err)
	}
	if len(n.Nodes) != 2 || len(n.Edges) != 1 {
		t.Errorf("Network() nodes = %+v edges = %+v", n.Nodes, n.Edges)
	}
	if n.Names["character:2"] != "Borin" {
		t.Errorf("Network() names = %v", n.Names)
	}
}

func TestWorldService_FindPath(t *testing.T) {
	f := newFixture(t)

	f.expectGraph(1,
		[]graph.Connection{{Source: aria, Target: borin, ConnectionType: "friend"}},
		[]graph.Edge{{Source: lore, Target: borin, Label: "primary", Origin: "lore_entity_references"}},
	)
	resp, err := f.svc.FindPath(testContext(), 1, aria, lore)
	if err != nil {
		t.Fatalf("FindPath() error = %v", err)
	}
	if !resp.Found || len(resp.Steps) != 2 {
		t.Fatalf("FindPath() = %+v", resp)
	}
	if resp.Steps[1].Forward {
		t.Error("lore -> borin edge should be walked backwards")
	}
	if resp.Names["lore:1"] != "The First Flame" {
		t.Errorf("FindPath() names = %v", resp.Names)
	}

	f.expectGraph(1, nil, nil)
	resp, err = f.svc.FindPath(testContext(), 1, aria, ember)
	if err != nil {
		t.Fatalf("FindPath() error = %v", err)
	}
	if resp.Found || resp.Steps != nil {
		t.Errorf("FindPath() without edges = %+v, want not found", resp)
	}
}
