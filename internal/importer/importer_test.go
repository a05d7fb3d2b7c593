package importer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"worldforge/internal/entity"
	"worldforge/internal/service"
	"worldforge/internal/service/mocks"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// assignIDs stands in for the store, numbering created entities from 1.
func assignIDs(created *[]entity.Entity) func(context.Context, int, entity.Entity) error {
	return func(_ context.Context, _ int, e entity.Entity) error {
		switch v := e.(type) {
		case *entity.Note:
			v.ID = len(*created) + 1
		case *entity.LoreEntry:
			v.ID = len(*created) + 1
		}
		*created = append(*created, e)
		return nil
	}
}

func TestImporter_Import(t *testing.T) {
	root := writeTree(t, map[string]string{
		"lore/prophecy.md": "---\nkind: lore\n---\n# The Prophecy\n\nA child of ash will rise.",
		"sessions/one.md":  "# Session One\n\nThe party reached Ashford.",
		"bad.md":           "---\nkind: character\n---\nAria",
	})

	ctrl := gomock.NewController(t)
	world := mocks.NewMockWorldService(ctrl)

	var created []entity.Entity
	world.EXPECT().CreateEntity(gomock.Any(), 3, gomock.Any()).DoAndReturn(assignIDs(&created)).Times(2)

	res, err := New(world).Import(context.Background(), 3, root)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if res.Scanned != 3 {
		t.Errorf("Scanned = %d, want 3", res.Scanned)
	}
	if res.Created[entity.KindLore] != 1 || res.Created[entity.KindNote] != 1 {
		t.Errorf("Created = %v, want one lore entry and one note", res.Created)
	}
	wantRefs := []entity.Ref{{Kind: entity.KindLore, ID: 1}, {Kind: entity.KindNote, ID: 2}}
	if !reflect.DeepEqual(res.Refs, wantRefs) {
		t.Errorf("Refs = %v, want %v", res.Refs, wantRefs)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Path != "bad.md" {
		t.Errorf("Skipped = %+v, want bad.md", res.Skipped)
	}

	lore := created[0].(*entity.LoreEntry)
	if lore.Title != "The Prophecy" || lore.Category != "lore" || lore.Tags != nil {
		t.Errorf("lore entry = %+v", lore)
	}
	note := created[1].(*entity.Note)
	if note.Title != "Session One" || note.Type != "sessions" {
		t.Errorf("note = %+v", note)
	}
}

func TestImporter_AutoTag(t *testing.T) {
	root := writeTree(t, map[string]string{
		"untagged.md": "---\nkind: lore\ncategory: magic\n---\nFire spells burn.",
		"tagged.md":   "---\nkind: lore\ntags: [fate]\n---\nA prophecy.",
		"note.md":     "Just a note.",
	})

	ctrl := gomock.NewController(t)
	world := mocks.NewMockWorldService(ctrl)

	world.EXPECT().RecommendTags(gomock.Any(), service.TagRequest{
		Title:    "Untagged",
		Content:  "Fire spells burn.",
		Category: "magic",
	}).Return(service.TagResponse{Recommended: []string{"fire", "magic"}})

	var created []entity.Entity
	world.EXPECT().CreateEntity(gomock.Any(), 1, gomock.Any()).DoAndReturn(assignIDs(&created)).Times(3)

	im := New(world)
	im.AutoTag = true
	if _, err := im.Import(context.Background(), 1, root); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	// note.md, tagged.md, untagged.md
	if got := created[1].(*entity.LoreEntry).Tags; !reflect.DeepEqual(got, []string{"fate"}) {
		t.Errorf("tagged lore tags = %v", got)
	}
	if got := created[2].(*entity.LoreEntry).Tags; !reflect.DeepEqual(got, []string{"fire", "magic"}) {
		t.Errorf("untagged lore tags = %v", got)
	}
}

func TestImporter_Errors(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a.md": "# A",
		"b.md": "# B",
	})

	t.Run("validation error skips the file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		world := mocks.NewMockWorldService(ctrl)
		gomock.InOrder(
			world.EXPECT().CreateEntity(gomock.Any(), 1, gomock.Any()).
				Return(&service.ValidationError{Field: "title", Message: "cannot be empty"}),
			world.EXPECT().CreateEntity(gomock.Any(), 1, gomock.Any()).Return(nil),
		)

		res, err := New(world).Import(context.Background(), 1, root)
		if err != nil {
			t.Fatalf("Import() error = %v", err)
		}
		if len(res.Skipped) != 1 || res.Skipped[0].Path != "a.md" {
			t.Errorf("Skipped = %+v, want a.md", res.Skipped)
		}
		if res.Created[entity.KindNote] != 1 {
			t.Errorf("Created = %v, want one note", res.Created)
		}
	})

	t.Run("missing project stops the import", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		world := mocks.NewMockWorldService(ctrl)
		world.EXPECT().CreateEntity(gomock.Any(), 9, gomock.Any()).
			Return(&service.NotFoundError{Resource: "project", ID: "9"})

		res, err := New(world).Import(context.Background(), 9, root)
		var nf *service.NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("Import() error = %v, want NotFoundError", err)
		}
		if res.Scanned != 2 || len(res.Refs) != 0 {
			t.Errorf("partial result = %+v", res)
		}
	})

	t.Run("missing root", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		world := mocks.NewMockWorldService(ctrl)
		if _, err := New(world).Import(context.Background(), 1, root+"/nope"); err == nil {
			t.Fatal("Import() expected error for missing root")
		}
	})
}
