package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"worldforge/internal/contextutil"
	"worldforge/internal/entity"
	"worldforge/internal/service"
)

// World is the part of the world service an import writes through.
type World interface {
	CreateEntity(ctx context.Context, projectID int, e entity.Entity) error
	RecommendTags(ctx context.Context, req service.TagRequest) service.TagResponse
}

// Skipped is a file left out of an import and the reason.
type Skipped struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Result counts what an import created.
type Result struct {
	Scanned int                 `json:"scanned"`
	Created map[entity.Kind]int `json:"created"`
	Refs    []entity.Ref        `json:"refs"`
	Skipped []Skipped           `json:"skipped"`
}

// Importer turns a folder of markdown files into notes and lore entries.
type Importer struct {
	world World
	// AutoTag fills the tags of lore entries without any from the
	// recommender's above-threshold suggestions.
	AutoTag bool
}

// New creates an importer writing through world.
func New(world World) *Importer {
	return &Importer{world: world}
}

// Import scans root and creates one entity per markdown file in the
// project. Unreadable or invalid files are skipped; any other error from
// the world service stops the import and is returned with the partial
// result.
func (im *Importer) Import(ctx context.Context, projectID int, root string) (Result, error) {
	logger := contextutil.LoggerFromContext(ctx)
	res := Result{Created: make(map[entity.Kind]int), Refs: []entity.Ref{}, Skipped: []Skipped{}}

	files, err := Scan(ctx, root)
	if err != nil {
		return res, err
	}
	res.Scanned = len(files)

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		content, err := os.ReadFile(f.AbsPath)
		if err != nil {
			res.skip(logger, f, err)
			continue
		}
		doc, err := Parse(content, f.RelPath)
		if err != nil {
			res.skip(logger, f, err)
			continue
		}

		if doc.Kind == entity.KindLore && len(doc.Tags) == 0 && im.AutoTag {
			doc.Tags = im.world.RecommendTags(ctx, service.TagRequest{
				Title:    doc.Title,
				Content:  doc.Body,
				Category: doc.Category,
			}).Recommended
		}

		e := doc.Entity()
		if err := im.world.CreateEntity(ctx, projectID, e); err != nil {
			var vErr *service.ValidationError
			if errors.As(err, &vErr) {
				res.skip(logger, f, err)
				continue
			}
			return res, fmt.Errorf("failed to import %s: %w", f.RelPath, err)
		}

		res.Created[doc.Kind]++
		res.Refs = append(res.Refs, e.Ref())
		logger.DebugContext(ctx, "file imported", "path", f.RelPath, "ref", e.Ref().String())
	}

	logger.InfoContext(ctx, "import completed",
		"project_id", projectID,
		"scanned", res.Scanned,
		"notes", res.Created[entity.KindNote],
		"lore", res.Created[entity.KindLore],
		"skipped", len(res.Skipped))
	return res, nil
}

func (r *Result) skip(logger *slog.Logger, f File, err error) {
	logger.Warn("skipping file", "path", f.RelPath, "error", err)
	r.Skipped = append(r.Skipped, Skipped{Path: f.RelPath, Reason: err.Error()})
}
