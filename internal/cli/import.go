package cli

import (
	"context"

	"github.com/spf13/cobra"

	"worldforge/internal/entity"
	"worldforge/internal/importer"
	"worldforge/internal/service"
)

var (
	importAutoTag bool
	importJSON    bool
)

var importCmd = &cobra.Command{
	Use:   "import [project-id] [dir]",
	Short: "Import a folder of markdown files as notes and lore",
	Long: `Walks dir for .md files and creates one entity per file. Hidden
folders such as .obsidian are skipped.

Files are notes unless their YAML front matter says "kind: lore". Front
matter may also set title, category (or type) and tags. The title falls
back to the first heading and then the file name; the category falls back
to the file's folder.`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importAutoTag, "auto-tag", false, "tag untagged lore entries with recommended tags")
	importCmd.Flags().BoolVar(&importJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	projectID, err := parseProjectID(args[0])
	if err != nil {
		return err
	}

	return withWorld(cmd, func(ctx context.Context, world service.WorldService) error {
		im := importer.New(world)
		im.AutoTag = importAutoTag

		res, err := im.Import(ctx, projectID, args[1])
		if err != nil {
			return err
		}
		if importJSON {
			return printJSON(cmd, res)
		}

		cmd.Printf("Scanned %d files: %d notes, %d lore entries created.\n",
			res.Scanned, res.Created[entity.KindNote], res.Created[entity.KindLore])
		for _, s := range res.Skipped {
			cmd.Printf("  skipped %s: %s\n", s.Path, s.Reason)
		}
		return nil
	})
}
