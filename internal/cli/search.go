package cli

import (
	"context"

	"github.com/spf13/cobra"

	"worldforge/internal/service"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [project-id] [query]",
	Short: "Search every entity of a project",
	Long: `Ranks characters, locations, timeline events, magic systems, lore and notes
by how well their names, titles and descriptions match the query.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	projectID, err := parseProjectID(args[0])
	if err != nil {
		return err
	}
	query := args[1]

	return withWorld(cmd, func(ctx context.Context, world service.WorldService) error {
		results, err := world.Search(ctx, projectID, query)
		if err != nil {
			return err
		}
		if searchJSON {
			return printJSON(cmd, results)
		}
		if len(results) == 0 {
			cmd.Println("No results found.")
			return nil
		}

		cmd.Println("Results:")
		cmd.Println()
		for i, r := range results {
			cmd.Printf("  [%d] %s (%s, %d)\n", i+1, r.Title, r.Type, r.Relevance)
			if r.Category != "" {
				cmd.Printf("      Category: %s\n", r.Category)
			}
			if r.Description != "" {
				cmd.Printf("      %s\n", r.Description)
			}
		}
		return nil
	})
}
