package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"worldforge/internal/tags"
)

var (
	tagsTitle    string
	tagsCategory string
	tagsJSON     bool
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Tag recommendations for lore text",
}

var tagsAnalyzeCmd = &cobra.Command{
	Use:   "analyze [content...]",
	Short: "Suggest tags for a piece of lore",
	Long: `Scores the built-in tag vocabulary against the title, category and content.
Content is read from standard input when no arguments are given.`,
	RunE: runTagsAnalyze,
}

var tagsBaseCmd = &cobra.Command{
	Use:   "base [category]",
	Short: "List the seed tags of a lore category",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagsBase,
}

func init() {
	tagsAnalyzeCmd.Flags().StringVarP(&tagsTitle, "title", "t", "", "title of the lore entry")
	tagsAnalyzeCmd.Flags().StringVarP(&tagsCategory, "category", "c", "", "lore category, e.g. History")
	tagsAnalyzeCmd.Flags().BoolVar(&tagsJSON, "json", false, "output recommendations as JSON")
	tagsCmd.AddCommand(tagsAnalyzeCmd, tagsBaseCmd)
	rootCmd.AddCommand(tagsCmd)
}

func runTagsAnalyze(cmd *cobra.Command, args []string) error {
	content := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read content: %w", err)
		}
		content = string(data)
	}

	taxonomy, err := tags.LoadTaxonomy(taxonomyPath)
	if err != nil {
		return err
	}
	recs := taxonomy.Analyze(content, tagsTitle, tagsCategory)

	if tagsJSON {
		return printJSON(cmd, map[string]any{
			"recommendations": recs,
			"recommended":     tags.Filter(recs),
			"baseTags":        taxonomy.CategoryBaseTags(tagsCategory),
		})
	}

	if len(recs) == 0 {
		cmd.Println("No tags suggested.")
		return nil
	}
	for _, r := range recs {
		cmd.Printf("  %-14s %.2f  %s\n", r.Tag, r.Confidence, strings.Join(r.MatchedKeywords, ", "))
	}
	if base := taxonomy.CategoryBaseTags(tagsCategory); len(base) > 0 {
		cmd.Printf("Base tags for %s: %s\n", tagsCategory, strings.Join(base, ", "))
	}
	return nil
}

func runTagsBase(cmd *cobra.Command, args []string) error {
	taxonomy, err := tags.LoadTaxonomy(taxonomyPath)
	if err != nil {
		return err
	}
	base := taxonomy.CategoryBaseTags(args[0])
	if len(base) == 0 {
		cmd.Printf("No base tags for category %q.\n", args[0])
		return nil
	}
	for _, t := range base {
		cmd.Println(t)
	}
	return nil
}
