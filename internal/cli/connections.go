package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"worldforge/internal/entity"
	"worldforge/internal/graph"
	"worldforge/internal/service"
)

var (
	networkDepth int
	graphJSON    bool
)

var connectionTypesCmd = &cobra.Command{
	Use:   "connection-types [source-type] [target-type]",
	Short: "List the connection types allowed between two entity types",
	Long: `Lists the connection vocabulary from one entity type to another.
Entity types are character, location, timeline, magic, lore and note.
The vocabulary is directional; undefined pairs use a generic fallback.`,
	Args: cobra.ExactArgs(2),
	RunE: runConnectionTypes,
}

var pathCmd = &cobra.Command{
	Use:   "path [project-id] [from kind:id] [to kind:id]",
	Short: "Find the shortest connection path between two entities",
	Args:  cobra.ExactArgs(3),
	RunE:  runPath,
}

var networkCmd = &cobra.Command{
	Use:   "network [project-id] [kind:id]",
	Short: "Show the entities connected to an entity",
	Args:  cobra.ExactArgs(2),
	RunE:  runNetwork,
}

func init() {
	networkCmd.Flags().IntVarP(&networkDepth, "depth", "d", 1, "number of hops to expand (0-5)")
	networkCmd.Flags().BoolVar(&graphJSON, "json", false, "output as JSON")
	pathCmd.Flags().BoolVar(&graphJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(connectionTypesCmd, pathCmd, networkCmd)
}

func runConnectionTypes(cmd *cobra.Command, args []string) error {
	source, err := entity.ParseKind(args[0])
	if err != nil {
		return err
	}
	target, err := entity.ParseKind(args[1])
	if err != nil {
		return err
	}
	for _, t := range graph.ConnectionTypes(source, target) {
		cmd.Println(t)
	}
	return nil
}

func runPath(cmd *cobra.Command, args []string) error {
	projectID, err := parseProjectID(args[0])
	if err != nil {
		return err
	}
	from, err := entity.ParseRef(args[1])
	if err != nil {
		return err
	}
	to, err := entity.ParseRef(args[2])
	if err != nil {
		return err
	}

	return withWorld(cmd, func(ctx context.Context, world service.WorldService) error {
		path, err := world.FindPath(ctx, projectID, from, to)
		if err != nil {
			return err
		}
		if graphJSON {
			return printJSON(cmd, path)
		}
		if !path.Found {
			cmd.Printf("No path from %s to %s.\n", label(path.Names, from), label(path.Names, to))
			return nil
		}
		cmd.Println(label(path.Names, from))
		for _, st := range path.Steps {
			arrow := "->"
			if !st.Forward {
				arrow = "<-"
			}
			cmd.Printf("  %s %s %s\n", arrow, st.Edge.Label, label(path.Names, st.To))
		}
		return nil
	})
}

func runNetwork(cmd *cobra.Command, args []string) error {
	projectID, err := parseProjectID(args[0])
	if err != nil {
		return err
	}
	root, err := entity.ParseRef(args[1])
	if err != nil {
		return err
	}

	return withWorld(cmd, func(ctx context.Context, world service.WorldService) error {
		network, err := world.Network(ctx, projectID, root, networkDepth)
		if err != nil {
			return err
		}
		if graphJSON {
			return printJSON(cmd, network)
		}
		for _, n := range network.Nodes {
			cmd.Printf("%s%s\n", strings.Repeat("  ", n.Distance), label(network.Names, n.Ref))
		}
		cmd.Printf("%d entities, %d connections\n", len(network.Nodes), len(network.Edges))
		return nil
	})
}

func parseProjectID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid project id %q", s)
	}
	return id, nil
}

// label renders a reference with its display name when known.
func label(names map[string]string, ref entity.Ref) string {
	if name := names[ref.String()]; name != "" {
		return fmt.Sprintf("%s (%s)", name, ref)
	}
	return ref.String()
}
