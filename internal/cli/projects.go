package cli

import (
	"context"

	"github.com/spf13/cobra"

	"worldforge/internal/service"
)

var projectDescription string

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage worldbuilding projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withWorld(cmd, func(ctx context.Context, world service.WorldService) error {
			projects, err := world.ListProjects(ctx)
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				cmd.Println("No projects yet.")
				return nil
			}
			for _, p := range projects {
				cmd.Printf("  %d  %s\n", p.ID, p.Name)
			}
			return nil
		})
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withWorld(cmd, func(ctx context.Context, world service.WorldService) error {
			p, err := world.CreateProject(ctx, args[0], projectDescription)
			if err != nil {
				return err
			}
			cmd.Printf("Created project %d: %s\n", p.ID, p.Name)
			return nil
		})
	},
}

func init() {
	projectsCreateCmd.Flags().StringVarP(&projectDescription, "description", "d", "", "project description")
	projectsCmd.AddCommand(projectsListCmd, projectsCreateCmd)
	rootCmd.AddCommand(projectsCmd)
}
