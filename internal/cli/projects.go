package cli

import (
	"errors"
	"strings"

	"milxos/internal/catalog"
	"milxos/internal/library"
	"milxos/internal/model"

	"github.com/spf13/cobra"
)

func newProjectsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Project catalog commands",
	}
	cmd.AddCommand(newProjectsListCmd(app))
	cmd.AddCommand(newProjectsShowCmd(app))
	return cmd
}

func newProjectsListCmd(app *App) *cobra.Command {
	var (
		profile string
		query   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects in the order a profile sees them",
		Example: strings.TrimSpace(`
milxos projects list --profile engineer
milxos projects list --query go --format edn
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := model.ParseProfile(profile)
			if err != nil {
				return writeErr(cmd, err)
			}
			cat, err := catalog.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			out := library.Filter(cat.ProjectsForProfile(p), query)
			if out == nil {
				out = []model.Project{}
			}
			return writeOut(cmd, app, map[string]any{
				"data": out,
				"meta": map[string]any{
					"profile": p,
					"query":   strings.TrimSpace(query),
					"count":   len(out),
				},
			})
		},
	}

	cmd.Flags().StringVar(&profile, "profile", envOr("MILXOS_PROFILE", string(model.ProfileStranger)), "Profile whose order to use (recruiter|engineer|stranger)")
	cmd.Flags().StringVar(&query, "query", "", "Case-insensitive filter on title, tag and tech")
	return cmd
}

func newProjectsShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <project-id>",
		Short: "Show one project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			p, err := cat.Find(id)
			if errors.Is(err, catalog.ErrNotFound) {
				return writeErr(cmd, errNotFound("project", id))
			}
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{
				"data":  p,
				"links": p.Links(),
			})
		},
	}
	return cmd
}
