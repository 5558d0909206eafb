package cli

import (
	"milxos/internal/catalog"
	"milxos/internal/model"

	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the embedded project catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Load()
			if err != nil {
				return writeErr(cmd, err)
			}
			// Lead project per profile is a quick sanity check on the priority maps.
			lead := map[string]string{}
			for _, p := range model.Profiles() {
				if ps := cat.ProjectsForProfile(p); len(ps) > 0 {
					lead[string(p)] = ps[0].ID
				}
			}
			return writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"ok":       true,
					"projects": cat.Len(),
					"lead":     lead,
				},
			})
		},
	}
}
