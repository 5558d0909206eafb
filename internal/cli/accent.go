package cli

import (
	"milxos/internal/prefs"

	"github.com/spf13/cobra"
)

func newAccentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accent",
		Short: "Read or change the accent color",
	}
	cmd.AddCommand(newAccentGetCmd(app))
	cmd.AddCommand(newAccentSetCmd(app))
	cmd.AddCommand(newAccentListCmd(app))
	return cmd
}

type accentOut struct {
	Accent prefs.Accent `json:"accent"`
	Swatch prefs.Swatch `json:"swatch"`
	Active bool         `json:"active,omitempty"`
}

func newAccentGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Print the current accent",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, kv, err := openPrefs(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()
			a := p.Accent()
			return writeOut(cmd, app, map[string]any{"data": accentOut{Accent: a, Swatch: a.Swatch()}})
		},
	}
}

func newAccentSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <accent>",
		Short: "Change and persist the accent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := prefs.ParseAccent(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			p, kv, err := openPrefs(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()
			if err := p.SetAccent(cmd.Context(), a); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": accentOut{Accent: a, Swatch: a.Swatch()}})
		},
	}
}

func newAccentListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the accent palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, kv, err := openPrefs(cmd.Context(), app)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer kv.Close()
			cur := p.Accent()
			var out []accentOut
			for _, a := range prefs.Accents() {
				out = append(out, accentOut{Accent: a, Swatch: a.Swatch(), Active: a == cur})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
}
