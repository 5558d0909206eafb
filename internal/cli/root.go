package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"milxos/internal/catalog"
	"milxos/internal/config"
	"milxos/internal/format"
	"milxos/internal/model"
	"milxos/internal/prefs"
	"milxos/internal/store"
	"milxos/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	PrettyJSON   bool
	Format       string
	PrefsBackend string
	ConfigDir    string
}

func NewRootCmd() *cobra.Command {
	app := &App{}
	var profile string

	cmd := &cobra.Command{
		Use:          "milxos",
		Short:        "milxOS: a console-style project library for the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Browse the library (pick a profile first)
  milxos

  # Skip the picker
  milxos --profile engineer

  # Scriptable commands
  milxos projects list --profile recruiter
  milxos accent set purple

  # Serve the API and the browser terminal
  milxos serve --addr 127.0.0.1:8080
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app, profile)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("MILXOS_FORMAT", "json"), "Output format (json|edn)")
	cmd.PersistentFlags().StringVar(&app.PrefsBackend, "prefs-backend", envOr("MILXOS_PREFS_BACKEND", ""), "Preference store (file|sqlite|redis)")
	cmd.PersistentFlags().StringVar(&app.ConfigDir, "config-dir", envOr(store.EnvConfigDir, ""), "Directory for the file and sqlite preference stores (default ~/.milxos)")
	cmd.Flags().StringVar(&profile, "profile", envOr("MILXOS_PROFILE", ""), "Start in the library as this profile (recruiter|engineer|stranger)")

	cmd.AddCommand(newProjectsCmd(app))
	cmd.AddCommand(newAccentCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newServeCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App, profile string) error {
	var start model.Profile
	if strings.TrimSpace(profile) != "" {
		p, err := model.ParseProfile(profile)
		if err != nil {
			return writeErr(cmd, err)
		}
		start = p
	}

	cat, err := catalog.Load()
	if err != nil {
		return writeErr(cmd, err)
	}
	p, kv, err := openPrefs(cmd.Context(), app)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer kv.Close()

	return tui.Run(cmd.Context(), tui.Options{Catalog: cat, Prefs: p, Profile: start})
}

// loadConfig reads the environment config and applies the global flags on top.
func loadConfig(app *App) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(app.PrefsBackend) != "" {
		b, err := store.ParseBackend(app.PrefsBackend)
		if err != nil {
			return nil, err
		}
		cfg.Prefs.Backend = b
	}
	if d := strings.TrimSpace(app.ConfigDir); d != "" {
		cfg.Prefs.Dir = d
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func openPrefs(ctx context.Context, app *App) (*prefs.Preferences, store.KV, error) {
	cfg, err := loadConfig(app)
	if err != nil {
		return nil, nil, err
	}
	kv, err := store.Open(ctx, cfg.Prefs.Backend, cfg.StoreOptions())
	if err != nil {
		return nil, nil, err
	}
	p, err := prefs.Load(ctx, kv)
	if err != nil {
		_ = kv.Close()
		return nil, nil, err
	}
	return p, kv, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
