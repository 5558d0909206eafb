package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"milxos/internal/library"
	"milxos/internal/model"
	"milxos/internal/prefs"

	tea "github.com/charmbracelet/bubbletea"
)

// EnvDebugLog names a file that receives a debug trace of key handling.
const EnvDebugLog = "MILXOS_TUI_DEBUG_LOG"

type Options struct {
	Catalog library.Source
	Prefs   *prefs.Preferences

	// Profile skips the picker when set.
	Profile model.Profile

	Input  io.Reader
	Output io.Writer
}

func Run(ctx context.Context, opts Options) error {
	if opts.Catalog == nil {
		return fmt.Errorf("tui: catalog is required")
	}

	applyThemePreference()
	applyColorProfilePreference()
	applyGlyphPreference()

	m := newAppModel(ctx, opts.Catalog, opts.Prefs, opts.Profile)

	if path := strings.TrimSpace(os.Getenv(EnvDebugLog)); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
		m.log = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
		m.log.Debug("tui start", "profile", string(opts.Profile))
	}

	popts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Input != nil {
		popts = append(popts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		popts = append(popts, tea.WithOutput(opts.Output))
	}
	prog := tea.NewProgram(m, popts...)

	if opts.Prefs != nil {
		// SetAccent runs off the update loop; route changes back through it.
		opts.Prefs.OnChange(func(a prefs.Accent) {
			prog.Send(accentChangedMsg{accent: a})
		})
	}

	_, err := prog.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
