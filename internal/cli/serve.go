package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"milxos/internal/api"
	"milxos/internal/catalog"
	"milxos/internal/config"
	"milxos/internal/model"
	"milxos/internal/prefs"
	"milxos/internal/store"
	"milxos/internal/webtui"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var (
		addr    string
		profile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API and the browser terminal",
		Long: strings.TrimSpace(`
Serve the catalog and accent API under /api/v1 and the interactive library in a browser
terminal at /terminal. Each browser tab runs its own milxos process on a server-side PTY.

Configuration comes from the environment (MILXOS_HOST, MILXOS_PORT, MILXOS_PREFS_BACKEND,
REDIS_ADDRESS, REDIS_PASSWORD, REDIS_DB, MILXOS_SHUTDOWN_TIMEOUT); flags win over it.
`),
		Example: strings.TrimSpace(`
milxos serve --addr 127.0.0.1:8080
MILXOS_PREFS_BACKEND=redis REDIS_ADDRESS=localhost:6379 milxos serve
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.SetDefault(slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})))

			if p := strings.TrimSpace(profile); p != "" {
				if _, err := model.ParseProfile(p); err != nil {
					return writeErr(cmd, err)
				}
			}

			cfg, err := loadConfig(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			listenAddr := cfg.Addr()
			if a := strings.TrimSpace(addr); a != "" {
				listenAddr = a
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			cat, err := catalog.Load()
			if err != nil {
				return writeErr(cmd, err)
			}

			initCtx, initCancel := context.WithTimeout(ctx, 30*time.Second)
			kv, err := store.Open(initCtx, cfg.Prefs.Backend, cfg.StoreOptions())
			if err != nil {
				initCancel()
				return writeErr(cmd, err)
			}
			defer kv.Close()
			p, err := prefs.Load(initCtx, kv)
			initCancel()
			if err != nil {
				return writeErr(cmd, err)
			}

			wt, err := webtui.NewServer(webtui.Config{
				Args:    sessionArgs(cfg),
				Profile: strings.TrimSpace(profile),
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			srv := api.NewServer(cat, p, webtuiMounts(wt)...)

			ln, err := net.Listen("tcp", listenAddr)
			if err != nil {
				return writeErr(cmd, err)
			}

			_ = writeOut(cmd, app, map[string]any{
				"data": map[string]any{
					"addr":      ln.Addr().String(),
					"backend":   cfg.Prefs.Backend,
					"projects":  cat.Len(),
					"startedAt": time.Now().UTC().Format(time.RFC3339Nano),
				},
				"_hints": []string{
					"open http://" + ln.Addr().String() + "/terminal",
					"curl http://" + ln.Addr().String() + "/api/v1/projects?profile=engineer",
				},
			})

			if err := serveHTTP(ctx, ln, srv.Router(), cfg.Server.ShutdownTimeout); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default MILXOS_HOST:MILXOS_PORT)")
	cmd.Flags().StringVar(&profile, "profile", "", "Skip the profile picker in browser sessions")
	return cmd
}

// sessionArgs makes browser sessions read and write the same preference store as the server.
func sessionArgs(cfg *config.Config) []string {
	args := []string{"--prefs-backend", string(cfg.Prefs.Backend)}
	if d := strings.TrimSpace(cfg.Prefs.Dir); d != "" {
		args = append(args, "--config-dir", d)
	}
	return args
}

func webtuiMounts(wt *webtui.Server) []api.Mount {
	routes := wt.Routes()
	patterns := make([]string, 0, len(routes))
	for p := range routes {
		patterns = append(patterns, p)
	}
	slices.Sort(patterns)
	mounts := make([]api.Mount, 0, len(patterns))
	for _, p := range patterns {
		mounts = append(mounts, api.Mount{Pattern: p, Handler: routes[p]})
	}
	return mounts
}

// serveHTTP serves on ln until ctx is cancelled, then shuts down within timeout.
func serveHTTP(ctx context.Context, ln net.Listener, h http.Handler, timeout time.Duration) error {
	httpServer := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "addr", ln.Addr().String())
		errc <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	slog.Info("milxos server stopped")
	return nil
}
