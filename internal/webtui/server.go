// Package webtui serves the interactive TUI to a browser: each websocket gets its own
// milxos child process on a server-side PTY, rendered client-side by xterm.js.
package webtui

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strings"
)

//go:embed templates/*.html
var assetsFS embed.FS

type Config struct {
	// Exe is the binary to spawn per session. Empty means os.Executable().
	Exe string
	// Args are passed to every session (e.g. --prefs-backend redis).
	Args []string
	// Profile, when set, skips the profile picker in spawned sessions.
	Profile string
	// Title is shown in the browser tab.
	Title string
}

type Server struct {
	cfg  Config
	tmpl *template.Template
	log  *slog.Logger
}

func NewServer(cfg Config) (*Server, error) {
	tmpl, err := template.ParseFS(assetsFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.Exe) == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, err
		}
		cfg.Exe = exe
	}
	if strings.TrimSpace(cfg.Title) == "" {
		cfg.Title = "milxOS"
	}
	return &Server{cfg: cfg, tmpl: tmpl, log: slog.Default().With("component", "webtui")}, nil
}

// Routes returns the pattern -> handler pairs to mount on the main router.
func (s *Server) Routes() map[string]http.Handler {
	return map[string]http.Handler{
		"/terminal": http.HandlerFunc(s.handleTerminal),
		"/ws":       http.HandlerFunc(s.handleWS),
	}
}

type terminalVM struct {
	Title   string
	Profile string
}

func (s *Server) handleTerminal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	vm := terminalVM{Title: s.cfg.Title, Profile: strings.TrimSpace(s.cfg.Profile)}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "terminal.html", vm); err != nil {
		s.log.Error("render terminal page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
