package webtui

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// controlMsg is a JSON text frame from the browser. Anything else is keystrokes.
type controlMsg struct {
	Type string `json:"type"`
	Cols int    `json:"cols"`
	Rows int    `json:"rows"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  32 * 1024,
	WriteBufferSize: 32 * 1024,
	CheckOrigin:     sameOrigin,
}

// sameOrigin accepts requests without an Origin header (non-browser clients) and
// browser requests whose Origin host matches the request host.
func sameOrigin(r *http.Request) bool {
	origin := strings.TrimSpace(r.Header.Get("Origin"))
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	log := s.log.With("session", sessionID, "remote_addr", r.RemoteAddr)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sess, err := s.startSession(sessionID)
	if err != nil {
		log.Error("start pty session", "error", err)
		_ = conn.WriteMessage(websocket.TextMessage, []byte("failed to start session: "+err.Error()))
		return
	}
	defer sess.close()
	log.Info("session started", "pid", sess.cmd.Process.Pid)

	var wg sync.WaitGroup
	errCh := make(chan error, 2)

	wg.Add(2)
	go func() {
		defer wg.Done()
		errCh <- pumpPTYToWS(ctx, sess.ptmx, conn)
	}()
	go func() {
		defer wg.Done()
		errCh <- pumpWSToPTY(ctx, conn, sess.ptmx)
	}()

	var cause error
	select {
	case <-ctx.Done():
		cause = ctx.Err()
	case cause = <-errCh:
	}
	cancel()

	// Unblock both pumps: closing the pty ends the reader, closing the conn ends the other.
	sess.close()
	_ = conn.Close()
	wg.Wait()

	log.Info("session ended", "cause", cause)
}

type session struct {
	ptmx *os.File
	cmd  *exec.Cmd
	once sync.Once
}

func (s *Server) startSession(id string) (*session, error) {
	args := append([]string{}, s.cfg.Args...)
	if p := strings.TrimSpace(s.cfg.Profile); p != "" {
		args = append(args, "--profile", p)
	}
	// No subcommand => interactive TUI.
	cmd := exec.Command(s.cfg.Exe, args...)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"COLORTERM=truecolor",
		"MILXOS_SESSION_ID="+id,
	)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: 120, Rows: 40})
	if err != nil {
		return nil, err
	}
	return &session{ptmx: ptmx, cmd: cmd}, nil
}

func (s *session) close() {
	s.once.Do(func() {
		_ = s.ptmx.Close()
		_ = s.cmd.Process.Kill()
		_, _ = s.cmd.Process.Wait()
	})
}

func pumpPTYToWS(ctx context.Context, ptmx io.Reader, conn *websocket.Conn) error {
	buf := make([]byte, 32*1024)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := ptmx.Read(buf)
		if n > 0 {
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if werr := conn.WriteMessage(websocket.BinaryMessage, buf[:n]); werr != nil {
				return werr
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func pumpWSToPTY(ctx context.Context, conn *websocket.Conn, ptmx *os.File) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		mt, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if len(data) == 0 {
			continue
		}
		if mt == websocket.TextMessage && data[0] == '{' {
			if m, ok := parseControl(data); ok {
				if m.Type == "resize" {
					_ = pty.Setsize(ptmx, &pty.Winsize{Cols: uint16(m.Cols), Rows: uint16(m.Rows)})
				}
				continue
			}
		}
		if _, err := ptmx.Write(data); err != nil {
			return err
		}
	}
}

// parseControl decodes a control frame. A '{' keystroke that isn't valid JSON is
// passed through as input.
func parseControl(data []byte) (controlMsg, bool) {
	var m controlMsg
	if err := json.Unmarshal(data, &m); err != nil {
		return controlMsg{}, false
	}
	m.Type = strings.ToLower(strings.TrimSpace(m.Type))
	switch m.Type {
	case "resize":
		if m.Cols <= 0 || m.Rows <= 0 || m.Cols > 1000 || m.Rows > 1000 {
			return controlMsg{Type: "ignored"}, true
		}
		return m, true
	case "":
		return controlMsg{}, false
	default:
		return controlMsg{Type: "ignored"}, true
	}
}
