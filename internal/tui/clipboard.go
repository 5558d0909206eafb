package tui

import (
	"errors"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type clipboardDoneMsg struct {
	what string
	err  error
}

type urlOpenDoneMsg struct {
	url string
	err error
}

// copyToClipboard is swapped out in tests; the real clipboard needs a display server.
var copyToClipboard = func(s string) error {
	return clipboard.WriteAll(strings.ReplaceAll(s, "\r\n", "\n"))
}

func copyCmd(what, s string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(s) == "" {
			return clipboardDoneMsg{what: what, err: errors.New("nothing to copy")}
		}
		return clipboardDoneMsg{what: what, err: copyToClipboard(s)}
	}
}

// openURL is swapped out in tests.
var openURL = func(u string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", u)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", u)
	default:
		cmd = exec.Command("xdg-open", u)
	}
	// Prevent any output from flashing in the terminal.
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Wait()
}

func openURLCmd(u string) tea.Cmd {
	u = strings.TrimSpace(u)
	return func() tea.Msg {
		if u == "" {
			return urlOpenDoneMsg{err: errors.New("empty url")}
		}
		return urlOpenDoneMsg{url: u, err: openURL(u)}
	}
}
