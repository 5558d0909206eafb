package tui

import (
	"strings"
	"testing"

	"milxos/internal/prefs"

	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	xansi "github.com/charmbracelet/x/ansi"
)

func TestMarkdownStyle_RespectsTUITheme(t *testing.T) {
	t.Setenv("MILXOS_TUI_MD_STYLE", "")
	t.Setenv("COLORFGBG", "")

	t.Setenv("MILXOS_TUI_THEME", "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("expected light; got %q", got)
	}

	t.Setenv("MILXOS_TUI_THEME", "dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}
}

func TestMarkdownStyle_MDStyleOverridesTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("MILXOS_TUI_THEME", "light")

	t.Setenv("MILXOS_TUI_MD_STYLE", "dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("expected dark; got %q", got)
	}
}

func TestMarkdownStyleConfig_KeepsLinkStyles(t *testing.T) {
	for _, tc := range []struct {
		name string
		want ansi.StyleConfig
	}{
		{"dark", styles.DarkStyleConfig},
		{"light", styles.LightStyleConfig},
	} {
		got := markdownStyleConfig(tc.name)
		if strPtrValue(got.Link.Color) != strPtrValue(tc.want.Link.Color) {
			t.Fatalf("%s: link color changed: %q vs %q", tc.name, strPtrValue(got.Link.Color), strPtrValue(tc.want.Link.Color))
		}
	}
}

func TestMarkdownStyleConfig_UsesAccent(t *testing.T) {
	t.Cleanup(func() { applyAccent(prefs.DefaultAccent) })

	applyAccent(prefs.AccentGreen)
	got := markdownStyleConfig("dark")
	if strPtrValue(got.Strong.Color) != prefs.AccentGreen.Swatch().Dark {
		t.Fatalf("expected strong text in accent; got %q", strPtrValue(got.Strong.Color))
	}
}

func TestRenderMarkdown_WrapsToWidth(t *testing.T) {
	t.Setenv("MILXOS_TUI_MD_STYLE", "dark")

	md := "## Features\n\n" + strings.Repeat("word ", 40) + "\n\n- **Bold** item"
	out := renderMarkdown(md, 40)
	if out == "" {
		t.Fatalf("expected rendered output")
	}
	for i, ln := range strings.Split(out, "\n") {
		if w := xansi.StringWidth(ln); w > 40 {
			t.Fatalf("line %d too wide (%d): %q", i, w, ln)
		}
	}
	plain := xansi.Strip(out)
	if !strings.Contains(plain, "Features") || !strings.Contains(plain, "Bold") {
		t.Fatalf("missing content: %q", plain)
	}
	if renderMarkdown("   ", 40) != "" {
		t.Fatalf("blank markdown should render empty")
	}
}

func strPtrValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
