package webtui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSameOrigin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		origin, host string
		want         bool
	}{
		{"", "localhost:8080", true},
		{"http://localhost:8080", "localhost:8080", true},
		{"https://LOCALHOST:8080", "localhost:8080", true},
		{"http://evil.example", "localhost:8080", false},
		{"http://localhost:8080.evil.example", "localhost:8080", false},
		{"::not a url", "localhost:8080", false},
	}
	for _, tc := range cases {
		r := httptest.NewRequest(http.MethodGet, "/ws", nil)
		r.Host = tc.host
		if tc.origin != "" {
			r.Header.Set("Origin", tc.origin)
		}
		if got := sameOrigin(r); got != tc.want {
			t.Fatalf("origin=%q host=%q: got %v want %v", tc.origin, tc.host, got, tc.want)
		}
	}
}

func TestParseControl(t *testing.T) {
	t.Parallel()

	m, ok := parseControl([]byte(`{"type":"Resize","cols":100,"rows":30}`))
	if !ok || m.Type != "resize" || m.Cols != 100 || m.Rows != 30 {
		t.Fatalf("unexpected resize: %+v ok=%v", m, ok)
	}
	if m, ok := parseControl([]byte(`{"type":"resize","cols":0,"rows":30}`)); !ok || m.Type != "ignored" {
		t.Fatalf("expected bogus resize to be swallowed; got %+v ok=%v", m, ok)
	}
	if _, ok := parseControl([]byte(`{`)); ok {
		t.Fatalf("a bare brace is a keystroke")
	}
	if _, ok := parseControl([]byte(`{"cols":1}`)); ok {
		t.Fatalf("untyped JSON is passed through as input")
	}
}

func TestTerminalPage(t *testing.T) {
	t.Parallel()

	s, err := NewServer(Config{Exe: "/bin/true", Profile: "engineer"})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	rec := httptest.NewRecorder()
	s.Routes()["/terminal"].ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/terminal", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>milxOS</title>") || !strings.Contains(body, `data-profile="engineer"`) {
		t.Fatalf("unexpected page: %s", body)
	}
	if !strings.Contains(body, "/ws") {
		t.Fatalf("page should connect to /ws")
	}
}
