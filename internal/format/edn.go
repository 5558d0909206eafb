package format

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// WriteEDN writes v as EDN. Values go through their JSON encoding first so json tags
// decide field names; camelCase keys become kebab-case keywords (techStack -> :tech-stack).
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	e := ednWriter{w: bw, pretty: pretty}
	e.value(x, 0)
	bw.WriteByte('\n')
	return bw.Flush()
}

type ednWriter struct {
	w      *bufio.Writer
	pretty bool
}

func (e ednWriter) value(v any, depth int) {
	switch t := v.(type) {
	case nil:
		e.w.WriteString("nil")
	case bool:
		e.w.WriteString(strconv.FormatBool(t))
	case string:
		e.w.WriteString(strconv.Quote(t))
	case json.Number:
		e.w.WriteString(t.String())
	case []any:
		e.coll('[', ']', len(t), depth, func(i int) { e.value(t[i], depth+1) })
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		e.coll('{', '}', len(keys), depth, func(i int) {
			e.w.WriteString(Keyword(keys[i]))
			e.w.WriteByte(' ')
			e.value(t[keys[i]], depth+1)
		})
	default:
		e.w.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
}

func (e ednWriter) coll(opening, closing byte, n, depth int, elem func(i int)) {
	e.w.WriteByte(opening)
	for i := 0; i < n; i++ {
		switch {
		case e.pretty:
			e.w.WriteByte('\n')
			e.w.WriteString(strings.Repeat("  ", depth+1))
		case i > 0:
			e.w.WriteByte(' ')
		}
		elem(i)
	}
	if e.pretty && n > 0 {
		e.w.WriteByte('\n')
		e.w.WriteString(strings.Repeat("  ", depth))
	}
	e.w.WriteByte(closing)
}

// Keyword converts a JSON field name to an EDN keyword.
func Keyword(s string) string {
	var b strings.Builder
	b.WriteByte(':')
	prevLower := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == ' ' || r == '_':
			b.WriteByte('-')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return b.String()
}
