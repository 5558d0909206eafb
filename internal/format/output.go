// Package format renders CLI payloads as JSON or EDN.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

type Format string

const (
	JSON Format = "json"
	EDN  Format = "edn"
)

func Parse(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", JSON:
		return JSON, nil
	case EDN:
		return EDN, nil
	default:
		return "", fmt.Errorf("unknown format: %s (expected json|edn)", s)
	}
}

// Write renders v to w in the given format. An empty format means JSON.
func Write(w io.Writer, v any, format string, pretty bool) error {
	f, err := Parse(format)
	if err != nil {
		return err
	}
	if f == EDN {
		return WriteEDN(w, v, pretty)
	}
	return WriteJSON(w, v, pretty)
}

// WriteJSON writes one JSON document followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
