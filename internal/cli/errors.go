package cli

import (
	"fmt"

	"milxos/internal/catalog"
)

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func (e notFoundError) Unwrap() error { return catalog.ErrNotFound }

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}
