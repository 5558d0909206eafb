package prefs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// KeyAccent is the store key the accent token is persisted under.
const KeyAccent = "accent"

// Store is a small persistent key-value store.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Preferences is the process-wide preferences cell. It is passed explicitly to whoever needs it
// (TUI, HTTP handlers, CLI) rather than living in a global.
type Preferences struct {
	store Store

	mu        sync.RWMutex
	accent    Accent
	listeners []func(Accent)
}

// Load reads the persisted accent. Missing or unrecognized values fall back to DefaultAccent.
func Load(ctx context.Context, st Store) (*Preferences, error) {
	p := &Preferences{store: st, accent: DefaultAccent}
	if st == nil {
		return p, nil
	}
	raw, ok, err := st.Get(ctx, KeyAccent)
	if err != nil {
		return nil, fmt.Errorf("load accent: %w", err)
	}
	if !ok {
		return p, nil
	}
	a, err := ParseAccent(raw)
	if err != nil {
		slog.Warn("ignoring persisted accent", "value", raw, "err", err)
		return p, nil
	}
	p.accent = a
	return p, nil
}

func (p *Preferences) Accent() Accent {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.accent
}

// SetAccent validates a, persists it, and only then makes it current.
// When persisting fails the previous accent stays in effect.
func (p *Preferences) SetAccent(ctx context.Context, a Accent) error {
	if !a.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAccent, string(a))
	}
	if p.store != nil {
		if err := p.store.Set(ctx, KeyAccent, string(a)); err != nil {
			return fmt.Errorf("save accent: %w", err)
		}
	}

	p.mu.Lock()
	changed := p.accent != a
	p.accent = a
	listeners := append([]func(Accent){}, p.listeners...)
	p.mu.Unlock()

	if changed {
		for _, fn := range listeners {
			fn(a)
		}
	}
	return nil
}

// OnChange registers fn to run after every successful accent change.
// Listeners run on the caller's goroutine, outside the lock.
func (p *Preferences) OnChange(fn func(Accent)) {
	if fn == nil {
		return
	}
	p.mu.Lock()
	p.listeners = append(p.listeners, fn)
	p.mu.Unlock()
}
