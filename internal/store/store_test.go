package store

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"milxos/internal/prefs"
)

var (
	_ prefs.Store = (*FileKV)(nil)
	_ prefs.Store = (*SQLiteKV)(nil)
	_ prefs.Store = (*RedisKV)(nil)
)

func TestConfigDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
}

func TestParseBackend(t *testing.T) {
	t.Parallel()

	cases := map[string]Backend{"": BackendFile, "file": BackendFile, " SQLite ": BackendSQLite, "redis": BackendRedis}
	for in, want := range cases {
		got, err := ParseBackend(in)
		if err != nil || got != want {
			t.Fatalf("ParseBackend(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseBackend("etcd"); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func testKVRoundTrip(t *testing.T, open func() KV) {
	t.Helper()
	ctx := context.Background()

	kv := open()
	if _, ok, err := kv.Get(ctx, "accent"); err != nil || ok {
		t.Fatalf("expected missing key; ok=%v err=%v", ok, err)
	}
	if err := kv.Set(ctx, "accent", "green"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set(ctx, "accent", "red"); err != nil {
		t.Fatalf("Set (overwrite): %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	kv = open()
	defer kv.Close()
	v, ok, err := kv.Get(ctx, "accent")
	if err != nil || !ok || v != "red" {
		t.Fatalf("after reopen: v=%q ok=%v err=%v", v, ok, err)
	}
}

func TestFileKV_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	testKVRoundTrip(t, func() KV { return &FileKV{Dir: dir} })

	// No temp files left behind.
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(ents) != 1 || ents[0].Name() != prefsFileName {
		var names []string
		for _, e := range ents {
			names = append(names, e.Name())
		}
		t.Fatalf("unexpected files: %v", names)
	}
}

func TestFileKV_CorruptFileIsAnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, prefsFileName), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	kv := &FileKV{Dir: dir}
	if _, _, err := kv.Get(context.Background(), "accent"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSQLiteKV_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testKVRoundTrip(t, func() KV {
		kv, err := OpenSQLite(context.Background(), dir)
		if err != nil {
			t.Fatalf("OpenSQLite: %v", err)
		}
		return kv
	})
}

func TestOpen_DefaultsToConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfigDir, dir)

	kv, err := Open(context.Background(), BackendFile, Options{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer kv.Close()
	if err := kv.Set(context.Background(), "accent", "pink"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, prefsFileName)); err != nil {
		t.Fatalf("expected prefs file under config dir: %v", err)
	}
}

func TestRedisKV_RoundTrip(t *testing.T) {
	addr := os.Getenv("MILXOS_TEST_REDIS")
	if addr == "" {
		t.Skip("MILXOS_TEST_REDIS not set")
	}
	prefix := "milxos:test:" + strconv.Itoa(os.Getpid()) + ":"
	testKVRoundTrip(t, func() KV {
		kv, err := OpenRedis(context.Background(), RedisOptions{Address: addr, Prefix: prefix})
		if err != nil {
			t.Fatalf("OpenRedis: %v", err)
		}
		return kv
	})
}

func TestPreferences_OverFileKV(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()

	p, err := prefs.Load(ctx, &FileKV{Dir: dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := p.SetAccent(ctx, prefs.AccentPurple); err != nil {
		t.Fatalf("SetAccent: %v", err)
	}

	p2, err := prefs.Load(ctx, &FileKV{Dir: dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p2.Accent() != prefs.AccentPurple {
		t.Fatalf("expected purple after reload, got %q", p2.Accent())
	}
}
