package store

import (
	"os"
	"path/filepath"
	"strings"
)

// EnvConfigDir overrides the config dir (keeps unit tests from touching ~/.milxos).
const EnvConfigDir = "MILXOS_CONFIG_DIR"

func ConfigDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(EnvConfigDir)); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".milxos"), nil
}

// atomicWriteFile writes b to path via a uniquely named temp file in dir and a rename,
// so concurrent writers (TUI + serve) never observe a torn file.
func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
