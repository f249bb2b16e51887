// Package store owns the persistence boundary: loading the activity catalog,
// child profiles, and session history, and writing back history and profile
// snapshots. Records are schema-validated on load so the rest of the system
// only ever sees well-typed data.
package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default file names inside the data directory.
const (
	CatalogFile  = "activities.json"
	ProfilesFile = "profiles.json"
	HistoryFile  = "history.json"
	SnapshotsDir = "snapshots"
)

// DefaultDataDir resolves the data directory in priority order:
// 1. BUDDY_DATA environment variable
// 2. $XDG_DATA_HOME/buddy
// 3. ~/.local/share/buddy
func DefaultDataDir() (string, error) {
	if p := os.Getenv("BUDDY_DATA"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "buddy"), nil
}

// CatalogPath returns the activity catalog path inside dir.
func CatalogPath(dir string) string { return filepath.Join(dir, CatalogFile) }

// ProfilesPath returns the profiles path inside dir.
func ProfilesPath(dir string) string { return filepath.Join(dir, ProfilesFile) }

// HistoryPath returns the history path inside dir.
func HistoryPath(dir string) string { return filepath.Join(dir, HistoryFile) }

// SnapshotPath returns the snapshot path for a child inside dir.
func SnapshotPath(dir, childID string) string {
	return filepath.Join(dir, SnapshotsDir, childID+".json")
}

// WriteFileAtomic writes data to path via a temp file in the same directory
// followed by a rename, so a crash mid-write cannot leave a torn file. The
// parent directory is created if needed.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
