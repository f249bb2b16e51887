package store

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/session"
)

// SaveHistory writes the full session history as a JSON array, atomically.
func SaveHistory(history []session.SessionLog, path string) error {
	if history == nil {
		history = []session.SessionLog{}
	}
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}

// SaveSnapshot writes one child's profile as a JSON object, atomically. The
// conventional path is <dir>/snapshots/<child-id>.json but any path works.
func SaveSnapshot(child *learner.ChildProfile, path string) error {
	data, err := json.MarshalIndent(child, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
