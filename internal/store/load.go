package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/buddy/internal/catalog"
	"github.com/abhisek/buddy/internal/learner"
	"github.com/abhisek/buddy/internal/session"
)

// LoadCatalog reads and validates the activity catalog. A missing file is an
// error: there is nothing to recommend without a catalog.
func LoadCatalog(path string) ([]catalog.Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	if err := validateJSON("activities", catalogSchema, raw); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	var activities []catalog.Activity
	if err := json.Unmarshal(raw, &activities); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return activities, nil
}

// LoadProfiles reads and validates the child profiles file.
func LoadProfiles(path string) ([]learner.ChildProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles %s: %w", path, err)
	}
	if err := validateJSON("profiles", profilesSchema, raw); err != nil {
		return nil, fmt.Errorf("profiles %s: %w", path, err)
	}

	var profiles []learner.ChildProfile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, fmt.Errorf("decode profiles %s: %w", path, err)
	}
	return profiles, nil
}

// LoadHistory reads and validates the session history. A missing file means
// no history yet and returns an empty collection, not an error. Malformed or
// schema-violating content is surfaced; the store never auto-repairs.
func LoadHistory(path string) ([]session.SessionLog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history %s: %w", path, err)
	}
	if err := validateJSON("history", historySchema, raw); err != nil {
		return nil, fmt.Errorf("history %s: %w", path, err)
	}

	var history []session.SessionLog
	if err := json.Unmarshal(raw, &history); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", path, err)
	}
	return history, nil
}

// LoadSnapshot reads a single child profile snapshot.
func LoadSnapshot(path string) (*learner.ChildProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s: %w", path, err)
	}

	var child learner.ChildProfile
	if err := json.Unmarshal(raw, &child); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return &child, nil
}
