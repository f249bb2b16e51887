package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

var activityTypes = []any{"math", "spelling", "storytelling", "reading", "vocab", "logic", "creativity"}

// catalogSchema validates the activity catalog file: an array of activity
// records with the fixed enumerations and a rubric limited to recognized keys.
var catalogSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":          map[string]any{"type": "string", "minLength": 1},
			"type":        map[string]any{"enum": activityTypes},
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"level":       map[string]any{"enum": []any{"easy", "medium", "hard"}},
			"skills": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
			},
			"tags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"estimated_min": map[string]any{"type": "integer", "minimum": 1},
			"format":        map[string]any{"enum": []any{"qna", "freeform"}},
			"rubric": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"answers": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": []any{"string", "number"}},
					},
					"numeric_tolerance": map[string]any{"type": "number", "minimum": 0},
					"min_sentences":     map[string]any{"type": "integer", "minimum": 0},
					"keywords": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"additionalProperties": false,
			},
		},
		"required":             []any{"id", "type", "title", "level", "skills", "estimated_min", "format", "rubric"},
		"additionalProperties": false,
	},
}

// profilesSchema validates the child profiles file.
var profilesSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":    map[string]any{"type": "string", "minLength": 1},
			"name":  map[string]any{"type": "string"},
			"age":   map[string]any{"type": []any{"integer", "string"}},
			"grade": map[string]any{"type": []any{"integer", "string"}},
			"interests": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"learning_style":     map[string]any{"enum": []any{"visual", "auditory", "logical", "kinesthetic"}},
			"attention_span_min": map[string]any{"type": "integer", "minimum": 1},
			"reading_level":      map[string]any{"enum": []any{"pre_reader", "emergent", "approaching", "on_grade", "above_grade"}},
			"baseline_skills": map[string]any{
				"type": "object",
				"additionalProperties": map[string]any{
					"type": "number", "minimum": 0, "maximum": 1,
				},
			},
			"goals": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"id", "name", "learning_style", "attention_span_min", "reading_level", "baseline_skills"},
		"additionalProperties": false,
	},
}

// historySchema validates the persisted history file: an array of session
// logs. The details bag is intentionally open.
var historySchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"child_id": map[string]any{"type": "string", "minLength": 1},
			"attempts": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":          map[string]any{"type": "string"},
						"activity_id": map[string]any{"type": "string", "minLength": 1},
						"timestamp":   map[string]any{"type": "string"},
						"outcome":     map[string]any{"enum": []any{"success", "partial", "struggle", "skipped"}},
						"details":     map[string]any{"type": "object"},
					},
					"required":             []any{"activity_id", "timestamp", "outcome"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"child_id", "attempts"},
		"additionalProperties": false,
	},
}

// validateJSON checks raw JSON against a named schema definition.
func validateJSON(name string, definition map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema(name, definition)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(name string, definition map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
