package source

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-hints/pkg/model"
)

// Save serialises a field-hints mapping to <dir>/Hints/<modelName>.json,
// creating the folder when needed. Unlike the read path, write failures are
// surfaced: saving is an explicit user action and must not fail silently.
func Save(dir, modelName string, hints map[string]model.FieldHint) error {
	if dir == "" {
		return errors.New("source: save: directory is required")
	}
	if modelName == "" {
		return errors.New("source: save: model name is required")
	}

	payload := make(map[string]model.FieldHint, len(hints))
	for id, hint := range hints {
		payload[id] = hint
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("source: save %s: marshal: %w", modelName, err)
	}

	target := filepath.Join(dir, HintsDir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("source: save %s: %w", modelName, err)
	}

	name := filepath.Join(target, modelName+".json")
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("source: save %s: %w", modelName, err)
	}
	return nil
}
