package prompt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFromDirectory loads every .json template under dir into the global
// registry, overriding built-ins with matching IDs. Layout:
//
//	dir/
//	  chat/document_qa.json
//	  extraction/structured_metrics.json
func LoadFromDirectory(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return fmt.Errorf("prompt directory not found: %s", dir)
	}

	registry := Get()

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		var t Template
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}

		if t.ID == "" {
			t.ID = idFromPath(path, dir)
		}
		if t.Category == "" {
			t.Category = categoryFromPath(path, dir)
		}

		return registry.Register(&t)
	})
	if err != nil {
		return err
	}

	fmt.Printf("[PROMPT] loaded templates from %s (%d registered)\n", dir, registry.Count())
	return nil
}

// idFromPath derives "chat.document_qa" from "chat/document_qa.json".
func idFromPath(path, baseDir string) string {
	rel, _ := filepath.Rel(baseDir, path)
	rel = strings.TrimSuffix(rel, ".json")
	return strings.ReplaceAll(rel, string(filepath.Separator), ".")
}

func categoryFromPath(path, baseDir string) string {
	rel, _ := filepath.Rel(baseDir, path)
	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) > 1 {
		return parts[0]
	}
	return "default"
}
