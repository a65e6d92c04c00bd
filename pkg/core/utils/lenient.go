// Package utils holds shared helpers for cleaning up LLM output before it
// reaches callers: markdown stripping and lenient JSON decoding.
package utils

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON fixes the JSON defects chat models commonly produce: single
// quotes, unquoted keys, trailing commas, unclosed brackets, markdown code
// fences around the payload.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// DecodeLenient decodes an LLM response into target, trying progressively
// more forgiving parsers: strict JSON, then repaired JSON, then Hjson
// (which tolerates comments, unquoted strings and missing commas).
func DecodeLenient(raw string, target interface{}) error {
	cleaned := CleanMarkdown(raw)

	if err := json.Unmarshal([]byte(cleaned), target); err == nil {
		return nil
	}

	if repaired, err := RepairJSON(cleaned); err == nil {
		if err := json.Unmarshal([]byte(repaired), target); err == nil {
			return nil
		}
	}

	if err := hjson.Unmarshal([]byte(cleaned), target); err != nil {
		return fmt.Errorf("response is not decodable as JSON or Hjson: %w", err)
	}
	return nil
}
