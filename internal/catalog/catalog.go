// Package catalog reads intent definition documents: an ordered list of
// {tag, patterns, responses} records, as JSON or YAML.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"gems-assistant/internal/model"
)

var (
	ErrSourceMissing     = errors.New("intent definition source not found")
	ErrMalformed         = errors.New("intent definition source is malformed")
	ErrUnsupportedFormat = errors.New("unsupported intent definition format")
)

// Document is the on-disk shape of an intent definition source.
type Document struct {
	Intents []model.Intent `json:"intents" yaml:"intents"`
}

// Format selects the decoder for a definition source.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads and validates the definition source at path.
func LoadFile(path string) ([]model.Intent, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, path)
		}
		return nil, fmt.Errorf("reading intent definitions %s: %w", path, err)
	}

	intents, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return intents, nil
}

// Parse decodes and validates a definition document. Record order is kept.
func Parse(data []byte, format Format) ([]model.Intent, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := Validate(doc.Intents); err != nil {
		return nil, err
	}
	return doc.Intents, nil
}

// Validate checks that every record has a non-empty, unique tag.
func Validate(intents []model.Intent) error {
	seen := make(map[string]int, len(intents))
	for i, it := range intents {
		tag := strings.TrimSpace(it.Tag)
		if tag == "" {
			return fmt.Errorf("%w: intent %d has no tag", ErrMalformed, i)
		}
		if prev, ok := seen[tag]; ok {
			return fmt.Errorf("%w: tag %q repeated at %d and %d", ErrMalformed, tag, prev, i)
		}
		seen[tag] = i
	}
	return nil
}
