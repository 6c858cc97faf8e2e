package recipe

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a recipe encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat returns the format named s, case-insensitively. "yml" is
// accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath guesses the format of a recipe file from its extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}

	return ParseFormat(ext)
}

// Decode parses a recipe encoded in the given format. It only checks the
// encoding; steps are validated when the recipe is applied.
func Decode(data []byte, format Format) (*Recipe, error) {
	var (
		r   Recipe
		err error
	)

	switch format {
	case JSON:
		err = api.Unmarshal(data, &r)
	case YAML:
		err = yaml.Unmarshal(data, &r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("recipe: decode %s: %w", format, err)
	}

	return &r, nil
}

// Encode renders r in the given format.
func Encode(r *Recipe, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return api.MarshalIndent(r, "", "  ")
	case YAML:
		return yaml.Marshal(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
