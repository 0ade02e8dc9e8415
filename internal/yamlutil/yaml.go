// Package yamlutil wraps YAML decoding to isolate the external dependency.
// Frontmatter blocks and config files are the only YAML consumers, so the
// surface is decode-only.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps YAML input (default 1MB). Frontmatter blocks are tiny;
// the cap guards against a malformed document swallowing the whole file.
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("yamlutil: nil or empty data")
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("yamlutil: input exceeds maximum size")
)

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input. Config files use it
// so typos surface instead of silently defaulting.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// DecodeMap decodes YAML into a fresh string-keyed map, the shape
// frontmatter blocks take. Returns an error for scalar or sequence roots.
func DecodeMap(data []byte) (map[string]any, error) {
	m := make(map[string]any)
	if err := Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
