package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a world file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the format from a file extension. Anything that is not
// .yaml or .yml is treated as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses world data. In strict mode unknown fields are rejected.
func Decode(data []byte, format Format, strict bool) (*Scenario, error) {
	var s Scenario
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(strict)
		if err := dec.Decode(&s); err != nil {
			return nil, newLoadError(ErrSyntax, "decode", "yaml", err)
		}
	case FormatJSON:
		if !json.Valid(data) {
			return nil, newLoadError(ErrSyntax, "decode", "json", fmt.Errorf("invalid JSON"))
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		if strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&s); err != nil {
			return nil, newLoadError(ErrSyntax, "decode", "json", err)
		}
	default:
		return nil, newLoadError(ErrSyntax, "decode", fmt.Sprintf("unknown format %q", format), nil)
	}
	return &s, nil
}

// DecodeFile reads and parses a world file, choosing the format by extension.
func DecodeFile(path string, strict bool) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newLoadError(ErrIO, "decode", path, err)
	}
	return Decode(data, FormatForPath(path), strict)
}
