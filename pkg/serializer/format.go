// Package serializer writes catalog documents to files or stdout with
// deterministic, byte-for-byte reproducible output, and reads them back.
package serializer

import (
	"path/filepath"
	"strings"
)

// StdoutURI is the special path indicating output should go to stdout.
const StdoutURI = "-"

// Format identifies a serialization format.
type Format string

const (
	// FormatJSON is indented JSON with sorted map keys and a trailing
	// newline.
	FormatJSON Format = "json"

	// FormatYAML is YAML with sorted map keys.
	FormatYAML Format = "yaml"
)

// IsUnknown reports whether the format is not one of the supported formats.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return false
	}
	return true
}

// SupportedFormats returns the names of all supported formats.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML)}
}

// FormatFromPath infers the format from a file extension. Unrecognized
// extensions default to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}
