package serializer

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileReader reads a previously written document back from a file.
type FileReader struct {
	format Format
	f      *os.File
}

// NewFileReader opens path for deserialization in the given format.
func NewFileReader(format Format, path string) (*FileReader, error) {
	if format.IsUnknown() {
		format = FormatJSON
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	return &FileReader{format: format, f: f}, nil
}

// Deserialize decodes the file content into v. JSON numbers are decoded with
// UseNumber so integer record values survive the round trip undistorted.
func (r *FileReader) Deserialize(v any) error {
	switch r.format {
	case FormatYAML:
		if err := yaml.NewDecoder(r.f).Decode(v); err != nil {
			return fmt.Errorf("failed to decode yaml from %q: %w", r.f.Name(), err)
		}
	default:
		dec := json.NewDecoder(r.f)
		dec.UseNumber()
		if err := dec.Decode(v); err != nil {
			return fmt.Errorf("failed to decode json from %q: %w", r.f.Name(), err)
		}
	}
	return nil
}

// Close closes the underlying file.
func (r *FileReader) Close() error {
	return r.f.Close()
}
