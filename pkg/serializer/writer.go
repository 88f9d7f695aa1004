package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Serializer writes a value to an output destination.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer releases resources held by a serializer, such as an open file.
type Closer interface {
	Close() error
}

// Writer serializes values to an io.Writer in a fixed format. Output is
// deterministic for a given value: both encoders emit map keys in sorted
// order, and JSON output carries a single trailing newline.
type Writer struct {
	format Format
	out    io.Writer
	closer io.Closer
}

// NewWriter creates a writer for the given format and destination. Unknown
// formats fall back to JSON; a nil destination falls back to stdout.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	if out == nil {
		out = os.Stdout
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter creates a writer targeting stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a writer for the given path. An empty path
// or the "-" sentinel targets stdout. For file paths, missing parent
// directories are created first; the eventual write replaces the whole file.
func NewFileWriterOrStdout(format Format, path string) (*Writer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format), nil
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory %q: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}

	w := NewWriter(format, f)
	w.closer = f
	return w, nil
}

// Serialize writes v to the destination in the writer's format.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var raw []byte
	var err error
	switch w.format {
	case FormatYAML:
		raw, err = yaml.Marshal(v)
	default:
		raw, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			raw = append(raw, '\n')
		}
	}
	if err != nil {
		return fmt.Errorf("failed to serialize to %s: %w", w.format, err)
	}

	if _, err := w.out.Write(raw); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Close closes the underlying file, if any. Closing a stdout writer or
// closing twice is a no-op.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	c := w.closer
	w.closer = nil
	return c.Close()
}
