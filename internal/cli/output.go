package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormatter routes command results to the right writer in the right
// shape. Diagnostics go to ErrWriter so JSON output on Writer stays valid.
type OutputFormatter struct {
	Format    string // "json" | "text"
	Writer    io.Writer
	ErrWriter io.Writer
}

// JSON encodes v (indented) to the main writer.
func (f *OutputFormatter) JSON(v any) error {
	enc := json.NewEncoder(f.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Textf writes formatted text to the main writer.
func (f *OutputFormatter) Textf(format string, args ...any) {
	fmt.Fprintf(f.Writer, format, args...)
}

// Errorf writes formatted text to the error writer.
func (f *OutputFormatter) Errorf(format string, args ...any) {
	fmt.Fprintf(f.ErrWriter, format, args...)
}
