package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/sgftk/sgftk/internal/parser"
	"github.com/sgftk/sgftk/internal/sgf"
)

// stdio is the conventional path meaning stdin or stdout.
const stdio = "-"

// LoadCollection reads SGF text from path (empty or "-" reads from stdin)
// and parses it with the given property type table.
func LoadCollection(path string, types sgf.Types, stdin io.Reader) (sgf.Collection, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == stdio {
		data, err = io.ReadAll(stdin)
		path = "<stdin>"
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	c, err := parser.ParseWithTypes(string(data), types)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// WriteText writes s to path (empty or "-" writes to stdout).
func WriteText(path, s string, stdout io.Writer) error {
	if path == "" || path == stdio {
		_, err := io.WriteString(stdout, s)
		return err
	}
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// render serializes a collection, compact or pretty, with a trailing
// newline in compact form (Pretty already ends with one).
func render(c sgf.Collection, pretty bool) string {
	if pretty {
		return c.Pretty()
	}
	return c.String() + "\n"
}
