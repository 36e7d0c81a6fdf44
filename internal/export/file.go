package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/pathplanner/internal/roadmap"
)

// ErrUnknownFormat is returned for an export path whose extension maps
// to no format.
var ErrUnknownFormat = errors.New("unknown export format")

// Format is an export file format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
)

// FormatFor picks the format from path's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FormatMarkdown, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q (use .md, .html or .json)", ErrUnknownFormat, filepath.Ext(path))
}

// Render encodes plan in format f.
func Render(plan *roadmap.Plan, f Format, opts Options) ([]byte, error) {
	switch f {
	case FormatMarkdown:
		return []byte(Markdown(plan, opts)), nil
	case FormatHTML:
		return HTML(plan, opts)
	case FormatJSON:
		data, err := json.MarshalIndent(plan, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode plan: %w", err)
		}
		return append(data, '\n'), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// WriteFile renders plan in the format implied by path and writes it,
// creating parent directories.
func WriteFile(path string, plan *roadmap.Plan, opts Options) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Render(plan, f, opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
