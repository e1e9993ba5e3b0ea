package catalog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/verte-zerg/tentwenty/internal/model"
)

// Format names a catalog file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

type fileCatalog struct {
	Start model.StartPage        `toml:"start" yaml:"start"`
	Pages []model.PageDefinition `toml:"pages" yaml:"pages"`
}

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q (use .toml, .yaml or .yml)", filepath.Ext(path))
	}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown catalog format %q", name)
	}
}

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only catalog.
			_ = cerr
		}
	}()
	return Decode(file, format)
}

// Decode reads a catalog in the given format. Unknown keys are rejected.
func Decode(r io.Reader, format Format) (*Catalog, error) {
	var fc fileCatalog
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&fc)
		if err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to decode catalog: unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil {
			return nil, fmt.Errorf("failed to decode catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}
	return New(withStartDefaults(fc.Start, fc.Pages), fc.Pages)
}

// Encode writes the catalog in the given format.
func Encode(w io.Writer, format Format, c *Catalog) error {
	fc := fileCatalog{Start: c.Start(), Pages: c.Pages()}
	switch format {
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(fc); err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(fc); err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode catalog: %w", err)
		}
	default:
		return fmt.Errorf("unknown catalog format %q", format)
	}
	return nil
}

func withStartDefaults(start model.StartPage, pages []model.PageDefinition) model.StartPage {
	if start.Title == "" {
		start.Title = DefaultStart.Title
	}
	if start.Intro == "" {
		start.Intro = DefaultStart.Intro
	}
	if start.FirstPage == 0 && len(pages) > 0 {
		start.FirstPage = pages[0].ID
	}
	return start
}
