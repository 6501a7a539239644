package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mikeymoomin/FastGEO/pkg/page"
)

// Format identifies the definition encoding.
type Format string

const (
	// FormatAuto sniffs the format from the source extension, falling back
	// to YAML (a superset of JSON for our purposes).
	FormatAuto Format = ""
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Option configures a Loader.
type Option func(*Loader)

// WithFS supplies the fs.FS consulted for SourceFromFS sources.
func WithFS(files fs.FS) Option {
	return func(l *Loader) {
		l.files = files
	}
}

// WithFormat forces the definition encoding instead of sniffing it.
func WithFormat(format Format) Option {
	return func(l *Loader) {
		l.format = format
	}
}

// Loader decodes page definitions. The zero value loads files and raw
// bytes; supply WithFS to resolve fs sources.
type Loader struct {
	files  fs.FS
	format Format
}

// New constructs a Loader applying any provided options.
func New(options ...Option) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load reads and decodes a page definition from source.
func (l *Loader) Load(ctx context.Context, source Source) (page.Model, error) {
	if source == nil {
		return page.Model{}, fmt.Errorf("loader: source is required")
	}
	if err := ctx.Err(); err != nil {
		return page.Model{}, err
	}

	data, err := l.read(source)
	if err != nil {
		return page.Model{}, err
	}
	return l.decode(source, data)
}

func (l *Loader) read(source Source) ([]byte, error) {
	switch src := source.(type) {
	case fileSource:
		abs, err := filepath.Abs(src.path)
		if err != nil {
			return nil, fmt.Errorf("loader: resolve %q: %w", src.path, err)
		}
		data, err := os.ReadFile(abs)
		if err != nil {
			return nil, fmt.Errorf("loader: read %q: %w", src.path, err)
		}
		return data, nil
	case fsSource:
		if l.files == nil {
			return nil, fmt.Errorf("loader: fs source %q requires WithFS", src.name)
		}
		data, err := fs.ReadFile(l.files, src.name)
		if err != nil {
			return nil, fmt.Errorf("loader: read %q: %w", src.name, err)
		}
		return data, nil
	case bytesSource:
		return src.data, nil
	default:
		return nil, fmt.Errorf("loader: unsupported source kind %q", source.Kind())
	}
}

func (l *Loader) decode(source Source, data []byte) (page.Model, error) {
	format := l.format
	if format == FormatAuto {
		format = sniffFormat(source.Location())
	}

	var model page.Model
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &model); err != nil {
			return page.Model{}, fmt.Errorf("loader: decode %q as json: %w", source.Location(), err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &model); err != nil {
			return page.Model{}, fmt.Errorf("loader: decode %q as yaml: %w", source.Location(), err)
		}
	default:
		return page.Model{}, fmt.Errorf("loader: unknown format %q", format)
	}
	return model, nil
}

func sniffFormat(location string) Format {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}
