package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"abstracta/internal/domain"
)

// Importer interface for reading outlines from various formats
type Importer interface {
	Parse(r io.Reader) (*domain.Outline, error)
	Format() string
}

// Exporter interface for writing outlines to various formats
type Exporter interface {
	Export(outline *domain.Outline, w io.Writer) error
	Format() string
}

// Codec both imports and exports one format
type Codec interface {
	Importer
	Exporter
}

var codecs = map[string]Codec{
	"yaml": NewYAMLCodec(),
	"json": NewJSONCodec(),
}

// ForFormat returns the codec registered for format
func ForFormat(format string) (Codec, error) {
	c, ok := codecs[strings.ToLower(format)]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q (supported: %s)", format, strings.Join(Formats(), ", "))
	}
	return c, nil
}

// Formats lists the registered format identifiers
func Formats() []string {
	names := make([]string, 0, len(codecs))
	for name := range codecs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DetectFormat guesses the format from a file extension, defaulting to yaml
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}
