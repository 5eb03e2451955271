// Package format maps file extensions to theme codecs.
package format

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gopatchy/shl/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Format handles marshaling and unmarshaling for a specific file format
type Format struct {
	Marshal   func(any) ([]byte, error)
	Unmarshal func([]byte, any) error
}

var formatByExtension = map[string]Format{
	"json": {
		Marshal:   jsonMarshal,
		Unmarshal: json.Unmarshal,
	},
	"yaml": {
		Marshal:   yamlMarshal,
		Unmarshal: yamlUnmarshal,
	},
	"yml": {
		Marshal:   yamlMarshal,
		Unmarshal: yamlUnmarshal,
	},
	"toml": {
		Marshal:   tomlMarshal,
		Unmarshal: tomlUnmarshal,
	},
	"properties": {
		Marshal:   propertiesMarshal,
		Unmarshal: propertiesUnmarshal,
	},
}

// Get retrieves a format by name from the registry
func Get(name string) (*Format, error) {
	f, found := formatByExtension[name]
	if !found {
		return nil, fmt.Errorf("%s: %w", name, errors.ErrUnknownFormat)
	}

	return &f, nil
}

// Extensions returns all supported format extensions, sorted
func Extensions() []string {
	exts := maps.Keys(formatByExtension)
	slices.Sort(exts)
	return exts
}

// Ext returns the format name implied by path's extension.
func Ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

func jsonMarshal(v any) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(b, '\n'), nil
}
