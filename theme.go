package shl

import (
	"fmt"
	"os"
	"strings"

	"github.com/gopatchy/shl/internal/format"
	"github.com/gopatchy/shl/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Theme maps the markup class vocabulary (metachar, keyword, builtin,
// command, argument, quote, variable, assigned, value, comment,
// line_number) to CSS declaration lists.
type Theme map[string]string

// DefaultTheme returns the stock color scheme.
func DefaultTheme() Theme {
	return Theme{
		"metachar":    "color: #606060",
		"keyword":     "color: #c00000; font-weight: bold",
		"builtin":     "color: #c00080",
		"command":     "color: #0000c0; font-weight: bold",
		"argument":    "color: #000000",
		"quote":       "color: #00a000",
		"variable":    "color: #b06000",
		"assigned":    "color: #804000",
		"value":       "color: #008080",
		"comment":     "color: #808080; font-style: italic",
		"line_number": "color: #a0a0a0",
	}
}

// Stylesheet renders t as CSS rules, one per class, ordered by CSS class
// name. Class keys outside the markup vocabulary are rejected.
func Stylesheet(t Theme) (string, error) {
	rules := map[string]string{}

	for key, decls := range t {
		class, found := cssClass[key]
		if !found {
			return "", fmt.Errorf("%s: %w", key, errors.ErrUnknownClass)
		}

		rules[class] = decls
	}

	classes := maps.Keys(rules)
	slices.Sort(classes)

	b := strings.Builder{}
	for _, class := range classes {
		fmt.Fprintf(&b, ".%s { %s }\n", class, rules[class])
	}

	return b.String(), nil
}

// LoadTheme reads a theme file; the format is chosen by the file extension
// (json, yaml, yml, toml, properties). Classes the file does not mention
// keep their [DefaultTheme] styling.
func LoadTheme(path string) (Theme, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	t, err := LoadThemeBytes(b, format.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// LoadThemeBytes decodes theme data in the format named by ext, merged over
// [DefaultTheme].
func LoadThemeBytes(b []byte, ext string) (Theme, error) {
	f, err := format.Get(ext)
	if err != nil {
		return nil, err
	}

	m := map[string]string{}
	if err := f.Unmarshal(b, &m); err != nil {
		return nil, err
	}

	t := DefaultTheme()

	for key, decls := range m {
		if _, found := cssClass[key]; !found {
			return nil, fmt.Errorf("%s: %w", key, errors.ErrUnknownClass)
		}

		t[key] = decls
	}

	return t, nil
}
