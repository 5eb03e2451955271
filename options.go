package shl

import (
	"fmt"

	"github.com/gopatchy/shl/pkg/errors"
)

// Options configures a [Highlighter]. Nil pointer fields take the stated
// defaults; a non-nil pointer always wins, so explicitly setting a field to
// its zero value is honored rather than silently ignored.
type Options struct {
	// Pre wraps the output in <pre> tags. Default true.
	Pre *bool

	// LineNumbers prefixes every output line with a numbered span.
	// Default false.
	LineNumbers *bool

	// Syntax names the lexer dialect. Default "bourne". See [Dialects].
	Syntax *string

	// TabWidth is the number of spaces substituted for each tab in the
	// output; 0 leaves tabs untouched. Default 4.
	TabWidth *int

	// Lexer overrides the default lexer. When set, Syntax is not used.
	Lexer Lexer
}

type config struct {
	pre         bool
	lineNumbers bool
	syntax      string
	tabWidth    int
}

func (o *Options) resolve() (config, error) {
	cfg := config{
		pre:      true,
		syntax:   "bourne",
		tabWidth: 4,
	}

	if o == nil {
		return cfg, nil
	}

	if o.Pre != nil {
		cfg.pre = *o.Pre
	}

	if o.LineNumbers != nil {
		cfg.lineNumbers = *o.LineNumbers
	}

	if o.Syntax != nil {
		cfg.syntax = *o.Syntax
	}

	if o.TabWidth != nil {
		cfg.tabWidth = *o.TabWidth
	}

	if cfg.tabWidth < 0 {
		return cfg, fmt.Errorf("%d: %w", cfg.tabWidth, errors.ErrInvalidTabWidth)
	}

	return cfg, nil
}
