// Package shl converts shell script source text into HTML in which lexical
// categories (keywords, builtins, commands, metacharacters, quotes,
// variables, comments, assignments) are wrapped in classed spans for
// CSS-based colorization.
//
// The package emits class references only; callers supply a stylesheet for
// the eleven class names, or generate one with [Stylesheet].
package shl

import (
	"io"
	"strings"

	"github.com/gopatchy/shl/pkg/log"
)

// Highlighter converts shell source to HTML. Construct one with [New];
// Parse may then be called any number of times, each call independent.
//
// A Highlighter is not safe for concurrent use. Instances are cheap; use
// one per goroutine.
type Highlighter struct {
	cfg config
	lex Lexer
	buf strings.Builder
}

// New creates a [Highlighter] from opts. A nil opts selects all defaults.
// Configuration problems (unknown dialect, negative tab width) fail here,
// never later in Parse.
func New(opts *Options) (*Highlighter, error) {
	cfg, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	h := &Highlighter{cfg: cfg}

	if opts != nil && opts.Lexer != nil {
		h.lex = opts.Lexer
	} else {
		h.lex, err = NewLexer(cfg.syntax)
		if err != nil {
			return nil, err
		}
	}

	return h, nil
}

// Parse converts one source string to HTML. The output buffer is reset on
// entry, so calls do not accumulate. On a lexer error Parse returns no
// partial output, only the error.
func (h *Highlighter) Parse(src string) (string, error) {
	h.buf.Reset()

	log.Debugf("parse: %d bytes, dialect %s", len(src), h.cfg.syntax)

	if err := h.lex.Run(src, h.markup); err != nil {
		return "", err
	}

	out := h.buf.String()

	if h.cfg.lineNumbers {
		out = numberLines(out)
	}

	if h.cfg.pre {
		out = wrapPre(out)
	}

	if h.cfg.tabWidth > 0 {
		out = expandTabs(out, h.cfg.tabWidth)
	}

	return out, nil
}

// ParseReader reads all input then calls [Highlighter.Parse].
func (h *Highlighter) ParseReader(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	return h.Parse(string(b))
}
