package shl

import (
	"fmt"

	"github.com/gopatchy/shl/pkg/errors"
)

// Lexer produces the lexical event stream for one source string. Run drives
// the whole source synchronously, calling emit once per token in
// left-to-right order. Concatenating the Text of every emitted token
// reproduces src exactly; whitespace and newlines arrive as Default tokens.
//
// Run returns an error only for unrecoverable scan failures, such as an
// unterminated quote at end of input.
type Lexer interface {
	Run(src string, emit func(Token)) error
}

// LexerFunc adapts a function to the [Lexer] interface.
type LexerFunc func(src string, emit func(Token)) error

func (f LexerFunc) Run(src string, emit func(Token)) error {
	return f(src, emit)
}

// NewLexer returns the default scanner for the named dialect.
func NewLexer(syntax string) (Lexer, error) {
	d, err := getDialect(syntax)
	if err != nil {
		return nil, err
	}

	return &shellLexer{dialect: d}, nil
}

// shellLexer scans Bourne-family shell source. It does not build a syntax
// tree; it only needs enough state to tell command words from arguments.
type shellLexer struct {
	dialect *dialect
}

func (l *shellLexer) Run(src string, emit func(Token)) error {
	s := &scanner{
		src:     src,
		line:    1,
		atCmd:   true,
		emit:    emit,
		dialect: l.dialect,
	}

	return s.run()
}

type scanner struct {
	src     string
	pos     int
	line    int
	atCmd   bool // next word is in command position
	emit    func(Token)
	dialect *dialect
}

func (s *scanner) run() error {
	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch {
		case c == '\n':
			s.pos++
			s.line++
			s.atCmd = true
			s.emit(Token{Text: "\n", Type: Default})

		case c == ' ' || c == '\t' || c == '\r':
			s.whitespace()

		case c == '#' && s.atWordStart():
			s.comment()

		case c == '\'' || c == '"':
			if err := s.quoted(); err != nil {
				return err
			}

		case c == '$':
			if !s.variable() {
				if err := s.word(); err != nil {
					return err
				}
			}

		case isMetaByte(c):
			s.meta()

		default:
			if err := s.word(); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *scanner) whitespace() {
	start := s.pos
	for s.pos < len(s.src) {
		c := s.src[s.pos]
		if c != ' ' && c != '\t' && c != '\r' {
			break
		}
		s.pos++
	}

	s.emit(Token{Text: s.src[start:s.pos], Type: Default})
}

// atWordStart reports whether the current byte opens a new word; # only
// starts a comment there, so echo a#b keeps its # literal.
func (s *scanner) atWordStart() bool {
	if s.pos == 0 {
		return true
	}

	switch c := s.src[s.pos-1]; {
	case c == ' ' || c == '\t' || c == '\r' || c == '\n':
		return true
	case isMetaByte(c):
		return true
	}

	return false
}

func (s *scanner) comment() {
	start := s.pos
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}

	s.emit(Token{Text: s.src[start:s.pos], Type: Comment})
}

// metaOps holds the multi-character operators, longest first so that &&
// wins over &.
var metaOps = []string{
	"<<<", "&&", "||", ";;", ">>", "<<", ">&", "<&", ">|",
}

// cmdMeta marks the operators after which the next word is in command
// position. Redirections are absent: they are followed by a file name.
var cmdMeta = map[string]bool{
	";": true, ";;": true, "&": true, "&&": true, "|": true, "||": true,
	"(": true, ")": true, "`": true,
}

func isMetaByte(c byte) bool {
	switch c {
	case ';', '&', '|', '<', '>', '(', ')', '`':
		return true
	}

	return false
}

func (s *scanner) meta() {
	text := s.src[s.pos : s.pos+1]
	for _, op := range metaOps {
		if len(s.src)-s.pos >= len(op) && s.src[s.pos:s.pos+len(op)] == op {
			text = op
			break
		}
	}

	s.pos += len(text)
	if cmdMeta[text] {
		s.atCmd = true
	}

	s.emit(Token{Text: text, Type: Metachar})
}

// quoted emits a standalone quoted string as a single token, quotes
// included. The markup layer splits it into quote/value/quote spans.
func (s *scanner) quoted() error {
	start := s.pos

	end, err := s.scanQuote(s.pos)
	if err != nil {
		return err
	}

	s.pos = end
	s.atCmd = false
	s.emit(Token{Text: s.src[start:end], Type: Argument})

	return nil
}

// scanQuote returns the offset just past the quote that opens at i.
// Backslash escapes are honored inside double quotes only.
func (s *scanner) scanQuote(i int) (int, error) {
	q := s.src[i]

	for j := i + 1; j < len(s.src); j++ {
		switch s.src[j] {
		case '\\':
			if q == '"' && j+1 < len(s.src) {
				j++
			}
		case '\n':
			s.line++
		case q:
			return j + 1, nil
		}
	}

	return 0, fmt.Errorf("line %d: %w", s.line, errors.ErrUnterminatedQuote)
}

// variable scans a variable reference or substitution starting at $.
// It reports false when $ is not followed by anything variable-like, in
// which case the caller falls back to word scanning.
func (s *scanner) variable() bool {
	if s.pos+1 >= len(s.src) {
		return false
	}

	start := s.pos
	c := s.src[s.pos+1]

	switch {
	case c == '{':
		s.pos = s.scanBraced(s.pos + 1)
	case c == '(':
		s.pos = s.scanParens(s.pos + 1)
	case isSpecialParam(c):
		s.pos += 2
	case isDigitByte(c):
		s.pos += 2
		for s.pos < len(s.src) && isDigitByte(s.src[s.pos]) {
			s.pos++
		}
	case isNameByte(c) && !isDigitByte(c):
		s.pos += 2
		for s.pos < len(s.src) && isNameByte(s.src[s.pos]) {
			s.pos++
		}
	default:
		return false
	}

	s.atCmd = false
	s.emit(Token{Text: s.src[start:s.pos], Type: Variable})

	return true
}

// scanBraced consumes ${...}, tracking nesting. A missing close brace
// consumes to end of input; the highlighter degrades rather than failing.
func (s *scanner) scanBraced(i int) int {
	depth := 0
	for j := i; j < len(s.src); j++ {
		switch s.src[j] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j + 1
			}
		case '\n':
			s.line++
		}
	}

	return len(s.src)
}

// scanParens consumes $(...) or $((...)), tracking nesting.
func (s *scanner) scanParens(i int) int {
	depth := 0
	for j := i; j < len(s.src); j++ {
		switch s.src[j] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return j + 1
			}
		case '\n':
			s.line++
		}
	}

	return len(s.src)
}

// word scans one word token. Quoted segments adjacent to word characters
// are absorbed into the word, so FOO="a b" arrives as a single token.
func (s *scanner) word() error {
	start := s.pos

	for s.pos < len(s.src) {
		c := s.src[s.pos]

		switch {
		case c == '\\':
			s.pos++
			if s.pos < len(s.src) {
				if s.src[s.pos] == '\n' {
					s.line++
				}
				s.pos++
			}

		case c == '\'' || c == '"':
			end, err := s.scanQuote(s.pos)
			if err != nil {
				return err
			}
			s.pos = end

		case c == '$':
			// A $ that opens the word was already rejected by variable();
			// keep it literal. Otherwise it starts a new token.
			if s.pos > start {
				return s.emitWord(start)
			}
			s.pos++

		case c == ' ' || c == '\t' || c == '\r' || c == '\n',
			isMetaByte(c):
			return s.emitWord(start)

		default:
			s.pos++
		}
	}

	return s.emitWord(start)
}

func (s *scanner) emitWord(start int) error {
	text := s.src[start:s.pos]
	if text == "" {
		return nil
	}

	typ := s.classifyWord(text)
	s.emit(Token{Text: text, Type: typ})

	return nil
}

func (s *scanner) classifyWord(text string) TokenType {
	if !s.atCmd {
		return Argument
	}

	switch {
	case isAssignWord(text):
		// Assignments prefix a command; stay in command position.
		return Assign
	case s.dialect.keywords[text]:
		return Keyword
	case s.dialect.builtins[text]:
		s.atCmd = false
		return Builtin
	default:
		s.atCmd = false
		return Command
	}
}

// isAssignWord reports whether text is NAME=... with a valid variable name.
func isAssignWord(text string) bool {
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '=' {
			return i > 0
		}
		if !isNameByte(c) || (i == 0 && isDigitByte(c)) {
			return false
		}
	}

	return false
}

func isNameByte(c byte) bool {
	return c == '_' || isDigitByte(c) ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigitByte(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpecialParam(c byte) bool {
	switch c {
	case '?', '#', '@', '*', '$', '!', '-':
		return true
	}

	return false
}
