package shl

// TokenType classifies a lexical token.
//
// Values outside this set are legal: the markup dispatch treats anything it
// does not recognize as Default, so lexers may grow new types without
// breaking callers.
type TokenType int

const (
	// Default is passed through to the output verbatim.
	Default TokenType = iota

	// Metachar is a shell control character or operator (|, >, &&, ...).
	Metachar

	// Keyword is a reserved word of the dialect (if, for, done, ...).
	Keyword

	// Builtin is a command implemented inside the shell itself.
	Builtin

	// Command is the first word of a simple command.
	Command

	// Argument is any later word of a simple command.
	Argument

	// Variable is a variable reference or substitution ($FOO, ${FOO}, ...).
	Variable

	// Comment runs from an unquoted # to the end of the line.
	Comment

	// Assign is a NAME=value assignment word.
	Assign
)

func (t TokenType) String() string {
	switch t {
	case Default:
		return "default"
	case Metachar:
		return "metachar"
	case Keyword:
		return "keyword"
	case Builtin:
		return "builtin"
	case Command:
		return "command"
	case Argument:
		return "argument"
	case Variable:
		return "variable"
	case Comment:
		return "comment"
	case Assign:
		return "assign"
	default:
		return "unknown"
	}
}

// Token is one lexical event: a contiguous slice of source text plus its
// classification. Concatenating the Text of every token emitted for a
// source string reproduces that string exactly.
type Token struct {
	Text string
	Type TokenType
}
