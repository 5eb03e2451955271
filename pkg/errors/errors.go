// Package errors defines the shl error taxonomy.
package errors

import "fmt"

var (
	// Base error; every error in shl inherits from this
	Err = fmt.Errorf("shl error")

	// Configuration errors; surfaced at construction, never deferred
	ErrConfig          = fmt.Errorf("config error (%w)", Err)
	ErrUnknownDialect  = fmt.Errorf("unknown dialect (%w)", ErrConfig)
	ErrInvalidTabWidth = fmt.Errorf("invalid tab width (%w)", ErrConfig)

	// Lexing errors; surfaced from Parse
	ErrLex               = fmt.Errorf("lex error (%w)", Err)
	ErrUnterminatedQuote = fmt.Errorf("unterminated quote (%w)", ErrLex)

	// Theme and stylesheet errors
	ErrUnknownFormat = fmt.Errorf("unknown format (%w)", Err)
	ErrUnknownClass  = fmt.Errorf("unknown class key (%w)", Err)
)
