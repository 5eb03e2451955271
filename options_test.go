package shl_test

import (
	"testing"

	"github.com/gopatchy/shl"
	shlerrors "github.com/gopatchy/shl/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestOptionsDefaults(t *testing.T) {
	t.Parallel()

	for _, opts := range []*shl.Options{nil, {}} {
		h, err := shl.New(opts)
		require.NoError(t, err)

		out, err := h.Parse("pwd\n")
		require.NoError(t, err)
		require.Equal(t, "<pre>\n<span class=\"s-blt\">pwd</span>\n</pre>\n", out)
	}
}

func TestOptionsExplicitZeroHonored(t *testing.T) {
	t.Parallel()

	// A pointer to the zero value overrides the default, unlike leaving
	// the field nil.
	h, err := shl.New(&shl.Options{
		Pre:      boolPtr(false),
		TabWidth: intPtr(0),
	})
	require.NoError(t, err)

	out, err := h.Parse("\tpwd\n")
	require.NoError(t, err)
	require.Equal(t, "\t<span class=\"s-blt\">pwd</span>\n", out)
}

func TestOptionsSyntax(t *testing.T) {
	t.Parallel()

	// local is a bash builtin but an ordinary command under bourne.
	h, err := shl.New(&shl.Options{
		Pre:    boolPtr(false),
		Syntax: strPtr("bash"),
	})
	require.NoError(t, err)

	out, err := h.Parse("local x")
	require.NoError(t, err)
	require.Contains(t, out, `<span class="s-blt">local</span>`)

	h, err = shl.New(&shl.Options{Pre: boolPtr(false)})
	require.NoError(t, err)

	out, err = h.Parse("local x")
	require.NoError(t, err)
	require.Contains(t, out, `<span class="s-cmd">local</span>`)
}

func TestOptionsUnknownSyntax(t *testing.T) {
	t.Parallel()

	_, err := shl.New(&shl.Options{Syntax: strPtr("powershell")})
	require.ErrorIs(t, err, shlerrors.ErrUnknownDialect)
	require.ErrorIs(t, err, shlerrors.ErrConfig)
}

func TestOptionsNegativeTabWidth(t *testing.T) {
	t.Parallel()

	_, err := shl.New(&shl.Options{TabWidth: intPtr(-1)})
	require.ErrorIs(t, err, shlerrors.ErrInvalidTabWidth)
	require.ErrorIs(t, err, shlerrors.ErrConfig)
}

func TestOptionsLexerOverride(t *testing.T) {
	t.Parallel()

	// An injected lexer wins over Syntax; the dialect name is never
	// resolved, so an unknown one does not fail.
	h, err := shl.New(&shl.Options{
		Pre:    boolPtr(false),
		Syntax: strPtr("not-a-dialect"),
		Lexer:  stubLexer(shl.Token{Text: "x", Type: shl.Keyword}),
	})
	require.NoError(t, err)

	out, err := h.Parse("ignored")
	require.NoError(t, err)
	require.Equal(t, `<span class="s-key">x</span>`, out)
}
