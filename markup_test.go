package shl_test

import (
	"testing"

	"github.com/gopatchy/shl"
	"github.com/stretchr/testify/require"
)

// stubLexer replays a fixed token stream, bypassing the scanner, so markup
// behavior can be pinned down per token type.
func stubLexer(tokens ...shl.Token) shl.Lexer {
	return shl.LexerFunc(func(src string, emit func(shl.Token)) error {
		for _, tok := range tokens {
			emit(tok)
		}

		return nil
	})
}

func parseStub(t *testing.T, tokens ...shl.Token) string {
	t.Helper()

	h, err := shl.New(&shl.Options{
		Pre:   boolPtr(false),
		Lexer: stubLexer(tokens...),
	})
	require.NoError(t, err)

	out, err := h.Parse("")
	require.NoError(t, err)

	return out
}

func TestUniformWrap(t *testing.T) {
	t.Parallel()

	cases := []struct {
		typ   shl.TokenType
		class string
	}{
		{shl.Metachar, "s-mta"},
		{shl.Keyword, "s-key"},
		{shl.Builtin, "s-blt"},
		{shl.Command, "s-cmd"},
		{shl.Variable, "s-var"},
		{shl.Comment, "s-cmt"},
	}

	for _, tc := range cases {
		t.Run(tc.typ.String(), func(t *testing.T) {
			t.Parallel()

			out := parseStub(t, shl.Token{Text: "x", Type: tc.typ})
			require.Equal(t, `<span class="`+tc.class+`">x</span>`, out)
		})
	}
}

func TestUniformWrapEscapes(t *testing.T) {
	t.Parallel()

	out := parseStub(t, shl.Token{Text: "# a<b>&c", Type: shl.Comment})
	require.Equal(t, `<span class="s-cmt"># a&lt;b&gt;&amp;c</span>`, out)
}

func TestQuoteSplitting(t *testing.T) {
	t.Parallel()

	h, err := shl.New(&shl.Options{Pre: boolPtr(false)})
	require.NoError(t, err)

	out, err := h.Parse(`echo "hello world"`)
	require.NoError(t, err)
	requireEqualText(t,
		`<span class="s-blt">echo</span> <span class="s-quo">"</span><span class="s-val">hello world</span><span class="s-quo">"</span>`,
		out)
}

func TestQuoteSplittingSingle(t *testing.T) {
	t.Parallel()

	out := parseStub(t, shl.Token{Text: "'a b'", Type: shl.Argument})
	require.Equal(t,
		`<span class="s-quo">'</span><span class="s-val">a b</span><span class="s-quo">'</span>`,
		out)
}

func TestQuoteSplittingEmpty(t *testing.T) {
	t.Parallel()

	out := parseStub(t, shl.Token{Text: `""`, Type: shl.Argument})
	require.Equal(t,
		`<span class="s-quo">"</span><span class="s-val"></span><span class="s-quo">"</span>`,
		out)
}

func TestQuotePatternRejectsMixed(t *testing.T) {
	t.Parallel()

	// Not one balanced literal: passes through verbatim.
	for _, text := range []string{`"`, `"a'`, `foo"bar"`, `"a"b"`} {
		out := parseStub(t, shl.Token{Text: text, Type: shl.Argument})
		require.Equal(t, text, out)
	}
}

func TestQuotePatternBeforeAssign(t *testing.T) {
	t.Parallel()

	// An Assign token that is itself a balanced quoted literal hits the
	// quote rule first.
	out := parseStub(t, shl.Token{Text: `"X=1"`, Type: shl.Assign})
	require.Equal(t,
		`<span class="s-quo">"</span><span class="s-val">X=1</span><span class="s-quo">"</span>`,
		out)
}

func TestAssignSplitting(t *testing.T) {
	t.Parallel()

	h, err := shl.New(&shl.Options{Pre: boolPtr(false)})
	require.NoError(t, err)

	out, err := h.Parse("FOO=bar")
	require.NoError(t, err)
	requireEqualText(t, `<span class="s-avr">FOO</span>=<span class="s-val">bar</span>`, out)
}

func TestAssignSplitsAtFirstEquals(t *testing.T) {
	t.Parallel()

	out := parseStub(t, shl.Token{Text: "A=b=c", Type: shl.Assign})
	require.Equal(t, `<span class="s-avr">A</span>=<span class="s-val">b=c</span>`, out)
}

func TestAssignQuotedValue(t *testing.T) {
	t.Parallel()

	h, err := shl.New(&shl.Options{Pre: boolPtr(false)})
	require.NoError(t, err)

	out, err := h.Parse(`OPTS="-a -b"`)
	require.NoError(t, err)
	requireEqualText(t, `<span class="s-avr">OPTS</span>=<span class="s-val">"-a -b"</span>`, out)
}

func TestAssignWithoutEqualsPassesThrough(t *testing.T) {
	t.Parallel()

	out := parseStub(t, shl.Token{Text: "FOO", Type: shl.Assign})
	require.Equal(t, "FOO", out)
}

func TestUnknownTypePassesThrough(t *testing.T) {
	t.Parallel()

	// Unrecognized types degrade to verbatim pass-through, unescaped.
	out := parseStub(t, shl.Token{Text: "<raw & text>", Type: shl.TokenType(99)})
	require.Equal(t, "<raw & text>", out)
}

func TestDefaultPassesThrough(t *testing.T) {
	t.Parallel()

	out := parseStub(t,
		shl.Token{Text: "  ", Type: shl.Default},
		shl.Token{Text: "", Type: shl.Default},
		shl.Token{Text: "\n", Type: shl.Default},
	)
	require.Equal(t, "  \n", out)
}
