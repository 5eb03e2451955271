package shl

import "strings"

// cssClass maps the internal class vocabulary to the CSS class names
// emitted in the output. Package-wide, read-only.
var cssClass = map[string]string{
	"metachar":    "s-mta",
	"keyword":     "s-key",
	"builtin":     "s-blt",
	"command":     "s-cmd",
	"argument":    "s-arg",
	"quote":       "s-quo",
	"variable":    "s-var",
	"assigned":    "s-avr",
	"value":       "s-val",
	"comment":     "s-cmt",
	"line_number": "s-lno",
}

// classByType covers the token types that get one uniform span wrap.
var classByType = map[TokenType]string{
	Metachar: cssClass["metachar"],
	Keyword:  cssClass["keyword"],
	Builtin:  cssClass["builtin"],
	Command:  cssClass["command"],
	Variable: cssClass["variable"],
	Comment:  cssClass["comment"],
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escape(s string) string {
	return htmlEscaper.Replace(s)
}

// markup appends the HTML fragments for one token to the output buffer.
// First match wins:
//
//  1. Uniform-wrap types get a single span.
//  2. A balanced quoted literal becomes quote/value/quote spans.
//  3. An assignment splits at the first = into assigned/value spans.
//  4. Everything else passes through verbatim, including token types this
//     package does not know about.
func (h *Highlighter) markup(tok Token) {
	if class, found := classByType[tok.Type]; found {
		h.span(class, tok.Text)
		return
	}

	if inner, quote, ok := quotedLiteral(tok.Text); ok {
		h.span(cssClass["quote"], quote)
		h.span(cssClass["value"], inner)
		h.span(cssClass["quote"], quote)
		return
	}

	if tok.Type == Assign {
		if name, value, found := strings.Cut(tok.Text, "="); found {
			h.span(cssClass["assigned"], name)
			h.buf.WriteByte('=')
			h.span(cssClass["value"], value)
			return
		}
	}

	h.buf.WriteString(tok.Text)
}

func (h *Highlighter) span(class, text string) {
	h.buf.WriteString(`<span class="`)
	h.buf.WriteString(class)
	h.buf.WriteString(`">`)
	h.buf.WriteString(escape(text))
	h.buf.WriteString(`</span>`)
}

// quotedLiteral reports whether text is exactly one balanced single- or
// double-quoted literal with no embedded quote of the same kind, and if so
// returns the inner content and the quote character.
func quotedLiteral(text string) (inner, quote string, ok bool) {
	if len(text) < 2 {
		return "", "", false
	}

	q := text[0]
	if q != '\'' && q != '"' {
		return "", "", false
	}

	if text[len(text)-1] != q {
		return "", "", false
	}

	inner = text[1 : len(text)-1]
	if strings.IndexByte(inner, q) >= 0 {
		return "", "", false
	}

	return inner, string(q), true
}
