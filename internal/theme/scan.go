package theme

import (
	"regexp"
	"strings"
)

// A theme file mixes literal HTML with two placeholder syntaxes: block
// placeholders written as HTML comments (<!-- title -->) and inline
// placeholders delimited by percent signs (%root%, %post[3]%). The
// scanner makes one pass and produces a token list; nothing is ever
// re-scanned to find placeholders the first pass missed.

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenBlock
	tokenInline
)

type token struct {
	kind tokenKind
	text string // literal text, block name, or inline body
	raw  string // original source form, for re-emission
}

// blockNames are the recognized comment placeholders. Any other HTML
// comment is ordinary markup and stays untouched.
var blockNames = map[string]bool{
	"content-type": true,
	"generator":    true,
	"date":         true,
	"stylesheet":   true,
	"feed":         true,
	"tags":         true,
	"archive":      true,
	"pages":        true,
	"posts":        true,
	"title":        true,
	"subtitle":     true,
	"name":         true,
	"nickname":     true,
	"e-mail":       true,
	"year":         true,
	"page-title":   true,
	"content":      true,
}

var inlineRe = regexp.MustCompile(`^(root|home|post\[[0-9]+\]|page\[[0-9]+\]|tag\[[^\]\n]+\])$`)

// scan tokenizes src. A lone or unpaired "%" stays literal, as does a
// comment whose body is not a recognized block name.
func scan(src string) []token {
	var tokens []token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{kind: tokenLiteral, text: lit.String()})
			lit.Reset()
		}
	}

	i := 0
	for i < len(src) {
		c := strings.Index(src[i:], "<!--")
		p := strings.IndexByte(src[i:], '%')

		next := -1
		comment := false
		switch {
		case c < 0 && p < 0:
		case p < 0 || (c >= 0 && c < p):
			next, comment = c, true
		default:
			next = p
		}
		if next < 0 {
			lit.WriteString(src[i:])
			break
		}

		lit.WriteString(src[i : i+next])
		i += next

		if comment {
			end := strings.Index(src[i+4:], "-->")
			if end < 0 {
				lit.WriteString(src[i:])
				break
			}
			raw := src[i : i+4+end+3]
			name := strings.TrimSpace(src[i+4 : i+4+end])
			if blockNames[name] {
				flush()
				tokens = append(tokens, token{kind: tokenBlock, text: name, raw: raw})
			} else {
				// An ordinary comment passes through whole, so a "%"
				// inside it cannot start a placeholder.
				lit.WriteString(raw)
			}
			i += len(raw)
			continue
		}

		j := strings.IndexByte(src[i+1:], '%')
		if j >= 0 {
			body := src[i+1 : i+1+j]
			if inlineRe.MatchString(body) {
				flush()
				tokens = append(tokens, token{kind: tokenInline, text: body, raw: src[i : i+j+2]})
				i += j + 2
				continue
			}
		}
		lit.WriteByte('%')
		i++
	}
	flush()
	return tokens
}

// render walks the token list once, mapping each placeholder through
// fill. fill returning ok=false re-emits the original source form.
func render(tokens []token, fill func(t token) (string, bool)) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.kind == tokenLiteral {
			b.WriteString(t.text)
			continue
		}
		if s, ok := fill(t); ok {
			b.WriteString(s)
		} else {
			b.WriteString(t.raw)
		}
	}
	return b.String()
}

// scanInline resolves only the inline placeholders of an assembled
// page, leaving everything else byte for byte alone.
func scanInline(s string, fn func(body, raw string) string) string {
	tokens := scan(s)
	var b strings.Builder
	for _, t := range tokens {
		switch t.kind {
		case tokenInline:
			b.WriteString(fn(t.text, t.raw))
		case tokenLiteral:
			b.WriteString(t.text)
		default:
			b.WriteString(t.raw)
		}
	}
	return b.String()
}
