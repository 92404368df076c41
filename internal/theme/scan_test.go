package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []token) []tokenKind {
	out := make([]tokenKind, len(tokens))
	for i, t := range tokens {
		out[i] = t.kind
	}
	return out
}

func TestScan_Mixed(t *testing.T) {
	tokens := scan(`<html><!-- title --><p>%root%tags/</p><!-- content --></html>`)
	require.Equal(t, []tokenKind{tokenLiteral, tokenBlock, tokenLiteral, tokenInline, tokenLiteral, tokenBlock, tokenLiteral}, kinds(tokens))
	assert.Equal(t, "title", tokens[1].text)
	assert.Equal(t, "root", tokens[3].text)
	assert.Equal(t, "content", tokens[5].text)
}

func TestScan_UnknownCommentsStayLiteral(t *testing.T) {
	src := `<!-- sidebar starts --><!-- more --><!-- TITLE -->`
	tokens := scan(src)
	require.Len(t, tokens, 1)
	assert.Equal(t, tokenLiteral, tokens[0].kind)
	assert.Equal(t, src, tokens[0].text)
}

func TestScan_LonePercentStaysLiteral(t *testing.T) {
	for _, src := range []string{
		"50% of the time",
		"from 50% to 60%",
		"100%% done",
		"a % b % c",
		"trailing %",
	} {
		out := render(scan(src), func(token) (string, bool) { return "", false })
		assert.Equal(t, src, out, "scan must preserve %q", src)
	}
}

func TestScan_InlineForms(t *testing.T) {
	cases := map[string]string{
		"%root%":                  "root",
		"%home%":                  "home",
		"%post[12]%":              "post[12]",
		"%page[1]%":               "page[1]",
		"%tag[go]%":               "tag[go]",
		"%tag[machine learning]%": "tag[machine learning]",
	}
	for src, want := range cases {
		tokens := scan(src)
		require.Len(t, tokens, 1, "source %q", src)
		assert.Equal(t, tokenInline, tokens[0].kind)
		assert.Equal(t, want, tokens[0].text)
	}
}

func TestScan_MalformedInlineStaysLiteral(t *testing.T) {
	for _, src := range []string{
		"%post[]%", "%post[x]%", "%tag[]%", "%unknown%", "%post[1]", "% root %",
	} {
		out := render(scan(src), func(token) (string, bool) { return "", false })
		assert.Equal(t, src, out, "source %q", src)
	}
}

func TestScan_PercentInsideOrdinaryComment(t *testing.T) {
	src := `<!-- progress: 50% --> %root%`
	tokens := scan(src)
	require.Equal(t, []tokenKind{tokenLiteral, tokenInline}, kinds(tokens))
	assert.Equal(t, `<!-- progress: 50% --> `, tokens[0].text)
}

func TestScan_UnterminatedCommentStaysLiteral(t *testing.T) {
	src := `before <!-- title`
	out := render(scan(src), func(token) (string, bool) { return "", false })
	assert.Equal(t, src, out)
}

func TestScanInline_PreservesEverythingElse(t *testing.T) {
	src := "<p>a</p><!-- more -->%post[3]%<code>50%</code>"
	out := scanInline(src, func(body, raw string) string { return "X" })
	assert.Equal(t, "<p>a</p><!-- more -->X<code>50%</code>", out)
}
