package record

import (
	"github.com/russross/blackfriday/v2"
)

const (
	htmlFlags = blackfriday.UseXHTML |
		blackfriday.Smartypants |
		blackfriday.SmartypantsFractions |
		blackfriday.SmartypantsLatexDashes

	extensions = blackfriday.NoIntraEmphasis |
		blackfriday.Tables |
		blackfriday.FencedCode |
		blackfriday.Autolink |
		blackfriday.Strikethrough
)

// renderer converts raw Markdown into an HTML fragment.
type renderer interface {
	render(in []byte) string
}

var htmlRenderer = newMarkdownRenderer()

func newMarkdownRenderer() renderer {
	r := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: htmlFlags,
	})
	return &blackfridayHTMLRenderer{r}
}

type blackfridayHTMLRenderer struct {
	r blackfriday.Renderer
}

func (b *blackfridayHTMLRenderer) render(in []byte) string {
	return string(blackfriday.Run(in,
		blackfriday.WithRenderer(b.r),
		blackfriday.WithExtensions(extensions)))
}

// RenderMarkdown renders a raw source into the HTML fragment stored as
// a record body. The excerpt marker survives rendering as an HTML
// comment.
func RenderMarkdown(in []byte) string {
	return htmlRenderer.render(in)
}
