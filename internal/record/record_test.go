package record

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Dir(t *testing.T) {
	post := &Record{
		ID: 3, Kind: Post, URL: "3-first",
		Date: time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "2024/05/3-first", post.Dir())

	page := &Record{ID: 1, Kind: Page, URL: "about"}
	assert.Equal(t, "about", page.Dir())
}

func TestRecord_Excerpt(t *testing.T) {
	r := &Record{Body: "<p>intro</p>\n" + ExcerptMarker + "\n<p>rest</p>"}
	got, found := r.Excerpt()
	assert.True(t, found)
	assert.Equal(t, "<p>intro</p>", got)

	r = &Record{Body: "<p>all of it</p>"}
	got, found = r.Excerpt()
	assert.False(t, found)
	assert.Equal(t, "<p>all of it</p>", got)
}

func TestRenderMarkdown(t *testing.T) {
	html := RenderMarkdown([]byte("a *fine* paragraph\n\n" + ExcerptMarker + "\n\nmore text\n"))
	assert.Contains(t, html, "<em>fine</em>")
	assert.Contains(t, html, ExcerptMarker, "marker must survive rendering")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(html), "<p>"))
}
