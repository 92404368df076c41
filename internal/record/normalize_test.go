package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2024, 6, 15, 13, 37, 0, 0, time.UTC)

func TestNormalize_CompleteHeader(t *testing.T) {
	h := Header{
		Title:  "A Fine Day",
		Author: "ada",
		Date:   "2024-05-01",
		Tags:   "go, tools",
		URL:    "a-fine-day",
	}
	r, probs := Normalize(3, Post, h, "fallback", testToday)
	require.Empty(t, probs)
	assert.Equal(t, "A Fine Day", r.Title)
	assert.Equal(t, "ada", r.Author)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), r.Date)
	assert.Equal(t, []string{"go", "tools"}, r.Tags)
	assert.Equal(t, "a-fine-day", r.URL)
}

func TestNormalize_MissingFieldsGetDefaultsAndWarnings(t *testing.T) {
	r, probs := Normalize(7, Post, Header{}, "ada", testToday)
	assert.Equal(t, DefaultTitle, r.Title)
	assert.Equal(t, "ada", r.Author)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), r.Date)
	assert.Equal(t, "7-untitled", r.URL)

	// One warning each for title, author and date; url derivation is
	// the normal path and stays quiet.
	require.Len(t, probs, 3)
	fields := []string{probs[0].Field, probs[1].Field, probs[2].Field}
	assert.Equal(t, []string{"title", "author", "date"}, fields)
}

func TestNormalize_BadDateBecomesToday(t *testing.T) {
	for _, bad := range []string{"01/05/2024", "2024-13-40", "yesterday", "2024-5-1"} {
		r, probs := Normalize(1, Post, Header{Title: "x", Author: "a", Date: bad}, "a", testToday)
		assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), r.Date, "date %q", bad)
		require.Len(t, probs, 1, "date %q", bad)
		assert.Equal(t, "date", probs[0].Field)
	}
}

func TestNormalize_TagCleanup(t *testing.T) {
	h := Header{Title: "t", Author: "a", Date: "2024-01-01", Tags: "Foo, foo , BAR"}
	r, probs := Normalize(1, Post, h, "a", testToday)
	require.Empty(t, probs)
	assert.Equal(t, []string{"bar", "foo"}, r.Tags)
}

func TestNormalize_PagesCarryNoTags(t *testing.T) {
	h := Header{Title: "About", Author: "a", Date: "2024-01-01", Tags: "sneaky"}
	r, _ := Normalize(1, Page, h, "a", testToday)
	assert.Nil(t, r.Tags)
	assert.Equal(t, "about", r.URL)
}

func TestNormalize_DraftFlag(t *testing.T) {
	base := Header{Title: "t", Author: "a", Date: "2024-01-01"}

	for raw, want := range map[string]bool{"": false, "true": true, "1": true, "false": false} {
		h := base
		h.Draft = raw
		r, probs := Normalize(1, Post, h, "a", testToday)
		require.Empty(t, probs, "draft %q", raw)
		assert.Equal(t, want, r.Draft, "draft %q", raw)
	}

	// Garbage warns and the record stays published.
	h := base
	h.Draft = "maybe"
	r, probs := Normalize(1, Post, h, "a", testToday)
	assert.False(t, r.Draft)
	require.Len(t, probs, 1)
	assert.Equal(t, "draft", probs[0].Field)
}

func TestNormalize_URLDerivation(t *testing.T) {
	base := Header{Author: "a", Date: "2024-01-01"}

	t.Run("explicit url is stripped, not slugified", func(t *testing.T) {
		h := base
		h.Title = "t"
		h.URL = "my cool url!"
		r, _ := Normalize(4, Post, h, "a", testToday)
		assert.Equal(t, "mycoolurl", r.URL)
	})

	t.Run("derived post url is id-prefixed", func(t *testing.T) {
		h := base
		h.Title = "My First Post"
		r, _ := Normalize(12, Post, h, "a", testToday)
		assert.Equal(t, "12-my-first-post", r.URL)
	})

	t.Run("derived page url has no prefix", func(t *testing.T) {
		h := base
		h.Title = "About Me"
		r, _ := Normalize(2, Page, h, "a", testToday)
		assert.Equal(t, "about-me", r.URL)
	})

	t.Run("non-ascii title falls back to a hash slug", func(t *testing.T) {
		h := base
		h.Title = "日本語"
		r, _ := Normalize(9, Post, h, "a", testToday)
		require.NotEqual(t, "9-", r.URL)
		assert.Regexp(t, `^9-[0-9a-f]{12}$`, r.URL)
	})

	t.Run("url stripped to empty falls back to derivation", func(t *testing.T) {
		h := base
		h.Title = "Real Title"
		h.URL = "!!!"
		r, _ := Normalize(5, Post, h, "a", testToday)
		assert.Equal(t, "5-real-title", r.URL)
	})
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"bar", "foo"}, ParseTags("Foo, foo , BAR"))
	assert.Equal(t, []string{"machine learning"}, ParseTags("Machine   Learning"))
	assert.Empty(t, ParseTags(" , ,"))
	assert.Empty(t, ParseTags(""))
}
