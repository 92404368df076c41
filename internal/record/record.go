// Package record implements the flat-file content store: typed records
// (posts and pages) with INI headers, raw Markdown sources and rendered
// HTML bodies, plus the normalization rules that repair incomplete
// headers.
package record

import (
	"fmt"
	"strings"
	"time"
)

// Kind distinguishes the two record types.
type Kind string

const (
	Post Kind = "post"
	Page Kind = "page"
)

// Dir returns the repository subdirectory holding records of this kind.
func (k Kind) Dir() string {
	if k == Page {
		return "pages"
	}
	return "posts"
}

// DateFormat is the calendar date layout used in headers.
const DateFormat = "2006-01-02"

// ExcerptMarker separates a body's excerpt from the rest.
const ExcerptMarker = "<!-- more -->"

// Record is one post or page with its header fields repaired and its
// body loaded.
type Record struct {
	ID     int
	Kind   Kind
	Title  string
	Author string
	Date   time.Time
	Tags   []string // posts only, normalized
	URL    string
	Draft  bool
	Body   string
}

// Header is the raw field set of a head file, before normalization.
type Header struct {
	Title  string
	Author string
	Date   string
	Tags   string
	URL    string
	Draft  string
}

// Header renders the record's fields back into their on-disk form.
func (r *Record) Header() Header {
	h := Header{
		Title:  r.Title,
		Author: r.Author,
		Date:   r.Date.Format(DateFormat),
		Tags:   strings.Join(r.Tags, ", "),
		URL:    r.URL,
	}
	if r.Draft {
		h.Draft = "true"
	}
	return h
}

// Dir returns the record's output directory relative to the site root:
// "<year>/<month>/<slug>" for posts, "<slug>" for pages.
func (r *Record) Dir() string {
	if r.Kind == Post {
		return fmt.Sprintf("%d/%02d/%s", r.Date.Year(), int(r.Date.Month()), r.URL)
	}
	return r.URL
}

// Excerpt returns the body up to the excerpt marker. found reports
// whether the marker was present; without one the full body is the
// excerpt.
func (r *Record) Excerpt() (excerpt string, found bool) {
	if i := strings.Index(r.Body, ExcerptMarker); i >= 0 {
		return strings.TrimRight(r.Body[:i], " \t\r\n"), true
	}
	return r.Body, false
}
