// Package index aggregates normalized records into the sorted views the
// generator renders from: the post and page lists, the tag map and the
// monthly archive buckets.
package index

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/plumekit/plume/internal/record"
	"github.com/plumekit/plume/internal/slug"
)

// Tag is one tag with its stable slug and the posts carrying it.
type Tag struct {
	Name  string
	Slug  string
	Count int
	Posts []*record.Record // newest first
}

// Month is one archive bucket.
type Month struct {
	Year  int
	Month time.Month
	Label string // localized "<month name> <year>"
	Slug  string // "YYYY/MM"
	Count int
}

// Year groups the months of one year, newest month first.
type Year struct {
	Year   int
	Months []*Month
}

// Index is the in-memory aggregate of one repository, built fresh each
// run.
type Index struct {
	Posts  []*record.Record // (date, id) descending
	Pages  []*record.Record // (date, id) ascending
	Tags   []*Tag           // name ascending
	Months []*Month         // newest first
	Years  []*Year          // newest first

	postsByID  map[int]*record.Record
	pagesByID  map[int]*record.Record
	tagsByName map[string]*Tag
}

// Build sorts the records and derives the tag and month aggregates.
// monthYear supplies the localized archive label for a bucket.
func Build(posts, pages []*record.Record, monthYear func(year int, m time.Month) string) *Index {
	idx := &Index{
		Posts:      slices.Clone(posts),
		Pages:      slices.Clone(pages),
		postsByID:  make(map[int]*record.Record, len(posts)),
		pagesByID:  make(map[int]*record.Record, len(pages)),
		tagsByName: make(map[string]*Tag),
	}

	// Ties on equal dates break on id, compared numerically. Dates and
	// ids are compared as values, never as concatenated strings.
	slices.SortFunc(idx.Posts, func(a, b *record.Record) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	slices.SortFunc(idx.Pages, func(a, b *record.Record) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	for _, p := range idx.Posts {
		idx.postsByID[p.ID] = p
	}
	for _, p := range idx.Pages {
		idx.pagesByID[p.ID] = p
	}

	idx.buildTags()
	idx.buildMonths(monthYear)
	return idx
}

// buildTags walks the sorted posts so each tag's post list comes out
// newest first and slugs are claimed in a deterministic order.
func (idx *Index) buildTags() {
	claimed := make(map[string]bool)
	for _, p := range idx.Posts {
		for _, name := range p.Tags {
			t, ok := idx.tagsByName[name]
			if !ok {
				t = &Tag{Name: name, Slug: tagSlug(name, claimed)}
				claimed[t.Slug] = true
				idx.tagsByName[name] = t
				idx.Tags = append(idx.Tags, t)
			}
			t.Count++
			t.Posts = append(t.Posts, p)
		}
	}
	slices.SortFunc(idx.Tags, func(a, b *Tag) int {
		return cmp.Compare(a.Name, b.Name)
	})
}

// tagSlug derives a tag's slug, falling back to a content hash for
// names that strip to nothing. A fallback slug already claimed by a
// different tag gets a numeric suffix, so two distinct tags never share
// a slug.
func tagSlug(name string, claimed map[string]bool) string {
	s := slug.Make(name)
	if s == "" {
		s = slug.Fallback(name)
	}
	base := s
	for n := 2; claimed[s]; n++ {
		s = base + "-" + strconv.Itoa(n)
	}
	return s
}

func (idx *Index) buildMonths(monthYear func(int, time.Month) string) {
	byLabel := make(map[string]*Month)
	for _, p := range idx.Posts {
		y, m := p.Date.Year(), p.Date.Month()
		label := monthYear(y, m)
		bucket, ok := byLabel[label]
		if !ok {
			bucket = &Month{
				Year:  y,
				Month: m,
				Label: label,
				Slug:  fmt.Sprintf("%d/%02d", y, int(m)),
			}
			byLabel[label] = bucket
			idx.Months = append(idx.Months, bucket)
		}
		bucket.Count++
	}

	// Months appear in sorted-post order, so years come out newest
	// first as well.
	for _, m := range idx.Months {
		if len(idx.Years) == 0 || idx.Years[len(idx.Years)-1].Year != m.Year {
			idx.Years = append(idx.Years, &Year{Year: m.Year})
		}
		y := idx.Years[len(idx.Years)-1]
		y.Months = append(y.Months, m)
	}
}

// PostByID resolves a post cross-reference.
func (idx *Index) PostByID(id int) (*record.Record, bool) {
	p, ok := idx.postsByID[id]
	return p, ok
}

// PageByID resolves a page cross-reference.
func (idx *Index) PageByID(id int) (*record.Record, bool) {
	p, ok := idx.pagesByID[id]
	return p, ok
}

// TagByName resolves a tag cross-reference by its normalized name.
func (idx *Index) TagByName(name string) (*Tag, bool) {
	t, ok := idx.tagsByName[name]
	return t, ok
}

// Recent returns the newest n posts, fewer if the blog is younger than
// that.
func (idx *Index) Recent(n int) []*record.Record {
	if n > len(idx.Posts) {
		n = len(idx.Posts)
	}
	if n < 0 {
		n = 0
	}
	return idx.Posts[:n]
}
