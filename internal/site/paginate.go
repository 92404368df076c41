package site

import (
	"fmt"

	"github.com/plumekit/plume/internal/config"
)

// Bucket identifies one pagination stream and where its pages land.
// The site index is the bucket with an empty key at the output root;
// monthly archives and tag pages each form one bucket per month or tag.
type Bucket struct {
	Key   string // stable identity; flushes trigger on change
	Dir   string // output directory relative to the site root, "" = root
	Title string // page-title of the bucket's pages
}

// Entry is one rendered item flowing through the paginator, newest
// first.
type Entry struct {
	Bucket Bucket
	HTML   string
}

// Page is one flushed chunk of a bucket. Index 0 is the newest chunk.
type Page struct {
	Bucket   Bucket
	Index    int
	Items    []string
	HasNewer bool // a page with a smaller index exists
	HasOlder bool // a page with a larger index follows
}

// FileName encodes the page index: index.html for the newest chunk,
// index<N>.html after that.
func (p Page) FileName() string {
	return pageFileName(p.Index)
}

func pageFileName(index int) string {
	if index == 0 {
		return "index.html"
	}
	return fmt.Sprintf("index%d.html", index)
}

// The accumulator flushes for exactly three reasons, and the reason
// decides the navigation links of the flushed page.
type flushCause int

const (
	// the next entry belongs to a different bucket
	flushBucketChange flushCause = iota
	// the accumulator holds size items and the same bucket continues
	flushSizeLimit
	// the input ran out with items still accumulated
	flushFinalDrain
)

// paginate walks entries in their given order and emits finished pages
// per bucket. Entries of one bucket must be contiguous. A bucket with
// up to size entries yields exactly one page without navigation; longer
// buckets split into ceil(n/size) pages chained by newer/older links.
func paginate(entries []Entry, size int, emit func(Page) error) error {
	if size < 1 {
		size = config.DefaultPageSize
	}

	var (
		current Bucket
		items   []string
		index   int
		open    bool
	)

	flush := func(cause flushCause) error {
		p := Page{
			Bucket:   current,
			Index:    index,
			Items:    items,
			HasNewer: index > 0,
			HasOlder: cause == flushSizeLimit,
		}
		items = nil
		return emit(p)
	}

	for _, e := range entries {
		switch {
		case open && e.Bucket.Key != current.Key:
			if err := flush(flushBucketChange); err != nil {
				return err
			}
			index = 0
			open = false
		case open && len(items) == size:
			if err := flush(flushSizeLimit); err != nil {
				return err
			}
			index++
		}
		if !open {
			current = e.Bucket
			open = true
		}
		items = append(items, e.HTML)
	}

	if open && len(items) > 0 {
		return flush(flushFinalDrain)
	}
	return nil
}
