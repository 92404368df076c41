package site

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect runs paginate and gathers the emitted pages.
func collectPages(t *testing.T, entries []Entry, size int) []Page {
	t.Helper()
	var pages []Page
	require.NoError(t, paginate(entries, size, func(p Page) error {
		pages = append(pages, p)
		return nil
	}))
	return pages
}

func constantBucket(n int) []Entry {
	b := Bucket{Key: "", Dir: "", Title: "Index"}
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{Bucket: b, HTML: fmt.Sprintf("item-%d", i)}
	}
	return entries
}

func TestPaginate_TwentyFivePostsPageSizeTen(t *testing.T) {
	pages := collectPages(t, constantBucket(25), 10)

	require.Len(t, pages, 3)

	assert.Equal(t, "index.html", pages[0].FileName())
	assert.Len(t, pages[0].Items, 10)
	assert.False(t, pages[0].HasNewer)
	assert.True(t, pages[0].HasOlder)

	assert.Equal(t, "index1.html", pages[1].FileName())
	assert.Len(t, pages[1].Items, 10)
	assert.True(t, pages[1].HasNewer)
	assert.True(t, pages[1].HasOlder)

	assert.Equal(t, "index2.html", pages[2].FileName())
	assert.Len(t, pages[2].Items, 5)
	assert.True(t, pages[2].HasNewer)
	assert.False(t, pages[2].HasOlder)

	// Newest entries land on the first page, in order.
	assert.Equal(t, "item-0", pages[0].Items[0])
	assert.Equal(t, "item-24", pages[2].Items[4])
}

func TestPaginate_ExactPageSizeBucketHasNoNavigation(t *testing.T) {
	pages := collectPages(t, constantBucket(10), 10)
	require.Len(t, pages, 1)
	assert.Equal(t, 0, pages[0].Index)
	assert.False(t, pages[0].HasNewer)
	assert.False(t, pages[0].HasOlder)
}

func TestPaginate_EmptyInputEmitsNothing(t *testing.T) {
	assert.Empty(t, collectPages(t, nil, 10))
}

func TestPaginate_BucketChangeResetsIndex(t *testing.T) {
	may := Bucket{Key: "2024/05", Dir: "2024/05", Title: "May 2024"}
	april := Bucket{Key: "2024/04", Dir: "2024/04", Title: "April 2024"}

	var entries []Entry
	for i := 0; i < 3; i++ {
		entries = append(entries, Entry{Bucket: may, HTML: fmt.Sprintf("may-%d", i)})
	}
	for i := 0; i < 5; i++ {
		entries = append(entries, Entry{Bucket: april, HTML: fmt.Sprintf("apr-%d", i)})
	}

	pages := collectPages(t, entries, 2)
	require.Len(t, pages, 5)

	// May: 3 entries at size 2 = pages 0 and 1.
	assert.Equal(t, "2024/05", pages[0].Bucket.Key)
	assert.Equal(t, 0, pages[0].Index)
	assert.True(t, pages[0].HasOlder)
	assert.False(t, pages[0].HasNewer)
	assert.Equal(t, 1, pages[1].Index)
	assert.False(t, pages[1].HasOlder, "last May page holds the leftover")
	assert.True(t, pages[1].HasNewer)

	// April starts again at page 0.
	assert.Equal(t, "2024/04", pages[2].Bucket.Key)
	assert.Equal(t, 0, pages[2].Index)
	assert.False(t, pages[2].HasNewer)
	assert.True(t, pages[2].HasOlder)
	assert.Equal(t, 1, pages[3].Index)
	assert.Equal(t, 2, pages[4].Index)
	assert.False(t, pages[4].HasOlder)
}

func TestPaginate_PartitionProperty(t *testing.T) {
	// Every entry appears exactly once, pages per bucket = ceil(n/m).
	for _, n := range []int{1, 9, 10, 11, 19, 20, 21, 100} {
		for _, m := range []int{1, 3, 10} {
			pages := collectPages(t, constantBucket(n), m)

			wantPages := (n + m - 1) / m
			require.Len(t, pages, wantPages, "n=%d m=%d", n, m)

			var total int
			for i, p := range pages {
				assert.Equal(t, i, p.Index, "n=%d m=%d", n, m)
				if i < len(pages)-1 {
					assert.Len(t, p.Items, m, "full pages hold exactly m items")
				}
				total += len(p.Items)
			}
			assert.Equal(t, n, total, "n=%d m=%d", n, m)
		}
	}
}

func TestPaginate_InvalidSizeFallsBackToDefault(t *testing.T) {
	pages := collectPages(t, constantBucket(25), 0)
	require.Len(t, pages, 3, "size 0 must behave as the default page size")
	assert.Len(t, pages[0].Items, 10)
}

func TestPaginate_EmitErrorStopsTheWalk(t *testing.T) {
	boom := errors.New("disk full")
	calls := 0
	err := paginate(constantBucket(25), 10, func(Page) error {
		calls++
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestPageFileName(t *testing.T) {
	assert.Equal(t, "index.html", pageFileName(0))
	assert.Equal(t, "index1.html", pageFileName(1))
	assert.Equal(t, "index12.html", pageFileName(12))
}
