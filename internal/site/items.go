package site

import (
	"fmt"
	"html"
	"strings"

	"github.com/plumekit/plume/internal/index"
	"github.com/plumekit/plume/internal/lang"
	"github.com/plumekit/plume/internal/record"
	"github.com/plumekit/plume/internal/theme"
)

// All hrefs below carry the %root% placeholder; the theme engine
// rewrites them per page, so the same rendered item serves the front
// index, archive and tag pages at their different depths.

// postItem renders one post entry for the paginated lists: linked
// title, meta line, excerpt, and a read-more link when the excerpt
// marker cut something off.
func postItem(p *record.Record, meta string, fullPaths bool) string {
	link := theme.DirLink(p.Dir(), fullPaths)
	excerpt, more := p.Excerpt()

	var b strings.Builder
	b.WriteString("<div class=\"post\">\n")
	fmt.Fprintf(&b, "<h2 class=\"post-title\"><a href=%q>%s</a></h2>\n", link, html.EscapeString(p.Title))
	fmt.Fprintf(&b, "<div class=\"post-meta\">%s</div>\n", meta)
	b.WriteString(excerpt)
	b.WriteString("\n")
	if more {
		fmt.Fprintf(&b, "<p class=\"post-more\"><a href=%q>Read more</a></p>\n", link)
	}
	b.WriteString("</div>")
	return b.String()
}

// postMeta renders the "date, author, tags: ..." line.
func postMeta(p *record.Record, idx *index.Index, labels *lang.Labels, fullPaths bool) string {
	parts := []string{
		html.EscapeString(labels.Date(p.Date)),
		html.EscapeString(p.Author),
	}
	if len(p.Tags) > 0 {
		links := make([]string, 0, len(p.Tags))
		for _, name := range p.Tags {
			t, ok := idx.TagByName(name)
			if !ok {
				continue
			}
			links = append(links, fmt.Sprintf("<a href=%q>%s</a>",
				theme.DirLink("tags/"+t.Slug, fullPaths), html.EscapeString(t.Name)))
		}
		parts = append(parts, "tags: "+strings.Join(links, ", "))
	}
	return strings.Join(parts, ", ")
}

// postPage renders the content block of a single post page. The title
// is not repeated here; themes place it via the page-title block.
func postPage(p *record.Record, meta string) string {
	return fmt.Sprintf("<div class=\"post\">\n<div class=\"post-meta\">%s</div>\n%s\n</div>", meta, p.Body)
}

// pageContent assembles a pagination page: the accumulated items plus
// the newer/older navigation.
func pageContent(p Page) string {
	content := strings.Join(p.Items, "\n")
	if nav := pagerNav(p); nav != "" {
		content += "\n" + nav
	}
	return content
}

// pagerNav links the neighboring chunks of the same bucket. Navigation
// always names the literal page files; directory-index resolution does
// not apply between chunks.
func pagerNav(p Page) string {
	if !p.HasNewer && !p.HasOlder {
		return ""
	}
	var b strings.Builder
	b.WriteString("<div class=\"pager\">\n")
	if p.HasNewer {
		fmt.Fprintf(&b, "<a class=\"pager-newer\" href=%q>&laquo; Newer</a>\n", pageFileName(p.Index-1))
	}
	if p.HasOlder {
		fmt.Fprintf(&b, "<a class=\"pager-older\" href=%q>Older &raquo;</a>\n", pageFileName(p.Index+1))
	}
	b.WriteString("</div>")
	return b.String()
}

// monthList renders the non-paginated month list of a yearly archive
// page.
func monthList(y *index.Year, fullPaths bool) string {
	items := make([]string, 0, len(y.Months))
	for _, m := range y.Months {
		items = append(items, fmt.Sprintf("<li><a href=%q>%s</a> (%d)</li>",
			theme.DirLink(m.Slug, fullPaths), html.EscapeString(m.Label), m.Count))
	}
	return "<ul class=\"archive-months\">\n" + strings.Join(items, "\n") + "\n</ul>"
}
