package site

import (
	"encoding/xml"
	"time"

	atom "github.com/thomas11/atomgenerator"

	"github.com/plumekit/plume/internal/record"
	"github.com/plumekit/plume/internal/version"
)

// RSS 2.0 document, marshalled with encoding/xml. The structure is
// fixed by the format, so plain structs beat a template here.

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Generator   string    `xml:"generator"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

// feedBody picks the item body per configuration and rewrites its
// placeholders to absolute URLs.
func (g *Generator) feedBody(p *record.Record) string {
	body := p.Body
	if !g.cfg.RSS.Full {
		body, _ = p.Excerpt()
	}
	resolved, warnings := g.engine.ResolveAbsolute(body, g.cfg.BaseURL)
	g.warnAll(warnings)
	return resolved
}

// absoluteLink returns the canonical absolute URL of a record.
func (g *Generator) absoluteLink(p *record.Record) string {
	return g.cfg.BaseURL + "/" + p.Dir() + "/"
}

// buildRSS renders the bounded site-wide RSS feed: most recent posts,
// absolute links, the link doubling as GUID, RFC 1123 dates.
func (g *Generator) buildRSS() ([]byte, error) {
	ch := rssChannel{
		Title:       g.cfg.Title,
		Link:        g.cfg.BaseURL + "/",
		Description: g.cfg.Subtitle,
		Generator:   "plume " + version.Version,
	}
	for _, p := range g.idx.Recent(g.cfg.RSS.Items) {
		link := g.absoluteLink(p)
		ch.Items = append(ch.Items, rssItem{
			Title:       p.Title,
			Link:        link,
			GUID:        link,
			PubDate:     p.Date.Format(time.RFC1123Z),
			Description: g.feedBody(p),
		})
	}
	out, err := xml.MarshalIndent(rssXML{Version: "2.0", Channel: ch}, "", "  ")
	if err != nil {
		return nil, err
	}
	doc := append([]byte(xml.Header), out...)
	return append(doc, '\n'), nil
}

// buildAtom renders the same bounded item set as an Atom feed for
// readers that prefer it over RSS.
func (g *Generator) buildAtom() ([]byte, error) {
	feed := atom.Feed{
		Title:   g.cfg.Title,
		Link:    g.cfg.BaseURL + "/",
		PubDate: g.now,
	}
	feed.AddAuthor(atom.Author{
		Name: g.cfg.Author.Name,
		Uri:  g.cfg.BaseURL,
	})

	for _, p := range g.idx.Recent(g.cfg.RSS.Items) {
		excerpt, _ := p.Excerpt()
		summary, warnings := g.engine.ResolveAbsolute(excerpt, g.cfg.BaseURL)
		g.warnAll(warnings)

		e := &atom.Entry{
			Title:       p.Title,
			Description: summary,
			Link:        g.absoluteLink(p),
			PubDate:     p.Date,
			Content:     g.feedBody(p),
		}
		for _, tag := range p.Tags {
			e.AddCategory(atom.Category{Term: tag})
		}
		feed.AddEntry(e)
	}

	if errs := feed.Validate(); len(errs) > 0 {
		return nil, errs[0]
	}
	return feed.GenXml()
}
