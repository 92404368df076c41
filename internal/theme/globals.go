package theme

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/plumekit/plume/internal/version"
)

// fillGlobal substitutes the placeholders whose values are the same on
// every page. page-title and content stay open for the per-page pass,
// as do all inline placeholders.
func (e *Engine) fillGlobal(t token) (string, bool) {
	if t.kind != tokenBlock {
		return "", false
	}
	g := e.cfg.Generate
	switch t.text {
	case "content-type":
		return `<meta http-equiv="content-type" content="text/html; charset=utf-8" />`, true
	case "generator":
		return fmt.Sprintf(`<meta name="generator" content="plume %s" />`, version.Version), true
	case "date":
		return fmt.Sprintf(`<meta name="date" content="%s" />`, e.now.Format("2006-01-02")), true
	case "stylesheet":
		if !g.Styles {
			return "", true
		}
		href := "%root%style/" + e.cfg.Theme + ".css"
		return fmt.Sprintf(`<link rel="stylesheet" type="text/css" href="%s" />`, href), true
	case "feed":
		if !g.RSS || e.cfg.BaseURL == "" {
			return "", true
		}
		return `<link rel="alternate" type="application/rss+xml" title="RSS" href="%root%index.rss" />`, true
	case "tags":
		return e.tagList(), true
	case "archive":
		return e.archiveList(), true
	case "pages":
		return e.pageList(), true
	case "posts":
		return e.recentList(), true
	case "title":
		return html.EscapeString(e.cfg.Title), true
	case "subtitle":
		return html.EscapeString(e.cfg.Subtitle), true
	case "name":
		return html.EscapeString(e.cfg.Author.Name), true
	case "nickname":
		return html.EscapeString(e.cfg.Author.Nickname), true
	case "e-mail":
		return html.EscapeString(e.cfg.Author.Email), true
	case "year":
		return strconv.Itoa(e.now.Year()), true
	}
	return "", false
}

func (e *Engine) tagList() string {
	if !e.cfg.Generate.Tags {
		return ""
	}
	fp := e.cfg.Generate.FullPaths
	items := make([]string, 0, len(e.idx.Tags))
	for _, t := range e.idx.Tags {
		items = append(items, fmt.Sprintf(`<li><a href="%s">%s</a> (%d)</li>`,
			DirLink("tags/"+t.Slug, fp), html.EscapeString(t.Name), t.Count))
	}
	return strings.Join(items, "\n")
}

func (e *Engine) archiveList() string {
	if !e.cfg.Generate.Posts {
		return ""
	}
	fp := e.cfg.Generate.FullPaths
	items := make([]string, 0, len(e.idx.Months))
	for _, m := range e.idx.Months {
		items = append(items, fmt.Sprintf(`<li><a href="%s">%s</a> (%d)</li>`,
			DirLink(m.Slug, fp), html.EscapeString(m.Label), m.Count))
	}
	return strings.Join(items, "\n")
}

func (e *Engine) pageList() string {
	if !e.cfg.Generate.Pages {
		return ""
	}
	fp := e.cfg.Generate.FullPaths
	items := make([]string, 0, len(e.idx.Pages))
	for _, p := range e.idx.Pages {
		items = append(items, fmt.Sprintf(`<li><a href="%s">%s</a></li>`,
			DirLink(p.Dir(), fp), html.EscapeString(p.Title)))
	}
	return strings.Join(items, "\n")
}

func (e *Engine) recentList() string {
	if !e.cfg.Generate.Posts {
		return ""
	}
	fp := e.cfg.Generate.FullPaths
	recent := e.idx.Recent(e.cfg.Recent)
	items := make([]string, 0, len(recent))
	for _, p := range recent {
		items = append(items, fmt.Sprintf(`<li><a href="%s">%s</a></li>`,
			DirLink(p.Dir(), fp), html.EscapeString(p.Title)))
	}
	return strings.Join(items, "\n")
}
