// Package theme renders output pages through the repository's theme
// file. A theme is parsed and its global placeholders filled exactly
// once per run; per-page rendering reuses the cached skeleton and never
// mutates it.
package theme

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/plumekit/plume/internal/config"
	"github.com/plumekit/plume/internal/index"
	"github.com/plumekit/plume/internal/record"
)

// Dir is the repository subdirectory holding theme files.
const Dir = "theme"

// Engine loads themes and renders pages against the index.
type Engine struct {
	cfg *config.Config
	idx *index.Index
	now time.Time

	themeDir  string
	skeletons map[string]*Skeleton
	warned    map[string]bool
}

// Skeleton is a compiled theme: global placeholders are already filled,
// only page-title, content and the inline placeholders remain open.
type Skeleton struct {
	name   string
	tokens []token
}

// Page is one output page to render through a skeleton.
type Page struct {
	Title   string // fills page-title
	Content string // fills content; already rendered HTML
	Depth   int    // directories below the site root
}

func NewEngine(cfg *config.Config, idx *index.Index, now time.Time) *Engine {
	return &Engine{
		cfg:       cfg,
		idx:       idx,
		now:       now,
		themeDir:  filepath.Join(cfg.Repo, Dir),
		skeletons: make(map[string]*Skeleton),
		warned:    make(map[string]bool),
	}
}

// Skeleton returns the compiled skeleton for a theme name, loading and
// filling it on first use. An unreadable theme file aborts the run.
func (e *Engine) Skeleton(name string) (*Skeleton, error) {
	if sk, ok := e.skeletons[name]; ok {
		return sk, nil
	}
	path := filepath.Join(e.themeDir, name+".html")
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme %s: %w", path, err)
	}
	filled := render(scan(string(src)), e.fillGlobal)
	sk := &Skeleton{name: name, tokens: scan(filled)}
	e.skeletons[name] = sk
	return sk, nil
}

// Render produces one finished page: the page blocks are filled on a
// walk of the cached token list, then the inline placeholders resolve
// against the page's depth.
func (e *Engine) Render(sk *Skeleton, p Page) (string, []string) {
	assembled := render(sk.tokens, func(t token) (string, bool) {
		if t.kind != tokenBlock {
			return "", false
		}
		switch t.text {
		case "page-title":
			return html.EscapeString(p.Title), true
		case "content":
			return p.Content, true
		}
		return "", false
	})
	root := Prefix(p.Depth)
	return e.resolveRefs(assembled, root, homeHref(root, e.cfg.Generate.FullPaths))
}

// ResolveAbsolute resolves inline placeholders against the configured
// base URL instead of a relative prefix. Feed bodies use this.
func (e *Engine) ResolveAbsolute(s, baseURL string) (string, []string) {
	abs := baseURL + "/"
	return e.resolveRefs(s, abs, abs)
}

// resolveRefs substitutes root and home and resolves cross-references.
// An unresolved reference becomes a bare "#" and warns once per run,
// however many pages repeat it.
func (e *Engine) resolveRefs(s, root, home string) (string, []string) {
	var warnings []string
	out := scanInline(s, func(body, raw string) string {
		switch body {
		case "root":
			return root
		case "home":
			return home
		}
		dir, ok := e.lookupRef(body)
		if !ok {
			if !e.warned[body] {
				e.warned[body] = true
				warnings = append(warnings, fmt.Sprintf("unresolved reference %s, linking to #", raw))
			}
			return "#"
		}
		href := root + dir + "/"
		if e.cfg.Generate.FullPaths {
			href += "index.html"
		}
		return href
	})
	return out, warnings
}

// lookupRef maps a cross-reference body (post[3], page[1], tag[go]) to
// its output directory relative to the site root.
func (e *Engine) lookupRef(body string) (string, bool) {
	kind, arg, ok := strings.Cut(strings.TrimSuffix(body, "]"), "[")
	if !ok {
		return "", false
	}
	switch kind {
	case "post":
		id, err := strconv.Atoi(arg)
		if err != nil {
			return "", false
		}
		if p, ok := e.idx.PostByID(id); ok {
			return p.Dir(), true
		}
	case "page":
		id, err := strconv.Atoi(arg)
		if err != nil {
			return "", false
		}
		if p, ok := e.idx.PageByID(id); ok {
			return p.Dir(), true
		}
	case "tag":
		if t, ok := e.idx.TagByName(record.CanonicalTag(arg)); ok {
			return "tags/" + t.Slug, true
		}
	}
	return "", false
}

// Prefix returns the relative path prefix for a page depth directories
// below the site root.
func Prefix(depth int) string {
	return strings.Repeat("../", depth)
}

// DirLink builds the href of an output directory as a %root%-prefixed
// placeholder, resolved per page during the inline pass.
func DirLink(dir string, fullPaths bool) string {
	href := "%root%" + dir + "/"
	if fullPaths {
		href += "index.html"
	}
	return href
}

func homeHref(prefix string, fullPaths bool) string {
	if fullPaths {
		return prefix + "index.html"
	}
	if prefix == "" {
		return "./"
	}
	return prefix
}
