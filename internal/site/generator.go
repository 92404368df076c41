// Package site compiles a repository into the static site: it collects
// and indexes the records, renders every page through the theme engine,
// paginates the archives and writes the feeds.
package site

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/otiai10/copy"

	"github.com/plumekit/plume/internal/config"
	"github.com/plumekit/plume/internal/index"
	"github.com/plumekit/plume/internal/lang"
	"github.com/plumekit/plume/internal/record"
	"github.com/plumekit/plume/internal/theme"
)

// StyleDir is the repository subdirectory copied verbatim into the
// output.
const StyleDir = "style"

// Generator runs the build pipeline for one repository. It is single
// use: create one per run.
type Generator struct {
	cfg   *config.Config
	store *record.Store
	now   time.Time

	labels   *lang.Labels
	posts    []*record.Record
	pages    []*record.Record
	idx      *index.Index
	engine   *theme.Engine
	skeleton *theme.Skeleton
	items    map[int]string // rendered post items by id
	report   *Report
}

func New(cfg *config.Config) *Generator {
	return &Generator{
		cfg:   cfg,
		store: record.NewStore(cfg.Repo),
		now:   time.Now(),
		items: make(map[int]string),
	}
}

// Report returns the summary of the last Build call.
func (g *Generator) Report() *Report { return g.report }

// Build runs the full pipeline and persists the build report. The
// returned error, if any, is the fatal stage failure.
func (g *Generator) Build() error {
	g.report = newReport(g.now)
	for _, p := range g.cfg.Validate() {
		g.warn(p.String())
	}

	err := g.runStages([]stage{
		{name: StageCollect, run: g.stageCollect},
		{name: StageIndexing, run: g.stageIndexing},
		{name: StageTheme, run: g.stageTheme},
		{name: StagePosts, enabled: func() bool { return g.cfg.Generate.Posts }, run: g.stagePosts},
		{name: StagePages, enabled: func() bool { return g.cfg.Generate.Pages }, run: g.stagePages},
		{name: StageArchives, enabled: func() bool { return g.cfg.Generate.Posts }, run: g.stageArchives},
		{name: StageTags, enabled: func() bool { return g.cfg.Generate.Tags }, run: g.stageTags},
		{name: StageFront, enabled: func() bool { return g.cfg.Generate.Index }, run: g.stageFront},
		{name: StageFeeds, enabled: func() bool { return g.cfg.Generate.RSS || g.cfg.Generate.Atom }, run: g.stageFeeds},
		{name: StageAssets, enabled: func() bool { return g.cfg.Generate.Styles }, run: g.stageAssets},
	})

	g.report.finish(err, time.Now())
	if werr := g.report.write(g.cfg.Output); werr != nil {
		g.warn("could not write build report", "error", werr)
	}
	return err
}

func (g *Generator) warn(msg string, args ...any) {
	g.report.Warnings++
	slog.Warn(msg, args...)
}

func (g *Generator) warnAll(msgs []string) {
	for _, m := range msgs {
		g.warn(m)
	}
}

func (g *Generator) stageCollect() error {
	labels, warnings := lang.Load(g.cfg.Repo, g.cfg.Lang)
	g.labels = labels
	for _, w := range warnings {
		g.warn(w)
	}

	posts, probs, err := g.store.Collect(record.Post, g.cfg.Author.Name, g.now)
	if err != nil {
		return err
	}
	for _, p := range probs {
		g.warn(p.String())
	}
	pages, probs, err := g.store.Collect(record.Page, g.cfg.Author.Name, g.now)
	if err != nil {
		return err
	}
	for _, p := range probs {
		g.warn(p.String())
	}

	if !g.cfg.Generate.Drafts {
		posts = dropDrafts(posts, &g.report.Drafts)
		pages = dropDrafts(pages, &g.report.Drafts)
	}

	g.posts, g.pages = posts, pages
	g.report.Posts = len(posts)
	g.report.Pages = len(pages)
	slog.Info("collected records",
		"posts", len(posts), "pages", len(pages), "drafts", g.report.Drafts)
	return nil
}

func dropDrafts(recs []*record.Record, skipped *int) []*record.Record {
	kept := recs[:0]
	for _, r := range recs {
		if r.Draft {
			*skipped++
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

func (g *Generator) stageIndexing() error {
	g.idx = index.Build(g.posts, g.pages, g.labels.MonthYear)
	g.report.Tags = len(g.idx.Tags)
	g.report.Months = len(g.idx.Months)
	return nil
}

func (g *Generator) stageTheme() error {
	g.engine = theme.NewEngine(g.cfg, g.idx, g.now)
	sk, err := g.engine.Skeleton(g.cfg.Theme)
	if err != nil {
		return err
	}
	g.skeleton = sk
	return nil
}

func (g *Generator) stagePosts() error {
	fp := g.cfg.Generate.FullPaths
	for _, p := range g.idx.Posts {
		meta := postMeta(p, g.idx, g.labels, fp)
		if err := g.renderAndWrite(p.Dir(), "index.html", p.Title, postPage(p, meta)); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) stagePages() error {
	for _, p := range g.idx.Pages {
		if err := g.renderAndWrite(p.Dir(), "index.html", p.Title, p.Body); err != nil {
			return err
		}
	}
	return nil
}

// postItemHTML memoizes the rendered list entry of a post; the same
// markup serves the front index, the monthly archive and every tag
// page the post appears on.
func (g *Generator) postItemHTML(p *record.Record) string {
	if s, ok := g.items[p.ID]; ok {
		return s
	}
	fp := g.cfg.Generate.FullPaths
	s := postItem(p, postMeta(p, g.idx, g.labels, fp), fp)
	g.items[p.ID] = s
	return s
}

// emitPage writes one pagination chunk into its bucket directory.
func (g *Generator) emitPage(p Page) error {
	return g.renderAndWrite(p.Bucket.Dir, p.FileName(), p.Bucket.Title, pageContent(p))
}

func (g *Generator) stageArchives() error {
	entries := make([]Entry, 0, len(g.idx.Posts))
	for _, p := range g.idx.Posts {
		y, m := p.Date.Year(), p.Date.Month()
		slug := fmt.Sprintf("%d/%02d", y, int(m))
		entries = append(entries, Entry{
			Bucket: Bucket{Key: slug, Dir: slug, Title: g.labels.MonthYear(y, m)},
			HTML:   g.postItemHTML(p),
		})
	}
	if err := paginate(entries, g.cfg.PageSize, g.emitPage); err != nil {
		return err
	}

	// One overview page per year, a plain month list without
	// pagination.
	for _, y := range g.idx.Years {
		dir := strconv.Itoa(y.Year)
		if err := g.renderAndWrite(dir, "index.html", dir, monthList(y, g.cfg.Generate.FullPaths)); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) stageTags() error {
	var entries []Entry
	for _, t := range g.idx.Tags {
		b := Bucket{Key: t.Slug, Dir: "tags/" + t.Slug, Title: t.Name}
		for _, p := range t.Posts {
			entries = append(entries, Entry{Bucket: b, HTML: g.postItemHTML(p)})
		}
	}
	return paginate(entries, g.cfg.PageSize, g.emitPage)
}

func (g *Generator) stageFront() error {
	b := Bucket{Key: "", Dir: "", Title: g.cfg.Title}
	entries := make([]Entry, 0, len(g.idx.Posts))
	for _, p := range g.idx.Posts {
		entries = append(entries, Entry{Bucket: b, HTML: g.postItemHTML(p)})
	}
	return paginate(entries, g.cfg.PageSize, g.emitPage)
}

func (g *Generator) stageFeeds() error {
	if g.cfg.BaseURL == "" {
		return warning(StageFeeds, errors.New("no base URL configured, skipping feeds"))
	}
	if g.cfg.Generate.RSS {
		b, err := g.buildRSS()
		if err != nil {
			return err
		}
		if err := g.writeFile("index.rss", b); err != nil {
			return err
		}
	}
	if g.cfg.Generate.Atom && len(g.idx.Posts) > 0 {
		b, err := g.buildAtom()
		if err != nil {
			return err
		}
		if err := g.writeFile("index.xml", b); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) stageAssets() error {
	src := filepath.Join(g.cfg.Repo, StyleDir)
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return warning(StageAssets, fmt.Errorf("no %s directory in repository, skipping", StyleDir))
	}
	return copy.Copy(src, filepath.Join(g.cfg.Output, StyleDir))
}
