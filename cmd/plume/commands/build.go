package commands

import (
	"log/slog"

	"github.com/plumekit/plume/internal/config"
	"github.com/plumekit/plume/internal/site"
)

// BuildCmd runs the generator once.
type BuildCmd struct {
	Output     string `short:"o" help:"Override the configured output directory."`
	Drafts     bool   `help:"Include records marked draft."`
	FullPaths  bool   `help:"Link index.html files explicitly instead of their directories."`
	SkipPosts  bool   `help:"Skip post pages and the archives."`
	SkipPages  bool   `help:"Skip pages."`
	SkipTags   bool   `help:"Skip tag pages."`
	SkipRSS    bool   `name:"skip-rss" help:"Skip the RSS and Atom feeds."`
	SkipStyles bool   `help:"Skip copying the stylesheets."`
	SkipIndex  bool   `help:"Skip the front index."`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	b.apply(cfg)
	return runBuild(cfg)
}

// apply folds the command line into the configured toggles.
func (b *BuildCmd) apply(cfg *config.Config) {
	if b.Output != "" {
		cfg.Output = b.Output
	}
	if b.Drafts {
		cfg.Generate.Drafts = true
	}
	if b.FullPaths {
		cfg.Generate.FullPaths = true
	}
	if b.SkipPosts {
		cfg.Generate.Posts = false
	}
	if b.SkipPages {
		cfg.Generate.Pages = false
	}
	if b.SkipTags {
		cfg.Generate.Tags = false
	}
	if b.SkipRSS {
		cfg.Generate.RSS = false
		cfg.Generate.Atom = false
	}
	if b.SkipStyles {
		cfg.Generate.Styles = false
	}
	if b.SkipIndex {
		cfg.Generate.Index = false
	}
}

// runBuild is shared between build and watch.
func runBuild(cfg *config.Config) error {
	g := site.New(cfg)
	if err := g.Build(); err != nil {
		return err
	}
	rep := g.Report()
	slog.Info("site generated",
		"output", cfg.Output,
		"posts", rep.Posts,
		"pages", rep.Pages,
		"files", rep.FilesWritten,
		"warnings", rep.Warnings)
	return nil
}
