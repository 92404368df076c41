package commands

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/plumekit/plume/internal/index"
	"github.com/plumekit/plume/internal/lang"
	"github.com/plumekit/plume/internal/record"
)

// LogCmd shows posts in reverse chronological order, one line each.
type LogCmd struct {
	Limit int `short:"n" help:"Show at most N posts." default:"0"`
}

func (l *LogCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	labels, warnings := lang.Load(root.Repo, cfg.Lang)
	for _, w := range warnings {
		slog.Warn(w)
	}
	posts, probs, err := root.store().Collect(record.Post, cfg.Author.Name, time.Now())
	if err != nil {
		return err
	}
	for _, p := range probs {
		slog.Warn(p.String())
	}

	shown := index.Build(posts, nil, labels.MonthYear).Posts
	if l.Limit > 0 && l.Limit < len(shown) {
		shown = shown[:l.Limit]
	}
	for _, p := range shown {
		line := fmt.Sprintf("%s  %3d  %s", p.Date.Format(record.DateFormat), p.ID, p.Title)
		if len(p.Tags) > 0 {
			line += "  [" + strings.Join(p.Tags, ", ") + "]"
		}
		fmt.Println(line)
	}
	return nil
}
