package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/plumekit/plume/internal/record"
)

// EditCmd rewrites header fields of an existing record and reopens its
// Markdown source in the editor.
type EditCmd struct {
	ID      int    `arg:"" help:"Record id."`
	Page    bool   `help:"Edit a page instead of a post."`
	Title   string `help:"New title."`
	Author  string `help:"New author."`
	Date    string `help:"New date, YYYY-MM-DD."`
	Tags    string `help:"New comma-separated tags (posts only)."`
	URL     string `help:"New slug."`
	Draft   bool   `help:"Mark as draft." xor:"draft"`
	Publish bool   `help:"Clear the draft mark." xor:"draft"`
	NoEdit  bool   `help:"Only apply the header flags, skip the editor."`
}

func (e *EditCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	st := root.store()
	k := kindOf(e.Page)

	h, err := st.ReadHead(k, e.ID)
	if err != nil {
		return err
	}
	if e.Title != "" {
		h.Title = e.Title
	}
	if e.Author != "" {
		h.Author = e.Author
	}
	if e.Date != "" {
		h.Date = e.Date
	}
	if e.Tags != "" {
		h.Tags = e.Tags
	}
	if e.URL != "" {
		h.URL = e.URL
	}
	if e.Draft {
		h.Draft = "true"
	}
	if e.Publish {
		h.Draft = ""
	}

	r, probs := record.Normalize(e.ID, k, h, cfg.Author.Name, time.Now())
	for _, p := range probs {
		slog.Warn(p.String())
	}
	if err := st.WriteHead(k, e.ID, r.Header()); err != nil {
		return err
	}

	if !e.NoEdit {
		if !st.HasRaw(k, e.ID) {
			// Records created by hand have no Markdown source yet;
			// start from an empty one rather than failing.
			if err := st.WriteRaw(k, e.ID, nil); err != nil {
				return err
			}
		}
		if err := openEditor(cfg, st.RawPath(k, e.ID)); err != nil {
			return err
		}
	}
	if st.HasRaw(k, e.ID) {
		if err := renderBody(st, k, e.ID); err != nil {
			return err
		}
	}
	fmt.Printf("updated %s %d: %s (%s)\n", k, e.ID, r.Title, r.URL)
	return nil
}
