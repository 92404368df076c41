package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/plumekit/plume/internal/record"
)

// AddCmd allocates the next free id, writes a normalized head and opens
// the Markdown source in the editor.
type AddCmd struct {
	Page   bool   `help:"Create a page instead of a post."`
	Title  string `help:"Record title."`
	Author string `help:"Author, defaults to the configured [author] name."`
	Date   string `help:"Publication date, YYYY-MM-DD. Defaults to today."`
	Tags   string `help:"Comma-separated tags (posts only)."`
	URL    string `help:"Explicit slug instead of one derived from the title."`
	Draft  bool   `help:"Mark as draft; builds skip it until published."`
	NoEdit bool   `help:"Skip the editor."`
}

func (a *AddCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	st := root.store()
	k := kindOf(a.Page)

	id, err := st.NextID(k)
	if err != nil {
		return err
	}
	h := record.Header{
		Title:  a.Title,
		Author: a.Author,
		Date:   a.Date,
		Tags:   a.Tags,
		URL:    a.URL,
	}
	if a.Draft {
		h.Draft = "true"
	}
	r, probs := record.Normalize(id, k, h, cfg.Author.Name, time.Now())
	for _, p := range probs {
		slog.Warn(p.String())
	}
	if err := st.WriteHead(k, id, r.Header()); err != nil {
		return err
	}
	if err := st.WriteRaw(k, id, nil); err != nil {
		return err
	}
	if !a.NoEdit {
		if err := openEditor(cfg, st.RawPath(k, id)); err != nil {
			return err
		}
	}
	if err := renderBody(st, k, id); err != nil {
		return err
	}
	fmt.Printf("created %s %d: %s (%s)\n", k, id, r.Title, r.URL)
	return nil
}
