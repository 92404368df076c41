package commands

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/plumekit/plume/internal/record"
)

// ImportCmd converts Markdown files with YAML front matter into
// records: the front matter becomes the head, the body is kept as the
// Markdown source and rendered.
type ImportCmd struct {
	Page  bool     `help:"Import as pages instead of posts."`
	Files []string `arg:"" type:"existingfile" help:"Markdown files to import."`
}

type importMeta struct {
	Title  string   `yaml:"title"`
	Author string   `yaml:"author"`
	Date   string   `yaml:"date"`
	Tags   []string `yaml:"tags"`
	Slug   string   `yaml:"slug"`
}

func (i *ImportCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	st := root.store()
	k := kindOf(i.Page)

	for _, file := range i.Files {
		src, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		var meta importMeta
		body, err := frontmatter.Parse(bytes.NewReader(src), &meta)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if meta.Title == "" {
			// The file name is a better title than "Untitled".
			meta.Title = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		}

		id, err := st.NextID(k)
		if err != nil {
			return err
		}
		r, probs := record.Normalize(id, k, record.Header{
			Title:  meta.Title,
			Author: meta.Author,
			Date:   meta.Date,
			Tags:   strings.Join(meta.Tags, ", "),
			URL:    meta.Slug,
		}, cfg.Author.Name, time.Now())
		for _, p := range probs {
			slog.Warn(p.String())
		}
		if err := st.WriteHead(k, id, r.Header()); err != nil {
			return err
		}
		if err := st.WriteRaw(k, id, body); err != nil {
			return err
		}
		if err := st.WriteBody(k, id, record.RenderMarkdown(body)); err != nil {
			return err
		}
		fmt.Printf("imported %s as %s %d (%s)\n", file, k, id, r.URL)
	}
	return nil
}
