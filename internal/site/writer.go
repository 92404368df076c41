package site

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/plumekit/plume/internal/theme"
)

// writeFile writes one output file under the output root, creating
// directories as needed. Output failures abort the run; a partially
// written site must not pass silently.
func (g *Generator) writeFile(rel string, data []byte) error {
	path := filepath.Join(g.cfg.Output, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	g.report.FilesWritten++
	return nil
}

// renderAndWrite renders one page through the cached skeleton and
// writes it into dir.
func (g *Generator) renderAndWrite(dir, file, title, content string) error {
	out, warnings := g.engine.Render(g.skeleton, theme.Page{
		Title:   title,
		Content: content,
		Depth:   depthOf(dir),
	})
	g.warnAll(warnings)
	return g.writeFile(filepath.Join(dir, file), []byte(out))
}

// depthOf counts how many directories below the site root a page in
// dir lives, which decides its %root% prefix.
func depthOf(dir string) int {
	if dir == "" {
		return 0
	}
	return strings.Count(dir, "/") + 1
}
