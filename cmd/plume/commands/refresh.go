package commands

import (
	"fmt"
	"log/slog"

	"github.com/plumekit/plume/internal/record"
)

// RefreshCmd re-renders every stored body from its Markdown source.
// Records without a source are left alone; their bodies are the only
// authority.
type RefreshCmd struct{}

func (RefreshCmd) Run(_ *Global, root *CLI) error {
	st := root.store()
	total := 0
	for _, k := range []record.Kind{record.Post, record.Page} {
		ids, junk, err := st.IDs(k)
		if err != nil {
			return err
		}
		for _, name := range junk {
			slog.Warn("ignoring stray file", "kind", k.Dir(), "name", name)
		}
		for _, id := range ids {
			if !st.HasRaw(k, id) {
				continue
			}
			if err := renderBody(st, k, id); err != nil {
				return err
			}
			slog.Debug("re-rendered", "kind", k, "id", id)
			total++
		}
	}
	fmt.Printf("re-rendered %d bodies\n", total)
	return nil
}
