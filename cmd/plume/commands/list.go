package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/plumekit/plume/internal/record"
)

// ListCmd prints one aligned row per record, in id order.
type ListCmd struct {
	Page bool `help:"List pages instead of posts."`
}

func (l *ListCmd) Run(_ *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	k := kindOf(l.Page)
	recs, probs, err := root.store().Collect(k, cfg.Author.Name, time.Now())
	if err != nil {
		return err
	}
	for _, p := range probs {
		slog.Warn(p.String())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTITLE\tURL\tTAGS")
	for _, r := range recs {
		title := r.Title
		if r.Draft {
			title += " (draft)"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			r.ID, r.Date.Format(record.DateFormat), title, r.URL, strings.Join(r.Tags, ", "))
	}
	return w.Flush()
}
