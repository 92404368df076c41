package commands

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/plumekit/plume/internal/config"
	"github.com/plumekit/plume/internal/record"
)

// Global context passed to subcommands if we need to share global state
// later.
type Global struct{}

// CLI is the root command grammar: global flags plus one struct per
// subcommand.
type CLI struct {
	Repo    string           `short:"r" help:"Blog repository directory." default:"." env:"PLUME_REPO"`
	Verbose bool             `short:"v" help:"Enable verbose logging."`
	Version kong.VersionFlag `name:"version" help:"Show version and exit."`

	Init    InitCmd    `cmd:"" help:"Create a fresh blog repository."`
	Add     AddCmd     `cmd:"" help:"Write a new post or page."`
	Edit    EditCmd    `cmd:"" help:"Change a record's header and reopen its source."`
	Remove  RemoveCmd  `cmd:"" help:"Delete a record."`
	List    ListCmd    `cmd:"" help:"Tabulate all records of one kind."`
	Log     LogCmd     `cmd:"" help:"Show posts newest first, one line each."`
	Import  ImportCmd  `cmd:"" help:"Turn Markdown files with front matter into records."`
	Refresh RefreshCmd `cmd:"" help:"Re-render every body whose Markdown source is kept."`
	Build   BuildCmd   `cmd:"" help:"Generate the static site."`
	Watch   WatchCmd   `cmd:"" help:"Rebuild whenever the repository changes."`
}

// AfterApply runs after flag parsing; set up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig reads the repository configuration and logs its soft
// problems.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, probs, err := config.Load(c.Repo)
	if err != nil {
		return nil, err
	}
	for _, p := range probs {
		slog.Warn(p.String())
	}
	return cfg, nil
}

func (c *CLI) store() *record.Store { return record.NewStore(c.Repo) }

func kindOf(page bool) record.Kind {
	if page {
		return record.Page
	}
	return record.Post
}

// editorCommand picks the editor: $VISUAL, then $EDITOR, then the
// configured [editor] command.
func editorCommand(cfg *config.Config) string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	if v := os.Getenv("EDITOR"); v != "" {
		return v
	}
	return cfg.Editor
}

// openEditor blocks until the editor exits.
func openEditor(cfg *config.Config, path string) error {
	cmdline := editorCommand(cfg)
	if cmdline == "" {
		return errors.New("no editor: set $VISUAL or $EDITOR, or [editor] command in the config")
	}
	parts := strings.Fields(cmdline)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// renderBody re-renders a record's stored HTML body from its Markdown
// source.
func renderBody(st *record.Store, k record.Kind, id int) error {
	raw, err := st.ReadRaw(k, id)
	if err != nil {
		return err
	}
	return st.WriteBody(k, id, record.RenderMarkdown(raw))
}
