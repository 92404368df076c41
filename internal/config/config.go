// Package config loads the repository's INI configuration and applies
// built-in defaults to whatever the file leaves out.
package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/ini.v1"
)

// FileName is the configuration file at the repository root.
const FileName = "config"

// Built-in defaults, used both for absent keys and as fallbacks for
// invalid ones.
const (
	DefaultTheme    = "default"
	DefaultLang     = "en_US"
	DefaultOutput   = "public"
	DefaultPageSize = 10
	DefaultRecent   = 5
	DefaultRSSItems = 10
)

// Author holds the contact block substituted into themes.
type Author struct {
	Name     string
	Nickname string
	Email    string
}

// RSS controls feed length and whether items carry full bodies.
type RSS struct {
	Items int
	Full  bool
}

// Generate holds the per-feature toggles.
type Generate struct {
	Posts     bool
	Pages     bool
	Tags      bool
	RSS       bool
	Atom      bool
	Styles    bool
	Index     bool
	FullPaths bool
	Drafts    bool // include records marked draft
}

// Config is the immutable configured state of one repository. Load
// fills every field; zero values only survive where they are valid.
type Config struct {
	Repo string // repository root, absolute or as given

	Title    string
	Subtitle string
	BaseURL  string // absolute site URL; empty disables feeds
	Theme    string
	Lang     string
	PageSize int // records per pagination page, shared by index, months and tags
	Recent   int // length of the recent-posts list
	Output   string

	Author   Author
	RSS      RSS
	Generate Generate
	Editor   string
}

// Problem describes one configuration value that was replaced by its
// default or looks suspicious. Problems are warnings, never fatal.
type Problem struct {
	Key string
	Msg string
}

func (p Problem) String() string {
	return fmt.Sprintf("config %s: %s", p.Key, p.Msg)
}

// Load reads <repo>/config. A missing or unparseable file is an error;
// individual bad values fall back to defaults and are reported as
// Problems.
func Load(repo string) (*Config, []Problem, error) {
	path := filepath.Join(repo, FileName)
	f, err := ini.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return fromFile(repo, f)
}

func fromFile(repo string, f *ini.File) (*Config, []Problem, error) {
	var probs []Problem
	intKey := func(sec *ini.Section, name string, def, min int) int {
		if !sec.HasKey(name) {
			return def
		}
		v, err := sec.Key(name).Int()
		if err != nil || v < min {
			probs = append(probs, Problem{
				Key: sec.Name() + "/" + name,
				Msg: fmt.Sprintf("invalid value %q, using %d", sec.Key(name).Value(), def),
			})
			return def
		}
		return v
	}
	strKey := func(sec *ini.Section, name, def string) string {
		if v := strings.TrimSpace(sec.Key(name).String()); v != "" {
			return v
		}
		return def
	}

	blog := f.Section("blog")
	author := f.Section("author")
	rss := f.Section("rss")
	gen := f.Section("generate")
	editor := f.Section("editor")

	c := &Config{
		Repo:     repo,
		Title:    strKey(blog, "title", "Untitled blog"),
		Subtitle: blog.Key("subtitle").String(),
		BaseURL:  strings.TrimRight(strings.TrimSpace(blog.Key("url").String()), "/"),
		Theme:    strKey(blog, "theme", DefaultTheme),
		Lang:     strKey(blog, "lang", DefaultLang),
		PageSize: intKey(blog, "posts", DefaultPageSize, 1),
		Recent:   intKey(blog, "recent", DefaultRecent, 0),
		Output:   strKey(blog, "output", DefaultOutput),
		Author: Author{
			Name:     strKey(author, "name", "Anonymous"),
			Nickname: author.Key("nickname").String(),
			Email:    author.Key("email").String(),
		},
		RSS: RSS{
			Items: intKey(rss, "items", DefaultRSSItems, 1),
			Full:  rss.Key("full").MustBool(false),
		},
		Generate: Generate{
			Posts:     gen.Key("posts").MustBool(true),
			Pages:     gen.Key("pages").MustBool(true),
			Tags:      gen.Key("tags").MustBool(true),
			RSS:       gen.Key("rss").MustBool(true),
			Atom:      gen.Key("atom").MustBool(true),
			Styles:    gen.Key("styles").MustBool(true),
			Index:     gen.Key("index").MustBool(true),
			FullPaths: gen.Key("fullpaths").MustBool(false),
			Drafts:    gen.Key("drafts").MustBool(false),
		},
		Editor: editor.Key("command").String(),
	}

	// The executable can be called from anywhere, so anchor the output
	// directory at the repository.
	if !filepath.IsAbs(c.Output) {
		c.Output = filepath.Join(repo, c.Output)
	}

	return c, probs, nil
}

var themeNameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Validate reports values that parse but look wrong: a relative base
// URL, a theme name that cannot be a file stem, a locale nobody will
// match. All findings are warnings.
func (c *Config) Validate() []Problem {
	err := validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.By(checkBaseURL)),
		validation.Field(&c.Theme, validation.Required, validation.Match(themeNameRe).Error("must use only letters, digits, _ or -")),
		validation.Field(&c.Lang, validation.Required),
	)
	if err == nil {
		return nil
	}
	errs, ok := err.(validation.Errors)
	if !ok {
		return []Problem{{Key: "config", Msg: err.Error()}}
	}
	probs := make([]Problem, 0, len(errs))
	for field, ferr := range errs {
		probs = append(probs, Problem{Key: strings.ToLower(field), Msg: ferr.Error()})
	}
	sort.Slice(probs, func(i, j int) bool { return probs[i].Key < probs[j].Key })
	return probs
}

func checkBaseURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil // feeds are simply skipped
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("not a URL: %v", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("must be absolute, e.g. https://blog.example.org")
	}
	return nil
}
