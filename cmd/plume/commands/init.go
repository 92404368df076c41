package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/plumekit/plume/internal/config"
	"github.com/plumekit/plume/internal/lang"
	"github.com/plumekit/plume/internal/record"
)

// InitCmd bootstraps a repository: the directory tree, a commented
// configuration, a default theme and stylesheet, a sample month-name
// file and one welcome post.
type InitCmd struct {
	Force bool `help:"Re-create the scaffolding even if a config exists."`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	repo := root.Repo
	cfgPath := filepath.Join(repo, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil && !i.Force {
		return fmt.Errorf("%s already exists, use --force to overwrite the scaffolding", cfgPath)
	}

	for _, d := range []string{record.Post.Dir(), record.Page.Dir(), "theme", "style", lang.Dir} {
		if err := os.MkdirAll(filepath.Join(repo, d), 0o755); err != nil {
			return err
		}
	}
	files := map[string]string{
		cfgPath: sampleConfig,
		filepath.Join(repo, "theme", "default.html"): defaultTheme,
		filepath.Join(repo, "style", "default.css"):  defaultStyle,
		filepath.Join(repo, lang.Dir, "en_US"):       sampleLang,
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	if err := i.welcomePost(root); err != nil {
		return err
	}

	fmt.Println("initialized blog repository in", repo)
	fmt.Printf("next: edit %s, then run 'plume add' and 'plume build'\n", cfgPath)
	return nil
}

func (i *InitCmd) welcomePost(root *CLI) error {
	st := root.store()
	if st.Exists(record.Post, 1) && !i.Force {
		return nil
	}
	now := time.Now()
	r, _ := record.Normalize(1, record.Post, record.Header{
		Title: "Hello, world",
		Date:  now.Format(record.DateFormat),
	}, "Anonymous", now)
	if err := st.WriteHead(record.Post, 1, r.Header()); err != nil {
		return err
	}
	raw := []byte("Welcome to your new blog.\n\nRewrite this post with `plume edit 1`, or start a fresh one with `plume add`.\n")
	if err := st.WriteRaw(record.Post, 1, raw); err != nil {
		return err
	}
	return st.WriteBody(record.Post, 1, record.RenderMarkdown(raw))
}

const sampleConfig = `; plume repository configuration

[blog]
title    = My blog
subtitle =
; Absolute site URL, e.g. https://blog.example.org. Feeds are skipped
; while it is empty.
url      =
; Theme and stylesheet name: theme/<name>.html, style/<name>.css.
theme    = default
; Locale for month names, e.g. de_DE. Copy lang/en_US to override them.
lang     = en_US
; Posts per page on the index, archive and tag pages.
posts    = 10
; Length of the recent-posts list.
recent   = 5
output   = public

[author]
name     = Anonymous
nickname =
email    =

[rss]
; Number of posts in the feeds.
items = 10
; true embeds full bodies instead of excerpts.
full  = false

[generate]
posts     = true
pages     = true
tags      = true
rss       = true
atom      = true
styles    = true
index     = true
fullpaths = false
; true includes records marked draft.
drafts    = false

[editor]
; Used by add and edit when neither $VISUAL nor $EDITOR is set.
command =
`

const defaultTheme = `<!DOCTYPE html>
<html>
<head>
<!-- content-type -->
<!-- generator -->
<!-- date -->
<!-- stylesheet -->
<!-- feed -->
<title><!-- page-title --> | <!-- title --></title>
</head>
<body>
<header>
<h1><a href="%home%"><!-- title --></a></h1>
<p class="subtitle"><!-- subtitle --></p>
</header>
<nav>
<h2>Pages</h2>
<ul class="pages"><!-- pages --></ul>
<h2>Recent posts</h2>
<ul class="recent"><!-- posts --></ul>
<h2>Archive</h2>
<ul class="archive"><!-- archive --></ul>
<h2>Tags</h2>
<ul class="taglist"><!-- tags --></ul>
</nav>
<main>
<h2 class="page-title"><!-- page-title --></h2>
<!-- content -->
</main>
<footer>
<p><!-- name --> (<!-- nickname -->) &lt;<!-- e-mail -->&gt; &copy; <!-- year --></p>
</footer>
</body>
</html>
`

const defaultStyle = `body {
	max-width: 46em;
	margin: 0 auto;
	padding: 0 1em;
	font-family: Georgia, serif;
	line-height: 1.5;
	color: #222;
}

header h1 a {
	color: inherit;
	text-decoration: none;
}

.subtitle {
	color: #666;
	margin-top: -0.8em;
}

nav ul {
	list-style: none;
	padding-left: 0;
}

.post-meta {
	color: #666;
	font-size: 0.9em;
}

.pager {
	margin: 2em 0;
}

.pager-older {
	float: right;
}

pre {
	background: #f4f4f4;
	padding: 0.8em;
	overflow-x: auto;
}

footer {
	margin-top: 3em;
	border-top: 1px solid #ddd;
	color: #666;
	font-size: 0.9em;
}
`

const sampleLang = `# Month names used on archive pages, January to December.
# Copy this file to lang/<locale> and translate to override the
# built-in names for that locale.
months:
  - January
  - February
  - March
  - April
  - May
  - June
  - July
  - August
  - September
  - October
  - November
  - December
`
