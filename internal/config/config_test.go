package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	repo := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(repo, FileName), []byte(content), 0o644))
	return repo
}

func TestLoad_Defaults(t *testing.T) {
	repo := writeConfig(t, "[blog]\ntitle = Test Blog\n")
	c, probs, err := Load(repo)
	require.NoError(t, err)
	assert.Empty(t, probs)

	assert.Equal(t, "Test Blog", c.Title)
	assert.Equal(t, DefaultTheme, c.Theme)
	assert.Equal(t, DefaultLang, c.Lang)
	assert.Equal(t, DefaultPageSize, c.PageSize)
	assert.Equal(t, DefaultRecent, c.Recent)
	assert.Equal(t, DefaultRSSItems, c.RSS.Items)
	assert.Equal(t, filepath.Join(repo, DefaultOutput), c.Output)
	assert.True(t, c.Generate.Posts)
	assert.True(t, c.Generate.RSS)
	assert.False(t, c.Generate.FullPaths)
	assert.Empty(t, c.BaseURL)
}

func TestLoad_FullFile(t *testing.T) {
	repo := writeConfig(t, `
[blog]
title    = Plume
subtitle = notes from nowhere
url      = https://blog.example.org/
theme    = plain
lang     = de_DE
posts    = 4
recent   = 2
output   = out

[author]
name     = Ada
nickname = ada
email    = ada@example.org

[rss]
items = 3
full  = true

[generate]
tags      = false
fullpaths = true

[editor]
command = nano
`)
	c, probs, err := Load(repo)
	require.NoError(t, err)
	assert.Empty(t, probs)

	assert.Equal(t, "Plume", c.Title)
	assert.Equal(t, "notes from nowhere", c.Subtitle)
	assert.Equal(t, "https://blog.example.org", c.BaseURL, "trailing slash is trimmed")
	assert.Equal(t, "plain", c.Theme)
	assert.Equal(t, "de_DE", c.Lang)
	assert.Equal(t, 4, c.PageSize)
	assert.Equal(t, 2, c.Recent)
	assert.Equal(t, filepath.Join(repo, "out"), c.Output)
	assert.Equal(t, Author{Name: "Ada", Nickname: "ada", Email: "ada@example.org"}, c.Author)
	assert.Equal(t, RSS{Items: 3, Full: true}, c.RSS)
	assert.False(t, c.Generate.Tags)
	assert.True(t, c.Generate.Posts)
	assert.True(t, c.Generate.FullPaths)
	assert.Equal(t, "nano", c.Editor)
}

func TestLoad_BadNumbersFallBackWithWarning(t *testing.T) {
	repo := writeConfig(t, "[blog]\nposts = many\nrecent = -3\n")
	c, probs, err := Load(repo)
	require.NoError(t, err)

	assert.Equal(t, DefaultPageSize, c.PageSize)
	assert.Equal(t, DefaultRecent, c.Recent)
	require.Len(t, probs, 2)
	assert.Equal(t, "blog/posts", probs[0].Key)
	assert.Equal(t, "blog/recent", probs[1].Key)
}

func TestLoad_ZeroPageSizeFallsBack(t *testing.T) {
	repo := writeConfig(t, "[blog]\nposts = 0\n")
	c, probs, err := Load(repo)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, c.PageSize)
	require.Len(t, probs, 1)
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(t.TempDir())
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := &Config{Theme: "default", Lang: "en_US", BaseURL: ""}
	assert.Empty(t, c.Validate(), "empty base URL is fine, feeds are skipped")

	c.BaseURL = "not a url"
	probs := c.Validate()
	require.Len(t, probs, 1)
	assert.Equal(t, "baseurl", probs[0].Key)

	c = &Config{Theme: "no/slashes", Lang: "en_US", BaseURL: "https://ok.example.org"}
	probs = c.Validate()
	require.Len(t, probs, 1)
	assert.Equal(t, "theme", probs[0].Key)
}
