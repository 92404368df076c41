// Package lang supplies localized month names and date labels for
// archive pages and post metadata.
package lang

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Dir is the repository subdirectory holding per-locale override files.
const Dir = "lang"

var (
	matcher language.Matcher
	locales []monday.Locale
)

func init() {
	// en_US first: the matcher's first tag doubles as its fallback.
	ordered := []monday.Locale{monday.LocaleEnUS}
	for _, l := range monday.ListLocales() {
		if l != monday.LocaleEnUS {
			ordered = append(ordered, l)
		}
	}
	tags := make([]language.Tag, 0, len(ordered))
	for _, l := range ordered {
		t, err := language.Parse(strings.ReplaceAll(string(l), "_", "-"))
		if err != nil {
			continue
		}
		tags = append(tags, t)
		locales = append(locales, l)
	}
	matcher = language.NewMatcher(tags)
}

// Labels resolves month names for one configured locale, with optional
// per-repository overrides.
type Labels struct {
	locale monday.Locale
	months [12]string // overrides; empty slot falls through to monday
}

// Load resolves the configured locale and applies the repository's
// lang/<locale> override file when present. Unknown locales and broken
// override files degrade to warnings; the result is always usable.
func Load(repo, lang string) (*Labels, []string) {
	var warnings []string

	locale, ok := match(lang)
	if !ok {
		warnings = append(warnings, fmt.Sprintf("unknown locale %q, falling back to %s", lang, monday.LocaleEnUS))
	}
	l := &Labels{locale: locale}

	path := filepath.Join(repo, Dir, lang)
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			warnings = append(warnings, fmt.Sprintf("unreadable locale file %s: %v", path, err))
		}
		return l, warnings
	}

	var override struct {
		Months []string `yaml:"months"`
	}
	if err := yaml.Unmarshal(raw, &override); err != nil {
		warnings = append(warnings, fmt.Sprintf("broken locale file %s: %v", path, err))
		return l, warnings
	}
	if len(override.Months) != 12 {
		warnings = append(warnings, fmt.Sprintf("locale file %s lists %d months, want 12, ignoring", path, len(override.Months)))
		return l, warnings
	}
	copy(l.months[:], override.Months)
	return l, warnings
}

// match maps a configured language value onto the closest supported
// month-name locale.
func match(lang string) (monday.Locale, bool) {
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return monday.LocaleEnUS, false
	}
	_, i, conf := matcher.Match(tag)
	if conf == language.No {
		return monday.LocaleEnUS, false
	}
	return locales[i], true
}

// Month returns the localized name of m.
func (l *Labels) Month(m time.Month) string {
	if s := l.months[m-1]; s != "" {
		return s
	}
	return monday.Format(time.Date(2000, m, 1, 0, 0, 0, 0, time.UTC), "January", l.locale)
}

// MonthYear returns the "<month name> <year>" label that keys the
// archive index.
func (l *Labels) MonthYear(year int, m time.Month) string {
	return fmt.Sprintf("%s %d", l.Month(m), year)
}

// Date formats a record date for post metadata lines.
func (l *Labels) Date(t time.Time) string {
	return monday.Format(t, "January 2, 2006", l.locale)
}
