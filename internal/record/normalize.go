package record

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/plumekit/plume/internal/slug"
)

// DefaultTitle is given to records whose header carries no title.
const DefaultTitle = "Untitled"

// Problem describes one repair or skip decision made while reading a
// record. Callers decide how to log it; the library never writes to the
// log itself.
type Problem struct {
	Kind  Kind
	ID    int
	Field string
	Msg   string
}

func (p Problem) String() string {
	if p.ID == 0 {
		return p.Msg
	}
	if p.Field == "" {
		return fmt.Sprintf("%s %d: %s", p.Kind, p.ID, p.Msg)
	}
	return fmt.Sprintf("%s %d: %s: %s", p.Kind, p.ID, p.Field, p.Msg)
}

// Normalize turns a raw header into a repaired Record. Missing titles
// and authors get defaults, an absent or malformed date becomes today,
// tags are lowercased, deduplicated and sorted, and the url is reduced
// to the slug alphabet or derived from the title. Every repair is
// reported as a Problem.
func Normalize(id int, kind Kind, h Header, defaultAuthor string, today time.Time) (*Record, []Problem) {
	r := &Record{ID: id, Kind: kind}
	var probs []Problem
	warn := func(field, msg string) {
		probs = append(probs, Problem{Kind: kind, ID: id, Field: field, Msg: msg})
	}

	r.Title = strings.TrimSpace(h.Title)
	if r.Title == "" {
		r.Title = DefaultTitle
		warn("title", "missing, defaulted to "+strconv.Quote(DefaultTitle))
	}

	r.Author = strings.TrimSpace(h.Author)
	if r.Author == "" {
		r.Author = defaultAuthor
		warn("author", "missing, defaulted to "+strconv.Quote(defaultAuthor))
	}

	if d, err := time.Parse(DateFormat, strings.TrimSpace(h.Date)); err == nil {
		r.Date = d
	} else {
		r.Date = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		warn("date", fmt.Sprintf("%q does not match %s, using today", h.Date, DateFormat))
	}

	if kind == Post {
		r.Tags = ParseTags(h.Tags)
	}

	if d := strings.TrimSpace(h.Draft); d != "" {
		v, err := strconv.ParseBool(d)
		if err != nil {
			warn("draft", fmt.Sprintf("%q is not a boolean, treating as published", d))
		}
		r.Draft = v
	}

	r.URL = slug.Strip(h.URL)
	if r.URL == "" {
		r.URL = slug.Make(strings.ToLower(r.Title))
		if r.URL == "" {
			r.URL = slug.Fallback(r.Title)
		}
		if kind == Post {
			// The id prefix keeps derived post slugs globally unique.
			r.URL = strconv.Itoa(id) + "-" + r.URL
		}
	}

	return r, probs
}

// ParseTags splits a comma-separated tag list and normalizes it.
func ParseTags(s string) []string {
	return NormalizeTags(strings.Split(s, ","))
}

// NormalizeTags lowercases tags, collapses internal whitespace, drops
// empties and duplicates, and sorts the result ascending.
func NormalizeTags(raw []string) []string {
	var tags []string
	seen := make(map[string]bool, len(raw))
	for _, t := range raw {
		t = CanonicalTag(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	slices.Sort(tags)
	return tags
}

// CanonicalTag lowercases one tag and collapses its whitespace, the
// form under which tags are indexed and referenced.
func CanonicalTag(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
