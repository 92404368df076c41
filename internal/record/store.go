package record

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"gopkg.in/ini.v1"
)

// ErrNotFound is returned for ids without a head file.
var ErrNotFound = errors.New("record not found")

const headSection = "header"

// Store reads and writes the flat-file repository layout:
// <root>/<kind>s/{head,body,raw}/<id>.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) Root() string { return s.root }

func (s *Store) headDir(k Kind) string { return filepath.Join(s.root, k.Dir(), "head") }
func (s *Store) bodyDir(k Kind) string { return filepath.Join(s.root, k.Dir(), "body") }
func (s *Store) rawDir(k Kind) string  { return filepath.Join(s.root, k.Dir(), "raw") }

// HeadPath returns the head file path for a record id.
func (s *Store) HeadPath(k Kind, id int) string {
	return filepath.Join(s.headDir(k), strconv.Itoa(id))
}

// BodyPath returns the body file path for a record id.
func (s *Store) BodyPath(k Kind, id int) string {
	return filepath.Join(s.bodyDir(k), strconv.Itoa(id))
}

// RawPath returns the raw source path for a record id.
func (s *Store) RawPath(k Kind, id int) string {
	return filepath.Join(s.rawDir(k), strconv.Itoa(id))
}

// IDs lists all record ids of a kind, ascending. Directory entries that
// are not positive integers are returned in junk for the caller to
// report. A missing head directory reads as an empty store.
func (s *Store) IDs(k Kind) (ids []int, junk []string, err error) {
	entries, err := os.ReadDir(s.headDir(k))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("listing %s heads: %w", k, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		id, convErr := strconv.Atoi(e.Name())
		if convErr != nil || id <= 0 {
			junk = append(junk, e.Name())
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, junk, nil
}

// NextID returns the smallest unused id, starting at 1.
func (s *Store) NextID(k Kind) (int, error) {
	ids, _, err := s.IDs(k)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 1, nil
	}
	return ids[len(ids)-1] + 1, nil
}

// Exists reports whether a head file exists for the id.
func (s *Store) Exists(k Kind, id int) bool {
	_, err := os.Stat(s.HeadPath(k, id))
	return err == nil
}

// ReadHead parses a head file into its raw fields.
func (s *Store) ReadHead(k Kind, id int) (Header, error) {
	f, err := ini.Load(s.HeadPath(k, id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Header{}, fmt.Errorf("%s %d: %w", k, id, ErrNotFound)
		}
		return Header{}, fmt.Errorf("reading %s %d head: %w", k, id, err)
	}
	sec := f.Section(headSection)
	return Header{
		Title:  sec.Key("title").String(),
		Author: sec.Key("author").String(),
		Date:   sec.Key("date").String(),
		Tags:   sec.Key("tags").String(),
		URL:    sec.Key("url").String(),
		Draft:  sec.Key("draft").String(),
	}, nil
}

// WriteHead writes a head file. Key order is stable so heads diff
// cleanly under version control.
func (s *Store) WriteHead(k Kind, id int, h Header) error {
	if err := os.MkdirAll(s.headDir(k), 0o755); err != nil {
		return fmt.Errorf("creating %s head dir: %w", k, err)
	}
	f := ini.Empty()
	sec := f.Section(headSection)
	sec.Key("title").SetValue(h.Title)
	sec.Key("author").SetValue(h.Author)
	sec.Key("date").SetValue(h.Date)
	if k == Post {
		sec.Key("tags").SetValue(h.Tags)
	}
	sec.Key("url").SetValue(h.URL)
	if h.Draft != "" {
		sec.Key("draft").SetValue(h.Draft)
	}
	if err := f.SaveTo(s.HeadPath(k, id)); err != nil {
		return fmt.Errorf("writing %s %d head: %w", k, id, err)
	}
	return nil
}

// ReadBody returns the rendered HTML body of a record.
func (s *Store) ReadBody(k Kind, id int) (string, error) {
	b, err := os.ReadFile(s.BodyPath(k, id))
	if err != nil {
		return "", fmt.Errorf("reading %s %d body: %w", k, id, err)
	}
	return string(b), nil
}

// WriteBody stores a rendered HTML body.
func (s *Store) WriteBody(k Kind, id int, body string) error {
	if err := os.MkdirAll(s.bodyDir(k), 0o755); err != nil {
		return fmt.Errorf("creating %s body dir: %w", k, err)
	}
	if err := os.WriteFile(s.BodyPath(k, id), []byte(body), 0o644); err != nil {
		return fmt.Errorf("writing %s %d body: %w", k, id, err)
	}
	return nil
}

// ReadRaw returns the raw Markdown source of a record.
func (s *Store) ReadRaw(k Kind, id int) ([]byte, error) {
	b, err := os.ReadFile(s.RawPath(k, id))
	if err != nil {
		return nil, fmt.Errorf("reading %s %d raw: %w", k, id, err)
	}
	return b, nil
}

// WriteRaw stores a raw Markdown source.
func (s *Store) WriteRaw(k Kind, id int, raw []byte) error {
	if err := os.MkdirAll(s.rawDir(k), 0o755); err != nil {
		return fmt.Errorf("creating %s raw dir: %w", k, err)
	}
	if err := os.WriteFile(s.RawPath(k, id), raw, 0o644); err != nil {
		return fmt.Errorf("writing %s %d raw: %w", k, id, err)
	}
	return nil
}

// HasRaw reports whether a raw source exists for the id.
func (s *Store) HasRaw(k Kind, id int) bool {
	_, err := os.Stat(s.RawPath(k, id))
	return err == nil
}

// Remove deletes a record's head, body and raw files. The head must
// exist; body and raw are optional.
func (s *Store) Remove(k Kind, id int) error {
	if !s.Exists(k, id) {
		return fmt.Errorf("%s %d: %w", k, id, ErrNotFound)
	}
	if err := os.Remove(s.HeadPath(k, id)); err != nil {
		return fmt.Errorf("removing %s %d head: %w", k, id, err)
	}
	for _, p := range []string{s.BodyPath(k, id), s.RawPath(k, id)} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s %d: %w", k, id, err)
		}
	}
	return nil
}

// Read loads and normalizes a single record, body included.
func (s *Store) Read(k Kind, id int, defaultAuthor string, today time.Time) (*Record, []Problem, error) {
	h, err := s.ReadHead(k, id)
	if err != nil {
		return nil, nil, err
	}
	r, probs := Normalize(id, k, h, defaultAuthor, today)
	body, err := s.ReadBody(k, id)
	if err != nil {
		return nil, probs, err
	}
	r.Body = body
	return r, probs, nil
}

// Collect loads every record of a kind. A head that cannot be opened or
// parsed is reported and skipped; a body that cannot be read aborts the
// run, since the output would silently lose content.
func (s *Store) Collect(k Kind, defaultAuthor string, today time.Time) ([]*Record, []Problem, error) {
	ids, junk, err := s.IDs(k)
	if err != nil {
		return nil, nil, err
	}
	var probs []Problem
	for _, name := range junk {
		probs = append(probs, Problem{Kind: k, Msg: fmt.Sprintf("skipping stray entry %q in %s head directory", name, k)})
	}

	records := make([]*Record, 0, len(ids))
	for _, id := range ids {
		h, err := s.ReadHead(k, id)
		if err != nil {
			probs = append(probs, Problem{Kind: k, ID: id, Msg: fmt.Sprintf("unreadable head, skipping record: %v", err)})
			continue
		}
		r, rp := Normalize(id, k, h, defaultAuthor, today)
		probs = append(probs, rp...)
		body, err := s.ReadBody(k, id)
		if err != nil {
			return nil, probs, err
		}
		r.Body = body
		records = append(records, r)
	}
	return records, probs, nil
}
