package slugs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrDuplicateORCS is returned by New when two entries share an identifier.
	ErrDuplicateORCS = errors.New("duplicate orcs")
	// ErrInvalidEntry is returned by New for a non-positive identifier or a malformed slug.
	ErrInvalidEntry = errors.New("invalid slug entry")
)

// Entry pairs a park identifier with its canonical URL path fragment.
type Entry struct {
	ORCS int    `json:"orcs"`
	Slug string `json:"slug"`
}

// Table is an immutable orcs -> slug index.
type Table struct {
	slugs map[int]string // orcs -> slug ("/strathcona-park")
}

// New builds a table from entries. Slugs must start with "/" and must not
// end with "/", because the URL builder appends the trailing slash.
func New(entries []Entry) (*Table, error) {
	t := &Table{slugs: make(map[int]string, len(entries))}
	for _, e := range entries {
		if e.ORCS <= 0 {
			return nil, fmt.Errorf("%w: orcs %d", ErrInvalidEntry, e.ORCS)
		}
		if len(e.Slug) < 2 || !strings.HasPrefix(e.Slug, "/") || strings.HasSuffix(e.Slug, "/") {
			return nil, fmt.Errorf("%w: orcs %d slug %q", ErrInvalidEntry, e.ORCS, e.Slug)
		}
		if _, dup := t.slugs[e.ORCS]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateORCS, e.ORCS)
		}
		t.slugs[e.ORCS] = e.Slug
	}
	return t, nil
}

// MustNew is like New but panics on invalid entries.
func MustNew(entries []Entry) *Table {
	t, err := New(entries)
	if err != nil {
		panic("slugs: " + err.Error())
	}
	return t
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the compiled-in table. It is built on first use and the
// same instance is returned afterwards.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = MustNew(parkSlugs)
	})
	return defaultTable
}

// Resolve returns the slug for orcs. The boolean is false when the park has
// no canonical page; a nil table resolves nothing.
func (t *Table) Resolve(orcs int) (string, bool) {
	if t == nil {
		return "", false
	}
	slug, ok := t.slugs[orcs]
	return slug, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.slugs)
}

// Entries returns a copy of the table sorted by orcs.
func (t *Table) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, 0, len(t.slugs))
	for orcs, slug := range t.slugs {
		out = append(out, Entry{ORCS: orcs, Slug: slug})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ORCS < out[j].ORCS })
	return out
}
