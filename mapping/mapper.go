package mapping

import (
	"fmt"
	"math"

	"github.com/bcparks/scrape-cleanup/document"
	"github.com/bcparks/scrape-cleanup/slugs"
)

const (
	// BaseURL prefixes every derived park page address.
	BaseURL = "https://bcparks.ca"
	// URLField is the derived field holding the park page address.
	URLField = "url"
	// DefaultIdentifier is the target field carrying the park identifier.
	DefaultIdentifier = "orcs"
)

// ParkURL builds the canonical page address for slug.
func ParkURL(slug string) string {
	return BaseURL + slug + "/"
}

// Mapper applies one Table to source records. It holds no mutable state
// and is safe for concurrent use.
type Mapper struct {
	table      Table
	slugs      *slugs.Table
	identifier string
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithSlugs enables URL enrichment against t.
func WithSlugs(t *slugs.Table) Option {
	return func(m *Mapper) { m.slugs = t }
}

// WithIdentifier sets the target field used as the lookup key.
func WithIdentifier(field string) Option {
	return func(m *Mapper) { m.identifier = field }
}

// NewMapper validates table and returns a Mapper for it.
func NewMapper(table Table, opts ...Option) (*Mapper, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	m := &Mapper{
		table:      append(Table(nil), table...),
		identifier: DefaultIdentifier,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.Enriches() && table.HasTarget(URLField) {
		return nil, fmt.Errorf("%w: target %q is reserved for the derived park URL", ErrInvalidTable, URLField)
	}
	return m, nil
}

// Table returns a copy of the mapper's table.
func (m *Mapper) Table() Table {
	return append(Table(nil), m.table...)
}

// Enriches reports whether mapped records get a derived url field.
func (m *Mapper) Enriches() bool {
	return m.slugs != nil && m.table.HasTarget(m.identifier)
}

// Map produces the cleaned record for rec. Absent required fields fail with
// *MappingError; absent optional fields are omitted; null and empty values
// are copied as they are.
func (m *Mapper) Map(rec *document.SourceRecord) (*document.DestinationRecord, error) {
	out := document.NewDestinationRecord()
	for _, f := range m.table {
		v, ok := rec.Get(f.Source)
		if !ok {
			if f.Required {
				return nil, &MappingError{Index: rec.Index(), Field: f.Source, Reason: reasonMissing}
			}
			continue
		}
		out.Set(f.Target, v.AsInterface())
	}

	if m.Enriches() {
		if err := m.enrich(rec.Index(), out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (m *Mapper) enrich(index int, out *document.DestinationRecord) error {
	raw, ok := out.Get(m.identifier)
	if !ok || raw == nil {
		return nil
	}
	orcs, ok := parkID(raw)
	if !ok {
		return &MappingError{Index: index, Field: m.identifier, Reason: fmt.Sprintf("park identifier %v is not an integer", raw)}
	}
	if slug, found := m.slugs.Resolve(orcs); found {
		out.Set(URLField, ParkURL(slug))
	}
	return nil
}

// parkID accepts whole JSON numbers only.
func parkID(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
