package mapping

import "fmt"

// Field maps one source field to one target field.
type Field struct {
	Source   string `json:"source" yaml:"source"`
	Target   string `json:"target" yaml:"target"`
	Required bool   `json:"required" yaml:"required"`
}

// Table is an ordered field mapping. Output keys follow table order.
type Table []Field

// Validate rejects empty names and duplicate targets.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("%w: no fields", ErrInvalidTable)
	}
	seen := make(map[string]struct{}, len(t))
	for i, f := range t {
		if f.Source == "" || f.Target == "" {
			return fmt.Errorf("%w: field %d has an empty name", ErrInvalidTable, i)
		}
		if _, dup := seen[f.Target]; dup {
			return fmt.Errorf("%w: duplicate target %q", ErrInvalidTable, f.Target)
		}
		seen[f.Target] = struct{}{}
	}
	return nil
}

// Targets returns the target names in order.
func (t Table) Targets() []string {
	out := make([]string, len(t))
	for i, f := range t {
		out[i] = f.Target
	}
	return out
}

// HasTarget reports whether name is one of the table's targets.
func (t Table) HasTarget(name string) bool {
	for _, f := range t {
		if f.Target == name {
			return true
		}
	}
	return false
}

// Built-in tables for the legacy scrape exports.
var (
	// Coordinates maps protected-area map coordinates.
	Coordinates = Table{
		{Source: "orcs", Target: "orcs", Required: true},
		{Source: "latitude", Target: "latitude", Required: true},
		{Source: "longitude", Target: "longitude", Required: true},
	}

	// Names maps protected-area display and legal names.
	Names = Table{
		{Source: "orcs", Target: "orcs", Required: true},
		{Source: "parkName", Target: "protectedAreaName", Required: true},
		{Source: "legalName", Target: "legalName"},
		{Source: "typeCode", Target: "type"},
	}

	// Photos maps park photo gallery entries.
	Photos = Table{
		{Source: "orcs", Target: "orcs", Required: true},
		{Source: "imgURL", Target: "imageUrl", Required: true},
		{Source: "thumbnailURL", Target: "thumbnailUrl"},
		{Source: "caption", Target: "caption"},
		{Source: "photographer", Target: "photographer"},
		{Source: "sortOrder", Target: "sortOrder"},
	}

	// Details maps the free-text sections of a park page.
	Details = Table{
		{Source: "orcs", Target: "orcs", Required: true},
		{Source: "description", Target: "description", Required: true},
		{Source: "safetyInfo", Target: "safetyInfo"},
		{Source: "specialNotes", Target: "specialNotes"},
		{Source: "locationNotes", Target: "locationNotes"},
		{Source: "reservations", Target: "reservations"},
	}

	// URLs pairs each legacy page address with the new canonical page,
	// which is what the redirect list is generated from.
	URLs = Table{
		{Source: "orcs", Target: "orcs", Required: true},
		{Source: "url", Target: "oldUrl", Required: true},
	}
)
