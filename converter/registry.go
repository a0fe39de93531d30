package converter

import (
	"sort"

	"github.com/bcparks/scrape-cleanup/mapping"
)

// Kind names a record kind handled by a converter.
type Kind string

// Built-in kinds.
const (
	KindCoordinates Kind = "coordinates"
	KindNames       Kind = "names"
	KindPhotos      Kind = "photos"
	KindDetails     Kind = "details"
	KindURLs        Kind = "urls"
	KindCustom      Kind = "custom"
)

// Definition is a registered record kind.
type Definition struct {
	Kind        Kind
	Description string
	Table       mapping.Table
}

var registry = map[Kind]Definition{
	KindCoordinates: {KindCoordinates, "protected area map coordinates", mapping.Coordinates},
	KindNames:       {KindNames, "protected area display and legal names", mapping.Names},
	KindPhotos:      {KindPhotos, "park photo gallery entries", mapping.Photos},
	KindDetails:     {KindDetails, "park page text sections", mapping.Details},
	KindURLs:        {KindURLs, "legacy page address to canonical page", mapping.URLs},
}

// Lookup returns the Definition for kind.
func Lookup(kind Kind) (Definition, bool) {
	def, ok := registry[kind]
	return def, ok
}

// Definitions returns every built-in Definition sorted by kind.
func Definitions() []Definition {
	out := make([]Definition, 0, len(registry))
	for _, def := range registry {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}
