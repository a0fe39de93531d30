// Package mapping turns scraped records into cleaned records.
//
// A Table is an ordered list of (source field, target field) pairs. A
// Mapper interprets the table against one record at a time: declared fields
// are copied in table order, everything else is dropped. When the table maps
// the park identifier and a slug table is supplied, the Mapper also derives
// the canonical page URL:
//
//	m, _ := mapping.NewMapper(mapping.Coordinates, mapping.WithSlugs(slugs.Default()))
//	out, err := m.Map(rec)
//
// A lookup miss leaves the url field unset. It is not an error.
package mapping
