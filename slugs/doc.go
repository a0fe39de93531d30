/*
Package slugs provides the park identifier to URL slug lookup table.

The table is built once from a fixed list of entries and is read-only
afterwards, so a single *Table can be shared by every converter, including
converters running in parallel.

# Basic Usage

	table := slugs.Default()

	if slug, ok := table.Resolve(1); ok {
	    fmt.Println("https://bcparks.ca" + slug + "/")
	}

A miss is reported through the boolean and is never an error: not every
protected area has a canonical page yet.

# Custom Tables

Tests and one-off runs can build their own table:

	table, err := slugs.New([]slugs.Entry{
	    {ORCS: 123, Slug: "/sample-park"},
	})
*/
package slugs
