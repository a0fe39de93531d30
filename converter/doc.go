// Package converter runs the scrape cleanup pipeline.
//
// A Converter reads one raw snapshot, maps every item through a
// mapping.Mapper and writes the cleaned document:
//
//	conv, err := converter.New(converter.Options{
//	    Name:        "coordinates",
//	    Source:      "raw/protectedAreaCoordinates.json",
//	    Destination: "out/protected-area-coordinates.json",
//	    Table:       mapping.Coordinates,
//	    Slugs:       slugs.Default(),
//	})
//	res := conv.Run(ctx)
//
// # Built-in Kinds
//
// Each legacy export has a registered Definition (coordinates, names,
// photos, details, urls). Run files may also declare custom converters
// with their own field list; see BuildAll.
//
// # Missing Fields
//
// A record missing a required field fails the whole converter by default
// and nothing is written. With PolicySkip the record is dropped, logged,
// and counted in Result.Skipped instead.
//
// # Running Many Converters
//
// Runner.RunAll runs converters independently, optionally in parallel. A
// failing converter is reported in the Report and never stops the others.
// Converters share only the read-only slug table.
package converter
