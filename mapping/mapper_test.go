package mapping_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcparks/scrape-cleanup/document"
	"github.com/bcparks/scrape-cleanup/mapping"
	"github.com/bcparks/scrape-cleanup/slugs"
)

func sampleSlugs(t *testing.T) *slugs.Table {
	t.Helper()
	table, err := slugs.New([]slugs.Entry{{ORCS: 123, Slug: "/sample-park"}})
	require.NoError(t, err)
	return table
}

func record(t *testing.T, fields map[string]any) *document.SourceRecord {
	t.Helper()
	rec, err := document.NewSourceRecord(0, fields)
	require.NoError(t, err)
	return rec
}

func encode(t *testing.T, rec *document.DestinationRecord) string {
	t.Helper()
	b, err := json.Marshal(rec)
	require.NoError(t, err)
	return string(b)
}

func TestMapper_CoordinatesWithSlug(t *testing.T) {
	m, err := mapping.NewMapper(mapping.Coordinates, mapping.WithSlugs(sampleSlugs(t)))
	require.NoError(t, err)
	assert.True(t, m.Enriches())

	out, err := m.Map(record(t, map[string]any{"orcs": 123, "latitude": 49.1, "longitude": -123.4}))
	require.NoError(t, err)
	assert.Equal(t, `{"orcs":123,"latitude":49.1,"longitude":-123.4,"url":"https://bcparks.ca/sample-park/"}`, encode(t, out))
}

func TestMapper_LookupMissLeavesURLUnset(t *testing.T) {
	m, err := mapping.NewMapper(mapping.Coordinates, mapping.WithSlugs(sampleSlugs(t)))
	require.NoError(t, err)

	out, err := m.Map(record(t, map[string]any{"orcs": 456, "latitude": 49.1, "longitude": -123.4}))
	require.NoError(t, err)
	assert.False(t, out.Has(mapping.URLField))
	assert.Equal(t, `{"orcs":456,"latitude":49.1,"longitude":-123.4}`, encode(t, out))
}

func TestMapper_DropsUnmappedAndRenames(t *testing.T) {
	m, err := mapping.NewMapper(mapping.Names)
	require.NoError(t, err)
	assert.False(t, m.Enriches(), "no slug table means no enrichment")

	out, err := m.Map(record(t, map[string]any{
		"orcs":      1,
		"parkName":  "Strathcona Park",
		"scrapedAt": "2021-03-01",
		"typeCode":  "PK",
	}))
	require.NoError(t, err)

	want := []string{"orcs", "protectedAreaName", "type"}
	if diff := cmp.Diff(want, out.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	v, _ := out.Get("protectedAreaName")
	assert.Equal(t, "Strathcona Park", v)
}

func TestMapper_RequiredFieldMissing(t *testing.T) {
	m, err := mapping.NewMapper(mapping.Coordinates)
	require.NoError(t, err)

	rec, err := document.NewSourceRecord(4, map[string]any{"orcs": 1, "latitude": 49.1})
	require.NoError(t, err)

	_, err = m.Map(rec)
	require.ErrorIs(t, err, mapping.ErrMapping)

	var mErr *mapping.MappingError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, 4, mErr.Index)
	assert.Equal(t, "longitude", mErr.Field)
}

func TestMapper_NullAndEmptyPassThrough(t *testing.T) {
	m, err := mapping.NewMapper(mapping.Coordinates, mapping.WithSlugs(sampleSlugs(t)))
	require.NoError(t, err)

	out, err := m.Map(record(t, map[string]any{"orcs": nil, "latitude": nil, "longitude": ""}))
	require.NoError(t, err)
	assert.Equal(t, `{"orcs":null,"latitude":null,"longitude":""}`, encode(t, out))
}

func TestMapper_NonIntegerIdentifier(t *testing.T) {
	m, err := mapping.NewMapper(mapping.Coordinates, mapping.WithSlugs(sampleSlugs(t)))
	require.NoError(t, err)

	for _, orcs := range []any{"123", 12.5, true} {
		_, err := m.Map(record(t, map[string]any{"orcs": orcs, "latitude": 1, "longitude": 2}))
		require.ErrorIs(t, err, mapping.ErrMapping, "orcs=%v", orcs)
	}
}

func TestMapper_NonIntegerIdentifierWithoutEnrichment(t *testing.T) {
	m, err := mapping.NewMapper(mapping.Coordinates)
	require.NoError(t, err)

	out, err := m.Map(record(t, map[string]any{"orcs": "123", "latitude": 1, "longitude": 2}))
	require.NoError(t, err)
	v, _ := out.Get("orcs")
	assert.Equal(t, "123", v)
}

func TestMapper_OptionalFieldsOmitted(t *testing.T) {
	m, err := mapping.NewMapper(mapping.Photos, mapping.WithSlugs(sampleSlugs(t)))
	require.NoError(t, err)

	out, err := m.Map(record(t, map[string]any{
		"orcs":    123,
		"imgURL":  "/photos/1.jpg",
		"caption": nil,
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"orcs", "imageUrl", "caption", "url"}, out.Keys())
}

func TestMapper_URLsTableKeepsLegacyAddress(t *testing.T) {
	m, err := mapping.NewMapper(mapping.URLs, mapping.WithSlugs(sampleSlugs(t)))
	require.NoError(t, err)

	out, err := m.Map(record(t, map[string]any{"orcs": 123, "url": "http://www.env.gov.bc.ca/bcparks/explore/parkpgs/sample/"}))
	require.NoError(t, err)
	assert.Equal(t,
		`{"orcs":123,"oldUrl":"http://www.env.gov.bc.ca/bcparks/explore/parkpgs/sample/","url":"https://bcparks.ca/sample-park/"}`,
		encode(t, out))
}

func TestMapper_CustomIdentifier(t *testing.T) {
	table := mapping.Table{{Source: "ORCS_ID", Target: "parkId", Required: true}}
	m, err := mapping.NewMapper(table, mapping.WithSlugs(sampleSlugs(t)), mapping.WithIdentifier("parkId"))
	require.NoError(t, err)

	out, err := m.Map(record(t, map[string]any{"ORCS_ID": 123}))
	require.NoError(t, err)
	assert.Equal(t, `{"parkId":123,"url":"https://bcparks.ca/sample-park/"}`, encode(t, out))
}

func TestNewMapper_RejectsReservedURLTarget(t *testing.T) {
	table := mapping.Table{
		{Source: "orcs", Target: "orcs", Required: true},
		{Source: "link", Target: "url"},
	}

	_, err := mapping.NewMapper(table, mapping.WithSlugs(sampleSlugs(t)))
	require.ErrorIs(t, err, mapping.ErrInvalidTable)

	// Without enrichment the url target is an ordinary field.
	_, err = mapping.NewMapper(table)
	require.NoError(t, err)
}

func TestMapper_TableIsCopied(t *testing.T) {
	table := mapping.Table{{Source: "orcs", Target: "orcs", Required: true}}
	m, err := mapping.NewMapper(table)
	require.NoError(t, err)

	table[0].Target = "changed"
	assert.Equal(t, "orcs", m.Table()[0].Target)
}

func TestParkURL(t *testing.T) {
	assert.Equal(t, "https://bcparks.ca/garibaldi-park/", mapping.ParkURL("/garibaldi-park"))
}
