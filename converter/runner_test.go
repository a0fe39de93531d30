package converter_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcparks/scrape-cleanup/config"
	"github.com/bcparks/scrape-cleanup/converter"
	"github.com/bcparks/scrape-cleanup/document"
	"github.com/bcparks/scrape-cleanup/internal/logging"
	"github.com/bcparks/scrape-cleanup/internal/testutil"
	"github.com/bcparks/scrape-cleanup/slugs"
)

func batch(t *testing.T, dir string) []*converter.Converter {
	t.Helper()
	good := testutil.WriteFile(t, dir, "coords.json", `{"Items":[{"orcs":123,"latitude":49.1,"longitude":-123.4}]}`)
	bad := testutil.WriteFile(t, dir, "names.json", `not json`)
	good2 := testutil.WriteFile(t, dir, "coords2.json", `{"Items":[]}`)

	return []*converter.Converter{
		newCoordinates(t, good, filepath.Join(dir, "out-1.json"), testutil.SampleSlugs(t), converter.PolicyFail),
		newCoordinates(t, bad, filepath.Join(dir, "out-2.json"), testutil.SampleSlugs(t), converter.PolicyFail),
		newCoordinates(t, good2, filepath.Join(dir, "out-3.json"), testutil.SampleSlugs(t), converter.PolicyFail),
	}
}

func TestRunner_FailureIsIsolated(t *testing.T) {
	for _, parallelism := range []int{0, 1, 3} {
		dir := t.TempDir()
		report := converter.NewRunner(converter.WithParallelism(parallelism)).RunAll(context.Background(), batch(t, dir))

		require.Len(t, report.Results, 3)
		assert.True(t, report.Results[0].OK())
		assert.ErrorIs(t, report.Results[1].Err, document.ErrMalformedInput)
		assert.True(t, report.Results[2].OK())
		assert.FileExists(t, filepath.Join(dir, "out-1.json"))
		assert.NoFileExists(t, filepath.Join(dir, "out-2.json"))
		assert.FileExists(t, filepath.Join(dir, "out-3.json"))

		assert.Len(t, report.Failed(), 1)
		assert.False(t, report.AllFailed())
		require.Error(t, report.Err())
		assert.ErrorIs(t, report.Err(), document.ErrMalformedInput)
	}
}

func TestRunner_AllFailed(t *testing.T) {
	dir := t.TempDir()
	c := newCoordinates(t, filepath.Join(dir, "missing.json"), filepath.Join(dir, "out.json"), nil, converter.PolicyFail)

	report := converter.NewRunner(converter.WithLogger(logging.NewNop())).RunAll(context.Background(), []*converter.Converter{c})
	assert.True(t, report.AllFailed())
}

func TestRunner_EmptyBatch(t *testing.T) {
	report := converter.NewRunner().RunAll(context.Background(), nil)
	assert.Empty(t, report.Results)
	assert.False(t, report.AllFailed())
	assert.NoError(t, report.Err())
}

func TestBuildAll(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, dir, "coords.json", `{"Items":[{"orcs":123,"latitude":49.1,"longitude":-123.4}]}`)
	testutil.WriteFile(t, dir, "sites.json", `{"Items":[{"ORCS_ID":123,"siteName":"Lakeside"}]}`)

	cfg := &config.AppConfig{
		InputDir:  dir,
		OutputDir: dir,
		Converters: []config.ConverterJob{
			{Name: "coordinates", Kind: "coordinates", Source: "coords.json", Destination: "coords-out.json"},
			{
				Name: "sites", Kind: config.KindCustom, Source: "sites.json", Destination: "sites-out.json",
				Identifier: "parkId",
				Fields: []config.FieldSpec{
					{Source: "ORCS_ID", Target: "parkId", Required: true},
					{Source: "siteName", Target: "name"},
				},
			},
		},
	}
	cfg.SetDefaults()

	convs, err := converter.BuildAll(cfg, testutil.SampleSlugs(t), logging.NewNop())
	require.NoError(t, err)
	require.Len(t, convs, 2)
	assert.Equal(t, converter.KindCustom, convs[1].Kind())

	report := converter.NewRunner(converter.WithParallelism(2)).RunAll(context.Background(), convs)
	require.NoError(t, report.Err())

	assert.Equal(t,
		`{"Items":[{"parkId":123,"name":"Lakeside","url":"https://bcparks.ca/sample-park/"}]}`,
		testutil.ReadFile(t, filepath.Join(dir, "sites-out.json")))

	only, err := converter.BuildAll(cfg, slugs.Default(), nil, "sites")
	require.NoError(t, err)
	require.Len(t, only, 1)
	assert.Equal(t, "sites", only[0].Name())

	_, err = converter.BuildAll(cfg, slugs.Default(), nil, "campsites")
	require.Error(t, err)
}

func TestFromJob_InvalidCustomTable(t *testing.T) {
	cfg := &config.AppConfig{}
	job := config.ConverterJob{
		Name: "dup", Kind: config.KindCustom, Source: "a.json", Destination: "b.json",
		Fields: []config.FieldSpec{{Source: "a", Target: "x"}, {Source: "b", Target: "x"}},
	}

	_, err := converter.FromJob(cfg, job, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dup")
}
