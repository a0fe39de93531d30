package mapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bcparks/scrape-cleanup/mapping"
)

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   mapping.Table
		wantErr bool
	}{
		{"empty", mapping.Table{}, true},
		{"empty source", mapping.Table{{Source: "", Target: "a"}}, true},
		{"empty target", mapping.Table{{Source: "a", Target: ""}}, true},
		{"duplicate target", mapping.Table{{Source: "a", Target: "x"}, {Source: "b", Target: "x"}}, true},
		{"same source twice", mapping.Table{{Source: "a", Target: "x"}, {Source: "a", Target: "y"}}, false},
		{"coordinates", mapping.Coordinates, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, mapping.ErrInvalidTable)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBuiltinTables_Valid(t *testing.T) {
	for name, table := range map[string]mapping.Table{
		"coordinates": mapping.Coordinates,
		"names":       mapping.Names,
		"photos":      mapping.Photos,
		"details":     mapping.Details,
		"urls":        mapping.URLs,
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, table.Validate())
			assert.True(t, table.HasTarget(mapping.DefaultIdentifier))
			assert.False(t, table.HasTarget(mapping.URLField))
			assert.Equal(t, mapping.DefaultIdentifier, table.Targets()[0])
		})
	}
}
