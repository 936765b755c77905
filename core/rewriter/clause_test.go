package rewriter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNamedImports(t *testing.T) {
	tests := []struct {
		name   string
		clause string
		names  []string
		check  func(t *testing.T, entries []ImportEntry)
	}{
		{
			name:   "single",
			clause: " Address ",
			names:  []string{"Address"},
			check: func(t *testing.T, entries []ImportEntry) {
				require.Len(t, entries, 1)
				assert.Equal(t, " ", entries[0].Leading)
				assert.Equal(t, " ", entries[0].Trailing)
				assert.Empty(t, entries[0].Comma)
			},
		},
		{
			name:   "type and alias",
			clause: " type  InputBase  as   Legacy, Balance",
			names:  []string{"InputBase", "Balance"},
			check: func(t *testing.T, entries []ImportEntry) {
				require.Len(t, entries, 2)
				e := entries[0]
				assert.True(t, e.IsType)
				assert.Equal(t, "type  ", e.TypeMarker)
				assert.Equal(t, "InputBase", e.Name)
				assert.Equal(t, "  as   ", e.AsInfix)
				assert.Equal(t, "Legacy", e.Alias)
				assert.Equal(t, ",", e.Comma)
			},
		},
		{
			name:   "trailing comma filler",
			clause: "\n  Address,\n  Balance,\n",
			names:  []string{"Address", "Balance"},
			check: func(t *testing.T, entries []ImportEntry) {
				require.Len(t, entries, 3)
				assert.True(t, entries[2].Filler)
				assert.Equal(t, "\n", entries[2].Raw)
			},
		},
		{
			name:   "binding named type",
			clause: " type as kind ",
			names:  []string{"type"},
			check: func(t *testing.T, entries []ImportEntry) {
				require.Len(t, entries, 1)
				assert.False(t, entries[0].IsType)
				assert.Equal(t, "kind", entries[0].Alias)
			},
		},
		{
			name:   "empty",
			clause: "",
			names:  nil,
			check: func(t *testing.T, entries []ImportEntry) {
				require.Len(t, entries, 1)
				assert.True(t, entries[0].Filler)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, names, err := ParseNamedImports(tt.clause)
			require.NoError(t, err)
			assert.Equal(t, tt.names, names)
			tt.check(t, entries)

			var rebuilt strings.Builder
			for _, e := range entries {
				rebuilt.WriteString(e.String())
			}
			assert.Equal(t, tt.clause, rebuilt.String())
		})
	}
}

func TestParseNamedImportsUnparseable(t *testing.T) {
	for _, clause := range []string{
		" Address /* legacy */ ",
		" Address as ",
		" \"quoted\" as Q ",
		" a b c ",
	} {
		_, _, err := ParseNamedImports(clause)
		assert.ErrorIs(t, err, ErrUnparseableClause, clause)
	}
}

func TestImportEntryRenamed(t *testing.T) {
	keep := SpecifierRename{NewName: "BaseInput", KeepAlias: true}

	tests := []struct {
		part string
		want string
	}{
		{" InputBase,", " BaseInput as InputBase,"},
		{" InputBase as Mine ", " BaseInput as Mine "},
		{"\n  type InputBase,", "\n  type BaseInput as InputBase,"},
		{"InputBase", "BaseInput as InputBase"},
	}
	for _, tt := range tests {
		entry, err := parseEntry(tt.part)
		require.NoError(t, err)
		assert.Equal(t, tt.want, entry.renamed(keep))
	}

	entry, err := parseEntry(" InputBase ")
	require.NoError(t, err)
	assert.Equal(t, " BaseInput ", entry.renamed(SpecifierRename{NewName: "BaseInput"}))
}

func TestDefaultImport(t *testing.T) {
	tests := []struct {
		statement string
		want      string
		ok        bool
	}{
		{`import Address from "x";`, "Address", true},
		{"import\n  Address,\n  { Balance } from \"x\";", "Address", true},
		{`import $thing, * as ns from "x";`, "$thing", true},
		{`import type { Address } from "x";`, "", false},
		{`import type from "x";`, "", false},
		{`import { Address } from "x";`, "", false},
		{`import * as ns from "x";`, "", false},
	}
	for _, tt := range tests {
		got, ok := DefaultImport(tt.statement)
		assert.Equal(t, tt.ok, ok, tt.statement)
		assert.Equal(t, tt.want, got, tt.statement)
	}
}
