package rewriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	table := DefaultRuleTable()

	tests := []struct {
		name       string
		path       string
		specifiers []string
		want       string
	}{
		{"bare with legacy", LegacyPrefix, []string{"Foo", "Balance"}, LegacyPrefix},
		{"bare without legacy", LegacyPrefix, []string{"RainbowKitCustomConnectButton"}, ""},
		{"bare no specifiers", LegacyPrefix, nil, ""},
		{"nested", LegacyPrefix + "/Address/Address", nil, LegacyPrefix + "/Address/Address"},
		{"nested any specifier", LegacyPrefix + "/Input/EtherInput", []string{"Unrelated"}, LegacyPrefix + "/Input/EtherInput"},
		{"unknown nested", LegacyPrefix + "/Faucet", []string{"Address"}, ""},
		{"other prefix", "~~/hooks/scaffold-eth", []string{"Address"}, ""},
		{"target", TargetPackage, []string{"Address"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := table.Resolve(tt.path, tt.specifiers)
			if tt.want == "" {
				assert.False(t, ok)
				assert.Nil(t, rule)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.want, rule.LegacyPath)
			assert.Equal(t, TargetPackage, rule.TargetPath)
			assert.Equal(t, SpecifierRename{NewName: "BaseInput", KeepAlias: true}, rule.Renames["InputBase"])
		})
	}
}

func TestDefaultRuleTableIsFresh(t *testing.T) {
	a := DefaultRuleTable()
	a.Rules[0].Renames["Address"] = SpecifierRename{NewName: "Changed"}
	a.LegacySpecifiers[0] = "Changed"

	b := DefaultRuleTable()
	assert.NotContains(t, b.Rules[0].Renames, "Address")
	assert.Equal(t, "Address", b.LegacySpecifiers[0])
	assert.Len(t, b.Rules, 5)
}

func TestOrderedFallback(t *testing.T) {
	table := RuleTable{Fallback: []Replacement{
		{Legacy: "a/b", Modern: "x"},
		{Legacy: "a/b/c/d", Modern: "y"},
		{Legacy: "a/b/c", Modern: "z"},
	}}

	ordered := table.orderedFallback()
	require.Len(t, ordered, 3)
	assert.Equal(t, "a/b/c/d", ordered[0].Legacy)
	assert.Equal(t, "a/b/c", ordered[1].Legacy)
	assert.Equal(t, "a/b", ordered[2].Legacy)
	assert.Equal(t, "a/b", table.Fallback[0].Legacy)

	rw := New(table)
	assert.Equal(t, "y and z and x", rw.Rewrite("a/b/c/d and a/b/c and a/b").Content)
}
