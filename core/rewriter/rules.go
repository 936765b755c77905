package rewriter

import (
	"slices"
	"strings"
)

const (
	LegacyPrefix  = "~~/components/scaffold-eth"
	TargetPackage = "@scaffold-ui/components"
)

// SpecifierRename renames one exported name. KeepAlias binds the new name
// back to the old one (`New as Old`) so call sites keep compiling.
type SpecifierRename struct {
	NewName   string
	KeepAlias bool
}

type Rule struct {
	LegacyPath  string
	TargetPath  string
	Renames     map[string]SpecifierRename
	Description string

	// RequireLegacySpecifier limits the rule to statements importing at
	// least one name from the table's legacy specifier set.
	RequireLegacySpecifier bool
}

type Replacement struct {
	Legacy string
	Modern string
}

// RuleTable is the static configuration handed to a Rewriter. It is never
// mutated after construction.
type RuleTable struct {
	Prefix           string
	LegacySpecifiers []string
	Rules            []Rule
	Fallback         []Replacement
}

var nestedLegacyPaths = []string{
	LegacyPrefix + "/Address/Address",
	LegacyPrefix + "/Balance",
	LegacyPrefix + "/Input/AddressInput",
	LegacyPrefix + "/Input/EtherInput",
}

// DefaultRuleTable returns a fresh copy of the scaffold-eth to scaffold-ui
// migration table.
func DefaultRuleTable() RuleTable {
	renames := func() map[string]SpecifierRename {
		return map[string]SpecifierRename{
			"InputBase": {NewName: "BaseInput", KeepAlias: true},
		}
	}

	table := RuleTable{
		Prefix: LegacyPrefix,
		LegacySpecifiers: []string{
			"Address", "AddressInput", "Balance", "EtherInput", "InputBase", "BaseInput",
		},
		Rules: []Rule{{
			LegacyPath:             LegacyPrefix,
			TargetPath:             TargetPackage,
			Renames:                renames(),
			Description:            describeRule(LegacyPrefix, TargetPackage),
			RequireLegacySpecifier: true,
		}},
	}

	for _, path := range nestedLegacyPaths {
		table.Rules = append(table.Rules, Rule{
			LegacyPath:  path,
			TargetPath:  TargetPackage,
			Renames:     renames(),
			Description: describeRule(path, TargetPackage),
		})
		table.Fallback = append(table.Fallback, Replacement{Legacy: path, Modern: TargetPackage})
	}

	return table
}

// Resolve picks the rule for a statement importing specifiers from path.
// The returned rule points into the table and must not be modified.
func (t RuleTable) Resolve(path string, specifiers []string) (*Rule, bool) {
	if t.Prefix == "" || !strings.HasPrefix(path, t.Prefix) {
		return nil, false
	}

	for i := range t.Rules {
		rule := &t.Rules[i]
		if rule.LegacyPath != path {
			continue
		}
		if rule.RequireLegacySpecifier && !t.usesLegacySpecifier(specifiers) {
			return nil, false
		}
		return rule, true
	}

	return nil, false
}

func (t RuleTable) usesLegacySpecifier(specifiers []string) bool {
	for _, s := range specifiers {
		if slices.Contains(t.LegacySpecifiers, s) {
			return true
		}
	}
	return false
}

// orderedFallback sorts longer legacy strings first so a nested path is
// never partially consumed by a shorter prefix.
func (t RuleTable) orderedFallback() []Replacement {
	ordered := slices.Clone(t.Fallback)
	slices.SortStableFunc(ordered, func(a, b Replacement) int {
		return len(b.Legacy) - len(a.Legacy)
	})
	return ordered
}

func describeRule(from, to string) string {
	return from + " → " + to
}
