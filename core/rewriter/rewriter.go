// Package rewriter migrates scaffold-eth component imports to the
// scaffold-ui package. It is pure text-in, text-out and safe for
// concurrent use.
package rewriter

import (
	"fmt"
	"slices"
	"strings"
)

// Result is the outcome of rewriting one file.
type Result struct {
	Content string
	Changes []string
}

func (r Result) Changed() bool {
	return len(r.Changes) > 0
}

// Analysis describes what happens to a single located statement. Rule is
// nil when the statement is left alone.
type Analysis struct {
	Original   string
	Rewritten  string
	Specifiers []string
	Renamed    []string
	Rule       *Rule
	Err        error
}

type Rewriter struct {
	table    RuleTable
	fallback []Replacement
}

func New(table RuleTable) *Rewriter {
	return &Rewriter{
		table:    table,
		fallback: table.orderedFallback(),
	}
}

func NewDefault() *Rewriter {
	return New(DefaultRuleTable())
}

var defaultRewriter = NewDefault()

// Rewrite applies the default rule table to content.
func Rewrite(content string) Result {
	return defaultRewriter.Rewrite(content)
}

// Rewrite migrates every matching statement in content, then runs the raw
// fallback replacements over whatever whole legacy paths remain.
func (r *Rewriter) Rewrite(content string) Result {
	result := Result{Content: content}
	var untouchable []string

	// Matches come from the untouched input; edits are re-applied to the
	// working buffer by exact text so earlier edits cannot shift later ones.
	for _, stmt := range Locate(content) {
		analysis := r.Analyze(stmt)
		// The raw pass must not half-migrate a statement Analyze refused.
		if analysis.Err != nil && strings.HasPrefix(stmt.Path, r.table.Prefix) {
			untouchable = append(untouchable, stmt.Text)
		}
		if analysis.Rule == nil || analysis.Rewritten == analysis.Original {
			continue
		}

		idx := strings.Index(result.Content, analysis.Original)
		if idx < 0 {
			continue
		}
		result.Content = result.Content[:idx] + analysis.Rewritten + result.Content[idx+len(analysis.Original):]
		result.Changes = append(result.Changes, describeStatement(stmt, analysis))
	}

	for _, rep := range r.fallback {
		content, n := replacePaths(result.Content, rep.Legacy, rep.Modern, protectedSpans(result.Content, untouchable))
		if n == 0 {
			continue
		}
		result.Content = content
		result.Changes = append(result.Changes, describeReplacement(rep, n))
	}

	return result
}

// Analyze resolves and applies the rule for one statement. Statements with
// an unparseable named clause come back unchanged with Err set.
func (r *Rewriter) Analyze(stmt Statement) Analysis {
	analysis := Analysis{Original: stmt.Text, Rewritten: stmt.Text}

	var (
		entries                []ImportEntry
		clauseStart, clauseEnd int
	)
	if loc := namedClausePattern.FindStringSubmatchIndex(stmt.Text); loc != nil {
		parsed, names, err := ParseNamedImports(stmt.Text[loc[2]:loc[3]])
		if err != nil {
			analysis.Err = err
			return analysis
		}
		entries = parsed
		clauseStart, clauseEnd = loc[2], loc[3]
		analysis.Specifiers = names
	}

	if stmt.Kind == ImportStatement {
		if name, ok := DefaultImport(stmt.Text); ok {
			analysis.Specifiers = append(analysis.Specifiers, name)
		}
	}

	rule, ok := r.table.Resolve(stmt.Path, analysis.Specifiers)
	if !ok {
		return analysis
	}
	analysis.Rule = rule

	text := stmt.Text
	if at := strings.LastIndex(text, stmt.Path); at >= 0 {
		text = text[:at] + rule.TargetPath + text[at+len(stmt.Path):]
	}

	if entries != nil && len(rule.Renames) > 0 {
		clause, renamed := rebuildClause(entries, rule.Renames)
		text = text[:clauseStart] + clause + text[clauseEnd:]
		analysis.Renamed = renamed
	}

	analysis.Rewritten = text
	return analysis
}

func rebuildClause(entries []ImportEntry, renames map[string]SpecifierRename) (string, []string) {
	var (
		b       strings.Builder
		renamed []string
	)

	for _, entry := range entries {
		rename, ok := renames[entry.Name]
		if entry.Filler || !ok {
			b.WriteString(entry.String())
			continue
		}
		b.WriteString(entry.renamed(rename))

		label := entry.Name + " → " + rename.NewName
		if !slices.Contains(renamed, label) {
			renamed = append(renamed, label)
		}
	}

	return b.String(), renamed
}

func describeStatement(stmt Statement, analysis Analysis) string {
	summary := fmt.Sprintf("%s: %s", stmt.Kind, analysis.Rule.Description)
	if len(analysis.Renamed) > 0 {
		summary += " (" + strings.Join(analysis.Renamed, ", ") + ")"
	}
	return summary
}

func describeReplacement(rep Replacement, n int) string {
	noun := "occurrences"
	if n == 1 {
		noun = "occurrence"
	}
	return fmt.Sprintf("raw: %s (%d %s)", describeRule(rep.Legacy, rep.Modern), n, noun)
}
