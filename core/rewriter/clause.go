package rewriter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var ErrUnparseableClause = errors.New("unparseable named-import clause")

var (
	namedClausePattern = regexp.MustCompile(`\{([^}]*)\}`)
	typeMarkerPattern  = regexp.MustCompile(`^type\s+`)
	aliasPattern       = regexp.MustCompile(`^(\S+)(\s+as\s+)(\S+)$`)
	bareAliasPattern   = regexp.MustCompile(`^as\s+\S+$`)
	identPattern       = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)

	whitespacePattern    = regexp.MustCompile(`\s+`)
	defaultImportPattern = regexp.MustCompile(`^import\s+([A-Za-z_$][\w$]*)(?:\s*,|\s+from\b)`)
)

// ImportEntry is one comma-separated slot of a `{ ... }` clause. Filler
// entries hold only whitespace (or nothing) and are emitted as Raw.
type ImportEntry struct {
	Raw    string
	Filler bool

	Leading    string
	IsType     bool
	TypeMarker string
	Name       string
	AsInfix    string
	Alias      string
	Trailing   string
	Comma      string
}

func (e ImportEntry) String() string {
	return e.Raw
}

// renamed renders the entry with its imported name replaced. An explicit
// alias always wins over the rename's KeepAlias.
func (e ImportEntry) renamed(r SpecifierRename) string {
	var b strings.Builder
	b.WriteString(e.Leading)
	b.WriteString(e.TypeMarker)
	b.WriteString(r.NewName)
	switch {
	case e.Alias != "":
		b.WriteString(e.AsInfix)
		b.WriteString(e.Alias)
	case r.KeepAlias && r.NewName != e.Name:
		b.WriteString(" as ")
		b.WriteString(e.Name)
	}
	b.WriteString(e.Trailing)
	b.WriteString(e.Comma)
	return b.String()
}

// ParseNamedImports splits the inside of a `{ ... }` clause into entries,
// returning them along with the imported names in order.
func ParseNamedImports(clause string) ([]ImportEntry, []string, error) {
	var (
		entries []ImportEntry
		names   []string
	)

	for _, part := range strings.SplitAfter(clause, ",") {
		entry, err := parseEntry(part)
		if err != nil {
			return nil, nil, err
		}
		entries = append(entries, entry)
		if !entry.Filler {
			names = append(names, entry.Name)
		}
	}

	return entries, names, nil
}

func parseEntry(part string) (ImportEntry, error) {
	entry := ImportEntry{Raw: part}

	body := part
	if strings.HasSuffix(body, ",") {
		entry.Comma = ","
		body = body[:len(body)-1]
	}

	core := strings.TrimSpace(body)
	if core == "" {
		entry.Filler = true
		return entry, nil
	}

	entry.Leading = body[:len(body)-len(strings.TrimLeftFunc(body, unicode.IsSpace))]
	entry.Trailing = body[len(strings.TrimRightFunc(body, unicode.IsSpace)):]

	// `type as t` imports a binding called type; it is not a marker.
	if marker := typeMarkerPattern.FindString(core); marker != "" && !bareAliasPattern.MatchString(core[len(marker):]) {
		entry.IsType = true
		entry.TypeMarker = marker
		core = core[len(marker):]
	}

	if m := aliasPattern.FindStringSubmatch(core); m != nil {
		entry.Name, entry.AsInfix, entry.Alias = m[1], m[2], m[3]
	} else {
		entry.Name = core
	}

	if !identPattern.MatchString(entry.Name) || (entry.Alias != "" && !identPattern.MatchString(entry.Alias)) {
		return ImportEntry{}, fmt.Errorf("%w: %q", ErrUnparseableClause, strings.TrimSpace(body))
	}

	return entry, nil
}

// DefaultImport reports the default binding of an import statement, if any.
func DefaultImport(statement string) (string, bool) {
	normalized := strings.TrimSpace(whitespacePattern.ReplaceAllString(statement, " "))

	m := defaultImportPattern.FindStringSubmatch(normalized)
	if m == nil || m[1] == "type" {
		return "", false
	}
	return m[1], true
}
