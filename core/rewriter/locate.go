package rewriter

import "regexp"

type StatementKind int

const (
	ImportStatement StatementKind = iota
	ExportStatement
)

func (k StatementKind) String() string {
	switch k {
	case ImportStatement:
		return "import"
	case ExportStatement:
		return "export"
	default:
		return "unknown"
	}
}

// Statement is one `import ... from "path"` or `export ... from "path"`
// occurrence. Clause is the text between the keyword and `from`.
type Statement struct {
	Kind   StatementKind
	Text   string
	Clause string
	Path   string
}

// The clause body excludes quotes and semicolons so a side-effect import
// (`import "x";`) is never glued onto the statement that follows it.
var (
	importPattern = regexp.MustCompile(`\bimport\b([^;'"]*?)\bfrom\s*['"]([^'"\r\n]+)['"];?`)
	exportPattern = regexp.MustCompile(`\bexport\b([^;'"]*?)\bfrom\s*['"]([^'"\r\n]+)['"];?`)

	importKeyword = regexp.MustCompile(`\bimport\b`)
	exportKeyword = regexp.MustCompile(`\bexport\b`)
)

// Locate returns every import statement in source order followed by every
// export-from statement in source order.
func Locate(content string) []Statement {
	statements := locate(content, ImportStatement, importPattern, importKeyword)
	return append(statements, locate(content, ExportStatement, exportPattern, exportKeyword)...)
}

func locate(content string, kind StatementKind, pattern, keyword *regexp.Regexp) []Statement {
	var statements []Statement

	for _, m := range pattern.FindAllStringSubmatchIndex(content, -1) {
		start, end := m[0], m[1]
		clauseStart, clauseEnd := m[2], m[3]

		// A keyword inside the clause means the match began on a stray word
		// (usually in a comment); the real statement starts at the last one.
		if hits := keyword.FindAllStringIndex(content[clauseStart:clauseEnd], -1); len(hits) > 0 {
			last := hits[len(hits)-1]
			start = clauseStart + last[0]
			clauseStart += last[1]
		}

		statements = append(statements, Statement{
			Kind:   kind,
			Text:   content[start:end],
			Clause: content[clauseStart:clauseEnd],
			Path:   content[m[4]:m[5]],
		})
	}

	return statements
}
