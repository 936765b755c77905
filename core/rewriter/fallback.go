package rewriter

import (
	"sort"
	"strings"
)

// span is a half-open byte range of the working buffer the raw pass must
// not touch.
type span struct {
	start, end int
}

func isWordByte(c byte) bool {
	return c == '_' || c == '$' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func isPathByte(c byte) bool {
	return isWordByte(c) || c == '.' || c == '/' || c == '-'
}

// endsPath reports whether a legacy string ending at i is a whole path and
// not the prefix of a longer one (`Address/AddressCopyIcon`, `Balance/utils`).
// A dot counts as sentence punctuation unless a word character follows it.
func endsPath(content string, i int) bool {
	if i >= len(content) || !isPathByte(content[i]) {
		return true
	}
	if content[i] == '.' {
		return i+1 >= len(content) || !isWordByte(content[i+1])
	}
	return false
}

// replacePaths replaces whole-path occurrences of legacy outside the
// protected spans and returns the new text with the number of replacements.
func replacePaths(content, legacy, modern string, protected []span) (string, int) {
	if legacy == "" {
		return content, 0
	}

	var (
		b    strings.Builder
		n    int
		last int
	)
	for from := 0; from < len(content); {
		i := strings.Index(content[from:], legacy)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(legacy)
		from = start + 1

		if !endsPath(content, end) || inSpans(protected, start) {
			continue
		}

		b.WriteString(content[last:start])
		b.WriteString(modern)
		last = end
		from = end
		n++
	}
	if n == 0 {
		return content, 0
	}

	b.WriteString(content[last:])
	return b.String(), n
}

func inSpans(spans []span, pos int) bool {
	for _, s := range spans {
		if pos >= s.start && pos < s.end {
			return true
		}
	}
	return false
}

// protectedSpans locates every occurrence of the given statement texts in
// content, sorted by start.
func protectedSpans(content string, texts []string) []span {
	var spans []span
	for _, text := range texts {
		if text == "" {
			continue
		}
		for from := 0; ; {
			i := strings.Index(content[from:], text)
			if i < 0 {
				break
			}
			start := from + i
			spans = append(spans, span{start: start, end: start + len(text)})
			from = start + len(text)
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	return spans
}
