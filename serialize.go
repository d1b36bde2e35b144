package yamlite

import (
	"strconv"
	"strings"

	"github.com/lfdmn/go-yamlite/internal/token"
)

// indentStep is the number of spaces each nesting level adds.
const indentStep = 2

// Serialize renders v as a document that parses back to an equal tree.
// Mapping entries are written in sorted key order, strings are quoted
// whenever the plain form would read back differently, and numbers never
// use exponent notation. Comments and original formatting are not
// preserved; the output is canonical.
func (v *Value) Serialize() string {
	var b strings.Builder
	writeValue(&b, v, 0, false)
	return b.String()
}

// writeValue writes v as block lines at the given indentation, each line
// terminated by a newline. When inline is set the first line's indent is
// suppressed because the caller already wrote a "- " marker there.
func writeValue(b *strings.Builder, v *Value, indent int, inline bool) {
	switch {
	case v.Kind() == KindMapping && v.Len() > 0:
		first := true
		for _, k := range v.Keys() {
			if !first || !inline {
				writeIndent(b, indent)
			}
			first = false
			b.WriteString(quoteIfNeeded(k))
			child := v.mp[k]
			if isLeaf(child) {
				b.WriteString(": ")
				b.WriteString(scalarText(child))
				b.WriteByte('\n')
			} else {
				b.WriteString(":\n")
				writeValue(b, child, indent+indentStep, false)
			}
		}

	case v.Kind() == KindSequence && v.Len() > 0:
		first := true
		for _, el := range v.seq {
			if !first || !inline {
				writeIndent(b, indent)
			}
			first = false
			switch {
			case isLeaf(el):
				b.WriteString("- ")
				b.WriteString(scalarText(el))
				b.WriteByte('\n')
			case inlineAfterDash(el):
				b.WriteString("- ")
				writeValue(b, el, indent+indentStep, true)
			default:
				b.WriteString("-\n")
				writeValue(b, el, indent+indentStep, false)
			}
		}

	default:
		if !inline {
			writeIndent(b, indent)
		}
		b.WriteString(scalarText(v))
		b.WriteByte('\n')
	}
}

func writeIndent(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte(' ')
	}
}

// inlineAfterDash reports whether a composite may share the line of its
// "- " marker. That is only safe when every child renders on one line: a
// block child indents past the marker column before the scanner has
// pushed that column, so a later sibling line dedents to a width the
// indent stack never saw.
func inlineAfterDash(v *Value) bool {
	switch v.Kind() {
	case KindMapping:
		for _, el := range v.mp {
			if !isLeaf(el) {
				return false
			}
		}
		return true
	case KindSequence:
		for _, el := range v.seq {
			if !isLeaf(el) {
				return false
			}
		}
		return true
	}
	return false
}

// isLeaf reports whether v is rendered on a single line: every scalar,
// plus empty collections, which print as [] and {}.
func isLeaf(v *Value) bool {
	switch v.Kind() {
	case KindSequence, KindMapping:
		return v.Len() == 0
	}
	return true
}

func scalarText(v *Value) string {
	switch v.Kind() {
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return quoteIfNeeded(v.str)
	case KindSequence:
		return "[]"
	case KindMapping:
		return "{}"
	}
	return "null"
}

// quoteIfNeeded returns s plain when the scanner would read it back as
// exactly this string, and a double-quoted escaped form otherwise.
func quoteIfNeeded(s string) string {
	if !needsQuotes(s) {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	if token.Classify(s) != token.STRING {
		return true
	}
	if s[0] == ' ' || s[0] == '\t' || s[0] == '"' || s[0] == '\'' {
		return true
	}
	if last := s[len(s)-1]; last == ' ' || last == '\t' {
		return true
	}
	if strings.Contains(s, "- ") || strings.HasSuffix(s, "-") {
		return true
	}
	return strings.ContainsAny(s, ":#[]{},\n\r\t")
}
