package token

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Line    int
	Column  int
}

const (
	// Special tokens
	EOF Type = "EOF" // End of input

	// Scalars
	STRING  Type = "STRING"  // hello, "hello world"
	NUMBER  Type = "NUMBER"  // 42, -3.14
	BOOLEAN Type = "BOOLEAN" // true, false
	NULL    Type = "NULL"    // null, ~

	// Structure
	COLON    Type = ":"
	DASH     Type = "-"
	COMMA    Type = ","
	NEWLINE  Type = "NEWLINE"
	LBRACKET Type = "["
	RBRACKET Type = "]"
	LBRACE   Type = "{"
	RBRACE   Type = "}"

	// Synthesized from indentation changes at the start of a line.
	INDENT Type = "INDENT"
	DEDENT Type = "DEDENT"

	// Reserved for unsupported YAML features; never emitted.
	PIPE   Type = "|"
	FOLD   Type = ">"
	ANCHOR Type = "&"
	ALIAS  Type = "*"
)

// Classify determines the type of an unquoted plain scalar. Every plain
// scalar is exactly one of BOOLEAN, NULL, NUMBER or STRING.
func Classify(lit string) Type {
	switch lit {
	case "true", "false":
		return BOOLEAN
	case "null", "~":
		return NULL
	}
	if isNumber(lit) {
		return NUMBER
	}
	return STRING
}

// isNumber reports whether s consists of an optional leading minus, one or
// more digits, and an optional fractional part with at least one digit.
// Exponents, leading dots and trailing dots all disqualify.
func isNumber(s string) bool {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}

	start := i
	i = consumeDigits(s, i)
	if i == start {
		return false
	}

	if i < len(s) && s[i] == '.' {
		i++
		fracStart := i
		i = consumeDigits(s, i)
		if i == fracStart {
			return false
		}
	}

	return i == len(s)
}

func consumeDigits(s string, i int) int {
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	return i
}
