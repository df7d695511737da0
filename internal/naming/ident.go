package naming

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// identPrefix is prepended when a name starts with a digit or a caseless rune.
const identPrefix = "V"

// ExportedIdent converts a declared name into an exported Go identifier.
// Examples:
//   - "Status" -> "Status"
//   - "platform" -> "Platform"
//   - "my_field" -> "MyField"
//   - "in-progress" -> "InProgress"
//   - "2xl" -> "V2xl"
func ExportedIdent(name string) (string, error) {
	tokens := tokenizeCamelCase(name)
	if len(tokens) == 0 {
		return "", fmt.Errorf("name %q has no letters or digits", name)
	}

	var b strings.Builder

	for _, tok := range tokens {
		r, size := utf8.DecodeRuneInString(tok)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(tok[size:])
	}

	ident := b.String()

	first, _ := utf8.DecodeRuneInString(ident)
	if !unicode.IsUpper(first) {
		ident = identPrefix + ident
	}

	if !token.IsIdentifier(ident) || !token.IsExported(ident) {
		return "", fmt.Errorf("name %q does not map to an exported Go identifier (got %q)", name, ident)
	}

	return ident, nil
}

// Join concatenates identifiers into one CamelCase type name, e.g.
// Join("F", "Status", "Values") == "FStatusValues".
func Join(parts ...string) string {
	return strings.Join(parts, "")
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "customerName" -> ["customer", "Name"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "in-progress" -> ["in", "progress"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator reports whether r can not appear inside an identifier.
func isSeparator(r rune) bool {
	return r == '_' || !(unicode.IsLetter(r) || unicode.IsDigit(r))
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "orderID" -> split before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
