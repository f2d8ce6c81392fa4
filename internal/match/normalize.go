package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a flag, key or literal for comparison:
//  1. Leading tag markers ("-", "--", "/") are dropped.
//  2. CamelCase is split into words.
//  3. Words are lowercased and joined without separators.
//
// "--dry-run", "dryRun" and "DRY_RUN" all normalize to "dryrun".
func NormalizeName(s string) string {
	return strings.Join(Words(s), "")
}

// Words splits a name into lowercase words on separators and case changes.
func Words(s string) []string {
	words := splitWords(strings.TrimLeft(s, "-/"))
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return words
}

// splitWords splits on separators and CamelCase boundaries.
// Examples:
//   - "dryRun" -> ["dry", "Run"]
//   - "max-retries" -> ["max", "retries"]
//   - "HTTPPort" -> ["HTTP", "Port"]
//   - "tls.caFile" -> ["tls", "ca", "File"]
func splitWords(s string) []string {
	var (
		words   []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return words
}

func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', ' ', '/':
		return true
	}

	return false
}

// startsWord reports whether a new word begins at runes[i].
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "dryRun": lower to upper.
	if !unicode.IsUpper(prev) {
		return true
	}

	// "HTTPPort": last capital of an acronym followed by lowercase.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
