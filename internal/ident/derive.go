// Package ident derives valid Swift identifiers from dotted raw symbol names.
package ident

import (
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Derive turns a raw symbol name such as "message.circle.fill" into a
// camel-case identifier ("messageCircleFill"). It is pure and deterministic.
//
// The name is segmented into words per UAX#29 rather than split on
// punctuation, so compound technical terms segment the way a reader expects.
// The first token is lowercased, later tokens are title-cased, and purely
// numeric tokens are prefixed with an underscore so they neither start an
// invalid identifier nor silently merge with the preceding token. Results
// that collide with a reserved word are wrapped in backticks, never respelt.
//
// Distinct raw names are not guaranteed to derive distinct identifiers;
// collision handling is the caller's concern.
func Derive(raw string) string {
	tokens := splitWords(raw)
	if len(tokens) == 0 {
		return ""
	}

	// cases.Caser is stateful, so a fresh one per call keeps Derive pure and
	// safe under per-symbol parallelism.
	title := cases.Title(language.English)

	var b strings.Builder
	for i, tok := range tokens {
		switch {
		case numeric(tok):
			b.WriteString("_")
			b.WriteString(tok)
		case i == 0:
			b.WriteString(strings.ToLower(tok))
		default:
			b.WriteString(title.String(strings.ToLower(tok)))
		}
	}

	id := b.String()
	if r := []rune(id); len(r) > 0 && unicode.IsDigit(r[0]) {
		// A leading non-numeric token can still start with a digit
		// ("4k.rectangle"); the identifier must not.
		id = "_" + id
	}
	if _, reserved := reservedWords[id]; reserved {
		return "`" + id + "`"
	}
	return id
}

// splitWords breaks raw into its alphanumeric word tokens. Dots are the
// structural separators of a symbol name, so segmentation runs per dotted
// segment; within a segment words follow UAX#29 (a bare dot between letters
// would otherwise be word-internal, as in "e.g.").
func splitWords(raw string) []string {
	var tokens []string
	for _, segment := range strings.Split(raw, ".") {
		iter := words.FromString(segment)
		for iter.Next() {
			tok := iter.Value()
			if alphanumeric(tok) {
				tokens = append(tokens, tok)
			}
		}
	}
	return tokens
}

func alphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func numeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
