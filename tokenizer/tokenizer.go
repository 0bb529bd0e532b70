// Package tokenizer splits raw text into word, whitespace, and
// punctuation tokens.
package tokenizer

import (
	"regexp"
	"unicode"
)

// tokenPattern matches a maximal run of word characters, a single
// whitespace character, or a single other character. Every input byte
// lands in exactly one token, so joining the tokens reproduces the text.
var tokenPattern = regexp.MustCompile(`\w+|\s|[^\w\s]`)

// Split tokenizes text. Nothing is dropped at this stage; each
// whitespace and punctuation character becomes its own token.
func Split(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// IsWord reports whether a token produced by Split is a word token
// rather than whitespace or punctuation. The first rune decides.
func IsWord(tok string) bool {
	for _, r := range tok {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	}
	return false
}
