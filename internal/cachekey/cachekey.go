// Package cachekey derives deterministic cache keys from a lookup term (or
// sentence) and every preference field that shapes the cached artifact.
// Both derivations are pure: identical inputs always produce identical
// keys, and any difference in an input field changes the key.
package cachekey

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/wordpeek/wordpeek-backend/internal/domain"
)

const delimiter = "::"

// Lookup derives the key for a lexical lookup artifact. Provider identity
// is part of the key because the same term produces different entries from
// different providers. The term is lowercased but not escaped: a term
// containing the delimiter yields a degenerate yet still deterministic key.
func Lookup(providerID, term string, prefs domain.DisplayPrefs, targetLang string) string {
	if targetLang == "" {
		targetLang = "none"
	}
	return strings.Join([]string{
		"lookup",
		providerID,
		strings.ToLower(term),
		prefs.Scope,
		strconv.Itoa(prefs.ExampleCount),
		targetLang,
	}, delimiter)
}

// Translation derives the key for a sentence-translation artifact. The
// sentence is percent-encoded so keys stay collision-free regardless of
// its content.
func Translation(sentence, targetLang string) string {
	return strings.Join([]string{
		"translate",
		encodeSentence(sentence),
		targetLang,
	}, delimiter)
}

// encodeSentence percent-encodes the sentence. url.QueryEscape already
// escapes the characters ! ' ( ) * that looser encoders leave bare; only
// its space-as-plus convention needs correcting.
func encodeSentence(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
