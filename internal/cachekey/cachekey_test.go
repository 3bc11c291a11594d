package cachekey

import (
	"strings"
	"testing"

	"github.com/wordpeek/wordpeek-backend/internal/domain"
)

func TestLookup_Deterministic(t *testing.T) {
	t.Parallel()

	prefs := domain.DisplayPrefs{Scope: domain.ScopeRelevant, ExampleCount: 1}

	a := Lookup("cambridge", "run", prefs, "none")
	b := Lookup("cambridge", "run", prefs, "none")
	if a != b {
		t.Fatalf("identical inputs produced different keys: %q vs %q", a, b)
	}
	if a != "lookup::cambridge::run::relevant::1::none" {
		t.Errorf("key = %q", a)
	}
}

func TestLookup_TermLowercased(t *testing.T) {
	t.Parallel()

	prefs := domain.DisplayPrefs{Scope: domain.ScopeAll, ExampleCount: 2}
	if Lookup("gemini", "Run", prefs, "de") != Lookup("gemini", "run", prefs, "de") {
		t.Error("term casing must not affect the key")
	}
}

func TestLookup_EveryFieldChangesKey(t *testing.T) {
	t.Parallel()

	base := Lookup("cambridge", "run", domain.DisplayPrefs{Scope: "relevant", ExampleCount: 1}, "none")

	variants := map[string]string{
		"provider": Lookup("gemini", "run", domain.DisplayPrefs{Scope: "relevant", ExampleCount: 1}, "none"),
		"term":     Lookup("cambridge", "walk", domain.DisplayPrefs{Scope: "relevant", ExampleCount: 1}, "none"),
		"scope":    Lookup("cambridge", "run", domain.DisplayPrefs{Scope: "all", ExampleCount: 1}, "none"),
		"count":    Lookup("cambridge", "run", domain.DisplayPrefs{Scope: "relevant", ExampleCount: 2}, "none"),
		"language": Lookup("cambridge", "run", domain.DisplayPrefs{Scope: "relevant", ExampleCount: 1}, "de"),
	}
	for field, key := range variants {
		if key == base {
			t.Errorf("changing %s did not change the key", field)
		}
	}
}

func TestLookup_AbsentLanguageNormalized(t *testing.T) {
	t.Parallel()

	prefs := domain.DisplayPrefs{Scope: "relevant", ExampleCount: 1}
	if Lookup("cambridge", "run", prefs, "") != Lookup("cambridge", "run", prefs, "none") {
		t.Error("absent language must key identically to \"none\"")
	}
}

func TestLookup_DelimiterInTermStaysDeterministic(t *testing.T) {
	t.Parallel()

	prefs := domain.DisplayPrefs{Scope: "relevant", ExampleCount: 1}
	a := Lookup("cambridge", "a::b", prefs, "none")
	b := Lookup("cambridge", "a::b", prefs, "none")
	if a != b {
		t.Error("degenerate key must still be deterministic")
	}
}

func TestTranslation_Encoding(t *testing.T) {
	t.Parallel()

	key := Translation("don't stop! (please)", "fr")

	if strings.ContainsAny(key, "!'()* ") {
		t.Errorf("key %q leaks unescaped characters", key)
	}
	if !strings.HasSuffix(key, "::fr") {
		t.Errorf("key %q must end with the language tag", key)
	}
	if key != Translation("don't stop! (please)", "fr") {
		t.Error("identical inputs produced different keys")
	}
	if key == Translation("don't stop! (please)", "de") {
		t.Error("language change must change the key")
	}
	if key == Translation("don't stop (please)", "fr") {
		t.Error("sentence change must change the key")
	}
}

func TestTranslation_SpaceEncodedAsPercent20(t *testing.T) {
	t.Parallel()

	key := Translation("a b", "fr")
	if key != "translate::a%20b::fr" {
		t.Errorf("key = %q", key)
	}
}
