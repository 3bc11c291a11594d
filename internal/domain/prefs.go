package domain

// Definition scope values for DisplayPrefs.Scope.
const (
	ScopeRelevant = "relevant"
	ScopeAll      = "all"
)

// DisplayPrefs are the user-controlled display settings that shape a
// projected entry. ExampleCount limits examples per retained sense,
// independent of Scope.
type DisplayPrefs struct {
	Scope        string
	ExampleCount int
}

// ValidScope reports whether s is a recognized definition scope.
func ValidScope(s string) bool {
	return s == ScopeRelevant || s == ScopeAll
}
