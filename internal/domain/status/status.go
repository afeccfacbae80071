// Package status defines the outcome taxonomy for candidate pipeline states.
package status

// Hired is the single status value that counts as a hire.
const Hired = "hired"

// Outcome is one of the three mutually-exclusive terminal classifications
// a candidate can reach inside a reporting window, or None when the
// candidate's status is not terminal.
type Outcome int

// Outcome values.
const (
	None Outcome = iota
	OutcomeHired
	BackedOut
	NotSelected
)

// Status sets are matched exactly and case-sensitively.
var backedOutSet = map[string]struct{}{
	"backed-out":                          {},
	"backed-out-not-attended-interview":   {},
	"joined-and-left":                     {},
	"appointed-not-joined":                {},
}

var notSelectedSet = map[string]struct{}{
	"attended-interview-not-selected": {},
}

// Classify maps a raw status string onto an Outcome. Statuses outside the
// three terminal sets classify as None; those candidates count toward
// candidatesAdded only.
func Classify(s string) Outcome {
	if s == Hired {
		return OutcomeHired
	}
	if _, ok := backedOutSet[s]; ok {
		return BackedOut
	}
	if _, ok := notSelectedSet[s]; ok {
		return NotSelected
	}
	return None
}

// Terminal reports whether s is in any of the three outcome sets.
func Terminal(s string) bool {
	return Classify(s) != None
}

// TerminalStatuses returns every status value that classifies as an outcome,
// in a stable order suitable for status-in-set store predicates.
func TerminalStatuses() []string {
	out := make([]string, 0, len(backedOutSet)+len(notSelectedSet)+1)
	out = append(out, Hired)
	out = append(out,
		"backed-out",
		"backed-out-not-attended-interview",
		"joined-and-left",
		"appointed-not-joined",
	)
	out = append(out, "attended-interview-not-selected")
	return out
}
