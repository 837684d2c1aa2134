package session

import (
	"github.com/pmezard/go-difflib/difflib"
)

// generateUnifiedDiff renders a unified diff between want and got, for use
// in test failure messages, the same way the teacher's own test suite
// reports a golden-output mismatch.
func generateUnifiedDiff(want, got string) (string, error) {
	diffl := difflib.UnifiedDiff{
		A:        difflib.SplitLines(got),
		B:        difflib.SplitLines(want),
		FromFile: "got",
		ToFile:   "want",
		Context:  3,
		Eol:      "\n",
	}
	return difflib.GetUnifiedDiffString(diffl)
}
