package index

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DescribeDiff renders a unified diff between the identity strings present
// before and after a ReplaceFromOrigin call, for a debug-level log line
// on save. This is purely diagnostic: the replace itself is already
// atomic by the time this runs.
func DescribeDiff(path string, before, after []string) string {
	diff := difflib.UnifiedDiff{
		A:        before,
		B:        after,
		FromFile: path + " (before)",
		ToFile:   path + " (after)",
		Context:  0,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}
	return strings.TrimRight(text, "\n")
}
