// Package query is the Query Engine: five position-anchored handlers
// that navigate a cached tree at a cursor and consult the Symbol Index
// and the Reflection Resolver. Every handler is a pure function of
// (cursor, buffer snapshot, index snapshot); a cursor that isn't on a
// recognized construct yields a zero-value "no result", never an error.
package query

import (
	"github.com/robustls/robustls/internal/model"
)

// CompletionItem is one candidate the editor can insert. InsertRange is
// nil for the common case (insert at the cursor's natural word
// boundary); it is set when the candidate must be inserted at a specific
// computed position instead, such as the parent-id flow-sequence case,
// where the insertion point depends on the sequence's last token rather
// than the cursor itself.
type CompletionItem struct {
	Label       string
	InsertText  string
	Score       float64
	InsertRange *model.Range
}

// CompletionList is a capped, possibly-truncated completion response. A
// capped list is always marked Incomplete.
type CompletionList struct {
	Items      []CompletionItem
	Incomplete bool
}

// LocationLink is a go-to-definition/type-definition response: where the
// cursor was (OriginSelection) and where it points (TargetPath,
// TargetRange, TargetSelection).
type LocationLink struct {
	OriginSelection model.Range
	TargetPath      string
	TargetRange     model.Range
	TargetSelection model.Range
}

// Location is a references-response entry.
type Location struct {
	Path  string
	Range model.Range
}

// InlayHint labels a position with a type-name, positioned immediately
// after the field key.
type InlayHint struct {
	Position model.Position
	Label    string
}

const completionCap = 100

func capItems(items []CompletionItem) CompletionList {
	if len(items) > completionCap {
		return CompletionList{Items: items[:completionCap], Incomplete: true}
	}
	return CompletionList{Items: items, Incomplete: false}
}
