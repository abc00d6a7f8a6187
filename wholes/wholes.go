// Package wholes implements the whole-script-confusable check of §4.5:
// rejecting a label whose text could be entirely reconstructed from a
// single other script group's confusable lookalikes.
package wholes

import (
	"golang.org/x/exp/slices"

	"github.com/nameforge/ensnorm/codepoint"
	"github.com/nameforge/ensnorm/nerror"
	"github.com/nameforge/ensnorm/tables"
)

// Check runs the whole-script-confusable algorithm over chars (the
// concatenated codepoints of a label's text tokens) against tb. It
// returns nil when the label is accepted, a *nerror.WholeScriptConfusable
// error otherwise.
//
// The intersection step narrows remaining_groups using the full set of
// groups tied to a confused codepoint's identity (tb.WholeIndex's
// IdentityGroups), not a transitively-reachable "confusable extent"
// subtraction: Extent is retained on WholeIndex purely as richer
// diagnostic context, not as an input to the accept/reject decision
// (see DESIGN.md).
func Check(tb *tables.Tables, chars []codepoint.Codepoint) error {
	idx := tb.WholeIndex
	remaining := allGroupNames(idx)
	seen := make(map[codepoint.Codepoint]bool, len(chars))
	buffer := make([]codepoint.Codepoint, 0, len(chars))
	sawConfused := false

	for _, c := range chars {
		if seen[c] {
			continue
		}
		seen[c] = true

		if idx.Unique[c] {
			return nil
		}

		if idx.IsConfused(c) {
			sawConfused = true
			id := idx.ConfusedIdentity[c]
			remaining = intersect(remaining, idx.IdentityGroups[id])
			if len(remaining) == 0 {
				return nil
			}
			continue
		}

		buffer = append(buffer, c)
	}

	if !sawConfused {
		return nil
	}
	if len(buffer) == 0 {
		return &nerror.WholeScriptConfusable{TargetGroup: anyName(remaining)}
	}
	for _, g := range tb.Groups {
		if !remaining[g.Name] {
			continue
		}
		if groupContainsAll(g, buffer) {
			return &nerror.WholeScriptConfusable{TargetGroup: g.Name}
		}
	}
	return nil
}

func allGroupNames(idx *tables.WholeIndex) map[string]bool {
	names := make(map[string]bool)
	for _, groups := range idx.IdentityGroups {
		for g := range groups {
			names[g] = true
		}
	}
	return names
}

func intersect(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for k := range a {
		if b[k] {
			out[k] = true
		}
	}
	return out
}

// anyName picks the alphabetically-first name out of groups. The target
// group reported to the caller must be deterministic across runs even
// though groups is built from map iteration internally; sorting before
// picking is cheap at this set's size (at most the engine's group count).
func anyName(groups map[string]bool) string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	slices.Sort(names)
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// groupContainsAll reports whether every codepoint in buffer is a member
// (primary or secondary) of g: g's own alphabet could render the whole
// "neither unique nor confused" remainder of the label on its own.
func groupContainsAll(g *tables.Group, buffer []codepoint.Codepoint) bool {
	for _, c := range buffer {
		if !g.Contains(c) {
			return false
		}
	}
	return true
}
