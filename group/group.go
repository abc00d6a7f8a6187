// Package group implements script-group selection (§4.4.5): narrowing
// the full group list down to the groups compatible with every unique
// codepoint a label's text tokens use, in encounter order.
package group

import (
	"github.com/nameforge/ensnorm/codepoint"
	"github.com/nameforge/ensnorm/nerror"
	"github.com/nameforge/ensnorm/tables"
)

// Select narrows tb.Groups to the ones whose primary-or-secondary union
// contains every successive unique codepoint of chars, in the order
// those codepoints are first seen, and returns the first remaining
// group. An empty chars slice (an emoji-only label never reaches this
// step) returns nil, nil; callers that need a group must not call
// Select with no text codepoints.
func Select(tb *tables.Tables, chars []codepoint.Codepoint) (*tables.Group, error) {
	if len(chars) == 0 {
		return nil, nil
	}
	remaining := make([]*tables.Group, len(tb.Groups))
	copy(remaining, tb.Groups)

	seen := make(map[codepoint.Codepoint]bool, len(chars))
	for _, c := range chars {
		if seen[c] {
			continue
		}
		seen[c] = true

		next := remaining[:0:0]
		for _, g := range remaining {
			if g.Contains(c) {
				next = append(next, g)
			}
		}
		if len(next) == 0 {
			prior := groupNames(remaining)
			containing := groupsContaining(tb.Groups, c)
			return nil, &nerror.IllegalMixture{
				CP:                 rune(c),
				PriorGroups:        prior,
				GroupsContainingCP: containing,
			}
		}
		remaining = next
	}

	if len(remaining) == 0 {
		return nil, nil
	}
	return remaining[0], nil
}

func groupNames(groups []*tables.Group) []string {
	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Name
	}
	return names
}

func groupsContaining(groups []*tables.Group, c codepoint.Codepoint) []string {
	var names []string
	for _, g := range groups {
		if g.Contains(c) {
			names = append(names, g.Name)
		}
	}
	return names
}
