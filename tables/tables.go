// Package tables defines the shape of the engine's embedded reference
// data: the mapped/ignored/valid classification tables, script groups,
// the emoji sequence set, the fenced and NSM sets, the whole-confusable
// map, and the NFC decomposition/composition data. Per the engine's
// design, this data is produced by an external derivation pipeline (see
// gen.go) and is treated here as immutable constants, loaded once and
// never mutated after Default() returns.
package tables

import "github.com/nameforge/ensnorm/codepoint"

// CharClass is the character class a codepoint belongs to outside of an
// active emoji match. Every codepoint belongs to exactly one class.
type CharClass uint8

const (
	// Valid codepoints pass through the tokenizer unchanged.
	Valid CharClass = iota
	// Mapped codepoints are replaced by their table entry's sequence.
	Mapped
	// Ignored codepoints are dropped.
	Ignored
	// Disallowed codepoints fail the label outright.
	Disallowed
	// EmojiComponent codepoints (ZWJ, skin tones, tag characters, the
	// keycap enclosing mark) are legal only inside a matched emoji
	// sequence. A bare FE0F is Ignored, not EmojiComponent.
	EmojiComponent
)

func (c CharClass) String() string {
	switch c {
	case Valid:
		return "Valid"
	case Mapped:
		return "Mapped"
	case Ignored:
		return "Ignored"
	case Disallowed:
		return "Disallowed"
	case EmojiComponent:
		return "EmojiComponent"
	default:
		return "Unknown"
	}
}

// Group is a named ENSIP-15 script group.
type Group struct {
	// Name is the label type reported on success, e.g. "Latn", "Grek",
	// "Egyp". Beautify's ξ/Ξ rule compares it against the literal "Greek".
	Name string

	// Restricted groups report their label type as Restricted[Name].
	Restricted bool

	// Primary is the set of codepoints that define membership: the
	// group's own letters.
	Primary map[codepoint.Codepoint]bool

	// Secondary is the set of additional codepoints the group accepts
	// (e.g. combining marks shared across related groups, ASCII digits
	// shared across many groups). Script-group selection and Contains
	// treat Primary and Secondary alike: a codepoint in either keeps the
	// group in the candidate set.
	Secondary map[codepoint.Codepoint]bool

	// CMWhitelist holds explicit base+mark sequences this group accepts
	// even though it otherwise bans combining marks. Keyed by the
	// sequence rendered as a string for equality; ENSIP-15 ships zero
	// entries for every group today (see DESIGN.md open question), but
	// the mechanism is exposed so a derivation refresh can populate it
	// without an engine change.
	CMWhitelist map[string][]codepoint.Codepoint

	// CheckNSM indicates the group is subject to the NSM duplicate/run
	// length check (§4.4.6). Every group with CMWhitelist empty and
	// combining marks theoretically reachable via Secondary should set
	// this; groups with no combining marks in their union may leave it
	// false as a declared no-op.
	CheckNSM bool
}

// Contains reports whether cp is a member of the group (primary or
// secondary).
func (g *Group) Contains(cp codepoint.Codepoint) bool {
	if g.Primary[cp] {
		return true
	}
	return g.Secondary[cp]
}

// WhitelistsSequence reports whether the exact codepoint sequence seq is
// one of the group's enumerated CM-whitelist exceptions.
func (g *Group) WhitelistsSequence(seq []codepoint.Codepoint) bool {
	if len(g.CMWhitelist) == 0 {
		return false
	}
	_, ok := g.CMWhitelist[codepoint.Encode(seq)]
	return ok
}

// EmojiSequence is one fully-qualified emoji sequence from the reference
// set, plus its FE0F-stripped lookup key.
type EmojiSequence struct {
	FullyQualified []codepoint.Codepoint
	NoFE0F         []codepoint.Codepoint
}

// Key renders the FE0F-stripped form as a comparable string, used both
// as the trie's terminal key and as a map key during table construction.
func (e EmojiSequence) Key() string {
	return codepoint.Encode(e.NoFE0F)
}

// ConfusableMember is one codepoint belonging to a whole-confusable
// identity, annotated with the groups it is a member of.
type ConfusableMember struct {
	CP     codepoint.Codepoint
	Groups []string
}

// Confusable is a set of codepoints, drawn from different groups, that a
// renderer could mistake for one another (ENSIP-15's "confusable"
// relation). ID is an opaque shared identity, stable only within one
// Tables instance.
type Confusable struct {
	ID      string
	Members []ConfusableMember
}

// NFCData is the data UAX #15 normalization needs: canonical
// decomposition, the composition-exclusion set, the combining-class
// map, and a quick-check set used as a fast path by the nfc package.
type NFCData struct {
	// Decompose maps a composed codepoint to its one-level canonical
	// decomposition. Recursive application (until no entry applies) is
	// the nfc package's job, not the table's.
	Decompose map[codepoint.Codepoint][]codepoint.Codepoint

	// Exclusions lists codepoints that must never be re-composed to,
	// even though a decomposition maps to them (UAX #15's composition
	// exclusion table).
	Exclusions map[codepoint.Codepoint]bool

	// CombiningClass maps a codepoint to its canonical combining class
	// (1..255); codepoints absent from this map have class 0.
	CombiningClass map[codepoint.Codepoint]uint8

	// QuickCheckNFC contains every codepoint for which the NFC
	// quick-check is "maybe" or "no". Its presence in a buffer means the
	// fast path (assume already NFC) cannot be taken.
	QuickCheckNFC map[codepoint.Codepoint]bool
}

func (n *NFCData) CombiningClassOf(cp codepoint.Codepoint) uint8 {
	return n.CombiningClass[cp]
}

// Tables is the full embedded data contract consumed by the engine.
type Tables struct {
	Mapped  map[codepoint.Codepoint][]codepoint.Codepoint
	Ignored map[codepoint.Codepoint]bool

	// ValidUnion is the union of every group's Primary ∪ Secondary,
	// extended to include the NFD-decomposition outputs of the same
	// (invariant 3 of the data model).
	ValidUnion map[codepoint.Codepoint]bool

	Groups []*Group

	EmojiSequences []EmojiSequence

	Fenced map[codepoint.Codepoint]bool

	// EmojiComponents holds codepoints that are legal only as part of a
	// matched emoji sequence (ZWJ, skin-tone modifiers, tag characters,
	// the keycap enclosing combining mark) and must classify as
	// Disallowed, not Ignored, when they appear outside one. FE0F is
	// deliberately excluded from this set: a stray FE0F classifies as
	// Ignored via the Ignored table instead (see DESIGN.md).
	EmojiComponents map[codepoint.Codepoint]bool

	NSM    map[codepoint.Codepoint]bool
	NSMMax int

	Confusables []Confusable

	NFC NFCData

	// Escape is a display-layer hint (codepoints a front-end should
	// render escaped, e.g. control-adjacent marks); it never affects
	// acceptance.
	Escape map[codepoint.Codepoint]bool

	// WholeIndex is precomputed once from Confusables and Groups by
	// Build(); the wholes package only ever reads it.
	WholeIndex *WholeIndex
}

// WholeIndex is the precomputed index the whole-script-confusable
// algorithm (§4.5) runs against. Precomputing this at table-build time
// (rather than per call) keeps the per-label check linear in the
// label's own length.
type WholeIndex struct {
	// Unique holds codepoints that belong to exactly one group and are
	// not a member of any confusable.
	Unique map[codepoint.Codepoint]bool

	// ConfusedIdentity maps a confused codepoint to its Confusable.ID.
	ConfusedIdentity map[codepoint.Codepoint]string

	// Extent maps a confused codepoint to the full set of group names
	// transitively reachable from it via the confusable graph.
	Extent map[codepoint.Codepoint]map[string]bool

	// IdentityGroups maps a confusable identity to the set of group
	// names holding any member of that identity.
	IdentityGroups map[string]map[string]bool
}

// IsConfused reports whether cp participates in any whole-confusable
// identity.
func (w *WholeIndex) IsConfused(cp codepoint.Codepoint) bool {
	_, ok := w.ConfusedIdentity[cp]
	return ok
}

// Build derives WholeIndex from t.Confusables and t.Groups and assigns
// it to t.WholeIndex. It must be called once after the raw fields are
// populated and before the tables are published to callers; Default()
// calls it automatically.
func (t *Tables) Build() {
	idx := &WholeIndex{
		Unique:           make(map[codepoint.Codepoint]bool),
		ConfusedIdentity: make(map[codepoint.Codepoint]string),
		Extent:           make(map[codepoint.Codepoint]map[string]bool),
		IdentityGroups:   make(map[string]map[string]bool),
	}

	// memberGroups tracks, for every confused codepoint, the groups it
	// belongs to per its own annotation (not the whole identity).
	memberGroups := make(map[codepoint.Codepoint][]string)

	for _, c := range t.Confusables {
		groupsOfIdentity := make(map[string]bool)
		for _, m := range c.Members {
			idx.ConfusedIdentity[m.CP] = c.ID
			memberGroups[m.CP] = m.Groups
			for _, g := range m.Groups {
				groupsOfIdentity[g] = true
			}
		}
		idx.IdentityGroups[c.ID] = groupsOfIdentity
	}

	// Extent: the fully-connected subset of groups tied to c via other
	// confusables. Two confusables are linked if they share a group.
	// We compute this as a fixed point over confusable identities: a
	// BFS over the bipartite (identity <-> group) graph starting from
	// c's own identity.
	identityOfGroup := make(map[string][]string) // group -> identities touching it
	for id, groups := range idx.IdentityGroups {
		for g := range groups {
			identityOfGroup[g] = append(identityOfGroup[g], id)
		}
	}

	extentCache := make(map[string]map[string]bool) // identity ID -> reachable groups
	var reachableGroups func(startID string) map[string]bool
	reachableGroups = func(startID string) map[string]bool {
		if cached, ok := extentCache[startID]; ok {
			return cached
		}
		visitedIdentities := map[string]bool{startID: true}
		groups := make(map[string]bool)
		queue := []string{startID}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			for g := range idx.IdentityGroups[id] {
				if groups[g] {
					continue
				}
				groups[g] = true
				for _, nextID := range identityOfGroup[g] {
					if !visitedIdentities[nextID] {
						visitedIdentities[nextID] = true
						queue = append(queue, nextID)
					}
				}
			}
		}
		extentCache[startID] = groups
		return groups
	}

	for cp, id := range idx.ConfusedIdentity {
		idx.Extent[cp] = reachableGroups(id)
	}

	// Unique: codepoints in exactly one group's union, and not confused.
	membership := make(map[codepoint.Codepoint]int)
	for _, g := range t.Groups {
		seen := make(map[codepoint.Codepoint]bool)
		for cp := range g.Primary {
			seen[cp] = true
		}
		for cp := range g.Secondary {
			seen[cp] = true
		}
		for cp := range seen {
			membership[cp]++
		}
	}
	for cp, count := range membership {
		if count == 1 && !idx.IsConfused(cp) {
			idx.Unique[cp] = true
		}
	}

	t.WholeIndex = idx
}
