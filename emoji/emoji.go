// Package emoji implements the longest-match emoji sequence matcher of
// §4.2: a trie over FE0F-stripped keys that lets every FE0F in a
// candidate sequence be optionally present in the input. FE0F is
// stripped from both sides before comparing, so an FE0F in the input
// after the first matched codepoint is skipped whether or not the
// sequence's fully-qualified form has one there.
package emoji

import (
	"github.com/nameforge/ensnorm/codepoint"
	"github.com/nameforge/ensnorm/tables"
)

const fe0f = codepoint.Codepoint(0xFE0F)

type node struct {
	children map[codepoint.Codepoint]*node
	// terminal is non-nil at a node that terminates a registered
	// no-FE0F key; it holds both emission forms for that sequence.
	terminal *tables.EmojiSequence
}

func newNode() *node {
	return &node{children: map[codepoint.Codepoint]*node{}}
}

// Trie is an immutable, concurrency-safe index of emoji sequences keyed
// by their FE0F-stripped codepoints, supporting the matcher's
// longest-match lookup in time proportional to the matched prefix.
type Trie struct {
	root *node
}

// Build constructs a Trie from the reference emoji sequence set. Each
// entry's NoFE0F codepoints become the trie path; the entry itself is
// stored at the terminal node so a match can report both emission forms.
func Build(sequences []tables.EmojiSequence) *Trie {
	root := newNode()
	for _, seq := range sequences {
		n := root
		for _, c := range seq.NoFE0F {
			child, ok := n.children[c]
			if !ok {
				child = newNode()
				n.children[c] = child
			}
			n = child
		}
		n.terminal = &seq
	}
	return &Trie{root: root}
}

// Match is the result of a successful TryMatch: the matched sequence in
// both emission forms and how many codepoints of the input it consumed
// (which may be one more than len(NoFE0F) per optional FE0F present in
// the input).
type Match struct {
	NoFE0F         []codepoint.Codepoint
	FullyQualified []codepoint.Codepoint
	Consumed       int
}

// TryMatch attempts the longest match starting at input[pos:]. FE0F is
// optional at every step along the trie path: if the current input
// codepoint isn't the next expected no-FE0F codepoint but is an FE0F
// after the start position, it is skipped in the key walk, whatever the
// emoji's fully-qualified form has at that point. A skipped FE0F counts
// toward Consumed only when a longer match completes after it.
//
// This implements §4.2's "strip FE0F from both sides before comparing"
// reading rather than its equivalent "no extra FE0F" phrasing literally.
// A run of two or more consecutive FE0F mid-sequence is still accepted
// as long as the next non-FE0F codepoint continues the walk: stripping
// all FE0F before matching can't distinguish one skipped FE0F from
// several. A leading FE0F can never start a match; it is never itself
// an expected first codepoint of any registered sequence.
//
// Distinct emoji have distinct no-FE0F keys by construction, so there is
// never a tie between two complete matches at the same trie node: the
// longest complete match along the walked path wins.
func (t *Trie) TryMatch(input []codepoint.Codepoint, pos int) (Match, bool) {
	n := t.root
	i := pos
	var best Match
	found := false

	for i < len(input) {
		c := input[i]
		if child, ok := n.children[c]; ok {
			n = child
			i++
			if n.terminal != nil {
				best = Match{
					NoFE0F:         n.terminal.NoFE0F,
					FullyQualified: n.terminal.FullyQualified,
					Consumed:       i - pos,
				}
				found = true
			}
			continue
		}
		if c == fe0f {
			// An FE0F not required by the trie path so far can never
			// start a match; only break out if we haven't moved at all.
			if i == pos {
				break
			}
			// Optional FE0F mid-sequence: treat it as transparent and
			// keep walking from the same trie node.
			i++
			continue
		}
		break
	}

	if !found {
		return Match{}, false
	}
	return best, true
}
