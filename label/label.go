// Package label implements the label validator of §4.4: given a
// non-empty token stream, it picks a label type (Emoji, ASCII, a named
// script group, or Restricted[group]) by applying the ASCII / Emoji /
// Unicode rules in order, wiring the group and wholes packages for the
// Unicode branch.
package label

import (
	"regexp"

	"github.com/nameforge/ensnorm/codepoint"
	"github.com/nameforge/ensnorm/group"
	"github.com/nameforge/ensnorm/nerror"
	"github.com/nameforge/ensnorm/nfc"
	"github.com/nameforge/ensnorm/tables"
	"github.com/nameforge/ensnorm/token"
	"github.com/nameforge/ensnorm/wholes"
)

// Type is the classification a validated label carries. ASCII and Emoji
// are reported as-is; any other group name is either the group's own
// name or "Restricted[<name>]" for restricted groups.
type Type string

const (
	TypeASCII Type = "ASCII"
	TypeEmoji Type = "Emoji"
)

// Restricted reports whether t is a "Restricted[<group>]" label type.
func (t Type) Restricted() bool {
	return len(t) > len("Restricted[]") && string(t)[:len("Restricted[")] == "Restricted["
}

// GroupName returns the bare script-group name for a script-group label
// type, stripping the "Restricted[...]" wrapper if present. For
// TypeASCII/TypeEmoji it returns the type itself ("ASCII"/"Emoji").
func (t Type) GroupName() string {
	if t.Restricted() {
		return string(t)[len("Restricted[") : len(t)-1]
	}
	return string(t)
}

var (
	underscorePrefix = regexp.MustCompile(`^_*[^_]*$`)
	hyphen34         = regexp.MustCompile(`^..--`)
)

// Result is a validated label: its type and the codepoints each token
// will be emitted as (the no-FE0F form for Emoji tokens; the caller
// decides at emission time whether to substitute the fully-qualified
// form for beautify).
type Result struct {
	Type   Type
	Tokens []token.Token
}

// Validator applies §4.4's rules to a token stream produced by
// token.Tokenizer, reusing one Tables/NFC engine across every label of a
// name.
type Validator struct {
	data   *tables.Tables
	nfceng *nfc.Engine
}

// New builds a Validator bound to data.
func New(data *tables.Tables) *Validator {
	return &Validator{data: data, nfceng: nfc.New(&data.NFC)}
}

// Validate classifies toks per §4.4's rule order: emoji-only, then
// single-Text-all-ASCII, then the full Unicode label path.
func (v *Validator) Validate(toks []token.Token) (*Result, error) {
	if allEmoji(toks) {
		return &Result{Type: TypeEmoji, Tokens: toks}, nil
	}

	if text, ok := singleASCIIText(toks); ok {
		if err := validateASCII(text.CPs); err != nil {
			return nil, err
		}
		return &Result{Type: TypeASCII, Tokens: toks}, nil
	}

	return v.validateUnicode(toks)
}

func allEmoji(toks []token.Token) bool {
	for _, tk := range toks {
		if tk.Kind() != token.KindEmoji {
			return false
		}
	}
	return true
}

// singleASCIIText reports whether toks is exactly one Text token whose
// codepoints are all in 0x00..0x7F.
func singleASCIIText(toks []token.Token) (token.Text, bool) {
	if len(toks) != 1 {
		return token.Text{}, false
	}
	text, ok := toks[0].(token.Text)
	if !ok {
		return token.Text{}, false
	}
	for _, c := range text.CPs {
		if c > 0x7F {
			return token.Text{}, false
		}
	}
	return text, true
}

func validateASCII(cps []codepoint.Codepoint) error {
	if err := checkUnderscorePlacement(cps); err != nil {
		return err
	}
	if hyphen34.MatchString(codepoint.Encode(cps)) {
		return &nerror.HyphenAtPositions34{}
	}
	return nil
}

func firstMisplacedUnderscore(cps []codepoint.Codepoint) int {
	seenNonUnderscore := false
	for i, c := range cps {
		if c == '_' {
			if seenNonUnderscore {
				return i
			}
			continue
		}
		seenNonUnderscore = true
	}
	return -1
}

func (v *Validator) validateUnicode(toks []token.Token) (*Result, error) {
	all := concatAll(toks)

	if err := checkUnderscorePlacement(all); err != nil {
		return nil, err
	}
	if err := v.checkFencing(toks); err != nil {
		return nil, err
	}
	if err := v.checkNoLeadingCM(toks); err != nil {
		return nil, err
	}

	g, err := group.Select(v.data, all)
	if err != nil {
		return nil, err
	}
	if g == nil {
		// Unicode label with no text tokens cannot happen: allEmoji would
		// have already matched, so a mixed stream always has at least one
		// Text token contributing to all.
		return nil, &nerror.EmptyLabel{}
	}

	if len(g.CMWhitelist) == 0 {
		if err := v.checkCombiningMarks(all); err != nil {
			return nil, err
		}
	}

	if err := wholes.Check(v.data, all); err != nil {
		return nil, err
	}

	typ := Type(g.Name)
	if g.Restricted {
		typ = Type("Restricted[" + g.Name + "]")
	}
	return &Result{Type: typ, Tokens: toks}, nil
}

// atom is one label-level unit counted for leading/trailing/adjacency
// fencing purposes: either a single text codepoint or a whole emoji
// token (emoji never fence).
type atom struct {
	cp      codepoint.Codepoint
	isEmoji bool
}

func atoms(toks []token.Token) []atom {
	var out []atom
	for _, tk := range toks {
		switch t := tk.(type) {
		case token.Text:
			for _, c := range t.CPs {
				out = append(out, atom{cp: c})
			}
		case token.Emoji:
			out = append(out, atom{isEmoji: true})
		}
	}
	return out
}

func concatAll(toks []token.Token) []codepoint.Codepoint {
	var out []codepoint.Codepoint
	for _, tk := range toks {
		if t, ok := tk.(token.Text); ok {
			out = append(out, t.CPs...)
		}
	}
	return out
}

func checkUnderscorePlacement(cps []codepoint.Codepoint) error {
	if !underscorePrefix.MatchString(codepoint.Encode(cps)) {
		return &nerror.UnderscoreMisplaced{Position: firstMisplacedUnderscore(cps)}
	}
	return nil
}

// checkFencing applies the leading/trailing/adjacent Fenced rules over
// the label's atoms (one per text codepoint, one per whole emoji token,
// in token-stream order). An emoji token is never itself fenced, but it
// still occupies a position for adjacency purposes.
func (v *Validator) checkFencing(toks []token.Token) error {
	as := atoms(toks)
	if len(as) == 0 {
		return nil
	}
	if !as[0].isEmoji && v.data.Fenced[as[0].cp] {
		return &nerror.FencedLeading{CP: rune(as[0].cp)}
	}
	last := as[len(as)-1]
	if !last.isEmoji && v.data.Fenced[last.cp] {
		return &nerror.FencedTrailing{CP: rune(last.cp)}
	}
	for i := 1; i < len(as); i++ {
		prev, cur := as[i-1], as[i]
		if prev.isEmoji || cur.isEmoji {
			continue
		}
		if v.data.Fenced[prev.cp] && v.data.Fenced[cur.cp] {
			return &nerror.FencedAdjacent{CP1: rune(prev.cp), CP2: rune(cur.cp)}
		}
	}
	return nil
}

// checkNoLeadingCM enforces that the first codepoint of every Text token
// is not a combining mark, catching a mark that would otherwise visually
// attach to a preceding emoji. A codepoint in the Mn/Mc/Me general
// categories, or that appears in the NSM set, is treated as a combining
// mark for this purpose.
func (v *Validator) checkNoLeadingCM(toks []token.Token) error {
	prevWasEmoji := false
	for _, tk := range toks {
		text, ok := tk.(token.Text)
		if !ok {
			prevWasEmoji = true
			continue
		}
		if len(text.CPs) > 0 && v.isCombiningMark(text.CPs[0]) {
			if prevWasEmoji {
				return &nerror.CombiningMarkAfterEmoji{CP: rune(text.CPs[0])}
			}
			return &nerror.LeadingCombiningMark{CP: rune(text.CPs[0])}
		}
		prevWasEmoji = false
	}
	return nil
}

func (v *Validator) isCombiningMark(c codepoint.Codepoint) bool {
	return c.Category().IsMark() || v.data.NSM[c]
}

// checkCombiningMarks runs the NFD + maximal-NSM-run validation of
// §4.4(c).6: decompose chars, then for every maximal run of consecutive
// NSM codepoints, require every codepoint in the run to be distinct and
// the run length to not exceed the table's configured maximum.
func (v *Validator) checkCombiningMarks(chars []codepoint.Codepoint) error {
	decomposed := v.nfceng.Decompose(chars)

	i := 0
	for i < len(decomposed) {
		if !v.data.NSM[decomposed[i]] {
			i++
			continue
		}
		j := i
		seen := make(map[codepoint.Codepoint]bool)
		for j < len(decomposed) && v.data.NSM[decomposed[j]] {
			if seen[decomposed[j]] {
				return &nerror.DuplicateNSM{CP: rune(decomposed[j])}
			}
			seen[decomposed[j]] = true
			j++
		}
		if j-i > v.data.NSMMax {
			return &nerror.ExcessiveNSM{Count: j - i}
		}
		i = j
	}
	return nil
}
