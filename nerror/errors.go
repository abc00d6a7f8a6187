// Package nerror defines the structured failure values shared by every
// stage of the normalization pipeline (tokenizer, group selection,
// wholes check, label validator, driver). It has no dependency on any
// other ensnorm package so that leaf packages (token, group, wholes) can
// return these values without creating an import cycle back up to the
// ensnorm root package. The root package does not re-export them;
// callers reach them through errors.As against *nerror.X.
package nerror

import (
	"errors"
	"fmt"
)

// Sentinel classes, one errors.New value per failure family. Structured
// error types below wrap one of these via Unwrap so callers can
// errors.Is a whole class without caring about the enriched fields.
var (
	ErrDisallowedCharacter = errors.New("disallowed character")
	ErrEmptyLabel          = errors.New("empty label")
	ErrEmptyName           = errors.New("empty name")
	ErrUnderscoreMisplaced = errors.New("underscore misplaced")
	ErrHyphenAtPositions34 = errors.New("hyphen at positions 3-4")
	ErrLeadingCombiningMark = errors.New("leading combining mark")
	ErrCombiningMarkAfterEmoji = errors.New("combining mark after emoji")
	ErrFencedLeading       = errors.New("fenced character leading")
	ErrFencedTrailing      = errors.New("fenced character trailing")
	ErrFencedAdjacent      = errors.New("adjacent fenced characters")
	ErrIllegalMixture      = errors.New("illegal script mixture")
	ErrDisallowedCombiningMark = errors.New("combining mark not in group whitelist")
	ErrDuplicateNSM        = errors.New("duplicate non-spacing mark")
	ErrExcessiveNSM        = errors.New("excessive non-spacing marks")
	ErrWholeScriptConfusable = errors.New("whole-script confusable")
	ErrInvalidUTF8         = errors.New("invalid utf-8")
)

// LabelIndexed is embedded by every structured error below except
// EmptyName (which concerns the whole name, not a label) so the driver
// can attach which 0-based label within a name failed without every
// error type re-declaring the field and its accessor.
type LabelIndexed struct {
	LabelIndex int
}

// Index returns the 0-based label index, satisfying the LabelIndexer
// interface the driver uses to read it back for reporting.
func (l LabelIndexed) Index() int { return l.LabelIndex }

// SetLabelIndex stamps idx onto the error. Leaf packages (token, label,
// group, wholes) only ever see one label and never call this; the
// driver calls it once, after the fact, on every error a label's
// pipeline run returns.
func (l *LabelIndexed) SetLabelIndex(idx int) { l.LabelIndex = idx }

// LabelIndexer is implemented by every structured error in this package
// other than EmptyName, via its embedded LabelIndexed.
type LabelIndexer interface {
	Index() int
	SetLabelIndex(int)
}

// DisallowedCharacter reports a codepoint that is not Valid, Mapped,
// Ignored, or a legitimate emoji-internal component at its position.
type DisallowedCharacter struct {
	LabelIndexed
	CP       rune
	Position int
}

func (e *DisallowedCharacter) Error() string {
	return fmt.Sprintf("disallowed character U+%04X at position %d", e.CP, e.Position)
}

func (e *DisallowedCharacter) Unwrap() error { return ErrDisallowedCharacter }

// EmptyLabel reports a label whose token stream reduced to zero tokens.
type EmptyLabel struct {
	LabelIndexed
}

func (e *EmptyLabel) Error() string  { return "empty label" }
func (e *EmptyLabel) Unwrap() error  { return ErrEmptyLabel }

// EmptyName reports a name with zero labels.
type EmptyName struct{}

func (e *EmptyName) Error() string { return "empty name" }
func (e *EmptyName) Unwrap() error { return ErrEmptyName }

// UnderscoreMisplaced reports a `_` appearing after a non-`_` character
// in a label (ASCII or Unicode).
type UnderscoreMisplaced struct {
	LabelIndexed
	Position int
}

func (e *UnderscoreMisplaced) Error() string {
	return fmt.Sprintf("underscore misplaced at position %d", e.Position)
}
func (e *UnderscoreMisplaced) Unwrap() error { return ErrUnderscoreMisplaced }

// HyphenAtPositions34 reports an ASCII label matching /^..--/.
type HyphenAtPositions34 struct {
	LabelIndexed
}

func (e *HyphenAtPositions34) Error() string { return "hyphen at positions 3 and 4" }
func (e *HyphenAtPositions34) Unwrap() error { return ErrHyphenAtPositions34 }

// LeadingCombiningMark reports a text token whose first codepoint is a
// combining mark.
type LeadingCombiningMark struct {
	LabelIndexed
	CP rune
}

func (e *LeadingCombiningMark) Error() string {
	return fmt.Sprintf("leading combining mark U+%04X", e.CP)
}
func (e *LeadingCombiningMark) Unwrap() error { return ErrLeadingCombiningMark }

// CombiningMarkAfterEmoji reports a combining mark immediately following
// an emoji token.
type CombiningMarkAfterEmoji struct {
	LabelIndexed
	CP rune
}

func (e *CombiningMarkAfterEmoji) Error() string {
	return fmt.Sprintf("combining mark U+%04X follows an emoji token", e.CP)
}
func (e *CombiningMarkAfterEmoji) Unwrap() error { return ErrCombiningMarkAfterEmoji }

// FencedLeading reports a fenced codepoint at the start of a label.
type FencedLeading struct {
	LabelIndexed
	CP rune
}

func (e *FencedLeading) Error() string { return fmt.Sprintf("fenced character U+%04X leads label", e.CP) }
func (e *FencedLeading) Unwrap() error { return ErrFencedLeading }

// FencedTrailing reports a fenced codepoint at the end of a label.
type FencedTrailing struct {
	LabelIndexed
	CP rune
}

func (e *FencedTrailing) Error() string {
	return fmt.Sprintf("fenced character U+%04X trails label", e.CP)
}
func (e *FencedTrailing) Unwrap() error { return ErrFencedTrailing }

// FencedAdjacent reports two adjacent fenced codepoints.
type FencedAdjacent struct {
	LabelIndexed
	CP1, CP2 rune
}

func (e *FencedAdjacent) Error() string {
	return fmt.Sprintf("adjacent fenced characters U+%04X U+%04X", e.CP1, e.CP2)
}
func (e *FencedAdjacent) Unwrap() error { return ErrFencedAdjacent }

// IllegalMixture reports script-group selection narrowing to the empty
// set: cp is not a member of any group still in contention given the
// groups the prior codepoints had already selected.
type IllegalMixture struct {
	LabelIndexed
	CP                 rune
	PriorGroups        []string
	GroupsContainingCP []string
}

func (e *IllegalMixture) Error() string {
	return fmt.Sprintf("illegal script mixture: U+%04X (in %v) incompatible with %v",
		e.CP, e.GroupsContainingCP, e.PriorGroups)
}
func (e *IllegalMixture) Unwrap() error { return ErrIllegalMixture }

// DisallowedCombiningMark reports a combining mark that survived group
// selection but is not on the chosen group's CM-whitelist.
type DisallowedCombiningMark struct {
	LabelIndexed
	CP    rune
	Group string
}

func (e *DisallowedCombiningMark) Error() string {
	return fmt.Sprintf("combining mark U+%04X not in %s's whitelist", e.CP, e.Group)
}
func (e *DisallowedCombiningMark) Unwrap() error { return ErrDisallowedCombiningMark }

// DuplicateNSM reports the same non-spacing mark appearing twice in one
// run.
type DuplicateNSM struct {
	LabelIndexed
	CP rune
}

func (e *DuplicateNSM) Error() string { return fmt.Sprintf("duplicate non-spacing mark U+%04X", e.CP) }
func (e *DuplicateNSM) Unwrap() error { return ErrDuplicateNSM }

// ExcessiveNSM reports a run of non-spacing marks longer than the
// table's configured maximum.
type ExcessiveNSM struct {
	LabelIndexed
	Count int
}

func (e *ExcessiveNSM) Error() string {
	return fmt.Sprintf("excessive non-spacing marks: %d", e.Count)
}
func (e *ExcessiveNSM) Unwrap() error { return ErrExcessiveNSM }

// WholeScriptConfusable reports that a label could be confused for text
// in the named target group: one of the candidate groups left after the
// confusable narrowing pass.
type WholeScriptConfusable struct {
	LabelIndexed
	TargetGroup string
}

func (e *WholeScriptConfusable) Error() string {
	return fmt.Sprintf("whole-script confusable with %s", e.TargetGroup)
}
func (e *WholeScriptConfusable) Unwrap() error { return ErrWholeScriptConfusable }
