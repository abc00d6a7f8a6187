// Package nfc implements Unicode Normalization Form C (UAX #15) over a
// codepoint sequence, driven by the decomposition/exclusion/combining-
// class data in tables.NFCData. Hangul syllables are handled
// algorithmically rather than through the table, following the formulae
// in UAX #15 §16 for Jamo composition and decomposition.
package nfc

import (
	"sort"

	"github.com/nameforge/ensnorm/codepoint"
	"github.com/nameforge/ensnorm/tables"
)

// Hangul syllable algorithm constants (UAX #15 §16, and equivalently
// hb-ot-shaper-hangul.cc's lBase/vBase/tBase/sBase family).
const (
	sBase  codepoint.Codepoint = 0xAC00
	lBase  codepoint.Codepoint = 0x1100
	vBase  codepoint.Codepoint = 0x1161
	tBase  codepoint.Codepoint = 0x11A7
	lCount                     = 19
	vCount                     = 21
	tCount                     = 28
	nCount                     = vCount * tCount // 588
	sCount                     = lCount * nCount // 11172
)

func isHangulSyllable(c codepoint.Codepoint) bool {
	return c >= sBase && c < sBase+sCount
}

// isComposableHangulJamo reports whether c is one of the narrow L/V/T
// Jamo ranges that algorithmic Hangul composition can combine into a
// syllable (UAX #15 §16); such codepoints must not take the "already
// NFC" fast path since two or three of them may need to recompose.
func isComposableHangulJamo(c codepoint.Codepoint) bool {
	if c >= lBase && c < lBase+lCount {
		return true
	}
	if c >= vBase && c < vBase+vCount {
		return true
	}
	if c > tBase && c < tBase+tCount {
		return true
	}
	return false
}

// Engine computes NFC over codepoint sequences using one immutable
// tables.NFCData instance. It holds no mutable state beyond a
// precomputed composition index and is safe to use concurrently from
// multiple goroutines.
type Engine struct {
	data      *tables.NFCData
	composeOf map[[2]codepoint.Codepoint]codepoint.Codepoint
}

// New builds an Engine bound to data. data must not be mutated after
// this call (the engine's fast path assumes it is a read-only snapshot).
// The composition index is built once here rather than per call.
func New(data *tables.NFCData) *Engine {
	e := &Engine{data: data}
	e.composeOf = e.buildComposeIndex()
	return e
}

// NFC normalizes cps to Normalization Form C. It is total: it never
// fails, and NFC(NFC(x)) == NFC(x) for every input.
func (e *Engine) NFC(cps []codepoint.Codepoint) []codepoint.Codepoint {
	if e.alreadyNFC(cps) {
		out := make([]codepoint.Codepoint, len(cps))
		copy(out, cps)
		return out
	}
	decomposed := e.Decompose(cps)
	e.canonicalOrder(decomposed)
	return e.compose(decomposed)
}

// alreadyNFC is the quick-check fast path: if no codepoint in cps
// appears in the table's quick-check set and no codepoint is a
// decomposable Hangul syllable, cps is already in NFC and decomposition/
// composition can be skipped entirely.
func (e *Engine) alreadyNFC(cps []codepoint.Codepoint) bool {
	for _, c := range cps {
		if e.data.QuickCheckNFC[c] {
			return false
		}
		if isHangulSyllable(c) || isComposableHangulJamo(c) {
			return false
		}
	}
	return true
}

// Decompose recursively expands every codepoint in cps via the
// canonical decomposition map (applying it until no entry applies) and
// the algorithmic Hangul syllable decomposition, producing a fully
// decomposed sequence in NFD order (not yet canonically reordered).
func (e *Engine) Decompose(cps []codepoint.Codepoint) []codepoint.Codepoint {
	out := make([]codepoint.Codepoint, 0, len(cps)*2)
	for _, c := range cps {
		out = append(out, e.decomposeOne(c)...)
	}
	return out
}

func (e *Engine) decomposeOne(c codepoint.Codepoint) []codepoint.Codepoint {
	if isHangulSyllable(c) {
		return decomposeHangul(c)
	}
	seq, ok := e.data.Decompose[c]
	if !ok {
		return []codepoint.Codepoint{c}
	}
	out := make([]codepoint.Codepoint, 0, len(seq))
	for _, s := range seq {
		out = append(out, e.decomposeOne(s)...)
	}
	return out
}

// decomposeHangul expands a precomposed Hangul syllable into its L, V,
// and (if present) T Jamo, per UAX #15 §16's algorithmic decomposition.
func decomposeHangul(s codepoint.Codepoint) []codepoint.Codepoint {
	i := int(s - sBase)
	l := lBase + codepoint.Codepoint(i/nCount)
	v := vBase + codepoint.Codepoint((i%nCount)/tCount)
	tIndex := i % tCount
	if tIndex == 0 {
		return []codepoint.Codepoint{l, v}
	}
	return []codepoint.Codepoint{l, v, tBase + codepoint.Codepoint(tIndex)}
}

// canonicalOrder stable-sorts each maximal run of non-starters (ccc > 0)
// by combining class, in place. Starters (ccc == 0) are fixed points
// that terminate a run.
func (e *Engine) canonicalOrder(cps []codepoint.Codepoint) {
	i := 0
	for i < len(cps) {
		if e.data.CombiningClassOf(cps[i]) == 0 {
			i++
			continue
		}
		j := i
		for j < len(cps) && e.data.CombiningClassOf(cps[j]) != 0 {
			j++
		}
		run := cps[i:j]
		sort.SliceStable(run, func(a, b int) bool {
			return e.data.CombiningClassOf(run[a]) < e.data.CombiningClassOf(run[b])
		})
		i = j
	}
}

// compose performs the left-to-right canonical composition scan: each
// starter is paired with each following non-starter (or starter) not
// blocked by an intervening mark of equal-or-higher class, composing the
// pair when the decomposition table maps some codepoint to exactly that
// pair and that codepoint is not in the exclusion set. Hangul L+V and
// LV+T composition is algorithmic.
func (e *Engine) compose(cps []codepoint.Codepoint) []codepoint.Codepoint {
	if len(cps) == 0 {
		return cps
	}
	out := make([]codepoint.Codepoint, 0, len(cps))
	out = append(out, cps[0])

	for i := 1; i < len(cps); i++ {
		c := cps[i]
		starterIdx := len(out) - 1
		for starterIdx >= 0 && e.data.CombiningClassOf(out[starterIdx]) != 0 {
			starterIdx--
		}
		if starterIdx < 0 {
			out = append(out, c)
			continue
		}
		starter := out[starterIdx]

		blocked := false
		cClass := e.data.CombiningClassOf(c)
		if cClass != 0 {
			for k := starterIdx + 1; k < len(out); k++ {
				if e.data.CombiningClassOf(out[k]) >= cClass {
					blocked = true
					break
				}
			}
		} else if starterIdx != len(out)-1 {
			blocked = true
		}

		if !blocked {
			if composed, ok := e.tryCompose(starter, c); ok {
				out[starterIdx] = composed
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// tryCompose attempts to compose (a, b), trying the Hangul algorithmic
// rules first and falling back to the table-driven composition index.
func (e *Engine) tryCompose(a, b codepoint.Codepoint) (codepoint.Codepoint, bool) {
	if c, ok := composeHangul(a, b); ok {
		return c, true
	}
	c, ok := e.composeOf[[2]codepoint.Codepoint{a, b}]
	return c, ok
}

// composeHangul implements the two algorithmic Hangul compositions:
// L+V -> LV syllable, and LV+T -> LVT syllable.
func composeHangul(a, b codepoint.Codepoint) (codepoint.Codepoint, bool) {
	if a >= lBase && a < lBase+lCount && b >= vBase && b < vBase+vCount {
		lIndex := a - lBase
		vIndex := b - vBase
		return sBase + lIndex*nCount + vIndex*tCount, true
	}
	if isHangulSyllable(a) && (int(a-sBase)%tCount) == 0 && b > tBase && b < tBase+tCount {
		return a + (b - tBase), true
	}
	return 0, false
}

// buildComposeIndex inverts the decomposition map into "(A,B) -> C"
// form, dropping any C in the composition-exclusion set. Built once in
// New and reused for the engine's lifetime, per the "do not parse data
// at call time" table design note.
func (e *Engine) buildComposeIndex() map[[2]codepoint.Codepoint]codepoint.Codepoint {
	idx := make(map[[2]codepoint.Codepoint]codepoint.Codepoint, len(e.data.Decompose))
	for c, seq := range e.data.Decompose {
		if len(seq) != 2 {
			continue
		}
		if e.data.Exclusions[c] {
			continue
		}
		idx[[2]codepoint.Codepoint{seq[0], seq[1]}] = c
	}
	return idx
}
