// Package testvectors holds the engine's worked examples as plain data,
// run end to end through ensnorm by testvectors_test.go. The other
// packages' tests (token_test.go, label_test.go, wholes_test.go,
// ensnorm_test.go) do not import it; they spell out the same literal
// inputs themselves.
package testvectors

import "github.com/nameforge/ensnorm/codepoint"

// Case is one normalize-mode input/output/label-type fixture.
type Case struct {
	Name        string
	Input       string
	Normalized  string
	LabelType   string
	ExpectError bool
}

func cps(c ...codepoint.Codepoint) string { return codepoint.Encode(c) }

// Cases is the full set of worked scenarios: ASCII folding, NFC
// composition via an ignored variation selector, a restricted Egyptian
// label mixed with a non-restricted emoji, a disallowed dotless-i,
// trademark-sign mapping with a dropped stray FE0F, ASCII structural
// rules (hyphen/underscore placement),
// whole-script-confusable rejection, and a plain (non-confusable)
// Cyrillic label.
var Cases = []Case{
	{
		Name:       "ascii_underscore_dollar_uppercase",
		Input:      "_$A",
		Normalized: "_$a",
		LabelType:  "ASCII",
	},
	{
		Name:       "ignored_variation_selector_composes_accent",
		Input:      cps('E', 0xFE0E, 0x0303),
		Normalized: cps(0x1EBD),
		LabelType:  "Latn",
	},
	{
		Name:       "egyptian_hieroglyph_plus_frog",
		Input:      cps(0x13197, 0x1F438),
		Normalized: cps(0x13197, 0x1F438),
		LabelType:  "Restricted[Egyp]",
	},
	{
		Name:        "dotless_i_is_disallowed",
		Input:       cps('n', 0x0131, 0x0307, 'c', 'k'),
		ExpectError: true,
	},
	{
		Name:       "trademark_sign_drops_stray_fe0f",
		Input:      cps('a', 0x2122, 0xFE0F),
		Normalized: "atm",
		LabelType:  "ASCII",
	},
	{
		Name:        "hyphen_at_positions_3_4",
		Input:       "xn--",
		ExpectError: true,
	},
	{
		Name:        "trailing_underscore_misplaced",
		Input:       "abc__",
		ExpectError: true,
	},
	{
		Name:        "digit_plus_cyrillic_kha_is_whole_script_confusable",
		Input:       cps('0', 0x0445),
		ExpectError: true,
	},
	{
		Name:       "plain_cyrillic_is_accepted",
		Input:      cps(0x0442, 0x04D5),
		Normalized: cps(0x0442, 0x04D5),
		LabelType:  "Cyrl",
	},
}
