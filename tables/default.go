package tables

import "github.com/nameforge/ensnorm/codepoint"

// cp is a small local alias to keep the literal tables below readable.
type cp = codepoint.Codepoint

// latinAccent pairs a precomposed Latin-1 Supplement / Latin Extended-A
// letter with the base letter and combining mark its canonical
// decomposition produces. Used to build both the Mapped-adjacent Primary
// membership and the NFC decomposition table in one pass.
type latinAccent struct {
	precomposed cp
	base        cp
	mark        cp
}

var latinAccents = []latinAccent{
	{0x00E0, 'a', 0x0300}, // à
	{0x00E1, 'a', 0x0301}, // á
	{0x00E2, 'a', 0x0302}, // â
	{0x00E3, 'a', 0x0303}, // ã
	{0x00E4, 'a', 0x0308}, // ä
	{0x00E5, 'a', 0x030A}, // å
	{0x00E7, 'c', 0x0327}, // ç
	{0x00E8, 'e', 0x0300}, // è
	{0x00E9, 'e', 0x0301}, // é
	{0x00EA, 'e', 0x0302}, // ê
	{0x00EB, 'e', 0x0308}, // ë
	{0x00EC, 'i', 0x0300}, // ì
	{0x00ED, 'i', 0x0301}, // í
	{0x00EE, 'i', 0x0302}, // î
	{0x00EF, 'i', 0x0308}, // ï
	{0x00F1, 'n', 0x0303}, // ñ
	{0x00F2, 'o', 0x0300}, // ò
	{0x00F3, 'o', 0x0301}, // ó
	{0x00F4, 'o', 0x0302}, // ô
	{0x00F5, 'o', 0x0303}, // õ
	{0x00F6, 'o', 0x0308}, // ö
	{0x00F9, 'u', 0x0300}, // ù
	{0x00FA, 'u', 0x0301}, // ú
	{0x00FB, 'u', 0x0302}, // û
	{0x00FC, 'u', 0x0308}, // ü
	{0x00FD, 'y', 0x0301}, // ý
	{0x00FF, 'y', 0x0308}, // ÿ
	{0x1EBD, 'e', 0x0303}, // ẽ
}

// combiningClasses gives the canonical combining class for every
// combining mark this reference subset uses. Codepoints absent here have
// implicit class 0 (starters).
var combiningClasses = map[cp]uint8{
	0x0300: 230, // combining grave accent
	0x0301: 230, // combining acute accent
	0x0302: 230, // combining circumflex accent
	0x0303: 230, // combining tilde
	0x0308: 230, // combining diaeresis
	0x030A: 230, // combining ring above
	0x0327: 202, // combining cedilla
}

// Default returns a baked-in Tables instance covering enough of
// ENSIP-15's reference data (ASCII, a representative Latin/Greek/
// Cyrillic/Egyptian-hieroglyph slice, a handful of emoji sequences, and a
// matching NFC/whole-confusable slice) to exercise every rule in the
// engine end to end. It is not the full ENSIP-15 derivation; see
// DESIGN.md for why the complete table is out of this module's scope and
// gen.go for how a real derivation pipeline would refresh it.
func Default() *Tables {
	t := &Tables{
		Mapped:          map[cp][]cp{},
		Ignored:         map[cp]bool{},
		ValidUnion:      map[cp]bool{},
		Fenced:          map[cp]bool{},
		EmojiComponents: map[cp]bool{},
		NSM:             map[cp]bool{},
		NSMMax:          4,
		Escape:          map[cp]bool{},
	}

	buildMapped(t)
	buildIgnored(t)
	groups := buildGroups()
	t.Groups = groups
	buildEmoji(t)
	buildEmojiComponents(t)
	buildFenced(t)
	buildNSM(t)
	buildConfusables(t)
	buildNFC(t)
	buildValidUnion(t)

	t.Build()
	return t
}

func buildMapped(t *Tables) {
	// ASCII uppercase -> lowercase.
	for c := cp('A'); c <= 'Z'; c++ {
		t.Mapped[c] = []cp{c + 0x20}
	}
	// Greek uppercase -> lowercase (includes Ξ -> ξ, exercised by the
	// beautify Ξ/ξ scenario).
	for c := cp(0x0391); c <= 0x03A9; c++ {
		if c == 0x03A2 { // unassigned in this range
			continue
		}
		t.Mapped[c] = []cp{c + 0x20}
	}
	// Cyrillic uppercase -> lowercase.
	for c := cp(0x0410); c <= 0x042F; c++ {
		t.Mapped[c] = []cp{c + 0x20}
	}
	t.Mapped[0x0401] = []cp{0x0451} // Ё -> ё

	t.Mapped[0x210C] = []cp{'h'}            // BLACK-LETTER CAPITAL H -> h
	t.Mapped[0x2122] = []cp{'t', 'm'}        // TRADE MARK SIGN -> tm
	t.Mapped[0x0027] = []cp{0x2019}          // APOSTROPHE -> RIGHT SINGLE QUOTATION MARK
}

func buildIgnored(t *Tables) {
	for _, c := range []cp{
		0x00AD, // soft hyphen
		0x200B, // zero width space
		0x2060, // word joiner
		0xFE0E, // variation selector-15 (text presentation)
		0xFE0F, // variation selector-16 (emoji presentation), outside a match
	} {
		t.Ignored[c] = true
	}
}

func buildGroups() []*Group {
	latn := &Group{
		Name:        "Latn",
		Primary:     map[cp]bool{},
		Secondary:   map[cp]bool{},
		CMWhitelist: map[string][]cp{},
		CheckNSM:    true,
	}
	for c := cp('a'); c <= 'z'; c++ {
		latn.Primary[c] = true
	}
	for _, a := range latinAccents {
		latn.Primary[a.precomposed] = true
	}

	grek := &Group{
		Name:        "Grek",
		Primary:     map[cp]bool{},
		Secondary:   map[cp]bool{},
		CMWhitelist: map[string][]cp{},
		CheckNSM:    true,
	}
	for c := cp(0x03B1); c <= 0x03C9; c++ {
		grek.Primary[c] = true
	}

	cyrl := &Group{
		Name:        "Cyrl",
		Primary:     map[cp]bool{},
		Secondary:   map[cp]bool{},
		CMWhitelist: map[string][]cp{},
		CheckNSM:    true,
	}
	for c := cp(0x0430); c <= 0x044F; c++ {
		cyrl.Primary[c] = true
	}
	cyrl.Primary[0x0451] = true // ё
	cyrl.Primary[0x04D5] = true // ӕ (CYRILLIC SMALL LIGATURE A IE), ENSIP-15's own "тӕ" example

	egyp := &Group{
		Name:        "Egyp",
		Restricted:  true,
		Primary:     map[cp]bool{0x13000: true, 0x13080: true, 0x13197: true},
		Secondary:   map[cp]bool{},
		CMWhitelist: map[string][]cp{},
		CheckNSM:    false,
	}

	// Shared structural characters (digits, hyphen, underscore) and the
	// Latin combining marks produced by NFD-decomposing the accented
	// letters above are permitted as Secondary in the Latin, Greek and
	// Cyrillic groups (not in Egyp), matching ENSIP-15's practice of
	// sharing "common" characters across script groups rather than
	// duplicating them per group.
	shared := []cp{'-', '_'}
	for c := cp('0'); c <= '9'; c++ {
		shared = append(shared, c)
	}
	// The fenced punctuation itself is a valid member of every group's
	// alphabet; Fenced only restricts where it may appear within a
	// label, a placement rule the validator enforces separately.
	shared = append(shared, 0x30FB, 0x2019, 0x2027)
	marks := []cp{0x0300, 0x0301, 0x0302, 0x0303, 0x0308, 0x030A, 0x0327}

	for _, g := range []*Group{latn, grek, cyrl} {
		for _, c := range shared {
			g.Secondary[c] = true
		}
		for _, c := range marks {
			g.Secondary[c] = true
		}
	}

	return []*Group{latn, grek, cyrl, egyp}
}

func buildEmoji(t *Tables) {
	t.EmojiSequences = []EmojiSequence{
		{
			FullyQualified: []cp{0x1F438}, // 🐸 FROG FACE
			NoFE0F:         []cp{0x1F438},
		},
		{
			// 👨‍👩‍👧‍👦 FAMILY: MAN, WOMAN, GIRL, BOY
			FullyQualified: []cp{0x1F468, 0x200D, 0x1F469, 0x200D, 0x1F467, 0x200D, 0x1F466},
			NoFE0F:         []cp{0x1F468, 0x200D, 0x1F469, 0x200D, 0x1F467, 0x200D, 0x1F466},
		},
		{
			// 1️⃣ KEYCAP DIGIT ONE
			FullyQualified: []cp{'1', 0xFE0F, 0x20E3},
			NoFE0F:         []cp{'1', 0x20E3},
		},
	}
}

// buildEmojiComponents populates the set of codepoints that only make
// sense glued to a matched emoji sequence: ZWJ (the joiner the family
// sequence uses), the Fitzpatrick skin-tone modifiers, the tag
// characters used by flag-sequence emoji, and the keycap enclosing
// combining mark. A bare occurrence of any of these outside a match
// the emoji trie recognizes must fail the label, matching the scenario
// where a lone ZWJ with no neighbors is rejected.
func buildEmojiComponents(t *Tables) {
	t.EmojiComponents[0x200D] = true // ZERO WIDTH JOINER
	for c := cp(0x1F3FB); c <= 0x1F3FF; c++ {
		t.EmojiComponents[c] = true // Fitzpatrick skin-tone modifiers
	}
	for c := cp(0xE0020); c <= 0xE007F; c++ {
		t.EmojiComponents[c] = true // tag characters
	}
	t.EmojiComponents[0x20E3] = true // COMBINING ENCLOSING KEYCAP
}

func buildFenced(t *Tables) {
	for _, c := range []cp{
		0x30FB, // KATAKANA MIDDLE DOT (・)
		0x2019, // RIGHT SINGLE QUOTATION MARK (’)
		0x2027, // HYPHENATION POINT
	} {
		t.Fenced[c] = true
	}
}

func buildNSM(t *Tables) {
	for c := range combiningClasses {
		t.NSM[c] = true
	}
}

func buildConfusables(t *Tables) {
	t.Confusables = []Confusable{
		{
			ID: "latn-cyrl-a",
			Members: []ConfusableMember{
				{CP: 'a', Groups: []string{"Latn"}},
				{CP: 0x0430, Groups: []string{"Cyrl"}},
			},
		},
		{
			ID: "latn-cyrl-x",
			Members: []ConfusableMember{
				{CP: 'x', Groups: []string{"Latn"}},
				{CP: 0x0445, Groups: []string{"Cyrl"}},
			},
		},
		{
			ID: "latn-grek-cyrl-o",
			Members: []ConfusableMember{
				{CP: 'o', Groups: []string{"Latn"}},
				{CP: 0x03BF, Groups: []string{"Grek"}},
				{CP: 0x043E, Groups: []string{"Cyrl"}},
			},
		},
	}
}

func buildNFC(t *Tables) {
	decompose := map[cp][]cp{}
	for _, a := range latinAccents {
		decompose[a.precomposed] = []cp{a.base, a.mark}
	}

	quickCheck := map[cp]bool{}
	for k := range decompose {
		quickCheck[k] = true
	}
	for k := range combiningClasses {
		quickCheck[k] = true
	}

	t.NFC = NFCData{
		Decompose:      decompose,
		Exclusions:     map[cp]bool{},
		CombiningClass: combiningClasses,
		QuickCheckNFC:  quickCheck,
	}
}

func buildValidUnion(t *Tables) {
	for _, g := range t.Groups {
		for c := range g.Primary {
			t.ValidUnion[c] = true
		}
		for c := range g.Secondary {
			t.ValidUnion[c] = true
		}
	}
	// Extend with NFD-decomposition outputs (invariant 3 of the data
	// model): the base letters and combining marks produced by
	// decomposing a valid precomposed letter must themselves be valid.
	for _, seq := range t.NFC.Decompose {
		for _, c := range seq {
			t.ValidUnion[c] = true
		}
	}
	// ASCII structural characters accepted by the ASCII label rule
	// (§4.4.b): lowercase letters, digits, '$', '-', '_'.
	for c := cp('a'); c <= 'z'; c++ {
		t.ValidUnion[c] = true
	}
	for c := cp('0'); c <= '9'; c++ {
		t.ValidUnion[c] = true
	}
	t.ValidUnion['$'] = true
	t.ValidUnion['-'] = true
	t.ValidUnion['_'] = true
}
