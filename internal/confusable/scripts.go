package confusable

// substitute pairs a look-alike rune with its curated visual similarity
// to the key it substitutes for (1.0 would be pixel-identical).
type substitute struct {
	r   rune
	sim float64
}

// scriptMapping is one script family's contribution to the substitution
// table. Families are merged by union at table construction; a character
// mapped by several families keeps all of its substitutes.
type scriptMapping struct {
	name    string
	entries map[rune][]substitute
}

// Similarity defaults per script family. Cyrillic homoglyphs of Latin
// lowercase are near-identical in most fonts; Greek and the digit
// look-alikes are slightly easier to tell apart.
const (
	simCyrillic = 0.98
	simGreek    = 0.92
	simDigit    = 0.85
	simOther    = 0.85
)

// latinToCyrillic maps Latin lowercase letters to their Cyrillic
// homoglyphs. This is the highest-signal family: these pairs are the
// classic ENS impersonation vector.
var latinToCyrillic = scriptMapping{
	name: "latin-cyrillic",
	entries: map[rune][]substitute{
		'a': {{'а', simCyrillic}}, // а
		'b': {{'ѣ', 0.80}},        // ѣ (yat, approximate)
		'c': {{'с', simCyrillic}}, // с
		'd': {{'ԁ', simOther}},    // ԁ (komi de)
		'e': {{'е', simCyrillic}}, // е
		'h': {{'н', 0.82}},        // н
		'i': {{'і', simCyrillic}}, // і
		'j': {{'ј', simCyrillic}}, // ј
		'k': {{'к', 0.90}},        // к
		'l': {{'ӏ', 0.93}},        // ӏ (palochka)
		'm': {{'м', 0.90}},        // м
		'o': {{'о', simCyrillic}}, // о
		'p': {{'р', simCyrillic}}, // р
		'q': {{'ԛ', simOther}},    // ԛ
		'r': {{'г', 0.70}},        // г (loose)
		's': {{'ѕ', simCyrillic}}, // ѕ
		't': {{'т', 0.88}},        // т
		'u': {{'ю', 0.60}},        // ю (loose)
		'w': {{'ԝ', simOther}},    // ԝ
		'x': {{'х', simCyrillic}}, // х
		'y': {{'у', 0.90}},        // у
	},
}

// latinToGreek maps Latin lowercase letters to Greek homoglyphs.
var latinToGreek = scriptMapping{
	name: "latin-greek",
	entries: map[rune][]substitute{
		'o': {{'ο', simGreek}}, // ο (omicron)
		'v': {{'ν', simGreek}}, // ν (nu)
		'x': {{'χ', simGreek}}, // χ (chi)
	},
}

// latinLookalikes maps Latin lowercase letters to look-alikes from other
// blocks: extended Latin, Armenian, and historical forms.
var latinLookalikes = scriptMapping{
	name: "latin-lookalikes",
	entries: map[rune][]substitute{
		'f': {{'ſ', 0.80}},     // ſ (long s)
		'g': {{'ɡ', 0.95}},     // ɡ (script g)
		'l': {{'ı', 0.90}},     // ı (dotless i)
		'n': {{'ո', simOther}}, // ո (Armenian vo)
		'z': {{'ƶ', simOther}}, // ƶ (z with stroke)
	},
}

// digitLookalikes maps digits to visually-similar letters and homoglyphs.
// Note that '0'->'o' and '1'->'l'/'i' stay within ASCII; these are the
// cheapest impersonations because they need no Unicode at all.
var digitLookalikes = scriptMapping{
	name: "digit-lookalikes",
	entries: map[rune][]substitute{
		'0': {{'o', 0.90}, {'о', simDigit}},
		'1': {{'l', 0.92}, {'i', 0.85}, {'ӏ', simDigit}, {'ı', simDigit}},
		'3': {{'з', simDigit}}, // з
		'5': {{'ѕ', simDigit}}, // ѕ
	},
}

// builtinMappings lists the script families merged into every table,
// in merge order. Order matters only for substitute ordering within an
// entry, which keeps generator output deterministic.
var builtinMappings = []scriptMapping{
	latinToCyrillic,
	latinToGreek,
	latinLookalikes,
	digitLookalikes,
}
