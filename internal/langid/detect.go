// Package langid classifies request text into one of two configured language
// codes with a fixed indicator-word heuristic. It is deliberately not a real
// language identifier: any indicator hit selects the alternate language and
// the default wins otherwise, which is sufficient for routing a bidirectional
// translation pair.
package langid

import "strings"

// germanIndicators are common German function words and characters matched as
// substrings against the lower-cased input.
var germanIndicators = []string{
	"der", "die", "das", "und", "ist", "ein", "eine", "nicht", "ich", "sie", "er",
	"ß", "ä", "ö", "ü", "von", "zu", "mit", "auf", "für", "wird", "werden",
}

// Detector scores text against an indicator list for the alternate language.
type Detector struct {
	defaultLang string
	altLang     string
	indicators  []string
}

// New builds a detector that returns altLang when any indicator occurs in the
// lower-cased text, and defaultLang otherwise.
func New(defaultLang, altLang string, indicators []string) *Detector {
	return &Detector{defaultLang: defaultLang, altLang: altLang, indicators: indicators}
}

// Default returns the English/German detector used by the built-in catalog.
func Default() *Detector {
	return New("en", "de", germanIndicators)
}

// Detect classifies text. It has no side effects and never fails: the worst
// case is the default language. Matches are plain substring containment, not
// word-boundary aware; a single hit is enough to pick the alternate language.
func (d *Detector) Detect(text string) string {
	lower := strings.ToLower(text)
	score := 0
	for _, ind := range d.indicators {
		if strings.Contains(lower, ind) {
			score++
		}
	}
	if score > 0 {
		return d.altLang
	}
	return d.defaultLang
}
