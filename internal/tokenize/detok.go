package tokenize

import (
	"regexp"
	"strings"
)

// Detokenization rule pipeline. The rules run in this exact order, each on the
// output of the previous one.
var (
	reMarkupSpan    = regexp.MustCompile(`｟[^｠]*｠`)
	reSpecialTokens = regexp.MustCompile(`<unk>|<s>|</s>`)
	reWhitespaceRun = regexp.MustCompile(`\s+`)
	reSpaceBefore   = regexp.MustCompile(`\s+([,.!?;:])`)
	reNoSpaceAfter  = regexp.MustCompile(`([,.!?;:])([a-zA-ZäöüßÄÖÜ])`)
	reAfterApos     = regexp.MustCompile(`'\s+`)
	reBeforeQuote   = regexp.MustCompile(`\s+"`)
	reAfterQuote    = regexp.MustCompile(`"\s+`)
)

// Detokenize reverses subword segmentation artifacts across all supported
// marker schemes and repairs spacing around punctuation. Applying it to its
// own output yields the same string.
func Detokenize(text string) string {
	// Merge-based continuation markers, with and without a following space.
	text = strings.ReplaceAll(text, "@@ ", "")
	text = strings.ReplaceAll(text, "@@", "")
	// Alternate merge-scheme no-space-before marker.
	text = strings.ReplaceAll(text, "￭ ", "")
	text = strings.ReplaceAll(text, "￭", "")
	// Unigram-piece space marker.
	text = strings.ReplaceAll(text, "▁", " ")
	// Bracketed markup spans and literal special-token spellings.
	text = reMarkupSpan.ReplaceAllString(text, "")
	text = reSpecialTokens.ReplaceAllString(text, "")
	// Spacing repair.
	text = reWhitespaceRun.ReplaceAllString(text, " ")
	text = reSpaceBefore.ReplaceAllString(text, "$1")
	text = reNoSpaceAfter.ReplaceAllString(text, "$1 $2")
	text = reAfterApos.ReplaceAllString(text, "'")
	text = reBeforeQuote.ReplaceAllString(text, `"`)
	text = reAfterQuote.ReplaceAllString(text, `"`)
	return strings.TrimSpace(text)
}
