// Package tokenize converts raw text to the subword token representation the
// inference engine expects, and back. Segmentation is delegated to an external
// tool behind the Segmenter interface; detokenization is a fixed ordered rule
// pipeline applied to the joined output tokens.
package tokenize

import (
	"context"
	"strings"
)

// endOfSequence is the sequence terminator emitted by the engine.
const endOfSequence = "</s>"

// Segmenter splits raw lines into subword token sequences. Implementations
// bind their subword table (BPE merge codes or SentencePiece model) at
// construction.
type Segmenter interface {
	Segment(ctx context.Context, lines []string) ([][]string, error)
}

// Normalizer is the encode/decode pair for one loaded model variant. It is
// stateless apart from the segmenter handle and safe for concurrent use.
type Normalizer struct {
	seg      Segmenter
	langTags bool
}

// NewNormalizer builds a normalizer around seg. When langTags is set the
// source language tag is prepended on encode and a leading target tag is
// stripped on decode, as multilingual model variants require.
func NewNormalizer(seg Segmenter, langTags bool) *Normalizer {
	return &Normalizer{seg: seg, langTags: langTags}
}

// Encode segments text into the token sequence for srcLang. The result is
// never empty unless the trimmed input was empty. Segmenter failures are
// returned as tool failures, never as an empty sequence.
func (n *Normalizer) Encode(ctx context.Context, text, srcLang string) ([]string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	segmented, err := n.seg.Segment(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(segmented) == 0 || len(segmented[0]) == 0 {
		return nil, ErrTool("segmenter", "empty segmentation output")
	}
	tokens := segmented[0]
	if n.langTags {
		tokens = append([]string{srcLang}, tokens...)
	}
	return tokens, nil
}

// Decode reconstructs natural text from engine output tokens for tgtLang: it
// strips a leading target-language tag and a trailing end-of-sequence marker,
// joins the tokens, and runs the detokenization rule pipeline.
func (n *Normalizer) Decode(tokens []string, tgtLang string) string {
	if n.langTags && len(tokens) > 0 && tokens[0] == tgtLang {
		tokens = tokens[1:]
	}
	if len(tokens) > 0 && tokens[len(tokens)-1] == endOfSequence {
		tokens = tokens[:len(tokens)-1]
	}
	return Detokenize(strings.Join(tokens, " "))
}
