package registry

import "nmtd/pkg/types"

// Built-in catalog of translation model variants. Index 2 (the smallest
// variant) is the default, so a cold start materializes the cheapest model.
var defaultCatalog = []types.ModelSpec{
	{
		Name:            "EN-DE-Transformer-Big",
		WeightsURL:      "https://s3.amazonaws.com/opennmt-models/transformer-ende-wmt-big/averaged-10-epoch.pt",
		WeightsFile:     "transformer-ende-wmt-big.pt",
		SubwordURL:      "https://s3.amazonaws.com/opennmt-models/transformer-ende-wmt-big/bpe-codes.ende",
		SubwordFile:     "bpe-codes-big.ende",
		RuntimeDir:      "transformer-ende-wmt-big-ct2",
		Segmentation:    types.SegmentationBPE,
		UseLanguageTags: false,
		PrecisionHint:   "int8",
	},
	{
		Name:            "EN-DE-Transformer-Base",
		WeightsURL:      "https://s3.amazonaws.com/opennmt-models/transformer-ende-wmt-base/averaged-10-epoch.pt",
		WeightsFile:     "transformer-ende-wmt-base.pt",
		SubwordURL:      "https://s3.amazonaws.com/opennmt-models/transformer-ende-wmt-base/bpe-codes.ende",
		SubwordFile:     "bpe-codes-base.ende",
		RuntimeDir:      "transformer-ende-wmt-base-ct2",
		Segmentation:    types.SegmentationBPE,
		UseLanguageTags: false,
		PrecisionHint:   "int8",
	},
	{
		Name:            "Multilingual-600M-distilled",
		WeightsURL:      "https://s3.amazonaws.com/opennmt-models/multilingual-600m/distilled-600M.pt",
		WeightsFile:     "multilingual-600m-distilled.pt",
		SubwordURL:      "https://s3.amazonaws.com/opennmt-models/nllb-200/flores200_sacrebleu_tokenizer_spm.model",
		SubwordFile:     "flores200_sacrebleu_tokenizer_spm.model",
		RuntimeDir:      "multilingual-600m-distilled-ct2",
		Segmentation:    types.SegmentationSentencePiece,
		UseLanguageTags: true,
		PrecisionHint:   "int8",
	},
}

const defaultModelIndex = 2

// Supported-language table for the active model family. The derivation pair is
// en <-> de; the remaining entries are valid as explicit source or target only.
var defaultLanguages = []types.Language{
	{Code: "en", Name: "English"},
	{Code: "de", Name: "German"},
	{Code: "fr", Name: "French"},
	{Code: "es", Name: "Spanish"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
}

// Default returns the built-in registry: the model catalog above with the
// English/German bidirectional pair.
func Default() *Registry {
	r, err := New(defaultCatalog, defaultModelIndex, defaultLanguages, "en", "de")
	if err != nil {
		// defaultModelIndex is a compile-time constant into the catalog above.
		panic(err)
	}
	return r
}

// DefaultWithIndex returns the built-in registry with an overridden default
// model index, rejecting indexes outside the catalog.
func DefaultWithIndex(idx int) (*Registry, error) {
	return New(defaultCatalog, idx, defaultLanguages, "en", "de")
}
