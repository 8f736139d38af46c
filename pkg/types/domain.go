package types

import "path/filepath"

// Segmentation strategies a model variant may require.
const (
	SegmentationBPE           = "bpe"
	SegmentationSentencePiece = "sentencepiece"
)

// ModelSpec describes one model variant in the registry catalog: identity,
// remote locators, local artifact names, and compute hints. Immutable once
// defined.
type ModelSpec struct {
	// Human-readable model name, unique within the catalog.
	Name string `json:"name" yaml:"name" toml:"name"`
	// Remote URL of the trained weights artifact.
	WeightsURL string `json:"weights_url" yaml:"weights_url" toml:"weights_url"`
	// Local filename of the weights artifact under the data directory.
	WeightsFile string `json:"weights_file" yaml:"weights_file" toml:"weights_file"`
	// Remote URL of the subword table (BPE merge codes or SentencePiece model).
	SubwordURL string `json:"subword_url" yaml:"subword_url" toml:"subword_url"`
	// Local filename of the subword table under the data directory.
	SubwordFile string `json:"subword_file" yaml:"subword_file" toml:"subword_file"`
	// Directory name of the converted runtime-optimized model under the data
	// directory.
	RuntimeDir string `json:"runtime_dir" yaml:"runtime_dir" toml:"runtime_dir"`
	// Subword segmentation strategy: "bpe" or "sentencepiece".
	Segmentation string `json:"segmentation" yaml:"segmentation" toml:"segmentation"`
	// Whether the model consumes explicit language tag tokens.
	UseLanguageTags bool `json:"use_language_tags" yaml:"use_language_tags" toml:"use_language_tags"`
	// Preferred quantization passed to the converter (e.g., int8).
	PrecisionHint string `json:"precision_hint" yaml:"precision_hint" toml:"precision_hint"`
}

// WeightsPath returns the deterministic local path of the weights artifact.
func (m ModelSpec) WeightsPath(dataDir string) string {
	return filepath.Join(dataDir, m.WeightsFile)
}

// SubwordPath returns the deterministic local path of the subword table.
func (m ModelSpec) SubwordPath(dataDir string) string {
	return filepath.Join(dataDir, m.SubwordFile)
}

// RuntimePath returns the deterministic local path of the converted runtime
// model directory.
func (m ModelSpec) RuntimePath(dataDir string) string {
	return filepath.Join(dataDir, m.RuntimeDir)
}

// Language pairs a stable code with a display name.
type Language struct {
	// Stable language code.
	// example: de
	Code string `json:"code" example:"de"`
	// Human-readable display name.
	// example: German
	Name string `json:"name" example:"German"`
}
