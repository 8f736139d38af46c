// Package engine abstracts the neural inference runtime behind small
// interfaces so the orchestration core never depends on a concrete runtime.
// The subprocess implementation drives an external runner speaking JSON over
// stdio; a stub fails fast when no runner is configured.
package engine

import (
	"context"
	"os/exec"
)

// Engine builds inference handles for converted runtime models.
type Engine interface {
	// Load builds a handle for the runtime model at modelDir on device with
	// the requested compute precision. An unsupported precision is reported
	// as a typed error distinguishable via IsUnsupportedPrecision.
	Load(ctx context.Context, modelDir, device, precision string) (Handle, error)
}

// Handle is a live, resource-heavy inference session for one loaded model.
// Handles are not safe for concurrent Decode calls; the caller serializes.
type Handle interface {
	// Decode runs batch-of-one beam search over the token sequence and
	// returns the top-1 hypothesis tokens.
	Decode(ctx context.Context, tokens []string, opts DecodeOptions) ([]string, error)
	// Close releases the resources backing the handle.
	Close() error
}

// DecodeOptions are the search controls passed to the runtime. They are
// policy constants of the orchestration core, not per-request knobs.
type DecodeOptions struct {
	BeamSize          int     `json:"beam_size"`
	MaxDecodingLength int     `json:"max_decoding_length"`
	LengthPenalty     float64 `json:"length_penalty"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
	NoRepeatNgramSize int     `json:"no_repeat_ngram_size"`
	MaxInputLength    int     `json:"max_input_length"`
	// TargetPrefix forces the hypothesis to start with these tokens
	// (the target-language tag for multilingual variants).
	TargetPrefix []string `json:"target_prefix,omitempty"`
}

// Devices the runtime can serve on.
const (
	DeviceCPU  = "cpu"
	DeviceCUDA = "cuda"
)

// DetectDevice picks cuda when an NVIDIA driver toolchain is visible on PATH,
// cpu otherwise.
func DetectDevice() string {
	if _, err := exec.LookPath("nvidia-smi"); err == nil {
		return DeviceCUDA
	}
	return DeviceCPU
}
