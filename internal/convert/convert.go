// Package convert produces the runtime-optimized model format from trained
// weights by shelling out to an external converter tool. Conversion is
// idempotent: an existing output directory is a fast no-op.
package convert

import (
	"context"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"nmtd/internal/common/fsutil"
)

// DefaultTool is the converter invoked when none is configured.
const DefaultTool = "ct2-opennmt-py-converter"

// convertError signals a failed model format conversion.
type convertError struct {
	model string
	msg   string
}

func (e convertError) Error() string { return "convert " + e.model + ": " + e.msg }

// IsConvertFailure reports whether err came from the model converter.
func IsConvertFailure(err error) bool {
	_, ok := err.(convertError)
	return ok
}

// Converter runs the external conversion tool.
type Converter struct {
	tool string
	log  zerolog.Logger
}

// New creates a Converter around the given tool binary; empty selects
// DefaultTool.
func New(tool string, log zerolog.Logger) *Converter {
	if tool == "" {
		tool = DefaultTool
	}
	return &Converter{tool: tool, log: log}
}

// Convert materializes the runtime model at outDir from the weights at
// modelPath, quantized per hint. An existing outDir short-circuits without
// re-converting.
func (c *Converter) Convert(ctx context.Context, modelPath, outDir, quantization string) error {
	if fsutil.PathExists(outDir) {
		c.log.Debug().Str("out", outDir).Msg("runtime model already present")
		return nil
	}
	c.log.Info().Str("model", modelPath).Str("out", outDir).Str("quantization", quantization).Msg("converting model")
	cmd := exec.CommandContext(ctx, c.tool,
		"--model_path", modelPath,
		"--output_dir", outDir,
		"--quantization", quantization,
	)
	if raw, err := cmd.CombinedOutput(); err != nil {
		return convertError{model: modelPath, msg: err.Error() + ": " + strings.TrimSpace(string(raw))}
	}
	return nil
}
