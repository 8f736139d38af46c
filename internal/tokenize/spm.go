package tokenize

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// spmSegmenter shells out to an spm_encode style tool producing unigram
// pieces, feeding lines on stdin and reading one piece sequence per line from
// stdout.
type spmSegmenter struct {
	tool  string
	model string
}

// NewSPMSegmenter returns a Segmenter applying unigram-piece segmentation
// with the given SentencePiece model file.
func NewSPMSegmenter(tool, modelPath string) Segmenter {
	return &spmSegmenter{tool: tool, model: modelPath}
}

func (s *spmSegmenter) Segment(ctx context.Context, lines []string) ([][]string, error) {
	var in bytes.Buffer
	for _, line := range lines {
		in.WriteString(line)
		in.WriteByte('\n')
	}

	cmd := exec.CommandContext(ctx, s.tool,
		"--model="+s.model,
		"--output_format=piece",
	)
	cmd.Stdin = &in
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, ErrTool(s.tool, err.Error()+": "+strings.TrimSpace(stderr.String()))
	}
	return splitSegmentedLines(out.String(), len(lines), s.tool)
}
