package tokenize

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// bpeSegmenter shells out to a subword-nmt style apply-bpe tool with temp
// files for input and output. One process per call; the tool is stateless.
type bpeSegmenter struct {
	tool  string
	codes string
}

// NewBPESegmenter returns a Segmenter applying learned merge-based
// segmentation with the given merge table (codes file).
func NewBPESegmenter(tool, codesPath string) Segmenter {
	return &bpeSegmenter{tool: tool, codes: codesPath}
}

func (b *bpeSegmenter) Segment(ctx context.Context, lines []string) ([][]string, error) {
	in, err := os.CreateTemp("", "nmtd-bpe-in-*")
	if err != nil {
		return nil, ErrTool(b.tool, "temp input: "+err.Error())
	}
	defer os.Remove(in.Name())
	for _, line := range lines {
		if _, err := in.WriteString(line + "\n"); err != nil {
			in.Close()
			return nil, ErrTool(b.tool, "write input: "+err.Error())
		}
	}
	if err := in.Close(); err != nil {
		return nil, ErrTool(b.tool, "close input: "+err.Error())
	}

	out, err := os.CreateTemp("", "nmtd-bpe-out-*")
	if err != nil {
		return nil, ErrTool(b.tool, "temp output: "+err.Error())
	}
	outPath := out.Name()
	out.Close()
	defer os.Remove(outPath)

	cmd := exec.CommandContext(ctx, b.tool, "apply-bpe",
		"-c", b.codes,
		"--input", in.Name(),
		"--output", outPath,
	)
	if raw, err := cmd.CombinedOutput(); err != nil {
		return nil, ErrTool(b.tool, err.Error()+": "+strings.TrimSpace(string(raw)))
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		return nil, ErrTool(b.tool, "read output: "+err.Error())
	}
	return splitSegmentedLines(string(raw), len(lines), b.tool)
}

// splitSegmentedLines parses one whitespace-separated token sequence per line
// and checks the tool produced a row for every input line.
func splitSegmentedLines(raw string, want int, tool string) ([][]string, error) {
	trimmed := strings.TrimRight(raw, "\n")
	var rows []string
	if trimmed != "" {
		rows = strings.Split(trimmed, "\n")
	}
	if len(rows) != want {
		return nil, ErrTool(tool, fmt.Sprintf("unreadable output: expected %d lines, got %d", want, len(rows)))
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = strings.Fields(row)
	}
	return out, nil
}
