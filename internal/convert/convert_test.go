package convert

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestConvertNoOpWhenOutputExists(t *testing.T) {
	d := t.TempDir()
	out := filepath.Join(d, "model-ct2")
	if err := os.MkdirAll(out, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	// Tool path is bogus on purpose: it must never run.
	c := New("/definitely/not/a/converter", zerolog.Nop())
	if err := c.Convert(context.Background(), filepath.Join(d, "w.pt"), out, "int8"); err != nil {
		t.Fatalf("expected no-op, got %v", err)
	}
}

func TestConvertMissingToolIsTyped(t *testing.T) {
	d := t.TempDir()
	c := New("/definitely/not/a/converter", zerolog.Nop())
	err := c.Convert(context.Background(), filepath.Join(d, "w.pt"), filepath.Join(d, "out"), "int8")
	if err == nil || !IsConvertFailure(err) {
		t.Fatalf("expected typed convert failure, got %v", err)
	}
}

func TestConvertToolExitErrorIsTyped(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake tool")
	}
	d := t.TempDir()
	tool := filepath.Join(d, "fake-converter")
	if err := os.WriteFile(tool, []byte("#!/bin/sh\necho 'bad checkpoint' >&2; exit 1\n"), 0o755); err != nil {
		t.Fatalf("write tool: %v", err)
	}
	c := New(tool, zerolog.Nop())
	err := c.Convert(context.Background(), filepath.Join(d, "w.pt"), filepath.Join(d, "out"), "int8")
	if err == nil || !IsConvertFailure(err) {
		t.Fatalf("expected typed convert failure, got %v", err)
	}
}

func TestConvertRunsTool(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fake tool")
	}
	d := t.TempDir()
	tool := filepath.Join(d, "fake-converter")
	// Records its args and creates the output dir like the real converter.
	script := "#!/bin/sh\nmkdir -p \"$4\"\necho \"$@\" > " + filepath.Join(d, "args.txt") + "\n"
	if err := os.WriteFile(tool, []byte(script), 0o755); err != nil {
		t.Fatalf("write tool: %v", err)
	}
	out := filepath.Join(d, "model-ct2")
	c := New(tool, zerolog.Nop())
	if err := c.Convert(context.Background(), filepath.Join(d, "w.pt"), out, "int8"); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output dir missing: %v", err)
	}
	args, err := os.ReadFile(filepath.Join(d, "args.txt"))
	if err != nil {
		t.Fatalf("read args: %v", err)
	}
	for _, want := range []string{"--model_path", "--output_dir", "--quantization", "int8"} {
		if !strings.Contains(string(args), want) {
			t.Fatalf("args %q missing %q", args, want)
		}
	}
}
