package tokenize

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// fakeSegmenter returns canned token rows or a fixed error.
type fakeSegmenter struct {
	rows [][]string
	err  error
}

func (f *fakeSegmenter) Segment(ctx context.Context, lines []string) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func TestEncodeTrimsAndSegments(t *testing.T) {
	seg := &fakeSegmenter{rows: [][]string{{"Hal@@", "lo"}}}
	n := NewNormalizer(seg, false)
	tokens, err := n.Encode(context.Background(), "  Hallo  ", "de")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !reflect.DeepEqual(tokens, []string{"Hal@@", "lo"}) {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
}

func TestEncodePrependsLanguageTag(t *testing.T) {
	seg := &fakeSegmenter{rows: [][]string{{"▁Hello"}}}
	n := NewNormalizer(seg, true)
	tokens, err := n.Encode(context.Background(), "Hello", "en")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !reflect.DeepEqual(tokens, []string{"en", "▁Hello"}) {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
}

func TestEncodeEmptyInput(t *testing.T) {
	n := NewNormalizer(&fakeSegmenter{}, true)
	tokens, err := n.Encode(context.Background(), "   ", "en")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(tokens) != 0 {
		t.Fatalf("expected empty token sequence, got %v", tokens)
	}
}

func TestEncodePropagatesToolFailure(t *testing.T) {
	seg := &fakeSegmenter{err: ErrTool("subword-nmt", "exit status 1")}
	n := NewNormalizer(seg, false)
	if _, err := n.Encode(context.Background(), "Hello", "en"); !IsToolFailure(err) {
		t.Fatalf("expected tool failure, got %v", err)
	}
}

func TestEncodeRejectsEmptySegmentation(t *testing.T) {
	seg := &fakeSegmenter{rows: [][]string{}}
	n := NewNormalizer(seg, false)
	if _, err := n.Encode(context.Background(), "Hello", "en"); !IsToolFailure(err) {
		t.Fatalf("expected tool failure on empty output, got %v", err)
	}
}

func TestDecodeStripsTagAndEOS(t *testing.T) {
	n := NewNormalizer(&fakeSegmenter{}, true)
	got := n.Decode([]string{"de", "▁Hallo", "▁Welt", "</s>"}, "de")
	if got != "Hallo Welt" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeWithoutTags(t *testing.T) {
	n := NewNormalizer(&fakeSegmenter{}, false)
	got := n.Decode([]string{"Hal@@", "lo", ",", "Welt", "!"}, "de")
	if got != "Hallo, Welt!" {
		t.Fatalf("got %q", got)
	}
}

func TestIsToolFailure(t *testing.T) {
	if IsToolFailure(errors.New("plain")) {
		t.Fatalf("plain error must not be a tool failure")
	}
	if !IsToolFailure(ErrTool("spm_encode", "boom")) {
		t.Fatalf("ErrTool must be a tool failure")
	}
}
