package manager

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"nmtd/internal/engine"
	"nmtd/internal/langid"
	"nmtd/internal/registry"
	"nmtd/internal/tokenize"
	"nmtd/pkg/types"
)

// fakeHandle echoes a fixed hypothesis (or the input tokens) and tracks
// concurrent Decode calls so tests can assert inference is serialized.
var errFetchBoom = errors.New("fetch weights: connection refused")

type fakeHandle struct {
	hyp       []string
	decodeErr error
	panicNext bool

	inFlight    int32
	maxInFlight int32
	decodes     int32
	closed      int32
}

func (h *fakeHandle) Decode(ctx context.Context, tokens []string, opts engine.DecodeOptions) ([]string, error) {
	n := atomic.AddInt32(&h.inFlight, 1)
	for {
		seen := atomic.LoadInt32(&h.maxInFlight)
		if n <= seen || atomic.CompareAndSwapInt32(&h.maxInFlight, seen, n) {
			break
		}
	}
	defer atomic.AddInt32(&h.inFlight, -1)
	atomic.AddInt32(&h.decodes, 1)
	if h.panicNext {
		h.panicNext = false
		panic("decoder state corrupted")
	}
	if atomic.LoadInt32(&h.closed) != 0 {
		return nil, engine.ErrEngine("decode on closed handle")
	}
	if h.decodeErr != nil {
		return nil, h.decodeErr
	}
	if h.hyp != nil {
		return h.hyp, nil
	}
	return tokens, nil
}

func (h *fakeHandle) Close() error {
	atomic.AddInt32(&h.closed, 1)
	return nil
}

// fakeEngine hands out a fresh handle per load and can reject particular
// compute types.
type fakeEngine struct {
	mu          sync.Mutex
	unsupported map[string]bool
	loadErr     error
	hyp         []string // hypothesis for handles created by Load
	decodeErr   error
	loads       []string // precisions attempted, in order
	handles     []*fakeHandle
}

func (e *fakeEngine) Load(ctx context.Context, modelDir, device, precision string) (engine.Handle, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.loads = append(e.loads, precision)
	if e.loadErr != nil {
		return nil, e.loadErr
	}
	if e.unsupported[precision] {
		return nil, engine.ErrUnsupportedPrecision(precision, device)
	}
	h := &fakeHandle{hyp: e.hyp, decodeErr: e.decodeErr}
	e.handles = append(e.handles, h)
	return h, nil
}

func (e *fakeEngine) lastHandle() *fakeHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.handles) == 0 {
		return nil
	}
	return e.handles[len(e.handles)-1]
}

type fakeFetcher struct {
	mu      sync.Mutex
	err     error
	fetched []string
}

func (f *fakeFetcher) Fetch(ctx context.Context, url, dest string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.fetched = append(f.fetched, url)
	return nil
}

type fakeConverter struct {
	mu        sync.Mutex
	err       error
	converted []string
}

func (c *fakeConverter) Convert(ctx context.Context, modelPath, outDir, quantization string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.converted = append(c.converted, outDir)
	return nil
}

// wordSegmenter splits on whitespace, standing in for a real subword tool.
type wordSegmenter struct{ err error }

func (s wordSegmenter) Segment(ctx context.Context, lines []string) ([][]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]string, len(lines))
	for i, line := range lines {
		out[i] = strings.Fields(line)
	}
	return out, nil
}

type testEnv struct {
	svc   *Service
	eng   *fakeEngine
	fetch *fakeFetcher
	conv  *fakeConverter
	reg   *registry.Registry
}

func newTestEnv(t *testing.T, mutate func(cfg *ServiceConfig)) *testEnv {
	t.Helper()
	env := &testEnv{
		eng:   &fakeEngine{},
		fetch: &fakeFetcher{},
		conv:  &fakeConverter{},
		reg:   registry.Default(),
	}
	cfg := ServiceConfig{
		Registry:  env.reg,
		Engine:    env.eng,
		Fetcher:   env.fetch,
		Converter: env.conv,
		Segmenters: func(spec types.ModelSpec, dataDir string) (tokenize.Segmenter, error) {
			return wordSegmenter{}, nil
		},
		DataDir:  t.TempDir(),
		Device:   engine.DeviceCPU,
		Detector: langid.Default(),
		Logger:   zerolog.Nop(),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	env.svc = New(cfg)
	t.Cleanup(func() { _ = env.svc.Close() })
	return env
}
