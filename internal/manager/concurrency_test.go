package manager

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"nmtd/pkg/types"
)

func TestConcurrentTranslatesNeverOverlapDecode(t *testing.T) {
	env := newTestEnv(t, nil)
	if resp := env.svc.Translate(context.Background(), types.TranslateRequest{Text: "warm up", SourceLang: "en"}); !resp.Success {
		t.Fatalf("warm-up translate failed: %s", resp.Error)
	}
	h := env.eng.lastHandle()

	const workers = 16
	const perWorker = 25
	var failures int32
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				resp := env.svc.Translate(context.Background(), types.TranslateRequest{
					Text: "hello concurrent world", SourceLang: "en",
				})
				if !resp.Success {
					atomic.AddInt32(&failures, 1)
				}
			}
		}()
	}
	wg.Wait()

	if failures != 0 {
		t.Errorf("%d translates failed", failures)
	}
	if got := atomic.LoadInt32(&h.maxInFlight); got != 1 {
		t.Errorf("max concurrent decodes = %d, want 1", got)
	}
	if got := atomic.LoadInt32(&h.decodes); got != workers*perWorker+1 {
		t.Errorf("decode calls = %d, want %d", got, workers*perWorker+1)
	}
}

func TestConcurrentSwitchAndTranslate(t *testing.T) {
	env := newTestEnv(t, nil)
	if resp := env.svc.Translate(context.Background(), types.TranslateRequest{Text: "warm up", SourceLang: "en"}); !resp.Success {
		t.Fatalf("warm-up translate failed: %s", resp.Error)
	}

	var failures int32
	var wg sync.WaitGroup
	done := make(chan struct{})

	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				resp := env.svc.Translate(context.Background(), types.TranslateRequest{
					Text: "hello", SourceLang: "en",
				})
				// A decode must never land on a handle that a switch
				// already closed.
				if !resp.Success {
					atomic.AddInt32(&failures, 1)
				}
			}
		}()
	}

	for i := 0; i < 10; i++ {
		if err := env.svc.SwitchModel(context.Background(), i%env.reg.Count()); err != nil {
			t.Errorf("switch %d: %v", i, err)
		}
	}
	close(done)
	wg.Wait()

	if failures != 0 {
		t.Errorf("%d translates failed during switching", failures)
	}
	env.eng.mu.Lock()
	defer env.eng.mu.Unlock()
	for i, h := range env.eng.handles {
		if got := atomic.LoadInt32(&h.maxInFlight); got > 1 {
			t.Errorf("handle %d saw %d concurrent decodes", i, got)
		}
	}
}
