package engine

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"sync"
	"time"
)

// subprocessEngine spawns one runner process per loaded model. The runner
// speaks newline-delimited JSON on stdio: a ready line after startup, then
// one response line per request line.
type subprocessEngine struct {
	runner string
}

// NewSubprocess returns an Engine backed by the given runner binary.
func NewSubprocess(runner string) Engine {
	return &subprocessEngine{runner: runner}
}

type readyMessage struct {
	Ready                bool   `json:"ready"`
	Error                string `json:"error,omitempty"`
	UnsupportedPrecision bool   `json:"unsupported_precision,omitempty"`
}

type decodeRequest struct {
	Tokens []string `json:"tokens"`
	DecodeOptions
}

type decodeResponse struct {
	Success bool     `json:"success"`
	Tokens  []string `json:"tokens,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func (e *subprocessEngine) Load(ctx context.Context, modelDir, device, precision string) (Handle, error) {
	cmd := exec.Command(e.runner,
		"--model", modelDir,
		"--device", device,
		"--compute_type", precision,
	)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, ErrEngine("stdin pipe: " + err.Error())
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, ErrEngine("stdout pipe: " + err.Error())
	}
	if err := cmd.Start(); err != nil {
		return nil, ErrEngine("start runner: " + err.Error())
	}

	h := &subprocessHandle{
		cmd:   cmd,
		stdin: stdin,
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go h.readLoop(bufio.NewReader(stdout))
	ready, err := h.awaitReady(ctx)
	if err != nil {
		h.Close()
		return nil, err
	}
	if !ready.Ready {
		h.Close()
		if ready.UnsupportedPrecision {
			return nil, ErrUnsupportedPrecision(precision, device)
		}
		return nil, ErrEngine("runner rejected model: " + ready.Error)
	}
	return h, nil
}

type subprocessHandle struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	lines chan string
	done  chan struct{}

	mu     sync.Mutex
	closed bool
	stale  int // responses owed to calls abandoned on ctx cancellation
}

// readLoop is the sole reader of the runner's stdout. awaitReady and Decode
// receive lines from it, so a call abandoned on ctx cancellation never
// leaves a second reader on the stream; the lagging response is discarded
// by the next Decode to keep the line protocol in sync.
func (h *subprocessHandle) readLoop(r *bufio.Reader) {
	defer close(h.lines)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		select {
		case h.lines <- strings.TrimSpace(line):
		case <-h.done:
			return
		}
	}
}

// awaitReady reads the startup line, honoring ctx cancellation.
func (h *subprocessHandle) awaitReady(ctx context.Context) (readyMessage, error) {
	select {
	case line, ok := <-h.lines:
		if !ok {
			return readyMessage{}, ErrEngine("runner exited before ready")
		}
		var msg readyMessage
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			return readyMessage{}, ErrEngine("malformed ready line: " + err.Error())
		}
		return msg, nil
	case <-ctx.Done():
		return readyMessage{}, ctx.Err()
	}
}

func (h *subprocessHandle) Decode(ctx context.Context, tokens []string, opts DecodeOptions) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrEngine("decode on closed handle")
	}
	payload, err := json.Marshal(decodeRequest{Tokens: tokens, DecodeOptions: opts})
	if err != nil {
		return nil, ErrEngine("marshal request: " + err.Error())
	}
	if _, err := h.stdin.Write(append(payload, '\n')); err != nil {
		return nil, ErrEngine("write request: " + err.Error())
	}

	for {
		select {
		case line, ok := <-h.lines:
			if !ok {
				return nil, ErrEngine("runner closed stdout")
			}
			if h.stale > 0 {
				h.stale--
				continue
			}
			var resp decodeResponse
			if err := json.Unmarshal([]byte(line), &resp); err != nil {
				return nil, ErrEngine("malformed response: " + err.Error())
			}
			if !resp.Success {
				return nil, ErrEngine("decode failed: " + resp.Error)
			}
			return resp.Tokens, nil
		case <-ctx.Done():
			h.stale++
			return nil, ctx.Err()
		}
	}
}

// Close shuts the runner down: closes stdin so the runner exits its read
// loop, then waits briefly before killing. Best effort.
func (h *subprocessHandle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true
	close(h.done)
	_ = h.stdin.Close()
	done := make(chan error, 1)
	go func() { done <- h.cmd.Wait() }()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		_ = h.cmd.Process.Kill()
		<-done
	}
	return nil
}
