// Package fetch downloads model artifacts from their remote locators to
// deterministic local paths. Fetches are idempotent: an existing destination
// is a fast no-op. Remote failures trip a circuit breaker so a flapping
// artifact host does not hammer every switch attempt.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"nmtd/internal/common/fsutil"
)

// defaultMaxArtifactBytes caps a single artifact download (8 GiB covers the
// largest catalog variant with headroom).
const defaultMaxArtifactBytes = int64(8) << 30

// fetchError signals a failed remote artifact fetch.
type fetchError struct {
	url string
	err error
}

func (e fetchError) Error() string { return "fetch " + e.url + ": " + e.err.Error() }
func (e fetchError) Unwrap() error { return e.err }

// ErrFetch wraps err as a failed fetch of url.
func ErrFetch(url string, err error) error { return fetchError{url: url, err: err} }

// IsFetchFailure reports whether err came from a remote artifact fetch.
func IsFetchFailure(err error) bool {
	_, ok := err.(fetchError)
	return ok
}

// Fetcher downloads artifacts over HTTP.
type Fetcher struct {
	client   *http.Client
	breaker  *gobreaker.CircuitBreaker
	log      zerolog.Logger
	maxBytes int64
}

// New creates a Fetcher. The client timeout is left at zero: callers bound
// downloads through the context.
func New(log zerolog.Logger) *Fetcher {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "artifact-fetch",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &Fetcher{
		client:   &http.Client{Timeout: 0},
		breaker:  cb,
		log:      log,
		maxBytes: defaultMaxArtifactBytes,
	}
}

// Fetch downloads url to dest unless dest already exists. The download goes
// to a temp file in the destination directory and is renamed into place, so a
// partial download never masquerades as a materialized artifact.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) error {
	if fsutil.PathExists(dest) {
		f.log.Debug().Str("dest", dest).Msg("artifact already present")
		return nil
	}
	if err := fsutil.EnsureDir(filepath.Dir(dest)); err != nil {
		return fetchError{url: url, err: err}
	}
	f.log.Info().Str("url", url).Str("dest", dest).Msg("downloading artifact")
	_, err := f.breaker.Execute(func() (interface{}, error) {
		return nil, f.download(ctx, url, dest)
	})
	if err != nil {
		return fetchError{url: url, err: err}
	}
	return nil
}

func (f *Fetcher) download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), filepath.Base(dest)+".part-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	n, err := io.Copy(tmp, io.LimitReader(resp.Body, f.maxBytes+1))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	if n > f.maxBytes {
		return fmt.Errorf("artifact exceeds %d byte limit", f.maxBytes)
	}
	return os.Rename(tmp.Name(), dest)
}
