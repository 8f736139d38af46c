package engine

import "context"

// unavailableEngine fails every load with a clear message. It is selected
// when no runner binary is configured, so binaries without an inference
// runtime still start and answer status requests instead of crashing.
type unavailableEngine struct {
	reason string
}

// NewUnavailable returns an Engine whose loads always fail with reason.
func NewUnavailable(reason string) Engine {
	if reason == "" {
		reason = "no inference runner configured"
	}
	return &unavailableEngine{reason: reason}
}

func (e *unavailableEngine) Load(ctx context.Context, modelDir, device, precision string) (Handle, error) {
	return nil, ErrEngine(e.reason)
}
