package manager

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"nmtd/internal/engine"
	"nmtd/internal/langid"
)

// Service manages the loaded translation model and serves translate,
// switch and status calls. Construct it with New; the zero value is not
// usable.
type Service struct {
	cfg    ServiceConfig
	log    zerolog.Logger
	device string

	// mu serializes inference and the publish of a newly loaded model.
	// Nothing else runs under it: downloads, conversion and engine loads
	// all happen before it is taken.
	mu sync.Mutex

	// metaMu guards the fields below. Critical sections are pointer swaps
	// and reads only, so status never waits on an in-flight decode.
	metaMu  sync.Mutex
	cur     *LoadedModel
	state   State
	lastErr string

	// initMu serializes lazy default-model initialization so concurrent
	// first calls do not race to load the same model.
	initMu sync.Mutex
}

// New builds a Service from cfg, resolving the device and filling defaults.
func New(cfg ServiceConfig) *Service {
	if cfg.Detector == nil {
		cfg.Detector = langid.Default()
	}
	device := cfg.Device
	if device == "" {
		device = engine.DetectDevice()
	}
	return &Service{
		cfg:    cfg,
		log:    cfg.Logger,
		device: device,
		state:  StateUninitialized,
	}
}

// Device returns the device the service loads models on.
func (s *Service) Device() string { return s.device }

// Ready reports whether a model is loaded and serving.
func (s *Service) Ready() bool {
	s.metaMu.Lock()
	defer s.metaMu.Unlock()
	return s.state == StateReady
}

// Close releases the serving model, if any.
func (s *Service) Close() error {
	s.mu.Lock()
	s.metaMu.Lock()
	old := s.cur
	s.cur = nil
	s.state = StateUninitialized
	s.metaMu.Unlock()
	s.mu.Unlock()
	if old != nil {
		return old.Handle.Close()
	}
	return nil
}

func (s *Service) current() *LoadedModel {
	s.metaMu.Lock()
	defer s.metaMu.Unlock()
	return s.cur
}

func (s *Service) setState(state State, lastErr string) {
	s.metaMu.Lock()
	s.state = state
	s.lastErr = lastErr
	s.metaMu.Unlock()
}

// publish installs lm as the serving model and closes the previous one.
// Holding mu here is what guarantees no decode ever runs against a handle
// that is being replaced.
func (s *Service) publish(lm *LoadedModel) {
	s.mu.Lock()
	s.metaMu.Lock()
	old := s.cur
	s.cur = lm
	s.state = StateReady
	s.lastErr = ""
	s.metaMu.Unlock()
	s.mu.Unlock()
	if old != nil {
		if err := old.Handle.Close(); err != nil {
			s.log.Warn().Err(err).Str("model", old.Spec.Name).Msg("closing replaced model")
		}
	}
}

// ensureDefault lazily materializes and loads the registry's default model.
// It is a no-op once any model is serving.
func (s *Service) ensureDefault(ctx context.Context) error {
	if s.current() != nil {
		return nil
	}
	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.current() != nil {
		return nil
	}

	s.setState(StateInitializing, "")
	spec, err := s.cfg.Registry.Get(s.cfg.Registry.DefaultIndex())
	if err == nil {
		err = s.ensureMaterialized(ctx, spec)
	}
	var lm *LoadedModel
	if err == nil {
		lm, err = s.load(ctx, spec)
	}
	if err != nil {
		s.log.Error().Err(err).Msg("default model initialization failed")
		s.setState(StateFailed, err.Error())
		return err
	}
	s.publish(lm)
	s.log.Info().Str("model", lm.Spec.Name).Str("device", lm.Device).
		Str("compute_type", lm.Precision).Msg("default model ready")
	return nil
}
