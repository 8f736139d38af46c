package manager

import (
	"context"

	"nmtd/internal/engine"
	"nmtd/internal/tokenize"
	"nmtd/pkg/types"
)

// precisionLadder returns the compute types to try on device, best first.
// GPU loads walk down from mixed int8 to full float32; CPU only supports
// int8 in practice, so there is nothing to fall back to.
func precisionLadder(device string) []string {
	if device == engine.DeviceCUDA {
		return []string{"int8_float16", "float16", "float32"}
	}
	return []string{"int8"}
}

// load brings a materialized model into the engine, negotiating compute
// precision down the device's ladder. Only unsupported-precision errors
// trigger a fallback; any other load error aborts immediately. The
// returned model is not yet published.
func (s *Service) load(ctx context.Context, spec types.ModelSpec) (*LoadedModel, error) {
	var handle engine.Handle
	var precision string
	runtimeDir := spec.RuntimePath(s.cfg.DataDir)
	for _, p := range precisionLadder(s.device) {
		h, err := s.cfg.Engine.Load(ctx, runtimeDir, s.device, p)
		if err == nil {
			handle = h
			precision = p
			break
		}
		if !engine.IsUnsupportedPrecision(err) {
			metricModelLoads.WithLabelValues("error").Inc()
			return nil, err
		}
		s.log.Warn().Str("model", spec.Name).Str("compute_type", p).
			Str("device", s.device).Msg("compute type unsupported, falling back")
	}
	if handle == nil {
		metricModelLoads.WithLabelValues("error").Inc()
		return nil, engine.ErrEngine("no supported compute type for device " + s.device)
	}

	seg, err := s.cfg.Segmenters(spec, s.cfg.DataDir)
	if err != nil {
		_ = handle.Close()
		metricModelLoads.WithLabelValues("error").Inc()
		return nil, err
	}
	metricModelLoads.WithLabelValues("ok").Inc()
	return &LoadedModel{
		Spec:       spec,
		Handle:     handle,
		Device:     s.device,
		Precision:  precision,
		Normalizer: tokenize.NewNormalizer(seg, spec.UseLanguageTags),
	}, nil
}
