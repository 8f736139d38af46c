package manager

import "context"

// SwitchModel materializes, loads and publishes the registry model at
// index. The serving model keeps handling translations until the new one
// is fully loaded; on any failure the serving model and the reported
// status are left exactly as they were.
func (s *Service) SwitchModel(ctx context.Context, index int) error {
	spec, err := s.cfg.Registry.Get(index)
	if err != nil {
		return err
	}
	s.log.Info().Int("index", index).Str("model", spec.Name).Msg("switching model")
	if err := s.ensureMaterialized(ctx, spec); err != nil {
		metricModelSwitches.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Str("model", spec.Name).Msg("model switch failed")
		return err
	}
	lm, err := s.load(ctx, spec)
	if err != nil {
		metricModelSwitches.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Str("model", spec.Name).Msg("model switch failed")
		return err
	}
	s.publish(lm)
	metricModelSwitches.WithLabelValues("ok").Inc()
	s.log.Info().Str("model", lm.Spec.Name).Str("compute_type", lm.Precision).Msg("model switched")
	return nil
}
