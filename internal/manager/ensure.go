package manager

import (
	"context"

	"nmtd/pkg/types"
)

// ensureMaterialized brings a model's on-disk artifacts into place:
// weights archive, subword artifact and the converted runtime directory.
// Every step is idempotent, so re-materializing an already present model
// is cheap. No lock is held; a concurrent translate keeps serving the
// current model while this runs.
func (s *Service) ensureMaterialized(ctx context.Context, spec types.ModelSpec) error {
	dd := s.cfg.DataDir
	if err := s.cfg.Fetcher.Fetch(ctx, spec.WeightsURL, spec.WeightsPath(dd)); err != nil {
		return err
	}
	if spec.SubwordURL != "" {
		if err := s.cfg.Fetcher.Fetch(ctx, spec.SubwordURL, spec.SubwordPath(dd)); err != nil {
			return err
		}
	}
	return s.cfg.Converter.Convert(ctx, spec.WeightsPath(dd), spec.RuntimePath(dd), spec.PrecisionHint)
}
