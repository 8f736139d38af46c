package manager

import (
	"context"
	"fmt"
	"time"

	"nmtd/internal/engine"
	"nmtd/pkg/types"
)

// defaultDecodeOptions is the fixed decoding policy applied to every
// request. Requests cannot override it.
var defaultDecodeOptions = engine.DecodeOptions{
	BeamSize:          4,
	MaxDecodingLength: 256,
	LengthPenalty:     0.8,
	RepetitionPenalty: 1.1,
	NoRepeatNgramSize: 3,
	MaxInputLength:    512,
}

// Translate runs the full pipeline for one request: lazy initialization,
// language resolution, subword encoding, beam decoding and detokenization.
// It never returns an error; every failure is reported inside the response
// with Success=false and a classified ErrorKind.
func (s *Service) Translate(ctx context.Context, req types.TranslateRequest) (resp types.TranslateResponse) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("translate panicked")
			resp = s.failure(req, "", "", fmt.Errorf("internal error: %v", r))
		}
		status := "ok"
		if !resp.Success {
			status = resp.ErrorKind
		}
		metricTranslateRequests.WithLabelValues(status).Inc()
		metricTranslateDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())
	}()
	resp = s.translate(ctx, req)
	return resp
}

func (s *Service) translate(ctx context.Context, req types.TranslateRequest) types.TranslateResponse {
	if err := s.ensureDefault(ctx); err != nil {
		return s.failure(req, req.SourceLang, req.TargetLang, ErrNotInitialized(err.Error()))
	}

	src, tgt, err := s.resolveLanguages(req)
	if err != nil {
		return s.failure(req, src, tgt, err)
	}

	lm := s.current()
	tokens, err := lm.Normalizer.Encode(ctx, req.Text, src)
	if err != nil {
		return s.failure(req, src, tgt, err)
	}

	var text string
	if len(tokens) > 0 {
		hyp, derr := func() ([]string, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			// Re-read under the lock: a switch may have published a new
			// model since the encode above, and the decode must run
			// against the handle that is actually serving.
			lm = s.current()
			opts := defaultDecodeOptions
			if lm.Spec.UseLanguageTags {
				opts.TargetPrefix = []string{tgt}
			}
			return lm.Handle.Decode(ctx, tokens, opts)
		}()
		if derr != nil {
			return s.failure(req, src, tgt, derr)
		}
		text = lm.Normalizer.Decode(hyp, tgt)
	}

	return types.TranslateResponse{
		TranslatedText: text,
		SourceLang:     src,
		SourceLangName: s.cfg.Registry.DisplayName(src),
		TargetLang:     tgt,
		TargetLangName: s.cfg.Registry.DisplayName(tgt),
		ModelName:      lm.Spec.Name,
		DeviceUsed:     lm.Device,
		Success:        true,
	}
}

// resolveLanguages validates the requested pair and fills the blanks:
// a missing source falls back to detection (when enabled), a missing
// target is derived from the source's position in the service's language
// pair, defaulting to the pair's alternate for any other supported source.
func (s *Service) resolveLanguages(req types.TranslateRequest) (src, tgt string, err error) {
	reg := s.cfg.Registry
	src = req.SourceLang
	if src != "" && !reg.IsSupported(src) {
		return src, req.TargetLang, ErrInvalidLanguage(src)
	}
	if src == "" {
		if !req.AutoDetectEnabled() {
			return src, req.TargetLang, ErrAmbiguousSource()
		}
		src = s.cfg.Detector.Detect(req.Text)
	}

	tgt = req.TargetLang
	if tgt != "" && !reg.IsSupported(tgt) {
		return src, tgt, ErrInvalidLanguage(tgt)
	}
	if tgt == "" {
		def, alt := reg.Pair()
		switch src {
		case def:
			tgt = alt
		case alt:
			tgt = def
		default:
			tgt = alt
		}
	}
	return src, tgt, nil
}

func (s *Service) failure(req types.TranslateRequest, src, tgt string, err error) types.TranslateResponse {
	s.log.Warn().Err(err).Str("source", src).Str("target", tgt).Msg("translate failed")
	return types.TranslateResponse{
		SourceLang:     src,
		SourceLangName: s.cfg.Registry.DisplayName(src),
		TargetLang:     tgt,
		TargetLangName: s.cfg.Registry.DisplayName(tgt),
		Success:        false,
		Error:          err.Error(),
		ErrorKind:      kindOf(err),
	}
}
