package manager

import "nmtd/pkg/types"

// Detect classifies text with the indicator heuristic. It touches no shared
// state and works without any model loaded. The heuristic is a coarse
// indicator count, so confidence is always reported as medium.
func (s *Service) Detect(text string) types.DetectResponse {
	code := s.cfg.Detector.Detect(text)
	return types.DetectResponse{
		DetectedLanguage: code,
		LanguageName:     s.cfg.Registry.DisplayName(code),
		Confidence:       "medium",
	}
}
