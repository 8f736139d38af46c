package manager

import "nmtd/pkg/types"

// Status reports the serving model, lifecycle state and the catalog.
// It never blocks on an in-flight decode.
func (s *Service) Status() types.StatusResponse {
	s.metaMu.Lock()
	cur := s.cur
	state := s.state
	lastErr := s.lastErr
	s.metaMu.Unlock()

	resp := types.StatusResponse{
		Device:             s.device,
		State:              string(state),
		LastError:          lastErr,
		AvailableModels:    s.cfg.Registry.Names(),
		SupportedLanguages: s.cfg.Registry.Languages(),
	}
	if cur != nil {
		resp.CurrentModel = cur.Spec.Name
		resp.Device = cur.Device
		resp.ComputeType = cur.Precision
	}
	return resp
}

// Models lists the catalog with default and loaded markers.
func (s *Service) Models() types.ModelsResponse {
	cur := s.current()
	specs := s.cfg.Registry.Specs()
	out := make([]types.ModelSummary, 0, len(specs))
	for i, spec := range specs {
		out = append(out, types.ModelSummary{
			Index:   i,
			Name:    spec.Name,
			Default: i == s.cfg.Registry.DefaultIndex(),
			Loaded:  cur != nil && cur.Spec.Name == spec.Name,
		})
	}
	return types.ModelsResponse{Models: out}
}
