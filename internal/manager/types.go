package manager

import (
	"nmtd/internal/engine"
	"nmtd/internal/tokenize"
	"nmtd/pkg/types"
)

// State describes where the service is in its model lifecycle.
type State string

const (
	// StateUninitialized means no model has been loaded yet; the first
	// translate call will trigger lazy initialization of the default model.
	StateUninitialized State = "uninitialized"
	// StateInitializing means the default model is being materialized and
	// loaded for the first time.
	StateInitializing State = "initializing"
	// StateReady means a model is loaded and serving.
	StateReady State = "ready"
	// StateFailed means initialization failed and no model is serving.
	StateFailed State = "failed"
)

// LoadedModel is an immutable bundle of everything needed to serve one
// model: the negotiated engine handle, the text pipeline bound to the
// model's subword artifacts, and the metadata reported in results.
type LoadedModel struct {
	Spec       types.ModelSpec
	Handle     engine.Handle
	Device     string
	Precision  string
	Normalizer *tokenize.Normalizer
}
