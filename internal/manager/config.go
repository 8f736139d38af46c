package manager

import (
	"context"

	"github.com/rs/zerolog"

	"nmtd/internal/engine"
	"nmtd/internal/langid"
	"nmtd/internal/registry"
	"nmtd/internal/tokenize"
	"nmtd/pkg/types"
)

// ArtifactFetcher downloads a model artifact to dest, skipping the download
// when dest already exists.
type ArtifactFetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}

// ModelConverter converts downloaded weights into the engine's runtime
// format, skipping conversion when outDir already exists.
type ModelConverter interface {
	Convert(ctx context.Context, modelPath, outDir, quantization string) error
}

// SegmenterFactory builds the subword segmenter for a materialized model.
type SegmenterFactory func(spec types.ModelSpec, dataDir string) (tokenize.Segmenter, error)

// ServiceConfig wires the service's collaborators. Registry, Engine,
// Fetcher, Converter and Segmenters are required; the rest default.
type ServiceConfig struct {
	Registry   *registry.Registry
	Engine     engine.Engine
	Fetcher    ArtifactFetcher
	Converter  ModelConverter
	Segmenters SegmenterFactory

	// DataDir is the root directory for downloaded and converted models.
	DataDir string
	// Device forces "cpu" or "cuda"; empty means autodetect.
	Device string

	Detector *langid.Detector
	Logger   zerolog.Logger
}
