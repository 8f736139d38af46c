package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"nmtd/internal/common/fsutil"
	"nmtd/internal/config"
	"nmtd/internal/convert"
	"nmtd/internal/engine"
	"nmtd/internal/fetch"
	"nmtd/internal/httpapi"
	"nmtd/internal/manager"
	"nmtd/internal/registry"
	"nmtd/internal/tokenize"
	"nmtd/pkg/types"
)

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nmtd",
		Short:         "Machine translation daemon: model lifecycle and translate API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}

	f := root.Flags()
	f.String("addr", envStr("NMTD_ADDR", ":8080"), "HTTP listen address, e.g. :8080")
	f.String("config", envStr("NMTD_CONFIG", ""), "Optional config file (.yaml, .json or .toml)")
	f.String("data-dir", envStr("NMTD_DATA_DIR", "~/models/nmt"), "Directory for downloaded and converted models")
	f.String("device", envStr("NMTD_DEVICE", "auto"), "Compute device: auto|cpu|cuda")
	f.Int("default-model", envInt("NMTD_DEFAULT_MODEL", -1), "Catalog index loaded on first use (-1 = built-in default)")
	f.String("bpe-tool", envStr("NMTD_BPE_TOOL", "subword-nmt"), "BPE segmentation binary")
	f.String("spm-tool", envStr("NMTD_SPM_TOOL", "spm_encode"), "SentencePiece segmentation binary")
	f.String("convert-tool", envStr("NMTD_CONVERT_TOOL", convert.DefaultTool), "Weights conversion binary")
	f.String("engine-runner", envStr("NMTD_ENGINE_RUNNER", ""), "Inference runner binary (empty disables inference)")
	f.Int64("translate-timeout-sec", 0, "Per-request translate timeout in seconds (0 disables)")
	f.Int64("max-body-bytes", 0, "Maximum JSON request body size (0 = 1 MiB default)")
	f.Bool("cors", false, "Enable CORS middleware")
	f.StringSlice("cors-origin", nil, "Allowed CORS origins")
	f.String("log-level", envStr("NMTD_LOG_LEVEL", "info"), "Log level: debug|info|warn|error")

	return root
}

// resolveConfig merges the optional config file under explicit flags:
// a flag changed on the command line always wins over the file.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	f := cmd.Flags()
	var cfg config.Config
	if path, _ := f.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if f.Changed("addr") || cfg.Addr == "" {
		cfg.Addr, _ = f.GetString("addr")
	}
	if f.Changed("data-dir") || cfg.DataDir == "" {
		cfg.DataDir, _ = f.GetString("data-dir")
	}
	if f.Changed("device") || cfg.Device == "" {
		cfg.Device, _ = f.GetString("device")
	}
	if idx, _ := f.GetInt("default-model"); idx >= 0 && (f.Changed("default-model") || cfg.DefaultModelIndex == nil) {
		cfg.DefaultModelIndex = &idx
	}
	if f.Changed("bpe-tool") || cfg.BPETool == "" {
		cfg.BPETool, _ = f.GetString("bpe-tool")
	}
	if f.Changed("spm-tool") || cfg.SPMTool == "" {
		cfg.SPMTool, _ = f.GetString("spm-tool")
	}
	if f.Changed("convert-tool") || cfg.ConvertTool == "" {
		cfg.ConvertTool, _ = f.GetString("convert-tool")
	}
	if f.Changed("engine-runner") || cfg.EngineRunner == "" {
		cfg.EngineRunner, _ = f.GetString("engine-runner")
	}
	if f.Changed("translate-timeout-sec") {
		cfg.TranslateTimeoutSec, _ = f.GetInt64("translate-timeout-sec")
	}
	if f.Changed("max-body-bytes") {
		cfg.MaxBodyBytes, _ = f.GetInt64("max-body-bytes")
	}
	if f.Changed("cors") {
		cfg.CORSEnabled, _ = f.GetBool("cors")
	}
	if f.Changed("cors-origin") {
		cfg.CORSAllowedOrigins, _ = f.GetStringSlice("cors-origin")
	}
	if f.Changed("log-level") || cfg.LogLevel == "" {
		cfg.LogLevel, _ = f.GetString("log-level")
	}
	return cfg, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger(cfg.LogLevel)

	dataDir, err := fsutil.ExpandHome(cfg.DataDir)
	if err != nil {
		return err
	}
	if err := fsutil.EnsureDir(dataDir); err != nil {
		return err
	}

	reg := registry.Default()
	if cfg.DefaultModelIndex != nil {
		reg, err = registry.DefaultWithIndex(*cfg.DefaultModelIndex)
		if err != nil {
			return fmt.Errorf("default-model: %w", err)
		}
	}

	var eng engine.Engine
	if cfg.EngineRunner != "" {
		eng = engine.NewSubprocess(cfg.EngineRunner)
	} else {
		eng = engine.NewUnavailable("")
		log.Warn().Msg("no engine runner configured, translate requests will fail")
	}

	device := cfg.Device
	if device == "auto" {
		device = ""
	}

	svc := manager.New(manager.ServiceConfig{
		Registry:  reg,
		Engine:    eng,
		Fetcher:   fetch.New(log),
		Converter: convert.New(cfg.ConvertTool, log),
		Segmenters: func(spec types.ModelSpec, dd string) (tokenize.Segmenter, error) {
			if spec.Segmentation == types.SegmentationSentencePiece {
				return tokenize.NewSPMSegmenter(cfg.SPMTool, spec.SubwordPath(dd)), nil
			}
			return tokenize.NewBPESegmenter(cfg.BPETool, spec.SubwordPath(dd)), nil
		},
		DataDir: dataDir,
		Device:  device,
		Logger:  log,
	})
	defer svc.Close()

	httpapi.SetLogger(log)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetTranslateTimeoutSeconds(cfg.TranslateTimeoutSec)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSAllowedOrigins, cfg.CORSAllowedMethods, cfg.CORSAllowedHeaders)

	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	srv := &http.Server{Addr: cfg.Addr, Handler: httpapi.NewMux(svc)}
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("data_dir", dataDir).Str("device", svc.Device()).
			Msg("nmtd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancelBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
	}
	return nil
}
