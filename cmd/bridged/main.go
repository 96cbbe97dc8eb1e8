package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"modelbridge/internal/bridge"
	"modelbridge/internal/common/fsutil"
	"modelbridge/internal/config"
	"modelbridge/internal/httpapi"
	"modelbridge/internal/native"
	"modelbridge/internal/registry"
	"modelbridge/pkg/types"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		p := strings.TrimSpace(part)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func main() {
	// Flags with environment variable defaults
	addr := flag.String("addr", envOr("BRIDGED_ADDR", ":8080"), "HTTP listen address, e.g. :8080")
	configPath := flag.String("config", envOr("BRIDGED_CONFIG", ""), "Optional config file (.yaml/.json/.toml)")
	modelPath := flag.String("model", envOr("BRIDGED_MODEL", ""), "Path to the model file to back the bridges")
	tokenizerPath := flag.String("tokenizer", envOr("BRIDGED_TOKENIZER", ""), "Path to the tokenizer file")
	modelsDir := flag.String("models-dir", envOr("BRIDGED_MODELS_DIR", "~/models/llm"), "Directory to scan for model files")
	temperature := flag.Float64("temperature", 0.8, "Sampling temperature for generation")
	seqLen := flag.Int("seq-len", bridge.DefaultSeqLen, "Maximum tokens per generation run")
	threads := flag.Int("threads", 0, "Runtime worker threads (0=auto)")
	corsOrigins := flag.String("cors-origins", envOr("BRIDGED_CORS_ORIGINS", ""), "Comma-separated CORS origins (empty disables CORS)")
	logLevel := flag.String("log-level", envOr("BRIDGED_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")
	flag.Parse()

	// Structured logging for the daemon; libraries fall back to log.Printf
	// when no logger is installed.
	lvl, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
	httpapi.SetLogger(logger)
	bridge.SetLogger(logger)

	// A config file fills in anything the flags left at their zero value.
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
		if *modelPath == "" {
			*modelPath = cfg.ModelPath
		}
		if *tokenizerPath == "" {
			*tokenizerPath = cfg.TokenizerPath
		}
		if cfg.Addr != "" && *addr == ":8080" {
			*addr = cfg.Addr
		}
		if cfg.ModelsDir != "" {
			*modelsDir = cfg.ModelsDir
		}
		if cfg.Temperature != 0 {
			*temperature = cfg.Temperature
		}
		if cfg.SeqLen != 0 {
			*seqLen = cfg.SeqLen
		}
		if cfg.Threads != 0 {
			*threads = cfg.Threads
		}
	}
	if *threads == 0 {
		*threads = native.DefaultThreads()
	}
	if *modelPath != "" {
		if expanded, err := fsutil.ExpandHome(*modelPath); err == nil {
			*modelPath = expanded
		}
		if !fsutil.PathExists(*modelPath) {
			logger.Warn().Str("path", *modelPath).Msg("model file not found")
		}
	}

	// Scan the models directory so /models can list what is available.
	models, err := registry.LoadDir(*modelsDir)
	if err != nil {
		logger.Warn().Err(err).Str("dir", *modelsDir).Msg("model scan failed")
		models = []types.Model{}
	}

	// Construct the bridges. A missing runtime backing is not fatal; the
	// affected entry points fail fast and /readyz reports not ready.
	factory := native.DefaultFactory()
	cfg := native.Config{
		ModelPath:     *modelPath,
		TokenizerPath: *tokenizerPath,
		Temperature:   float32(*temperature),
		Threads:       *threads,
	}
	mb, err := bridge.NewModuleBridgeWith(factory, cfg)
	if err != nil {
		logger.Warn().Err(err).Msg("module runtime not constructed")
		mb = nil
	}
	gb, err := bridge.NewGenerationBridgeWith(factory, cfg, *seqLen)
	if err != nil {
		logger.Warn().Err(err).Msg("generation runtime not constructed")
		gb = nil
	}

	reg := bridge.NewRegistry()
	if err := reg.RegisterAll(bridge.EntryPoints(mb, gb)); err != nil {
		logger.Fatal().Err(err).Msg("entry point registration failed")
	}

	if origins := splitCSV(*corsOrigins); len(origins) > 0 {
		httpapi.SetCORSOptions(true, origins,
			[]string{"GET", "POST", "OPTIONS"},
			[]string{"Accept", "Content-Type", "X-Log-Level"})
	}

	// Base context canceled on shutdown so in-flight generations stop.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()
	httpapi.SetBaseContext(baseCtx)

	mux := httpapi.NewMux(httpapi.Options{
		Registry:      reg,
		Models:        models,
		ModelPath:     *modelPath,
		TokenizerPath: *tokenizerPath,
		Ready:         mb != nil || gb != nil,
	})
	srv := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		logger.Info().Str("addr", *addr).Str("models_dir", *modelsDir).Msg("bridged listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	cancelBase()
	if gb != nil {
		gb.Stop()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}
