package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/beamplot/internal/adapters/csvload"
	"github.com/okian/beamplot/internal/adapters/repository"
	app "github.com/okian/beamplot/internal/app"
	"github.com/okian/beamplot/internal/config"
	"github.com/okian/beamplot/pkg/logger"
	"github.com/okian/beamplot/pkg/metrics"
)

// Metrics server timeout constants.
const (
	readHeaderTimeout = 5 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Expose Prometheus metrics when configured.
	if cfg.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.MetricsAddr)
	}

	datasets, err := discoverDatasets(cfg.InputDir, cfg.InputExt)
	if err != nil {
		log.Error(ctx, "failed to scan input directory", logger.String("dir", cfg.InputDir), logger.Error(err))
		return
	}
	if len(datasets) == 0 {
		log.Warn(ctx, "no datasets found", logger.String("dir", cfg.InputDir), logger.String("ext", cfg.InputExt))
		return
	}

	loader := csvload.NewLoader()

	// Each dataset becomes its own run directory, numbered from the
	// configured starting run.
	for i, path := range datasets {
		if ctx.Err() != nil {
			log.Warn(ctx, "interrupted, stopping")
			return
		}

		runNumber := cfg.RunNumber + i
		log.Info(ctx, "processing dataset",
			logger.String("path", path),
			logger.Int("run_number", runNumber),
		)

		store := repository.NewHitStore()
		n, err := loader.LoadFile(ctx, path, store)
		if err != nil {
			log.Error(ctx, "failed to load dataset", logger.String("path", path), logger.Error(err))
			continue
		}
		metrics.Get().SetDatasetSize(n, store.EventCount(ctx))

		svc := app.New(
			app.WithLogger(log),
			app.WithResultsDir(cfg.ResultsDir),
			app.WithRunNumber(runNumber),
			app.WithLayers(cfg.Layers),
			app.WithGrid(cfg.GridRows, cfg.GridCols),
			app.WithBinSteps(cfg.ShowerBinStep, cfg.LayerBinStep, cfg.ChannelBinStep),
			app.WithHeatmapLog(cfg.HeatmapLog),
			app.WithWorkerCount(cfg.WorkerCount),
			app.WithQueueSize(cfg.QueueSize),
		)
		if err := svc.Run(ctx, store); err != nil {
			log.Error(ctx, "run failed", logger.String("path", path), logger.Error(err))
		}
	}

	log.Info(ctx, "all datasets processed", logger.Int("datasets", len(datasets)))
}

// discoverDatasets lists the input files carrying the dataset extension,
// in lexical order so run numbering is stable.
func discoverDatasets(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// serveMetrics exposes the custom registry on /metrics until ctx ends.
func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), readHeaderTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Get().Info(ctx, "serving metrics", logger.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Get().Error(ctx, "metrics server failed", logger.Error(err))
	}
}
