// Command datagen generates a synthetic repair-shop dataset and either
// prints it, stores it as a blob snapshot, or pushes it into a record store.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"repaircore/internal/blob"
	"repaircore/internal/generator"
	"repaircore/internal/infra/persistence/postgres"
	"repaircore/internal/infra/persistence/sqlite"
	"repaircore/internal/observability"
	"repaircore/internal/sink"
)

var exitFunc = os.Exit

func main() {
	exitFunc(cli(os.Args[1:], os.Stdout, os.Stderr))
}

func cli(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("datagen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath    = fs.String("config", "", "path to generator config yaml (defaults apply when empty)")
		seed          = fs.Int64("seed", 0, "RNG seed override; 0 derives one from entropy")
		op            = fs.String("op", "generate", "operation: generate|push|dump")
		out           = fs.String("out", "", "output: file path for generate (default stdout), blob key for dump")
		workers       = fs.Int("workers", 8, "concurrent inserts per dependency group during push")
		verbose       = fs.Bool("v", false, "enable debug logging")
		metricsListen = fs.String("metrics-listen", "", "optional addr to serve Prometheus metrics on during the run")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metrics observability.MetricsRecorder = observability.NewExpvarMetricsRecorder("datagen")
	if *metricsListen != "" {
		registry := prometheus.NewRegistry()
		promMetrics, err := observability.NewPrometheusMetricsRecorder(registry)
		if err != nil {
			log.Error("metrics setup failed", "error", err)
			return 1
		}
		metrics = promMetrics
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		server := &http.Server{Addr: *metricsListen, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Warn("metrics server stopped", "error", err)
			}
		}()
		defer func() { _ = server.Close() }()
	}

	if err := run(ctx, *configPath, *seed, *op, *out, *workers, stdout, log, metrics); err != nil {
		log.Error("run failed", "op", *op, "error", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, configPath string, seed int64, op, out string, workers int, stdout io.Writer, log *slog.Logger, metrics observability.MetricsRecorder) error {
	switch op {
	case "generate", "push", "dump":
	default:
		return fmt.Errorf("unknown operation %q", op)
	}

	cfg := generator.DefaultConfig()
	if configPath != "" {
		loaded, err := generator.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Info("generating dataset", "seed", cfg.Seed, "persons", cfg.PersonCount, "suppliers", cfg.SupplierCount)

	gen, err := generator.New(cfg, generator.WithLogger(log), generator.WithMetrics(metrics))
	if err != nil {
		return err
	}
	dataset, err := gen.Generate(ctx)
	if err != nil {
		return err
	}

	switch op {
	case "generate":
		w := stdout
		if out != "" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			defer func() { _ = f.Close() }()
			w = f
		}
		return sink.WriteSnapshot(w, dataset)
	case "dump":
		store, err := blob.Open(ctx)
		if err != nil {
			return err
		}
		key := out
		if key == "" {
			key = fmt.Sprintf("snapshots/dataset-%d.json", cfg.Seed)
		}
		dumper := sink.NewDumper(store, sink.WithLogger(log), sink.WithMetrics(metrics))
		_, err = dumper.Dump(ctx, dataset, key, cfg.Seed)
		return err
	case "push":
		store, closeStore, err := openRecordStore(ctx)
		if err != nil {
			return err
		}
		defer closeStore()
		pusher := sink.NewPusher(store, sink.WithLogger(log), sink.WithMetrics(metrics), sink.WithWorkers(workers))
		return pusher.Push(ctx, dataset)
	default:
		return fmt.Errorf("unknown operation %q", op)
	}
}

// openRecordStore selects the push target from the environment.
//
//	REPAIRCORE_STORAGE_DRIVER: postgres|sqlite (default sqlite)
//	REPAIRCORE_POSTGRES_DSN: connection string when driver=postgres
//	REPAIRCORE_SQLITE_PATH: database file when driver=sqlite
func openRecordStore(ctx context.Context) (sink.RecordStore, func(), error) {
	driver := os.Getenv("REPAIRCORE_STORAGE_DRIVER")
	if driver == "" {
		driver = "sqlite"
	}
	switch driver {
	case "postgres":
		store, err := postgres.Open(ctx, os.Getenv("REPAIRCORE_POSTGRES_DSN"))
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case "sqlite":
		store, err := sqlite.Open(ctx, os.Getenv("REPAIRCORE_SQLITE_PATH"))
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %s", driver)
	}
}
