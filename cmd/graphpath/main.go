package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samkhatri/graphpath/internal/api"
	"github.com/samkhatri/graphpath/internal/config"
	"github.com/samkhatri/graphpath/internal/runner"
)

func main() {
	cfgPath := flag.String("config", "configs/graphpath.yaml", "Path to YAML config")
	serve := flag.Bool("serve", false, "Start the HTTP query API after the batch run")
	watch := flag.Bool("watch", false, "Re-run the batch whenever the config file changes")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// ── Load config ──────────────────────────────────────────────────────────
	loader, err := config.NewLoader(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	cfg := loader.Config()
	if err := config.Validate(cfg); err != nil {
		slog.Error("config validation failed", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── Batch run ─────────────────────────────────────────────────────────────
	runBatch := func(cfg *config.Config) {
		results := runner.New(cfg.Batch).Run(ctx)
		for _, res := range results {
			printReport(cfg.Batch.SourceNode, res)
		}
	}
	runBatch(cfg)

	if !*serve && !*watch {
		return
	}

	// ── Watch mode ────────────────────────────────────────────────────────────
	if *watch {
		loader.OnChange(func(newCfg *config.Config) {
			if err := config.Validate(newCfg); err != nil {
				slog.Warn("re-run skipped: config invalid", "err", err)
				return
			}
			slog.Info("config changed, re-running batch")
			runBatch(newCfg)
		})
		stopWatch, err := loader.Watch()
		if err != nil {
			slog.Warn("config watcher unavailable (watch mode disabled)", "err", err)
		} else {
			defer stopWatch()
		}
	}

	// ── HTTP server ───────────────────────────────────────────────────────────
	var srv *http.Server
	if *serve {
		srv = &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      api.New(cfg.Batch.Seed),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		}
		go func() {
			slog.Info("server starting", "addr", cfg.Server.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("server error", "err", err)
				os.Exit(1)
			}
		}()
	}

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down…")

	if srv != nil {
		shutCtx, shutCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutCancel()
		_ = srv.Shutdown(shutCtx)
	}
	cancel()
	slog.Info("goodbye")
}

// printReport writes the per-node distance table for one processed
// graph to stdout: the recorded distance, or an unreachable marker.
func printReport(source string, res *runner.Result) {
	switch {
	case res.Err != nil:
		fmt.Printf("graph %s: error: %v\n", res.Name, res.Err)
	case res.Skipped:
		fmt.Println(res.Message)
	default:
		fmt.Printf("graph %s (source %q):\n", res.Name, source)
		for _, id := range res.Graph.Nodes() {
			if res.Distances.Reachable(id) {
				fmt.Printf("    node %s: distance %g\n", id, res.Distances[id])
			} else {
				fmt.Printf("    node %s: unreachable\n", id)
			}
		}
		fmt.Printf("    shortest-path tree written to %s\n", res.OutputPath)
	}
}
