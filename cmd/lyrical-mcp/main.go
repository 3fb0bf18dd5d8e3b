// Command lyrical-mcp is an MCP server exposing song-lyric analysis tools:
// syllable counting and rhyme lookup backed by the CMU Pronouncing Dictionary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/ForceConstant/lyrical-mcp/internal/analyze"
	"github.com/ForceConstant/lyrical-mcp/internal/cmudict"
	"github.com/ForceConstant/lyrical-mcp/internal/config"
	"github.com/ForceConstant/lyrical-mcp/internal/health"
	"github.com/ForceConstant/lyrical-mcp/internal/mcp"
	"github.com/ForceConstant/lyrical-mcp/internal/mcp/tools/probes"
	"github.com/ForceConstant/lyrical-mcp/internal/mcp/tools/rhymes"
	"github.com/ForceConstant/lyrical-mcp/internal/mcp/tools/syllables"
	"github.com/ForceConstant/lyrical-mcp/internal/observe"
)

// shutdownTimeout bounds graceful shutdown of HTTP listeners and telemetry.
const shutdownTimeout = 15 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	// ── CLI flags ──────────────────────────────────────────────────────────────
	configPath := flag.String("config", "", "path to the YAML configuration file (optional; defaults apply when empty)")
	flag.Parse()

	// ── Load configuration ────────────────────────────────────────────────────
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lyrical-mcp: %v\n", err)
			return 1
		}
	}

	// ── Logger ────────────────────────────────────────────────────────────────
	// Stdout belongs to the stdio MCP transport, so logs always go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Server.LogLevel.Level(),
	}))
	slog.SetDefault(logger)

	slog.Info("lyrical-mcp starting",
		"version", mcp.ServerVersion,
		"transport", transport(cfg),
		"log_level", cfg.Server.LogLevel,
	)

	// ── Signal context ────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ── Telemetry ─────────────────────────────────────────────────────────────
	otelShutdown, err := observe.InitProvider(ctx, observe.ProviderConfig{
		ServiceVersion: mcp.ServerVersion,
	})
	if err != nil {
		slog.Error("failed to initialise telemetry", "err", err)
		return 1
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := otelShutdown(sctx); err != nil {
			slog.Warn("telemetry shutdown error", "err", err)
		}
	}()

	// ── Pronunciation dictionary ──────────────────────────────────────────────
	dict, err := loadDictionary(cfg)
	if err != nil {
		slog.Error("failed to load dictionary", "err", err)
		return 1
	}

	metrics := observe.DefaultMetrics()
	metrics.DictionaryWords.Record(ctx, int64(dict.Len()))

	// ── Tool assembly ─────────────────────────────────────────────────────────
	counter := analyze.NewCounter(dict)

	var finderOpts []analyze.Option
	if cfg.Tools.MaxRhymes > 0 {
		finderOpts = append(finderOpts, analyze.WithMaxPerBucket(cfg.Tools.MaxRhymes))
	}
	finder := analyze.NewFinder(dict, finderOpts...)

	domainTools := append(syllables.Tools(counter), rhymes.Tools(finder)...)

	// Probe tools come first so health_check reports the full catalogue in
	// registration order.
	names := []string{"ping", "health_check"}
	for _, t := range domainTools {
		names = append(names, t.Definition.Name)
	}

	allTools := probes.Tools(probes.ServerInfo{
		Name:      mcp.ServerName,
		Version:   mcp.ServerVersion,
		ToolNames: names,
	})
	allTools = append(allTools, domainTools...)

	server, err := mcp.New(mcp.Options{Tools: allTools, Metrics: metrics})
	if err != nil {
		slog.Error("failed to build MCP server", "err", err)
		return 1
	}
	slog.Info("tools registered", "tools", server.ToolNames())

	// ── Serve ─────────────────────────────────────────────────────────────────
	g, gctx := errgroup.WithContext(ctx)

	if cfg.Server.AdminAddr != "" {
		g.Go(func() error {
			return serveAdmin(gctx, cfg.Server.AdminAddr, dict)
		})
	}

	g.Go(func() error {
		return serveMCP(gctx, cfg, server)
	})

	slog.Info("server ready")
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("run error", "err", err)
		return 1
	}

	slog.Info("goodbye")
	return 0
}

// loadDictionary builds the pronunciation dictionary from the configured file
// or falls back to the embedded subset.
func loadDictionary(cfg *config.Config) (*cmudict.Dict, error) {
	if cfg.Dictionary.Path == "" {
		dict, err := cmudict.Default()
		if err != nil {
			return nil, err
		}
		slog.Info("using embedded dictionary", "words", dict.Len())
		return dict, nil
	}

	dict, stats, err := cmudict.Load(cfg.Dictionary.Path)
	if err != nil {
		return nil, err
	}
	slog.Info("dictionary loaded",
		"path", cfg.Dictionary.Path,
		"words", stats.Words,
		"variants", stats.Variants,
		"skipped", stats.Skipped,
	)
	return dict, nil
}

// serveMCP runs the MCP server over the configured transport until ctx is
// cancelled.
func serveMCP(ctx context.Context, cfg *config.Config, server *mcp.Server) error {
	if cfg.Server.Transport != config.TransportStreamableHTTP {
		return server.Run(ctx)
	}

	srv := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: server.HTTPHandler(),
	}
	slog.Info("serving MCP over streamable-http", "addr", cfg.Server.ListenAddr)
	return serveHTTP(ctx, srv)
}

// serveAdmin runs the admin listener with health probes and Prometheus
// metrics until ctx is cancelled.
func serveAdmin(ctx context.Context, addr string, dict *cmudict.Dict) error {
	mux := http.NewServeMux()
	health.New(health.Dictionary(dict)).Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	slog.Info("admin listener started", "addr", addr)
	return serveHTTP(ctx, srv)
}

// serveHTTP runs srv and shuts it down gracefully once ctx is cancelled.
func serveHTTP(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return ctx.Err()
}

func transport(cfg *config.Config) config.Transport {
	if cfg.Server.Transport == "" {
		return config.TransportStdio
	}
	return cfg.Server.Transport
}
