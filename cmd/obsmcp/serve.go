package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/EgorLis/obs-mcp/internal/config"
	"github.com/EgorLis/obs-mcp/internal/httpapi"
	"github.com/EgorLis/obs-mcp/internal/monitor"
	"github.com/EgorLis/obs-mcp/internal/obsclient"
	"github.com/EgorLis/obs-mcp/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить MCP-сервер (по умолчанию)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	client := newClient(cfg, log, obsclient.NewMetrics(reg))
	defer func() { _ = client.Close() }()

	if cfg.OBS.Password == "" {
		log.Warn("no obs-websocket password configured; set OBS_WEBSOCKET_PASSWORD if the server requires one")
	}
	if err := client.Connect(ctx); err != nil {
		log.Warn("could not connect to OBS at startup; will connect on first request",
			zap.String("url", client.URL()), zap.Error(err))
	}

	srv := tools.NewServer(client, version, log)

	if cfg.Monitor.Interval > 0 {
		mon := monitor.New(client, cfg.Monitor.Interval, log, reg)
		mon.Start(ctx)
		defer mon.Stop()
	}

	g, gctx := errgroup.WithContext(ctx)
	if cfg.HTTP.Addr == "" {
		log.Info("serving MCP over stdio", zap.String("version", version))
		g.Go(func() error {
			return srv.Run(gctx, &mcp.StdioTransport{})
		})
	} else {
		gin.SetMode(gin.ReleaseMode)
		hs := &http.Server{
			Addr: cfg.HTTP.Addr,
			Handler: httpapi.NewRouter(httpapi.Options{
				Server:   srv,
				OBS:      client,
				Gatherer: reg,
				Logger:   log,
			}),
		}
		log.Info("serving MCP over HTTP", zap.String("addr", cfg.HTTP.Addr), zap.String("version", version))
		g.Go(func() error {
			if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return hs.Shutdown(sctx)
		})
	}

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server stopped", zap.Error(err))
		return err
	}
	log.Info("shutting down")
	return nil
}

func newClient(cfg *config.Config, log *zap.Logger, m *obsclient.Metrics) *obsclient.Client {
	cc := cfg.ClientConfig()
	cc.Logger = log
	cc.Metrics = m
	return obsclient.New(cc)
}
