package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/EgorLis/obs-mcp/internal/config"
	"github.com/EgorLis/obs-mcp/internal/logging"
)

// version подставляется при сборке: -ldflags "-X main.version=..."
var version = "dev"

type GlobalFlags struct {
	ConfigPath string
}

var globalFlags GlobalFlags

var rootCmd = &cobra.Command{
	Use:   "obsmcp",
	Short: "MCP-сервер для управления OBS Studio через obs-websocket",
	Long: `obsmcp публикует запросы obs-websocket v5 как MCP-инструменты.

Без подкоманды запускается serve: MCP по stdio (или по HTTP, если задан --http-addr).
Настройки: файл (--config), переменные OBSMCP_* и OBS_WEBSOCKET_URL /
OBS_WEBSOCKET_PASSWORD, флаги. Флаги важнее переменных, переменные важнее файла.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&globalFlags.ConfigPath, "config", "c", "", "path to config file (yaml, json, toml)")
	pf.String("obs-url", "", "obs-websocket URL (default ws://localhost:4455)")
	pf.String("obs-password", "", "obs-websocket password")
	pf.String("log-level", "", "log level: debug, info, warn, error")
	pf.String("log-file", "", "also write JSON logs to this file")
	pf.String("http-addr", "", "serve MCP over streamable HTTP on this address instead of stdio")
	pf.Duration("monitor", 0, "poll output status at this interval (0 disables)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(splitDocsCmd)
}

// setup читает конфигурацию и поднимает логгер.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(globalFlags.ConfigPath, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

const shutdownTimeout = 5 * time.Second
