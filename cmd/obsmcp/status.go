package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EgorLis/obs-mcp/internal/obsclient"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Подключиться к OBS и показать версию и состояние выходов",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		client := newClient(cfg, log, nil)
		defer func() { _ = client.Close() }()

		ctx := cmd.Context()
		v, err := client.GetVersion(ctx)
		if err != nil {
			return fmt.Errorf("get version: %w", err)
		}

		report := map[string]any{
			"url":                 client.URL(),
			"obsVersion":          v.ObsVersion,
			"obsWebSocketVersion": v.ObsWebSocketVersion,
			"platform":            v.PlatformDescription,
		}
		outputs := map[string]any{}
		for name, get := range map[string]func(context.Context) (*obsclient.OutputStatus, error){
			"stream":        client.GetStreamStatus,
			"record":        client.GetRecordStatus,
			"virtualcam":    client.GetVirtualCamStatus,
			"replay_buffer": client.GetReplayBufferStatus,
		} {
			st, err := get(ctx)
			if err != nil {
				outputs[name] = err.Error()
				continue
			}
			outputs[name] = st
		}
		report["outputs"] = outputs

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}
