package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EgorLis/obs-mcp/internal/protodocs"
)

var splitDocsFlags struct {
	In  string
	Out string
}

var splitDocsCmd = &cobra.Command{
	Use:   "split-docs",
	Short: "Разложить protocol.json obs-websocket по категориям",
	RunE: func(cmd *cobra.Command, _ []string) error {
		paths, err := protodocs.Split(splitDocsFlags.In, splitDocsFlags.Out)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", p)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Protocol split complete!")
		return nil
	},
}

func init() {
	splitDocsCmd.Flags().StringVar(&splitDocsFlags.In, "in", "docs/protocol.json", "protocol description")
	splitDocsCmd.Flags().StringVar(&splitDocsFlags.Out, "out", "docs/protocol_split", "output directory")
}
