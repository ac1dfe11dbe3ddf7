package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/EgorLis/obs-mcp/internal/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Список MCP-инструментов и запросов OBS за ними",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, t := range tools.Catalog() {
			fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, t.RequestType, t.Description)
		}
		return w.Flush()
	},
}
