// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citegraph/internal/export"
	"github.com/pdiddy/citegraph/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored citation graph as YAML or JSON",
	Long: `Export reads the SQLite database written by "build" and prints the
node and edge listing to stdout in the requested format.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().String("db", "", "SQLite database path (default: output.db_path from config)")
	exportCmd.Flags().String("format", "yaml", "output format: yaml or json")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("output.db_path")
	}
	if dbPath == "" {
		dbPath = "citegraph.db"
	}
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("graph database %s not found: run \"citegraph build\" first", dbPath)
	}

	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	nodes, edges, err := s.Load(context.Background())
	if err != nil {
		return err
	}
	listing := export.Listing{Nodes: nodes, Edges: edges}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml":
		return export.WriteYAML(os.Stdout, listing)
	case "json":
		return export.WriteJSON(os.Stdout, listing)
	default:
		return fmt.Errorf("unknown format %q: use yaml or json", format)
	}
}
