// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citegraph CLI, which turns a
// bibliographic corpus into a distilled citation graph.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the citegraph CLI.
var rootCmd = &cobra.Command{
	Use:   "citegraph",
	Short: "Distill a bibliographic corpus into its citation graph core",
	Long: `citegraph builds an undirected citation graph from corpus metadata and
per-paper bibliography files, deduplicating near-identical titles into
canonical identities, then distills the graph to the most central nodes
of its largest connected component.

Use "build" to run the pipeline end to end and "export" to reread a
stored graph as YAML or JSON.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citegraph.yaml or ~/.config/citegraph/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citegraph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citegraph"))
		}
	}

	viper.SetEnvPrefix("CITEGRAPH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
