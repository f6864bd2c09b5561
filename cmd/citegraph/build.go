// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citegraph/internal/export"
	"github.com/pdiddy/citegraph/internal/pipeline"
	"github.com/pdiddy/citegraph/internal/store"
	"github.com/pdiddy/citegraph/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build and distill the citation graph from corpus metadata",
	Long: `Build loads the corpus metadata CSV, merges near-duplicate titles,
resolves each paper's bibliography into citation edges, and reduces the
resulting graph to the top-ranked nodes of its largest connected
component. The distilled graph is written as GEXF and persisted as
SQLite for later export.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("metadata", "", "path to the corpus metadata CSV (required)")
	buildCmd.Flags().String("data-root", "", "directory bibliography paths resolve against (default: metadata directory)")
	buildCmd.Flags().Int("min-title-length", 0, "drop records with titles this many characters or shorter")
	buildCmd.Flags().String("published-after", "", "keep only records published strictly after this date (2006-01-02 format)")
	buildCmd.Flags().Bool("strict", false, "treat an unreadable bibliography source as fatal")
	buildCmd.Flags().Int("top-k", 0, "number of highest-centrality nodes to retain")
	buildCmd.Flags().String("gexf", "", "GEXF output path")
	buildCmd.Flags().String("db", "", "SQLite output path")

	rootCmd.AddCommand(buildCmd)
}

// buildConfig merges config file values with command-line flags; flags
// win when set.
func buildConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.PipelineConfig{
		Corpus: types.CorpusConfig{
			MetadataCSV:    viper.GetString("corpus.metadata_csv"),
			DataRoot:       viper.GetString("corpus.data_root"),
			MinTitleLength: viper.GetInt("corpus.min_title_length"),
			PublishedAfter: viper.GetString("corpus.published_after"),
		},
		Citations: types.CitationConfig{
			Strict: viper.GetBool("citations.strict"),
		},
		Distill: types.DistillConfig{
			TopK:      viper.GetInt("distill.top_k"),
			Damping:   viper.GetFloat64("distill.damping"),
			Tolerance: viper.GetFloat64("distill.tolerance"),
		},
		Output: types.OutputConfig{
			GEXFPath: viper.GetString("output.gexf_path"),
			DBPath:   viper.GetString("output.db_path"),
		},
	}

	if v, _ := cmd.Flags().GetString("metadata"); v != "" {
		cfg.Corpus.MetadataCSV = v
	}
	if v, _ := cmd.Flags().GetString("data-root"); v != "" {
		cfg.Corpus.DataRoot = v
	}
	if v, _ := cmd.Flags().GetInt("min-title-length"); v > 0 {
		cfg.Corpus.MinTitleLength = v
	}
	if v, _ := cmd.Flags().GetString("published-after"); v != "" {
		cfg.Corpus.PublishedAfter = v
	}
	if v, _ := cmd.Flags().GetBool("strict"); v {
		cfg.Citations.Strict = true
	}
	if v, _ := cmd.Flags().GetInt("top-k"); v > 0 {
		cfg.Distill.TopK = v
	}
	if v, _ := cmd.Flags().GetString("gexf"); v != "" {
		cfg.Output.GEXFPath = v
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.Output.DBPath = v
	}

	cfg.ApplyDefaults()
	return cfg
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := buildConfig(cmd)
	if cfg.Corpus.MetadataCSV == "" {
		return fmt.Errorf("metadata CSV required: pass --metadata or set corpus.metadata_csv")
	}

	g, _, err := pipeline.Run(context.Background(), cfg, os.Stdout)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.Output.GEXFPath)
	if err != nil {
		return fmt.Errorf("creating GEXF output: %w", err)
	}
	defer f.Close()
	if err := export.WriteGEXF(f, g); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", cfg.Output.GEXFPath)

	s, err := store.Open(cfg.Output.DBPath)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Save(context.Background(), g); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", cfg.Output.DBPath)

	return nil
}
