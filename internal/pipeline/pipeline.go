// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes corpus ingestion, title deduplication,
// citation extraction, graph building, and distillation into one batch
// run. Every stage fully consumes its input before the next begins.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pdiddy/citegraph/internal/citations"
	"github.com/pdiddy/citegraph/internal/corpus"
	"github.com/pdiddy/citegraph/internal/dedupe"
	"github.com/pdiddy/citegraph/internal/graph"
	"github.com/pdiddy/citegraph/pkg/types"
)

// Summary holds counts from one pipeline run.
type Summary struct {
	Papers         int
	Titles         int
	Edges          int
	SourceFailures int
	Components     int
	ComponentSize  int
	FinalNodes     int
	FinalEdges     int
}

// Run executes the full pipeline and returns the distilled graph.
// Progress lines go to w. Structural failures (unreadable source in
// strict mode, empty graph) abort the run; per-record resolution misses
// are absorbed and counted.
func Run(ctx context.Context, cfg types.PipelineConfig, w io.Writer) (*graph.Graph, Summary, error) {
	cfg.ApplyDefaults()

	records, err := corpus.Load(cfg.Corpus)
	if err != nil {
		return nil, Summary{}, err
	}
	fmt.Fprintf(w, "loaded %d records from %s\n", len(records), cfg.Corpus.MetadataCSV)

	index := dedupe.BuildIndex(records)
	fmt.Fprintf(w, "indexed %d distinct titles\n", index.Len())

	dataRoot := cfg.Corpus.DataRoot
	if dataRoot == "" {
		dataRoot = filepath.Dir(cfg.Corpus.MetadataCSV)
	}
	extractor := citations.NewExtractor(index, dataRoot, cfg.Citations.Strict)

	builder := graph.NewBuilder(records)
	summary := Summary{Papers: len(records), Titles: index.Len()}

	for _, rec := range records {
		select {
		case <-ctx.Done():
			return nil, summary, ctx.Err()
		default:
		}

		from, ok := index.Resolve(rec.Title)
		if !ok {
			// Cannot happen: every record's title was just indexed.
			return nil, summary, fmt.Errorf("record %d title missing from index", rec.Index)
		}
		edges, err := extractor.Extract(rec, from)
		if err != nil {
			return nil, summary, err
		}
		for _, e := range edges {
			builder.Add(e)
		}
		summary.Edges += len(edges)
	}
	summary.SourceFailures = extractor.SourceFailures

	full := builder.Graph()
	fmt.Fprintf(w, "resolved %d citations into %d nodes, %d edges (%d sources unreadable)\n",
		summary.Edges, full.NodeCount(), full.EdgeCount(), summary.SourceFailures)

	res, err := graph.Distill(full, cfg.Distill)
	if err != nil {
		return nil, summary, err
	}
	summary.Components = res.Components
	summary.ComponentSize = res.ComponentSize
	summary.FinalNodes = res.Graph.NodeCount()
	summary.FinalEdges = res.Graph.EdgeCount()

	fmt.Fprintf(w, "distilled: largest of %d components has %d nodes, kept %d (edges: %d)\n",
		summary.Components, summary.ComponentSize, summary.FinalNodes, summary.FinalEdges)

	return res.Graph, summary, nil
}
