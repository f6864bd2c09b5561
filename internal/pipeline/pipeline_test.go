// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/citegraph/internal/graph"
	"github.com/pdiddy/citegraph/pkg/types"
)

// writeCorpus lays out a metadata CSV plus bibliography JSON files under
// a temp dir and returns the pipeline config pointing at it.
func writeCorpus(t *testing.T, metadata string, bibs map[string]string) types.PipelineConfig {
	t.Helper()
	root := t.TempDir()

	csvPath := filepath.Join(root, "metadata.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(metadata), 0o644))

	for rel, content := range bibs {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	return types.PipelineConfig{
		Corpus: types.CorpusConfig{MetadataCSV: csvPath},
	}
}

const header = "cord_uid,title,doi,abstract,publish_time,authors,journal,url,pmc_json_files,pdf_json_files\n"

func TestRunEndToEnd(t *testing.T) {
	// Three records: the first two have similar titles and must merge;
	// "Virus A in human populations" cites "Unrelated B ..." exactly,
	// "Virus A in human populations." cites nothing.
	metadata := header +
		`u1,Virus A in human populations,10.1/a,Abs A.,2020-02-01,"One, A.",J1,https://x/a,pmc/a.json,` + "\n" +
		`u2,Virus A in human populations.,10.1/a2,Abs A2.,2020-03-01,"One, A.",J1,https://x/a2,,` + "\n" +
		`u3,Unrelated B study of something else,10.1/b,Abs B.,2020-04-01,"Two, B.",J2,https://x/b,pmc/b.json,` + "\n"

	cfg := writeCorpus(t, metadata, map[string]string{
		"pmc/a.json": `{"bib_entries": {"BIBREF0": {"title": "Unrelated B study of something else"}}}`,
		"pmc/b.json": `{"bib_entries": {}}`,
	})

	var out bytes.Buffer
	g, summary, err := Run(context.Background(), cfg, &out)
	require.NoError(t, err)

	// Two nodes: the merged "Virus A" pair's canonical id and "Unrelated B".
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 3, summary.Papers)
	assert.Equal(t, 3, summary.Titles)
	assert.Equal(t, 1, summary.Edges)

	// Sorted titles: "Unrelated B..." (0), "Virus A..." (1), "Virus A....." (2).
	// The Virus A cluster resolves to index 1; Unrelated B to 0.
	citing := g.Node(1)
	require.NotNil(t, citing)
	assert.Equal(t, "Virus A in human populations", citing.Title)
	cited := g.Node(0)
	require.NotNil(t, cited)
	assert.Equal(t, "Unrelated B study of something else", cited.Title)
	assert.True(t, g.HasEdge(1, 0))

	// Relabel: ascending canonical order.
	assert.Equal(t, types.NodeLabel(0), cited.Label)
	assert.Equal(t, types.NodeLabel(1), citing.Label)
}

func TestRunEmptyGraph(t *testing.T) {
	metadata := header +
		`u1,A paper with no bibliography at all,,,2020-02-01,,,,,` + "\n"

	cfg := writeCorpus(t, metadata, nil)

	var out bytes.Buffer
	_, _, err := Run(context.Background(), cfg, &out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, graph.ErrEmptyGraph))
}

func TestRunLenientSourceFailure(t *testing.T) {
	metadata := header +
		`u1,First paper citing the second one,,,2020-02-01,,,,pmc/good.json,` + "\n" +
		`u2,Second paper with a broken source,,,2020-02-01,,,,pmc/broken.json,` + "\n"

	cfg := writeCorpus(t, metadata, map[string]string{
		"pmc/good.json":   `{"bib_entries": {"B0": {"title": "Second paper with a broken source"}}}`,
		"pmc/broken.json": `not json at all`,
	})

	var out bytes.Buffer
	g, summary, err := Run(context.Background(), cfg, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.SourceFailures)
	assert.Equal(t, 2, g.NodeCount())
}

func TestRunStrictSourceFailure(t *testing.T) {
	metadata := header +
		`u1,Only paper and its source is broken,,,2020-02-01,,,,pmc/broken.json,` + "\n"

	cfg := writeCorpus(t, metadata, map[string]string{
		"pmc/broken.json": `not json at all`,
	})
	cfg.Citations.Strict = true

	var out bytes.Buffer
	_, _, err := Run(context.Background(), cfg, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "u1")
}

func TestRunCancelledContext(t *testing.T) {
	metadata := header +
		`u1,A perfectly reasonable paper title,,,2020-02-01,,,,,` + "\n"

	cfg := writeCorpus(t, metadata, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, _, err := Run(ctx, cfg, &out)
	require.ErrorIs(t, err, context.Canceled)
}
