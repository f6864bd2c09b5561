// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citations resolves each record's parsed bibliography into
// canonical citation edges via exact title lookup.
package citations

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/citegraph/internal/dedupe"
	"github.com/pdiddy/citegraph/pkg/types"
)

// bibDocument mirrors the bibliography source file layout: a JSON object
// whose bib_entries member maps entry ids to cited-work metadata.
type bibDocument struct {
	BibEntries map[string]bibEntry `json:"bib_entries"`
}

type bibEntry struct {
	Title string `json:"title"`
}

// Extractor turns one PaperRecord at a time into zero or more edges.
type Extractor struct {
	index    *dedupe.Index
	dataRoot string
	strict   bool

	// SourceFailures counts bibliography sources that could not be
	// loaded or parsed in non-strict mode.
	SourceFailures int
}

// NewExtractor builds an Extractor resolving source paths against
// dataRoot. In strict mode an unreadable source aborts the run;
// otherwise it is counted and skipped.
func NewExtractor(index *dedupe.Index, dataRoot string, strict bool) *Extractor {
	return &Extractor{index: index, dataRoot: dataRoot, strict: strict}
}

// Extract resolves the record's bibliography into edges.
//
// Source selection prefers the PMC parse over the PDF parse; when a field
// lists several paths separated by ";" only the first is used. A record
// with no usable source contributes no edges, which is not an error.
//
// Cited titles are resolved by exact lookup only. A title that is merely
// similar to an indexed one produces no edge; that asymmetry with the
// dedup step is deliberate, unresolved near-duplicates are dropped
// rather than merged.
func (e *Extractor) Extract(rec types.PaperRecord, from types.CanonicalID) ([]types.Edge, error) {
	source := selectSource(rec)
	if source == "" {
		return nil, nil
	}

	titles, err := citedTitles(filepath.Join(e.dataRoot, source))
	if err != nil {
		if e.strict {
			return nil, fmt.Errorf("record %s: %w", rec.UID, err)
		}
		e.SourceFailures++
		return nil, nil
	}

	var edges []types.Edge
	for _, title := range titles {
		to, ok := e.index.Resolve(title)
		if !ok {
			continue
		}
		edges = append(edges, types.Edge{From: from, To: to})
	}
	return edges, nil
}

// selectSource picks the bibliography source path for a record, or ""
// when the record has none.
func selectSource(rec types.PaperRecord) string {
	source := rec.PMCSource
	if source == "" {
		source = rec.PDFSource
	}
	if source == "" {
		return ""
	}
	// Multi-valued fields separate paths with ";".
	if i := strings.IndexByte(source, ';'); i >= 0 {
		source = source[:i]
	}
	return strings.TrimSpace(source)
}

// citedTitles loads a bibliography source and returns the titles it cites.
func citedTitles(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bibliography source: %w", err)
	}
	var doc bibDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing bibliography source %s: %w", path, err)
	}

	titles := make([]string, 0, len(doc.BibEntries))
	for _, entry := range doc.BibEntries {
		titles = append(titles, entry.Title)
	}
	return titles, nil
}
