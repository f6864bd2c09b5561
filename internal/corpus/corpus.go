// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus loads and filters the metadata CSV that describes the
// bibliographic corpus, producing the title-sorted record sequence the
// rest of the pipeline consumes.
package corpus

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/pdiddy/citegraph/pkg/types"
)

// Column names read from the metadata header. Any other columns are ignored.
const (
	colUID         = "cord_uid"
	colTitle       = "title"
	colDOI         = "doi"
	colAbstract    = "abstract"
	colPublishTime = "publish_time"
	colAuthors     = "authors"
	colJournal     = "journal"
	colURL         = "url"
	colPMCFiles    = "pmc_json_files"
	colPDFFiles    = "pdf_json_files"
)

// dateLayouts are tried in order when parsing publish_time.
var dateLayouts = []string{"2006-01-02", "2006-01", "2006"}

// Load reads the metadata CSV, drops records with short titles or
// publication dates at or before the configured cutoff, sorts the
// survivors ascending by title, and assigns each its Index.
func Load(cfg types.CorpusConfig) ([]types.PaperRecord, error) {
	f, err := os.Open(cfg.MetadataCSV)
	if err != nil {
		return nil, fmt.Errorf("opening metadata: %w", err)
	}
	defer f.Close()

	return Read(f, cfg)
}

// Read parses metadata CSV content from r. Split out from Load so tests
// can feed in-memory corpora.
func Read(r io.Reader, cfg types.CorpusConfig) ([]types.PaperRecord, error) {
	cutoff, err := time.Parse("2006-01-02", cfg.PublishedAfter)
	if err != nil {
		return nil, fmt.Errorf("parsing published_after %q: %w", cfg.PublishedAfter, err)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading metadata header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, required := range []string{colTitle, colPublishTime} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("metadata header missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var records []types.PaperRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading metadata row: %w", err)
		}

		title := field(row, colTitle)
		if len([]rune(title)) <= cfg.MinTitleLength {
			continue
		}

		published, ok := parseDate(field(row, colPublishTime))
		if !ok || !published.After(cutoff) {
			continue
		}

		records = append(records, types.PaperRecord{
			Title:       title,
			UID:         field(row, colUID),
			DOI:         field(row, colDOI),
			Abstract:    field(row, colAbstract),
			PublishTime: field(row, colPublishTime),
			Authors:     field(row, colAuthors),
			Journal:     field(row, colJournal),
			URL:         field(row, colURL),
			PMCSource:   field(row, colPMCFiles),
			PDFSource:   field(row, colPDFFiles),
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Title < records[j].Title
	})
	for i := range records {
		records[i].Index = i
	}

	return records, nil
}

// parseDate tries the known publish_time layouts.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
