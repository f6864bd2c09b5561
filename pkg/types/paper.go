// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the citegraph pipeline:
// corpus records, the two node identity spaces (CanonicalID, NodeLabel),
// resolved citation edges, and per-stage configuration.
package types

// PaperRecord holds one row of corpus metadata after filtering and
// title-sorting. The core pipeline reads records but never mutates them.
type PaperRecord struct {
	// Index is the record's position in the title-sorted sequence.
	// CanonicalIDs are drawn from this space.
	Index int `json:"index" yaml:"index"`

	// Title is the paper title as it appears in the metadata.
	Title string `json:"title" yaml:"title"`

	// UID is the corpus-level unique identifier (e.g. cord_uid).
	UID string `json:"uid" yaml:"uid"`

	// DOI is the digital object identifier, possibly empty.
	DOI string `json:"doi" yaml:"doi"`

	// Abstract is the paper abstract.
	Abstract string `json:"abstract" yaml:"abstract"`

	// PublishTime is the publication date string as found in the metadata.
	PublishTime string `json:"publish_time" yaml:"publish_time"`

	// Authors is the semicolon-separated author list, kept verbatim.
	Authors string `json:"authors" yaml:"authors"`

	// Journal is the publishing venue, possibly empty.
	Journal string `json:"journal" yaml:"journal"`

	// URL points at the paper's landing page.
	URL string `json:"url" yaml:"url"`

	// PMCSource is the preferred bibliography source path. May list
	// several paths separated by ";".
	PMCSource string `json:"pmc_source" yaml:"pmc_source"`

	// PDFSource is the fallback bibliography source path, same format.
	PDFSource string `json:"pdf_source" yaml:"pdf_source"`
}

// CanonicalID is the representative identity for a cluster of
// near-duplicate titles. Its value is always some PaperRecord's Index.
type CanonicalID int

// NodeLabel is the output-facing sequential id assigned to a node that
// survives distillation. It is a separate type from CanonicalID so the
// two identity spaces cannot be mixed by accident.
type NodeLabel int

// Edge is one resolved citation between two canonical identities.
// Self-edges (From == To) are possible and are not filtered.
type Edge struct {
	From CanonicalID `json:"from" yaml:"from"`
	To   CanonicalID `json:"to" yaml:"to"`
}
