// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CorpusConfig holds settings for metadata ingestion.
type CorpusConfig struct {
	// MetadataCSV is the path to the corpus metadata file (e.g.
	// "cord-2020-06-02/metadata.csv").
	MetadataCSV string `json:"metadata_csv" yaml:"metadata_csv"`

	// DataRoot is the directory bibliography source paths are resolved
	// against. Defaults to the directory containing MetadataCSV.
	DataRoot string `json:"data_root" yaml:"data_root"`

	// MinTitleLength drops records whose title is this many runes or
	// shorter; the corpus contains many short error titles (default 20).
	MinTitleLength int `json:"min_title_length" yaml:"min_title_length"`

	// PublishedAfter keeps only records whose publication date parses and
	// falls strictly after this date, format 2006-01-02 (default 2019-12-31).
	PublishedAfter string `json:"published_after" yaml:"published_after"`
}

// CitationConfig holds settings for bibliography loading and edge resolution.
type CitationConfig struct {
	// Strict makes an unreadable or unparseable bibliography source fatal
	// to the whole run. When false (the default) the failure is counted
	// per record and the run continues.
	Strict bool `json:"strict" yaml:"strict"`
}

// DistillConfig holds settings for graph reduction.
type DistillConfig struct {
	// TopK is the number of highest-centrality nodes to retain (default 500).
	TopK int `json:"top_k" yaml:"top_k"`

	// Damping is the PageRank damping factor (default 0.85).
	Damping float64 `json:"damping" yaml:"damping"`

	// Tolerance is the PageRank convergence threshold (default 1e-6).
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
}

// OutputConfig holds settings for the serialization targets.
type OutputConfig struct {
	// GEXFPath is where the distilled graph is written as GEXF 1.2
	// (default "citegraph.gexf").
	GEXFPath string `json:"gexf_path" yaml:"gexf_path"`

	// DBPath is where the distilled graph is persisted as SQLite
	// (default "citegraph.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// PipelineConfig groups all stage configurations for one run.
type PipelineConfig struct {
	Corpus    CorpusConfig   `json:"corpus" yaml:"corpus"`
	Citations CitationConfig `json:"citations" yaml:"citations"`
	Distill   DistillConfig  `json:"distill" yaml:"distill"`
	Output    OutputConfig   `json:"output" yaml:"output"`
}

// Default values applied by ApplyDefaults.
const (
	DefaultMinTitleLength = 20
	DefaultPublishedAfter = "2019-12-31"
	DefaultTopK           = 500
	DefaultDamping        = 0.85
	DefaultTolerance      = 1e-6
)

// ApplyDefaults fills zero-valued fields with pipeline defaults.
func (c *PipelineConfig) ApplyDefaults() {
	if c.Corpus.MinTitleLength <= 0 {
		c.Corpus.MinTitleLength = DefaultMinTitleLength
	}
	if c.Corpus.PublishedAfter == "" {
		c.Corpus.PublishedAfter = DefaultPublishedAfter
	}
	if c.Distill.TopK <= 0 {
		c.Distill.TopK = DefaultTopK
	}
	if c.Distill.Damping <= 0 || c.Distill.Damping >= 1 {
		c.Distill.Damping = DefaultDamping
	}
	if c.Distill.Tolerance <= 0 {
		c.Distill.Tolerance = DefaultTolerance
	}
	if c.Output.GEXFPath == "" {
		c.Output.GEXFPath = "citegraph.gexf"
	}
	if c.Output.DBPath == "" {
		c.Output.DBPath = "citegraph.db"
	}
}
