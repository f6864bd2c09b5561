// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/citegraph/internal/graph"
	"github.com/pdiddy/citegraph/internal/store"
)

// Listing is the flat node/edge view of a distilled graph used by the
// YAML and JSON exports.
type Listing struct {
	Nodes []graph.Node       `json:"nodes" yaml:"nodes"`
	Edges []store.StoredEdge `json:"edges" yaml:"edges"`
}

// WriteYAML writes the listing as YAML.
func WriteYAML(w io.Writer, l Listing) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return nil
}

// WriteJSON writes the listing as indented JSON.
func WriteJSON(w io.Writer, l Listing) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
