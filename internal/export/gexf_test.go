// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/pdiddy/citegraph/internal/graph"
	"github.com/pdiddy/citegraph/pkg/types"
)

func smallGraph(t *testing.T) *graph.Graph {
	t.Helper()
	records := []types.PaperRecord{
		{Index: 0, Title: "Alpha paper", UID: "u0"},
		{Index: 1, Title: "Beta paper", UID: "u1"},
		{Index: 2, Title: "Gamma paper", UID: "u2"},
	}
	b := graph.NewBuilder(records)
	b.Add(types.Edge{From: 0, To: 1})
	b.Add(types.Edge{From: 1, To: 2})

	res, err := graph.Distill(b.Graph(), types.DistillConfig{
		TopK: 500, Damping: types.DefaultDamping, Tolerance: types.DefaultTolerance,
	})
	if err != nil {
		t.Fatalf("Distill: %v", err)
	}
	return res.Graph
}

func TestWriteGEXF(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGEXF(&buf, smallGraph(t)); err != nil {
		t.Fatalf("WriteGEXF: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, xml.Header) {
		t.Error("output missing XML declaration")
	}
	for _, want := range []string{
		`<gexf xmlns="http://www.gexf.net/1.2draft" version="1.2">`,
		`defaultedgetype="undirected"`,
		`<node id="0" label="Alpha paper">`,
		`<attvalue for="0" value="Alpha paper">`,
		`<edge id="0" source="0" target="1">`,
		`<edge id="1" source="1" target="2">`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}

	// The document must round-trip through the XML parser.
	var doc gexfDoc
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("reparsing output: %v", err)
	}
	if len(doc.Graph.Nodes) != 3 {
		t.Errorf("reparsed %d nodes, want 3", len(doc.Graph.Nodes))
	}
	if len(doc.Graph.Edges) != 2 {
		t.Errorf("reparsed %d edges, want 2", len(doc.Graph.Edges))
	}
	if len(doc.Graph.Attributes.Attributes) != len(nodeAttrTitles) {
		t.Errorf("reparsed %d attributes, want %d",
			len(doc.Graph.Attributes.Attributes), len(nodeAttrTitles))
	}
}

func TestWriteGEXFSequentialLabelAttribute(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGEXF(&buf, smallGraph(t)); err != nil {
		t.Fatalf("WriteGEXF: %v", err)
	}

	var doc gexfDoc
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("reparsing output: %v", err)
	}

	// Last attribute column is the sequential relabel id.
	idCol := len(nodeAttrTitles) - 1
	if doc.Graph.Attributes.Attributes[idCol].Title != "id" {
		t.Fatalf("attribute %d title = %q, want \"id\"", idCol, doc.Graph.Attributes.Attributes[idCol].Title)
	}
	for i, node := range doc.Graph.Nodes {
		got := node.AttValues[idCol].Value
		if got != string(rune('0'+i)) {
			t.Errorf("node %s sequential id = %q, want %d", node.ID, got, i)
		}
	}
}
