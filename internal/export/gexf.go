// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes a distilled citation graph for downstream
// consumers: GEXF 1.2 for graph tooling, YAML/JSON listings for
// everything else.
package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/pdiddy/citegraph/internal/graph"
)

// GEXF 1.2 document structure, per https://gexf.net/1.2draft/gexf-12draft-primer.pdf.
type gexfDoc struct {
	XMLName xml.Name  `xml:"gexf"`
	XMLNS   string    `xml:"xmlns,attr"`
	Version string    `xml:"version,attr"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfGraph struct {
	DefaultEdgeType string         `xml:"defaultedgetype,attr"`
	Attributes      gexfAttributes `xml:"attributes"`
	Nodes           []gexfNode     `xml:"nodes>node"`
	Edges           []gexfEdge     `xml:"edges>edge"`
}

type gexfAttributes struct {
	Class      string          `xml:"class,attr"`
	Attributes []gexfAttribute `xml:"attribute"`
}

type gexfAttribute struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type gexfNode struct {
	ID        string         `xml:"id,attr"`
	Label     string         `xml:"label,attr"`
	AttValues []gexfAttvalue `xml:"attvalues>attvalue"`
}

type gexfAttvalue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type gexfEdge struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
}

// nodeAttrTitles names the node attributes, in column order. "id" is the
// sequential relabel assigned at distillation; the GEXF node id itself
// stays the CanonicalID.
var nodeAttrTitles = []string{
	"title", "cord_uid", "doi", "abstract", "publish_time",
	"authors", "journal", "url", "id",
}

// WriteGEXF serializes g as a GEXF 1.2 undirected graph.
func WriteGEXF(w io.Writer, g *graph.Graph) error {
	doc := gexfDoc{
		XMLNS:   "http://www.gexf.net/1.2draft",
		Version: "1.2",
		Graph: gexfGraph{
			DefaultEdgeType: "undirected",
			Attributes:      gexfAttributes{Class: "node"},
		},
	}

	for i, title := range nodeAttrTitles {
		doc.Graph.Attributes.Attributes = append(doc.Graph.Attributes.Attributes, gexfAttribute{
			ID:    strconv.Itoa(i),
			Title: title,
			Type:  "string",
		})
	}

	for _, id := range g.NodeIDs() {
		n := g.Node(id)
		values := []string{
			n.Title, n.UID, n.DOI, n.Abstract, n.PublishTime,
			n.Authors, n.Journal, n.URL, strconv.Itoa(int(n.Label)),
		}
		node := gexfNode{
			ID:    strconv.Itoa(int(n.ID)),
			Label: n.Title,
		}
		for i, v := range values {
			node.AttValues = append(node.AttValues, gexfAttvalue{
				For:   strconv.Itoa(i),
				Value: v,
			})
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, node)
	}

	edgeID := 0
	for _, id := range g.NodeIDs() {
		for _, other := range g.Neighbors(id) {
			if other < id {
				continue
			}
			doc.Graph.Edges = append(doc.Graph.Edges, gexfEdge{
				ID:     strconv.Itoa(edgeID),
				Source: strconv.Itoa(int(id)),
				Target: strconv.Itoa(int(other)),
			})
			edgeID++
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing XML header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding GEXF: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
