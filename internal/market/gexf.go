package market

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// GEXF 1.2 writer for Gephi. Attributes with empty values are
// dropped rather than written as empty strings.

type gexfFile struct {
	XMLName xml.Name  `xml:"gexf"`
	XMLNS   string    `xml:"xmlns,attr"`
	Version string    `xml:"version,attr"`
	Graph   gexfGraph `xml:"graph"`
}

type gexfGraph struct {
	Mode        string          `xml:"mode,attr"`
	EdgeType    string          `xml:"defaultedgetype,attr"`
	AttrDecls   []gexfAttrDecls `xml:"attributes"`
	Nodes       []gexfNode      `xml:"nodes>node"`
	Edges       []gexfEdge      `xml:"edges>edge"`
}

type gexfAttrDecls struct {
	Class string         `xml:"class,attr"`
	Attrs []gexfAttrDecl `xml:"attribute"`
}

type gexfAttrDecl struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type gexfNode struct {
	ID       string          `xml:"id,attr"`
	Label    string          `xml:"label,attr"`
	AttValue []gexfAttrValue `xml:"attvalues>attvalue"`
}

type gexfAttrValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type gexfEdge struct {
	ID     string `xml:"id,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
	Label  string `xml:"label,attr"`
}

const (
	attrWebsite = "0"
	attrSeed    = "1"
)

// WriteGEXF saves the graph for analysis in Gephi.
func WriteGEXF(g *Graph, outPath string) error {
	doc := gexfFile{
		XMLNS:   "http://www.gexf.net/1.2draft",
		Version: "1.2",
		Graph: gexfGraph{
			Mode:     "static",
			EdgeType: "undirected",
			AttrDecls: []gexfAttrDecls{{
				Class: "node",
				Attrs: []gexfAttrDecl{
					{ID: attrWebsite, Title: "website", Type: "string"},
					{ID: attrSeed, Title: "seed", Type: "boolean"},
				},
			}},
		},
	}

	for _, n := range g.Nodes() {
		node := gexfNode{ID: n.Name, Label: n.Name}
		if n.Website != "" {
			node.AttValue = append(node.AttValue, gexfAttrValue{For: attrWebsite, Value: n.Website})
		}
		node.AttValue = append(node.AttValue, gexfAttrValue{For: attrSeed, Value: strconv.FormatBool(n.Seed)})
		doc.Graph.Nodes = append(doc.Graph.Nodes, node)
	}

	for i, e := range g.Edges() {
		doc.Graph.Edges = append(doc.Graph.Edges, gexfEdge{
			ID:     strconv.Itoa(i),
			Source: e.Source,
			Target: e.Target,
			Label:  "similar",
		})
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(f)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode gexf: %w", err)
	}
	return enc.Close()
}
