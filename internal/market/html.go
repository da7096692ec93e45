package market

import (
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"os"
	"path/filepath"
)

const (
	seedColor     = "#2b8a3e"
	peerColor     = "#1d4ed8"
	seedMarkerPx  = 22.0
	baseMarkerPx  = 8.0
	degreeScalePx = 12.0
)

var pageTemplate = template.Must(template.New("marketmap").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
</head>
<body>
<div id="market-map" style="width:100%;height:100vh;"></div>
<script>
var edgeTrace = {{.EdgeTrace}};
var nodeTrace = {{.NodeTrace}};
var layout = {
  title: {text: {{.Title}}},
  showlegend: false,
  margin: {l: 10, r: 10, t: 40, b: 10},
  xaxis: {showgrid: false, zeroline: false, visible: false},
  yaxis: {showgrid: false, zeroline: false, visible: false}
};
Plotly.newPlot("market-map", [edgeTrace, nodeTrace], layout);
</script>
</body>
</html>
`))

type pageData struct {
	Title     string
	EdgeTrace template.JS
	NodeTrace template.JS
}

type point struct {
	X float64
	Y float64
}

// layoutPositions places the seed at the origin and the remaining
// nodes evenly on a unit circle in insertion order. Deterministic by
// construction.
func layoutPositions(g *Graph) map[string]point {
	pos := make(map[string]point, g.NodeCount())

	var ring []*Node
	for _, n := range g.Nodes() {
		if n.Seed {
			pos[n.Name] = point{}
			continue
		}
		ring = append(ring, n)
	}

	for i, n := range ring {
		angle := 2 * math.Pi * float64(i) / float64(len(ring))
		pos[n.Name] = point{X: math.Cos(angle), Y: math.Sin(angle)}
	}
	return pos
}

// RenderHTML writes the graph as a self-contained interactive page
// using the Plotly CDN. Node size follows degree; the seed is larger
// and colored differently. An empty graph still produces a valid page.
func RenderHTML(g *Graph, outPath, title string) error {
	if title == "" {
		title = "Similar Market Map"
	}
	if g.NodeCount() == 0 {
		title += " (empty)"
	}

	pos := layoutPositions(g)

	edge := struct {
		X         []*float64 `json:"x"`
		Y         []*float64 `json:"y"`
		Mode      string     `json:"mode"`
		Line      any        `json:"line"`
		HoverInfo string     `json:"hoverinfo"`
	}{
		Mode:      "lines",
		Line:      map[string]any{"width": 1},
		HoverInfo: "none",
	}
	for _, e := range g.Edges() {
		a, b := pos[e.Source], pos[e.Target]
		// nil breaks the line between segments.
		edge.X = append(edge.X, f64(a.X), f64(b.X), nil)
		edge.Y = append(edge.Y, f64(a.Y), f64(b.Y), nil)
	}

	degrees := g.Degrees()
	maxDeg := 1
	for _, d := range degrees {
		if d > maxDeg {
			maxDeg = d
		}
	}

	node := struct {
		X         []float64 `json:"x"`
		Y         []float64 `json:"y"`
		Mode      string    `json:"mode"`
		HoverInfo string    `json:"hoverinfo"`
		Text      []string  `json:"text"`
		Marker    struct {
			Size    []float64 `json:"size"`
			Color   []string  `json:"color"`
			Opacity float64   `json:"opacity"`
		} `json:"marker"`
	}{
		Mode:      "markers",
		HoverInfo: "text",
	}
	node.Marker.Opacity = 0.9

	for _, n := range g.Nodes() {
		p := pos[n.Name]
		node.X = append(node.X, p.X)
		node.Y = append(node.Y, p.Y)

		label := n.Name
		if n.Website != "" {
			label += "\n" + n.Website
		}
		node.Text = append(node.Text, label)

		size := seedMarkerPx
		color := seedColor
		if !n.Seed {
			size = baseMarkerPx + degreeScalePx*float64(degrees[n.Name])/float64(maxDeg)
			color = peerColor
		}
		node.Marker.Size = append(node.Marker.Size, size)
		node.Marker.Color = append(node.Marker.Color, color)
	}

	edgeJSON, err := json.Marshal(edge)
	if err != nil {
		return fmt.Errorf("marshal edge trace: %w", err)
	}
	nodeJSON, err := json.Marshal(node)
	if err != nil {
		return fmt.Errorf("marshal node trace: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	return pageTemplate.Execute(f, pageData{
		Title:     title,
		EdgeTrace: template.JS(edgeJSON),
		NodeTrace: template.JS(nodeJSON),
	})
}

func f64(v float64) *float64 { return &v }
