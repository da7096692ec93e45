// Package market builds an undirected company graph around a seed by
// repeatedly asking a peer lookup, and renders it as an interactive
// HTML map or a GEXF file for Gephi.
package market

import (
	"strings"

	"github.com/bizradar/bizradar/internal/similar"
)

const (
	// DefaultMaxDepth expands only the seed's direct peers.
	DefaultMaxDepth = 1
	// DefaultMaxPerCompany caps peers added per expanded node.
	DefaultMaxPerCompany = 8
)

// PeerFunc supplies peers for a company name.
type PeerFunc func(company string) []*similar.Peer

// Node is a company in the market graph.
type Node struct {
	Name    string
	Website string
	Seed    bool
}

// Edge links two companies by name. All edges carry the "similar"
// relation.
type Edge struct {
	Source string
	Target string
}

// Graph is an undirected company graph. Node and edge order is the
// insertion order, which keeps renders deterministic.
type Graph struct {
	nodes   map[string]*Node
	order   []string
	edges   []Edge
	edgeSet map[[2]string]struct{}
}

func NewGraph() *Graph {
	return &Graph{
		nodes:   make(map[string]*Node),
		edgeSet: make(map[[2]string]struct{}),
	}
}

// Build runs a breadth-first expansion from the seed. Each node at
// depth below maxDepth is expanded once, adding up to maxPerCompany
// peers and "similar" edges. Peer lookup failures leave the node a
// leaf.
func Build(seed string, getSimilar PeerFunc, maxDepth, maxPerCompany int) *Graph {
	g := NewGraph()

	seed = strings.TrimSpace(seed)
	if seed == "" {
		return g
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if maxPerCompany <= 0 {
		maxPerCompany = DefaultMaxPerCompany
	}

	g.addNode(&Node{Name: seed, Seed: true})

	type frontierItem struct {
		name  string
		depth int
	}
	frontier := []frontierItem{{name: seed}}
	seen := map[string]struct{}{seed: {}}

	for len(frontier) > 0 {
		item := frontier[0]
		frontier = frontier[1:]
		if item.depth >= maxDepth {
			continue
		}

		peers := getSimilar(item.name)
		if len(peers) > maxPerCompany {
			peers = peers[:maxPerCompany]
		}

		for _, peer := range peers {
			name := strings.TrimSpace(peer.Name)
			if name == "" || name == item.name {
				continue
			}

			g.addNode(&Node{Name: name, Website: strings.TrimSpace(peer.Website)})
			g.addEdge(item.name, name)

			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				frontier = append(frontier, frontierItem{name: name, depth: item.depth + 1})
			}
		}
	}

	return g
}

// addNode inserts the node or enriches an existing one with a website
// it was missing.
func (g *Graph) addNode(n *Node) {
	if existing, ok := g.nodes[n.Name]; ok {
		if existing.Website == "" && n.Website != "" {
			existing.Website = n.Website
		}
		return
	}
	g.nodes[n.Name] = n
	g.order = append(g.order, n.Name)
}

func (g *Graph) addEdge(a, b string) {
	key := edgeKey(a, b)
	if _, ok := g.edgeSet[key]; ok {
		return
	}
	g.edgeSet[key] = struct{}{}
	g.edges = append(g.edges, Edge{Source: a, Target: b})
}

// edgeKey normalizes the endpoint order so the graph stays undirected.
func edgeKey(a, b string) [2]string {
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.nodes[name])
	}
	return out
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

func (g *Graph) NodeCount() int { return len(g.order) }

func (g *Graph) EdgeCount() int { return len(g.edges) }

// Degrees returns edge counts per node name.
func (g *Graph) Degrees() map[string]int {
	deg := make(map[string]int, len(g.order))
	for _, name := range g.order {
		deg[name] = 0
	}
	for _, e := range g.edges {
		deg[e.Source]++
		deg[e.Target]++
	}
	return deg
}
