package graph

import (
	"worldforge/internal/entity"
)

// Graph is an immutable adjacency view over a set of edges. Edges keep
// their direction but can be walked either way.
type Graph struct {
	edges []Edge
	adj   map[entity.Ref][]int
}

// New indexes edges by both endpoints.
func New(edges []Edge) *Graph {
	g := &Graph{
		edges: make([]Edge, len(edges)),
		adj:   make(map[entity.Ref][]int),
	}
	copy(g.edges, edges)
	for i, e := range g.edges {
		g.adj[e.Source] = append(g.adj[e.Source], i)
		if e.Target != e.Source {
			g.adj[e.Target] = append(g.adj[e.Target], i)
		}
	}
	return g
}

// Edges returns the number of edges in the graph.
func (g *Graph) Edges() int {
	return len(g.edges)
}

// Connections returns every edge touching ref, in insertion order.
func (g *Graph) Connections(ref entity.Ref) []Edge {
	idx := g.adj[ref]
	out := make([]Edge, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.edges[i])
	}
	return out
}

// CharacterConnections returns every edge touching the character.
func (g *Graph) CharacterConnections(characterID int) []Edge {
	return g.Connections(entity.Ref{Kind: entity.KindCharacter, ID: characterID})
}

// Node is an entity reached by a traversal and its hop distance from the root.
type Node struct {
	Ref      entity.Ref `json:"ref"`
	Distance int        `json:"distance"`
}

// Network is the neighbourhood of a root entity.
type Network struct {
	Root  entity.Ref `json:"root"`
	Depth int        `json:"depth"`
	Nodes []Node     `json:"nodes"`
	Edges []Edge     `json:"edges"`
}

// Network expands breadth-first from root up to depth hops. The root is
// always the first node. Every edge between two reached nodes is listed
// once, in discovery order.
func (g *Graph) Network(root entity.Ref, depth int) Network {
	if depth < 0 {
		depth = 0
	}
	n := Network{Root: root, Depth: depth, Nodes: []Node{{Ref: root}}, Edges: []Edge{}}
	dist := map[entity.Ref]int{root: 0}
	seenEdge := make(map[int]bool)
	frontier := []entity.Ref{root}

	for level := 0; level < depth && len(frontier) > 0; level++ {
		var next []entity.Ref
		for _, cur := range frontier {
			for _, i := range g.adj[cur] {
				other := g.edges[i].otherEnd(cur)
				if _, ok := dist[other]; !ok {
					dist[other] = level + 1
					n.Nodes = append(n.Nodes, Node{Ref: other, Distance: level + 1})
					next = append(next, other)
				}
				if !seenEdge[i] {
					seenEdge[i] = true
					n.Edges = append(n.Edges, g.edges[i])
				}
			}
		}
		frontier = next
	}

	// edges among the outermost nodes were never walked
	for _, cur := range frontier {
		for _, i := range g.adj[cur] {
			if seenEdge[i] {
				continue
			}
			if _, ok := dist[g.edges[i].otherEnd(cur)]; ok {
				seenEdge[i] = true
				n.Edges = append(n.Edges, g.edges[i])
			}
		}
	}
	return n
}

// Step is one hop of a path.
type Step struct {
	From    entity.Ref `json:"from"`
	To      entity.Ref `json:"to"`
	Edge    Edge       `json:"edge"`
	Forward bool       `json:"forward"`
}

// FindPath returns a shortest path from one entity to another. A path
// from an entity to itself is empty and found.
func (g *Graph) FindPath(from, to entity.Ref) ([]Step, bool) {
	if from == to {
		return []Step{}, true
	}

	visited := map[entity.Ref]visit{from: {edge: -1}}
	queue := []entity.Ref{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, i := range g.adj[cur] {
			other := g.edges[i].otherEnd(cur)
			if _, ok := visited[other]; ok {
				continue
			}
			visited[other] = visit{prev: cur, edge: i}
			if other == to {
				return g.buildPath(visited, from, to), true
			}
			queue = append(queue, other)
		}
	}
	return nil, false
}

type visit struct {
	prev entity.Ref
	edge int
}

func (g *Graph) buildPath(visited map[entity.Ref]visit, from, to entity.Ref) []Step {
	var rev []Step
	for cur := to; cur != from; {
		v := visited[cur]
		e := g.edges[v.edge]
		rev = append(rev, Step{From: v.prev, To: cur, Edge: e, Forward: e.Source == v.prev})
		cur = v.prev
	}
	path := make([]Step, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}
	return path
}

func (e Edge) otherEnd(ref entity.Ref) entity.Ref {
	if e.Source == ref {
		return e.Target
	}
	return e.Source
}
