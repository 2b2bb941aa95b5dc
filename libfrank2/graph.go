package libfrank2

import (
	"fmt"
	"io"

	"github.com/2x3systems/frank2/libfrank2/bitset"
)

// Graph is an undirected cubic graph as vertex -> neighbor set.
type Graph[B bitset.Bits[B]] struct {
	N   int
	Adj []B
}

// EdgeCount returns 3n/2; callers must only hand cubic graphs in.
func (g *Graph[B]) EdgeCount() int { return 3 * g.N / 2 }

// IsCubic reports whether every vertex has exactly three neighbors.
func (g *Graph[B]) IsCubic() bool {
	for v := 0; v < g.N; v++ {
		if g.Adj[v].Count() != 3 {
			return false
		}
	}
	return true
}

// AddEdge inserts the undirected edge {u, v}.
func (g *Graph[B]) AddEdge(u, v int) {
	g.Adj[u] = g.Adj[u].Add(v)
	g.Adj[v] = g.Adj[v].Add(u)
}

// RemoveEdge deletes the undirected edge {u, v}.
func (g *Graph[B]) RemoveEdge(u, v int) {
	g.Adj[u] = g.Adj[u].Remove(v)
	g.Adj[v] = g.Adj[v].Remove(u)
}

// NewGraph returns an edgeless graph on n vertices.
func NewGraph[B bitset.Bits[B]](n int) Graph[B] {
	return Graph[B]{N: n, Adj: make([]B, n)}
}

// EdgeNumbering gives every edge of a graph an index in 0..m-1.
// The numbering is canonical: vertices in ascending order, and for each
// vertex its neighbors with strictly larger index, in ascending order.
type EdgeNumbering struct {
	idx []int16
	n   int
	m   int
}

func NumberEdges[B bitset.Bits[B]](g *Graph[B]) EdgeNumbering {
	en := EdgeNumbering{
		idx: make([]int16, g.N*g.N),
		n:   g.N,
	}
	counter := 0
	for u := 0; u < g.N; u++ {
		for v := g.Adj[u].Next(u); v != -1; v = g.Adj[u].Next(v) {
			en.idx[u*g.N+v] = int16(counter)
			en.idx[v*g.N+u] = int16(counter)
			counter++
		}
	}
	en.m = counter
	return en
}

// Index returns the edge index of the adjacent pair (u, v).
func (en *EdgeNumbering) Index(u, v int) int { return int(en.idx[u*en.n+v]) }

// EdgeCount returns the number of edges that were numbered.
func (en *EdgeNumbering) EdgeCount() int { return en.m }

// DiGraph is a directed graph as forward plus reverse neighbor sets.
// Out and In are kept symmetric by AddArc/RemoveArc and Arcs equals the
// total out-degree.
type DiGraph[B bitset.Bits[B]] struct {
	N    int
	Out  []B
	In   []B
	Arcs int
}

func NewDiGraph[B bitset.Bits[B]](n int) *DiGraph[B] {
	return &DiGraph[B]{
		N:   n,
		Out: make([]B, n),
		In:  make([]B, n),
	}
}

func (d *DiGraph[B]) Reset() {
	var zero B
	for i := range d.Out {
		d.Out[i] = zero
		d.In[i] = zero
	}
	d.Arcs = 0
}

// AddArc inserts u -> v. Arcs miscounts if the arc already exists.
func (d *DiGraph[B]) AddArc(u, v int) {
	d.Out[u] = d.Out[u].Add(v)
	d.In[v] = d.In[v].Add(u)
	d.Arcs++
}

// RemoveArc deletes u -> v. Arcs miscounts if the arc does not exist.
func (d *DiGraph[B]) RemoveArc(u, v int) {
	d.Out[u] = d.Out[u].Remove(v)
	d.In[v] = d.In[v].Remove(u)
	d.Arcs--
}

// CopyFrom makes d a deep copy of src; both must be sized alike.
func (d *DiGraph[B]) CopyFrom(src *DiGraph[B]) {
	copy(d.Out, src.Out)
	copy(d.In, src.In)
	d.Arcs = src.Arcs
}

// WriteTo dumps the adjacency list, one vertex per line.
func (d *DiGraph[B]) WriteTo(w io.Writer) {
	for i := 0; i < d.N; i++ {
		fmt.Fprintf(w, "%d:", i)
		for nbr := d.Out[i].Next(-1); nbr != -1; nbr = d.Out[i].Next(nbr) {
			fmt.Fprintf(w, " %d", nbr)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}

// WriteDeletableEdges lists the arcs of d whose edge index is in deletable.
func WriteDeletableEdges[B bitset.Bits[B]](w io.Writer, d *DiGraph[B], en *EdgeNumbering, deletable B) {
	fmt.Fprint(w, "Deletable edges: ")
	for i := 0; i < d.N; i++ {
		for nbr := d.Out[i].Next(-1); nbr != -1; nbr = d.Out[i].Next(nbr) {
			if deletable.Contains(en.Index(i, nbr)) {
				fmt.Fprintf(w, "%d--%d ", i, nbr)
			}
		}
	}
	fmt.Fprintln(w)
}

// WriteGraph dumps an undirected adjacency list.
func WriteGraph[B bitset.Bits[B]](w io.Writer, g *Graph[B]) {
	for i := 0; i < g.N; i++ {
		fmt.Fprintf(w, "%d: ", i)
		for nbr := g.Adj[i].Next(-1); nbr != -1; nbr = g.Adj[i].Next(nbr) {
			fmt.Fprintf(w, "%d ", nbr)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
