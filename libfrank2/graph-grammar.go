package libfrank2

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/2x3systems/frank2/frank2"
	"github.com/2x3systems/frank2/libfrank2/bitset"
)

// Edge-run expression input: a line like "1-2-3-1,2-4" is a comma
// separated list of runs over 1-based vertex IDs, each run binding its
// consecutive IDs with edges.

type GraphExpr struct {
	Runs []*EdgeRun `(@@ ("," @@)*)?`
}

type EdgeRun struct {
	StartVtx *Vtx       `@@`
	Edges    []*EdgeDst `@@*`
}

type EdgeDst struct {
	EndVtx *Vtx `"-" @@`
}

type Vtx struct {
	ID int64 `@Int`
}

var parseGraphExpr = participle.MustBuild[GraphExpr]()

// ParseExpr parses an edge-run expression line into a vertex count and
// an edge list with 0-based endpoints.
func ParseExpr(line string) (int, [][2]int, error) {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return -1, nil, frank2.ErrEmptyLine
	}

	expr, err := parseGraphExpr.ParseString("", line)
	if err != nil {
		return -1, nil, errors.Wrap(frank2.ErrBadExpr, err.Error())
	}

	maxID := int64(0)
	var edges [][2]int
	for _, run := range expr.Runs {
		on := run.StartVtx
		if on.ID < 1 {
			return -1, nil, frank2.ErrBadVtxID
		}
		if on.ID > maxID {
			maxID = on.ID
		}
		for _, edge := range run.Edges {
			next := edge.EndVtx
			if next.ID < 1 {
				return -1, nil, frank2.ErrBadVtxID
			}
			if next.ID > maxID {
				maxID = next.ID
			}
			edges = append(edges, [2]int{int(on.ID) - 1, int(next.ID) - 1})
			on = next
		}
	}
	return int(maxID), edges, nil
}

// GraphFromEdges builds an undirected graph from 0-based edge pairs.
func GraphFromEdges[B bitset.Bits[B]](n int, edges [][2]int) Graph[B] {
	g := NewGraph[B](n)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}
