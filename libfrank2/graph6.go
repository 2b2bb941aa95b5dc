package libfrank2

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/2x3systems/frank2/frank2"
	"github.com/2x3systems/frank2/libfrank2/bitset"
)

// Graph6VertexCount parses just enough of a graph6 line to return its
// vertex count. Vertex counts that need the 36-bit length form are
// beyond any bit-set width this package offers and are rejected.
func Graph6VertexCount(line string) (int, error) {
	if len(line) == 0 {
		return -1, frank2.ErrEmptyLine
	}
	if (line[0] < 63 || line[0] > 126) && line[0] != '>' {
		return -1, frank2.ErrBadGraph6Header
	}

	i := 0
	if strings.HasPrefix(line, frank2.Graph6Header) {
		i = len(frank2.Graph6Header)
	}
	if i >= len(line) {
		return -1, frank2.ErrBadGraph6Header
	}

	if line[i] < 126 { // 0 <= n <= 62
		n := int(line[i]) - 63
		if n < 0 {
			return -1, frank2.ErrBadGraph6Header
		}
		return n, nil
	}

	// 63 <= n <= 258047: three more 6-bit digits, high first.
	if i+1 < len(line) && line[i+1] < 126 {
		if i+3 >= len(line) {
			return -1, frank2.ErrBadGraph6Header
		}
		n := 0
		for k := 1; k <= 3; k++ {
			n = n<<6 | (int(line[i+k]) - 63)
		}
		return n, nil
	}

	return -1, frank2.ErrGraph6TooLarge
}

// LoadGraph6 decodes the adjacency bits of a graph6 line into an
// undirected graph on n vertices, n as reported by Graph6VertexCount.
// The line must end with a newline.
func LoadGraph6[B bitset.Bits[B]](line string, n int) (Graph[B], error) {
	g := NewGraph[B](n)

	start := 0
	if strings.HasPrefix(line, frank2.Graph6Header) {
		start = len(frank2.Graph6Header)
	}
	if n <= 62 {
		start++
	} else {
		start += 4
	}

	// The remaining characters minus 63 spell out, six bits at a time,
	// the upper triangle of the adjacency matrix in column order:
	// (0,1), (0,2), (1,2), (0,3), ...
	cur := 1
	sum := 0
	idx := start
	for {
		if idx >= len(line) {
			return g, frank2.ErrMissingNewline
		}
		c := line[idx]
		if c == '\n' {
			break
		}
		if c < 63 || c > 126 {
			return g, errors.Wrapf(frank2.ErrBadGraph6Header, "byte 0x%02x in adjacency data", c)
		}
		word := int(c) - 63
		for b := 5; b >= 0; b-- {
			if word&(1<<uint(b)) == 0 {
				continue
			}
			pos := 5 - b + (idx-start)*6
			for pos-sum >= 0 {
				sum += cur
				cur++
			}
			cur--
			sum -= cur
			nbr := pos - sum
			if cur >= n {
				return g, errors.Wrap(frank2.ErrBadGraph6Header, "adjacency data longer than vertex count allows")
			}
			g.AddEdge(cur, nbr)
		}
		idx++
	}
	return g, nil
}
