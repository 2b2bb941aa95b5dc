package frank2

// Graph6Header is the optional prefix of a graph6 line. Output lines
// pass the input through untouched, so the header survives the filter.
const Graph6Header = ">>graph6<<"

const (
	// MaxVtx64 is the vertex limit for the 64-bit solver. Edge sets share
	// the same width, so a cubic graph additionally needs 3n/2 <= 64.
	MaxVtx64 = 64

	// MaxVtx128 is the vertex limit for the 128-bit solver (3n/2 <= 128
	// applies as above, so the effective ceiling is 85 vertices).
	MaxVtx128 = 128
)

// Verdict is the stored outcome of a decided graph.
type Verdict byte

const (
	VerdictUnknown Verdict = iota

	// VerdictFrank2 means the graph has Frank number 2.
	VerdictFrank2

	// VerdictNotFrank2 means the exact engine ruled out Frank number 2.
	VerdictNotFrank2

	// VerdictHeuristicFail means only the heuristic ran and it did not
	// certify Frank number 2. The exact verdict is still open.
	VerdictHeuristicFail
)

// Options mirror the CLI surface. The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	BruteForce  bool // -b: pairwise deletable-set comparison instead of the constraint search
	Complement  bool // -c: invert which graphs pass through to stdout
	DoubleCheck bool // -d: materialize and validate witness orientations on heuristic success
	Exhaustive  bool // run the exact engine when the heuristic fails (off under -2)
	Heuristic   bool // run the odd-cycles heuristic first (off under -e)
	Print       bool // -p: dump witness orientations to stderr
	SingleGraph bool // -s: res/mod applies to orientations of one graph instead of input lines
	Verbose     bool // -v
	ExprInput   bool // -g: lines are edge-run expressions instead of graph6

	// Remainder/Modulo select the res/mod class, 0 <= Remainder < Modulo.
	Remainder int
	Modulo    int

	// PoolSize is the initial capacity of the brute-force pool. It is
	// updated after each graph so the next allocation fits without growth.
	PoolSize int

	// CatalogPath enables the verdict catalog; empty string with
	// UseCatalog set opens an in-memory catalog.
	CatalogPath string
	UseCatalog  bool
}

func DefaultOptions() *Options {
	return &Options{
		Exhaustive: true,
		Heuristic:  true,
		Modulo:     1,
		PoolSize:   100000,
	}
}

// Counters accumulate per-run statistics; the per-graph fields are reset
// by the driver at each input line.
type Counters struct {
	GeneratedOrientations      uint64 // strongly connected, surviving the vertex prune
	MostGeneratedOrientations  uint64
	TotalOrientationsGenerated uint64 // every fully oriented state, shard-counted
	StoredBitsets              uint64
	MostStoredBitsets          uint64
	OrientationsGivingSubset   uint64
	OrientationsGivingSuperset uint64
	EmptyBitsetsStored         uint64
	ComplementaryBitsets       uint64

	GraphsSatisfyingOddness       uint64
	GraphsNotSatisfyingOddness    uint64
	GraphsSatisfyingFirstOddness  uint64
	GraphsSatisfyingSecondOddness uint64

	TotalGraphs   uint64
	CheckedGraphs uint64
	SkippedGraphs uint64
	PassedGraphs  uint64
	CatalogHits   uint64
}

// ResetPerGraph clears the fields the driver re-reports for every graph.
func (cnt *Counters) ResetPerGraph() {
	cnt.GeneratedOrientations = 0
	cnt.OrientationsGivingSubset = 0
	cnt.OrientationsGivingSuperset = 0
	cnt.ComplementaryBitsets = 0
	cnt.EmptyBitsetsStored = 0
	cnt.StoredBitsets = 0
}

// CatalogOpts specifies params for opening a verdict catalog.
type CatalogOpts struct {
	DbPathName string // omit for an in-memory db
	ReadOnly   bool   // open in read-only mode
}
