package libfrank2

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/plan-systems/klog"

	"github.com/2x3systems/frank2/frank2"
	"github.com/2x3systems/frank2/libfrank2/bitset"
	"github.com/2x3systems/frank2/libfrank2/catalog"
)

// Run reads one graph per line from in, decides each, and writes the
// lines passing the filter to out: by default the graphs whose Frank
// number is not 2, under Complement the ones whose Frank number is 2.
// Lines are passed through byte-for-byte, header included.
func Run(in io.Reader, out io.Writer, opt *frank2.Options, cnt *frank2.Counters) error {
	var cat *catalog.Catalog
	if opt.UseCatalog || opt.CatalogPath != "" {
		var err error
		cat, err = catalog.Open(frank2.CatalogOpts{DbPathName: opt.CatalogPath})
		if err != nil {
			return err
		}
		defer cat.Close()
	}

	start := time.Now()
	r := bufio.NewReader(in)
	for {
		line, readErr := r.ReadString('\n')
		if len(line) > 0 {
			if !processLine(line, out, opt, cnt, cat) {
				break
			}
		}
		if readErr != nil {
			break
		}
	}
	elapsed := time.Since(start)

	if opt.BruteForce {
		klog.Infof("Largest size of bitset array is %d elements (%.2f GB)",
			cnt.MostStoredBitsets, float64(cnt.MostStoredBitsets)*16/1e9)
	}
	klog.Infof("Checked %d graphs in %f seconds: %d %s.",
		cnt.CheckedGraphs, elapsed.Seconds(), cnt.PassedGraphs, passedPhrase(opt))
	if cnt.SkippedGraphs > 0 {
		klog.Warningf("%d graphs were skipped.", cnt.SkippedGraphs)
	}
	if cat != nil && cnt.CatalogHits > 0 {
		klog.Infof("%d graphs answered from the catalog.", cnt.CatalogHits)
	}
	if opt.Heuristic {
		klog.Infof("%d satisfied at least one of the sufficient conditions. %d did not.",
			cnt.GraphsSatisfyingOddness, cnt.GraphsNotSatisfyingOddness)
		klog.Infof("%d satisfied first and %d satisfied second",
			cnt.GraphsSatisfyingFirstOddness, cnt.GraphsSatisfyingSecondOddness)
	}
	return nil
}

func passedPhrase(opt *frank2.Options) string {
	if opt.Complement {
		if opt.Exhaustive {
			return "have fn = 2"
		}
		return "passed sufficient condition for fn 2"
	}
	if opt.Exhaustive {
		return "have fn > 2"
	}
	return "did not pass sufficient condition for fn 2"
}

// processLine handles one input line; a false return stops the stream
// (second graph under -s).
func processLine(line string, out io.Writer, opt *frank2.Options, cnt *frank2.Counters, cat *catalog.Catalog) bool {
	cnt.TotalGraphs++
	cnt.ResetPerGraph()

	if opt.SingleGraph && cnt.TotalGraphs >= 2 {
		klog.Warningf("do not input two graphs with -s")
		cnt.TotalGraphs--
		return false
	}

	// res/mod over input lines, unless -s moved it onto orientations.
	if !opt.SingleGraph && (cnt.TotalGraphs-1)%uint64(opt.Modulo) != uint64(opt.Remainder) {
		return true
	}

	var (
		n     int
		edges [][2]int
		err   error
	)
	if opt.ExprInput {
		n, edges, err = ParseExpr(line)
	} else {
		n, err = Graph6VertexCount(line)
	}
	if err != nil || n <= 0 {
		skipGraph(opt, cnt, err)
		return true
	}

	// Pick the narrowest width that fits both the vertex and the edge
	// sets; 3n/2 is the binding constraint for cubic graphs.
	switch {
	case 3*n/2 <= frank2.MaxVtx64:
		decideLine[bitset.Set64](line, n, edges, out, opt, cnt, cat)
	case 3*n/2 <= frank2.MaxVtx128:
		decideLine[bitset.Set128](line, n, edges, out, opt, cnt, cat)
	default:
		skipGraph(opt, cnt, frank2.ErrTooManyEdges)
	}
	return true
}

func skipGraph(opt *frank2.Options, cnt *frank2.Counters, err error) {
	if opt.Verbose {
		klog.Infof("Skipping invalid graph! (%v)", err)
	}
	cnt.SkippedGraphs++
}

func decideLine[B bitset.Bits[B]](line string, n int, edges [][2]int, out io.Writer, opt *frank2.Options, cnt *frank2.Counters, cat *catalog.Catalog) {
	var (
		g   Graph[B]
		err error
	)
	if opt.ExprInput {
		g = GraphFromEdges[B](n, edges)
	} else {
		g, err = LoadGraph6[B](line, n)
	}
	if err != nil {
		skipGraph(opt, cnt, err)
		return
	}
	if !g.IsCubic() {
		skipGraph(opt, cnt, frank2.ErrNotCubic)
		return
	}
	cnt.CheckedGraphs++

	if opt.Verbose {
		klog.Infof("Looking at: %s", strings.TrimRight(line, "\r\n"))
	}
	if opt.Print {
		fmt.Fprintln(os.Stderr, "Labelling of graph:")
		WriteGraph(os.Stderr, &g)
	}

	fn := -1
	var key []byte
	if cat != nil {
		key = catalog.Key(line)
		switch cat.Lookup(key) {
		case frank2.VerdictFrank2:
			fn = 2
			cnt.CatalogHits++
		case frank2.VerdictNotFrank2:
			// An exact verdict says nothing about the heuristic, so a
			// heuristic-only run cannot reuse it.
			if opt.Exhaustive {
				fn = 0
				cnt.CatalogHits++
			}
		case frank2.VerdictHeuristicFail:
			if !opt.Exhaustive {
				fn = 0
				cnt.CatalogHits++
			}
		}
	}

	if fn < 0 {
		s := NewSolver[B](g, opt, cnt)
		fn = 0

		if opt.Heuristic {
			if s.HasSufficientCondition() {
				cnt.GraphsSatisfyingOddness++
				fn = 2
			} else {
				if opt.Verbose {
					if opt.Exhaustive {
						klog.Infof("\tHeuristic failed. Doing exhaustive check.")
					} else {
						klog.Infof("\tHeuristic failed. Not doing exhaustive check.")
					}
				}
				cnt.GraphsNotSatisfyingOddness++
			}
		}

		if opt.Exhaustive && fn == 0 {
			fn = s.FindFrankNumber()
			if opt.Verbose {
				klog.Infof("\tStrongly connected orientations generated: %d", cnt.GeneratedOrientations)
				if opt.BruteForce {
					klog.Infof("\tOrientations giving subsets: %d", cnt.OrientationsGivingSubset)
					klog.Infof("\tOrientations giving supersets: %d", cnt.OrientationsGivingSuperset)
					klog.Infof("\tNumber of complementary bitsets: %d", cnt.ComplementaryBitsets)
				}
			}
		}

		if cat != nil {
			v := frank2.VerdictNotFrank2
			if fn == 2 {
				v = frank2.VerdictFrank2
			} else if !opt.Exhaustive {
				v = frank2.VerdictHeuristicFail
			}
			if storeErr := cat.Store(key, v, n); storeErr != nil {
				klog.Warningf("catalog store failed: %v", storeErr)
			}
		}
	}

	if fn == 0 {
		if opt.Verbose {
			klog.Infof("\tFrankNumber >= 3.")
		}
		if !opt.Complement {
			cnt.PassedGraphs++
			writeLine(out, line)
		}
	}
	if fn == 2 {
		if opt.Verbose {
			klog.Infof("\tFrankNumber = 2.")
		}
		if opt.Complement {
			cnt.PassedGraphs++
			writeLine(out, line)
		}
	}

	if cnt.MostGeneratedOrientations < cnt.GeneratedOrientations {
		cnt.MostGeneratedOrientations = cnt.GeneratedOrientations
	}
	if cnt.MostStoredBitsets < cnt.StoredBitsets {
		cnt.MostStoredBitsets = cnt.StoredBitsets
	}
}

func writeLine(out io.Writer, line string) {
	io.WriteString(out, line)
	if !strings.HasSuffix(line, "\n") {
		io.WriteString(out, "\n")
	}
}
