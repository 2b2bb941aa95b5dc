package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/plan-systems/klog"

	"github.com/2x3systems/frank2/frank2"
	"github.com/2x3systems/frank2/libfrank2"
)

const usage = `Usage: frank2 [-2|-e] [-a path] [-b] [-c] [-d] [-g] [-h] [-p] [-s] [-v] [res/mod]`

const helpText = `Filter 3-edge-connected cubic graphs having Frank number 2.
Unless option -e is present, correct output is only guaranteed if the graphs
are also cyclically 4-edge-connected. By default, an input graph is sent
to stdout if its Frank number is not equal to 2.

Graphs are read from stdin in graph6 format, one per line, and written to
stdout unchanged (header included) when they pass the filter.

The order in which the arguments appear does not matter.

  -2, --only-heuristic          Only perform the heuristic algorithm, i.e.
                                 check whether the graph passes the sufficient
                                 condition; the heuristic only works for
                                 cyclically 4-edge-connected graphs
  -a, --catalog path            Record verdicts in a catalog db at path and
                                 answer repeated graphs from it
  -b, --brute-force             Whenever a graph is checked using the exact
                                 algorithm apply a brute force method instead
  -c, --complement              Reverse the output: send exactly the graphs
                                 that would not be sent without this flag
  -d, --double-check            Whenever a graph passes the sufficient
                                 condition, double check the result by
                                 computing the corresponding orientations
  -e, --only-exact              Only perform the exact algorithm and not the
                                 heuristic one; required for graphs which are
                                 not cyclically 4-edge-connected
  -g, --graph-expr              Read edge-run expressions (e.g. 1-2-3-1,2-4)
                                 instead of graph6 lines
  -h, --help                    Print this help text
  -p, --print-orientation       Print the two orientations for graphs
                                 determined to have Frank number 2
  -s, --single-graph-parallel   Parallellize the exact method for a single
                                 graph; use together with res/mod
  -v, --verbose                 Give more detailed output
  res/mod                       Split the run in mod (not necessarily equally
                                 big) parts and execute part res
`

func main() {
	os.Exit(run())
}

func usageError(format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	fmt.Fprintln(os.Stderr, usage)
	fmt.Fprintln(os.Stderr, "Use frank2 --help for more detailed instructions.")
	return 1
}

func run() int {
	opt := frank2.DefaultOptions()

	var (
		heuristicOnly bool
		exactOnly     bool
		help          bool
	)

	fset := flag.NewFlagSet("frank2", flag.ContinueOnError)
	fset.Usage = func() {}

	fset.BoolVar(&heuristicOnly, "2", false, "only perform the heuristic algorithm")
	fset.BoolVar(&heuristicOnly, "only-heuristic", false, "")
	fset.StringVar(&opt.CatalogPath, "a", "", "verdict catalog db path")
	fset.StringVar(&opt.CatalogPath, "catalog", "", "")
	fset.BoolVar(&opt.BruteForce, "b", false, "use the brute force exact method")
	fset.BoolVar(&opt.BruteForce, "brute-force", false, "")
	fset.BoolVar(&opt.Complement, "c", false, "reverse the output")
	fset.BoolVar(&opt.Complement, "complement", false, "")
	fset.BoolVar(&opt.DoubleCheck, "d", false, "double check heuristic successes")
	fset.BoolVar(&opt.DoubleCheck, "double-check", false, "")
	fset.BoolVar(&exactOnly, "e", false, "only perform the exact algorithm")
	fset.BoolVar(&exactOnly, "only-exact", false, "")
	fset.BoolVar(&opt.ExprInput, "g", false, "read edge-run expressions instead of graph6")
	fset.BoolVar(&opt.ExprInput, "graph-expr", false, "")
	fset.BoolVar(&help, "h", false, "print help")
	fset.BoolVar(&help, "help", false, "")
	fset.BoolVar(&opt.Print, "p", false, "print witness orientations")
	fset.BoolVar(&opt.Print, "print-orientation", false, "")
	fset.BoolVar(&opt.SingleGraph, "s", false, "shard orientations of a single graph")
	fset.BoolVar(&opt.SingleGraph, "single-graph-parallel", false, "")
	fset.BoolVar(&opt.Verbose, "v", false, "verbose output")
	fset.BoolVar(&opt.Verbose, "verbose", false, "")

	if err := fset.Parse(os.Args[1:]); err != nil {
		return usageError("%v", err)
	}

	if help {
		fmt.Fprintln(os.Stderr, usage)
		fmt.Fprint(os.Stderr, helpText)
		return 0
	}

	kset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(kset)
	kset.Set("logtostderr", "true")
	if opt.Verbose || opt.Print {
		kset.Set("v", "2")
	}
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	defer klog.Flush()

	haveShardSpec := false
	for _, arg := range fset.Args() {
		if haveShardSpec {
			return usageError("You can only add one res/mod pair as an argument.")
		}
		resStr, modStr, found := strings.Cut(arg, "/")
		if !found {
			return usageError("Invalid res/mod pair: '%s'.", arg)
		}
		res, err1 := strconv.Atoi(resStr)
		mod, err2 := strconv.Atoi(modStr)
		if err1 != nil || err2 != nil || res < 0 || mod <= res {
			return usageError("Invalid res/mod pair: '%s'.", arg)
		}
		opt.Remainder = res
		opt.Modulo = mod
		haveShardSpec = true
		klog.Infof("Class=%d/%d.", res, mod)
	}

	if heuristicOnly && exactOnly {
		return usageError("-2 and -e exclude each other.")
	}
	if heuristicOnly {
		opt.Exhaustive = false
		klog.Warningf("fn can still be 2 even if output says >= 3.")
		klog.Infof("Only using heuristic method.")
	}
	if exactOnly {
		opt.Heuristic = false
		klog.Infof("Only using exact method.")
	}
	if opt.BruteForce {
		klog.Infof("Using brute force method where an exact method is used.")
	}
	if opt.Print {
		opt.Verbose = true
	}
	if opt.Print && opt.BruteForce {
		opt.Print = false
		klog.Warningf("no orientations will be printed for the brute force method.")
	}
	if opt.Heuristic {
		klog.Warningf("this only works for cyclically 4-edge-connected graphs!")
	}
	klog.Infof("Assuming graphs to be cubic and 3-edge-connected.")

	cnt := &frank2.Counters{}
	if err := libfrank2.Run(os.Stdin, os.Stdout, opt, cnt); err != nil {
		klog.Errorf("run failed: %v", err)
		return 1
	}
	return 0
}
