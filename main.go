package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/CathyLuo/uarch-bench/bench"
	"github.com/CathyLuo/uarch-bench/benches"
	cfg "github.com/CathyLuo/uarch-bench/config"
	"github.com/CathyLuo/uarch-bench/isa"
	"github.com/CathyLuo/uarch-bench/match"
	"github.com/CathyLuo/uarch-bench/mem"
	"github.com/CathyLuo/uarch-bench/systeminfo"
	"github.com/CathyLuo/uarch-bench/utils"
)

func main() {
	var pattern string
	var precision int
	var simpleMatch bool
	var debugFlag bool
	var showHelp bool
	var listBenches bool
	var printSystemInfo bool

	flag.StringVar(&pattern, "bench", "", "Wildcard pattern selecting benchmarks by ID (e.g. memory/*)")
	flag.IntVar(&precision, "precision", -1, "Decimal digits for metric values (default from config.json)")
	flag.BoolVar(&simpleMatch, "simple-match", false, "Use the reduced matcher (exact ID or trailing * only)")
	flag.BoolVar(&debugFlag, "d", false, "Enable debug mode")
	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&listBenches, "benchlist", false, "List matching benchmark IDs without running them")
	flag.BoolVar(&printSystemInfo, "print", false, "Print system information relevant to benchmarking (alias: -list)")
	flag.BoolVar(&printSystemInfo, "list", false, "Alias for -print")
	flag.Parse()

	if showHelp {
		fmt.Println("CPU and memory microbenchmark tool")
		fmt.Println("Usage: uarch-bench [options]")
		fmt.Println("\nOptions:")
		flag.PrintDefaults()
		fmt.Println("\nWith no options, all benchmarks run.")
		fmt.Println("Use -print or -list to view host information.")
		return
	}

	if printSystemInfo {
		fmt.Println("=== System Information ===")
		for _, line := range systeminfo.GetSystemInfo().Lines() {
			fmt.Println(line)
		}
		return
	}

	configuration, err := cfg.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config.json, using default settings: %v\n", err)
	}

	debug := debugFlag || configuration.Debug
	if pattern == "" {
		pattern = configuration.Pattern
	}
	if precision < 0 {
		precision = configuration.Precision
	}
	simple := simpleMatch || configuration.SimpleMatch

	// The shuffled layouts assume 64-byte lines; a host with different
	// geometry still runs, but the chunks no longer map one-to-one onto
	// hardware lines.
	if cl := isa.CacheLine(); cl > 0 && cl != mem.LineSize {
		utils.LogMessage(fmt.Sprintf(
			"Host reports %dB cache lines but layouts assume %dB; latency figures may be skewed",
			cl, mem.LineSize), debug)
	}

	matcher := match.New(simple)
	selected, err := benches.Select(benches.All(), pattern, matcher)
	if err != nil {
		utils.Fatalf("Invalid benchmark pattern %q: %v", pattern, err)
	}
	if len(selected) == 0 {
		utils.LogMessage(fmt.Sprintf("No benchmarks match pattern %q", pattern), false)
		return
	}

	if listBenches {
		for _, b := range selected {
			fmt.Printf("%-28s %s\n", b.Args().ID, b.Args().Desc)
		}
		return
	}

	utils.LogMessage(fmt.Sprintf("Running %d benchmark(s) on %s", len(selected), isa.BrandName()), debug)

	c := &bench.Context{Out: os.Stdout, Precision: precision, Debug: debug}
	bench.PrintHeader(c)
	for _, b := range selected {
		bench.RunAndPrint(c, b)
	}
}
