package main

import (
	"fmt"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/endless-array/pkg/common"
	"github.com/spicery/endless-array/pkg/scenario"
)

// Version is injected at build time via ldflags.
var Version = "dev"

func main() {
	// Define command line flags.
	var scenarioFile = pflag.StringP("scenario", "s", "", "Scenario file (defaults to stdin)")
	var format = pflag.StringP("format", "f", common.DefaultFormat, "Output format (TEXT, YAML, ASCIITREE)")
	var indent = pflag.Int("indent", 2, "Indentation level for display purposes")
	var showSlots = pflag.Bool("show-slots", false, "Show physical storage slots in TEXT output")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	// Custom usage message.
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nRuns a YAML scenario against bounded growable arrays and prints a report.\n")
		fmt.Fprintf(os.Stderr, "Exits with status 1 if any step misses its expectation.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	// Handle version flag.
	if *version {
		fmt.Printf("endless-array version %s\n", Version)
		os.Exit(0)
	}

	// Handle help flag.
	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	// Read the scenario from a file or stdin.
	var sc *scenario.Scenario
	var err error
	if *scenarioFile != "" {
		sc, err = scenario.LoadScenario(*scenarioFile)
	} else {
		sc, err = scenario.ReadScenario(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scenario: %v\n", err)
		os.Exit(1)
	}

	// Command line flags win over the scenario's options block.
	options := sc.Options
	if pflag.CommandLine.Changed("format") || options.Format == "" {
		options.Format = *format
	}
	if pflag.CommandLine.Changed("indent") || options.Indent == 0 {
		options.Indent = *indent
	}
	if *showSlots {
		options.ShowSlots = true
	}
	options.Normalize()

	printFunc, err := scenario.PickPrintFunc(options.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	report := scenario.NewRunner().Run(sc)
	if err := printFunc(report, os.Stdout, &options); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	if report.Failures > 0 {
		os.Exit(1)
	}
}
