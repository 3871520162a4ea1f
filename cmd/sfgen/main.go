// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// sfgen generates raw frame files for exercising a sensor/ADC chip
// simulator. It can also trace one cell of an existing file, print the
// fragment dictionary, or load a file into a physical memory buffer.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"

	"github.com/ezrec/sfgen/config"
	"github.com/ezrec/sfgen/frame"
	"github.com/ezrec/sfgen/genome"
	"github.com/ezrec/sfgen/membuf"
	"github.com/ezrec/sfgen/plan"
	"github.com/ezrec/sfgen/translate"
)

func main() {
	var configFile string
	var traceCell int
	var dict bool
	var load string
	var addr string
	var limit string
	var verbose bool

	flag.StringVar(&configFile, "config", "sfgen.conf", "configuration file")
	flag.IntVar(&traceCell, "trace", -1, "trace a cell of an existing output file")
	flag.BoolVar(&dict, "dict", false, "display the data dictionary, do not generate")
	flag.StringVar(&load, "load", "", "file to load into physical memory")
	flag.StringVar(&addr, "addr", "", "physical load address (decimal or hex, K/M/G suffixes)")
	flag.StringVar(&limit, "limit", "", "size limit of the physical buffer")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	// Loading a data file into the contiguous buffer bypasses
	// generation entirely.
	if len(load) != 0 {
		loadFile(load, addr, limit)
		return
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatalf("%v: %v", configFile, err)
	}

	if traceCell >= 0 {
		trace(cfg, traceCell)
		return
	}

	reg := &genome.Registry{
		AdcPerNucleotide: cfg.AdcPerNucleotide,
		Verbose:          verbose,
	}
	reg.Predefine("cells_per_frame", cfg.CellsPerFrame)
	reg.Predefine("data_frames", cfg.DataFrames)
	reg.Predefine("adc_per_nucleotide", cfg.AdcPerNucleotide)

	parseFile(cfg.NucleotideFile, reg.ParseNucleotides)
	parseFile(cfg.FragmentFile, reg.ParseFragments)

	var records []plan.Record
	parseFile(cfg.DistributionFile, func(input io.Reader) (err error) {
		records, err = plan.ParseDistribution(input, reg, cfg.CellsPerFrame)
		return
	})

	sz, err := plan.ComputeSizing(records, cfg)
	if err != nil {
		log.Fatal(err)
	}

	sz.Report(os.Stdout)
	if !sz.Fits() {
		log.Fatal(plan.ErrCapacity)
	}

	if dict {
		printDictionary(reg, records)
		return
	}

	writeOutputFile(cfg, reg, records, sz.GroupCount)
}

// parseFile opens a definition file and hands it to a parser.
func parseFile(path string, parse func(io.Reader) error) {
	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer file.Close()

	if err := parse(file); err != nil {
		log.Fatalf("%v: %v", path, err)
	}
}

// writeOutputFile streams the generated frame groups to the output file.
func writeOutputFile(cfg *config.Config, reg *genome.Registry, records []plan.Record, groupCount int) {
	ouf, err := os.Create(cfg.OutputFile)
	if err != nil {
		log.Fatalf("%v: %v", cfg.OutputFile, err)
	}
	defer ouf.Close()

	out := bufio.NewWriter(ouf)

	builder := &frame.Builder{
		Reg:           reg,
		Records:       records,
		CellsPerFrame: cfg.CellsPerFrame,
		Filler:        cfg.FillerValue,
		Rng:           rand.New(rand.NewSource(cfg.RandomSeed)),
	}

	err = builder.WriteOutput(out, groupCount, cfg.DataFrames, cfg.DiagValues)
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		log.Fatalf("%v: %v", cfg.OutputFile, err)
	}
}

// trace displays the value of a single cell for every frame in the
// output file.
func trace(cfg *config.Config, cell int) {
	file, err := os.Open(cfg.OutputFile)
	if err != nil {
		log.Fatalf("%v: %v", cfg.OutputFile, err)
	}
	defer file.Close()

	if err := frame.Trace(file, cfg.CellsPerFrame, cell, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// loadFile maps the physical buffer and streams a data file into it.
func loadFile(path, addr, limit string) {
	physAddr, err := config.ParseScaled(addr)
	if err != nil {
		log.Fatalf("-addr: %v", err)
	}
	sizeLimit, err := config.ParseScaled(limit)
	if err != nil {
		log.Fatalf("-limit: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}
	if uint64(info.Size()) > sizeLimit {
		log.Fatalf("%v: %v", path, membuf.ErrTooBig)
	}

	fmt.Println("Mapping RAM...")
	region, err := membuf.Map(physAddr, int(info.Size()))
	if err != nil {
		log.Fatal(err)
	}
	defer region.Close()

	fmt.Printf("Loading %v into RAM at address %v\n", path, addr)
	if err := region.Load(file, info.Size(), os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// printDictionary displays every fragment and distribution sequence
// along with its length in frames.
func printDictionary(reg *genome.Registry, records []plan.Record) {
	rule := strings.Repeat("-", 42)

	translate.Fprintf(os.Stdout, "\n%30s    Size\n%s\n", "Fragment Name", rule)
	for name, seq := range reg.Fragments() {
		translate.Fprintf(os.Stdout, "%30s %7d\n", name, len(seq))
	}

	translate.Fprintf(os.Stdout, "\n\n%30s    Size\n%s\n", "Distribution Name", rule)
	for _, rec := range records {
		name := fmt.Sprintf("%d,%d,%d", rec.First, rec.Last, rec.Step)
		translate.Fprintf(os.Stdout, "%30s %7d\n", name, len(rec.Seq))
	}
}
