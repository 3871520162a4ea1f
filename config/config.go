// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package config

import (
	"bufio"
	"io"
	"os"

	"github.com/ezrec/sfgen/internal"
)

// Config holds the run-wide settings for one generation run. It is
// populated once from the configuration file and read-only thereafter.
type Config struct {
	AdcPerNucleotide int    // Items produced per nucleotide reference.
	RandomSeed       int64  // Seed for nucleotide sampling.
	CellsPerFrame    int    // Cells in one frame; a multiple of the row size.
	RingBufferSize   uint64 // Capacity of the target contiguous buffer, in bytes.
	DataFrames       int    // Data frames per frame group.
	FillerValue      uint8  // Quiescent value for unaddressed cells.
	DiagValues       []uint8

	NucleotideFile   string
	FragmentFile     string
	DistributionFile string
	OutputFile       string
}

// Parse reads key=value configuration text. Size-valued keys accept the
// scaled-integer format of ParseScaled. Unrecognized keys are ignored.
func Parse(input io.Reader) (cfg *Config, err error) {
	cfg = &Config{}

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			cfg = nil
			err = internal.ErrLine{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if internal.Skip(line) {
			continue
		}

		tokens := internal.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		key := tokens[0]
		values := tokens[1:]

		var value string
		if len(values) > 0 {
			value = values[0]
		}

		var v uint64
		switch key {
		case "cells_per_frame":
			v, err = ParseScaled(value)
			cfg.CellsPerFrame = int(v)
		case "ring_buffer_size", "contig_size":
			cfg.RingBufferSize, err = ParseScaled(value)
		case "adc_per_nucleotide":
			v, err = ParseScaled(value)
			cfg.AdcPerNucleotide = int(v)
		case "random_seed":
			v, err = ParseScaled(value)
			cfg.RandomSeed = int64(v)
		case "data_frames":
			v, err = ParseScaled(value)
			cfg.DataFrames = int(v)
		case "filler_value":
			v, err = ParseScaled(value)
			cfg.FillerValue = uint8(v)
		case "diag_values":
			cfg.DiagValues = cfg.DiagValues[:0]
			for _, token := range values {
				v, err = ParseScaled(token)
				if err != nil {
					return
				}
				cfg.DiagValues = append(cfg.DiagValues, uint8(v))
			}
		case "nucleotide_file":
			cfg.NucleotideFile = value
		case "fragment_file":
			cfg.FragmentFile = value
		case "distribution_file":
			cfg.DistributionFile = value
		case "output_file":
			cfg.OutputFile = value
		default:
			// The generic reader tolerates keys it does not know.
		}

		if err != nil {
			return
		}
	}

	err = scanner.Err()

	return
}

// Load parses the named configuration file.
func Load(path string) (cfg *Config, err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	return Parse(file)
}
