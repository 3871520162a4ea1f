// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package frame materializes data frames from a distribution list and
// streams them to the output file.
package frame

import (
	"math/rand"

	"github.com/ezrec/sfgen/genome"
	"github.com/ezrec/sfgen/plan"
)

// Builder paints frames from a distribution list. Nucleotide
// references are sampled through Rng, so a fixed seed reproduces
// byte-identical output.
type Builder struct {
	Reg           *genome.Registry
	Records       []plan.Record
	CellsPerFrame int
	Filler        uint8
	Rng           *rand.Rand
}

// Build paints one frame into buf. Every cell starts at the filler
// value; records are applied in list order, so a later record
// overwrites an earlier one on overlapping cells. Each addressed cell
// samples its nucleotide independently.
func (b *Builder) Build(buf []byte, frameIndex int) {
	for n := range buf {
		buf[n] = b.Filler
	}

	for _, rec := range b.Records {
		if frameIndex >= len(rec.Seq) {
			continue
		}

		it := rec.Seq[frameIndex]

		// A last beyond the frame is clamped.
		last := rec.Last
		if last > len(buf) {
			last = len(buf)
		}

		for cell := rec.First - 1; cell < last; cell += rec.Step {
			buf[cell] = b.Reg.Sample(it, b.Rng)
		}
	}
}
