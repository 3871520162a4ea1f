// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package plan loads the fragment distribution list and proves that the
// dataset it implies fits the target buffer.
package plan

import (
	"bufio"
	"io"
	"strings"

	"github.com/ezrec/sfgen/genome"
	"github.com/ezrec/sfgen/internal"
)

// RowSize is the number of cells in a single data row on the chip.
// cells_per_frame must be a multiple of this.
const RowSize = 2048

// Record maps a stepped range of 1-based cell indices to the value
// sequence distributed across it, one item per frame.
type Record struct {
	First, Last, Step int
	Seq               []genome.Item
}

// ParseDistribution reads distribution records. A record line has the
// form `first, last, step $ name, name, ...`; lines without a '$' are
// not records and are skipped. A missing last defaults to first, and a
// missing step to 1.
func ParseDistribution(input io.Reader, reg *genome.Registry, cellsPerFrame int) (records []Record, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			records = nil
			err = internal.ErrLine{LineNo: lineno, Line: line, Err: err}
		}
	}()

	for scanner.Scan() {
		line = scanner.Text()
		lineno += 1

		if internal.Skip(line) {
			continue
		}

		head, tail, found := strings.Cut(line, "$")
		if !found {
			continue
		}

		var nums [3]int
		for n, token := range internal.Fields(head) {
			if n >= len(nums) {
				break
			}
			var v uint64
			v, err = internal.ParseUint(token)
			if err != nil {
				return
			}
			nums[n] = int(v)
		}

		rec := Record{First: nums[0], Last: nums[1], Step: nums[2]}

		if rec.First < 1 || rec.First > cellsPerFrame {
			err = ErrCellRange(rec.First)
			return
		}
		if rec.Last == 0 {
			rec.Last = rec.First
		}
		if rec.Step == 0 {
			rec.Step = 1
		}

		for _, name := range internal.Fields(tail) {
			seq, ok := reg.Fragment(name)
			if !ok {
				err = ErrUndefinedFragment(name)
				return
			}
			rec.Seq = append(rec.Seq, seq...)
		}

		records = append(records, rec)
	}

	err = scanner.Err()

	return
}

// LongestSequence returns the frame count of the longest record
// sequence, 0 when the list is empty.
func LongestSequence(records []Record) (longest int) {
	for _, rec := range records {
		if len(rec.Seq) > longest {
			longest = len(rec.Seq)
		}
	}

	return
}
