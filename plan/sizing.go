package plan

import (
	"io"

	"github.com/ezrec/sfgen/config"
	"github.com/ezrec/sfgen/translate"
)

// Sizing holds the quantities reported to the user before the capacity
// verdict is acted on.
type Sizing struct {
	LongestSeq  int    // Frames in the longest fragment sequence.
	GroupLength int    // Frames in one frame group.
	GroupCount  int    // Frame groups required.
	MaxFrames   int    // Frames that fit into the contiguous buffer.
	TotalFrames int    // Frames required in total.
	TotalBytes  uint64 // Bytes required in total.
}

// ComputeSizing derives the frame-group arithmetic for a distribution
// list. The verdict is a pure function of the sizing inputs.
func ComputeSizing(records []Record, cfg *config.Config) (sz Sizing, err error) {
	if cfg.CellsPerFrame < 1 || cfg.CellsPerFrame%RowSize != 0 {
		err = ErrTopology
		return
	}
	if cfg.DataFrames < 1 {
		err = ErrDataFrames
		return
	}

	sz.MaxFrames = int(cfg.RingBufferSize / uint64(cfg.CellsPerFrame))
	sz.LongestSeq = LongestSequence(records)
	sz.GroupLength = len(cfg.DiagValues) + cfg.DataFrames
	sz.GroupCount = sz.LongestSeq/cfg.DataFrames + 1
	sz.TotalFrames = sz.GroupCount * sz.GroupLength
	sz.TotalBytes = uint64(sz.TotalFrames) * uint64(cfg.CellsPerFrame)

	return
}

// Fits reports whether the required frames fit into the buffer.
func (sz Sizing) Fits() bool {
	return sz.TotalFrames <= sz.MaxFrames
}

// Report prints the sizing statistics with locale-aware digit grouping.
// It is emitted regardless of the fit verdict so an operator can resize
// the configuration.
func (sz Sizing) Report(w io.Writer) {
	translate.Fprintf(w, "%16d Frames in the longest fragment sequence\n", sz.LongestSeq)
	translate.Fprintf(w, "%16d Frames in a frame group\n", sz.GroupLength)
	translate.Fprintf(w, "%16d Frame group(s) required\n", sz.GroupCount)
	translate.Fprintf(w, "%16d Frames will fit into the contiguous buffer\n", sz.MaxFrames)
	translate.Fprintf(w, "%16d Frames required in total\n", sz.TotalFrames)
	translate.Fprintf(w, "%16d Bytes required in total\n", sz.TotalBytes)
}
