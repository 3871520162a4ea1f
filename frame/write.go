package frame

import (
	"fmt"
	"io"
)

// WriteOutput writes groupCount frame groups: first one uniformly
// filled frame per diagnostic value, then dataFrames data frames. The
// data-frame index increases monotonically across the whole run, not
// per group. Frames are raw fixed-size blocks with no header or
// separator.
func (b *Builder) WriteOutput(w io.Writer, groupCount int, dataFrames int, diag []uint8) (err error) {
	buf := make([]byte, b.CellsPerFrame)

	frameIndex := 0
	for group := 0; group < groupCount; group++ {
		for _, value := range diag {
			for n := range buf {
				buf[n] = value
			}
			if _, err = w.Write(buf); err != nil {
				return
			}
		}

		for n := 0; n < dataFrames; n++ {
			b.Build(buf, frameIndex)
			frameIndex += 1
			if _, err = w.Write(buf); err != nil {
				return
			}
		}
	}

	return
}

// Trace emits the value of one cell for every frame of a generated
// file, one decimal value per line in file order. A short final read
// ends the scan without error.
func Trace(input io.Reader, cellsPerFrame int, cell int, output io.Writer) (err error) {
	if cell < 0 || cell >= cellsPerFrame {
		err = ErrCell(cell)
		return
	}

	buf := make([]byte, cellsPerFrame)
	for {
		_, err = io.ReadFull(input, buf)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			err = nil
			return
		}
		if err != nil {
			return
		}

		if _, err = fmt.Fprintf(output, "%d\n", buf[cell]); err != nil {
			return
		}
	}
}
