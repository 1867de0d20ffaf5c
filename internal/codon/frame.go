package codon

import "fmt"

// Frame names one of the six reading frames of a double-stranded sequence.
type Frame uint8

const (
	F1 Frame = iota
	F2
	F3
	R1
	R2
	R3
)

// Frames lists all reading frames in scan order.
var Frames = [...]Frame{F1, F2, F3, R1, R2, R3}

var frameNames = [...]string{"F1", "F2", "F3", "R1", "R2", "R3"}

func (f Frame) String() string {
	if int(f) < len(frameNames) {
		return frameNames[f]
	}
	return fmt.Sprintf("Frame(%d)", uint8(f))
}

// Reverse reports whether f reads the reverse-complement strand.
func (f Frame) Reverse() bool { return f >= R1 }

// Offset is the number of leading bases the frame drops.
func (f Frame) Offset() int { return int(f % 3) }

// Strand is "+" for forward frames and "-" for reverse frames.
func (f Frame) Strand() string {
	if f.Reverse() {
		return "-"
	}
	return "+"
}

// ReadingFrame returns the nucleotide string read in frame f. Reverse frames
// are reverse-complemented first; the result never aliases seq for reverse
// frames, and is a subslice of seq for forward frames.
func ReadingFrame(seq []byte, f Frame) []byte {
	if f.Reverse() {
		seq = ReverseComplement(seq)
	}
	off := f.Offset()
	if off >= len(seq) {
		return seq[:0]
	}
	return seq[off:]
}
