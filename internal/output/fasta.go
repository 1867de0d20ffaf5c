package output

import (
	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"

	"pgmap/internal/scanner"
)

// FASTAWidth is the line width of ePST FASTA records.
const FASTAWidth = 60

// EpstSeq returns the ePST of m as a sequence named after the peptide.
func EpstSeq(m scanner.Mapping) *linear.Seq {
	return linear.NewSeq(m.PeptideID, alphabet.BytesToLetters([]byte(m.Epst)), alphabet.DNAredundant)
}
