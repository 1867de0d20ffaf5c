// Package scanner maps peptides onto reference sequences: each of the six
// reading frames is translated, run through the peptide automaton, and every
// hit is extended to its putative transcript (ePST) and reported in
// strand-aware genome coordinates.
package scanner

import (
	"bytes"

	"pgmap/internal/automaton"
	"pgmap/internal/codon"
	"pgmap/internal/extend"
	"pgmap/internal/peptide"
)

// NoStartCodon marks a mapping whose ePST begins at the peptide itself.
const NoStartCodon = "-"

// Mapping is one peptide occurrence. Start/End are the reverse-translated
// peptide (RTP) bounds; on the reverse strand Start > End.
type Mapping struct {
	PeptideID      string
	PeptideSeq     string
	GenomeID       string
	Start, End     int
	Frame          codon.Frame
	RTP            string
	EpstStart      int
	EpstEnd        int
	Epst           string
	EpstLength     int
	TranslatedEpst string
	StartCodon     string
	Probability    float64
	Count          int
}

// Strand is "+" or "-".
func (m Mapping) Strand() string { return m.Frame.Strand() }

// Scanner is read-only after New and safe for concurrent use.
type Scanner struct {
	peptides []peptide.Peptide
	ac       *automaton.Automaton
	tr       *codon.Translator
	ext      extend.Extender
}

// New builds the automaton over peps.
func New(peps []peptide.Peptide, tr *codon.Translator, ext extend.Extender) *Scanner {
	return &Scanner{
		peptides: peps,
		ac:       automaton.Build(peptide.Sequences(peps)),
		tr:       tr,
		ext:      ext,
	}
}

// States is the size of the peptide automaton.
func (s *Scanner) States() int { return s.ac.Len() }

// Scan reports every mapping of every peptide on ref, frames in the order
// F1 F2 F3 R1 R2 R3 and, within a frame, by end position. Lower-case bases
// are read as upper case.
func (s *Scanner) Scan(genomeID string, ref []byte, emit func(Mapping) error) error {
	ref = upperBases(ref)
	for _, f := range codon.Frames {
		if err := s.ScanFrame(genomeID, codon.ReadingFrame(ref, f), f, emit); err != nil {
			return err
		}
	}
	return nil
}

// ScanFrame scans a single frame string, as produced by codon.ReadingFrame.
func (s *Scanner) ScanFrame(genomeID string, frameSeq []byte, f codon.Frame, emit func(Mapping) error) error {
	residues := s.tr.TranslateSequence(frameSeq)
	return s.ac.Scan(residues, func(h automaton.Hit) error {
		p := s.peptides[h.Pattern]
		n := len(p.Seq)
		start := 3 * (h.End - n + 1)
		end := start + 3*n
		span := s.ext.Extend(frameSeq, start, end)
		return emit(s.mapping(genomeID, frameSeq, f, p, start, end, span))
	})
}

func (s *Scanner) mapping(genomeID string, frameSeq []byte, f codon.Frame, p peptide.Peptide, start, end int, span extend.Span) Mapping {
	epst := frameSeq[span.Start : span.End+1]
	m := Mapping{
		PeptideID:      p.ID,
		PeptideSeq:     string(p.Seq),
		GenomeID:       genomeID,
		Frame:          f,
		RTP:            string(frameSeq[start:end]),
		Epst:           string(epst),
		TranslatedEpst: string(s.tr.TranslateSequence(epst)),
		Probability:    p.Probability,
		Count:          p.Count,
	}

	c := [4]int{start, end, span.Start, span.End}
	n := len(frameSeq)
	for i := range c {
		if f.Reverse() {
			c[i] = n - c[i]
		} else {
			c[i] += f.Offset()
		}
		if c[i] < 0 {
			c[i] = 0
		}
		if c[i] > n-1 {
			c[i] = n - 1
		}
	}
	m.StartCodon = NoStartCodon
	if c[0] != c[2] && len(epst) >= 3 {
		m.StartCodon = string(epst[:3])
	}
	// 1-based display; the RTP end is already exclusive
	m.Start, m.End = c[0]+1, c[1]
	m.EpstStart, m.EpstEnd = c[2]+1, c[3]+1
	m.EpstLength = abs(m.EpstStart - m.EpstEnd)
	return m
}

// upperBases returns ref itself when it holds no lower-case letter.
func upperBases(ref []byte) []byte {
	for _, c := range ref {
		if c >= 'a' && c <= 'z' {
			return bytes.ToUpper(ref)
		}
	}
	return ref
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
