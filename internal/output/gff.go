package output

import (
	"strconv"
	"strings"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"pgmap/internal/scanner"
)

// Features returns the RTP and ePST features of m. GFF intervals run low to
// high on both strands; FeatStart is 0-based as the biogo writer expects.
func Features(m scanner.Mapping) [2]*gff.Feature {
	strand := seq.Plus
	if m.Frame.Reverse() {
		strand = seq.Minus
	}
	feature := func(source string, a, b int) *gff.Feature {
		if a > b {
			a, b = b, a
		}
		return &gff.Feature{
			SeqName:    m.GenomeID,
			Source:     source,
			Feature:    FeatureType,
			FeatStart:  a - 1,
			FeatEnd:    b,
			FeatStrand: strand,
			FeatFrame:  gff.NoFrame,
			FeatAttributes: gff.Attributes{
				{Tag: "ID", Value: m.PeptideID},
				{Tag: "Name", Value: m.PeptideID},
			},
		}
	}
	return [2]*gff.Feature{
		feature(SourceRTP, m.Start, m.End),
		feature(SourceEpst, m.EpstStart, m.EpstEnd),
	}
}

// FormatGFF3 renders f as one GFF3 line without the trailing newline.
// Attributes are written as tag=value pairs joined by ';'.
func FormatGFF3(f *gff.Feature) string {
	score := "."
	if f.FeatScore != nil {
		score = strconv.FormatFloat(*f.FeatScore, 'g', -1, 64)
	}
	strand := "."
	switch f.FeatStrand {
	case seq.Plus:
		strand = "+"
	case seq.Minus:
		strand = "-"
	}
	frame := "."
	if f.FeatFrame != gff.NoFrame {
		frame = strconv.Itoa(int(f.FeatFrame))
	}
	attrs := "."
	if len(f.FeatAttributes) > 0 {
		kv := make([]string, len(f.FeatAttributes))
		for i, a := range f.FeatAttributes {
			kv[i] = escapeGFF3(a.Tag) + "=" + escapeGFF3(a.Value)
		}
		attrs = strings.Join(kv, ";")
	}
	return strings.Join([]string{
		escapeGFF3(f.SeqName),
		f.Source,
		f.Feature,
		strconv.Itoa(f.FeatStart + 1),
		strconv.Itoa(f.FeatEnd),
		score,
		strand,
		frame,
		attrs,
	}, "\t")
}

// escapeGFF3 percent-encodes the characters GFF3 reserves in column 1 and
// column 9, plus control characters.
func escapeGFF3(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ';', c == '=', c == '&', c == ',', c == '%', c < 0x20, c == 0x7f:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0xf])
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
