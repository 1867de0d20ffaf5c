package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq"

	"pgmap/internal/codon"
	"pgmap/internal/scanner"
)

func sample(f codon.Frame) scanner.Mapping {
	m := scanner.Mapping{
		PeptideID:      "test",
		PeptideSeq:     "VANG",
		GenomeID:       "test sequence",
		Start:          34,
		End:            45,
		Frame:          f,
		RTP:            "GTGGCGAACGGC",
		EpstStart:      22,
		EpstEnd:        57,
		Epst:           "ATGAATTCGGCCGTGGCGAACGGCGAACGGGAATGA",
		EpstLength:     35,
		TranslatedEpst: "MNSAVANGERE*",
		StartCodon:     "ATG",
		Probability:    1,
		Count:          1,
	}
	if f.Reverse() {
		m.End, m.EpstStart, m.EpstEnd = 21, 46, 11
	}
	return m
}

func TestFormatRow(t *testing.T) {
	want := "test\tVANG\ttest sequence\t34\t45\t+\tF1\tGTGGCGAACGGC\t22\t57\tATGAATTCGGCCGTGGCGAACGGCGAACGGGAATGA\t35\tMNSAVANGERE*\tATG\t1\t1"
	if got := FormatRow(sample(codon.F1)); got != want {
		t.Fatalf("got\n%s\nwant\n%s", got, want)
	}
	m := sample(codon.R1)
	m.Probability = 0.25
	m.Count = 7
	f := strings.Split(FormatRow(m), "\t")
	if f[3] != "34" || f[4] != "21" || f[5] != "-" || f[6] != "R1" || f[14] != "0.25" || f[15] != "7" {
		t.Fatalf("reverse row fields %q", f)
	}
}

func TestHeaderMatchesRowWidth(t *testing.T) {
	if h, r := len(strings.Split(TSVHeader, "\t")), len(strings.Split(FormatRow(sample(codon.F1)), "\t")); h != 16 || r != 16 {
		t.Fatalf("header %d fields, row %d fields", h, r)
	}
}

func TestFeatures(t *testing.T) {
	fw := Features(sample(codon.F1))
	if fw[0].Source != SourceRTP || fw[1].Source != SourceEpst {
		t.Fatalf("sources %s %s", fw[0].Source, fw[1].Source)
	}
	if fw[0].FeatStart != 33 || fw[0].FeatEnd != 45 || fw[0].FeatStrand != seq.Plus {
		t.Fatalf("RTP feature %+v", fw[0])
	}
	rv := Features(sample(codon.R1))
	if rv[1].FeatStart != 10 || rv[1].FeatEnd != 46 || rv[1].FeatStrand != seq.Minus {
		t.Fatalf("reverse ePST feature %+v", rv[1])
	}
	if rv[0].SeqName != "test sequence" || rv[0].FeatAttributes[0].Tag != "ID" || rv[0].FeatAttributes[0].Value != "test" {
		t.Fatalf("identity %+v", rv[0])
	}
}

func TestFormatGFF3(t *testing.T) {
	m := sample(codon.F1)
	m.GenomeID = "g1"
	fw := Features(m)
	if got, want := FormatGFF3(fw[0]), "g1\tProteogenomicMapping,RTP\tregion\t34\t45\t.\t+\t.\tID=test;Name=test"; got != want {
		t.Fatalf("got\n%q\nwant\n%q", got, want)
	}

	m = sample(codon.R2)
	m.GenomeID = "g1"
	m.PeptideID = "pep 1;x=y,z%"
	rv := Features(m)
	want := "g1\tProteogenomicMapping,ePST\tregion\t11\t46\t.\t-\t.\tID=pep 1%3Bx%3Dy%2Cz%25;Name=pep 1%3Bx%3Dy%2Cz%25"
	if got := FormatGFF3(rv[1]); got != want {
		t.Fatalf("got\n%q\nwant\n%q", got, want)
	}
}

func TestEpstSeq(t *testing.T) {
	s := EpstSeq(sample(codon.F1))
	if s.Name() != "test" || s.Len() != 36 {
		t.Fatalf("name %q len %d", s.Name(), s.Len())
	}
	if got := string(alphabet.LettersToBytes(s.Seq)); got != sample(codon.F1).Epst {
		t.Fatalf("seq %s", got)
	}
}

func TestToAPIEncoding(t *testing.T) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, m := range []scanner.Mapping{sample(codon.F1), sample(codon.R3)} {
		if err := enc.Encode(ToAPI(m)); err != nil {
			t.Fatal(err)
		}
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], `{"peptide_id":"test","peptide_seq":"VANG","genome_id":"test sequence","start":34,"end":45,"strand":"+","frame":"F1"`) {
		t.Fatalf("line 0 = %s", lines[0])
	}
	if !strings.Contains(lines[1], `"strand":"-","frame":"R3"`) || !strings.HasSuffix(lines[1], `"probability":1,"count":1}`) {
		t.Fatalf("line 1 = %s", lines[1])
	}
}
