// Package codon holds genetic code tables, codon translation and the
// strand utilities used to derive the six reading frames.
package codon

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrMalformedTable is wrapped by every parse failure of a code table file.
	ErrMalformedTable = errors.New("malformed genetic code table")
	// ErrUnknownTable is returned by Lookup when no table carries the name.
	ErrUnknownTable = errors.New("unknown genetic code table")
)

// StandardName is the name of NCBI table 1.
const StandardName = "Standard"

var (
	DefaultStartCodons = []string{"ATG"}
	DefaultStopCodons  = []string{"TAA", "TAG", "TGA"}
)

const tcag = "TCAG"

// Table is one genetic code: a codon to residue map plus the codons that
// open and close a reading frame.
type Table struct {
	ID     int
	Names  []string
	codons map[string]byte
	starts []string
	stops  []string
}

// Name is the first name the table was declared with.
func (t *Table) Name() string {
	if len(t.Names) == 0 {
		return ""
	}
	return t.Names[0]
}

// HasName reports whether any of the table's names equals name, ignoring case.
func (t *Table) HasName(name string) bool {
	for _, n := range t.Names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

// Residue looks codon up by exact key.
func (t *Table) Residue(codon []byte) (byte, bool) {
	r, ok := t.codons[string(codon)]
	return r, ok
}

// Len is the number of codons in the table.
func (t *Table) Len() int { return len(t.codons) }

// Starts returns the start codons in lexical order.
func (t *Table) Starts() []string { return append([]string(nil), t.starts...) }

// Stops returns the stop codons in lexical order.
func (t *Table) Stops() []string { return append([]string(nil), t.stops...) }

// WithStarts returns a copy of t whose start codons are replaced by starts.
func (t *Table) WithStarts(starts []string) *Table {
	c := *t
	c.starts = normalizeCodons(starts)
	return &c
}

// WithStops returns a copy of t whose stop codons are replaced by stops.
func (t *Table) WithStops(stops []string) *Table {
	c := *t
	c.stops = normalizeCodons(stops)
	return &c
}

// NewTable builds a table from the NCBI column layout. The four strings
// ncbieaa, sncbieaa, base1, base2, base3 are read column-wise; column i
// describes codon base1[i]base2[i]base3[i]. Start codons are the columns
// marked M in sncbieaa and stop codons those marked * in ncbieaa.
func NewTable(id int, names []string, ncbieaa, sncbieaa, base1, base2, base3 string) (*Table, error) {
	n := len(ncbieaa)
	if n == 0 {
		return nil, fmt.Errorf("%w: table %d has no residues", ErrMalformedTable, id)
	}
	for _, col := range []string{sncbieaa, base1, base2, base3} {
		if len(col) != n {
			return nil, fmt.Errorf("%w: table %d columns differ in length", ErrMalformedTable, id)
		}
	}
	t := &Table{ID: id, Names: names, codons: make(map[string]byte, n)}
	var starts, stops []string
	for i := 0; i < n; i++ {
		c := string([]byte{upper(base1[i]), upper(base2[i]), upper(base3[i])})
		if _, dup := t.codons[c]; dup {
			return nil, fmt.Errorf("%w: table %d lists codon %s twice", ErrMalformedTable, id, c)
		}
		t.codons[c] = ncbieaa[i]
		if sncbieaa[i] == 'M' {
			starts = append(starts, c)
		}
		if ncbieaa[i] == '*' {
			stops = append(stops, c)
		}
	}
	t.starts = normalizeCodons(starts)
	t.stops = normalizeCodons(stops)
	return t, nil
}

// standardBases returns the Base1..Base3 rows for the conventional TCAG
// ordering of a 64-codon table.
func standardBases() (b1, b2, b3 string) {
	var x, y, z strings.Builder
	for _, i := range tcag {
		for _, j := range tcag {
			for _, k := range tcag {
				x.WriteRune(i)
				y.WriteRune(j)
				z.WriteRune(k)
			}
		}
	}
	return x.String(), y.String(), z.String()
}

func normalizeCodons(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 0x20
	}
	return b
}

// Lookup returns the table whose name or id (as decimal) equals name.
func Lookup(tables []*Table, name string) (*Table, error) {
	for _, t := range tables {
		if t.HasName(name) || fmt.Sprint(t.ID) == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
}
