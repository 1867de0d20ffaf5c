// Package peptide loads the identified peptides that are mapped back to the
// genome.
package peptide

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/op/go-logging"

	"pgmap/internal/fasta"
)

var log = logging.MustGetLogger("peptide")

// ErrEmpty is returned when a peptide file holds no usable peptides.
var ErrEmpty = errors.New("no peptides")

// Peptide is an identified peptide. Seq holds upper-case residues.
type Peptide struct {
	ID          string
	Seq         []byte
	Probability float64
	Count       int
}

// New returns a peptide with probability 1 and count 1.
func New(id string, seq []byte) Peptide {
	return Peptide{ID: id, Seq: seq, Probability: 1, Count: 1}
}

// Sequences returns the residue strings of ps in order; index i is the
// pattern id of ps[i].
func Sequences(ps []Peptide) [][]byte {
	out := make([][]byte, len(ps))
	for i, p := range ps {
		out[i] = p.Seq
	}
	return out
}

// LoadFASTA reads peptides from a FASTA file; the id is the header name.
func LoadFASTA(ctx context.Context, path string) ([]Peptide, error) {
	var out []Peptide
	err := fasta.Stream(ctx, path, alphabet.Protein, func(r fasta.Record) error {
		if len(r.Seq) == 0 {
			log.Warningf("%s: peptide %q has no residues, skipped", path, r.ID)
			return nil
		}
		out = append(out, New(r.ID, r.Seq))
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return out, nil
}

// LoadTabbed reads "sequence<TAB>probability<TAB>count" lines. The sequence
// doubles as the id; absent probability or count default to 1.
func LoadTabbed(path string) ([]Peptide, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var out []Peptide
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Split(line, "\t")
		seq := strings.ToUpper(strings.TrimSpace(f[0]))
		if seq == "" {
			return nil, fmt.Errorf("%s:%d empty sequence", path, ln)
		}
		p := New(seq, []byte(seq))
		if len(f) > 1 {
			if p.Probability, err = strconv.ParseFloat(strings.TrimSpace(f[1]), 64); err != nil {
				return nil, fmt.Errorf("%s:%d bad probability: %v", path, ln, err)
			}
		}
		if len(f) > 2 {
			if p.Count, err = strconv.Atoi(strings.TrimSpace(f[2])); err != nil {
				return nil, fmt.Errorf("%s:%d bad count: %v", path, ln, err)
			}
		}
		out = append(out, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return out, nil
}
