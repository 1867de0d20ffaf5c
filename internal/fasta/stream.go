// Package fasta streams FASTA records for the scanner and the peptide loader.
package fasta

import (
	"bytes"
	"context"
	"fmt"

	"github.com/biogo/biogo/alphabet"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one FASTA entry. ID is the first word of the header line.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// Stream reads every record of path in file order, upper-casing sequence
// letters. Cancellation via ctx is checked between records. emit returning
// a non-nil error stops the stream with that error.
func Stream(ctx context.Context, path string, alpha alphabet.Alphabet, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()

	sc := seqio.NewScanner(biofasta.NewReader(rc, linear.NewSeq("", nil, alpha)))
	for sc.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return fmt.Errorf("%s: unexpected sequence type %T", path, sc.Seq())
		}
		rec := Record{
			ID:          s.Name(),
			Description: s.Description(),
			Seq:         bytes.ToUpper(alphabet.LettersToBytes(s.Seq)),
		}
		if err := emit(rec); err != nil {
			return err
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
