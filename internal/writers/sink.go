// internal/writers/sink.go
package writers

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	biofasta "github.com/biogo/biogo/io/seqio/fasta"

	"pgmap/internal/output"
	"pgmap/internal/scanner"
)

// Sink writes every mapping to each configured stream. A nil stream is
// skipped. Sink is not safe for concurrent use; the pipeline collector is
// its only caller.
type Sink struct {
	tsv   *bufio.Writer
	gff   *bufio.Writer
	faB   *bufio.Writer
	fa    *biofasta.Writer
	jsB   *bufio.Writer
	js    *json.Encoder
	count int
}

// Streams are the destinations of a Sink.
type Streams struct {
	TSV   io.Writer // mapping table
	GFF   io.Writer // GFF3, two features per mapping
	FASTA io.Writer // ePST nucleotide records
	JSONL io.Writer // api.MappingV1 objects, one per line
}

// Options selects the optional parts of the output.
type Options struct {
	Header bool // TSV header row
}

// NewSink writes headers immediately so an empty run still yields valid files.
func NewSink(st Streams, opt Options) (*Sink, error) {
	s := &Sink{}
	if st.TSV != nil {
		s.tsv = bufio.NewWriter(st.TSV)
		if opt.Header {
			if _, err := s.tsv.WriteString(output.TSVHeader + "\n"); err != nil {
				return nil, err
			}
		}
	}
	if st.GFF != nil {
		s.gff = bufio.NewWriter(st.GFF)
		if _, err := s.gff.WriteString(output.GFFVersion + "\n"); err != nil {
			return nil, err
		}
	}
	if st.FASTA != nil {
		s.faB = bufio.NewWriter(st.FASTA)
		s.fa = biofasta.NewWriter(s.faB, output.FASTAWidth)
	}
	if st.JSONL != nil {
		s.jsB = bufio.NewWriter(st.JSONL)
		s.js = json.NewEncoder(s.jsB)
	}
	return s, nil
}

// Write emits m on every configured stream.
func (s *Sink) Write(m scanner.Mapping) error {
	if s.tsv != nil {
		if _, err := s.tsv.WriteString(output.FormatRow(m) + "\n"); err != nil {
			return err
		}
	}
	if s.gff != nil {
		for _, f := range output.Features(m) {
			if _, err := s.gff.WriteString(output.FormatGFF3(f) + "\n"); err != nil {
				return fmt.Errorf("gff: %w", err)
			}
		}
	}
	if s.fa != nil {
		if _, err := s.fa.Write(output.EpstSeq(m)); err != nil {
			return fmt.Errorf("fasta: %w", err)
		}
	}
	if s.js != nil {
		if err := s.js.Encode(output.ToAPI(m)); err != nil {
			return fmt.Errorf("json: %w", err)
		}
	}
	s.count++
	return nil
}

// Count is the number of mappings written.
func (s *Sink) Count() int { return s.count }

// Flush drains all buffers, reporting the first error.
func (s *Sink) Flush() error {
	var first error
	for _, b := range []*bufio.Writer{s.tsv, s.gff, s.faB, s.jsB} {
		if b == nil {
			continue
		}
		if err := b.Flush(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
