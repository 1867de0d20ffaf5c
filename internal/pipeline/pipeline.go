// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/biogo/biogo/alphabet"
	"github.com/op/go-logging"

	"pgmap/internal/fasta"
	"pgmap/internal/scanner"
)

var log = logging.MustGetLogger("pipeline")

// Config controls the scanning pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// ForEachMapping reads every record of seqFiles, scans it with m and calls
// visit for each mapping, records in file order and mappings in the order m
// emitted them. It returns the number of mappings visited and the first
// error encountered (reader, scanner, visit, or context cancellation).
func ForEachMapping(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	m Mapper,
	visit func(scanner.Mapping) error,
) (int, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		seq int
		rec fasta.Record
	}
	type batch struct {
		seq    int
		genome string
		hits   []scanner.Mapping
		err    error
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan batch, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					b := batch{seq: j.seq, genome: j.rec.ID}
					b.err = m.Scan(j.rec.ID, j.rec.Seq, func(x scanner.Mapping) error {
						b.hits = append(b.hits, x)
						return nil
					})
					log.Debugf("%s: %d bp, %d mappings", j.rec.ID, len(j.rec.Seq), len(b.hits))
					select {
					case results <- b:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: batches arrive in any order and are released by sequence number.
	var (
		cerr  error
		total int
		cwg   sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]batch)
		next := 0
		for b := range results {
			if cerr != nil {
				continue
			}
			pending[b.seq] = b
			for cerr == nil {
				p, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if p.err != nil {
					cerr = fmt.Errorf("%s: %w", p.genome, p.err)
					cancel()
					break
				}
				for _, h := range p.hits {
					if err := visit(h); err != nil {
						cerr = err
						cancel()
						break
					}
					total++
				}
			}
		}
	}()

	// Feed work
	var ferr error
	n := 0
	for _, fa := range seqFiles {
		err := fasta.Stream(ctx, fa, alphabet.DNAredundant, func(rec fasta.Record) error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- job{seq: n, rec: rec}:
				n++
				return nil
			}
		})
		if err != nil {
			ferr = err
			cancel()
			break
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	switch {
	case cerr != nil:
		return total, cerr
	case parent.Err() != nil:
		return total, parent.Err()
	}
	log.Infof("%d reference records scanned, %d mappings", n, total)
	return total, ferr
}
