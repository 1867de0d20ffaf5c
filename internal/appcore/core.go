// internal/appcore/core.go
package appcore

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/op/go-logging"

	"pgmap/internal/pipeline"
	"pgmap/internal/writers"
)

var log = logging.MustGetLogger("pgmap")

// Exit codes shared by every entry point.
const (
	ExitOK        = 0
	ExitUsage     = 2
	ExitIO        = 3
	ExitCancelled = 130
)

type Options struct {
	SeqFiles []string
	Threads  int

	Output      string // "-" or "" = stdout
	FastaOutput string
	GFFOutput   string
	JSONOutput  string
	Header      bool

	NoMatchExitCode int
}

// Run streams every reference through m, writes all outputs and maps the
// outcome to an exit code.
func Run(parent context.Context, stdout io.Writer, o Options, m pipeline.Mapper) int {
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}()
	create := func(path string) (io.Writer, error) {
		if path == "" {
			return nil, nil
		}
		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		closers = append(closers, f)
		return f, nil
	}

	tsv := stdout
	if o.Output != "" && o.Output != "-" {
		f, err := create(o.Output)
		if err != nil {
			log.Error(err)
			return ExitIO
		}
		tsv = f
	}
	gffOut, err := create(o.GFFOutput)
	if err != nil {
		log.Error(err)
		return ExitIO
	}
	faOut, err := create(o.FastaOutput)
	if err != nil {
		log.Error(err)
		return ExitIO
	}
	jsOut, err := create(o.JSONOutput)
	if err != nil {
		log.Error(err)
		return ExitIO
	}
	sink, err := writers.NewSink(writers.Streams{TSV: tsv, GFF: gffOut, FASTA: faOut, JSONL: jsOut}, writers.Options{Header: o.Header})
	if err != nil {
		log.Error(err)
		return ExitIO
	}

	thr := Workers(o.Threads)
	warnLargeInputs(o.SeqFiles, thr)
	log.Infof("%d workers", thr)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total, perr := pipeline.ForEachMapping(ctx, pipeline.Config{Threads: thr}, o.SeqFiles, m, sink.Write)

	if werr := sink.Flush(); writers.IsBrokenPipe(werr) || writers.IsBrokenPipe(perr) {
		return ExitOK
	} else if werr != nil {
		log.Error(werr)
		return ExitIO
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			log.Warning("interrupted")
			return ExitCancelled
		}
		log.Error(perr)
		return ExitIO
	}
	log.Noticef("%d mappings", total)
	if total == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}
