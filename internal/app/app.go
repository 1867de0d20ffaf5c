// Package app wires the command line onto the mapping pipeline.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/op/go-logging"

	"pgmap/internal/appcore"
	"pgmap/internal/cli"
	"pgmap/internal/cmdutil"
	"pgmap/internal/codon"
	"pgmap/internal/extend"
	"pgmap/internal/genesplicer"
	"pgmap/internal/peptide"
	"pgmap/internal/scanner"
	"pgmap/internal/writers"
)

var log = logging.MustGetLogger("pgmap")

const name = "pgmap"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	if len(argv) == 0 {
		argv = []string{"--help"}
	}

	var usage bytes.Buffer
	opts, err := cli.ParseArgs(name, argv, &usage)
	if errors.Is(err, cli.ErrHelp) || errors.Is(err, cli.ErrVersion) {
		if _, e := stdout.Write(usage.Bytes()); e != nil && !writers.IsBrokenPipe(e) {
			_, _ = fmt.Fprintln(stderr, e)
			return appcore.ExitIO
		}
		return appcore.ExitOK
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: error: %v, try --help\n", name, err)
		return appcore.ExitUsage
	}

	closer, err := cmdutil.SetupLogging(stderr, opts.LogLevel, opts.Quiet, opts.LogFile)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: error: %v\n", name, err)
		return appcore.ExitUsage
	}
	defer closer.Close()

	sc, err := Build(parent, opts)
	if errors.Is(err, context.Canceled) {
		return appcore.ExitCancelled
	}
	if err != nil {
		log.Error(err)
		return appcore.ExitUsage
	}

	return appcore.Run(parent, stdout, appcore.Options{
		SeqFiles:        opts.SeqFiles,
		Threads:         opts.Threads,
		Output:          opts.Output,
		FastaOutput:     opts.FastaOutput,
		GFFOutput:       opts.GFFOutput,
		JSONOutput:      opts.JSONOutput,
		Header:          opts.Header,
		NoMatchExitCode: opts.NoMatchExitCode,
	}, sc)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// Build loads every run-wide resource named by opts and returns the scanner.
func Build(ctx context.Context, opts cli.Options) (*scanner.Scanner, error) {
	table, err := loadTable(opts)
	if err != nil {
		return nil, err
	}
	starts, err := extend.LoadMotifs(opts.StartCodons, table.Starts())
	if err != nil {
		return nil, err
	}
	stops, err := extend.LoadMotifs(opts.StopCodons, table.Stops())
	if err != nil {
		return nil, err
	}
	table = table.WithStarts(starts).WithStops(stops)

	var peps []peptide.Peptide
	if opts.Tabbed {
		peps, err = peptide.LoadTabbed(opts.PeptideFile)
	} else {
		peps, err = peptide.LoadFASTA(ctx, opts.PeptideFile)
	}
	if err != nil {
		return nil, err
	}

	begin, err := extend.LoadMotifs(opts.BeginSplice, extend.DefaultBeginSplice)
	if err != nil {
		return nil, err
	}
	end, err := extend.LoadMotifs(opts.EndSplice, extend.DefaultEndSplice)
	if err != nil {
		return nil, err
	}

	ev, err := loadEvidence(opts.GeneSplicer)
	if err != nil {
		return nil, err
	}

	mode := extend.SelectMode(opts.Eukaryote, opts.Codons, ev)
	sig := extend.Signals{
		Starts:      extend.NewMotifSet(table.Starts()...),
		Stops:       extend.NewMotifSet(table.Stops()...),
		BeginSplice: extend.NewMotifSet(begin...),
		EndSplice:   extend.NewMotifSet(end...),
	}
	log.Noticef("%d peptides, %s mode, code table %q of %d codons (starts %s, stops %s)",
		len(peps), mode.Kind, table.Name(), table.Len(),
		strings.Join(table.Starts(), ","), strings.Join(table.Stops(), ","))
	if mode.Kind == extend.KindEukaryote {
		log.Infof("%d begin and %d end splice motifs", sig.BeginSplice.Len(), sig.EndSplice.Len())
	}

	sc := scanner.New(peps, codon.NewTranslator(table), mode.Extender(sig))
	log.Debugf("peptide automaton of %d states", sc.States())
	return sc, nil
}

func loadTable(opts cli.Options) (*codon.Table, error) {
	if opts.CodeFile != "" {
		tables, err := codon.LoadTables(opts.CodeFile)
		if err != nil {
			return nil, err
		}
		return codon.Lookup(tables, opts.CodeName)
	}
	if strings.EqualFold(opts.CodeName, codon.StandardName) || opts.CodeName == "1" || opts.CodeName == "" {
		return codon.Standard(), nil
	}
	return codon.Lookup(codon.Builtin(), opts.CodeName)
}

// loadEvidence returns a nil interface when no prediction file is usable.
func loadEvidence(path string) (extend.Evidence, error) {
	if path == "" {
		return nil, nil
	}
	ev, err := genesplicer.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warningf("%s not found, splice evidence disabled", path)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	log.Infof("%d splice sites (%d acceptor, %d donor) from %s", ev.Len(), len(ev.Acceptors), len(ev.Donors), path)
	return ev, nil
}
