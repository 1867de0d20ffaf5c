// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/alecthomas/kingpin.v2"

	"pgmap/internal/version"
)

var (
	// ErrHelp is returned after --help printed the usage text.
	ErrHelp = errors.New("help requested")
	// ErrVersion is returned after --version printed the version.
	ErrVersion = errors.New("version requested")
)

// LogLevels accepted by --log-level, most to least severe.
var LogLevels = []string{"critical", "error", "warning", "notice", "info", "debug"}

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs
	PeptideFile string
	Tabbed      bool
	SeqFiles    []string
	GeneSplicer string
	BeginSplice string
	EndSplice   string
	StartCodons string
	StopCodons  string

	// Genetic code
	CodeFile string
	CodeName string

	// Extension mode
	Eukaryote bool
	Codons    int

	// Outputs
	Output      string // TSV path, "-" = stdout
	FastaOutput string
	GFFOutput   string
	JSONOutput  string
	Header      bool // true unless --no-header

	// Run
	Threads         int
	LogLevel        string
	LogFile         string
	Quiet           bool
	NoMatchExitCode int
}

// NewApp registers every flag on a fresh kingpin application bound to opt.
// finish must be called after a successful parse to fill the derived fields.
func NewApp(name string, opt *Options) (app *kingpin.Application, finish func()) {
	app = kingpin.New(name, "map identified peptides back onto genome sequences through six-frame translation").
		Version(fmt.Sprintf("%s version %s", name, version.Version))
	app.HelpFlag.Short('h')

	// inputs
	app.Flag("peptides", "peptide FASTA file (or tabbed file with --tabbed)").Short('p').Required().ExistingFileVar(&opt.PeptideFile)
	app.Flag("tabbed", "peptide file holds <sequence>\\t<probability>\\t<count> lines").Short('t').BoolVar(&opt.Tabbed)
	refs := app.Flag("reference", "reference FASTA file(s), repeatable, '-' for stdin, .gz accepted").Short('r').Strings()
	args := app.Arg("references", "more reference FASTA files").Strings()
	app.Flag("genesplicer", "GeneSplicer predictions; enables splice evidence mode").Short('g').StringVar(&opt.GeneSplicer)
	app.Flag("begin-splice-sites", "motif file for splice sites upstream of the peptide").Short('b').StringVar(&opt.BeginSplice)
	app.Flag("end-splice-sites", "motif file for splice sites downstream of the peptide").Short('e').StringVar(&opt.EndSplice)
	app.Flag("start-codons", "file of start codons, one per line (overrides the code table)").StringVar(&opt.StartCodons)
	app.Flag("stop-codons", "file of stop codons, one per line (overrides the code table)").StringVar(&opt.StopCodons)

	// genetic code
	app.Flag("code-file", "NCBI gc.prt genetic code file (built-in tables by default)").Short('c').ExistingFileVar(&opt.CodeFile)
	app.Flag("code-name", "name or id of the genetic code table").Short('n').Default("Standard").StringVar(&opt.CodeName)

	// mode
	app.Flag("eukaryote", "eukaryotic extension with splice motifs").Short('i').BoolVar(&opt.Eukaryote)
	app.Flag("codons", "extend a fixed number of codons on each side (0 = off)").Short('d').Default("0").IntVar(&opt.Codons)

	// outputs
	app.Flag("output", "mapping table path ('-' = stdout)").Short('o').Default("-").StringVar(&opt.Output)
	app.Flag("fasta-output", "write ePST FASTA records to this file").Short('f').StringVar(&opt.FastaOutput)
	app.Flag("gff-output", "write RTP and ePST GFF features to this file").StringVar(&opt.GFFOutput)
	app.Flag("json-output", "write one JSON object per mapping to this file").Short('j').StringVar(&opt.JSONOutput)
	noHeader := app.Flag("no-header", "suppress the header line of the mapping table").Bool()

	// run
	app.Flag("threads", "number of worker threads (0 = all CPUs)").Default("0").IntVar(&opt.Threads)
	app.Flag("log-level", "set log level ('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").EnumVar(&opt.LogLevel, LogLevels...)
	app.Flag("log-file", "append log messages to a file instead of stderr").StringVar(&opt.LogFile)
	app.Flag("quiet", "only log errors").Short('q').BoolVar(&opt.Quiet)
	app.Flag("no-match-exit-code", "exit code when no peptide maps").Default("1").IntVar(&opt.NoMatchExitCode)

	finish = func() {
		opt.SeqFiles = append(append([]string(nil), *refs...), *args...)
		opt.Header = !*noHeader
	}
	return app, finish
}

// ParseArgs parses argv into Options. Usage, help and version text go to
// usage. ErrHelp and ErrVersion report that nothing should run.
func ParseArgs(name string, argv []string, usage io.Writer) (Options, error) {
	var opt Options
	app, finish := NewApp(name, &opt)
	app.UsageWriter(usage)
	app.ErrorWriter(usage)

	exited := false
	app.Terminate(func(int) { exited = true })

	versionFlag := false
	for _, a := range argv {
		if a == "--version" {
			versionFlag = true
		}
	}

	_, err := app.Parse(stdinOperands(app, argv))
	if exited {
		if versionFlag {
			return opt, ErrVersion
		}
		return opt, ErrHelp
	}
	if err != nil {
		return opt, err
	}
	finish()
	return opt, validate(opt)
}

// stdinOperands rewrites each bare "-" so kingpin does not read it as a
// flag: the value of a preceding value flag becomes "--name=-", any other
// "-" a "--reference=-". Arguments after "--" are left alone.
func stdinOperands(app *kingpin.Application, argv []string) []string {
	takesValue := map[string]string{}
	for _, f := range app.Model().Flags {
		if f.IsBoolFlag() {
			continue
		}
		takesValue["--"+f.Name] = f.Name
		if f.Short != 0 {
			takesValue["-"+string(f.Short)] = f.Name
		}
	}

	out := make([]string, 0, len(argv))
	for i, a := range argv {
		if a == "--" {
			return append(out, argv[i:]...)
		}
		if a != "-" {
			out = append(out, a)
			continue
		}
		if n := len(out); n > 0 {
			if name, ok := takesValue[out[n-1]]; ok {
				out[n-1] = "--" + name + "=-"
				continue
			}
		}
		out = append(out, "--reference=-")
	}
	return out
}

func validate(opt Options) error {
	if len(opt.SeqFiles) == 0 {
		return errors.New("at least one --reference file is required")
	}
	if opt.Threads < 0 {
		return errors.New("--threads must be >= 0")
	}
	if opt.Codons < 0 {
		return errors.New("--codons must be >= 0")
	}
	if opt.NoMatchExitCode < 0 || opt.NoMatchExitCode > 125 {
		return errors.New("--no-match-exit-code must be in 0..125")
	}
	return nil
}
