package extend

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("extend")

// ErrMalformedMotif is returned for motif lines holding non-nucleotide symbols.
var ErrMalformedMotif = errors.New("malformed motif")

var (
	DefaultBeginSplice = []string{"CAGG"}
	DefaultEndSplice   = []string{"AAGGTAAGT", "AAGGTGAGT", "CAGGTAAGT", "CAGGTGAGT"}
)

// Site reports whether a boundary signal sits at pos of seq.
type Site interface {
	Match(seq []byte, pos int) bool
}

// MotifSet is a set of literal nucleotide motifs. A motif matches at pos when
// the reference, read from pos and cut at its end, equals the motif.
type MotifSet struct {
	motifs [][]byte
}

// NewMotifSet upper-cases and deduplicates motifs; blank entries are dropped.
func NewMotifSet(motifs ...string) MotifSet {
	seen := map[string]struct{}{}
	var out []string
	for _, m := range motifs {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m == "" {
			continue
		}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	sort.Strings(out)
	s := MotifSet{motifs: make([][]byte, len(out))}
	for i, m := range out {
		s.motifs[i] = []byte(m)
	}
	return s
}

func (s MotifSet) Match(seq []byte, pos int) bool {
	if pos < 0 || pos > len(seq) {
		return false
	}
	for _, m := range s.motifs {
		if bytes.HasPrefix(seq[pos:], m) {
			return true
		}
	}
	return false
}

// Len is the number of distinct motifs.
func (s MotifSet) Len() int { return len(s.motifs) }

// Strings returns the motifs in lexical order.
func (s MotifSet) Strings() []string {
	out := make([]string, len(s.motifs))
	for i, m := range s.motifs {
		out[i] = string(m)
	}
	return out
}

// ParseMotifs reads one motif per line. Blank lines and lines starting with
// '#' are skipped.
func ParseMotifs(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		m := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if m == "" || strings.HasPrefix(m, "#") {
			continue
		}
		if i := strings.IndexFunc(m, func(r rune) bool { return !strings.ContainsRune("ACGTN", r) }); i >= 0 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedMotif, line, m)
		}
		out = append(out, m)
	}
	return out, sc.Err()
}

// LoadMotifs reads a motif file; see ParseMotifs. An empty path or a file
// that does not exist yields defaults.
func LoadMotifs(path string, defaults []string) ([]string, error) {
	if path == "" {
		return defaults, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warningf("%s not found, using built-in motifs %v", path, defaults)
		return defaults, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := ParseMotifs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// PositionSet is a set of reference positions, as reported by a splice site
// predictor.
type PositionSet map[int]struct{}

// NewPositionSet returns the set of pos.
func NewPositionSet(pos ...int) PositionSet {
	s := make(PositionSet, len(pos))
	for _, p := range pos {
		s[p] = struct{}{}
	}
	return s
}

func (s PositionSet) Match(_ []byte, pos int) bool {
	_, ok := s[pos]
	return ok
}
