// Package genesplicer reads splice site predictions written by GeneSplicer.
//
// Every line is "start end score confidence type"; only start, end and the
// donor/acceptor type are required.
package genesplicer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformedEntry is wrapped by every parse failure of a prediction line.
var ErrMalformedEntry = errors.New("malformed GeneSplicer entry")

// Kind is the splice site type of a prediction.
type Kind int

const (
	Acceptor Kind = iota
	Donor
)

func (k Kind) String() string {
	if k == Donor {
		return "donor"
	}
	return "acceptor"
}

// Entry is one parsed prediction line.
type Entry struct {
	Start, End int
	Score      float64
	Confidence string
	Kind       Kind
}

// ParseEntry parses one prediction line. A line mentioning "donor" is a donor
// site, anything else an acceptor.
func ParseEntry(line string) (Entry, error) {
	f := strings.Fields(line)
	if len(f) < 2 {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedEntry, line)
	}
	start, err := strconv.Atoi(f[0])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: bad start %q", ErrMalformedEntry, f[0])
	}
	end, err := strconv.Atoi(f[1])
	if err != nil {
		return Entry{}, fmt.Errorf("%w: bad end %q", ErrMalformedEntry, f[1])
	}
	e := Entry{Start: start, End: end, Kind: Acceptor}
	if len(f) > 2 {
		if s, err := strconv.ParseFloat(f[2], 64); err == nil {
			e.Score = s
		}
	}
	if len(f) > 3 {
		e.Confidence = f[3]
	}
	if strings.Contains(line, "donor") {
		e.Kind = Donor
	}
	return e, nil
}

// Evidence is the set of sites from one prediction file, keyed on each
// entry's start column.
type Evidence struct {
	Acceptors []int
	Donors    []int
}

func (e *Evidence) AcceptorSites() []int { return e.Acceptors }
func (e *Evidence) DonorSites() []int    { return e.Donors }

// Len is the total number of sites.
func (e *Evidence) Len() int { return len(e.Acceptors) + len(e.Donors) }

// Parse reads every non-blank line of r.
func Parse(r io.Reader) (*Evidence, error) {
	ev := &Evidence{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		ent, err := ParseEntry(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if ent.Kind == Donor {
			ev.Donors = append(ev.Donors, ent.Start)
		} else {
			ev.Acceptors = append(ev.Acceptors, ent.Start)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	sort.Ints(ev.Acceptors)
	sort.Ints(ev.Donors)
	return ev, nil
}

// Load parses the prediction file at path.
func Load(path string) (*Evidence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ev, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ev, nil
}
