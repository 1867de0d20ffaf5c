package extend

import "fmt"

// Kind selects the extension policy.
type Kind int

const (
	KindProkaryote Kind = iota
	KindEukaryote
	KindFixedWindow
	KindSpliceEvidence
)

func (k Kind) String() string {
	switch k {
	case KindProkaryote:
		return "prokaryote"
	case KindEukaryote:
		return "eukaryote"
	case KindFixedWindow:
		return "fixed-window"
	case KindSpliceEvidence:
		return "splice-evidence"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Mode is the run's extension policy together with the data only that policy
// reads.
type Mode struct {
	Kind      Kind
	Codons    int
	Acceptors PositionSet
	Donors    PositionSet
}

// Evidence carries splice sites from a predictor run.
type Evidence interface {
	AcceptorSites() []int
	DonorSites() []int
}

// SelectMode applies the policy precedence: an explicit eukaryote request
// wins, then a positive codon window, then splice evidence, and prokaryote
// otherwise. ev may be nil.
func SelectMode(eukaryote bool, codons int, ev Evidence) Mode {
	switch {
	case eukaryote:
		return Mode{Kind: KindEukaryote}
	case codons > 0:
		return Mode{Kind: KindFixedWindow, Codons: codons}
	case ev != nil:
		return Mode{
			Kind:      KindSpliceEvidence,
			Acceptors: NewPositionSet(ev.AcceptorSites()...),
			Donors:    NewPositionSet(ev.DonorSites()...),
		}
	}
	return Mode{Kind: KindProkaryote}
}

// Signals are the motif sets shared by the codon-aware policies.
type Signals struct {
	Starts, Stops          MotifSet
	BeginSplice, EndSplice MotifSet
}

// Extender builds the Extender for m.
func (m Mode) Extender(sig Signals) Extender {
	switch m.Kind {
	case KindEukaryote:
		return Eukaryote{Starts: sig.Starts, Stops: sig.Stops, BeginSplice: sig.BeginSplice, EndSplice: sig.EndSplice}
	case KindFixedWindow:
		return FixedWindow{Codons: m.Codons}
	case KindSpliceEvidence:
		return SpliceEvidence{Starts: sig.Starts, Stops: sig.Stops, Acceptors: m.Acceptors, Donors: m.Donors}
	}
	return Prokaryote{Starts: sig.Starts, Stops: sig.Stops}
}
