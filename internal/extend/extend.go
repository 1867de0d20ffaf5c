// Package extend grows a matched peptide span on a reading-frame string to
// the boundaries of its enclosing putative transcript.
//
// All positions are 0-based indexes into the frame string; the returned span
// is inclusive and clamped into [0, len-1].
package extend

// Span is an inclusive [Start, End] interval.
type Span struct {
	Start, End int
}

// Extender computes the putative transcript around [start, end].
type Extender interface {
	Extend(seq []byte, start, end int) Span
}

func clamp(s Span, n int) Span {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > n-1 {
		s.End = n - 1
	}
	return s
}

// Prokaryote walks upstream in codon steps to the nearest in-frame stop,
// then forward from there to the first start codon before the peptide;
// downstream it runs to the next in-frame stop, including that codon.
type Prokaryote struct {
	Starts, Stops MotifSet
}

func (p Prokaryote) Extend(seq []byte, start, end int) Span {
	up := start
	for ; up > 0; up -= 3 {
		if p.Stops.Match(seq, up) {
			break
		}
	}
	s := up
	for ; s < start; s += 3 {
		if p.Starts.Match(seq, s) {
			break
		}
	}
	if s >= start {
		s = start
	}
	e := end
	for ; e < len(seq); e += 3 {
		if p.Stops.Match(seq, e) {
			break
		}
	}
	return clamp(Span{Start: s, End: e + 2}, len(seq))
}

// Eukaryote moves one base at a time. Codon-phase positions stop on a start
// or stop codon upstream and on a stop codon downstream; any position stops
// on a splice motif.
type Eukaryote struct {
	Starts, Stops MotifSet
	BeginSplice   Site
	EndSplice     Site
}

func (e Eukaryote) Extend(seq []byte, start, end int) Span {
	return spliceAware(seq, start, end, e.Starts, e.Stops, e.BeginSplice, e.EndSplice)
}

// SpliceEvidence is Eukaryote with predicted acceptor and donor positions in
// place of the motif sets.
type SpliceEvidence struct {
	Starts, Stops MotifSet
	Acceptors     PositionSet
	Donors        PositionSet
}

func (g SpliceEvidence) Extend(seq []byte, start, end int) Span {
	return spliceAware(seq, start, end, g.Starts, g.Stops, g.Acceptors, g.Donors)
}

func spliceAware(seq []byte, start, end int, starts, stops MotifSet, begin, finish Site) Span {
	s := start
	for k := 0; s > 0; s, k = s-1, k+1 {
		if k%3 == 0 && (stops.Match(seq, s) || starts.Match(seq, s)) {
			break
		}
		if begin != nil && begin.Match(seq, s) {
			break
		}
	}
	e := end
	for k := 0; e < len(seq); e, k = e+1, k+1 {
		if k%3 == 0 && stops.Match(seq, e) {
			break
		}
		if finish != nil && finish.Match(seq, e) {
			break
		}
	}
	return clamp(Span{Start: s, End: e}, len(seq))
}

// FixedWindow widens the span by Codons codons on each side.
type FixedWindow struct {
	Codons int
}

func (w FixedWindow) Extend(seq []byte, start, end int) Span {
	return clamp(Span{Start: start - 3*w.Codons, End: end + 3*w.Codons}, len(seq))
}
