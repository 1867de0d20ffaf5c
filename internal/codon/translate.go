package codon

// Unknown is the residue emitted for codons absent from the table.
const Unknown = 'X'

// Translator maps nucleotide strings to residue strings through a Table.
type Translator struct {
	table *Table
}

// NewTranslator returns a Translator reading t.
func NewTranslator(t *Table) *Translator {
	return &Translator{table: t}
}

// Translate returns the residue for one codon, or Unknown if codon is not an
// exact key of the table.
func (tr *Translator) Translate(codon []byte) byte {
	if r, ok := tr.table.Residue(codon); ok {
		return r
	}
	return Unknown
}

// TranslateSequence translates seq codon by codon from position 0. Up to two
// trailing bases that do not fill a codon are dropped.
func (tr *Translator) TranslateSequence(seq []byte) []byte {
	out := make([]byte, 0, len(seq)/3)
	for i := 0; i+3 <= len(seq); i += 3 {
		out = append(out, tr.Translate(seq[i:i+3]))
	}
	return out
}
