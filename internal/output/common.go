package output

// TSVHeader is the canonical header row for the mapping table.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "Peptide ID\tPeptide Sequence\tGenome ID\tStart\tEnd\tStrand\tReading Frame\tRT Peptide Sequence\tePST Start\tePST End\tePST\tePST Length\tTranslated ePST\tStart Codon\tPeptide Probability\tPeptide Count"

// GFF sources for the two features written per mapping.
const (
	SourceRTP   = "ProteogenomicMapping,RTP"
	SourceEpst  = "ProteogenomicMapping,ePST"
	FeatureType = "region"
)

// GFFVersion is the directive written before the first feature.
const GFFVersion = "##gff-version 3"
