// pkg/api/mapping_v1.go
package api

// MappingV1 is the stable JSON/JSONL schema for one peptide mapping.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MappingV1 struct {
	PeptideID  string `json:"peptide_id"`
	PeptideSeq string `json:"peptide_seq"`
	GenomeID   string `json:"genome_id"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Strand     string `json:"strand"` // "+" | "-"
	Frame      string `json:"frame"`  // F1..F3, R1..R3
	RTP        string `json:"rtp"`

	EpstStart      int    `json:"epst_start"`
	EpstEnd        int    `json:"epst_end"`
	EpstLength     int    `json:"epst_length"`
	Epst           string `json:"epst"`
	TranslatedEpst string `json:"translated_epst"`
	StartCodon     string `json:"start_codon"` // "-" when the ePST begins at the peptide

	Probability float64 `json:"probability"`
	Count       int     `json:"count"`
}
