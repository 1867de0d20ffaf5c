// internal/output/json.go
package output

import (
	"pgmap/internal/scanner"
	"pgmap/pkg/api"
)

// ToAPI converts m to the stable JSON schema.
func ToAPI(m scanner.Mapping) api.MappingV1 {
	return api.MappingV1{
		PeptideID:      m.PeptideID,
		PeptideSeq:     m.PeptideSeq,
		GenomeID:       m.GenomeID,
		Start:          m.Start,
		End:            m.End,
		Strand:         m.Strand(),
		Frame:          m.Frame.String(),
		RTP:            m.RTP,
		EpstStart:      m.EpstStart,
		EpstEnd:        m.EpstEnd,
		EpstLength:     m.EpstLength,
		Epst:           m.Epst,
		TranslatedEpst: m.TranslatedEpst,
		StartCodon:     m.StartCodon,
		Probability:    m.Probability,
		Count:          m.Count,
	}
}
