// internal/output/text.go
package output

import (
	"strconv"
	"strings"

	"pgmap/internal/scanner"
)

// FormatRow renders m as one TSV line without the trailing newline.
func FormatRow(m scanner.Mapping) string {
	return strings.Join([]string{
		m.PeptideID,
		m.PeptideSeq,
		m.GenomeID,
		strconv.Itoa(m.Start),
		strconv.Itoa(m.End),
		m.Strand(),
		m.Frame.String(),
		m.RTP,
		strconv.Itoa(m.EpstStart),
		strconv.Itoa(m.EpstEnd),
		m.Epst,
		strconv.Itoa(m.EpstLength),
		m.TranslatedEpst,
		m.StartCodon,
		strconv.FormatFloat(m.Probability, 'f', -1, 64),
		strconv.Itoa(m.Count),
	}, "\t")
}
