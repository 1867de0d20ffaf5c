// internal/pipeline/mapper.go
package pipeline

import "pgmap/internal/scanner"

// Mapper is the minimal capability the pipeline needs.
// *scanner.Scanner satisfies it, as can fakes in tests.
type Mapper interface {
	Scan(genomeID string, ref []byte, emit func(scanner.Mapping) error) error
}
