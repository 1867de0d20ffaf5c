// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	front := []string{"pgmap/internal/appcore", "pgmap/internal/app", "pgmap/internal/cli", "pgmap/cmd/"}
	sinks := []string{"pgmap/internal/pipeline", "pgmap/internal/writers", "pgmap/internal/output"}
	leaf := append(append([]string{"pgmap/internal/scanner", "pgmap/internal/genesplicer"}, sinks...), front...)

	bans := map[string][]string{
		"pgmap/internal/codon":     leaf,
		"pgmap/internal/automaton": append([]string{"pgmap/internal/codon"}, leaf...),
		"pgmap/internal/extend":    leaf,
		"pgmap/internal/scanner":   append([]string{"pgmap/internal/fasta", "pgmap/internal/genesplicer"}, append(sinks, front...)...),
		"pgmap/internal/pipeline":  append([]string{"pgmap/internal/writers", "pgmap/internal/output"}, front...),
		"pgmap/internal/output":    append([]string{"pgmap/internal/pipeline"}, front...),
		"pgmap/internal/writers":   append([]string{"pgmap/internal/pipeline"}, front...),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "pgmap/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "pgmap/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" -> "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
