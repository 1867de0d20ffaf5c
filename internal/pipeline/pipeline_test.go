package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/op/go-logging"

	"pgmap/internal/codon"
	"pgmap/internal/extend"
	"pgmap/internal/peptide"
	"pgmap/internal/scanner"
)

func init() {
	logging.SetLevel(logging.ERROR, "pipeline")
}

// fakeMapper emits one mapping per record, slower for early records so
// workers finish out of order.
type fakeMapper struct {
	fail string
}

func (f fakeMapper) Scan(id string, ref []byte, emit func(scanner.Mapping) error) error {
	if id == f.fail {
		return errors.New("boom")
	}
	var idx int
	fmt.Sscanf(id, "r%d", &idx)
	time.Sleep(time.Duration(20-idx) * time.Millisecond)
	return emit(scanner.Mapping{GenomeID: id, Start: len(ref)})
}

func writeRefs(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, ">r%d\n%s\n", i, strings.Repeat("A", i+1))
	}
	p := filepath.Join(t.TempDir(), "refs.fa")
	if err := os.WriteFile(p, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}

func TestForEachMappingKeepsInputOrder(t *testing.T) {
	fn := writeRefs(t, 12)
	for _, threads := range []int{1, 4, 0} {
		var ids []string
		n, err := ForEachMapping(context.Background(), Config{Threads: threads}, []string{fn}, fakeMapper{},
			func(m scanner.Mapping) error {
				ids = append(ids, m.GenomeID)
				return nil
			})
		if err != nil {
			t.Fatalf("threads=%d: %v", threads, err)
		}
		if n != 12 || len(ids) != 12 {
			t.Fatalf("threads=%d: n=%d ids=%v", threads, n, ids)
		}
		for i, id := range ids {
			if id != fmt.Sprintf("r%d", i) {
				t.Fatalf("threads=%d: order %v", threads, ids)
			}
		}
	}
}

func TestForEachMappingMultipleFiles(t *testing.T) {
	a, b := writeRefs(t, 2), writeRefs(t, 3)
	n, err := ForEachMapping(context.Background(), Config{Threads: 2}, []string{a, b}, fakeMapper{},
		func(scanner.Mapping) error { return nil })
	if err != nil || n != 5 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestForEachMappingScanError(t *testing.T) {
	fn := writeRefs(t, 6)
	_, err := ForEachMapping(context.Background(), Config{Threads: 3}, []string{fn}, fakeMapper{fail: "r2"},
		func(scanner.Mapping) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "r2: boom") {
		t.Fatalf("got %v", err)
	}
}

func TestForEachMappingVisitError(t *testing.T) {
	fn := writeRefs(t, 6)
	stop := errors.New("sink full")
	n, err := ForEachMapping(context.Background(), Config{Threads: 2}, []string{fn}, fakeMapper{},
		func(scanner.Mapping) error { return stop })
	if !errors.Is(err, stop) || n != 0 {
		t.Fatalf("n=%d err=%v", n, err)
	}
}

func TestForEachMappingMissingFile(t *testing.T) {
	_, err := ForEachMapping(context.Background(), Config{Threads: 1},
		[]string{filepath.Join(t.TempDir(), "missing.fa")}, fakeMapper{},
		func(scanner.Mapping) error { return nil })
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("want ErrNotExist, got %v", err)
	}
}

func TestForEachMappingCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ForEachMapping(ctx, Config{Threads: 2}, []string{writeRefs(t, 4)}, fakeMapper{},
		func(scanner.Mapping) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestForEachMappingWithScanner(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "g.fa")
	ref := "TAGATTGAATGAAGGGTGACGATGAATTCGGCCGTGGCGAACGGCGAACGGGAATGATCTAGGTAT"
	if err := os.WriteFile(fn, []byte(">g1 test\n"+ref+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	sc := scanner.New([]peptide.Peptide{peptide.New("test", []byte("VANG"))},
		codon.NewTranslator(codon.Standard()),
		extend.Prokaryote{Starts: extend.NewMotifSet("ATG"), Stops: extend.NewMotifSet("TAA", "TAG", "TGA")})
	var got []scanner.Mapping
	n, err := ForEachMapping(context.Background(), Config{Threads: 2}, []string{fn}, sc,
		func(m scanner.Mapping) error {
			got = append(got, m)
			return nil
		})
	if err != nil || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if got[0].GenomeID != "g1" || got[0].Start != 34 || got[0].EpstEnd != 57 {
		t.Fatalf("got %+v", got[0])
	}
}
