package peptide

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/op/go-logging"
)

func init() {
	logging.SetLevel(logging.ERROR, "peptide")
}

func write(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "peps")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadFASTA(t *testing.T) {
	ps, err := LoadFASTA(context.Background(), write(t, ">p1 sample\nvang\n>p2\nMKR\n>empty\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 2 {
		t.Fatalf("got %d peptides", len(ps))
	}
	if ps[0].ID != "p1" || string(ps[0].Seq) != "VANG" || ps[0].Probability != 1 || ps[0].Count != 1 {
		t.Fatalf("p1 = %+v", ps[0])
	}
	seqs := Sequences(ps)
	if string(seqs[1]) != "MKR" {
		t.Fatalf("Sequences = %q", seqs)
	}
}

func TestLoadFASTAEmpty(t *testing.T) {
	if _, err := LoadFASTA(context.Background(), write(t, "")); !errors.Is(err, ErrEmpty) {
		t.Fatalf("want ErrEmpty, got %v", err)
	}
}

func TestLoadTabbed(t *testing.T) {
	ps, err := LoadTabbed(write(t, "VANG\t0.95\t3\nmkr\n\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 2 {
		t.Fatalf("got %d", len(ps))
	}
	if ps[0].ID != "VANG" || ps[0].Probability != 0.95 || ps[0].Count != 3 {
		t.Fatalf("row 1 = %+v", ps[0])
	}
	if ps[1].ID != "MKR" || ps[1].Probability != 1 || ps[1].Count != 1 {
		t.Fatalf("row 2 = %+v", ps[1])
	}
}

func TestLoadTabbedBadLine(t *testing.T) {
	_, err := LoadTabbed(write(t, "VANG\t1\t1\nMKR\tmany\t1\n"))
	if err == nil || !strings.Contains(err.Error(), ":2 bad probability") {
		t.Fatalf("got %v", err)
	}
}
