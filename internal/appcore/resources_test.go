package appcore

import (
	"runtime"
	"testing"
)

func TestWorkers(t *testing.T) {
	if got := Workers(3); got != 3 {
		t.Fatalf("Workers(3) = %d", got)
	}
	got := Workers(0)
	if got < 1 || got > runtime.NumCPU() {
		t.Fatalf("Workers(0) = %d with %d CPUs", got, runtime.NumCPU())
	}
	if Workers(-2) != got {
		t.Fatal("negative threads should behave like 0")
	}
}

func TestWarnLargeInputsToleratesMissingFiles(t *testing.T) {
	warnLargeInputs([]string{"-", "no/such/file.fa"}, 4)
}
