// internal/appcore/resources.go
package appcore

import (
	"os"
	"runtime"

	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

// Workers picks the worker count for threads; 0 or less means one per
// physical core.
func Workers(threads int) int {
	if threads > 0 {
		return threads
	}
	n := runtime.NumCPU()
	if cpuid.CPU.ThreadsPerCore > 1 {
		n /= cpuid.CPU.ThreadsPerCore
	}
	if n < 1 {
		n = 1
	}
	return n
}

// warnLargeInputs logs reference files whose size runs close to physical
// memory. Every record is held whole while it is scanned.
func warnLargeInputs(paths []string, workers int) {
	total := memory.TotalMemory()
	if total == 0 {
		return
	}
	for _, p := range paths {
		if p == "-" {
			continue
		}
		fi, err := os.Stat(p)
		if err != nil {
			continue
		}
		// a record, its six frames and their translations, per worker
		if need := uint64(fi.Size()) * 3 * uint64(workers); need > total/2 {
			log.Warningf("%s: %d bytes with %d workers may exhaust %d bytes of memory", p, fi.Size(), workers, total)
		}
	}
}
