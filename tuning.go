package engine

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"github.com/pbnjay/memory"
)

// DefaultWorkers picks how many top-level search branches run at once.
// The subtract/contains loops are pure CPU with no memory stalls to hide,
// so hyperthreads add context switching without adding throughput — on
// SMT machines the physical core count wins.
func DefaultWorkers() int {
	n := runtime.NumCPU()
	if tpc := cpuid.CPU.ThreadsPerCore; tpc > 1 {
		if cores := n / tpc; cores > 0 {
			n = cores
		}
	}
	if n < 1 {
		n = 1
	}
	return n
}

// bucketCapacityHint sizes the index map up front. Wordlists in the
// hundred-thousand range are normal where a few GB are free; smaller
// machines start small and let the map grow.
func bucketCapacityHint() int {
	if memory.TotalMemory() >= 4<<30 {
		return 1 << 16
	}
	return 1 << 12
}
