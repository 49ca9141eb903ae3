package renderer

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrNoWorkers is returned when a render is requested with fewer than one worker
var ErrNoWorkers = errors.New("renderer: worker count must be at least 1")

// RowRange is a half-open band of image rows [Start, End)
type RowRange struct {
	Start int
	End   int
}

// Len returns the number of rows in the band
func (r RowRange) Len() int {
	return r.End - r.Start
}

// WorkerCount returns the number of render workers for this machine.
// One CPU is left for the rest of the system; a single-CPU machine still gets one worker.
func WorkerCount() int {
	return max(1, runtime.NumCPU()-1)
}

// PartitionRows splits [0, height) into one contiguous band per worker.
// Every band gets height/workers rows and the first band also takes the remainder.
func PartitionRows(height, workers int) ([]RowRange, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrNoWorkers, workers)
	}
	if height < 0 {
		return nil, fmt.Errorf("renderer: negative image height %d", height)
	}

	step := height / workers
	first := step + height%workers

	ranges := make([]RowRange, workers)
	start := 0
	for i := range ranges {
		size := step
		if i == 0 {
			size = first
		}
		ranges[i] = RowRange{Start: start, End: start + size}
		start += size
	}

	return ranges, nil
}
