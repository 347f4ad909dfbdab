// Package profile implements lightweight named-block timing, the same
// accumulate-and-average scheme profiling.cpp's time_block/end_time_block
// pair implements: every call under a given name contributes one sample,
// and Dump writes the running average per name.
package profile

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	samples = map[string]*stats{}
)

type stats struct {
	count int64
	total time.Duration
}

// Block starts timing a named block and returns a function that ends it.
// Call pattern: defer profile.Block("rasterize")().
func Block(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		s, ok := samples[name]
		if !ok {
			s = &stats{}
			samples[name] = s
		}
		s.count++
		s.total += d
		mu.Unlock()
	}
}

// Dump writes one line per named block, in alphabetical order, with the
// sample count and average duration, matching the table profiling.cpp
// writes to its output file at shutdown.
func Dump(w io.Writer) error {
	mu.Lock()
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, len(names))
	for i, name := range names {
		s := samples[name]
		avg := time.Duration(0)
		if s.count > 0 {
			avg = s.total / time.Duration(s.count)
		}
		lines[i] = fmt.Sprintf("%-24s count=%-8d avg=%v\n", name, s.count, avg)
	}
	mu.Unlock()

	for _, line := range lines {
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Reset clears all recorded samples. Used between test runs and at the
// start of a fresh profiling session.
func Reset() {
	mu.Lock()
	samples = map[string]*stats{}
	mu.Unlock()
}
