package timing

import (
	"sort"
	"sync"
	"time"
)

// Summary aggregates the recorded durations of one operation
type Summary struct {
	Operation string
	Count     int
	Total     time.Duration
	Average   time.Duration
	Max       time.Duration
}

type Tracker struct {
	timings map[string][]time.Duration
	mu      sync.RWMutex
	enabled bool
	now     func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		timings: make(map[string][]time.Duration),
		enabled: true,
		now:     time.Now,
	}
}

// Start begins timing operation; call the returned func when it finishes
func (tt *Tracker) Start(operation string) func() {
	if tt == nil || !tt.isEnabled() {
		return func() {}
	}

	start := tt.now()
	return func() {
		tt.Record(operation, tt.now().Sub(start))
	}
}

func (tt *Tracker) Record(operation string, duration time.Duration) {
	tt.mu.Lock()
	defer tt.mu.Unlock()

	tt.timings[operation] = append(tt.timings[operation], duration)
}

func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

// Summaries returns one entry per operation, sorted by name
func (tt *Tracker) Summaries() []Summary {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	out := make([]Summary, 0, len(tt.timings))
	for operation, timings := range tt.timings {
		s := Summary{Operation: operation, Count: len(timings)}
		for _, d := range timings {
			s.Total += d
			if d > s.Max {
				s.Max = d
			}
		}
		if s.Count > 0 {
			s.Average = s.Total / time.Duration(s.Count)
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Operation < out[j].Operation })
	return out
}

// SetEnabled turns recording on or off; a disabled tracker's Start is a no-op
func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

func (tt *Tracker) isEnabled() bool {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	return tt.enabled
}
