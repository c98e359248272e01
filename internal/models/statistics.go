package models

// StatusCount is one bar of the status chart
type StatusCount struct {
	Status ConservationStatus `json:"status" yaml:"status"`
	Count  int                `json:"count" yaml:"count"`
}

// Breakdown folds raw per-status counts into the fixed display order.
// Every known status is present (zero-filled). Counts for any other stored
// value, including an empty status, are summed into a trailing StatusOther
// entry that is only emitted when non-zero.
func Breakdown(counts map[string]int) []StatusCount {
	out := make([]StatusCount, 0, len(Statuses)+1)
	for _, status := range Statuses {
		out = append(out, StatusCount{Status: status, Count: counts[string(status)]})
	}

	other := 0
	for label, n := range counts {
		if !ConservationStatus(label).IsKnown() {
			other += n
		}
	}
	if other > 0 {
		out = append(out, StatusCount{Status: StatusOther, Count: other})
	}
	return out
}

// Total sums the counts of a breakdown
func Total(counts []StatusCount) int {
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	return total
}

// MaxCount returns the tallest bar, or zero for an empty breakdown
func MaxCount(counts []StatusCount) int {
	highest := 0
	for _, c := range counts {
		if c.Count > highest {
			highest = c.Count
		}
	}
	return highest
}
