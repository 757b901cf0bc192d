package core

// Stats summarizes an ordered sequence of integers.
// Max and Min are nil when the input was empty.
type Stats struct {
	Sum     int     `json:"sum"`
	Average float64 `json:"average"`
	Max     *int    `json:"max"`
	Min     *int    `json:"min"`
}

// Summarize computes sum, arithmetic mean, maximum and minimum over items.
// An empty input yields the zero sentinel (sum 0, average 0, absent
// extremes) rather than an error, so callers never divide by zero.
func Summarize(items []int) Stats {
	if len(items) == 0 {
		return Stats{}
	}

	sum := 0
	hi := items[0]
	lo := items[0]
	for _, n := range items {
		sum += n
		if n > hi {
			hi = n
		}
		if n < lo {
			lo = n
		}
	}

	return Stats{
		Sum:     sum,
		Average: float64(sum) / float64(len(items)),
		Max:     &hi,
		Min:     &lo,
	}
}

// Add returns the sum of two integers.
func Add(a, b int) int {
	return a + b
}
