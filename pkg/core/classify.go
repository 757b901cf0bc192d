package core

import "fmt"

// Classify describes an integer by sign and parity,
// e.g. "10 is positive and even". It is total over all integers.
func Classify(n int) string {
	sign := "zero"
	switch {
	case n > 0:
		sign = "positive"
	case n < 0:
		sign = "negative"
	}

	// n%2 != 0 covers negative odds too: Go's % keeps the dividend's sign.
	parity := "even"
	if n%2 != 0 {
		parity = "odd"
	}

	return fmt.Sprintf("%d is %s and %s", n, sign, parity)
}
