// SPDX-License-Identifier: MIT

// Package pricing provides small monetary arithmetic helpers.
package pricing

// Total returns the sum of all prices. An empty or nil slice totals 0.
// Complexity: O(n).
func Total(prices []float64) float64 {
	var total float64
	for _, p := range prices {
		total += p
	}

	return total
}
