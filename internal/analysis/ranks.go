package analysis

import "sort"

// midranks converts values to ranks, assigning tied values the average of
// the ranks they span. The returned tie sizes (one entry per group of two
// or more equal values) feed the tie corrections in the rank tests.
func midranks(data []float64) (ranks []float64, tieSizes []int) {
	n := len(data)
	if n == 0 {
		return []float64{}, nil
	}

	// Create index-value pairs for sorting
	type pair struct {
		value float64
		index int
	}

	pairs := make([]pair, n)
	for i, val := range data {
		pairs[i] = pair{value: val, index: i}
	}

	// Sort by value
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].value < pairs[j].value
	})

	ranks = make([]float64, n)

	// Assign ranks, handling ties by averaging
	i := 0
	for i < n {
		j := i + 1

		// Find the end of the tie group
		for j < n && pairs[j].value == pairs[i].value {
			j++
		}

		// Calculate average rank for this group
		groupSize := j - i
		avgRank := float64(i+1) + float64(groupSize-1)/2.0

		// Assign average rank to all tied elements
		for k := i; k < j; k++ {
			ranks[pairs[k].index] = avgRank
		}

		if groupSize > 1 {
			tieSizes = append(tieSizes, groupSize)
		}

		i = j
	}

	return ranks, tieSizes
}

// tieCorrectionSum computes the sum of t^3 - t over all tie groups
func tieCorrectionSum(tieSizes []int) float64 {
	sum := 0.0
	for _, t := range tieSizes {
		tf := float64(t)
		sum += tf*tf*tf - tf
	}
	return sum
}
