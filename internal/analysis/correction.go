package analysis

// BonferroniAdjust scales each raw p-value by the size of the comparison
// family, capping every adjusted value at 1
func BonferroniAdjust(raw []float64) []float64 {
	m := float64(len(raw))
	adjusted := make([]float64, len(raw))
	for i, p := range raw {
		adj := p * m
		if adj > 1 {
			adj = 1
		}
		adjusted[i] = adj
	}
	return adjusted
}
