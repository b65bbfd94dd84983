package engine

// Weight is a bounded keyword importance score.
type Weight uint64

// Bounds for every stored weight. Arithmetic that would leave the
// range saturates at the nearer bound instead of wrapping.
const (
	MinWeight Weight = 1
	MaxWeight Weight = 20
)

// clampWeight maps an arbitrary signed value into [MinWeight, MaxWeight].
func clampWeight(v int64) Weight {
	if v < int64(MinWeight) {
		return MinWeight
	}
	if v > int64(MaxWeight) {
		return MaxWeight
	}
	return Weight(v)
}
