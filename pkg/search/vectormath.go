package search

import "github.com/hupe1980/vecgo/distance"

// VectorDistance computes a "lower is closer" distance between two
// vectors under sim, reusing vecgo's SIMD-accelerated primitives instead
// of a hand-rolled loop. L2 is already such a distance (squared); Dot and
// Cosine are similarities: Dot is negated, and Cosine normalizes both
// operands first (vecgo's Dot assumes pre-normalized input for cosine
// semantics) and returns 1 minus their dot product, or 1 when either
// operand cannot be normalized. Exported so internal/indexkinds's own vector
// backends can share this instead of keeping a second copy.
func VectorDistance(query, stored []float32, sim Similarity) float32 {
	switch sim {
	case SimilarityCosine:
		qn, okq := distance.NormalizeL2Copy(query)
		sn, oks := distance.NormalizeL2Copy(stored)
		if !okq || !oks {
			return 1
		}
		return 1 - distance.Dot(qn, sn)
	case SimilarityDot:
		return -distance.Dot(query, stored)
	default:
		return distance.SquaredL2(query, stored)
	}
}
