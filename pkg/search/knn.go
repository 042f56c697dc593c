package search

import "sort"

// evalKnn is component E, the k-NN driver. Preconditions: activeField
// must be empty (a KNN node sets its own field scope via n.Field) and
// n.Field must resolve to a vector index whose dimension matches
// len(n.Vec). The driver writes into e.knnScores so the top-level Search
// call can attach scores to the SearchResult in parallel with the id
// list it returns here.
func (e *evaluator) evalKnn(n AstKnn, activeField string) IndexResult {
	assertf(activeField == "", "KNN node evaluated with non-empty active field %q", activeField)

	idx, ok := e.vectorIndexFor(n.Field)
	if !ok {
		return EmptyResult()
	}

	dim, sim := idx.Info()
	if dim != len(n.Vec) {
		e.err.set("Wrong vector index dimensions, got: %d, expected: %d", len(n.Vec), dim)
		return EmptyResult()
	}

	filter := n.Filter
	if filter == nil {
		filter = AstStar{}
	}
	subResults := e.eval(filter, "")
	coversAll := subResults.Size() >= len(e.indices.GetAllDocs())

	var scored []ScoredDoc
	switch v := idx.(type) {
	case HnswVectorIndex:
		if coversAll {
			scored = v.Knn(n.Vec, n.Limit, n.EfRuntime)
		} else {
			scored = v.Knn(n.Vec, n.Limit, n.EfRuntime, subResults.Take())
		}
	case FlatVectorIndex:
		scored = flatKnn(v, n.Vec, n.Limit, sim, subResults.Take())
	default:
		return EmptyResult()
	}

	ids := make(DocIds, len(scored))
	scores := make([]KnnScore, len(scored))
	for i, s := range scored {
		ids[i] = s.Doc
		scores[i] = KnnScore{Doc: s.Doc, Distance: s.Distance}
	}
	e.knnScores = scores
	return OwnedResult(ids)
}

// flatKnn brute-forces distances against every filtered candidate,
// keeping the limit closest. Ties are broken by ascending DocId (§9b: not
// codified by the source, but a stable order on equal distance is
// recommended).
func flatKnn(idx FlatVectorIndex, query []float32, limit int, sim Similarity, candidates DocIds) []ScoredDoc {
	scored := make([]ScoredDoc, 0, len(candidates))
	for _, doc := range candidates {
		vec := idx.Get(doc)
		if vec == nil {
			continue
		}
		scored = append(scored, ScoredDoc{Doc: doc, Distance: VectorDistance(query, vec, sim)})
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Distance != scored[j].Distance {
			return scored[i].Distance < scored[j].Distance
		}
		return scored[i].Doc < scored[j].Doc
	})

	if limit < len(scored) {
		scored = scored[:limit]
	}
	return scored
}
