package indexkinds

import "github.com/kittclouds/ftsearch/pkg/search"

// FlatVectorIndex is a brute-force vector index: it stores every vector
// verbatim and leaves distance computation to the evaluator's k-NN
// driver (§4.5 step 3), which is why Get, not Knn, is the only lookup it
// exposes beyond the common ContentIndex surface.
type FlatVectorIndex struct {
	dim     int
	sim     search.Similarity
	vectors map[DocId][]float32
	nonNull DocIds
}

func NewFlatVectorIndex(params search.VectorParams) *FlatVectorIndex {
	return &FlatVectorIndex{
		dim:     params.Dim,
		sim:     params.Similarity,
		vectors: make(map[DocId][]float32),
	}
}

// Add indexes access's vector value for field. A field value absent
// from access is a valid null: doc is simply left out of nonNull, and
// Add still returns true. A present vector of the wrong dimension is a
// genuine value error and returns false, leaving the index unchanged.
func (idx *FlatVectorIndex) Add(doc DocId, access search.DocumentAccessor, field string) bool {
	vec, ok := access.VectorValue(field)
	if !ok {
		return true
	}
	if len(vec) != idx.dim {
		return false
	}
	idx.vectors[doc] = vec
	if !containsSorted(idx.nonNull, doc) {
		idx.nonNull = insertSorted(idx.nonNull, doc)
	}
	return true
}

func (idx *FlatVectorIndex) Remove(doc DocId, _ search.DocumentAccessor, _ string) {
	delete(idx.vectors, doc)
	idx.nonNull = removeSorted(idx.nonNull, doc)
}

func (idx *FlatVectorIndex) GetAllDocsWithNonNullValues() search.IndexResult {
	return search.BorrowedSlice(idx.nonNull)
}

func (idx *FlatVectorIndex) Info() (int, search.Similarity) {
	return idx.dim, idx.sim
}

func (idx *FlatVectorIndex) Get(doc DocId) []float32 {
	return idx.vectors[doc]
}

var _ search.FlatVectorIndex = (*FlatVectorIndex)(nil)
