package indexkinds

import (
	"github.com/fogfish/hnsw"
	fvector "github.com/fogfish/hnsw/vector"
	kvector "github.com/kshard/vector"

	"github.com/kittclouds/ftsearch/pkg/search"
)

// HnswVectorIndex wraps github.com/fogfish/hnsw exactly the way the
// teacher's pkg/vector/store.go does (hnsw.New[vector.VF32], Insert,
// Search): a fresh HNSW graph built with a similarity surface picked
// from the field's declared metric, plus a DocId<->uint32 key mapping
// since fogfish/hnsw's VF32 keys are uint32 (the same constraint
// pkg/vector/store.go's own uint32 id parameter already carries).
type HnswVectorIndex struct {
	dim int
	sim search.Similarity

	index *hnsw.HNSW[fvector.VF32]

	keyToDoc map[uint32]DocId
	docToKey map[DocId]uint32
	nextKey  uint32

	vectors map[DocId][]float32
	nonNull DocIds
}

func surfaceFor(sim search.Similarity) kvector.Surface[fvector.VF32] {
	switch sim {
	case search.SimilarityDot:
		return fvector.SurfaceVF32(kvector.Dot())
	case search.SimilarityL2:
		return fvector.SurfaceVF32(kvector.Euclidean())
	default:
		return fvector.SurfaceVF32(kvector.Cosine())
	}
}

func NewHnswVectorIndex(params search.VectorParams) *HnswVectorIndex {
	return &HnswVectorIndex{
		dim:      params.Dim,
		sim:      params.Similarity,
		index:    hnsw.New[fvector.VF32](surfaceFor(params.Similarity)),
		keyToDoc: make(map[uint32]DocId),
		docToKey: make(map[DocId]uint32),
		nextKey:  1,
		vectors:  make(map[DocId][]float32),
	}
}

// Add indexes access's vector value for field. A field value absent
// from access is a valid null: doc is simply left out of nonNull, and
// Add still returns true. A present vector of the wrong dimension is a
// genuine value error and returns false, leaving the index unchanged.
func (idx *HnswVectorIndex) Add(doc DocId, access search.DocumentAccessor, field string) bool {
	vec, ok := access.VectorValue(field)
	if !ok {
		return true
	}
	if len(vec) != idx.dim {
		return false
	}

	key, exists := idx.docToKey[doc]
	if !exists {
		key = idx.nextKey
		idx.nextKey++
		idx.docToKey[doc] = key
		idx.keyToDoc[key] = doc
	}

	idx.index.Insert(fvector.VF32{Key: key, Vec: vec})
	idx.vectors[doc] = vec
	if !containsSorted(idx.nonNull, doc) {
		idx.nonNull = insertSorted(idx.nonNull, doc)
	}
	return true
}

// Remove drops doc's bookkeeping. fogfish/hnsw has no node-removal API;
// a removed document's stale graph node is simply excluded from Knn
// output because its key no longer resolves through idx.keyToDoc.
func (idx *HnswVectorIndex) Remove(doc DocId, _ search.DocumentAccessor, _ string) {
	if key, ok := idx.docToKey[doc]; ok {
		delete(idx.docToKey, doc)
		delete(idx.keyToDoc, key)
	}
	delete(idx.vectors, doc)
	idx.nonNull = removeSorted(idx.nonNull, doc)
}

func (idx *HnswVectorIndex) GetAllDocsWithNonNullValues() search.IndexResult {
	return search.BorrowedSlice(idx.nonNull)
}

func (idx *HnswVectorIndex) Info() (int, search.Similarity) {
	return idx.dim, idx.sim
}

// Knn returns the limit closest live documents to vec. When prefilter is
// supplied, HNSW is over-fetched (up to the full live population) and
// post-filtered against it — fogfish/hnsw has no native pre-filter hook
// (§4.1a).
func (idx *HnswVectorIndex) Knn(vec []float32, limit int, efRuntime int, prefilter ...DocIds) []search.ScoredDoc {
	if idx.index == nil || len(idx.vectors) == 0 || limit <= 0 {
		return nil
	}

	k := limit
	if len(prefilter) > 0 {
		k = len(idx.vectors)
	}
	ef := efRuntime
	if ef < k*2 {
		ef = k * 2
	}
	if ef < 100 {
		ef = 100
	}

	results := idx.index.Search(fvector.VF32{Vec: vec}, k, ef)

	var allow map[DocId]struct{}
	if len(prefilter) > 0 {
		allow = make(map[DocId]struct{}, len(prefilter[0]))
		for _, d := range prefilter[0] {
			allow[d] = struct{}{}
		}
	}

	out := make([]search.ScoredDoc, 0, limit)
	for _, r := range results {
		doc, ok := idx.keyToDoc[r.Key]
		if !ok {
			continue // stale node from a removed document
		}
		if allow != nil {
			if _, permitted := allow[doc]; !permitted {
				continue
			}
		}
		out = append(out, search.ScoredDoc{Doc: doc, Distance: search.VectorDistance(vec, r.Vec, idx.sim)})
		if len(out) == limit {
			break
		}
	}
	return out
}

var _ search.HnswVectorIndex = (*HnswVectorIndex)(nil)
