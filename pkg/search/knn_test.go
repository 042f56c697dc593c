package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kittclouds/ftsearch/internal/indexkinds"
	"github.com/kittclouds/ftsearch/pkg/search"
)

func newVectorSchema(useHnsw bool) *search.Schema {
	schema := search.NewSchema()
	schema.AddField("title", search.FieldInfo{Type: search.FieldText, ShortName: "title"})
	schema.AddField("embedding", search.FieldInfo{
		Type:      search.FieldVector,
		ShortName: "embedding",
		Vector:    search.VectorParams{Dim: 2, Similarity: search.SimilarityL2, UseHnsw: useHnsw},
	})
	return schema
}

func indexVectorDocs(t *testing.T, indices *search.FieldIndices, docs map[search.DocId][2]float32) {
	t.Helper()
	for doc, vec := range docs {
		acc := indexkinds.NewMapAccessor()
		acc.Text["title"] = "item"
		acc.Vector["embedding"] = []float32{vec[0], vec[1]}
		require.True(t, indices.Add(doc, acc))
	}
}

func TestKnnFlatFindsClosestNeighbours(t *testing.T) {
	schema := newVectorSchema(false)
	indices := search.NewFieldIndices(schema, search.NewIndicesOptions(), nil, indexkinds.Factory{})
	indexVectorDocs(t, indices, map[search.DocId][2]float32{
		1: {0, 0},
		2: {10, 10},
		3: {0.5, 0.5},
	})

	var algo search.SearchAlgorithm
	require.True(t, algo.Init("*=>[KNN 2 @embedding $q]", &search.QueryParams{
		Vectors: map[string][]float32{"q": {0, 0}},
	}))
	result := algo.Search(indices)

	require.Empty(t, result.Error)
	require.Len(t, result.Ids, 2)
	assert.Equal(t, search.DocId(1), result.Ids[0])
	assert.Equal(t, search.DocId(3), result.Ids[1])
	require.Len(t, result.KnnScores, 2)
	assert.Less(t, result.KnnScores[0].Distance, result.KnnScores[1].Distance)
}

func TestKnnWrongDimensionSetsError(t *testing.T) {
	schema := newVectorSchema(false)
	indices := search.NewFieldIndices(schema, search.NewIndicesOptions(), nil, indexkinds.Factory{})
	indexVectorDocs(t, indices, map[search.DocId][2]float32{1: {0, 0}})

	var algo search.SearchAlgorithm
	require.True(t, algo.Init("*=>[KNN 1 @embedding $q]", &search.QueryParams{
		Vectors: map[string][]float32{"q": {0, 0, 0}},
	}))
	result := algo.Search(indices)
	assert.Contains(t, result.Error, "Wrong vector index dimensions")
}

func TestKnnWithFilterRestrictsCandidates(t *testing.T) {
	schema := newVectorSchema(false)
	indices := search.NewFieldIndices(schema, search.NewIndicesOptions(), nil, indexkinds.Factory{})

	for doc, vec := range map[search.DocId][2]float32{1: {0, 0}, 2: {1, 1}} {
		acc := indexkinds.NewMapAccessor()
		acc.Text["title"] = "far"
		acc.Vector["embedding"] = []float32{vec[0], vec[1]}
		require.True(t, indices.Add(doc, acc))
	}
	acc := indexkinds.NewMapAccessor()
	acc.Text["title"] = "near"
	acc.Vector["embedding"] = []float32{0.1, 0.1}
	require.True(t, indices.Add(3, acc))

	var algo search.SearchAlgorithm
	require.True(t, algo.Init(`@title:far=>[KNN 1 @embedding $q]`, &search.QueryParams{
		Vectors: map[string][]float32{"q": {0, 0}},
	}))
	result := algo.Search(indices)

	require.Empty(t, result.Error)
	require.Len(t, result.Ids, 1)
	assert.Equal(t, search.DocId(1), result.Ids[0], "closest doc among the filtered ('far') set only")
}

func TestGetKnnScoreSortOption(t *testing.T) {
	var algo search.SearchAlgorithm
	require.True(t, algo.Init("*=>[KNN 3 @embedding $q AS dist]", &search.QueryParams{
		Vectors: map[string][]float32{"q": {0, 0}},
	}))
	opt, ok := algo.GetKnnScoreSortOption()
	require.True(t, ok)
	assert.Equal(t, "dist", opt.ScoreAlias)
	assert.Equal(t, 3, opt.Limit)
}

func TestGetKnnScoreSortOptionFalseForNonKnnRoot(t *testing.T) {
	var algo search.SearchAlgorithm
	require.True(t, algo.Init("@title:red", nil))
	_, ok := algo.GetKnnScoreSortOption()
	assert.False(t, ok)
}
