package indexkinds

import "github.com/kittclouds/ftsearch/pkg/search"

// Factory implements search.IndexFactory by manufacturing the concrete
// index kinds in this package. It carries no state of its own — every
// per-field index is independent — so the zero value is ready to use.
type Factory struct{}

func (Factory) NewTextIndex(opts search.IndicesOptions, synonyms search.Synonyms, params search.TextParams) search.TextIndex {
	return NewTextIndex(opts, synonyms, params)
}

func (Factory) NewTagIndex(params search.TagParams) search.TagIndex {
	return NewTagIndex(params)
}

func (Factory) NewNumericIndex(params search.NumericParams) search.NumericIndex {
	return NewNumericIndex(params)
}

func (Factory) NewFlatVectorIndex(params search.VectorParams) search.FlatVectorIndex {
	return NewFlatVectorIndex(params)
}

func (Factory) NewHnswVectorIndex(params search.VectorParams) search.HnswVectorIndex {
	return NewHnswVectorIndex(params)
}

func (Factory) NewStringSortIndex() search.SortIndex {
	return NewStringSortIndex()
}

func (Factory) NewNumericSortIndex() search.SortIndex {
	return NewNumericSortIndex()
}

var _ search.IndexFactory = Factory{}
