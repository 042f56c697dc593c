package indexkinds

import "github.com/kittclouds/ftsearch/pkg/search"

// StringSortIndex backs SORTABLE TAG/TEXT fields: it stores whatever
// single string a document's field resolves to (the first tag, for TAG
// fields) so downstream pagination/sort — explicitly out of scope for
// this module (§1) — has something to sort by.
type StringSortIndex struct {
	values  map[DocId]string
	nonNull DocIds
}

func NewStringSortIndex() *StringSortIndex {
	return &StringSortIndex{values: make(map[DocId]string)}
}

func (idx *StringSortIndex) sortValue(access search.DocumentAccessor, field string) (string, bool) {
	if v, ok := access.TextValue(field); ok {
		return v, true
	}
	if tags, ok := access.TagValues(field); ok && len(tags) > 0 {
		return tags[0], true
	}
	return "", false
}

// Add records field's sort value for doc. A field value absent from
// access is a valid null: doc is simply left out of nonNull, and Add
// still returns true.
func (idx *StringSortIndex) Add(doc DocId, access search.DocumentAccessor, field string) bool {
	v, ok := idx.sortValue(access, field)
	if !ok {
		return true
	}
	idx.values[doc] = v
	if !containsSorted(idx.nonNull, doc) {
		idx.nonNull = insertSorted(idx.nonNull, doc)
	}
	return true
}

func (idx *StringSortIndex) Remove(doc DocId, _ search.DocumentAccessor, _ string) {
	delete(idx.values, doc)
	idx.nonNull = removeSorted(idx.nonNull, doc)
}

func (idx *StringSortIndex) Lookup(doc DocId) search.SortableValue {
	return idx.values[doc]
}

func (idx *StringSortIndex) GetAllDocsWithNonNullValues() search.IndexResult {
	return search.BorrowedSlice(idx.nonNull)
}

// NumericSortIndex backs SORTABLE NUMERIC fields.
type NumericSortIndex struct {
	values  map[DocId]float64
	nonNull DocIds
}

func NewNumericSortIndex() *NumericSortIndex {
	return &NumericSortIndex{values: make(map[DocId]float64)}
}

// Add records field's sort value for doc. A field value absent from
// access is a valid null: doc is simply left out of nonNull, and Add
// still returns true.
func (idx *NumericSortIndex) Add(doc DocId, access search.DocumentAccessor, field string) bool {
	v, ok := access.NumericValue(field)
	if !ok {
		return true
	}
	idx.values[doc] = v
	if !containsSorted(idx.nonNull, doc) {
		idx.nonNull = insertSorted(idx.nonNull, doc)
	}
	return true
}

func (idx *NumericSortIndex) Remove(doc DocId, _ search.DocumentAccessor, _ string) {
	delete(idx.values, doc)
	idx.nonNull = removeSorted(idx.nonNull, doc)
}

func (idx *NumericSortIndex) Lookup(doc DocId) search.SortableValue {
	return idx.values[doc]
}

func (idx *NumericSortIndex) GetAllDocsWithNonNullValues() search.IndexResult {
	return search.BorrowedSlice(idx.nonNull)
}

var (
	_ search.SortIndex = (*StringSortIndex)(nil)
	_ search.SortIndex = (*NumericSortIndex)(nil)
)
