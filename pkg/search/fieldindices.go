package search

import "fmt"

// IndexFactory constructs the concrete index backend for one field. It is
// the Go analogue of the external memory resource the design hands to
// FieldIndices at construction (§5): the core never manufactures or owns
// index internals itself, it only asks a supplied factory for one.
// internal/indexkinds provides a concrete implementation; pkg/search
// depends only on this interface and the contracts in contracts.go.
type IndexFactory interface {
	NewTextIndex(opts IndicesOptions, synonyms Synonyms, params TextParams) TextIndex
	NewTagIndex(params TagParams) TagIndex
	NewNumericIndex(params NumericParams) NumericIndex
	NewFlatVectorIndex(params VectorParams) FlatVectorIndex
	NewHnswVectorIndex(params VectorParams) HnswVectorIndex
	NewStringSortIndex() SortIndex
	NewNumericSortIndex() SortIndex
}

// FieldIndices owns every per-field index and the master ascending list of
// indexed document ids (component G). It is built once from a schema and
// destroyed as a unit; Add/Remove are the only mutators, and the host
// guarantees they never overlap a Search call on the same instance (§5).
type FieldIndices struct {
	schema   *Schema
	options  IndicesOptions
	synonyms Synonyms

	text    map[string]TextIndex
	tag     map[string]TagIndex
	numeric map[string]NumericIndex
	vector  map[string]BaseVectorIndex

	sortIdx map[string]SortIndex

	// contentOrder lists every content-indexed field identifier in schema
	// declaration order, used for deterministic Add/rollback iteration and
	// by GetAllTextIndices.
	contentOrder []string
	sortOrder    []string

	allIds DocIds
}

// NewFieldIndices creates one content index per non-NOINDEX field and one
// sort index per SORTABLE field, per the type table in §4.7, using
// factory to manufacture each concrete backend.
func NewFieldIndices(schema *Schema, options IndicesOptions, synonyms Synonyms, factory IndexFactory) *FieldIndices {
	fi := &FieldIndices{
		schema:   schema,
		options:  options,
		synonyms: synonyms,
		text:     make(map[string]TextIndex),
		tag:      make(map[string]TagIndex),
		numeric:  make(map[string]NumericIndex),
		vector:   make(map[string]BaseVectorIndex),
		sortIdx:  make(map[string]SortIndex),
	}

	for _, field := range schema.FieldOrder {
		info := schema.Fields[field]
		if info.hasFlag(FlagNoIndex) {
			continue
		}

		switch info.Type {
		case FieldText:
			fi.text[field] = factory.NewTextIndex(options, synonyms, info.Text)
		case FieldNumeric:
			fi.numeric[field] = factory.NewNumericIndex(info.Numeric)
		case FieldTag:
			fi.tag[field] = factory.NewTagIndex(info.Tag)
		case FieldVector:
			if info.Vector.UseHnsw {
				fi.vector[field] = factory.NewHnswVectorIndex(info.Vector)
			} else {
				fi.vector[field] = factory.NewFlatVectorIndex(info.Vector)
			}
		}
		fi.contentOrder = append(fi.contentOrder, field)

		if info.hasFlag(FlagSortable) {
			switch info.Type {
			case FieldText, FieldTag:
				fi.sortIdx[field] = factory.NewStringSortIndex()
			case FieldNumeric:
				fi.sortIdx[field] = factory.NewNumericSortIndex()
			case FieldVector:
				// Vector fields never get a sort index.
			}
			if _, ok := fi.sortIdx[field]; ok {
				fi.sortOrder = append(fi.sortOrder, field)
			}
		}
	}

	return fi
}

// contentIndex returns the generic ContentIndex view of field's content
// index, or nil if field has none. Each field is stored in exactly one
// per-kind map; this just checks all four without ever casting between
// kinds.
func (fi *FieldIndices) contentIndex(field string) ContentIndex {
	if idx, ok := fi.text[field]; ok {
		return idx
	}
	if idx, ok := fi.tag[field]; ok {
		return idx
	}
	if idx, ok := fi.numeric[field]; ok {
		return idx
	}
	if idx, ok := fi.vector[field]; ok {
		return idx
	}
	return nil
}

// GetIndex reports whether field (resolved through the schema's alias
// table) has a content index at all, without revealing its kind.
func (fi *FieldIndices) GetIndex(field string) (ContentIndex, bool) {
	field = fi.schema.LookupAlias(field)
	idx := fi.contentIndex(field)
	return idx, idx != nil
}

// GetTextIndex returns field's text index, per-kind lookup table keyed by
// field (no runtime type introspection).
func (fi *FieldIndices) GetTextIndex(field string) (TextIndex, bool) {
	idx, ok := fi.text[fi.schema.LookupAlias(field)]
	return idx, ok
}

// GetTagIndex returns field's tag index.
func (fi *FieldIndices) GetTagIndex(field string) (TagIndex, bool) {
	idx, ok := fi.tag[fi.schema.LookupAlias(field)]
	return idx, ok
}

// GetNumericIndex returns field's numeric index.
func (fi *FieldIndices) GetNumericIndex(field string) (NumericIndex, bool) {
	idx, ok := fi.numeric[fi.schema.LookupAlias(field)]
	return idx, ok
}

// GetVectorIndex returns field's vector index (flat or HNSW).
func (fi *FieldIndices) GetVectorIndex(field string) (BaseVectorIndex, bool) {
	idx, ok := fi.vector[fi.schema.LookupAlias(field)]
	return idx, ok
}

// GetSortIndex returns field's sort index, or (nil, false) if field isn't
// SORTABLE or doesn't exist.
func (fi *FieldIndices) GetSortIndex(field string) (SortIndex, bool) {
	idx, ok := fi.sortIdx[fi.schema.LookupAlias(field)]
	return idx, ok
}

// GetAllTextIndices returns every TEXT field's index, excluding NOINDEX
// fields, in schema field-declaration order.
func (fi *FieldIndices) GetAllTextIndices() []TextIndex {
	var out []TextIndex
	for _, field := range fi.contentOrder {
		if idx, ok := fi.text[field]; ok {
			out = append(out, idx)
		}
	}
	return out
}

// GetAllDocs returns the master ascending list of every indexed DocId.
func (fi *FieldIndices) GetAllDocs() DocIds {
	return fi.allIds
}

// GetSchema returns the schema this registry was built from.
func (fi *FieldIndices) GetSchema() *Schema {
	return fi.schema
}

// GetSynonyms returns the synonym table this registry was built with, or
// nil.
func (fi *FieldIndices) GetSynonyms() Synonyms {
	return fi.synonyms
}

// GetSortIndexValue returns the sort value stored for doc under
// field_identifier (already resolved — not an alias). field_identifier
// must name a SORTABLE field.
func (fi *FieldIndices) GetSortIndexValue(doc DocId, fieldIdentifier string) SortableValue {
	idx, ok := fi.sortIdx[fieldIdentifier]
	if !ok {
		panic(fmt.Sprintf("search: GetSortIndexValue: no sort index for field %q", fieldIdentifier))
	}
	return idx.Lookup(doc)
}

// Add indexes doc across every content and sort index atomically: if any
// index refuses the document, every index that already accepted it is
// rolled back (by calling Remove on it) and Add returns false leaving
// FieldIndices unchanged. On success doc is inserted into the master
// ascending id list; Add does not check for duplicates — reinserting an
// id already present is the caller's contract violation (§7.5, §9c).
func (fi *FieldIndices) Add(doc DocId, access DocumentAccessor) bool {
	type addedIndex struct {
		field string
		index interface {
			Remove(doc DocId, access DocumentAccessor, field string)
		}
	}
	var added []addedIndex
	ok := true

	tryAdd := func(field string, idx interface {
		Add(doc DocId, access DocumentAccessor, field string) bool
		Remove(doc DocId, access DocumentAccessor, field string)
	}) bool {
		if !idx.Add(doc, access, field) {
			return false
		}
		added = append(added, addedIndex{field: field, index: idx})
		return true
	}

	for _, field := range fi.contentOrder {
		if idx := fi.contentIndex(field); idx != nil {
			if !tryAdd(field, idx) {
				ok = false
				break
			}
		}
	}

	if ok {
		for _, field := range fi.sortOrder {
			if idx, exists := fi.sortIdx[field]; exists {
				if !tryAdd(field, idx) {
					ok = false
					break
				}
			}
		}
	}

	if !ok {
		for i := len(added) - 1; i >= 0; i-- {
			added[i].index.Remove(doc, access, added[i].field)
		}
		return false
	}

	fi.allIds = insertSorted(fi.allIds, doc)
	return true
}

// Remove calls Remove on every content and sort index unconditionally,
// then erases doc from the master ascending id list. doc must be present;
// Remove does not report errors on mismatch (§7.5).
func (fi *FieldIndices) Remove(doc DocId, access DocumentAccessor) {
	for _, field := range fi.contentOrder {
		if idx := fi.contentIndex(field); idx != nil {
			idx.Remove(doc, access, field)
		}
	}
	for _, field := range fi.sortOrder {
		if idx, ok := fi.sortIdx[field]; ok {
			idx.Remove(doc, access, field)
		}
	}
	fi.allIds = removeSorted(fi.allIds, doc)
}
