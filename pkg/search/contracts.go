package search

// This file defines the operations the evaluator depends on (component A
// of the design). Construction and internal algorithms of each index kind
// are someone else's problem — internal/indexkinds supplies one concrete,
// production-grounded implementation per kind so the module is
// self-contained, but nothing in this package downcasts to those concrete
// types; it only ever sees the interfaces below.

// Similarity identifies the distance function a vector field was declared
// with.
type Similarity int

const (
	SimilarityL2 Similarity = iota
	SimilarityCosine
	SimilarityDot
)

// SortableValue is whatever a sort index hands back for a document: a
// string for TAG/TEXT sort indices, a float64 for NUMERIC ones.
type SortableValue any

// DocumentAccessor provides typed field views used by index Add/Remove. A
// concrete accessor (internal/indexkinds.MapAccessor) is supplied for
// tests and the demo command; hosts wire in whatever pulls field values out
// of their own document representation.
type DocumentAccessor interface {
	// TextValue returns the raw text for field, or ("", false) if absent.
	TextValue(field string) (string, bool)
	// TagValues returns the tag values for field (a TAG field may hold more
	// than one tag per document), or (nil, false) if absent.
	TagValues(field string) ([]string, bool)
	// NumericValue returns the numeric value for field, or (0, false).
	NumericValue(field string) (float64, bool)
	// VectorValue returns the vector for field, or (nil, false).
	VectorValue(field string) ([]float32, bool)
}

// Synonyms resolves a term to the canonical token of its synonym group, if
// any. A nil Synonyms is legal and behaves as if no group matched.
type Synonyms interface {
	GetGroupToken(term string) (string, bool)
}

// ContentIndex is the operation every field-typed content index exposes,
// regardless of kind.
type ContentIndex interface {
	// Add indexes field's value for doc as read from access. A value
	// absent from access is a valid null: Add still returns true, simply
	// leaving doc out of GetAllDocsWithNonNullValues. Returns false, leaving
	// the index otherwise unchanged, only for a genuine value error (e.g. a
	// vector of the wrong dimension).
	Add(doc DocId, access DocumentAccessor, field string) bool
	// Remove undoes a prior Add. Removing an absent doc is a no-op.
	Remove(doc DocId, access DocumentAccessor, field string)
	// GetAllDocsWithNonNullValues returns a borrowed ascending id set of
	// every document holding a non-null value for this field.
	GetAllDocsWithNonNullValues() IndexResult
}

// AffixIndex is the prefix/suffix/infix scanning surface shared by
// TextIndex and TagIndex: each invokes cb once per vocabulary entry whose
// text matches affix by the corresponding rule, passing a borrowed
// ascending id set for that entry. Neither ever returns an error; zero
// calls to cb means zero matches.
type AffixIndex interface {
	MatchPrefix(affix string, cb func(IndexResult))
	MatchSuffix(affix string, cb func(IndexResult))
	MatchInfix(affix string, cb func(IndexResult))
}

// TextIndex is a content index over free text.
type TextIndex interface {
	ContentIndex
	AffixIndex
	// Matching returns an owned ascending id set of documents containing
	// term exactly. When stripWhitespace is true, leading/trailing
	// whitespace in term is trimmed before lookup (Affix{Regular}'s
	// non-synonym path); synonym group tokens are looked up verbatim.
	Matching(term string, stripWhitespace bool) DocIds
}

// TagIndex is a content index over exact tag values.
type TagIndex interface {
	ContentIndex
	AffixIndex
	Matching(tag string) DocIds
}

// NumericIndex is a content index over a numeric field.
type NumericIndex interface {
	ContentIndex
	// Range returns every document whose value lies in [lo, hi], ascending.
	Range(lo, hi float64) RangeResult
}

// BaseVectorIndex is the part of a vector index that doesn't depend on
// whether it's brute force or approximate.
type BaseVectorIndex interface {
	ContentIndex
	// Info returns the field's declared dimension and similarity metric.
	Info() (dim int, sim Similarity)
}

// FlatVectorIndex is a brute-force vector index: the evaluator computes
// distances itself.
type FlatVectorIndex interface {
	BaseVectorIndex
	// Get returns the stored vector for doc, or nil if absent.
	Get(doc DocId) []float32
}

// ScoredDoc pairs a document with its distance from the query vector in a
// k-NN result, ordered ascending by distance (closer first).
type ScoredDoc struct {
	Doc      DocId
	Distance float32
}

// HnswVectorIndex is an approximate vector index backed by HNSW.
type HnswVectorIndex interface {
	BaseVectorIndex
	// Knn returns the limit closest documents to vec. When prefilter is
	// supplied, only documents in prefilter are eligible.
	Knn(vec []float32, limit int, efRuntime int, prefilter ...DocIds) []ScoredDoc
}

// SortIndex is the operation every sort index exposes, independent of the
// value type it sorts on.
type SortIndex interface {
	// Lookup returns the sort value stored for doc.
	Lookup(doc DocId) SortableValue
	// GetAllDocsWithNonNullValues returns a borrowed ascending id set of
	// every document holding a sortable value for this field.
	GetAllDocsWithNonNullValues() IndexResult
	// Add/Remove mirror ContentIndex so FieldIndices can drive both
	// collections uniformly.
	Add(doc DocId, access DocumentAccessor, field string) bool
	Remove(doc DocId, access DocumentAccessor, field string)
}
