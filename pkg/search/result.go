package search

// IndexResult is a polymorphic holder of an ascending id set that is
// either owned (freshly materialised) or borrowed from an index-internal
// structure. It is component B of the design: every node evaluator
// produces one, the set-algebra kernel consumes and produces them, and
// nothing outside this package ever needs to know which backing
// representation a given value carries.
//
// Every variant yields ascending iteration; Size is an exact or
// upper-bound count (callers treat it as an upper bound for
// pre-allocation); IsOwned is queryable; Take moves an owned sequence out
// or materialises a borrowed one by copy.
type IndexResult struct {
	owned    DocIds // non-nil (possibly empty) when this result is owned
	borrowed borrowedSet
}

// borrowedSet is a read-only, randomly-addressable ascending view over an
// id sequence. A plain []DocId, a numeric index's one- or two-block range
// result, or any other borrowed container implements it by wrapping
// itself; the evaluator never needs to know which.
type borrowedSet interface {
	Len() int
	At(i int) DocId
}

// sliceSet adapts a borrowed []DocId to borrowedSet.
type sliceSet struct{ ids DocIds }

func (s sliceSet) Len() int        { return len(s.ids) }
func (s sliceSet) At(i int) DocId  { return s.ids[i] }

// EmptyResult is the canonical empty IndexResult (component behaviour for
// AstEmpty and every short-circuited error path).
func EmptyResult() IndexResult {
	return IndexResult{owned: DocIds{}}
}

// OwnedResult wraps an ascending, deduplicated id slice as an owned
// result. Callers must not mutate ids afterwards.
func OwnedResult(ids DocIds) IndexResult {
	if ids == nil {
		ids = DocIds{}
	}
	return IndexResult{owned: ids}
}

// BorrowedResult wraps a borrowed ascending container.
func BorrowedResult(b borrowedSet) IndexResult {
	return IndexResult{borrowed: b}
}

// BorrowedSlice wraps a borrowed ascending []DocId, the common case for
// text/tag postings.
func BorrowedSlice(ids DocIds) IndexResult {
	return IndexResult{borrowed: sliceSet{ids: ids}}
}

// IsOwned reports whether this result holds a materialised copy.
func (r IndexResult) IsOwned() bool {
	return r.borrowed == nil
}

// Size returns an exact or upper-bound cardinality.
func (r IndexResult) Size() int {
	if r.IsOwned() {
		return len(r.owned)
	}
	return r.borrowed.Len()
}

// Borrowed returns a read-only ascending view suitable for iteration and
// set operations, regardless of which representation this result holds.
func (r IndexResult) Borrowed() borrowedSet {
	if r.IsOwned() {
		return sliceSet{ids: r.owned}
	}
	return r.borrowed
}

// Take yields an owned ascending id sequence: a move if this result was
// already owned, or a materialising copy of the borrowed view otherwise.
func (r IndexResult) Take() DocIds {
	if r.IsOwned() {
		return r.owned
	}
	b := r.borrowed
	out := make(DocIds, b.Len())
	for i := 0; i < b.Len(); i++ {
		out[i] = b.At(i)
	}
	return out
}
