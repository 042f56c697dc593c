package indexkinds

import (
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/kittclouds/ftsearch/pkg/search"
)

type numericEntry struct {
	doc DocId
	val float64
}

// numericBlock is a contiguous, ascending-by-DocId run of entries, plus
// the value bounds spanning it. Range queries skip a whole block whose
// value bounds don't overlap the query range, and scan every other block
// element by element.
type numericBlock struct {
	entries []numericEntry
	lo, hi  float64
}

// NumericIndex buckets documents into bounded-size ascending-by-DocId
// blocks (split in half once they exceed twice blockSize entries)
// annotated with their value range, so Range can prune whole
// blocks before scanning. A RoaringBitmap tracks which documents hold a
// non-null value for the field: membership and ascending iteration in
// O(1)/O(n) without a second parallel sorted slice to keep in sync,
// grounded in the teacher's pkg/qgram/compressed_postings.go
// DocIDMapper+roaring.Bitmap pairing (which maps arbitrary ids to a
// dense uint32 space for bitmap use the same way this index treats
// DocId, already uint64 elsewhere in the module, as directly
// representable in a uint32 bitmap — true for any single-shard id space
// under 2^32, the same assumption pkg/vector/store.go's HNSW keys make).
type NumericIndex struct {
	blockSize int
	values    map[DocId]float64
	blocks    []*numericBlock
	nonNull   *roaring.Bitmap
}

func NewNumericIndex(params search.NumericParams) *NumericIndex {
	blockSize := params.BlockSize
	if blockSize <= 0 {
		blockSize = 128
	}
	return &NumericIndex{
		blockSize: blockSize,
		values:    make(map[DocId]float64),
		nonNull:   roaring.New(),
	}
}

// Add indexes access's numeric value for field. A field value absent
// from access is a valid null: doc is simply left out of nonNull and the
// blocks, and Add still returns true.
func (idx *NumericIndex) Add(doc DocId, access search.DocumentAccessor, field string) bool {
	val, ok := access.NumericValue(field)
	if !ok {
		return true
	}
	idx.values[doc] = val
	idx.nonNull.Add(uint32(doc))
	idx.insert(doc, val)
	return true
}

func (idx *NumericIndex) Remove(doc DocId, access search.DocumentAccessor, field string) {
	if _, ok := idx.values[doc]; !ok {
		return
	}
	delete(idx.values, doc)
	idx.nonNull.Remove(uint32(doc))
	idx.deleteFromBlocks(doc)
}

// insert appends to the last block, splitting it into two when it grows
// past twice blockSize so blocks stay roughly bounded — the append-heavy
// path real workloads hit most, since documents typically arrive in
// increasing DocId order.
func (idx *NumericIndex) insert(doc DocId, val float64) {
	if len(idx.blocks) == 0 {
		idx.blocks = append(idx.blocks, &numericBlock{})
	}
	last := idx.blocks[len(idx.blocks)-1]

	// Documents may legitimately arrive out of DocId order relative to a
	// prior Remove/re-Add cycle; find the correct block by DocId range
	// rather than assuming append-only.
	target := last
	if len(idx.blocks) > 1 && doc < last.entries[0].doc {
		i := sort.Search(len(idx.blocks), func(i int) bool {
			b := idx.blocks[i]
			return len(b.entries) == 0 || doc <= b.entries[len(b.entries)-1].doc
		})
		if i < len(idx.blocks) {
			target = idx.blocks[i]
		}
	}

	pos := sort.Search(len(target.entries), func(i int) bool { return target.entries[i].doc > doc })
	target.entries = append(target.entries, numericEntry{})
	copy(target.entries[pos+1:], target.entries[pos:])
	target.entries[pos] = numericEntry{doc: doc, val: val}
	target.updateBounds()

	if len(target.entries) > idx.blockSize*2 {
		idx.splitBlock(target)
	}
}

func (b *numericBlock) updateBounds() {
	if len(b.entries) == 0 {
		return
	}
	b.lo, b.hi = b.entries[0].val, b.entries[0].val
	for _, e := range b.entries[1:] {
		if e.val < b.lo {
			b.lo = e.val
		}
		if e.val > b.hi {
			b.hi = e.val
		}
	}
}

func (idx *NumericIndex) splitBlock(b *numericBlock) {
	mid := len(b.entries) / 2
	left := &numericBlock{entries: append([]numericEntry(nil), b.entries[:mid]...)}
	right := &numericBlock{entries: append([]numericEntry(nil), b.entries[mid:]...)}
	left.updateBounds()
	right.updateBounds()

	for i, blk := range idx.blocks {
		if blk == b {
			idx.blocks = append(idx.blocks[:i], append([]*numericBlock{left, right}, idx.blocks[i+1:]...)...)
			return
		}
	}
}

func (idx *NumericIndex) deleteFromBlocks(doc DocId) {
	for _, b := range idx.blocks {
		pos := sort.Search(len(b.entries), func(i int) bool { return b.entries[i].doc >= doc })
		if pos < len(b.entries) && b.entries[pos].doc == doc {
			b.entries = append(b.entries[:pos], b.entries[pos+1:]...)
			b.updateBounds()
			return
		}
	}
}

// Range returns every document whose value lies in [lo, hi], ascending
// by DocId. Blocks whose value bounds don't overlap [lo, hi] are skipped
// entirely; the rest are scanned element by element. Concatenating
// surviving blocks in block order preserves ascending DocId order,
// since blocks themselves never overlap in DocId range (§4.3's
// contiguous-block invariant).
func (idx *NumericIndex) Range(lo, hi float64) search.RangeResult {
	var out DocIds
	for _, b := range idx.blocks {
		if len(b.entries) == 0 || b.hi < lo || b.lo > hi {
			continue
		}
		for _, e := range b.entries {
			if e.val >= lo && e.val <= hi {
				out = append(out, e.doc)
			}
		}
	}
	return search.OwnedBlockRange(out)
}

func (idx *NumericIndex) GetAllDocsWithNonNullValues() search.IndexResult {
	out := make(DocIds, 0, idx.nonNull.GetCardinality())
	it := idx.nonNull.Iterator()
	for it.HasNext() {
		out = append(out, DocId(it.Next()))
	}
	return search.OwnedResult(out)
}

var _ search.NumericIndex = (*NumericIndex)(nil)
