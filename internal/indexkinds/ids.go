package indexkinds

import "sort"

// insertSorted inserts doc into an ascending, deduplicated slice. It
// mirrors pkg/search's own unexported insertSorted; index backends live
// in a different package and so keep a small copy of the same primitive
// rather than reaching into pkg/search's internals.
func insertSorted(ids DocIds, doc DocId) DocIds {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] > doc })
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = doc
	return ids
}

// removeSorted removes doc from an ascending slice, a no-op if absent.
func removeSorted(ids DocIds, doc DocId) DocIds {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= doc })
	if i >= len(ids) || ids[i] != doc {
		return ids
	}
	return append(ids[:i], ids[i+1:]...)
}

// containsSorted reports membership via binary search.
func containsSorted(ids DocIds, doc DocId) bool {
	i := sort.Search(len(ids), func(i int) bool { return ids[i] >= doc })
	return i < len(ids) && ids[i] == doc
}
