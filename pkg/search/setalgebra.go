package search

import "sort"

// LogicOp identifies a Logical node's operator, also reused by the
// set-algebra kernel to pick intersection vs union.
type LogicOp int

const (
	LogicAnd LogicOp = iota
	LogicOr
)

// merger implements component C, the sorted set-algebra kernel: given a
// slice of IndexResults and a logical op, it reduces them to one ascending
// IndexResult via sorted union/intersection. A single scratch buffer is
// reused across merge steps (§5's "shared resource"): each step writes
// into it, then hands it off as the new accumulator while reclaiming the
// old accumulator's backing array (when it was owned) for the next step,
// so steady-state evaluation of an n-ary AND/OR allocates at most once per
// evaluator per distinct size class rather than once per child.
type merger struct {
	scratch DocIds
}

// unify reduces operands to a single ascending IndexResult. Operands are
// sorted ascending by Size() first: for AND the running set only shrinks,
// so starting from the smallest minimises comparisons; for OR, unifying
// smaller sets first reduces total element traversals. Empty input
// produces an empty owned result.
func (m *merger) unify(operands []IndexResult, op LogicOp) IndexResult {
	if len(operands) == 0 {
		return EmptyResult()
	}

	sort.SliceStable(operands, func(i, j int) bool { return operands[i].Size() < operands[j].Size() })

	out := operands[0]
	for _, matched := range operands[1:] {
		out = m.merge(matched, out, op)
	}
	return out
}

// merge executes a two-way merge of matched against current into the
// evaluator's scratch buffer, then swaps it in as the new accumulator.
func (m *merger) merge(matched, current IndexResult, op LogicOp) IndexResult {
	scratch := m.scratch[:0]
	a, b := matched.Borrowed(), current.Borrowed()

	if op == LogicAnd {
		scratch = mergeIntersect(scratch, a, b)
	} else {
		scratch = mergeUnion(scratch, a, b)
	}

	if current.IsOwned() {
		m.scratch = current.owned[:0]
	} else {
		m.scratch = m.scratch[:0]
	}
	return OwnedResult(scratch)
}

// mergeIntersect performs a classic sorted intersection: advance whichever
// iterator is smaller, emit on equality.
func mergeIntersect(dst DocIds, a, b borrowedSet) DocIds {
	i, j, na, nb := 0, 0, a.Len(), b.Len()
	for i < na && j < nb {
		av, bv := a.At(i), b.At(j)
		switch {
		case av < bv:
			i++
		case av > bv:
			j++
		default:
			dst = append(dst, av)
			i++
			j++
		}
	}
	return dst
}

// mergeUnion performs a classic sorted union: emit the lower element; on
// equality, emit once and advance both.
func mergeUnion(dst DocIds, a, b borrowedSet) DocIds {
	i, j, na, nb := 0, 0, a.Len(), b.Len()
	for i < na && j < nb {
		av, bv := a.At(i), b.At(j)
		switch {
		case av < bv:
			dst = append(dst, av)
			i++
		case av > bv:
			dst = append(dst, bv)
			j++
		default:
			dst = append(dst, av)
			i++
			j++
		}
	}
	for ; i < na; i++ {
		dst = append(dst, a.At(i))
	}
	for ; j < nb; j++ {
		dst = append(dst, b.At(j))
	}
	return dst
}

// negate computes the complement of child with respect to master: every
// id in master that binary search does not find in child's owned set.
func negate(master DocIds, child DocIds) DocIds {
	out := make(DocIds, 0, len(master))
	for _, doc := range master {
		if !child.Contains(doc) {
			out = append(out, doc)
		}
	}
	return out
}
