// Package indexkinds supplies one concrete, production-grounded
// implementation per index kind pkg/search treats as a black box (§1's
// "out of scope" collaborators): TextIndex, TagIndex, NumericIndex,
// FlatVectorIndex, HnswVectorIndex, StringSortIndex and NumericSortIndex,
// plus a DocumentAccessor and Synonyms table to drive them in tests and
// the demo command. Nothing in pkg/search imports this package; wiring
// happens the other way, through the search.IndexFactory interface, so a
// host is free to swap in its own index backends without touching the
// evaluator.
package indexkinds

import "github.com/kittclouds/ftsearch/pkg/search"

// DocId is a local alias so this package doesn't need to import
// pkg/search under a qualified name in every signature.
type DocId = search.DocId

// DocIds is a strictly ascending, deduplicated slice of DocId, the same
// invariant pkg/search requires of every borrowed or owned id set this
// package hands back.
type DocIds = search.DocIds
