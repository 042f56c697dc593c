package indexkinds

import (
	"sort"
	"testing"

	"github.com/kittclouds/ftsearch/pkg/search"
)

func textOpts(stopwords ...string) search.IndicesOptions {
	sw := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		sw[w] = struct{}{}
	}
	return search.IndicesOptions{Stopwords: sw}
}

func collectMatches(t *testing.T, scan func(func(search.IndexResult))) DocIds {
	t.Helper()
	var out DocIds
	scan(func(r search.IndexResult) {
		out = append(out, r.Take()...)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func TestTextIndexAddAndMatching(t *testing.T) {
	idx := NewTextIndex(textOpts("the", "a"), nil, search.TextParams{})
	acc := NewMapAccessor()
	acc.Text["title"] = "a red running shoe"

	if !idx.Add(1, acc, "title") {
		t.Fatal("Add should succeed for a present field")
	}

	got := idx.Matching("red", true)
	if !idsEqual(got, DocIds{1}) {
		t.Fatalf("Matching(red) = %v, want [1]", got)
	}
	if got := idx.Matching("the", true); len(got) != 0 {
		t.Fatalf("stopword 'the' should not be indexed, got %v", got)
	}
}

func TestTextIndexAddAbsentFieldIsNullNotFailure(t *testing.T) {
	idx := NewTextIndex(textOpts(), nil, search.TextParams{})
	acc := NewMapAccessor()
	if !idx.Add(1, acc, "title") {
		t.Fatal("Add should succeed when the field is simply absent from the accessor")
	}
	if got := idx.GetAllDocsWithNonNullValues(); got.Size() != 0 {
		t.Fatalf("non-null set = %d, want 0 for a doc with no value", got.Size())
	}
}

func TestTextIndexRemoveUndoesAdd(t *testing.T) {
	idx := NewTextIndex(textOpts(), nil, search.TextParams{})
	acc := NewMapAccessor()
	acc.Text["title"] = "red shoe"
	idx.Add(1, acc, "title")
	idx.Remove(1, acc, "title")

	if got := idx.Matching("red", true); len(got) != 0 {
		t.Fatalf("Matching(red) after Remove = %v, want empty", got)
	}
	if got := idx.GetAllDocsWithNonNullValues(); got.Size() != 0 {
		t.Fatalf("non-null set after Remove = %d, want 0", got.Size())
	}
}

func TestTextIndexMatchPrefixSuffixInfix(t *testing.T) {
	idx := NewTextIndex(textOpts(), nil, search.TextParams{})
	for doc, text := range map[DocId]string{
		1: "running shoes",
		2: "walking boots",
		3: "runner beans",
	} {
		acc := NewMapAccessor()
		acc.Text["body"] = text
		idx.Add(doc, acc, "body")
	}

	if got := collectMatches(t, func(cb func(search.IndexResult)) { idx.MatchPrefix("run", cb) }); !idsEqual(got, DocIds{1, 3}) {
		t.Fatalf("MatchPrefix(run) = %v, want [1 3]", got)
	}
	if got := collectMatches(t, func(cb func(search.IndexResult)) { idx.MatchSuffix("ing", cb) }); !idsEqual(got, DocIds{1, 2}) {
		t.Fatalf("MatchSuffix(ing) = %v, want [1 2]", got)
	}
	if got := collectMatches(t, func(cb func(search.IndexResult)) { idx.MatchInfix("oot", cb) }); !idsEqual(got, DocIds{2}) {
		t.Fatalf("MatchInfix(oot) = %v, want [2]", got)
	}
}

func TestTextIndexSynonymExpansion(t *testing.T) {
	syn := NewSynonymTable([][]string{{"sneaker", "shoe", "shoes"}})
	idx := NewTextIndex(textOpts(), syn, search.TextParams{})

	acc := NewMapAccessor()
	acc.Text["title"] = "running shoe"
	idx.Add(1, acc, "title")

	// "sneaker" is the group's canonical token (its first element); "shoe"
	// was additionally posted under it at index time, so a lookup of
	// "sneaker" finds the document.
	if got := idx.Matching("sneaker", false); !idsEqual(got, DocIds{1}) {
		t.Fatalf("Matching(sneaker) = %v, want [1]", got)
	}
}

func idsEqual(a, b DocIds) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
