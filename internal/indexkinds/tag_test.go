package indexkinds

import (
	"testing"

	"github.com/kittclouds/ftsearch/pkg/search"
)

func TestTagIndexAddAndMatching(t *testing.T) {
	idx := NewTagIndex(search.TagParams{})
	acc := NewMapAccessor()
	acc.Tags["color"] = []string{"Red", "Bold"}
	if !idx.Add(1, acc, "color") {
		t.Fatal("Add should succeed")
	}

	if got := idx.Matching("red"); !idsEqual(got, DocIds{1}) {
		t.Fatalf("Matching(red) = %v, want [1] (case-insensitive by default)", got)
	}
}

func TestTagIndexCaseSensitive(t *testing.T) {
	idx := NewTagIndex(search.TagParams{CaseSensitive: true})
	acc := NewMapAccessor()
	acc.Tags["color"] = []string{"Red"}
	idx.Add(1, acc, "color")

	if got := idx.Matching("red"); len(got) != 0 {
		t.Fatalf("Matching(red) = %v, want empty under case-sensitive matching", got)
	}
	if got := idx.Matching("Red"); !idsEqual(got, DocIds{1}) {
		t.Fatalf("Matching(Red) = %v, want [1]", got)
	}
}

func TestTagIndexMultipleTagsPerDocument(t *testing.T) {
	idx := NewTagIndex(search.TagParams{})
	acc1 := NewMapAccessor()
	acc1.Tags["color"] = []string{"red", "large"}
	idx.Add(1, acc1, "color")

	acc2 := NewMapAccessor()
	acc2.Tags["color"] = []string{"blue", "large"}
	idx.Add(2, acc2, "color")

	if got := idx.Matching("large"); !idsEqual(got, DocIds{1, 2}) {
		t.Fatalf("Matching(large) = %v, want [1 2]", got)
	}
	if got := idx.Matching("red"); !idsEqual(got, DocIds{1}) {
		t.Fatalf("Matching(red) = %v, want [1]", got)
	}
}

func TestTagIndexRemove(t *testing.T) {
	idx := NewTagIndex(search.TagParams{})
	acc := NewMapAccessor()
	acc.Tags["color"] = []string{"red"}
	idx.Add(1, acc, "color")
	idx.Remove(1, acc, "color")

	if got := idx.Matching("red"); len(got) != 0 {
		t.Fatalf("Matching(red) after Remove = %v, want empty", got)
	}
}

func TestTagIndexAffixMatching(t *testing.T) {
	idx := NewTagIndex(search.TagParams{})
	for doc, tag := range map[DocId]string{1: "crimson", 2: "cyan", 3: "magenta"} {
		acc := NewMapAccessor()
		acc.Tags["color"] = []string{tag}
		idx.Add(doc, acc, "color")
	}

	got := collectMatches(t, func(cb func(search.IndexResult)) { idx.MatchPrefix("cr", cb) })
	if !idsEqual(got, DocIds{1}) {
		t.Fatalf("MatchPrefix(cr) = %v, want [1]", got)
	}
	got = collectMatches(t, func(cb func(search.IndexResult)) { idx.MatchInfix("ent", cb) })
	if !idsEqual(got, DocIds{3}) {
		t.Fatalf("MatchInfix(ent) = %v, want [3]", got)
	}
}
