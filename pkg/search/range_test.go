package search

import "testing"

func TestSingleBlockRange(t *testing.T) {
	r := SingleBlockRange(DocIds{1, 2, 3})
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	for i, want := range []DocId{1, 2, 3} {
		if got := r.At(i); got != want {
			t.Fatalf("At(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestOwnedBlockRangeResultIsOwned(t *testing.T) {
	r := OwnedBlockRange(DocIds{1, 2, 3})
	result := r.Result()
	if !result.IsOwned() {
		t.Fatal("OwnedBlockRange's Result() should be owned, not borrowed")
	}
	if !idsEqual(result.Take(), DocIds{1, 2, 3}) {
		t.Fatalf("Take() = %v, want [1 2 3]", result.Take())
	}
}

func TestTwoBlockRangePresentsAsOneAscendingSequence(t *testing.T) {
	r := TwoBlockRange(DocIds{1, 2}, DocIds{10, 11, 12})
	if r.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", r.Len())
	}
	want := []DocId{1, 2, 10, 11, 12}
	for i, w := range want {
		if got := r.At(i); got != w {
			t.Fatalf("At(%d) = %d, want %d", i, got, w)
		}
	}
}
