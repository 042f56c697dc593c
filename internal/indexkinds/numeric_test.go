package indexkinds

import (
	"testing"

	"github.com/kittclouds/ftsearch/pkg/search"
)

func TestNumericIndexRange(t *testing.T) {
	idx := NewNumericIndex(search.NumericParams{})
	values := map[DocId]float64{1: 10, 2: 20, 3: 30, 4: 40, 5: 50}
	for doc, v := range values {
		acc := NewMapAccessor()
		acc.Numeric["price"] = v
		idx.Add(doc, acc, "price")
	}

	got := idx.Range(15, 35).Result().Take()
	if !idsEqual(got, DocIds{2, 3}) {
		t.Fatalf("Range(15,35) = %v, want [2 3]", got)
	}
}

func TestNumericIndexRangeInclusiveBounds(t *testing.T) {
	idx := NewNumericIndex(search.NumericParams{})
	acc := NewMapAccessor()
	acc.Numeric["price"] = 20
	idx.Add(1, acc, "price")

	got := idx.Range(20, 20).Result().Take()
	if !idsEqual(got, DocIds{1}) {
		t.Fatalf("Range(20,20) = %v, want [1]", got)
	}
}

func TestNumericIndexAddAbsentFieldIsNullNotFailure(t *testing.T) {
	idx := NewNumericIndex(search.NumericParams{})
	acc := NewMapAccessor()
	if !idx.Add(1, acc, "price") {
		t.Fatal("Add should succeed when the field is simply absent")
	}
	if n := idx.GetAllDocsWithNonNullValues().Size(); n != 0 {
		t.Fatalf("non-null count = %d, want 0 for a doc with no value", n)
	}
}

func TestNumericIndexRemove(t *testing.T) {
	idx := NewNumericIndex(search.NumericParams{})
	acc := NewMapAccessor()
	acc.Numeric["price"] = 20
	idx.Add(1, acc, "price")
	idx.Remove(1, acc, "price")

	got := idx.Range(0, 100).Result().Take()
	if len(got) != 0 {
		t.Fatalf("Range after Remove = %v, want empty", got)
	}
	if n := idx.GetAllDocsWithNonNullValues().Size(); n != 0 {
		t.Fatalf("non-null count after Remove = %d, want 0", n)
	}
}

func TestNumericIndexBlockSplitting(t *testing.T) {
	idx := NewNumericIndex(search.NumericParams{BlockSize: 4})
	for i := DocId(1); i <= 50; i++ {
		acc := NewMapAccessor()
		acc.Numeric["price"] = float64(i)
		idx.Add(i, acc, "price")
	}

	got := idx.Range(10, 20).Result().Take()
	want := make(DocIds, 0, 11)
	for i := DocId(10); i <= 20; i++ {
		want = append(want, i)
	}
	if !idsEqual(got, want) {
		t.Fatalf("Range(10,20) = %v, want %v", got, want)
	}
}

func TestNumericIndexOutOfOrderInsertion(t *testing.T) {
	idx := NewNumericIndex(search.NumericParams{BlockSize: 4})
	order := []DocId{10, 3, 7, 1, 9, 5}
	for _, doc := range order {
		acc := NewMapAccessor()
		acc.Numeric["price"] = float64(doc)
		idx.Add(doc, acc, "price")
	}

	got := idx.Range(0, 100).Result().Take()
	want := DocIds{1, 3, 5, 7, 9, 10}
	if !idsEqual(got, want) {
		t.Fatalf("Range(0,100) after out-of-order insertion = %v, want %v", got, want)
	}
}
