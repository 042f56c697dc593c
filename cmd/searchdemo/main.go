// Command searchdemo exercises the full search stack end to end: schema
// declaration, FieldIndices construction, document insertion, and a
// handful of query evaluations, in the spirit of cmd/storetest's smoke
// test for internal/store.
package main

import (
	"fmt"
	"log"

	"github.com/kittclouds/ftsearch/internal/indexkinds"
	"github.com/kittclouds/ftsearch/pkg/search"
)

func main() {
	schema := search.NewSchema()
	schema.AddField("title", search.FieldInfo{Type: search.FieldText, ShortName: "title"})
	schema.AddField("body", search.FieldInfo{Type: search.FieldText, ShortName: "body"})
	schema.AddField("price", search.FieldInfo{Type: search.FieldNumeric, ShortName: "price"})
	schema.AddField("color", search.FieldInfo{Type: search.FieldTag, ShortName: "color"})

	indices := search.NewFieldIndices(schema, search.NewIndicesOptions(), nil, indexkinds.Factory{})

	docs := []struct {
		id    search.DocId
		title string
		body  string
		price float64
		color string
	}{
		{1, "red shoes", "comfortable running shoes", 25, "red"},
		{2, "blue shoes", "waterproof hiking boots", 60, "blue"},
		{3, "red hat", "wide brim sun hat", 15, "red"},
	}

	for _, d := range docs {
		acc := indexkinds.NewMapAccessor()
		acc.Text["title"] = d.title
		acc.Text["body"] = d.body
		acc.Numeric["price"] = d.price
		acc.Tags["color"] = []string{d.color}

		if !indices.Add(d.id, acc) {
			log.Fatalf("failed to index document %d", d.id)
		}
	}

	run(indices, "@title:red")
	run(indices, "@price:[10 20]")
	run(indices, "@color:{red}")
	run(indices, "-@title:red")
}

func run(indices *search.FieldIndices, query string) {
	var algo search.SearchAlgorithm
	if !algo.Init(query, nil) {
		fmt.Printf("query %q: failed to parse\n", query)
		return
	}
	algo.EnableProfiling()
	result := algo.Search(indices)
	if result.Error != "" {
		fmt.Printf("query %q: error: %s\n", query, result.Error)
		return
	}
	fmt.Printf("query %q -> %d docs: %v\n", query, result.Total, result.Ids)
}
