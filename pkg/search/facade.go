package search

import "log"

// SearchAlgorithm is component H, the parse-once/evaluate-many façade a
// host builds one of per query string and calls Search against as many
// FieldIndices snapshots as it likes.
type SearchAlgorithm struct {
	root      AstNode
	profiling bool
}

// Init parses query into an AST. A syntax error or parser panic is logged
// and reported as false; an empty parse (AstEmpty at the root) is also
// treated as a false Init, matching §4.8. On true, subsequent Search
// calls evaluate the stored AST.
func (s *SearchAlgorithm) Init(query string, params *QueryParams) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("search: Init(%q): %v", query, r)
			ok = false
		}
	}()

	root, err := Parse(query, params)
	if err != nil {
		log.Printf("search: Init(%q): %v", query, err)
		return false
	}
	if _, empty := root.(AstEmpty); empty {
		log.Printf("search: Init(%q): empty query", query)
		return false
	}

	s.root = root
	return true
}

// EnableProfiling turns on per-node timing/result-size recording for
// every subsequent Search call.
func (s *SearchAlgorithm) EnableProfiling() {
	s.profiling = true
}

// Search evaluates the parsed AST against indices and packages a
// SearchResult. Init must have returned true first; calling Search
// without a prior successful Init returns an empty failure result.
func (s *SearchAlgorithm) Search(indices *FieldIndices) SearchResult {
	if s.root == nil {
		return SearchResult{Error: "search: Search called before a successful Init"}
	}

	e := newEvaluator(indices)
	if s.profiling {
		e.enableProfiling()
	}
	return e.search(s.root)
}

// GetKnnScoreSortOption reports the score alias and limit a top-level KNN
// query should be sorted by downstream, when the parsed AST's root is
// exactly a KNN node.
func (s *SearchAlgorithm) GetKnnScoreSortOption() (KnnScoreSortOption, bool) {
	knn, ok := s.root.(AstKnn)
	if !ok {
		return KnnScoreSortOption{}, false
	}
	return KnnScoreSortOption{ScoreAlias: knn.ScoreAlias, Limit: knn.Limit}, true
}
