package search

// SearchResult is what SearchAlgorithm.Search returns: the matched ids,
// an optional parallel k-NN score list, an optional profiling trace, and
// an error string. A non-empty Error means the result is a failure and
// the other fields are undefined (callers should discard them).
type SearchResult struct {
	Total     int
	Ids       DocIds
	KnnScores []KnnScore
	Profile   *AlgorithmProfile
	Error     string
}

// KnnScore pairs a document with its distance in a k-NN query's ranked
// output, parallel to SearchResult.Ids when the query was a KNN node.
type KnnScore struct {
	Doc      DocId
	Distance float32
}

// KnnScoreSortOption describes how a KNN query's results should be sorted
// downstream: by the score alias it was bound to, capped at limit.
type KnnScoreSortOption struct {
	ScoreAlias string
	Limit      int
}

// QueryParams carries named vector bindings ($q-style placeholders) that
// the parser substitutes into KNN clauses.
type QueryParams struct {
	Vectors map[string][]float32
}
