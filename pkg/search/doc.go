// Package search evaluates parsed query expressions against a collection
// of typed per-field indices and produces matching document identifiers,
// optional k-nearest-neighbour scores, and an optional profiling trace.
//
// The package is split along the lines of the system it implements: ast.go
// and schema.go describe the data a caller hands in, result.go and
// setalgebra.go implement the sorted-set kernel every node evaluator is
// built from, evaluator.go and knn.go walk the AST, profile.go records
// per-node timings, fieldindices.go owns the per-field indices, and
// facade.go exposes the parse-once/evaluate-many entry point.
package search
