package search

// evaluator is component D, the set of per-node-kind evaluation
// strategies, plus the shared state they and the k-NN driver (component E)
// and the profiling recorder (component F) all need: the sticky error, the
// scratch merger, and the k-NN score list a top-level KNN query fills in.
//
// A fresh evaluator is created for every Search call (§5: evaluator-scoped
// memory never outlives the call); nothing here is safe to share across
// concurrent searches, which is fine because FieldIndices itself is the
// only thing searches share and it is read-only during evaluation.
type evaluator struct {
	indices *FieldIndices
	merger  merger
	err     stickyError
	profile *profileBuilder

	knnScores []KnnScore
}

func newEvaluator(indices *FieldIndices) *evaluator {
	return &evaluator{indices: indices}
}

func (e *evaluator) enableProfiling() {
	e.profile = newProfileBuilder()
}

// search runs the top-level evaluation and packages a SearchResult.
func (e *evaluator) search(root AstNode) SearchResult {
	result := e.eval(root, "")

	var profile *AlgorithmProfile
	if e.profile != nil {
		p := e.profile.Take()
		profile = &p
	}

	ids := result.Take()
	return SearchResult{
		Total:     len(ids),
		Ids:       ids,
		KnnScores: e.knnScores,
		Profile:   profile,
		Error:     e.err.msg,
	}
}

// eval dispatches on node's kind, wrapping the call with profiling (when
// enabled) and the sticky-error short-circuit: once an error has been
// recorded, every subsequent node evaluates to an empty result without
// overwriting it.
func (e *evaluator) eval(node AstNode, activeField string) IndexResult {
	if e.err.has() {
		return EmptyResult()
	}

	if e.profile == nil {
		return e.dispatch(node, activeField)
	}

	start := e.profile.Start()
	result := e.dispatch(node, activeField)
	e.profile.Finish(start, node, result)
	return result
}

func (e *evaluator) dispatch(node AstNode, activeField string) IndexResult {
	switch n := node.(type) {
	case AstEmpty:
		return EmptyResult()
	case AstStar:
		return e.evalStar(n, activeField)
	case AstStarField:
		return e.evalStarField(n, activeField)
	case AstAffix:
		return e.evalAffix(n, activeField)
	case AstRange:
		return e.evalRange(n, activeField)
	case AstNegate:
		return e.evalNegate(n, activeField)
	case AstLogical:
		return e.evalLogical(n, activeField)
	case AstField:
		return e.evalField(n, activeField)
	case AstTags:
		return e.evalTags(n, activeField)
	case AstKnn:
		return e.evalKnn(n, activeField)
	default:
		return EmptyResult()
	}
}

func (e *evaluator) evalStar(_ AstStar, activeField string) IndexResult {
	if activeField != "" {
		assertf(false, "Star node evaluated with non-empty active field %q", activeField)
	}
	return BorrowedSlice(e.indices.GetAllDocs())
}

func (e *evaluator) evalStarField(_ AstStarField, activeField string) IndexResult {
	if sortIdx, ok := e.indices.GetSortIndex(activeField); ok {
		return sortIdx.GetAllDocsWithNonNullValues()
	}
	if idx, ok := e.indices.GetIndex(activeField); ok {
		return idx.GetAllDocsWithNonNullValues()
	}
	return EmptyResult()
}

// collectMatches accumulates every container an affix scan yields via OR,
// in callback order (this mirrors the single-index callback collection in
// the original source, which does not size-sort — only the cross-index
// UnifyResults step does).
func (e *evaluator) collectMatches(scan func(func(IndexResult))) IndexResult {
	result := EmptyResult()
	scan(func(r IndexResult) {
		result = e.merger.merge(r, result, LogicOr)
	})
	return result
}

func (e *evaluator) evalAffix(n AstAffix, activeField string) IndexResult {
	if n.Kind == AffixRegular {
		return e.evalAffixRegular(n, activeField)
	}

	var indices []AffixIndex
	if activeField != "" {
		idx, ok := e.textIndexFor(activeField)
		if !ok {
			return EmptyResult()
		}
		indices = []AffixIndex{idx}
	} else {
		for _, idx := range e.indices.GetAllTextIndices() {
			indices = append(indices, idx)
		}
	}

	subs := make([]IndexResult, len(indices))
	for i, idx := range indices {
		subs[i] = e.collectMatches(affixScanner(idx, n.Kind, n.Text))
	}
	return e.merger.unify(subs, LogicOr)
}

// affixScanner returns the single-argument scan function MatchPrefix,
// MatchSuffix or MatchInfix bound to affix, matching whichever AffixKind
// the node carries.
func affixScanner(idx AffixIndex, kind AffixKind, affix string) func(func(IndexResult)) {
	switch kind {
	case AffixPrefix:
		return func(cb func(IndexResult)) { idx.MatchPrefix(affix, cb) }
	case AffixSuffix:
		return func(cb func(IndexResult)) { idx.MatchSuffix(affix, cb) }
	default: // AffixInfix
		return func(cb func(IndexResult)) { idx.MatchInfix(affix, cb) }
	}
}

// evalAffixRegular implements the "term" case: resolve the active field's
// text index (or fan out across every text index when unscoped), applying
// synonym expansion first.
func (e *evaluator) evalAffixRegular(n AstAffix, activeField string) IndexResult {
	term := n.Text
	stripWhitespace := true
	if e.indices.GetSynonyms() != nil {
		if group, ok := e.indices.GetSynonyms().GetGroupToken(term); ok {
			term = group
			stripWhitespace = false
		}
	}

	if activeField != "" {
		idx, ok := e.textIndexFor(activeField)
		if !ok {
			return EmptyResult()
		}
		return OwnedResult(idx.Matching(term, stripWhitespace))
	}

	all := e.indices.GetAllTextIndices()
	subs := make([]IndexResult, len(all))
	for i, idx := range all {
		subs[i] = OwnedResult(idx.Matching(term, stripWhitespace))
	}
	return e.merger.unify(subs, LogicOr)
}

func (e *evaluator) evalRange(n AstRange, activeField string) IndexResult {
	idx, ok := e.numericIndexFor(activeField)
	if !ok {
		return EmptyResult()
	}
	return idx.Range(n.Lo, n.Hi).Result()
}

func (e *evaluator) evalNegate(n AstNegate, activeField string) IndexResult {
	matched := e.eval(n.Child, activeField).Take()
	all := e.indices.GetAllDocs()
	return OwnedResult(negate(all, matched))
}

func (e *evaluator) evalLogical(n AstLogical, activeField string) IndexResult {
	subs := make([]IndexResult, len(n.Children))
	for i, child := range n.Children {
		subs[i] = e.eval(child, activeField)
	}
	return e.merger.unify(subs, n.Op)
}

func (e *evaluator) evalField(n AstField, activeField string) IndexResult {
	assertf(activeField == "", "Field node evaluated with non-empty active field %q", activeField)
	return e.eval(n.Child, n.Field)
}

func (e *evaluator) evalTags(n AstTags, activeField string) IndexResult {
	idx, ok := e.tagIndexFor(activeField)
	if !ok {
		return EmptyResult()
	}

	subs := make([]IndexResult, len(n.Tags))
	for i, tag := range n.Tags {
		switch tag.Kind {
		case AffixPrefix:
			subs[i] = e.collectMatches(func(cb func(IndexResult)) { idx.MatchPrefix(tag.Text, cb) })
		case AffixSuffix:
			subs[i] = e.collectMatches(func(cb func(IndexResult)) { idx.MatchSuffix(tag.Text, cb) })
		case AffixInfix:
			subs[i] = e.collectMatches(func(cb func(IndexResult)) { idx.MatchInfix(tag.Text, cb) })
		default: // AffixTerm
			subs[i] = OwnedResult(idx.Matching(tag.Text))
		}
	}
	return e.merger.unify(subs, LogicOr)
}

// textIndexFor resolves field to a TextIndex, setting the appropriate
// sticky error ("Invalid field" vs "Wrong access type for field") when it
// can't.
func (e *evaluator) textIndexFor(field string) (TextIndex, bool) {
	if idx, ok := e.indices.GetTextIndex(field); ok {
		return idx, true
	}
	e.reportMissing(field)
	return nil, false
}

func (e *evaluator) tagIndexFor(field string) (TagIndex, bool) {
	if idx, ok := e.indices.GetTagIndex(field); ok {
		return idx, true
	}
	e.reportMissing(field)
	return nil, false
}

func (e *evaluator) numericIndexFor(field string) (NumericIndex, bool) {
	if idx, ok := e.indices.GetNumericIndex(field); ok {
		return idx, true
	}
	e.reportMissing(field)
	return nil, false
}

func (e *evaluator) vectorIndexFor(field string) (BaseVectorIndex, bool) {
	if idx, ok := e.indices.GetVectorIndex(field); ok {
		return idx, true
	}
	e.reportMissing(field)
	return nil, false
}

func (e *evaluator) reportMissing(field string) {
	if _, exists := e.indices.GetIndex(field); exists {
		e.err.set("Wrong access type for field: %s", field)
	} else {
		e.err.set("Invalid field: %s", field)
	}
}

// assertf panics on violation of an invariant the parser is responsible
// for upholding (single-level field scoping, Star never appearing under a
// field). These are programming errors, not user-facing query errors
// (§7.5): a conforming parser never constructs the AST shapes that would
// trip them.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panicf(format, args...)
	}
}
