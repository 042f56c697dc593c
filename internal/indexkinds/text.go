package indexkinds

import (
	"sort"
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/kittclouds/ftsearch/pkg/search"
)

// TextIndex is a free-text content index over per-term posting lists.
// Exact lookups go straight to the postings map; prefix/suffix lookups
// walk a sorted term vocabulary with binary search (the same
// ascending-slice discipline pkg/search's own ids.go uses); infix
// scanning — the one query shape that genuinely needs whole-text
// scanning rather than a sorted-range lookup — builds a
// petar-dambovaliev/aho-corasick automaton for the affix per call and
// runs it over the concatenated vocabulary, the pattern the teacher's
// pkg/dafsa RuntimeDictionary.Scan uses for substring detection.
type TextIndex struct {
	stopwords map[string]struct{}
	synonyms  search.Synonyms

	postings map[string]DocIds // term -> ascending doc ids
	nonNull  DocIds             // docs with a non-null value, ascending

	vocabDirty bool
	vocab      []string // sorted ascending
	revVocab   []reversedTerm
}

type reversedTerm struct {
	reversed string
	term     string
}

// NewTextIndex builds an empty TextIndex. opts.Stopwords filters
// tokenization; synonyms, when non-nil, causes each indexed token
// belonging to a synonym group to additionally post under the group's
// canonical token, so a query that resolves to the group token (§4.4's
// Affix{Regular} synonym substitution) finds every document indexed
// under any member of the group.
func NewTextIndex(opts search.IndicesOptions, synonyms search.Synonyms, _ search.TextParams) *TextIndex {
	return &TextIndex{
		stopwords: opts.Stopwords,
		synonyms:  synonyms,
		postings:  make(map[string]DocIds),
	}
}

func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

func (idx *TextIndex) isStopword(tok string) bool {
	if idx.stopwords == nil {
		return false
	}
	_, ok := idx.stopwords[tok]
	return ok
}

func (idx *TextIndex) post(term string, doc DocId) {
	postings, existed := idx.postings[term]
	if !existed {
		idx.vocabDirty = true
	}
	if !containsSorted(postings, doc) {
		idx.postings[term] = insertSorted(postings, doc)
	}
}

func (idx *TextIndex) unpost(term string, doc DocId) {
	postings, ok := idx.postings[term]
	if !ok {
		return
	}
	postings = removeSorted(postings, doc)
	if len(postings) == 0 {
		delete(idx.postings, term)
		idx.vocabDirty = true
	} else {
		idx.postings[term] = postings
	}
}

// Add tokenizes access's text value for field, filters stopwords, and
// posts doc under each surviving token (plus its synonym group token, if
// any). A field value absent from access is a valid null: doc is simply
// left out of nonNull and no postings are touched, and Add still returns
// true. false is reserved for a genuine value error, which this index
// has none of.
func (idx *TextIndex) Add(doc DocId, access search.DocumentAccessor, field string) bool {
	value, ok := access.TextValue(field)
	if !ok {
		return true
	}

	if !containsSorted(idx.nonNull, doc) {
		idx.nonNull = insertSorted(idx.nonNull, doc)
	}

	for _, tok := range tokenize(value) {
		if idx.isStopword(tok) {
			continue
		}
		idx.post(tok, doc)
		if idx.synonyms != nil {
			if group, ok := idx.synonyms.GetGroupToken(tok); ok {
				idx.post(group, doc)
			}
		}
	}
	return true
}

// Remove undoes a prior Add for field's value. Removing an absent doc is
// a no-op (mirroring what Add would have indexed, so it must derive the
// same token set from access to know what to unpost).
func (idx *TextIndex) Remove(doc DocId, access search.DocumentAccessor, field string) {
	value, ok := access.TextValue(field)
	if !ok {
		return
	}

	idx.nonNull = removeSorted(idx.nonNull, doc)

	for _, tok := range tokenize(value) {
		if idx.isStopword(tok) {
			continue
		}
		idx.unpost(tok, doc)
		if idx.synonyms != nil {
			if group, ok := idx.synonyms.GetGroupToken(tok); ok {
				idx.unpost(group, doc)
			}
		}
	}
}

func (idx *TextIndex) GetAllDocsWithNonNullValues() search.IndexResult {
	return search.BorrowedSlice(idx.nonNull)
}

// Matching returns an owned ascending id set of documents containing
// term exactly. stripWhitespace trims term before lookup; synonym group
// tokens are looked up verbatim (evaluator passes stripWhitespace=false
// after substitution, per §4.4).
func (idx *TextIndex) Matching(term string, stripWhitespace bool) DocIds {
	if stripWhitespace {
		term = strings.TrimSpace(term)
	}
	term = strings.ToLower(term)
	postings := idx.postings[term]
	out := make(DocIds, len(postings))
	copy(out, postings)
	return out
}

func (idx *TextIndex) rebuildVocab() {
	if !idx.vocabDirty {
		return
	}
	idx.vocab = idx.vocab[:0]
	for term := range idx.postings {
		idx.vocab = append(idx.vocab, term)
	}
	sort.Strings(idx.vocab)

	idx.revVocab = idx.revVocab[:0]
	for _, term := range idx.vocab {
		idx.revVocab = append(idx.revVocab, reversedTerm{reversed: reverseString(term), term: term})
	}
	sort.Slice(idx.revVocab, func(i, j int) bool { return idx.revVocab[i].reversed < idx.revVocab[j].reversed })

	idx.vocabDirty = false
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// MatchPrefix invokes cb once per vocabulary term starting with affix, in
// ascending term order, via a binary-searched range over the sorted
// vocabulary.
func (idx *TextIndex) MatchPrefix(affix string, cb func(search.IndexResult)) {
	idx.rebuildVocab()
	affix = strings.ToLower(affix)
	lo := sort.SearchStrings(idx.vocab, affix)
	for i := lo; i < len(idx.vocab) && strings.HasPrefix(idx.vocab[i], affix); i++ {
		cb(search.BorrowedSlice(idx.postings[idx.vocab[i]]))
	}
}

// MatchSuffix invokes cb once per vocabulary term ending with affix,
// found the same way as MatchPrefix but over a vocabulary sorted by
// reversed term text.
func (idx *TextIndex) MatchSuffix(affix string, cb func(search.IndexResult)) {
	idx.rebuildVocab()
	revAffix := reverseString(strings.ToLower(affix))
	lo := sort.Search(len(idx.revVocab), func(i int) bool { return idx.revVocab[i].reversed >= revAffix })
	for i := lo; i < len(idx.revVocab) && strings.HasPrefix(idx.revVocab[i].reversed, revAffix); i++ {
		term := idx.revVocab[i].term
		cb(search.BorrowedSlice(idx.postings[term]))
	}
}

// MatchInfix invokes cb once per vocabulary term containing affix
// anywhere, located by scanning the concatenated vocabulary with an
// Aho-Corasick automaton built for the single affix pattern and mapping
// match offsets back to their owning term via a boundary table.
func (idx *TextIndex) MatchInfix(affix string, cb func(search.IndexResult)) {
	idx.rebuildVocab()
	affix = strings.ToLower(affix)
	if affix == "" || len(idx.vocab) == 0 {
		return
	}

	var haystack strings.Builder
	bounds := make([]int, 0, len(idx.vocab)+1)
	bounds = append(bounds, 0)
	for _, term := range idx.vocab {
		haystack.WriteString(term)
		haystack.WriteByte('\x00')
		bounds = append(bounds, haystack.Len())
	}

	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
	})
	automaton := builder.Build([]string{affix})

	matched := make(map[int]struct{})
	for _, m := range automaton.FindAll(haystack.String()) {
		term := sort.Search(len(bounds)-1, func(i int) bool { return bounds[i+1] > m.Start() })
		matched[term] = struct{}{}
	}

	terms := make([]int, 0, len(matched))
	for t := range matched {
		terms = append(terms, t)
	}
	sort.Ints(terms)
	for _, t := range terms {
		cb(search.BorrowedSlice(idx.postings[idx.vocab[t]]))
	}
}

var _ search.TextIndex = (*TextIndex)(nil)
