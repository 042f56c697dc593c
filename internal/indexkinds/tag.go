package indexkinds

import (
	"sort"
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"

	"github.com/kittclouds/ftsearch/pkg/search"
)

// TagIndex is a content index over exact, un-tokenized tag values. Its
// affix scans reuse the same sorted-vocabulary/reversed-vocabulary and
// Aho-Corasick machinery as TextIndex, just over the raw tag vocabulary
// instead of tokenized text.
type TagIndex struct {
	caseSensitive bool

	postings map[string]DocIds
	nonNull  DocIds

	vocabDirty bool
	vocab      []string
	revVocab   []reversedTerm
}

// NewTagIndex builds an empty TagIndex. params.CaseSensitive controls
// whether tag values are folded to lowercase before indexing and lookup.
// params.Separator is not read: tags are taken exactly as the accessor's
// TagValues returns them, already split, and no value is split further.
func NewTagIndex(params search.TagParams) *TagIndex {
	return &TagIndex{
		caseSensitive: params.CaseSensitive,
		postings:      make(map[string]DocIds),
	}
}

func (idx *TagIndex) normalize(tag string) string {
	if idx.caseSensitive {
		return tag
	}
	return strings.ToLower(tag)
}

func (idx *TagIndex) post(tag string, doc DocId) {
	postings, existed := idx.postings[tag]
	if !existed {
		idx.vocabDirty = true
	}
	if !containsSorted(postings, doc) {
		idx.postings[tag] = insertSorted(postings, doc)
	}
}

func (idx *TagIndex) unpost(tag string, doc DocId) {
	postings, ok := idx.postings[tag]
	if !ok {
		return
	}
	postings = removeSorted(postings, doc)
	if len(postings) == 0 {
		delete(idx.postings, tag)
		idx.vocabDirty = true
	} else {
		idx.postings[tag] = postings
	}
}

// Add indexes access's tag values for field. A field value absent from
// access is a valid null: doc is simply left out of nonNull and no
// postings are touched, and Add still returns true.
func (idx *TagIndex) Add(doc DocId, access search.DocumentAccessor, field string) bool {
	tags, ok := access.TagValues(field)
	if !ok {
		return true
	}
	if !containsSorted(idx.nonNull, doc) {
		idx.nonNull = insertSorted(idx.nonNull, doc)
	}
	for _, tag := range tags {
		idx.post(idx.normalize(tag), doc)
	}
	return true
}

func (idx *TagIndex) Remove(doc DocId, access search.DocumentAccessor, field string) {
	tags, ok := access.TagValues(field)
	if !ok {
		return
	}
	idx.nonNull = removeSorted(idx.nonNull, doc)
	for _, tag := range tags {
		idx.unpost(idx.normalize(tag), doc)
	}
}

func (idx *TagIndex) GetAllDocsWithNonNullValues() search.IndexResult {
	return search.BorrowedSlice(idx.nonNull)
}

func (idx *TagIndex) Matching(tag string) DocIds {
	postings := idx.postings[idx.normalize(tag)]
	out := make(DocIds, len(postings))
	copy(out, postings)
	return out
}

func (idx *TagIndex) rebuildVocab() {
	if !idx.vocabDirty {
		return
	}
	idx.vocab = idx.vocab[:0]
	for tag := range idx.postings {
		idx.vocab = append(idx.vocab, tag)
	}
	sort.Strings(idx.vocab)

	idx.revVocab = idx.revVocab[:0]
	for _, tag := range idx.vocab {
		idx.revVocab = append(idx.revVocab, reversedTerm{reversed: reverseString(tag), term: tag})
	}
	sort.Slice(idx.revVocab, func(i, j int) bool { return idx.revVocab[i].reversed < idx.revVocab[j].reversed })
	idx.vocabDirty = false
}

func (idx *TagIndex) MatchPrefix(affix string, cb func(search.IndexResult)) {
	idx.rebuildVocab()
	affix = idx.normalize(affix)
	lo := sort.SearchStrings(idx.vocab, affix)
	for i := lo; i < len(idx.vocab) && strings.HasPrefix(idx.vocab[i], affix); i++ {
		cb(search.BorrowedSlice(idx.postings[idx.vocab[i]]))
	}
}

func (idx *TagIndex) MatchSuffix(affix string, cb func(search.IndexResult)) {
	idx.rebuildVocab()
	revAffix := reverseString(idx.normalize(affix))
	lo := sort.Search(len(idx.revVocab), func(i int) bool { return idx.revVocab[i].reversed >= revAffix })
	for i := lo; i < len(idx.revVocab) && strings.HasPrefix(idx.revVocab[i].reversed, revAffix); i++ {
		cb(search.BorrowedSlice(idx.postings[idx.revVocab[i].term]))
	}
}

func (idx *TagIndex) MatchInfix(affix string, cb func(search.IndexResult)) {
	idx.rebuildVocab()
	affix = idx.normalize(affix)
	if affix == "" || len(idx.vocab) == 0 {
		return
	}

	var haystack strings.Builder
	bounds := make([]int, 0, len(idx.vocab)+1)
	bounds = append(bounds, 0)
	for _, tag := range idx.vocab {
		haystack.WriteString(tag)
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

var _ search.TagIndex = (*TagIndex)(nil)
