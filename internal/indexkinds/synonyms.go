package indexkinds

import "github.com/kittclouds/ftsearch/pkg/search"

// SynonymTable is a map[term]groupToken behind the search.Synonyms
// contract: every term registered as belonging to a group resolves to
// that group's canonical token, which is what Affix{Regular} evaluation
// substitutes in before calling TextIndex.Matching (§4.4).
type SynonymTable struct {
	groups map[string]string
}

// NewSynonymTable builds a table from a set of synonym groups, each a
// list of interchangeable terms sharing a canonical group token (the
// group's first element).
func NewSynonymTable(groups [][]string) *SynonymTable {
	t := &SynonymTable{groups: make(map[string]string)}
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		token := group[0]
		for _, term := range group {
			t.groups[term] = token
		}
	}
	return t
}

func (t *SynonymTable) GetGroupToken(term string) (string, bool) {
	tok, ok := t.groups[term]
	return tok, ok
}

var _ search.Synonyms = (*SynonymTable)(nil)
