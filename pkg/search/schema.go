package search

// FieldType identifies what kind of content index a field needs.
type FieldType int

const (
	FieldText FieldType = iota
	FieldNumeric
	FieldTag
	FieldVector
)

// FieldFlags is a bitmask of per-field modifiers.
type FieldFlags uint8

const (
	// FlagNoIndex excludes the field from FieldIndices entirely: no
	// content index, no sort index, never matched.
	FlagNoIndex FieldFlags = 1 << iota
	// FlagSortable requests a companion sort index for TAG/TEXT/NUMERIC
	// fields (ignored for VECTOR, which never has one).
	FlagSortable
)

// TextParams configures a TEXT field's content index.
type TextParams struct {
	WithSuffixTrie bool
}

// NumericParams configures a NUMERIC field's content index.
type NumericParams struct {
	BlockSize int
}

// TagParams configures a TAG field's content index.
type TagParams struct {
	Separator byte
	CaseSensitive bool
}

// VectorParams configures a VECTOR field's content index.
type VectorParams struct {
	Dim        int
	Similarity Similarity
	UseHnsw    bool
	// EfConstruction/M are HNSW build-time parameters. Flat indices ignore
	// them, and internal/indexkinds's HNSW backend does not read them
	// either: it builds its graph with fogfish/hnsw's defaults.
	EfConstruction int
	M              int
}

// FieldInfo describes one schema field: its type, flags, short display
// name, and type-specific construction parameters (exactly one of the
// *Params fields below is meaningful, selected by Type).
type FieldInfo struct {
	Type      FieldType
	Flags     FieldFlags
	ShortName string

	Text   TextParams
	Numeric NumericParams
	Tag    TagParams
	Vector VectorParams
}

func (fi FieldInfo) hasFlag(f FieldFlags) bool { return fi.Flags&f != 0 }

// Schema maps field identifiers to FieldInfo and aliases to identifiers.
// FieldOrder preserves schema field-declaration order, which
// GetAllTextIndices must respect.
type Schema struct {
	Fields      map[string]FieldInfo
	FieldOrder  []string
	FieldNames  map[string]string // alias -> identifier
}

// NewSchema returns an empty schema ready for AddField calls.
func NewSchema() *Schema {
	return &Schema{
		Fields:     make(map[string]FieldInfo),
		FieldNames: make(map[string]string),
	}
}

// AddField registers a field in declaration order.
func (s *Schema) AddField(identifier string, info FieldInfo) {
	if _, exists := s.Fields[identifier]; !exists {
		s.FieldOrder = append(s.FieldOrder, identifier)
	}
	s.Fields[identifier] = info
}

// AddAlias registers alias as another name for identifier.
func (s *Schema) AddAlias(alias, identifier string) {
	s.FieldNames[alias] = identifier
}

// LookupAlias returns the identifier for alias, or alias unchanged if
// there is no such alias.
func (s *Schema) LookupAlias(alias string) string {
	if id, ok := s.FieldNames[alias]; ok {
		return id
	}
	return alias
}

// LookupIdentifier returns the short display name for identifier, or
// identifier unchanged if it isn't a known field.
func (s *Schema) LookupIdentifier(identifier string) string {
	if fi, ok := s.Fields[identifier]; ok {
		return fi.ShortName
	}
	return identifier
}

// defaultStopwords is the fixed English stopword list used when
// IndicesOptions.Stopwords is left nil.
var defaultStopwords = []string{
	"a", "is", "the", "an", "and", "are", "as", "at", "be", "but", "by",
	"for", "if", "in", "into", "it", "no", "not", "of", "on", "or", "such",
	"that", "their", "then", "there", "these", "they", "this", "to", "was",
	"will", "with",
}

// IndicesOptions carries cross-field construction options for
// FieldIndices.
type IndicesOptions struct {
	Stopwords map[string]struct{}
}

// NewIndicesOptions returns IndicesOptions seeded with the default
// English stopword list.
func NewIndicesOptions() IndicesOptions {
	sw := make(map[string]struct{}, len(defaultStopwords))
	for _, w := range defaultStopwords {
		sw[w] = struct{}{}
	}
	return IndicesOptions{Stopwords: sw}
}
