package cellosaurus

// StrMarker is one entry of a cell line's STR (short tandem repeat) profile.
type StrMarker struct {
	Marker  string   `json:"marker"`
	Alleles []string `json:"alleles"`
	Source  string   `json:"source,omitempty"`
}

// Disease links a cell line to a disease with its NCI Thesaurus or ORDO code.
type Disease struct {
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
}

// SequenceVariation describes a known variation in a cell line's genome.
type SequenceVariation struct {
	Gene        string `json:"gene"`
	Description string `json:"description"`
}

// Publication is a literature reference attached to a cell line entry.
type Publication struct {
	PubMedID  string `json:"pubmed_id,omitempty"`
	Title     string `json:"title"`
	Authors   string `json:"authors,omitempty"`
	Reference string `json:"reference"`
}

// CellLine is one Cellosaurus registry entry. The accession is the only
// identity; every other field is optional and elided from JSON when the
// caller asked for a restricted field set.
type CellLine struct {
	Accession          string              `json:"accession"`
	Name               string              `json:"name,omitempty"`
	Synonyms           []string            `json:"synonyms,omitempty"`
	Category           string              `json:"category,omitempty"`
	Species            string              `json:"species,omitempty"`
	Sex                string              `json:"sex,omitempty"`
	Age                string              `json:"age,omitempty"`
	DerivedFromSite    string              `json:"derived_from_site,omitempty"`
	StrProfile         []StrMarker         `json:"str_profile,omitempty"`
	Diseases           []Disease           `json:"diseases,omitempty"`
	SequenceVariations []SequenceVariation `json:"sequence_variations,omitempty"`
	Publications       []Publication       `json:"publications,omitempty"`
	CrossReferences    map[string][]string `json:"cross_references,omitempty"`
}

// Filter returns a copy of the cell line retaining only the requested fields.
// The accession is always carried over; unknown field names select nothing.
func (c CellLine) Filter(fields []string) CellLine {
	if len(fields) == 0 {
		return c
	}
	out := CellLine{Accession: c.Accession}
	for _, field := range fields {
		switch field {
		case "accession":
		case "name":
			out.Name = c.Name
		case "synonyms":
			out.Synonyms = c.Synonyms
		case "category":
			out.Category = c.Category
		case "species":
			out.Species = c.Species
		case "sex":
			out.Sex = c.Sex
		case "age":
			out.Age = c.Age
		case "derived_from_site":
			out.DerivedFromSite = c.DerivedFromSite
		case "str_profile":
			out.StrProfile = c.StrProfile
		case "diseases":
			out.Diseases = c.Diseases
		case "sequence_variations":
			out.SequenceVariations = c.SequenceVariations
		case "publications":
			out.Publications = c.Publications
		case "cross_references":
			out.CrossReferences = c.CrossReferences
		}
	}
	return out
}

// SearchQuery is one search call against the registry. Query uses the
// Cellosaurus search grammar (e.g. "ox:sapiens", "di:Hepatoblastoma"); the
// grammar itself is opaque to this layer. Page is 1-based.
type SearchQuery struct {
	Query    string
	Fields   []string
	Page     int
	PageSize int
}

// SearchResult is the ordered result of a search call.
type SearchResult struct {
	TotalCount int        `json:"total_count"`
	CellLines  []CellLine `json:"cell_lines"`
}
