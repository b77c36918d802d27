package pubtator

// Annotation is one normalized entity mention inside a passage.
type Annotation struct {
	Identifier string `json:"identifier"`
	Biotype    string `json:"biotype"`
	Name       string `json:"name"`
}

// Section groups the annotations of one document passage.
type Section struct {
	SectionType string       `json:"section_type"`
	Annotations []Annotation `json:"annotations"`
}

// AnnotationResult carries every annotated section of one article.
type AnnotationResult struct {
	PMID     string    `json:"pmid"`
	PMCID    string    `json:"pmc_id,omitempty"`
	Sections []Section `json:"sections"`
}

// Match is the best autocomplete hit for a keyword: the normalized concept
// identifier with its type and display name.
type Match struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Biotype     string `json:"biotype,omitempty"`
	Description string `json:"description,omitempty"`
}
