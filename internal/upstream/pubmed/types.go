package pubmed

// Author of a PubMed article.
type Author struct {
	LastName string `json:"last_name,omitempty"`
	ForeName string `json:"fore_name,omitempty"`
	Initials string `json:"initials,omitempty"`
}

// FullName renders the author's display name from whichever parts exist.
func (a Author) FullName() string {
	if a.ForeName != "" && a.LastName != "" {
		return a.ForeName + " " + a.LastName
	}
	return a.LastName
}

// Journal metadata for an article.
type Journal struct {
	Title           string `json:"title,omitempty"`
	ISOAbbreviation string `json:"iso_abbreviation,omitempty"`
	PubDate         string `json:"pub_date,omitempty"`
}

// Article is one PubMed record. PMCID is set only when the article has an
// open-access PubMed Central deposit.
type Article struct {
	PMID     string   `json:"pmid"`
	PMCID    string   `json:"pmc_id,omitempty"`
	Title    string   `json:"title,omitempty"`
	Abstract string   `json:"abstract,omitempty"`
	Journal  *Journal `json:"journal,omitempty"`
	Authors  []Author `json:"authors,omitempty"`
}

// ArticleResult wraps the articles returned by a fetch.
type ArticleResult struct {
	Articles []Article `json:"articles"`
}

// SearchOptions drives an esearch call. Keyword is required; the remaining
// filters are appended to the term with the E-utilities field syntax. Dates
// use the YYYY/MM/DD form.
type SearchOptions struct {
	Keyword    string
	RetStart   int
	RetMax     int
	DateStart  string
	DateEnd    string
	MeshTerms  []string
	OpenAccess bool
}

// SearchResult holds the PMIDs matched by an esearch call together with the
// metadata E-utilities reports about the query.
type SearchResult struct {
	PMIDs            []string `json:"pmids"`
	TotalResults     int      `json:"total_results,omitempty"`
	QueryTranslation string   `json:"query_translation,omitempty"`
}
