package entrez

// Link maps one source record to the records it links to in the target
// database.
type Link struct {
	ID        string   `json:"id"`
	DB        string   `json:"db"`
	LinkedIDs []string `json:"linked_ids"`
}

// LinkResult holds every link found between the two databases. An empty
// Links slice means the records exist but have no cross-references.
type LinkResult struct {
	DBFrom string `json:"db_from"`
	DBTo   string `json:"db_to"`
	Links  []Link `json:"links"`
}
