package pubchem

// CIDList is the paginated outcome of a compound name search.
type CIDList struct {
	Total int   `json:"total"`
	CIDs  []int `json:"cids"`
}

// Compound holds the property table entry for one compound.
type Compound struct {
	CID              int     `json:"cid"`
	MolecularFormula string  `json:"molecular_formula,omitempty"`
	MolecularWeight  float64 `json:"molecular_weight,omitempty"`
	CanonicalSMILES  string  `json:"canonical_smiles,omitempty"`
	InChIKey         string  `json:"inchi_key,omitempty"`
	IUPACName        string  `json:"iupac_name,omitempty"`
}
