package cellosaurus

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/illumination-k/lifesci-mcp/internal/upstream"
)

// mapSearchResult validates the top-level search payload and maps each entry
// into a CellLine. Entries missing their accession are skipped rather than
// failing the whole result, matching how the registry reports partially
// indexed lines. The field filter is re-applied locally so the returned
// records carry exactly the requested fields even if the upstream ignored
// the fields parameter.
func mapSearchResult(body []byte, fields []string) (SearchResult, error) {
	if !gjson.ValidBytes(body) {
		return SearchResult{}, upstream.DataFormatf("search response is not valid JSON")
	}
	payload := gjson.ParseBytes(body)
	lines := payload.Get("cell_lines")
	if !lines.Exists() || !lines.IsArray() {
		return SearchResult{}, upstream.DataFormatf("search response missing cell_lines array")
	}

	result := SearchResult{
		TotalCount: int(payload.Get("total_count").Int()),
		CellLines:  []CellLine{},
	}
	for _, item := range lines.Array() {
		line, err := mapCellLine(item)
		if err != nil {
			continue
		}
		result.CellLines = append(result.CellLines, line.Filter(fields))
	}
	return result, nil
}

// mapCellLinePayload handles the single-entry endpoint. The API wraps the
// entry in a one-element cell_lines array; a bare object is accepted too.
func mapCellLinePayload(body []byte, accession string, fields []string) (CellLine, error) {
	if !gjson.ValidBytes(body) {
		return CellLine{}, upstream.DataFormatf("cell line response is not valid JSON")
	}
	payload := gjson.ParseBytes(body)

	entry := payload
	if lines := payload.Get("cell_lines"); lines.Exists() && lines.IsArray() {
		arr := lines.Array()
		if len(arr) == 0 {
			return CellLine{}, upstream.NotFoundf("cell line %s not found", accession)
		}
		entry = arr[0]
	}

	line, err := mapCellLine(entry)
	if err != nil {
		return CellLine{}, upstream.DataFormatf("cell line payload for %s: %v", accession, err)
	}
	return line.Filter(fields), nil
}

func mapCellLine(item gjson.Result) (CellLine, error) {
	accession := item.Get("accession").String()
	if accession == "" {
		return CellLine{}, fmt.Errorf("entry missing accession")
	}

	line := CellLine{
		Accession:       accession,
		Name:            item.Get("name").String(),
		Category:        item.Get("category").String(),
		Species:         item.Get("species").String(),
		Sex:             item.Get("sex").String(),
		Age:             item.Get("age").String(),
		DerivedFromSite: item.Get("derived_from_site").String(),
	}

	for _, s := range item.Get("synonyms").Array() {
		line.Synonyms = append(line.Synonyms, s.String())
	}

	for _, marker := range item.Get("str_profile").Array() {
		m := StrMarker{
			Marker: marker.Get("marker").String(),
			Source: marker.Get("source").String(),
		}
		for _, allele := range marker.Get("allele").Array() {
			m.Alleles = append(m.Alleles, allele.String())
		}
		line.StrProfile = append(line.StrProfile, m)
	}

	for _, disease := range item.Get("diseases").Array() {
		line.Diseases = append(line.Diseases, Disease{
			Name:       disease.Get("name").String(),
			Identifier: disease.Get("identifier").String(),
		})
	}

	for _, variation := range item.Get("sequence_variations").Array() {
		line.SequenceVariations = append(line.SequenceVariations, SequenceVariation{
			Gene:        variation.Get("gene").String(),
			Description: variation.Get("description").String(),
		})
	}

	for _, pub := range item.Get("publications").Array() {
		line.Publications = append(line.Publications, Publication{
			PubMedID:  pub.Get("pubmed_id").String(),
			Title:     pub.Get("title").String(),
			Authors:   pub.Get("authors").String(),
			Reference: pub.Get("reference").String(),
		})
	}

	if refs := item.Get("cross_references"); refs.IsObject() {
		line.CrossReferences = map[string][]string{}
		refs.ForEach(func(key, value gjson.Result) bool {
			var ids []string
			for _, id := range value.Array() {
				ids = append(ids, id.String())
			}
			line.CrossReferences[key.String()] = ids
			return true
		})
	}

	return line, nil
}
