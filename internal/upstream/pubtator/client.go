// Package pubtator queries the PubTator3 API for article entity annotations
// and concept autocompletion.
package pubtator

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/illumination-k/lifesci-mcp/internal/upstream"
)

// DefaultBaseURL is the public PubTator3 API root.
const DefaultBaseURL = "https://www.ncbi.nlm.nih.gov/research/pubtator3-api"

// Concepts that autocomplete can filter on.
var concepts = map[string]bool{
	"gene":     true,
	"disease":  true,
	"chemical": true,
}

// Document ids come back as "12345" or "12345|PMC67890".
var docIDPattern = regexp.MustCompile(`^(\d+)(?:\|(PMC\d+))?`)

type Client struct {
	api *upstream.Client
}

func New(api *upstream.Client) *Client {
	return &Client{api: api}
}

// splitDocID separates the PMID and optional PMC id of an exported document.
func splitDocID(id string) (pmid, pmcID string, err error) {
	match := docIDPattern.FindStringSubmatch(id)
	if match == nil {
		return "", "", upstream.DataFormatf("document id %q is not PMID or PMID|PMCID", id)
	}
	return match[1], match[2], nil
}

// Annotate exports annotations for the given PMIDs in BioC JSON and maps
// them into per-section annotation lists. Annotation entries missing their
// normalized fields are skipped.
func (c *Client) Annotate(ctx context.Context, pmids []string) ([]AnnotationResult, error) {
	if len(pmids) == 0 {
		return nil, upstream.InvalidArgumentf("at least one pmid is required")
	}

	params := url.Values{
		"full":  {"true"},
		"pmids": {strings.Join(pmids, ",")},
	}

	body, err := c.api.Get(ctx, "/publications/export/biocjson", params)
	if err != nil {
		return nil, err
	}
	return mapAnnotations(body)
}

func mapAnnotations(body []byte) ([]AnnotationResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, upstream.DataFormatf("annotation response is not valid JSON")
	}
	documents := gjson.GetBytes(body, "PubTator3")
	if !documents.Exists() || !documents.IsArray() {
		return nil, upstream.DataFormatf("annotation response missing PubTator3 array")
	}

	results := []AnnotationResult{}
	for _, doc := range documents.Array() {
		pmid, pmcID, err := splitDocID(doc.Get("_id").String())
		if err != nil {
			return nil, err
		}

		result := AnnotationResult{PMID: pmid, PMCID: pmcID, Sections: []Section{}}
		for _, passage := range doc.Get("passages").Array() {
			sectionType := passage.Get("infons.section_type").String()
			if sectionType == "" {
				sectionType = passage.Get("infons.type").String()
			}
			if sectionType == "" {
				sectionType = "unknown"
			}

			section := Section{SectionType: sectionType, Annotations: []Annotation{}}
			for _, ann := range passage.Get("annotations").Array() {
				infons := ann.Get("infons")
				annotation := Annotation{
					Identifier: infons.Get("identifier").String(),
					Biotype:    infons.Get("biotype").String(),
					Name:       infons.Get("name").String(),
				}
				if annotation.Identifier == "" || annotation.Biotype == "" || annotation.Name == "" {
					continue
				}
				section.Annotations = append(section.Annotations, annotation)
			}
			result.Sections = append(result.Sections, section)
		}
		results = append(results, result)
	}
	return results, nil
}

// Autocomplete resolves a free-text keyword to its best normalized concept.
// Concept, when given, restricts the match to gene, disease, or chemical.
// A keyword with no match is a NotFound failure.
func (c *Client) Autocomplete(ctx context.Context, keyword, concept string) (Match, error) {
	if strings.TrimSpace(keyword) == "" {
		return Match{}, upstream.InvalidArgumentf("keyword must not be empty")
	}
	if concept != "" && !concepts[concept] {
		return Match{}, upstream.InvalidArgumentf("concept %q must be one of gene, disease, chemical", concept)
	}

	params := url.Values{
		"query": {keyword},
		"limit": {"1"},
	}
	if concept != "" {
		params.Set("concept", concept)
	}

	body, err := c.api.Get(ctx, "/entity/autocomplete/", params)
	if err != nil {
		return Match{}, err
	}

	if !gjson.ValidBytes(body) {
		return Match{}, upstream.DataFormatf("autocomplete response is not valid JSON")
	}
	hits := gjson.ParseBytes(body)
	if !hits.IsArray() {
		return Match{}, upstream.DataFormatf("autocomplete response is not an array")
	}
	arr := hits.Array()
	if len(arr) == 0 {
		return Match{}, upstream.NotFoundf("no concept match for %q", keyword)
	}

	top := arr[0]
	return Match{
		ID:          top.Get("_id").String(),
		Name:        top.Get("name").String(),
		Biotype:     top.Get("biotype").String(),
		Description: top.Get("description").String(),
	}, nil
}
