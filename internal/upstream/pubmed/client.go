// Package pubmed queries the NCBI E-utilities endpoints for PubMed article
// search, article metadata, and open-access full text from PubMed Central.
package pubmed

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/illumination-k/lifesci-mcp/internal/upstream"
)

const (
	// DefaultBaseURL is the E-utilities endpoint root.
	DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

	defaultRetMax = 30
	maxRetMax     = 200
)

// Client translates searches and fetches into E-utilities requests.
type Client struct {
	api *upstream.Client
}

func New(api *upstream.Client) *Client {
	return &Client{api: api}
}

// buildTerm assembles the esearch term from the keyword and optional
// filters: publication date range ([dp]), MeSH terms ([mesh]), and the
// open-access PMC subset ([sb]).
func buildTerm(opts SearchOptions) string {
	term := opts.Keyword

	switch {
	case opts.DateStart != "" && opts.DateEnd != "":
		term = fmt.Sprintf("%s AND %s:%s[dp]", term, opts.DateStart, opts.DateEnd)
	case opts.DateStart != "":
		term = fmt.Sprintf("%s AND %s[dp]", term, opts.DateStart)
	case opts.DateEnd != "":
		term = fmt.Sprintf("%s AND %s[dp]", term, opts.DateEnd)
	}

	if len(opts.MeshTerms) > 0 {
		quoted := make([]string, 0, len(opts.MeshTerms))
		for _, mesh := range opts.MeshTerms {
			quoted = append(quoted, fmt.Sprintf("%q[mesh]", mesh))
		}
		term = fmt.Sprintf("%s AND (%s)", term, strings.Join(quoted, " AND "))
	}

	if opts.OpenAccess {
		term = fmt.Sprintf("%s AND \"pubmed pmc\"[sb]", term)
	}

	return term
}

// SearchPMIDs runs an esearch call and returns the matching PMIDs. The
// keyword must be non-empty and retmax within (0, 200]; violations are
// rejected before any request is issued.
func (c *Client) SearchPMIDs(ctx context.Context, opts SearchOptions) (SearchResult, error) {
	if strings.TrimSpace(opts.Keyword) == "" {
		return SearchResult{}, upstream.InvalidArgumentf("search keyword must not be empty")
	}
	if err := (upstream.Page{Offset: opts.RetStart, Limit: opts.RetMax}).Validate(maxRetMax); err != nil {
		return SearchResult{}, err
	}
	retMax := opts.RetMax
	if retMax == 0 {
		retMax = defaultRetMax
	}

	params := url.Values{
		"db":      {"pubmed"},
		"term":    {buildTerm(opts)},
		"retmode": {"json"},
		"retmax":  {strconv.Itoa(retMax)},
	}
	if opts.RetStart > 0 {
		params.Set("retstart", strconv.Itoa(opts.RetStart))
	}

	body, err := c.api.Get(ctx, "/esearch.fcgi", params)
	if err != nil {
		return SearchResult{}, err
	}
	return mapSearchResult(body)
}

func mapSearchResult(body []byte) (SearchResult, error) {
	if !gjson.ValidBytes(body) {
		return SearchResult{}, upstream.DataFormatf("esearch response is not valid JSON")
	}
	esearch := gjson.GetBytes(body, "esearchresult")
	if !esearch.Exists() {
		return SearchResult{}, upstream.DataFormatf("esearch response missing esearchresult")
	}

	result := SearchResult{PMIDs: []string{}}
	for _, id := range esearch.Get("idlist").Array() {
		result.PMIDs = append(result.PMIDs, id.String())
	}
	if count := esearch.Get("count"); count.Exists() {
		result.TotalResults = int(count.Int())
	}
	result.QueryTranslation = esearch.Get("querytranslation").String()
	return result, nil
}

// FetchArticles retrieves article metadata for the given PMIDs via efetch.
func (c *Client) FetchArticles(ctx context.Context, pmids []string) (ArticleResult, error) {
	if len(pmids) == 0 {
		return ArticleResult{}, upstream.InvalidArgumentf("at least one pmid is required")
	}

	params := url.Values{
		"db":      {"pubmed"},
		"id":      {strings.Join(pmids, ",")},
		"retmode": {"xml"},
	}

	body, err := c.api.Get(ctx, "/efetch.fcgi", params)
	if err != nil {
		return ArticleResult{}, err
	}
	return parseArticleXML(body)
}

// SearchArticles composes SearchPMIDs and FetchArticles. A search with no
// hits returns an empty article list without a second request.
func (c *Client) SearchArticles(ctx context.Context, opts SearchOptions) (ArticleResult, error) {
	search, err := c.SearchPMIDs(ctx, opts)
	if err != nil {
		return ArticleResult{}, err
	}
	if len(search.PMIDs) == 0 {
		return ArticleResult{Articles: []Article{}}, nil
	}
	return c.FetchArticles(ctx, search.PMIDs)
}

// FetchFullText retrieves the open-access full text of an article through
// PubMed Central. An article without a PMC deposit is a NotFound failure.
func (c *Client) FetchFullText(ctx context.Context, pmid string) (string, error) {
	if strings.TrimSpace(pmid) == "" {
		return "", upstream.InvalidArgumentf("pmid must not be empty")
	}

	result, err := c.FetchArticles(ctx, []string{pmid})
	if err != nil {
		return "", err
	}
	if len(result.Articles) == 0 {
		return "", upstream.NotFoundf("article %s not found", pmid)
	}
	pmcID := result.Articles[0].PMCID
	if pmcID == "" {
		return "", upstream.NotFoundf("article %s has no open-access PMC deposit", pmid)
	}

	params := url.Values{
		"db":      {"pmc"},
		"id":      {pmcID},
		"retmode": {"xml"},
		"rettype": {"full"},
	}
	body, err := c.api.Get(ctx, "/efetch.fcgi", params)
	if err != nil {
		return "", err
	}
	return parseFullTextXML(body)
}
