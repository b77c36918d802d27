// Package cellosaurus queries the Cellosaurus cell-line registry API.
package cellosaurus

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/illumination-k/lifesci-mcp/internal/upstream"
)

const (
	// DefaultBaseURL is the public Cellosaurus API endpoint.
	DefaultBaseURL = "https://api.cellosaurus.org"

	defaultPageSize = 10
	maxPageSize     = 100
)

var accessionPattern = regexp.MustCompile(`^CVCL_[A-Z0-9]{4}$`)

// Client translates search and lookup calls into Cellosaurus API requests
// and maps the JSON payloads back into typed records. It holds no state
// beyond the transport.
type Client struct {
	api *upstream.Client
}

func New(api *upstream.Client) *Client {
	return &Client{api: api}
}

// Search looks up cell lines matching the query. The query string must be
// non-empty; page must be >= 1 and page size within (0, 100]. Violations are
// rejected before any request is issued.
func (c *Client) Search(ctx context.Context, q SearchQuery) (SearchResult, error) {
	if strings.TrimSpace(q.Query) == "" {
		return SearchResult{}, upstream.InvalidArgumentf("search query must not be empty")
	}
	if q.Page < 0 || q.PageSize < 0 {
		return SearchResult{}, upstream.InvalidArgumentf("page and page_size must be non-negative")
	}
	if q.PageSize > maxPageSize {
		return SearchResult{}, upstream.InvalidArgumentf("page_size %d exceeds maximum %d", q.PageSize, maxPageSize)
	}
	page := q.Page
	if page == 0 {
		page = 1
	}
	size := q.PageSize
	if size == 0 {
		size = defaultPageSize
	}

	params := url.Values{
		"q":      {q.Query},
		"format": {"json"},
		"page":   {strconv.Itoa(page)},
		"size":   {strconv.Itoa(size)},
	}
	if len(q.Fields) > 0 {
		params.Set("fields", strings.Join(q.Fields, ","))
	}

	body, err := c.api.Get(ctx, "/search/cell-line", params)
	if err != nil {
		return SearchResult{}, err
	}
	return mapSearchResult(body, q.Fields)
}

// GetCellLine fetches a single registry entry by accession. The accession
// must match the CVCL_ pattern; an unknown accession is a NotFound failure,
// never an empty record.
func (c *Client) GetCellLine(ctx context.Context, accession string, fields []string) (CellLine, error) {
	if !accessionPattern.MatchString(accession) {
		return CellLine{}, upstream.InvalidArgumentf("accession %q does not match CVCL_XXXX", accession)
	}

	params := url.Values{"format": {"json"}}
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}

	body, err := c.api.Get(ctx, "/cell-line/"+accession, params)
	if err != nil {
		if upstream.IsNotFound(err) {
			return CellLine{}, upstream.NotFoundf("cell line %s not found", accession)
		}
		return CellLine{}, err
	}
	return mapCellLinePayload(body, accession, fields)
}
