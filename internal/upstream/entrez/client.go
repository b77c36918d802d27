// Package entrez queries the NCBI Entrez eLink API to discover links
// between records of different NCBI databases, plus raw efetch passthrough.
package entrez

import (
	"context"
	"encoding/xml"
	"net/url"
	"strings"

	"github.com/illumination-k/lifesci-mcp/internal/upstream"
)

// DefaultBaseURL is the E-utilities endpoint root.
const DefaultBaseURL = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils"

// databases eLink accepts for dbfrom/db.
var databases = map[string]bool{
	"pubmed":     true,
	"nucleotide": true,
	"protein":    true,
	"gene":       true,
	"taxonomy":   true,
	"structure":  true,
	"biosample":  true,
	"assembly":   true,
	"variation":  true,
	"sra":        true,
	"bioproject": true,
	"pmc":        true,
}

type Client struct {
	api *upstream.Client
}

func New(api *upstream.Client) *Client {
	return &Client{api: api}
}

type xmlLinkResult struct {
	XMLName  xml.Name `xml:"eLinkResult"`
	LinkSets []struct {
		IDs        []string `xml:"IdList>Id"`
		LinkSetDBs []struct {
			DBTo  string   `xml:"DbTo"`
			Links []string `xml:"Link>Id"`
		} `xml:"LinkSetDb"`
	} `xml:"LinkSet"`
}

// Links finds records in dbTo linked to the given ids in dbFrom. A response
// without matching LinkSetDb entries yields an empty result, not an error.
func (c *Client) Links(ctx context.Context, ids []string, dbFrom, dbTo string) (LinkResult, error) {
	if len(ids) == 0 {
		return LinkResult{}, upstream.InvalidArgumentf("at least one id is required")
	}
	if !databases[dbFrom] {
		return LinkResult{}, upstream.InvalidArgumentf("unknown source database %q", dbFrom)
	}
	if !databases[dbTo] {
		return LinkResult{}, upstream.InvalidArgumentf("unknown target database %q", dbTo)
	}

	params := url.Values{
		"dbfrom":  {dbFrom},
		"db":      {dbTo},
		"id":      {strings.Join(ids, ",")},
		"retmode": {"xml"},
	}

	body, err := c.api.Get(ctx, "/elink.fcgi", params)
	if err != nil {
		return LinkResult{}, err
	}
	return parseLinkXML(body, dbFrom, dbTo)
}

func parseLinkXML(body []byte, dbFrom, dbTo string) (LinkResult, error) {
	var parsed xmlLinkResult
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return LinkResult{}, upstream.DataFormatf("parse elink XML: %v", err)
	}

	result := LinkResult{DBFrom: dbFrom, DBTo: dbTo, Links: []Link{}}
	for _, linkSet := range parsed.LinkSets {
		for _, linkSetDB := range linkSet.LinkSetDBs {
			if linkSetDB.DBTo != dbTo || len(linkSetDB.Links) == 0 {
				continue
			}
			for _, id := range linkSet.IDs {
				result.Links = append(result.Links, Link{
					ID:        id,
					DB:        dbFrom,
					LinkedIDs: linkSetDB.Links,
				})
			}
		}
	}
	return result, nil
}

// Fetch returns raw efetch output for the given ids. The payload is passed
// through untouched so callers can request any retmode/rettype the database
// supports.
func (c *Client) Fetch(ctx context.Context, ids []string, db, retmode, rettype string) (string, error) {
	if len(ids) == 0 {
		return "", upstream.InvalidArgumentf("at least one id is required")
	}
	if !databases[db] {
		return "", upstream.InvalidArgumentf("unknown database %q", db)
	}
	if retmode == "" {
		retmode = "xml"
	}

	params := url.Values{
		"db":      {db},
		"id":      {strings.Join(ids, ",")},
		"retmode": {retmode},
	}
	if rettype != "" {
		params.Set("rettype", rettype)
	}

	body, err := c.api.Get(ctx, "/efetch.fcgi", params)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
