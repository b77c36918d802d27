// Package pubchem queries the PubChem PUG REST API for compound lookup.
package pubchem

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/illumination-k/lifesci-mcp/internal/upstream"
)

const (
	// DefaultBaseURL is the PUG REST endpoint root.
	DefaultBaseURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"

	defaultLimit = 10
	maxLimit     = 100
)

// Properties requested from the compound property table.
const propertyList = "MolecularFormula,MolecularWeight,CanonicalSMILES,InChIKey,IUPACName"

type Client struct {
	api *upstream.Client
}

func New(api *upstream.Client) *Client {
	return &Client{api: api}
}

// SearchCompounds resolves a compound name to its CIDs. The CID list
// endpoint has no server-side pagination, so the page window is applied
// locally; Total reports the full match count.
func (c *Client) SearchCompounds(ctx context.Context, name string, page upstream.Page) (CIDList, error) {
	if strings.TrimSpace(name) == "" {
		return CIDList{}, upstream.InvalidArgumentf("compound name must not be empty")
	}
	if err := page.Validate(maxLimit); err != nil {
		return CIDList{}, err
	}

	body, err := c.api.Get(ctx, "/compound/name/"+url.PathEscape(name)+"/cids/JSON", nil)
	if err != nil {
		if upstream.IsNotFound(err) {
			return CIDList{}, upstream.NotFoundf("no compound named %q", name)
		}
		return CIDList{}, err
	}

	if !gjson.ValidBytes(body) {
		return CIDList{}, upstream.DataFormatf("cid response is not valid JSON")
	}
	ids := gjson.GetBytes(body, "IdentifierList.CID")
	if !ids.Exists() || !ids.IsArray() {
		return CIDList{}, upstream.DataFormatf("cid response missing IdentifierList.CID")
	}

	all := []int{}
	for _, id := range ids.Array() {
		all = append(all, int(id.Int()))
	}

	result := CIDList{Total: len(all), CIDs: []int{}}
	start := page.Offset
	if start > len(all) {
		start = len(all)
	}
	end := start + page.LimitOr(defaultLimit)
	if end > len(all) {
		end = len(all)
	}
	result.CIDs = append(result.CIDs, all[start:end]...)
	return result, nil
}

// GetCompound fetches the property table entry for a CID.
func (c *Client) GetCompound(ctx context.Context, cid int) (Compound, error) {
	if cid <= 0 {
		return Compound{}, upstream.InvalidArgumentf("cid must be a positive integer, got %d", cid)
	}

	path := "/compound/cid/" + strconv.Itoa(cid) + "/property/" + propertyList + "/JSON"
	body, err := c.api.Get(ctx, path, nil)
	if err != nil {
		if upstream.IsNotFound(err) {
			return Compound{}, upstream.NotFoundf("compound %d not found", cid)
		}
		return Compound{}, err
	}

	if !gjson.ValidBytes(body) {
		return Compound{}, upstream.DataFormatf("property response is not valid JSON")
	}
	properties := gjson.GetBytes(body, "PropertyTable.Properties")
	if !properties.Exists() || !properties.IsArray() {
		return Compound{}, upstream.DataFormatf("property response missing PropertyTable.Properties")
	}
	entries := properties.Array()
	if len(entries) == 0 {
		return Compound{}, upstream.NotFoundf("compound %d not found", cid)
	}

	entry := entries[0]
	return Compound{
		CID:              int(entry.Get("CID").Int()),
		MolecularFormula: entry.Get("MolecularFormula").String(),
		MolecularWeight:  weightOf(entry),
		CanonicalSMILES:  entry.Get("CanonicalSMILES").String(),
		InChIKey:         entry.Get("InChIKey").String(),
		IUPACName:        entry.Get("IUPACName").String(),
	}, nil
}

// weightOf tolerates MolecularWeight arriving as a JSON string, which the
// PUG REST property table does for some records.
func weightOf(entry gjson.Result) float64 {
	return entry.Get("MolecularWeight").Float()
}
