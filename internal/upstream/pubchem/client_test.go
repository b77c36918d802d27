package pubchem

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/illumination-k/lifesci-mcp/internal/upstream"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return New(upstream.NewClient(ts.URL, upstream.WithRetries(1)))
}

func TestSearchCompounds(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/compound/name/aspirin/cids/JSON" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"IdentifierList": {"CID": [2244, 517180, 54675810]}}`))
	})

	result, err := client.SearchCompounds(context.Background(), "aspirin", upstream.Page{Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Total != 3 {
		t.Fatalf("expected total 3, got %d", result.Total)
	}
	if len(result.CIDs) != 2 || result.CIDs[0] != 2244 {
		t.Fatalf("unexpected cids %v", result.CIDs)
	}
}

func TestSearchCompoundsOffsetPastEnd(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"IdentifierList": {"CID": [2244]}}`))
	})

	result, err := client.SearchCompounds(context.Background(), "aspirin", upstream.Page{Offset: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.CIDs) != 0 || result.Total != 1 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestSearchCompoundsUnknownName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"Fault": {"Code": "PUGREST.NotFound"}}`))
	})

	_, err := client.SearchCompounds(context.Background(), "no-such-compound", upstream.Page{})
	if !upstream.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSearchCompoundsEmptyName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.SearchCompounds(context.Background(), " ", upstream.Page{})
	if !upstream.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestGetCompound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
  "PropertyTable": {
    "Properties": [
      {
        "CID": 2244,
        "MolecularFormula": "C9H8O4",
        "MolecularWeight": "180.16",
        "CanonicalSMILES": "CC(=O)OC1=CC=CC=C1C(=O)O",
        "InChIKey": "BSYNRYMUTXBXSQ-UHFFFAOYSA-N",
        "IUPACName": "2-acetyloxybenzoic acid"
      }
    ]
  }
}`))
	})

	compound, err := client.GetCompound(context.Background(), 2244)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if compound.CID != 2244 || compound.MolecularFormula != "C9H8O4" {
		t.Fatalf("unexpected compound %+v", compound)
	}
	if compound.MolecularWeight != 180.16 {
		t.Fatalf("string molecular weight not tolerated: %v", compound.MolecularWeight)
	}
	if compound.InChIKey != "BSYNRYMUTXBXSQ-UHFFFAOYSA-N" {
		t.Fatalf("unexpected inchikey %q", compound.InChIKey)
	}
}

func TestGetCompoundMalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Waals": true}`))
	})

	_, err := client.GetCompound(context.Background(), 2244)
	if !upstream.IsDataFormat(err) {
		t.Fatalf("expected data format failure, got %v", err)
	}
}

func TestGetCompoundRejectsNonPositiveCID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	for _, cid := range []int{0, -5} {
		if _, err := client.GetCompound(context.Background(), cid); !upstream.IsInvalidArgument(err) {
			t.Fatalf("cid %d: expected invalid argument, got %v", cid, err)
		}
	}
}
