package cellosaurus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/illumination-k/lifesci-mcp/internal/upstream"
)

const searchFixture = `{
  "total_count": 2,
  "cell_lines": [
    {
      "accession": "CVCL_0030",
      "name": "HeLa",
      "synonyms": ["Hela", "He La"],
      "category": "Cancer cell line",
      "species": "Homo sapiens",
      "sex": "Female",
      "age": "30Y6M",
      "derived_from_site": "Uterus, cervix",
      "diseases": [{"name": "Human papillomavirus-related cervical adenocarcinoma", "identifier": "NCIt:C27677"}],
      "cross_references": {"ATCC": ["CCL-2"], "DSMZ": ["ACC-57"]}
    },
    {
      "accession": "CVCL_1922",
      "name": "HeLa S3",
      "category": "Cancer cell line",
      "species": "Homo sapiens"
    }
  ]
}`

const cellLineFixture = `{
  "cell_lines": [
    {
      "accession": "CVCL_0030",
      "name": "HeLa",
      "category": "Cancer cell line",
      "species": "Homo sapiens",
      "sex": "Female",
      "str_profile": [{"marker": "AMEL", "allele": ["X"], "source": "ATCC"}],
      "publications": [{"pubmed_id": "4553338", "title": "Cited paper", "reference": "Nature 1972"}]
    }
  ]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return New(upstream.NewClient(ts.URL, upstream.WithRetries(1))), ts
}

func TestSearchMapsCellLines(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "name:HeLa" {
			t.Errorf("unexpected query %q", got)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("unexpected format %q", got)
		}
		_, _ = w.Write([]byte(searchFixture))
	})

	result, err := client.Search(context.Background(), SearchQuery{Query: "name:HeLa", PageSize: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalCount != 2 {
		t.Fatalf("expected total_count 2, got %d", result.TotalCount)
	}
	if len(result.CellLines) != 2 {
		t.Fatalf("expected 2 cell lines, got %d", len(result.CellLines))
	}
	hela := result.CellLines[0]
	if hela.Accession != "CVCL_0030" || hela.Name != "HeLa" {
		t.Fatalf("unexpected first record %+v", hela)
	}
	if len(hela.Diseases) != 1 || hela.Diseases[0].Identifier != "NCIt:C27677" {
		t.Fatalf("disease not mapped: %+v", hela.Diseases)
	}
	if got := hela.CrossReferences["ATCC"]; len(got) != 1 || got[0] != "CCL-2" {
		t.Fatalf("cross references not mapped: %+v", hela.CrossReferences)
	}
}

func TestSearchResultBoundedByPageSize(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(searchFixture))
	})

	result, err := client.Search(context.Background(), SearchQuery{Query: "ox:sapiens", PageSize: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.CellLines) > 5 {
		t.Fatalf("result exceeds requested page size: %d", len(result.CellLines))
	}
}

func TestSearchEmptyQueryIssuesNoRequest(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := client.Search(context.Background(), SearchQuery{Query: "   "})
	if !upstream.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no upstream request, got %d", calls.Load())
	}
}

func TestSearchRejectsOversizedPage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.Search(context.Background(), SearchQuery{Query: "name:HeLa", PageSize: 1000})
	if !upstream.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestSearchMalformedPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected": true}`))
	})

	_, err := client.Search(context.Background(), SearchQuery{Query: "name:HeLa"})
	if !upstream.IsDataFormat(err) {
		t.Fatalf("expected data format failure, got %v", err)
	}
}

func TestSearchSkipsEntriesWithoutAccession(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total_count": 2, "cell_lines": [{"name": "orphan"}, {"accession": "CVCL_0030", "name": "HeLa"}]}`))
	})

	result, err := client.Search(context.Background(), SearchQuery{Query: "name:HeLa"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.CellLines) != 1 || result.CellLines[0].Accession != "CVCL_0030" {
		t.Fatalf("expected the orphan entry skipped, got %+v", result.CellLines)
	}
}

func TestGetCellLineByAccession(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cell-line/CVCL_0030" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(cellLineFixture))
	})

	line, err := client.GetCellLine(context.Background(), "CVCL_0030", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line.Accession != "CVCL_0030" {
		t.Fatalf("expected accession CVCL_0030, got %q", line.Accession)
	}
	if len(line.StrProfile) != 1 || line.StrProfile[0].Marker != "AMEL" {
		t.Fatalf("STR profile not mapped: %+v", line.StrProfile)
	}
	if len(line.Publications) != 1 || line.Publications[0].PubMedID != "4553338" {
		t.Fatalf("publications not mapped: %+v", line.Publications)
	}
}

func TestGetCellLineUnknownAccession(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := client.GetCellLine(context.Background(), "CVCL_9999", nil)
	if !upstream.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetCellLineRejectsBadAccession(t *testing.T) {
	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	for _, accession := range []string{"", "HeLa", "CVCL-0030", "cvcl_0030", "CVCL_00301"} {
		if _, err := client.GetCellLine(context.Background(), accession, nil); !upstream.IsInvalidArgument(err) {
			t.Fatalf("accession %q: expected invalid argument, got %v", accession, err)
		}
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no upstream request, got %d", calls.Load())
	}
}

func TestFieldSelectionRestrictsRecordKeys(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Serve the full record even though fields were requested, to
		// exercise the local re-filter.
		_, _ = w.Write([]byte(cellLineFixture))
	})

	line, err := client.GetCellLine(context.Background(), "CVCL_0030", []string{"name", "species"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	serialized, err := json.Marshal(line)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var keys map[string]any
	if err := json.Unmarshal(serialized, &keys); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]bool{"accession": true, "name": true, "species": true}
	for key := range keys {
		if !want[key] {
			t.Fatalf("unexpected key %q in filtered record: %s", key, serialized)
		}
	}
	for key := range want {
		if _, ok := keys[key]; !ok {
			t.Fatalf("missing key %q in filtered record: %s", key, serialized)
		}
	}
}
