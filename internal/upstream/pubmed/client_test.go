package pubmed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/illumination-k/lifesci-mcp/internal/upstream"
)

func TestBuildTerm(t *testing.T) {
	tests := []struct {
		name string
		opts SearchOptions
		want string
	}{
		{
			"keyword only",
			SearchOptions{Keyword: "cancer"},
			"cancer",
		},
		{
			"date range",
			SearchOptions{Keyword: "cancer", DateStart: "2020/01/01", DateEnd: "2021/01/01"},
			"cancer AND 2020/01/01:2021/01/01[dp]",
		},
		{
			"start date only",
			SearchOptions{Keyword: "cancer", DateStart: "2020/01/01"},
			"cancer AND 2020/01/01[dp]",
		},
		{
			"mesh terms",
			SearchOptions{Keyword: "cancer", MeshTerms: []string{"Humans", "Mice"}},
			`cancer AND ("Humans"[mesh] AND "Mice"[mesh])`,
		},
		{
			"open access",
			SearchOptions{Keyword: "cancer", OpenAccess: true},
			`cancer AND "pubmed pmc"[sb]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildTerm(tt.opts); got != tt.want {
				t.Fatalf("buildTerm = %q, want %q", got, tt.want)
			}
		})
	}
}

const esearchFixture = `{
  "esearchresult": {
    "count": "142",
    "retmax": "2",
    "idlist": ["4553338", "174518"],
    "querytranslation": "HeLa[All Fields]"
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return New(upstream.NewClient(ts.URL, upstream.WithRetries(1)))
}

func TestSearchPMIDs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("db"); got != "pubmed" {
			t.Errorf("unexpected db %q", got)
		}
		if got := r.URL.Query().Get("retmax"); got != "2" {
			t.Errorf("unexpected retmax %q", got)
		}
		_, _ = w.Write([]byte(esearchFixture))
	})

	result, err := client.SearchPMIDs(context.Background(), SearchOptions{Keyword: "HeLa", RetMax: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.PMIDs) != 2 || result.PMIDs[0] != "4553338" {
		t.Fatalf("unexpected pmids %v", result.PMIDs)
	}
	if result.TotalResults != 142 {
		t.Fatalf("expected total 142, got %d", result.TotalResults)
	}
	if result.QueryTranslation != "HeLa[All Fields]" {
		t.Fatalf("unexpected translation %q", result.QueryTranslation)
	}
}

func TestSearchPMIDsEmptyKeyword(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := client.SearchPMIDs(context.Background(), SearchOptions{Keyword: ""})
	if !upstream.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no upstream request, got %d", calls.Load())
	}
}

func TestSearchPMIDsRejectsOversizedRetMax(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.SearchPMIDs(context.Background(), SearchOptions{Keyword: "HeLa", RetMax: 5000})
	if !upstream.IsInvalidArgument(err) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestSearchPMIDsMalformedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"header": {}}`))
	})

	_, err := client.SearchPMIDs(context.Background(), SearchOptions{Keyword: "HeLa"})
	if !upstream.IsDataFormat(err) {
		t.Fatalf("expected data format failure, got %v", err)
	}
}

func TestFetchFullTextWithoutPMCID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// Article metadata without any pmc ArticleId.
		_, _ = w.Write([]byte(`<?xml version="1.0"?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation><PMID>123</PMID></MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`))
	})

	_, err := client.FetchFullText(context.Background(), "123")
	if !upstream.IsNotFound(err) {
		t.Fatalf("expected not found for article without PMC deposit, got %v", err)
	}
}

func TestFetchFullText(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("db") {
		case "pubmed":
			_, _ = w.Write([]byte(`<?xml version="1.0"?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation><PMID>123</PMID></MedlineCitation>
    <PubmedData>
      <ArticleIdList><ArticleId IdType="pmc">PMC77</ArticleId></ArticleIdList>
    </PubmedData>
  </PubmedArticle>
</PubmedArticleSet>`))
		case "pmc":
			if got := r.URL.Query().Get("id"); got != "PMC77" {
				t.Errorf("unexpected pmc id %q", got)
			}
			_, _ = w.Write([]byte(`<article><body><p>Full text here.</p></body></article>`))
		default:
			t.Errorf("unexpected db %q", r.URL.Query().Get("db"))
		}
	})

	text, err := client.FetchFullText(context.Background(), "123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Full text here." {
		t.Fatalf("unexpected text %q", text)
	}
}
