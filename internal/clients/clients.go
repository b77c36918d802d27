// Package clients builds the upstream API clients from configuration. Both
// the MCP server and the ad-hoc query CLI wire their tools through here.
package clients

import (
	"net/url"
	"time"

	"github.com/illumination-k/lifesci-mcp/internal/config"
	"github.com/illumination-k/lifesci-mcp/internal/logging"
	"github.com/illumination-k/lifesci-mcp/internal/upstream"
	"github.com/illumination-k/lifesci-mcp/internal/upstream/cellosaurus"
	"github.com/illumination-k/lifesci-mcp/internal/upstream/entrez"
	"github.com/illumination-k/lifesci-mcp/internal/upstream/pubchem"
	"github.com/illumination-k/lifesci-mcp/internal/upstream/pubmed"
	"github.com/illumination-k/lifesci-mcp/internal/upstream/pubtator"
)

// Set holds one client per upstream API.
type Set struct {
	Cellosaurus *cellosaurus.Client
	PubMed      *pubmed.Client
	PubTator    *pubtator.Client
	PubChem     *pubchem.Client
	Entrez      *entrez.Client
}

// Default builds the client set from viper configuration, applying any
// per-upstream overrides from the optional sources file. NCBI-operated
// endpoints (PubMed, Entrez) get the api_key/email/tool identification
// parameters when configured.
func Default(log logging.Logger) (Set, error) {
	sources, err := config.LoadSources(config.SourcesFile())
	if err != nil {
		return Set{}, err
	}

	transport := func(name, defaultBaseURL string, extra url.Values) *upstream.Client {
		baseURL := defaultBaseURL
		timeout := config.HTTPTimeout()
		retries := config.HTTPRetries()
		if override, ok := sources[name]; ok {
			if override.BaseURL != "" {
				baseURL = override.BaseURL
			}
			if override.TimeoutSeconds > 0 {
				timeout = time.Duration(override.TimeoutSeconds) * time.Second
			}
			if override.Retries > 0 {
				retries = override.Retries
			}
		}
		return upstream.NewClient(baseURL,
			upstream.WithTimeout(timeout),
			upstream.WithRetries(retries),
			upstream.WithRetryDelay(config.HTTPRetryDelay()),
			upstream.WithExtraParams(extra),
			upstream.WithLogger(log.WithName(name)),
		)
	}

	ncbiParams := url.Values{}
	if key := config.NCBIAPIKey(); key != "" {
		ncbiParams.Set("api_key", key)
	}
	if email := config.NCBIEmail(); email != "" {
		ncbiParams.Set("email", email)
	}
	if tool := config.NCBITool(); tool != "" {
		ncbiParams.Set("tool", tool)
	}

	return Set{
		Cellosaurus: cellosaurus.New(transport("cellosaurus", cellosaurus.DefaultBaseURL, nil)),
		PubMed:      pubmed.New(transport("pubmed", pubmed.DefaultBaseURL, ncbiParams)),
		PubTator:    pubtator.New(transport("pubtator", pubtator.DefaultBaseURL, nil)),
		PubChem:     pubchem.New(transport("pubchem", pubchem.DefaultBaseURL, nil)),
		Entrez:      entrez.New(transport("entrez", entrez.DefaultBaseURL, ncbiParams)),
	}, nil
}
