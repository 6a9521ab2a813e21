package search

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/storycave669-rgb/Project-DEVI/internal/logger"
	"github.com/storycave669-rgb/Project-DEVI/internal/models"
)

const defaultBaseURL = "https://api.tavily.com/search"

const maxSnippetLen = 1200

// trustedDomains biases search toward higher-trust medical and guideline
// sources when the provider supports an allow-list.
var trustedDomains = []string{
	"ncbi.nlm.nih.gov",
	"pubmed.ncbi.nlm.nih.gov",
	"cdc.gov",
	"who.int",
	"nice.org.uk",
	"radiopaedia.org",
	"orthobullets.com",
	"aafp.org",
	"east.org",
	"acr.org",
}

// Options bound one search call.
type Options struct {
	MaxResults     int
	SearchDepth    string // "basic" or "advanced"
	IncludeDomains []string
}

// Client calls the Tavily search API. A client with an empty API key is
// valid and returns no results, so callers never need a configured-or-not
// branch of their own.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// searchRequest is the Tavily API request body.
type searchRequest struct {
	Query          string   `json:"query"`
	SearchDepth    string   `json:"search_depth,omitempty"`
	MaxResults     int      `json:"max_results,omitempty"`
	IncludeDomains []string `json:"include_domains,omitempty"`
}

type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search runs one query and returns deduplicated, authority-ranked sources
// with sequential 1-based ids. Every failure path degrades to an empty list:
// missing credentials, network errors, and non-2xx statuses are logged and
// absorbed here, never returned to the caller.
func (c *Client) Search(ctx context.Context, query string, opts Options) []models.Source {
	if c.apiKey == "" {
		logger.Log.Debug("tavily: no API key configured, skipping search")
		return nil
	}

	if opts.MaxResults <= 0 {
		opts.MaxResults = 8
	}
	if opts.SearchDepth == "" {
		opts.SearchDepth = "basic"
	}
	if opts.IncludeDomains == nil {
		opts.IncludeDomains = trustedDomains
	}

	payload, err := json.Marshal(searchRequest{
		Query:          query,
		SearchDepth:    opts.SearchDepth,
		MaxResults:     opts.MaxResults,
		IncludeDomains: opts.IncludeDomains,
	})
	if err != nil {
		logger.Log.WithError(err).Warn("tavily: marshal request")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		logger.Log.WithError(err).Warn("tavily: build request")
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.WithError(err).Warn("tavily: request failed")
		return nil
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		logger.Log.WithError(err).Warn("tavily: read body")
		return nil
	}
	if res.StatusCode != http.StatusOK {
		logger.Log.WithField("status", res.StatusCode).Warn("tavily: non-200 response")
		return nil
	}

	var sr searchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		logger.Log.WithError(err).Warn("tavily: unmarshal response")
		return nil
	}

	sources := make([]models.Source, 0, len(sr.Results))
	for _, r := range sr.Results {
		sources = append(sources, models.Source{
			Title:   r.Title,
			URL:     r.URL,
			Snippet: truncate(r.Content, maxSnippetLen),
		})
	}

	sources = Dedupe(sources)
	RankByAuthority(sources)

	for i := range sources {
		sources[i].ID = i + 1
		if sources[i].Title == "" {
			sources[i].Title = fallbackTitle(sources[i].URL)
		}
	}
	return sources
}

// Dedupe removes sources whose URL, after stripping query string and
// fragment, has already been seen. First-seen order is preserved.
func Dedupe(sources []models.Source) []models.Source {
	seen := make(map[string]bool, len(sources))
	out := sources[:0]
	for _, s := range sources {
		key := canonicalURL(s.URL)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func canonicalURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return strings.TrimSpace(raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimSuffix(u.String(), "/")
}

// fallbackTitle derives a readable title from the URL host and path.
func fallbackTitle(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	host := strings.TrimPrefix(u.Host, "www.")
	path := strings.Trim(u.Path, "/")
	if path == "" {
		return host
	}
	path = strings.NewReplacer("-", " ", "_", " ", "/", " / ").Replace(path)
	return host + ": " + path
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
