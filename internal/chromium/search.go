package chromium

import (
	"net/url"
	"strings"
)

// searchEngineParams maps known search-engine hosts to the query parameter
// carrying the search terms. Process-wide constant configuration.
var searchEngineParams = map[string]string{
	"www.google.com":     "q",
	"google.com":         "q",
	"www.bing.com":       "q",
	"bing.com":           "q",
	"duckduckgo.com":     "q",
	"www.duckduckgo.com": "q",
	"search.brave.com":   "q",
	"search.yahoo.com":   "p",
	"yahoo.com":          "p",
}

// SearchQuery extracts the search terms from a URL on a known search engine.
// The host must match the engine table and the path must contain a search
// segment (DuckDuckGo puts the query on its root path, so it is exempt).
// Malformed URLs, unknown hosts, and missing parameters all return ok=false.
func SearchQuery(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	host := strings.ToLower(u.Host)
	param, known := searchEngineParams[host]
	if !known {
		return "", false
	}

	if !strings.Contains(strings.ToLower(u.Path), "search") && !strings.HasPrefix(host, "duckduckgo") {
		return "", false
	}

	q := u.Query().Get(param)
	if q == "" {
		return "", false
	}
	return q, true
}
