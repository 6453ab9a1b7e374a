package chromium

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchQuery_Google(t *testing.T) {
	q, ok := SearchQuery("https://www.google.com/search?q=rust+ownership")
	assert.True(t, ok)
	assert.Equal(t, "rust ownership", q)
}

func TestSearchQuery_UnknownHost(t *testing.T) {
	_, ok := SearchQuery("https://example.com/")
	assert.False(t, ok)
}

func TestSearchQuery_Bing(t *testing.T) {
	q, ok := SearchQuery("https://www.bing.com/search?q=go+generics")
	assert.True(t, ok)
	assert.Equal(t, "go generics", q)
}

func TestSearchQuery_YahooUsesPParam(t *testing.T) {
	q, ok := SearchQuery("https://search.yahoo.com/search?p=weather+chicago")
	assert.True(t, ok)
	assert.Equal(t, "weather chicago", q)

	_, ok = SearchQuery("https://search.yahoo.com/search?q=wrong+param")
	assert.False(t, ok)
}

func TestSearchQuery_DuckDuckGoRootPath(t *testing.T) {
	// DuckDuckGo serves results from its root path, no /search segment.
	q, ok := SearchQuery("https://duckduckgo.com/?q=sqlite+pragma")
	assert.True(t, ok)
	assert.Equal(t, "sqlite pragma", q)
}

func TestSearchQuery_GoogleNonSearchPath(t *testing.T) {
	_, ok := SearchQuery("https://www.google.com/maps?q=coffee")
	assert.False(t, ok)
}

func TestSearchQuery_MissingParam(t *testing.T) {
	_, ok := SearchQuery("https://www.google.com/search")
	assert.False(t, ok)
}

func TestSearchQuery_MalformedURL(t *testing.T) {
	_, ok := SearchQuery("://not-a-url")
	assert.False(t, ok)

	_, ok = SearchQuery("")
	assert.False(t, ok)
}
