package timeline

import "time"

// Transition describes how a visit was reached: a single core type decoded
// from the low bits of the Chromium transition bitmask, plus zero or more
// qualifier flags decoded from the high bits.
type Transition struct {
	CoreType   string   `json:"core_type"`
	Qualifiers []string `json:"qualifiers"`
}

// Visit is one recorded navigation event. SearchQuery is set only when the
// URL matches a known search engine; Source is set only on merged output.
type Visit struct {
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	VisitTime   time.Time  `json:"visit_time"`
	Transition  Transition `json:"transition"`
	SearchQuery string     `json:"search_query,omitempty"`
	Source      string     `json:"source,omitempty"`
}

// Window is the requested export range. End is exclusive.
type Window struct {
	Start time.Time `json:"window_start"`
	End   time.Time `json:"window_end"`
}

// DailyRecord holds all visits for one calendar day, ordered by visit time.
type DailyRecord struct {
	Date        string  `json:"date"`
	TotalVisits int     `json:"total_visits"`
	UniqueURLs  int     `json:"unique_urls"`
	Visits      []Visit `json:"visits"`
}

// DomainCount pairs a domain with its visit count.
type DomainCount struct {
	Domain string `json:"domain"`
	Count  int    `json:"count"`
}

// URLCount pairs a URL with its visit count and the first title seen for it.
type URLCount struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	Count int    `json:"count"`
}

// QueryCount pairs a search query with its count.
type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}

// DaySummary is the per-day line in an aggregate's daily breakdown.
type DaySummary struct {
	Date       string `json:"date"`
	Visits     int    `json:"visits"`
	UniqueURLs int    `json:"unique_urls"`
}

// Aggregate holds summary statistics over one export window.
// WeekdayDistribution is indexed by time.Weekday (0 = Sunday).
// BySource is populated only on merged aggregates.
type Aggregate struct {
	WindowStart         time.Time      `json:"window_start"`
	WindowEnd           time.Time      `json:"window_end"`
	TotalVisits         int            `json:"total_visits"`
	UniqueURLs          int            `json:"unique_urls"`
	TopDomains          []DomainCount  `json:"top_domains"`
	TopURLs             []URLCount     `json:"top_urls"`
	TopSearchQueries    []QueryCount   `json:"top_search_queries"`
	HourlyDistribution  [24]int        `json:"hourly_distribution"`
	WeekdayDistribution [7]int         `json:"weekday_distribution"`
	DailySummary        []DaySummary   `json:"daily_summary"`
	BySource            map[string]int `json:"by_source,omitempty"`
}

// Digest is the compact, prompt-friendly reduction of an Aggregate. It never
// carries per-visit detail, so its size is bounded regardless of visit count.
type Digest struct {
	WindowStart           time.Time     `json:"window_start"`
	WindowEnd             time.Time     `json:"window_end"`
	TotalVisits           int           `json:"total_visits"`
	UniqueURLs            int           `json:"unique_urls"`
	ActiveDays            int           `json:"active_days"`
	AvgVisitsPerActiveDay float64       `json:"avg_visits_per_active_day"`
	TopDomains            []DomainCount `json:"top_domains"`
	TopURLs               []URLCount    `json:"top_urls"`
	TopSearchQueries      []QueryCount  `json:"top_search_queries"`
	PeakHour              int           `json:"peak_hour"`
	PeakWeekday           string        `json:"peak_weekday"`
	HourlyDistribution    [24]int       `json:"hourly_distribution"`
}

// Manifest records run metadata next to an output tree. RunID and
// GeneratedAt are the only fields expected to differ between two runs over
// identical input.
type Manifest struct {
	RunID        string    `json:"run_id"`
	GeneratedAt  time.Time `json:"generated_at"`
	Source       string    `json:"source"`
	Weeks        int       `json:"weeks,omitempty"`
	WindowStart  time.Time `json:"window_start"`
	WindowEnd    time.Time `json:"window_end"`
	RowsRead     int       `json:"rows_read"`
	RowsSkipped  int       `json:"rows_skipped"`
	RowsExcluded int       `json:"rows_excluded"`
}
