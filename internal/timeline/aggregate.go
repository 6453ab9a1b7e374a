package timeline

import (
	"net/url"
	"sort"
	"strings"
	"time"
)

// dateFormat is the calendar-day key used for bucketing and file names.
const dateFormat = "2006-01-02"

// SummaryCaps bounds the top-N lists in an Aggregate.
type SummaryCaps struct {
	TopDomains int
	TopURLs    int
	TopQueries int
}

// DefaultSummaryCaps matches the historical output shape.
func DefaultSummaryCaps() SummaryCaps {
	return SummaryCaps{TopDomains: 20, TopURLs: 50, TopQueries: 50}
}

// Domain pulls the lowercased hostname from a URL string. Returns "" for
// URLs that do not parse.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// GroupByDay buckets visits into calendar-day records under the given time
// convention. Within a day visits are sorted by visit time; ties keep their
// original read order. Records come back in date order.
func GroupByDay(visits []Visit, loc *time.Location) []DailyRecord {
	byDate := map[string][]Visit{}
	for _, v := range visits {
		date := v.VisitTime.In(loc).Format(dateFormat)
		byDate[date] = append(byDate[date], v)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	records := make([]DailyRecord, 0, len(dates))
	for _, date := range dates {
		dayVisits := byDate[date]
		sort.SliceStable(dayVisits, func(i, j int) bool {
			return dayVisits[i].VisitTime.Before(dayVisits[j].VisitTime)
		})
		records = append(records, DailyRecord{
			Date:        date,
			TotalVisits: len(dayVisits),
			UniqueURLs:  countUniqueURLs(dayVisits),
			Visits:      dayVisits,
		})
	}
	return records
}

// Summarize computes window-wide statistics over the visits. Top-N lists are
// sorted by count descending, then key ascending, so output is reproducible
// for identical input.
func Summarize(visits []Visit, window Window, loc *time.Location, caps SummaryCaps) Aggregate {
	agg := Aggregate{
		WindowStart: window.Start,
		WindowEnd:   window.End,
		TotalVisits: len(visits),
		UniqueURLs:  countUniqueURLs(visits),
	}

	domainCounts := map[string]int{}
	urlCounts := map[string]int{}
	urlTitles := map[string]string{}
	queryCounts := map[string]int{}
	dayCounts := map[string][]Visit{}
	sourceCounts := map[string]int{}

	for _, v := range visits {
		if d := Domain(v.URL); d != "" {
			domainCounts[d]++
		}
		if v.URL != "" {
			urlCounts[v.URL]++
			if v.Title != "" {
				if _, ok := urlTitles[v.URL]; !ok {
					urlTitles[v.URL] = v.Title
				}
			}
		}
		if v.SearchQuery != "" {
			queryCounts[v.SearchQuery]++
		}
		if v.Source != "" {
			sourceCounts[v.Source]++
		}

		local := v.VisitTime.In(loc)
		agg.HourlyDistribution[local.Hour()]++
		agg.WeekdayDistribution[int(local.Weekday())]++
		date := local.Format(dateFormat)
		dayCounts[date] = append(dayCounts[date], v)
	}

	agg.TopDomains = topDomains(domainCounts, caps.TopDomains)
	agg.TopURLs = topURLs(urlCounts, urlTitles, caps.TopURLs)
	agg.TopSearchQueries = topQueries(queryCounts, caps.TopQueries)

	dates := make([]string, 0, len(dayCounts))
	for d := range dayCounts {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	agg.DailySummary = make([]DaySummary, 0, len(dates))
	for _, date := range dates {
		agg.DailySummary = append(agg.DailySummary, DaySummary{
			Date:       date,
			Visits:     len(dayCounts[date]),
			UniqueURLs: countUniqueURLs(dayCounts[date]),
		})
	}

	if len(sourceCounts) > 0 {
		agg.BySource = sourceCounts
	}

	return agg
}

func countUniqueURLs(visits []Visit) int {
	seen := map[string]bool{}
	for _, v := range visits {
		if v.URL != "" {
			seen[v.URL] = true
		}
	}
	return len(seen)
}

// rankKeys orders count-map keys by count descending, then key ascending,
// and truncates to n. n <= 0 means no cap.
func rankKeys(counts map[string]int, n int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if n > 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

func topDomains(counts map[string]int, n int) []DomainCount {
	out := []DomainCount{}
	for _, k := range rankKeys(counts, n) {
		out = append(out, DomainCount{Domain: k, Count: counts[k]})
	}
	return out
}

func topURLs(counts map[string]int, titles map[string]string, n int) []URLCount {
	out := []URLCount{}
	for _, k := range rankKeys(counts, n) {
		out = append(out, URLCount{URL: k, Title: titles[k], Count: counts[k]})
	}
	return out
}

func topQueries(counts map[string]int, n int) []QueryCount {
	out := []QueryCount{}
	for _, k := range rankKeys(counts, n) {
		out = append(out, QueryCount{Query: k, Count: counts[k]})
	}
	return out
}
