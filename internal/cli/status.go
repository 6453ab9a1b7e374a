package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/mlucas/webtrail/internal/timeline"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Directory   string                 `json:"directory"`
	Days        int                    `json:"days"`
	TotalVisits int                    `json:"total_visits"`
	UniqueURLs  int                    `json:"unique_urls"`
	FirstDate   string                 `json:"first_date,omitempty"`
	LastDate    string                 `json:"last_date,omitempty"`
	TopDomains  []timeline.DomainCount `json:"top_domains"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	days, err := timeline.LoadDailyDir(c.Dir)
	if err != nil {
		return err
	}
	return c.print(days)
}

func (c *StatusCommand) print(days []timeline.DailyRecord) error {
	total := 0
	urlSeen := map[string]bool{}
	domainCounts := map[string]int{}
	for _, day := range days {
		total += day.TotalVisits
		for _, v := range day.Visits {
			if v.URL != "" {
				urlSeen[v.URL] = true
			}
			if d := timeline.Domain(v.URL); d != "" {
				domainCounts[d]++
			}
		}
	}

	topDomains := topDomainCounts(domainCounts, 10)

	if c.globals != nil && c.globals.JSON {
		out := statusJSON{
			Directory:   c.Dir,
			Days:        len(days),
			TotalVisits: total,
			UniqueURLs:  len(urlSeen),
			TopDomains:  topDomains,
		}
		if len(days) > 0 {
			out.FirstDate = days[0].Date
			out.LastDate = days[len(days)-1].Date
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println("Webtrail Timeline Status")
	fmt.Println("========================")
	fmt.Printf("Directory:   %s\n", c.Dir)
	fmt.Printf("Days:        %d\n", len(days))
	fmt.Printf("Visits:      %s\n", formatNumber(total))
	fmt.Printf("Unique URLs: %s\n", formatNumber(len(urlSeen)))
	if len(days) > 0 {
		fmt.Printf("Range:       %s to %s\n", days[0].Date, days[len(days)-1].Date)
	}

	if len(topDomains) > 0 {
		fmt.Println()
		fmt.Println("Top Domains:")
		for _, d := range topDomains {
			fmt.Printf("  %-30s %s\n", d.Domain, formatNumber(d.Count))
		}
	}

	return nil
}

// topDomainCounts ranks a domain count map: count descending, domain
// ascending on ties.
func topDomainCounts(counts map[string]int, n int) []timeline.DomainCount {
	out := make([]timeline.DomainCount, 0, len(counts))
	for d, c := range counts {
		out = append(out, timeline.DomainCount{Domain: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Domain < out[j].Domain
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
