package timeline

import "time"

// weekdayNames is indexed by time.Weekday.
var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DefaultDigestTopN caps the digest's top lists.
const DefaultDigestTopN = 10

// BuildDigest reduces an aggregate into a compact, deterministic digest for
// LLM or dashboard consumption. It only re-ranks data already present in the
// aggregate; per-visit detail never appears here.
func BuildDigest(agg Aggregate, topN int) Digest {
	if topN <= 0 {
		topN = DefaultDigestTopN
	}

	d := Digest{
		WindowStart:        agg.WindowStart,
		WindowEnd:          agg.WindowEnd,
		TotalVisits:        agg.TotalVisits,
		UniqueURLs:         agg.UniqueURLs,
		ActiveDays:         len(agg.DailySummary),
		TopDomains:         capDomains(agg.TopDomains, topN),
		TopURLs:            capURLs(agg.TopURLs, topN),
		TopSearchQueries:   capQueries(agg.TopSearchQueries, topN),
		HourlyDistribution: agg.HourlyDistribution,
	}

	if d.ActiveDays > 0 {
		d.AvgVisitsPerActiveDay = round2(float64(agg.TotalVisits) / float64(d.ActiveDays))
	}

	peakHour, peakHourCount := 0, -1
	for h, c := range agg.HourlyDistribution {
		if c > peakHourCount {
			peakHour, peakHourCount = h, c
		}
	}
	d.PeakHour = peakHour

	peakDay, peakDayCount := 0, -1
	for wd, c := range agg.WeekdayDistribution {
		if c > peakDayCount {
			peakDay, peakDayCount = wd, c
		}
	}
	d.PeakWeekday = weekdayNames[peakDay]

	return d
}

// WeekdayName returns the short name for a time.Weekday index.
func WeekdayName(wd time.Weekday) string {
	return weekdayNames[int(wd)%7]
}

func round2(f float64) float64 {
	return float64(int64(f*100+0.5)) / 100
}

func capDomains(in []DomainCount, n int) []DomainCount {
	if len(in) > n {
		in = in[:n]
	}
	out := make([]DomainCount, len(in))
	copy(out, in)
	return out
}

func capURLs(in []URLCount, n int) []URLCount {
	if len(in) > n {
		in = in[:n]
	}
	out := make([]URLCount, len(in))
	copy(out, in)
	return out
}

func capQueries(in []QueryCount, n int) []QueryCount {
	if len(in) > n {
		in = in[:n]
	}
	out := make([]QueryCount, len(in))
	copy(out, in)
	return out
}
