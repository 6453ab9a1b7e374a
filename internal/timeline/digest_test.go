package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAggregate() Aggregate {
	agg := Aggregate{
		WindowStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		WindowEnd:   time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC),
		TotalVisits: 30,
		UniqueURLs:  12,
		TopDomains: []DomainCount{
			{Domain: "a.example.com", Count: 10},
			{Domain: "b.example.com", Count: 8},
			{Domain: "c.example.com", Count: 7},
		},
		TopURLs: []URLCount{
			{URL: "https://a.example.com/1", Count: 6},
			{URL: "https://a.example.com/2", Count: 4},
		},
		TopSearchQueries: []QueryCount{
			{Query: "go testing", Count: 3},
		},
		DailySummary: []DaySummary{
			{Date: "2024-01-01", Visits: 10, UniqueURLs: 5},
			{Date: "2024-01-02", Visits: 20, UniqueURLs: 9},
		},
	}
	agg.HourlyDistribution[9] = 18
	agg.HourlyDistribution[21] = 12
	agg.WeekdayDistribution[int(time.Monday)] = 25
	agg.WeekdayDistribution[int(time.Tuesday)] = 5
	return agg
}

func TestBuildDigest_Totals(t *testing.T) {
	d := BuildDigest(sampleAggregate(), 10)

	assert.Equal(t, 30, d.TotalVisits)
	assert.Equal(t, 12, d.UniqueURLs)
	assert.Equal(t, 2, d.ActiveDays)
	assert.Equal(t, 15.0, d.AvgVisitsPerActiveDay)
	assert.Equal(t, 9, d.PeakHour)
	assert.Equal(t, "Mon", d.PeakWeekday)
}

func TestBuildDigest_CapsTopLists(t *testing.T) {
	d := BuildDigest(sampleAggregate(), 2)

	require.Len(t, d.TopDomains, 2)
	assert.Equal(t, "a.example.com", d.TopDomains[0].Domain)
	require.Len(t, d.TopURLs, 2)
	require.Len(t, d.TopSearchQueries, 1)
}

func TestBuildDigest_DefaultCap(t *testing.T) {
	d := BuildDigest(sampleAggregate(), 0)
	assert.Len(t, d.TopDomains, 3, "cap of zero falls back to the default")
}

func TestBuildDigest_Deterministic(t *testing.T) {
	agg := sampleAggregate()
	assert.Equal(t, BuildDigest(agg, 5), BuildDigest(agg, 5))
}

func TestBuildDigest_EmptyAggregate(t *testing.T) {
	d := BuildDigest(Aggregate{}, 10)
	assert.Equal(t, 0, d.TotalVisits)
	assert.Equal(t, 0, d.ActiveDays)
	assert.Equal(t, 0.0, d.AvgVisitsPerActiveDay)
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Sun", WeekdayName(time.Sunday))
	assert.Equal(t, "Sat", WeekdayName(time.Saturday))
}
