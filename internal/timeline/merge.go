package timeline

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"
)

// MergeInputMismatchError indicates one of the two timelines being merged is
// absent or malformed. The merge never produces partial output.
type MergeInputMismatchError struct {
	Source string
	Detail string
}

func (e *MergeInputMismatchError) Error() string {
	return fmt.Sprintf("merge input %q unusable: %s", e.Source, e.Detail)
}

// SourceTree is one exported timeline loaded from disk, tagged with the
// source name it was exported under.
type SourceTree struct {
	Name string
	Days []DailyRecord
}

// LoadSourceTree loads a source's daily files from <baseDir>/<name>/daily.
func LoadSourceTree(baseDir, name string) (SourceTree, error) {
	days, err := LoadDailyDir(filepath.Join(baseDir, name))
	if err != nil {
		return SourceTree{}, &MergeInputMismatchError{Source: name, Detail: err.Error()}
	}
	return SourceTree{Name: name, Days: days}, nil
}

// Merge combines two exported timelines into one. Every visit is tagged with
// its source; when both sources hold a visit with the same (url, visit time)
// the first argument's visit wins, title and transition included, and the
// duplicate is dropped. The merged aggregate is recomputed from the
// deduplicated visits, never by summing the inputs' aggregates.
func Merge(a, b SourceTree, loc *time.Location, caps SummaryCaps) ([]DailyRecord, Aggregate, error) {
	if len(a.Days) == 0 && len(b.Days) == 0 {
		return nil, Aggregate{}, &MergeInputMismatchError{
			Source: a.Name + "," + b.Name,
			Detail: "neither input contains any daily records",
		}
	}

	type visitKey struct {
		url string
		ts  int64
	}

	byDate := map[string][]Visit{}
	seen := map[visitKey]bool{}

	for _, tree := range []SourceTree{a, b} {
		for _, day := range tree.Days {
			for _, v := range day.Visits {
				key := visitKey{url: v.URL, ts: v.VisitTime.UnixMicro()}
				if seen[key] {
					continue
				}
				seen[key] = true
				v.Source = tree.Name
				byDate[day.Date] = append(byDate[day.Date], v)
			}
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	merged := make([]DailyRecord, 0, len(dates))
	var all []Visit
	for _, date := range dates {
		visits := byDate[date]
		sort.SliceStable(visits, func(i, j int) bool {
			return visits[i].VisitTime.Before(visits[j].VisitTime)
		})
		merged = append(merged, DailyRecord{
			Date:        date,
			TotalVisits: len(visits),
			UniqueURLs:  countUniqueURLs(visits),
			Visits:      visits,
		})
		all = append(all, visits...)
	}

	window := windowOf(all)
	agg := Summarize(all, window, loc, caps)

	return merged, agg, nil
}

// windowOf derives window bounds from the visits themselves; merge inputs
// carry no shared window metadata.
func windowOf(visits []Visit) Window {
	var w Window
	for _, v := range visits {
		if w.Start.IsZero() || v.VisitTime.Before(w.Start) {
			w.Start = v.VisitTime
		}
		if w.End.IsZero() || v.VisitTime.After(w.End) {
			w.End = v.VisitTime
		}
	}
	return w
}
