package timeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// LoadDailyDir reads every history_*.json in a tree's daily/ directory back
// into DailyRecords, ordered by date. The status and merge paths both consume
// trees through this.
func LoadDailyDir(treeDir string) ([]DailyRecord, error) {
	dir := filepath.Join(treeDir, dailyDirName)
	matches, err := filepath.Glob(filepath.Join(dir, dailyFilePrefix+"*.json"))
	if err != nil {
		return nil, fmt.Errorf("glob daily files: %w", err)
	}
	if _, statErr := os.Stat(dir); statErr != nil {
		return nil, fmt.Errorf("daily directory %s: %w", dir, statErr)
	}
	sort.Strings(matches)

	records := make([]DailyRecord, 0, len(matches))
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		var rec DailyRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if rec.Date == "" {
			return nil, fmt.Errorf("parse %s: missing date field", path)
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadAggregate reads an aggregate JSON file.
func LoadAggregate(path string) (Aggregate, error) {
	var agg Aggregate
	data, err := os.ReadFile(path)
	if err != nil {
		return agg, fmt.Errorf("read aggregate: %w", err)
	}
	if err := json.Unmarshal(data, &agg); err != nil {
		return agg, fmt.Errorf("parse aggregate %s: %w", path, err)
	}
	return agg, nil
}
