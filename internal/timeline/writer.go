package timeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dailyDirName     = "daily"
	dailyFilePrefix  = "history_"
	llmInputFileName = "llm_input.json"
	manifestFileName = "export_manifest.json"
)

// Writer emits the JSON output tree for one source (or for a merge).
type Writer struct {
	// Dir is the tree root, e.g. timeline_data/vivaldi.
	Dir string
}

// WriteDaily writes one history_YYYY-MM-DD.json per record under daily/.
func (w *Writer) WriteDaily(records []DailyRecord) error {
	dir := filepath.Join(w.Dir, dailyDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create daily directory: %w", err)
	}
	for _, rec := range records {
		path := filepath.Join(dir, dailyFilePrefix+rec.Date+".json")
		if err := writeJSON(path, rec); err != nil {
			return fmt.Errorf("write daily file for %s: %w", rec.Date, err)
		}
	}
	return nil
}

// WriteAggregate writes the aggregate under the given file name, e.g.
// aggregate_3weeks.json or aggregate_merged.json.
func (w *Writer) WriteAggregate(agg Aggregate, name string) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return writeJSON(filepath.Join(w.Dir, name), agg)
}

// WriteDigest writes llm_input.json.
func (w *Writer) WriteDigest(d Digest) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return writeJSON(filepath.Join(w.Dir, llmInputFileName), d)
}

// WriteManifest writes export_manifest.json.
func (w *Writer) WriteManifest(m Manifest) error {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return writeJSON(filepath.Join(w.Dir, manifestFileName), m)
}

// AggregateFileName builds the aggregate file name for an N-week export.
func AggregateFileName(weeks int) string {
	return fmt.Sprintf("aggregate_%dweeks.json", weeks)
}

// MergedAggregateFileName is the aggregate file name for merge output.
const MergedAggregateFileName = "aggregate_merged.json"

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
