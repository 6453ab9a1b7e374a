package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/mlucas/webtrail/internal/chromium"
	"github.com/mlucas/webtrail/internal/config"
	"github.com/mlucas/webtrail/internal/timeline"
)

// Execute implements the go-flags Commander interface for ExportCommand.
func (c *ExportCommand) Execute(args []string) error {
	if c.Weeks <= 0 {
		return fmt.Errorf("--weeks must be a positive integer")
	}

	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	dbPath := c.DBPath
	if dbPath == "" {
		dbPath, err = cfg.HistoryPath(c.Browser)
		if err != nil {
			return err
		}
	}

	return c.run(cfg, dbPath, time.Now().UTC())
}

// run performs the export against a resolved database path and clock reading
// (split out so tests control both).
func (c *ExportCommand) run(cfg *config.Config, dbPath string, now time.Time) error {
	outputDir := c.OutputDir
	if outputDir == "" {
		outputDir = cfg.Export.OutputDir
	}
	if c.Timezone != "" {
		cfg.Export.Timezone = c.Timezone
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	window := chromium.WindowForWeeks(now, c.Weeks)

	logf(c.globals, "copying %s history database...", c.Browser)
	snap, cleanup, err := chromium.Snapshot(dbPath)
	if err != nil {
		return err
	}
	defer cleanup()

	reader, err := chromium.OpenReader(snap)
	if err != nil {
		return err
	}
	defer reader.Close()

	logf(c.globals, "querying history...")
	visits, stats, err := reader.Visits(context.Background(), chromium.Options{
		Window:         window,
		ExcludeDomains: cfg.Export.ExcludeDomains,
	})
	if err != nil {
		return err
	}
	logf(c.globals, "fetched %d visit rows (%d skipped, %d excluded)",
		stats.RowsRead, stats.RowsSkipped, stats.RowsExcluded)

	days := timeline.GroupByDay(visits, loc)
	agg := timeline.Summarize(visits, window, loc, summaryCaps(cfg))
	digest := timeline.BuildDigest(agg, cfg.Summary.DigestTopN)

	w := &timeline.Writer{Dir: filepath.Join(outputDir, c.Browser)}
	logf(c.globals, "writing per-day files...")
	if err := w.WriteDaily(days); err != nil {
		return err
	}
	logf(c.globals, "writing aggregate JSON...")
	if err := w.WriteAggregate(agg, timeline.AggregateFileName(c.Weeks)); err != nil {
		return err
	}
	logf(c.globals, "writing LLM input JSON...")
	if err := w.WriteDigest(digest); err != nil {
		return err
	}
	if err := w.WriteManifest(timeline.Manifest{
		RunID:        ulid.Make().String(),
		GeneratedAt:  time.Now().UTC(),
		Source:       c.Browser,
		Weeks:        c.Weeks,
		WindowStart:  window.Start,
		WindowEnd:    window.End,
		RowsRead:     stats.RowsRead,
		RowsSkipped:  stats.RowsSkipped,
		RowsExcluded: stats.RowsExcluded,
	}); err != nil {
		return err
	}

	if c.globals != nil && c.globals.JSON {
		out := map[string]interface{}{
			"source":        c.Browser,
			"output_dir":    w.Dir,
			"days":          len(days),
			"total_visits":  agg.TotalVisits,
			"unique_urls":   agg.UniqueURLs,
			"rows_skipped":  stats.RowsSkipped,
			"rows_excluded": stats.RowsExcluded,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Exported %s visits across %d days to %s\n",
		formatNumber(agg.TotalVisits), len(days), w.Dir)
	if stats.RowsSkipped > 0 {
		fmt.Printf("Skipped %d rows with undecodable timestamps\n", stats.RowsSkipped)
	}
	if stats.RowsExcluded > 0 {
		fmt.Printf("Excluded %d visits on sensitive domains\n", stats.RowsExcluded)
	}
	return nil
}

// summaryCaps builds aggregation caps from config, falling back to the
// defaults for unset values.
func summaryCaps(cfg *config.Config) timeline.SummaryCaps {
	caps := timeline.DefaultSummaryCaps()
	if cfg.Summary.TopDomains > 0 {
		caps.TopDomains = cfg.Summary.TopDomains
	}
	if cfg.Summary.TopURLs > 0 {
		caps.TopURLs = cfg.Summary.TopURLs
	}
	if cfg.Summary.TopQueries > 0 {
		caps.TopQueries = cfg.Summary.TopQueries
	}
	return caps
}
