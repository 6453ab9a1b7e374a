package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/mlucas/webtrail/internal/timeline"
)

// Execute implements the go-flags Commander interface for MergeCommand.
func (c *MergeCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	names := splitSources(c.Sources)
	if len(names) != 2 {
		return fmt.Errorf("--sources must name exactly two source trees, got %q", c.Sources)
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	logf(c.globals, "loading %s...", names[0])
	a, err := timeline.LoadSourceTree(c.BaseDir, names[0])
	if err != nil {
		return err
	}
	logf(c.globals, "loading %s...", names[1])
	b, err := timeline.LoadSourceTree(c.BaseDir, names[1])
	if err != nil {
		return err
	}

	logf(c.globals, "merging daily files...")
	merged, agg, err := timeline.Merge(a, b, loc, summaryCaps(cfg))
	if err != nil {
		return err
	}
	digest := timeline.BuildDigest(agg, cfg.Summary.DigestTopN)

	w := &timeline.Writer{Dir: filepath.Join(c.BaseDir, "merge")}
	if err := w.WriteDaily(merged); err != nil {
		return err
	}
	if err := w.WriteAggregate(agg, timeline.MergedAggregateFileName); err != nil {
		return err
	}
	if err := w.WriteDigest(digest); err != nil {
		return err
	}
	if err := w.WriteManifest(timeline.Manifest{
		RunID:       ulid.Make().String(),
		GeneratedAt: time.Now().UTC(),
		Source:      names[0] + "+" + names[1],
		WindowStart: agg.WindowStart,
		WindowEnd:   agg.WindowEnd,
		RowsRead:    agg.TotalVisits,
	}); err != nil {
		return err
	}

	if c.globals != nil && c.globals.JSON {
		out := map[string]interface{}{
			"sources":      names,
			"output_dir":   w.Dir,
			"days":         len(merged),
			"total_visits": agg.TotalVisits,
			"by_source":    agg.BySource,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Merged %s and %s: %s visits across %d days to %s\n",
		names[0], names[1], formatNumber(agg.TotalVisits), len(merged), w.Dir)
	return nil
}

// splitSources parses the --sources value into trimmed, non-empty names.
func splitSources(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
