package cli

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/mlucas/webtrail/internal/timeline"
)

// Execute implements the go-flags Commander interface for DigestCommand.
// It rebuilds llm_input.json from the tree's existing aggregate file without
// re-reading any history database.
func (c *DigestCommand) Execute(args []string) error {
	path, err := findAggregate(c.Dir)
	if err != nil {
		return err
	}

	agg, err := timeline.LoadAggregate(path)
	if err != nil {
		return err
	}

	digest := timeline.BuildDigest(agg, c.TopN)
	w := &timeline.Writer{Dir: c.Dir}
	if err := w.WriteDigest(digest); err != nil {
		return err
	}

	logf(c.globals, "rebuilt digest from %s", filepath.Base(path))
	fmt.Printf("Wrote llm_input.json from %s\n", filepath.Base(path))
	return nil
}

// findAggregate locates the tree's aggregate file. Merge trees hold
// aggregate_merged.json; export trees hold aggregate_<N>weeks.json.
func findAggregate(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "aggregate_*.json"))
	if err != nil {
		return "", fmt.Errorf("glob aggregate files: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no aggregate file found in %s", dir)
	}
	sort.Strings(matches)
	return matches[0], nil
}
