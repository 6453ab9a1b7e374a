package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mlucas/webtrail/internal/config"
)

// loadConfig resolves the effective configuration: an explicit --config path
// must load cleanly; otherwise defaults are used without touching the disk.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals != nil && globals.Config != "" {
		return config.Load(globals.Config)
	}
	return config.DefaultConfig(), nil
}

// logf writes a progress line to stderr when --verbose is set. Stdout stays
// machine-clean for --json consumers.
func logf(globals *GlobalFlags, format string, args ...interface{}) {
	if globals == nil || !globals.Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "[webtrail] "+format+"\n", args...)
}

// formatNumber formats an int with comma separators.
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
		if len(s) > remainder {
			result.WriteString(",")
		}
	}
	for i := remainder; i < len(s); i += 3 {
		if i > remainder {
			result.WriteString(",")
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}
