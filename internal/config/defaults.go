package config

import "runtime"

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{
			Weeks:          3,
			OutputDir:      "timeline_data",
			Timezone:       "UTC",
			ExcludeDomains: DefaultExcludeDomains(),
		},
		Browsers: map[string]BrowserConfig{
			"vivaldi": {HistoryPath: DefaultHistoryPath("vivaldi")},
			"chrome":  {HistoryPath: DefaultHistoryPath("chrome")},
			"brave":   {HistoryPath: DefaultHistoryPath("brave")},
			"edge":    {HistoryPath: DefaultHistoryPath("edge")},
		},
		Summary: SummaryConfig{
			TopDomains: 20,
			TopURLs:    50,
			TopQueries: 50,
			DigestTopN: 10,
		},
	}
}

// DefaultHistoryPath returns the usual History database location for a
// Chromium-family browser on this OS. Unknown browsers return "".
func DefaultHistoryPath(browser string) string {
	if runtime.GOOS == "darwin" {
		switch browser {
		case "vivaldi":
			return "~/Library/Application Support/Vivaldi/Default/History"
		case "chrome":
			return "~/Library/Application Support/Google/Chrome/Default/History"
		case "brave":
			return "~/Library/Application Support/BraveSoftware/Brave-Browser/Default/History"
		case "edge":
			return "~/Library/Application Support/Microsoft Edge/Default/History"
		}
		return ""
	}

	switch browser {
	case "vivaldi":
		return "~/.config/vivaldi/Default/History"
	case "chrome":
		return "~/.config/google-chrome/Default/History"
	case "brave":
		return "~/.config/BraveSoftware/Brave-Browser/Default/History"
	case "edge":
		return "~/.config/microsoft-edge/Default/History"
	}
	return ""
}
