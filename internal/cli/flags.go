package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// ExportCommand — snapshot one browser's History store and export the window.
type ExportCommand struct {
	Browser   string `long:"browser" description:"Browser to export (vivaldi, chrome, brave, edge)" default:"vivaldi"`
	DBPath    string `long:"db-path" description:"Override the History database path"`
	Weeks     int    `long:"weeks" description:"Number of weeks to export" default:"3"`
	OutputDir string `long:"output-dir" description:"Base output directory"`
	Timezone  string `long:"timezone" description:"Calendar-day bucketing zone (UTC, Local, or IANA name)"`

	globals *GlobalFlags
	version string
}

// MergeCommand — merge two exported source trees into one timeline.
type MergeCommand struct {
	BaseDir string `long:"base-dir" description:"Base timeline data directory" default:"timeline_data"`
	Sources string `long:"sources" description:"Comma-separated pair of source subdirectories" default:"vivaldi,chrome"`

	globals *GlobalFlags
	version string
}

// DigestCommand — rebuild llm_input.json from an existing aggregate.
type DigestCommand struct {
	Dir  string `long:"dir" description:"Output tree to rebuild the digest for" default:"timeline_data/vivaldi"`
	TopN int    `long:"top-n" description:"Cap for the digest's top lists" default:"10"`

	globals *GlobalFlags
	version string
}

// StatusCommand — summarize an exported output tree.
type StatusCommand struct {
	Dir string `long:"dir" description:"Output tree to inspect" default:"timeline_data/vivaldi"`

	globals *GlobalFlags
	version string
}
