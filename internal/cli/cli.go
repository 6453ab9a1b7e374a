package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Export *ExportCommand
	Merge  *MergeCommand
	Digest *DigestCommand
	Status *StatusCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "webtrail"
	parser.LongDescription = "Export Chromium-family browsing history into per-day JSON timelines, aggregates, and an LLM-ready digest."

	cmds := &commands{
		Export: &ExportCommand{globals: &globals, version: version},
		Merge:  &MergeCommand{globals: &globals, version: version},
		Digest: &DigestCommand{globals: &globals, version: version},
		Status: &StatusCommand{globals: &globals, version: version},
	}

	parser.AddCommand("export", "Export one browser's history", "Snapshot a browser's History database and export the requested window as per-day JSON, an aggregate, and an LLM digest.", cmds.Export)
	parser.AddCommand("merge", "Merge two exported timelines", "Merge two exported source trees into one deduplicated timeline with source attribution.", cmds.Merge)
	parser.AddCommand("digest", "Rebuild the LLM digest", "Rebuild llm_input.json from an existing aggregate file.", cmds.Digest)
	parser.AddCommand("status", "Summarize an output tree", "Show day count, visit totals, and top domains for an exported tree.", cmds.Status)

	return parser, &globals, cmds
}

// Run is the main entry point for the webtrail CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("webtrail %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
