// Command ggconfigctl inspects and edits a gg_config data directory
// directly, the same way the teacher's hivectl operates on hive files as
// a library rather than over a wire protocol (spec section 1 puts the RPC
// transport itself out of the core's scope; this tool is the supplemental
// local convenience SPEC_FULL.md section 12 describes, not part of the
// RPC surface).
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
	jsonOut bool
	dataDir string
)

var rootCmd = &cobra.Command{
	Use:     "ggconfigctl",
	Short:   "Inspect and edit a gg_config store directly",
	Long:    `ggconfigctl reads and writes a gg_config data directory without going through the daemon's RPC surface, for local inspection and scripting.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "./gg_config-data", "Data directory for the store")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
