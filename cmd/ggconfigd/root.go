// Command ggconfigd hosts the gg_config engine as a long-running process:
// it owns the durable store and the Subscription Registry for as long as
// it runs, the role the original gg_config daemon process plays, minus
// the RPC transport that spec §1 puts out of this core's scope.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	debugLog bool
	dataDir  string
	flushArg string
)

var rootCmd = &cobra.Command{
	Use:     "ggconfigd",
	Short:   "Run the gg_config configuration store engine",
	Long:    `ggconfigd owns a gg_config data directory and serves read/write/delete/subscribe operations to in-process callers for the lifetime of the process.`,
	Version: "0.1.0",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugLog, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "./gg_config-data", "Data directory for the store")
	rootCmd.PersistentFlags().StringVar(&flushArg, "flush-mode", "auto", "Durability mode: auto (fsync every write) or batched")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
