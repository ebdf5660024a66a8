package main

import (
	"fmt"

	"github.com/joshuapare/ggconfig/pkg/value"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newReadCmd())
}

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <path>",
		Short: "Read a value or subtree",
		Long: `The read command resolves a key path to its Value: a scalar if the
path is a leaf, or a nested map if it is an internal node.

Example:
  ggconfigctl read fleet/edge-01/interval
  ggconfigctl read fleet/edge-01 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(args)
		},
	}
}

func runRead(args []string) error {
	path := parsePathArg(args[0])

	e, err := openEngine()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer e.Close()

	params := map[string]value.Value{"key_path": pathToValue(path)}
	v, err := e.Read(params)
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	if jsonOut {
		return printJSON(renderValue(v))
	}
	printInfo("%v\n", renderValue(v))
	return nil
}
