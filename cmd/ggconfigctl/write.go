package main

import (
	"fmt"

	"github.com/joshuapare/ggconfig/pkg/value"
	"github.com/spf13/cobra"
)

var writeType string

func init() {
	cmd := newWriteCmd()
	cmd.Flags().StringVar(&writeType, "type", "string", "Value type (string, int, float, bool, null)")
	rootCmd.AddCommand(cmd)
}

func newWriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "write <path> <value>",
		Short: "Write a scalar value",
		Long: `The write command writes a scalar leaf at the given key path, merging
it in under its ancestors and overwriting any existing leaf at that exact
path (spec section 4.2's merge-with-timestamp write).

Example:
  ggconfigctl write fleet/edge-01/interval 30 --type int
  ggconfigctl write fleet/edge-01/enabled true --type bool`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWrite(args)
		},
	}
}

func runWrite(args []string) error {
	path := parsePathArg(args[0])
	v, err := parseValueArg(args[1], writeType)
	if err != nil {
		return fmt.Errorf("failed to parse value: %w", err)
	}

	e, err := openEngine()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer e.Close()

	params := map[string]value.Value{
		"key_path": pathToValue(path),
		"value":    v,
	}
	if err := e.Write(params); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"path": args[0], "success": true})
	}
	printInfo("written %s\n", args[0])
	return nil
}
