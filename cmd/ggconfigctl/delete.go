package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/joshuapare/ggconfig/pkg/value"
	"github.com/spf13/cobra"
)

var deleteForce bool

func init() {
	cmd := newDeleteCmd()
	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Don't prompt for confirmation")
	rootCmd.AddCommand(cmd)
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <path>",
		Short: "Delete a leaf or subtree",
		Long: `The delete command recursively removes a leaf or an internal node and
everything beneath it (spec section 4.2's delete).

Example:
  ggconfigctl delete fleet/edge-01/interval
  ggconfigctl delete fleet/edge-01 --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(args)
		},
	}
}

func runDelete(args []string) error {
	if !deleteForce && !quiet {
		printInfo("Delete %s and everything beneath it? [y/N]: ", args[0])
		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		if response = strings.TrimSpace(strings.ToLower(response)); response != "y" && response != "yes" {
			printInfo("Aborted.\n")
			return nil
		}
	}

	path := parsePathArg(args[0])

	e, err := openEngine()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer e.Close()

	params := map[string]value.Value{"key_path": pathToValue(path)}
	if err := e.Delete(params); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{"path": args[0], "success": true})
	}
	printInfo("deleted %s\n", args[0])
	return nil
}
