package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joshuapare/ggconfig/pkg/value"
	"github.com/spf13/cobra"
)

var (
	treeDepth  int
	treeValues bool
)

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth to display (0 = unlimited)")
	cmd.Flags().BoolVar(&treeValues, "values", true, "Show leaf values")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [path]",
		Short: "Display a hierarchical tree view of a subtree",
		Long: `The tree command displays a hierarchical tree view of keys under the
given path, or the whole store when no path is given.

Example:
  ggconfigctl tree
  ggconfigctl tree fleet/edge-01 --depth 2`,
		Args: cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args)
		},
	}
}

func runTree(args []string) error {
	var rawPath string
	if len(args) > 0 {
		rawPath = args[0]
	}
	path := parsePathArg(rawPath)

	e, err := openEngine()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer e.Close()

	v, err := e.Read(map[string]value.Value{"key_path": pathToValue(path)})
	if err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	if jsonOut {
		return printJSON(renderValue(v))
	}

	name := rawPath
	if name == "" {
		name = "/"
	}
	printInfo("%s\n", name)
	printTreeNode(v, "", 1)
	return nil
}

func printTreeNode(v value.Value, prefix string, depth int) {
	if !v.IsMap() {
		if treeValues {
			printInfo("%s= %v\n", prefix, renderValue(v))
		}
		return
	}
	if treeDepth > 0 && depth > treeDepth {
		return
	}
	keys := make([]string, 0, len(v.Map))
	for k := range v.Map {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for i, k := range keys {
		last := i == len(keys)-1
		connector := "├── "
		childPrefix := prefix + "│   "
		if last {
			connector = "└── "
			childPrefix = prefix + "    "
		}
		child := v.Map[k]
		if child.IsMap() {
			printInfo("%s%s%s\n", prefix, connector, k)
			printTreeNode(child, childPrefix, depth+1)
		} else if treeValues {
			printInfo("%s%s%s = %v\n", prefix, connector, k, renderValue(child))
		} else {
			printInfo("%s%s%s\n", prefix, connector, k)
		}
	}
}
