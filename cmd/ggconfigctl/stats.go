package main

import (
	"fmt"
	"sort"

	"github.com/joshuapare/ggconfig/pkg/value"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [path]",
		Short: "Show leaf/internal counts and type distribution",
		Long: `The stats command walks a subtree and reports key counts, maximum
depth and value-type distribution.

Example:
  ggconfigctl stats
  ggconfigctl stats fleet/edge-01 --json`,
		Args: cobra.RangeArgs(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
}

type storeStats struct {
	LeafCount     int            `json:"leaf_count"`
	InternalCount int            `json:"internal_count"`
	MaxDepth      int            `json:"max_depth"`
	ValueTypes    map[string]int `json:"value_types"`
}

func runStats(args []string) error {
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

	st := storeStats{ValueTypes: map[string]int{}}
	walkStats(v, 0, &st)

	if jsonOut {
		return printJSON(st)
	}
	printInfo("Leaves: %d\n", st.LeafCount)
	printInfo("Internal nodes: %d\n", st.InternalCount)
	printInfo("Max depth: %d\n", st.MaxDepth)
	printInfo("Value types:\n")
	types := make([]string, 0, len(st.ValueTypes))
	for t := range st.ValueTypes {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		printInfo("  %s: %d\n", t, st.ValueTypes[t])
	}
	return nil
}

func walkStats(v value.Value, depth int, st *storeStats) {
	if depth > st.MaxDepth {
		st.MaxDepth = depth
	}
	if !v.IsMap() {
		st.LeafCount++
		st.ValueTypes[kindName(v.Kind)]++
		return
	}
	st.InternalCount++
	for _, child := range v.Map {
		walkStats(child, depth+1, st)
	}
}

func kindName(k value.Kind) string {
	switch k {
	case value.KindNull:
		return "null"
	case value.KindBool:
		return "bool"
	case value.KindInt:
		return "int"
	case value.KindFloat:
		return "float"
	case value.KindBytes:
		return "bytes"
	case value.KindList:
		return "list"
	case value.KindMap:
		return "map"
	default:
		return "unknown"
	}
}
