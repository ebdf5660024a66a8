package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joshuapare/ggconfig/internal/persist/walfile"
	"github.com/joshuapare/ggconfig/pkg/engine"
	"github.com/joshuapare/ggconfig/pkg/value"
	"github.com/spf13/cobra"
)

var diffKey string

func init() {
	cmd := newDiffCmd()
	cmd.Flags().StringVar(&diffKey, "key", "", "Compare only this subtree")
	rootCmd.AddCommand(cmd)
}

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <dir1> <dir2>",
		Short: "Compare two gg_config data directories",
		Long: `The diff command compares two store data directories and reports
added, removed and changed leaves under the given subtree.

Example:
  ggconfigctl diff ./backup-2026-07-01 ./gg_config-data
  ggconfigctl diff ./a ./b --key fleet/edge-01`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(args)
		},
	}
}

type leafDiff struct {
	Path   string      `json:"path"`
	Action string      `json:"action"`
	Old    interface{} `json:"old,omitempty"`
	New    interface{} `json:"new,omitempty"`
}

func runDiff(args []string) error {
	printVerbose("comparing %s and %s\n", args[0], args[1])

	leaves1, err := collectLeaves(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	leaves2, err := collectLeaves(args[1])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[1], err)
	}

	prefix := diffKey
	var diffs []leafDiff
	for p, v := range leaves2 {
		if prefix != "" && !hasPrefixStr(p, prefix) {
			continue
		}
		if old, ok := leaves1[p]; !ok {
			diffs = append(diffs, leafDiff{Path: p, Action: "added", New: renderValue(v)})
		} else if !old.Equal(v) {
			diffs = append(diffs, leafDiff{Path: p, Action: "modified", Old: renderValue(old), New: renderValue(v)})
		}
	}
	for p, v := range leaves1 {
		if prefix != "" && !hasPrefixStr(p, prefix) {
			continue
		}
		if _, ok := leaves2[p]; !ok {
			diffs = append(diffs, leafDiff{Path: p, Action: "deleted", Old: renderValue(v)})
		}
	}
	sort.Slice(diffs, func(i, j int) bool { return diffs[i].Path < diffs[j].Path })

	if jsonOut {
		return printJSON(diffs)
	}
	for _, d := range diffs {
		switch d.Action {
		case "added":
			printInfo("+ %s = %v\n", d.Path, d.New)
		case "deleted":
			printInfo("- %s = %v\n", d.Path, d.Old)
		case "modified":
			printInfo("~ %s: %v -> %v\n", d.Path, d.Old, d.New)
		}
	}
	printInfo("%d difference(s)\n", len(diffs))
	return nil
}

// hasPrefixStr reports whether path is prefix itself or lies beneath it.
func hasPrefixStr(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+value.PathSeparator)
}

// collectLeaves opens dir as a store for the duration of the scan (which
// takes the directory's exclusive lock and creates it if missing), only
// reads from it, and flattens its tree into path -> leaf Value pairs for
// comparison.
func collectLeaves(dir string) (map[string]value.Value, error) {
	store, err := walfile.Open(dir, walfile.FlushAuto)
	if err != nil {
		return nil, err
	}
	e := engine.New(store)
	defer e.Close()

	root := value.NewPathFromStrings()
	v, err := e.Read(map[string]value.Value{"key_path": pathToValue(root)})
	if err != nil {
		return nil, err
	}
	out := map[string]value.Value{}
	flattenLeaves(root.Display(), v, out)
	return out, nil
}

func flattenLeaves(prefix string, v value.Value, out map[string]value.Value) {
	if !v.IsMap() {
		out[prefix] = v
		return
	}
	for k, child := range v.Map {
		p := prefix
		if p != "" && p != "/" {
			p += value.PathSeparator
		} else {
			p = ""
		}
		flattenLeaves(p+k, child, out)
	}
}
