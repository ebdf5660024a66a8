package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joshuapare/ggconfig/internal/subscribe"
	"github.com/joshuapare/ggconfig/pkg/value"
	"github.com/spf13/cobra"
)

var subscribeTimeout time.Duration

func init() {
	cmd := newSubscribeCmd()
	cmd.Flags().DurationVar(&subscribeTimeout, "timeout", 0, "Stop watching after this long (0 = until interrupted)")
	rootCmd.AddCommand(cmd)
}

func newSubscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe <path>",
		Short: "Watch a subtree for mutations",
		Long: `The subscribe command registers a watch on a key path and prints every
mutated path under it until interrupted (spec sections 4.3 and 6). Since
this tool holds the store directly (and with it the data directory's
exclusive lock) rather than talking to a running daemon, it only
observes mutations made within this same process invocation.

Example:
  ggconfigctl subscribe fleet/edge-01 --timeout 30s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubscribe(args)
		},
	}
}

func runSubscribe(args []string) error {
	path := parsePathArg(args[0])

	e, err := openEngine()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer e.Close()

	handle := subscribe.Handle(os.Getpid())
	params := map[string]value.Value{"key_path": pathToValue(path)}
	if err := e.Subscribe(handle, params); err != nil {
		return fmt.Errorf("subscribe failed: %w", err)
	}
	defer e.Unsubscribe(handle)

	printInfo("watching %s (ctrl-c to stop)\n", args[0])

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	var deadline <-chan time.Time
	if subscribeTimeout > 0 {
		deadline = time.After(subscribeTimeout)
	}

	notifications := e.Notifications(handle)
	for {
		select {
		case p, ok := <-notifications:
			if !ok {
				return nil
			}
			printInfo("changed: %s\n", p.Display())
		case <-sigCh:
			return nil
		case <-deadline:
			return nil
		}
	}
}
