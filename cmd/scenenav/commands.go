package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/action"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/router"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/scene"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
	logPath  string
	debug    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "scenenav",
		Short:         "Inspect scene declarations and replay navigation",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			scenerouter.Init(scenerouter.Options{
				LogPath:  flags.logPath,
				LogLevel: flags.logLevel,
				Debug:    flags.debug,
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "application log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.logPath, "log-path", "", "also write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "log router internals")

	rootCmd.AddCommand(newTreeCmd(), newReplayCmd(), newListenCmd())
	return rootCmd
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree FILE",
		Short: "Print the normalized scene tree of a declaration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := scenerouter.LoadScenes(args[0])
			if err != nil {
				return err
			}
			printTree(cmd.OutOrStdout(), root, 0)
			return nil
		},
	}
}

func printTree(w io.Writer, n *scene.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	if n.IsLeaf() {
		fmt.Fprintf(w, "%s%s\n", indent, n.Key)
	} else {
		fmt.Fprintf(w, "%s%s (%s)\n", indent, n.Key, n.Kind)
	}
	for _, c := range n.Children {
		printTree(w, c, depth+1)
	}
}

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay FILE ACTION...",
		Short: "Replay actions written as kind[:key] and print the focus after each",
		Example: `  scenenav replay scenes.toml push:Detail jump:Profile pop
  scenenav replay scenes.yaml reset:Home`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := scenerouter.LoadScenes(args[0])
			if err != nil {
				return err
			}

			r, err := router.New(nil, router.Options{ID: "scenenav", Root: root})
			if err != nil {
				return err
			}
			defer r.Unmount()

			out := cmd.OutOrStdout()
			exited := false
			r.OnExitApp(func() bool {
				exited = true
				return true
			})

			fmt.Fprintf(out, "start: %s\n", r.State())
			for _, raw := range args[1:] {
				a := action.Parse(raw)
				if !a.Kind.IsKnown() {
					scenerouter.GetLogger().Warn("Unknown action kind, treating as refresh", "action", raw)
				}

				exited = false
				r.Dispatch(a)
				if exited {
					fmt.Fprintf(out, "%s: exit\n", a)
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", a, r.State())
			}
			return nil
		},
	}
}
