package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/action"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/backsignal"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/platform/evdev"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/router"
	"github.com/BrandonKowalski/scenerouter/pkg/scenerouter/state"
	"github.com/spf13/cobra"
)

func newListenCmd() *cobra.Command {
	var (
		device string
		push   []string
	)

	cmd := &cobra.Command{
		Use:   "listen FILE",
		Short: "Route back key presses from an input device into a router",
		Long: `Loads the scene file, optionally pushes scenes given with --push, and
then pops on every back key press read from the device. The command exits
once back navigation is exhausted or on SIGINT/SIGTERM.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := scenerouter.LoadScenes(args[0])
			if err != nil {
				return err
			}

			listener, err := evdev.Open(evdev.Config{DevicePath: device})
			if err != nil {
				return err
			}
			defer listener.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			logger := scenerouter.GetLogger()

			r, err := router.New(nil, router.Options{ID: "scenenav", Root: root})
			if err != nil {
				return err
			}
			r.OnRender(func(s *state.State, _ func(action.Action)) {
				fmt.Fprintln(out, s)
			}).OnExitApp(func() bool {
				logger.Info("Back navigation exhausted, exiting")
				stop()
				return true
			})

			dispatcher := backsignal.NewDispatcher()
			return r.Run(dispatcher, func() error {
				for _, key := range push {
					r.Push(key, nil)
				}
				return listen(ctx, listener.Signals(), dispatcher)
			})
		},
	}

	cmd.Flags().StringVar(&device, "device", "/dev/input/event0", "input device to read back key presses from")
	cmd.Flags().StringSliceVar(&push, "push", nil, "scenes to push before listening")

	return cmd
}

func listen(ctx context.Context, signals <-chan struct{}, dispatcher *backsignal.Dispatcher) error {
	logger := scenerouter.GetLogger()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-signals:
			if !ok {
				return fmt.Errorf("input device closed")
			}
			if !dispatcher.Signal() {
				logger.Debug("Back press not consumed")
			}
		}
	}
}
