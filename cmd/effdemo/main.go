// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command effdemo runs small demonstration computations through the eff
// interpreter with the diagnostics flags exposed as CLI flags.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"code.hybscloud.com/eff"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts eff.Options
	root := &cobra.Command{
		Use:          "effdemo",
		Short:        "Run demonstration effect computations",
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.BoolVar(&opts.LogParameters, "log-parameters", false, "capture and log frame parameters")
	flags.BoolVar(&opts.LogLocals, "log-locals", false, "capture and log frame locals")
	flags.BoolVar(&opts.LogExceptions, "log-exceptions", true, "log failed effects")
	flags.BoolVar(&opts.LogResults, "log-results", false, "log completed effects")
	root.AddCommand(newClockCmd(&opts), newBridgeCmd(&opts))
	return root
}

// newHandler builds the run's handler; every record carries the run id.
func newHandler(opts eff.Options) *eff.SlogHandler {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).
		With(slog.String("run_id", uuid.NewString()))
	return eff.NewSlogHandler(logger, opts)
}

func newClockCmd(opts *eff.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "clock",
		Short: "Read the clock through the interpreter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			comp := eff.Perform(eff.ClockNow(), nil, func(t time.Time) eff.Computation[string] {
				return eff.Pure(t.Format(time.RFC3339Nano))
			})
			stamp, err := eff.Run[string](cmd.Context(), comp, newHandler(*opts))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), stamp)
			return nil
		},
	}
}

// bridgeFrame is the demo suspension's frame; tagged fields appear as
// parameters in diagnostics, the rest as locals.
type bridgeFrame struct {
	Delay time.Duration `eff:"param"`
	Base  int           `eff:"param"`
	Label string
}

func newBridgeCmd(opts *eff.Options) *cobra.Command {
	var delay time.Duration
	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Await a native asynchronous primitive through the interpreter",
		RunE: func(cmd *cobra.Command, _ []string) error {
			const base = 41
			task := eff.Go(func() (int, error) {
				time.Sleep(delay)
				return base, nil
			})
			frame := &bridgeFrame{Delay: delay, Base: base, Label: "demo"}
			comp := eff.Perform(eff.Bridge(task), frame, func(x int) eff.Computation[int] {
				return eff.Pure(x + 1)
			})
			sum, err := eff.Run[int](cmd.Context(), comp, newHandler(*opts))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
	cmd.Flags().DurationVar(&delay, "delay", 10*time.Millisecond, "simulated primitive latency")
	return cmd
}
