package program

import (
	"fmt"

	"github.com/richinsley/gocanvas/logging"
	"github.com/richinsley/gocanvas/options"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Builder creates the program for one invocation.
type Builder func(args []string, o options.Options, log logrus.FieldLogger) Test

// Command returns the root command of a program binary. nargs is the exact
// number of positional arguments; sized programs accept --width/--height.
func Command(use, short string, nargs int, sized bool, build Builder) *cobra.Command {
	o := options.Default()
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != nargs {
				return fmt.Errorf("usage: %s", cmd.UseLine())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Load(cmd); err != nil {
				return err
			}
			log := logging.New(cmd.OutOrStdout(), o.LogLevel)
			defer logging.BridgeGG(log)()
			return Run(build(args, o, log))
		},
	}
	o.AddFlags(cmd, sized)
	return cmd
}

// Main executes cmd and dies with a prefixed diagnostic on any failure.
func Main(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		logging.Die(logging.Default(), "%v", err)
	}
}
