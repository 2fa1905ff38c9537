package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/PhlyingPhalanges/sierpinski"
)

// Execute runs the command tree against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "sierpinski",
		Short:        "Generate Sierpiński carpet and gasket point sets",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if !debug {
				sierpinski.SetLogger(nil)
				return
			}
			sierpinski.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log expansion rounds to stderr")

	cmd.AddCommand(generateCmd(), kindsCmd())
	return cmd
}
