package root

import (
	"github.com/flarebyte/greeter/internal/greeter"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for greeter.
//
// The command takes no flags or subcommands. Every argument, including
// anything that looks like a flag, is accepted and ignored.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "greeter",
		Short: "CLI: Print a fixed greeting to standard output",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return greeter.Greet(cmd.OutOrStdout())
		},
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	return run(NewRootCmd(), args)
}

// run executes cmd with args placed after a "--" terminator, so cobra never
// resolves any of them to a command (including its hidden __complete hook).
// The resulting slice is never nil, which keeps cobra off os.Args.
func run(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(append([]string{"--"}, args...))
	return cmd.Execute()
}
