package cli

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCommand().Execute()
}

// newRootCommand builds the launcher command. Flag parsing is disabled
// so the raw argument vector reaches the option scanner untouched; the
// scanner owns the whole option surface, including --help.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "wine [options] [--] program_name [arguments]",
		Short:              "Run Windows programs with the configured emulation settings",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:               runLaunch,
	}

	return cmd
}

func invocationName(cmd *cobra.Command) string {
	return cmd.Root().DisplayName()
}
