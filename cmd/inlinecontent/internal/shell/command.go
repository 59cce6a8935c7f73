package shell

import (
	"github.com/spf13/cobra"
)

func NewShellCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shell",
		Aliases: []string{"sh"},
		Short:   "Build content interactively",
		Long: `Starts an interactive session. Each line is a kind followed by key=value
fields and prints the resulting JSON. Values containing spaces can be quoted.
Type "help" for the list of kinds, "fields <kind>" for a kind's fields and
"exit" to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return shellCmd(cmd)
		},
	}

	return cmd
}
