package initconfig

import (
	"github.com/spf13/cobra"
)

func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		Example: `  inlinecontent init
  inlinecontent --config ./inlinecontent.json init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initCmd(cmd, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}
