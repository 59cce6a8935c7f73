package build

import (
	"github.com/spf13/cobra"
)

func NewBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <kind> [key=value ...]",
		Short: "Build input message content and print its JSON",
		Args:  cobra.MinimumNArgs(1),
		Example: `  inlinecontent build location latitude=52.52 longitude=13.40
  inlinecontent build contact phone_number=+4930123 first_name=Ann
  inlinecontent build text message_text="<b>hi</b>" parse_mode=HTML`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildCmd(cmd, args[0], args[1:])
		},
	}

	return cmd
}
