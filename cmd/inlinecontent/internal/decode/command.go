package decode

import (
	"github.com/spf13/cobra"
)

func NewDecodeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <kind> [file]",
		Short: "Validate a content JSON object and print its canonical form",
		Long: `Reads a JSON object from file (or stdin when file is omitted or "-"),
checks it against the fields of the given kind and prints it back with keys
in declaration order.`,
		Args: cobra.RangeArgs(1, 2),
		Example: `  inlinecontent decode venue venue.json
  echo '{"longitude":2,"latitude":1}' | inlinecontent decode location`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 2 {
				path = args[1]
			}
			return decodeCmd(cmd, args[0], path)
		},
	}

	return cmd
}
