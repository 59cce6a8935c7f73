package fields

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal"
	"github.com/tinyland-inc/inlinecontent/pkg/content"
)

func NewFieldsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields [kind]",
		Short: "List the fields of a content kind (all kinds when omitted)",
		Args:  cobra.MaximumNArgs(1),
		Example: `  inlinecontent fields
  inlinecontent fields venue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := content.Kinds()
			if len(args) == 1 {
				kind, err := content.ParseKind(args[0])
				if err != nil {
					return err
				}
				kinds = []content.Kind{kind}
			}

			out := cmd.OutOrStdout()
			for _, kind := range kinds {
				fmt.Fprintf(out, "%s:\n", kind)
				if err := internal.WriteFields(out, kind); err != nil {
					return err
				}
			}
			return nil
		},
	}

	return cmd
}
