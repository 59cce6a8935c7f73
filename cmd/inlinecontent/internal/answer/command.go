package answer

import (
	"github.com/spf13/cobra"
)

type options struct {
	QueryID     string
	ResultID    string
	Title       string
	Description string
}

func NewAnswerCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "answer <kind> [key=value ...]",
		Short: "Print answerInlineQuery parameters for a single article result",
		Args:  cobra.MinimumNArgs(1),
		Example: `  inlinecontent answer venue --query-id 42 --title "Cafe" title=Cafe address="Main St 1"
  inlinecontent answer text --query-id 42 --title Hello --id greeting message_text=Hello`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return answerCmd(cmd, opts, args[0], args[1:])
		},
	}

	cmd.Flags().StringVar(&opts.QueryID, "query-id", "", "Inline query ID to answer")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Article title shown in the result list")
	cmd.Flags().StringVar(&opts.ResultID, "id", "", "Result ID (default: random UUID)")
	cmd.Flags().StringVar(&opts.Description, "description", "", "Article description")
	_ = cmd.MarkFlagRequired("query-id")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
