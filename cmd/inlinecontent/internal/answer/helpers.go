package answer

import (
	"github.com/spf13/cobra"

	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal"
	"github.com/tinyland-inc/inlinecontent/pkg/answer"
	"github.com/tinyland-inc/inlinecontent/pkg/content"
	"github.com/tinyland-inc/inlinecontent/pkg/logger"
)

func answerCmd(cmd *cobra.Command, opts options, kindName string, fieldArgs []string) error {
	kind, err := content.ParseKind(kindName)
	if err != nil {
		return err
	}

	cfg, err := internal.LoadConfig(cmd)
	if err != nil {
		return err
	}

	c, err := internal.BuildContent(cfg, kind, fieldArgs)
	if err != nil {
		return err
	}

	b := answer.NewBuilder(cfg.Answer)
	id, err := b.AddArticle(answer.Article{
		ID:          opts.ResultID,
		Title:       opts.Title,
		Description: opts.Description,
		Content:     c,
	})
	if err != nil {
		return err
	}

	params, err := b.Params(opts.QueryID)
	if err != nil {
		return err
	}

	logger.InfoCF("answer", "Answer prepared", map[string]any{
		"query_id":  opts.QueryID,
		"result_id": id,
		"kind":      kind,
	})

	return internal.WriteJSON(cmd.OutOrStdout(), params, cfg.Output.Indent)
}
