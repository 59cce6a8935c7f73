package build

import (
	"github.com/spf13/cobra"

	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal"
	"github.com/tinyland-inc/inlinecontent/pkg/content"
	"github.com/tinyland-inc/inlinecontent/pkg/logger"
)

func buildCmd(cmd *cobra.Command, kindName string, fieldArgs []string) error {
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

	logger.DebugCF("build", "Content built", map[string]any{
		"kind":   kind,
		"fields": len(c.Fields()),
	})

	return internal.WriteContent(cmd.OutOrStdout(), c, cfg.Output.Indent)
}
