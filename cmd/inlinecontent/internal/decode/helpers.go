package decode

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal"
	"github.com/tinyland-inc/inlinecontent/pkg/content"
	"github.com/tinyland-inc/inlinecontent/pkg/logger"
)

func decodeCmd(cmd *cobra.Command, kindName, path string) error {
	kind, err := content.ParseKind(kindName)
	if err != nil {
		return err
	}

	cfg, err := internal.LoadConfig(cmd)
	if err != nil {
		return err
	}

	data, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	c, err := content.Unmarshal(kind, data)
	if err != nil {
		return err
	}

	logger.DebugCF("decode", "Content decoded", map[string]any{
		"kind":   kind,
		"source": path,
		"fields": len(c.Fields()),
	})

	return internal.WriteContent(cmd.OutOrStdout(), c, cfg.Output.Indent)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}
