package initconfig

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal"
	"github.com/tinyland-inc/inlinecontent/pkg/config"
	"github.com/tinyland-inc/inlinecontent/pkg/logger"
)

var ErrConfigExists = errors.New("config file already exists")

func initCmd(cmd *cobra.Command, force bool) error {
	path := internal.ConfigPath(cmd)

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrConfigExists, path)
	}

	if err := config.SaveConfig(path, config.DefaultConfig()); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}

	logger.InfoCF("init", "Config written", map[string]any{"path": path})
	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", path)
	return nil
}
