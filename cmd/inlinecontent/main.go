// inlinecontent - inline query message content builder
// License: MIT
//
// Copyright (c) 2026 tinyland contributors

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal"
	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal/answer"
	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal/build"
	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal/decode"
	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal/fields"
	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal/initconfig"
	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal/shell"
	"github.com/tinyland-inc/inlinecontent/cmd/inlinecontent/internal/version"
	"github.com/tinyland-inc/inlinecontent/pkg/logger"
)

func NewInlineContentCommand() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:     "inlinecontent",
		Short:   fmt.Sprintf("inlinecontent - inline query message content builder v%s", internal.GetVersion()),
		Example: "inlinecontent build venue title=Cafe",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logger.SetLevel(logger.DEBUG)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Config file path (default: ~/.inlinecontent/config.json)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	cmd.AddCommand(
		build.NewBuildCommand(),
		decode.NewDecodeCommand(),
		answer.NewAnswerCommand(),
		fields.NewFieldsCommand(),
		initconfig.NewInitCommand(),
		shell.NewShellCommand(),
		version.NewVersionCommand(),
	)

	return cmd
}

func main() {
	cmd := NewInlineContentCommand()
	if err := cmd.Execute(); err != nil {
		logger.ErrorCF("cli", "Command failed", map[string]any{
			"command": commandName(cmd),
			"error":   err.Error(),
		})
		os.Exit(1)
	}
}

// commandName returns the path of the subcommand os.Args selects.
func commandName(root *cobra.Command) string {
	sub, _, err := root.Find(os.Args[1:])
	if err != nil {
		return root.Name()
	}
	return sub.CommandPath()
}
