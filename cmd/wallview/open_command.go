package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallview/internal/player"
)

func newOpenCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "open <video>",
		Short: "Open a video in the default player",
		Long: "Hand the video path to the operating system's default player, or to\n" +
			"player.command when configured. The path is not checked; the player\n" +
			"reports missing files itself.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, logCloser, err := ctx.newLogger(cmd)
			if err != nil {
				return err
			}
			defer logCloser.Close()
			launcher := player.New(cfg, player.WithLogger(logger))
			if launcher.Command() == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "warn: no video launcher on this platform; nothing was opened")
			}
			return launcher.Launch(args[0])
		},
	}
}
