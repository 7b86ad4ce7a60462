package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wallview/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check directories, player, and bind address",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			lines := renderSectionHeader("Configuration", colorize)
			configMsg := ctx.configPath
			if !ctx.configSeen {
				configMsg += " (not found; defaults in use)"
			}
			lines = append(lines, renderStatusLine("Config file", statusInfo, configMsg, colorize))
			lines = append(lines, "")
			lines = append(lines, renderSectionHeader("Checks", colorize)...)

			results := preflight.RunAll(cmd.Context(), cfg)
			for _, result := range results {
				lines = append(lines, renderResultLine(result, colorize))
			}
			for _, line := range lines {
				fmt.Fprintln(out, line)
			}

			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%d check(s) failed", len(failed))
			}
			return nil
		},
	}
}
