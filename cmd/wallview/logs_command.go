package main

import (
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"wallview/internal/logs"
)

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool
	var level string
	var raw bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the wallview log file",
		Long:  "Print recent records from <paths.log_dir>/wallview.log. File logging must be enabled.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.LogFilePath()
			if path == "" {
				return errors.New("file logging is disabled; set paths.log_dir or WALLVIEW_LOG_DIR")
			}

			out := cmd.OutOrStdout()
			emit := func(line string) {
				printLogLine(out, line, level, raw)
			}

			tail, offset, err := logs.Tail(path, lines)
			if err != nil {
				return err
			}
			for _, line := range tail {
				emit(line)
			}
			if !follow {
				return nil
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			return logs.Follow(signalCtx, path, offset, 250*time.Millisecond, emit)
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing records to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep printing new records")
	cmd.Flags().StringVar(&level, "level", "", "Only show records at this level or above")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print JSON lines unchanged")
	return cmd
}

func printLogLine(out io.Writer, line, minLevel string, raw bool) {
	rec, err := logs.ParseRecord(line)
	if err != nil {
		fmt.Fprintln(out, line)
		return
	}
	if !rec.AtLeast(minLevel) {
		return
	}
	if raw {
		fmt.Fprintln(out, line)
		return
	}
	fmt.Fprintln(out, rec.Format())
}
