package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"wallview/internal/logging"
	"wallview/internal/project"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var sorted bool

	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "List project folders that contain a video",
		Long: "Scan the immediate sub-folders of root (default: paths.wallpaper_dir) and list\n" +
			"every folder holding a video. Output is a table on a terminal and JSON otherwise.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			root := cfg.Paths.WallpaperDir
			if len(args) == 1 {
				root = args[0]
			}
			if strings.TrimSpace(root) == "" {
				return fmt.Errorf("no scan root given and paths.wallpaper_dir is empty")
			}

			logger, logCloser, err := ctx.newLogger(cmd)
			if err != nil {
				return err
			}
			defer logCloser.Close()
			scanner := project.NewScanner(project.WithLogger(logging.NewComponentLogger(logger, "scanner")))
			result, err := scanner.Scan(root)
			if err != nil {
				return err
			}

			projects := result.Projects
			if sorted {
				sortByName(projects, collationTag())
			}

			out := cmd.OutOrStdout()
			if asJSON || !shouldColorize(out) {
				return writeJSON(cmd, projects)
			}
			renderProjects(out, root, projects, len(result.Skipped))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print descriptors as JSON even on a terminal")
	cmd.Flags().BoolVar(&sorted, "sort", false, "Sort projects by name using locale-aware collation")
	return cmd
}

func renderProjects(out io.Writer, root string, projects []project.Descriptor, skipped int) {
	if len(projects) == 0 {
		fmt.Fprintf(out, "No projects found in %s\n", root)
	} else {
		fmt.Fprintln(out, renderTable(
			[]string{"Name", "Video", "Thumbnail", "Config", "Folder"},
			projectRows(projects),
			[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
		))
		fmt.Fprintf(out, "%d project(s) in %s\n", len(projects), root)
	}
	if skipped > 0 {
		fmt.Fprintf(out, "%d folder(s) could not be read; see log for details\n", skipped)
	}
}

func projectRows(projects []project.Descriptor) [][]string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		thumb := "-"
		if p.HasThumbnail() {
			thumb = filepath.Base(p.ThumbnailPath)
		}
		rows = append(rows, []string{
			p.Name,
			filepath.Base(p.VideoPath),
			thumb,
			yesNo(p.HasConfig),
			p.FolderPath,
		})
	}
	return rows
}
