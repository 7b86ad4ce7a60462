package project

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"wallview/internal/logging"
)

// ErrNotFound reports that the scan root is missing or is not a directory.
var ErrNotFound = errors.New("path does not exist")

// SkippedFolder records a sub-directory that could not be listed.
type SkippedFolder struct {
	Path string
	Err  error
}

// Result is the outcome of a full scan.
type Result struct {
	Projects []Descriptor
	Skipped  []SkippedFolder
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger routes skipped-folder diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Scanner enumerates project folders. It holds no state between calls.
type Scanner struct {
	logger *slog.Logger
}

// NewScanner constructs a scanner. Without options it logs nothing.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan lists the descriptors found under root using a silent scanner.
func Scan(root string) ([]Descriptor, error) {
	result, err := NewScanner().Scan(root)
	if err != nil {
		return nil, err
	}
	return result.Projects, nil
}

// Scan walks root's immediate sub-directories and returns one descriptor per
// folder that contains a video. Folders that cannot be listed land in
// Result.Skipped and do not fail the scan.
func (s *Scanner) Scan(root string) (Result, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return Result{}, fmt.Errorf("scan %q: %w", root, ErrNotFound)
	}

	result := Result{Projects: make([]Descriptor, 0)}

	entries, err := os.ReadDir(root)
	if err != nil {
		logging.WarnWithContext(s.logger, "scan root unreadable", "scan_root_unreadable",
			logging.String("root", root),
			logging.Error(err),
			logging.String(logging.FieldImpact, "no projects listed"),
			logging.String(logging.FieldErrorHint, "check read permission on the wallpaper directory"),
		)
		return result, nil
	}

	for _, entry := range entries {
		folder := filepath.Join(root, entry.Name())
		if !isDir(folder) {
			continue
		}
		desc, ok, err := inspectFolder(folder)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedFolder{Path: folder, Err: err})
			logging.WarnWithContext(s.logger, "project folder skipped", "project_folder_skipped",
				logging.String("folder", folder),
				logging.Error(err),
				logging.String(logging.FieldImpact, "folder omitted from results"),
				logging.String(logging.FieldErrorHint, "check folder permissions"),
			)
			continue
		}
		if ok {
			result.Projects = append(result.Projects, desc)
		}
	}

	s.logger.Debug("scan complete",
		logging.String("root", root),
		logging.Int("projects", len(result.Projects)),
		logging.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

// isDir follows symlinks, so a linked project folder counts as a folder.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func inspectFolder(folder string) (Descriptor, bool, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return Descriptor{}, false, err
	}

	var video, thumbnail string
	hasConfig := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if entry.Type()&fs.ModeSymlink != 0 && isDir(filepath.Join(folder, name)) {
			continue
		}
		switch {
		case IsVideoName(name):
			if video == "" {
				video = filepath.Join(folder, name)
			}
		case IsConfigName(name):
			hasConfig = true
		case IsThumbnailName(name):
			if thumbnail == "" {
				thumbnail = filepath.Join(folder, name)
			}
		}
	}
	if video == "" {
		return Descriptor{}, false, nil
	}

	return Descriptor{
		Name:          displayName(folder),
		VideoPath:     video,
		ThumbnailPath: thumbnail,
		FolderPath:    folder,
		HasConfig:     hasConfig,
	}, true, nil
}

func displayName(folder string) string {
	name := filepath.Base(folder)
	if !utf8.ValidString(name) {
		return UnknownName
	}
	return name
}
