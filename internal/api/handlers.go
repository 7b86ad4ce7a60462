package api

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"wallview/internal/logging"
	"wallview/internal/player"
	"wallview/internal/project"
)

// maxOpenBody bounds POST /api/open bodies; a path never needs more.
const maxOpenBody = 64 << 10

type projectScanner interface {
	Scan(root string) (project.Result, error)
}

// Handler serves the API routes.
type Handler struct {
	defaultRoot string
	scanner     projectScanner
	launcher    player.Launcher
	logger      *slog.Logger
}

// NewHandler wires handlers to a scanner and launcher. defaultRoot is used
// when /api/projects is called without a root.
func NewHandler(defaultRoot string, scanner *project.Scanner, launcher player.Launcher, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	if scanner == nil {
		scanner = project.NewScanner()
	}
	if launcher == nil {
		launcher = player.Default()
	}
	return &Handler{
		defaultRoot: defaultRoot,
		scanner:     scanner,
		launcher:    launcher,
		logger:      logger,
	}
}

// Health handles GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// ListProjects handles GET /api/projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	root := strings.TrimSpace(r.URL.Query().Get("root"))
	if root == "" {
		root = h.defaultRoot
	}
	if root == "" {
		h.writeError(w, http.StatusBadRequest, "root is required")
		return
	}

	result, err := h.scanner.Scan(root)
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, project.ErrNotFound.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	projects := result.Projects
	if projects == nil {
		projects = ProjectList{}
	}
	h.writeJSON(w, http.StatusOK, projects)
}

// OpenVideo handles POST /api/open.
func (h *Handler) OpenVideo(w http.ResponseWriter, r *http.Request) {
	var req OpenRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxOpenBody)).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Path) == "" {
		h.writeError(w, http.StatusBadRequest, "path is required")
		return
	}

	if err := h.launcher.Launch(req.Path); err != nil {
		logging.ErrorWithContext(h.logger, "video launch failed", "video_launch_failed",
			logging.String("path", req.Path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that a default video player is installed"),
		)
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Thumbnail handles GET /api/thumbnail. Only files named like a project
// thumbnail are served so the route cannot be used to read arbitrary files.
func (h *Handler) Thumbnail(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimSpace(r.URL.Query().Get("path"))
	if path == "" {
		h.writeError(w, http.StatusBadRequest, "path is required")
		return
	}
	if !project.IsThumbnailName(filepath.Base(path)) {
		h.writeError(w, http.StatusBadRequest, "not a thumbnail")
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			h.writeError(w, http.StatusNotFound, project.ErrNotFound.Error())
			return
		}
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if info.IsDir() {
		h.writeError(w, http.StatusBadRequest, "not a thumbnail")
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	http.ServeFile(w, r, path)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", logging.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, ErrorResponse{Error: message})
}
