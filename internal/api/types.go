package api

import "wallview/internal/project"

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// OpenRequest is the body accepted by POST /api/open.
type OpenRequest struct {
	Path string `json:"path"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProjectList is the body of GET /api/projects.
type ProjectList = []project.Descriptor
