package project

import (
	"strings"
	"unicode/utf8"
)

const (
	videoFileName  = "video.mp4"
	videoSuffix    = ".mp4"
	configFileName = "scene.json"

	// UnknownName labels folders whose base name is not valid UTF-8.
	UnknownName = "unknown"
)

var thumbnailFileNames = map[string]struct{}{
	"thumb.jpg": {},
	"thumb.png": {},
}

// Descriptor summarizes one discovered project folder.
type Descriptor struct {
	Name          string `json:"name"`
	VideoPath     string `json:"path"`
	ThumbnailPath string `json:"thumbnail"`
	FolderPath    string `json:"folder"`
	HasConfig     bool   `json:"has_config"`
}

// HasThumbnail reports whether a thumbnail candidate was found.
func (d Descriptor) HasThumbnail() bool {
	return d.ThumbnailPath != ""
}

// IsVideoName reports whether a file name identifies the playable asset.
// Matching is case-sensitive, and names that are not valid UTF-8 never match
// since their paths would not survive JSON encoding.
func IsVideoName(name string) bool {
	if !utf8.ValidString(name) {
		return false
	}
	return name == videoFileName || strings.HasSuffix(name, videoSuffix)
}

// IsThumbnailName reports whether a file name identifies a preview image.
func IsThumbnailName(name string) bool {
	_, ok := thumbnailFileNames[name]
	return ok
}

// IsConfigName reports whether a file name is the project configuration marker.
func IsConfigName(name string) bool {
	return name == configFileName
}
