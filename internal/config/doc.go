// Package config loads, normalizes, and validates wallview configuration data.
//
// It supplies repository defaults (including the per-OS Steam workshop
// location for Wallpaper Engine), expands user paths with tilde shortcuts,
// reads TOML files, and applies WALLVIEW_* environment overrides on top. The
// Config type only feeds host-side defaults: the scanner and launcher still
// take their root and video path per call.
package config
