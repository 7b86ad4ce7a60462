// Package main hosts the wallview CLI entrypoint and command graph.
//
// The Cobra-based command tree lists Wallpaper Engine projects, opens their
// videos in the system player, runs the local HTTP bridge for a web front end,
// and scaffolds configuration. Configuration resolution and logger setup live
// in commandContext so subcommands only deal with presentation.
//
// Command output goes to stdout; logs go to stderr and, when a log directory
// is configured, to a JSON log file.
package main
