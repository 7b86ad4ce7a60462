// Package project discovers wallpaper project folders beneath an asset root.
//
// A project folder is an immediate sub-directory of the root that holds a
// playable video. The scanner reads exactly two levels (root, then each
// folder's own entries), classifies files by name only, and returns one
// Descriptor per qualifying folder in directory-enumeration order. Nothing is
// cached and no file contents are read, so every call reflects the disk as it
// is at that moment.
//
// Folders that cannot be listed are skipped without failing the scan. Callers
// that care about them can use Scanner.Scan and inspect Result.Skipped.
package project
