// Package logs reads back the JSON log file wallview writes when
// paths.log_dir is set.
//
// Tail returns the last N lines with bounded memory, Follow polls for lines
// appended after an offset until its context ends, and ParseRecord turns a
// line into a Record for filtering and display.
package logs
