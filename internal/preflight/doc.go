// Package preflight provides readiness checks for the paths, programs, and
// listen address wallview depends on.
//
// These checks run in two contexts:
//   - The CLI "wallview check" command calls RunAll and prints every result.
//   - "wallview serve" calls CheckBindAddress before starting the HTTP bridge
//     so a busy port is reported before any logs are written.
//
// Checks report problems; they never create or repair anything.
package preflight
