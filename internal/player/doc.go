// Package player hands video files to the operating system's default player.
//
// The platform strategy is selected at build time: Windows goes through
// `cmd /C start`, macOS through `open`, Linux through `xdg-open`. Other
// platforms get a launcher that does nothing. Launches are fire-and-forget:
// the child is detached immediately and its exit status is never observed.
package player
