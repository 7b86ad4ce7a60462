//go:build windows

package player

// The empty argument is quoted as "" and consumed by `start` as the window
// title, so a quoted path is not mistaken for one.
func platformLauncher(opts ...Option) Launcher {
	return newCommandLauncher("cmd", []string{"/C", "start", ""}, opts...)
}
