//go:build linux

package player

func platformLauncher(opts ...Option) Launcher {
	return newCommandLauncher("xdg-open", nil, opts...)
}
