//go:build darwin

package player

func platformLauncher(opts ...Option) Launcher {
	return newCommandLauncher("open", nil, opts...)
}
