//go:build !windows && !darwin && !linux

package player

type noopLauncher struct{}

func (noopLauncher) Launch(string) error { return nil }

func (noopLauncher) Command() string { return "" }

func platformLauncher(...Option) Launcher {
	return noopLauncher{}
}
