package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"wallview/internal/preflight"
	"wallview/internal/testsupport"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
	requireContains(t, out, env.configPath)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigValidateRejectsBadFile(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.WriteFile(env.configPath, []byte("[logging]\nformat = \"yaml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err == nil {
		t.Fatal("expected validation error")
	}
	requireContains(t, err.Error(), "load config")
}

func TestConfigShowAppliesEnv(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("WALLVIEW_SERVER_BIND", "127.0.0.1:9999")

	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, "wallpaper_dir")
	requireContains(t, out, "127.0.0.1:9999")
}

func TestOpenThroughConfiguredPlayer(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub binaries are shell scripts")
	}
	env := setupCLITestEnv(t,
		testsupport.WithStubbedBinaries("fake-player"),
		testsupport.WithPlayer("fake-player", "--loop"),
	)
	video := filepath.Join(env.root, "42", "video.mp4")

	if _, _, err := runCLI(t, []string{"open", video}, env.configPath); err != nil {
		t.Fatalf("open: %v", err)
	}

	argsFile := testsupport.StubArgsPath(env.cfg, "fake-player")
	want := "--loop\n" + video + "\n"
	deadline := time.Now().Add(5 * time.Second)
	for {
		data, err := os.ReadFile(argsFile)
		if err == nil && string(data) == want {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("stub player args = %q (err %v), want %q", data, err, want)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestOpenMissingPlayer(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithPlayer("wallview-no-such-player"))

	_, _, err := runCLI(t, []string{"open", "/w/1/video.mp4"}, env.configPath)
	if err == nil {
		t.Fatal("expected launch error")
	}
	if !strings.HasPrefix(err.Error(), "failed to open video: ") {
		t.Fatalf("unexpected error %q", err)
	}
}

func TestOpenRequiresArgument(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"open"}, env.configPath); err == nil {
		t.Fatal("expected usage error")
	}
}

func TestCheckCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("stub binaries are shell scripts")
	}
	env := setupCLITestEnv(t,
		testsupport.WithStubbedBinaries("fake-player"),
		testsupport.WithPlayer("fake-player"),
	)

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, "== Checks ==")
	requireContains(t, out, "[OK]")
	if strings.Contains(out, "[ERROR]") {
		t.Fatalf("unexpected failure in %q", out)
	}
}

func TestCheckCommandReportsFailures(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithPlayer("wallview-no-such-player"))

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err == nil {
		t.Fatal("expected check to fail")
	}
	requireContains(t, err.Error(), "1 check(s) failed")
	requireContains(t, out, "[ERROR]")
}

func TestRenderStatusLineNoColor(t *testing.T) {
	got := renderStatusLine("Wallpaper directory", statusError, "missing", false)
	want := fmt.Sprintf("%s%-*s %s", statusIndent, statusLabelWidth, "Wallpaper directory:", "[ERROR] missing")
	if got != want {
		t.Fatalf("renderStatusLine mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderResultLineWithColor(t *testing.T) {
	got := renderResultLine(preflight.Result{Name: "Video player", Passed: true, Detail: "/usr/bin/xdg-open"}, true)
	if !strings.HasPrefix(got, ansiGreen) || !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("expected green line, got %q", got)
	}
	requireContains(t, got, "[OK] /usr/bin/xdg-open")
}

func TestShouldColorizeNonFile(t *testing.T) {
	if shouldColorize(io.Discard) {
		t.Fatalf("expected non-file writer to disable color")
	}
}

func TestRootHelp(t *testing.T) {
	out, _, err := runCLI(t, []string{"--help"}, "")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	for _, sub := range []string{"scan", "open", "serve", "check", "config"} {
		requireContains(t, out, sub)
	}
}

func TestLogsCommandFiltersByLevel(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithLogDir())
	if err := os.MkdirAll(env.cfg.Paths.LogDir, 0o755); err != nil {
		t.Fatal(err)
	}
	logFile := filepath.Join(env.cfg.Paths.LogDir, "wallview.log")
	line := `{"ts":"2026-01-02T03:04:05Z","level":"warn","msg":"project folder skipped","component":"scanner","folder":"/w/x"}` + "\n" +
		`{"ts":"2026-01-02T03:04:06Z","level":"debug","msg":"scan complete","component":"scanner"}` + "\n"
	if err := os.WriteFile(logFile, []byte(line), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := runCLI(t, []string{"logs", "--level", "info"}, env.configPath)
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	requireContains(t, out, "WARN [scanner] project folder skipped")
	if strings.Contains(out, "scan complete") {
		t.Fatalf("debug record should be filtered, got %q", out)
	}
}

func TestLogsCommandRequiresLogDir(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"logs"}, env.configPath)
	if err == nil {
		t.Fatal("expected error without log dir")
	}
	requireContains(t, err.Error(), "file logging is disabled")
}
