package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeExtension writes a shell script extension in a temp dir added to the PATH.
func writeExtension(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script extensions are not supported on windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, ExtensionPrefix+name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("Failed to write extension: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// captureStdout redirects the command output, as raw markdown, for the
// duration of the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	oldOut, oldRender := stdout, renderMarkdown
	stdout = &buf
	renderMarkdown = func(md string) (string, error) { return md, nil }
	t.Cleanup(func() { stdout, renderMarkdown = oldOut, oldRender })
	return &buf
}

// useConfig replaces the configuration for the duration of the test.
func useConfig(t *testing.T, cfg Config) {
	t.Helper()
	old := config
	config = cfg
	t.Cleanup(func() { config = old })
}

func TestRunExtension(t *testing.T) {
	writeExtension(t, "hello", `echo "ledger=$HLD_LEDGER"
echo "currency=$HLD_CURRENCY"
echo "args=$*"
exit 3
`)
	out := captureStdout(t)
	cfg := defaultConfig()
	cfg.Ledger = "/tmp/random_ledger.jsonl"
	cfg.Currency = "USD"
	useConfig(t, cfg)

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found {
		t.Fatal("RunExtension() did not find the extension")
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	for _, want := range []string{"ledger=/tmp/random_ledger.jsonl", "currency=USD", "args=a b"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output %q does not contain %q", out.String(), want)
		}
	}
}

func TestRunExtension_NotFound(t *testing.T) {
	if found, _ := RunExtension("does-not-exist-anywhere", nil); found {
		t.Error("RunExtension() found a missing extension")
	}
}
