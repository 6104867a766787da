package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KnNgZmN/PrototipoCinnamStrawbOS/internal/config"
)

// useTestConfig installs a configuration with no tick delay and a VFS dump
// inside a temporary directory, restoring the globals afterwards.
func useTestConfig(t *testing.T) string {
	t.Helper()
	prevCfg, prevQuiet := cfg, quiet
	t.Cleanup(func() { cfg, quiet = prevCfg, prevQuiet })

	dir := t.TempDir()
	cfg = config.Default()
	cfg.Kernel.Tick = 0
	cfg.VFS.Path = filepath.Join(dir, "vfs.dat")
	quiet = true
	return dir
}

// writeScript writes raw script bytes into dir.
func writeScript(t *testing.T, dir string, body []byte) string {
	t.Helper()
	path := filepath.Join(dir, "script.txt")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
