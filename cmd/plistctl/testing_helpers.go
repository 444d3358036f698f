package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	bplist "howett.net/plist"
)

// testBundle creates a backup bundle with a binary Info.plist and an XML
// Manifest.plist holding the given versions.
func testBundle(t *testing.T, product, build string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "Backup.mobiletransfer")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("failed to create bundle: %v", err)
	}
	writeTestPlist(t, filepath.Join(dir, "Info.plist"), map[string]any{
		"Product Version": product,
		"Build Version":   build,
		"Device Name":     "iPhone",
	}, bplist.BinaryFormat)
	writeTestPlist(t, filepath.Join(dir, "Manifest.plist"), map[string]any{
		"Version": "10.0",
		"Lockdown": map[string]any{
			"ProductVersion": product,
			"BuildVersion":   build,
		},
	}, bplist.XMLFormat)
	return dir
}

func writeTestPlist(t *testing.T, path string, v any, format int) {
	t.Helper()
	data, err := bplist.MarshalIndent(v, format, "\t")
	if err != nil {
		t.Fatalf("failed to marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// resetFlags restores every command flag to its default.
func resetFlags() {
	quiet = false
	verbose = false
	jsonOut = false
	noColor = true
	showProfile = ""
	updateVersion, updateBuild, updateProfile = "", "", ""
	updateBackup, updateYes, updateDryRun = false, false, false
	diffVersion, diffBuild, diffKeyPath, diffNames = "", "", "", "info"
	initLogger()
}

// withInput feeds answers to the interactive prompts and silences them.
func withInput(t *testing.T, answers string) {
	t.Helper()
	origOut := promptOut
	resetInput(strings.NewReader(answers))
	promptOut = &bytes.Buffer{}
	t.Cleanup(func() {
		resetInput(os.Stdin)
		promptOut = origOut
	})
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs cannot block the writer
	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r)
		done <- buf.String()
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout

	return <-done, fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
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
