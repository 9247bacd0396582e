package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/sm64pc/sm64config/internal/config"
	"github.com/sm64pc/sm64config/internal/configfile"
)

// execute runs the root command with fresh flag values and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	fileName = config.FileName
	dirOverride = ""
	fallbackDir = ""
	logLevel = "off"
	outputFormat = "table"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--log-level", "off"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

// testDirs returns a preferred dir that does not exist yet and an empty fallback dir.
func testDirs(t *testing.T) (preferred, fallback string) {
	t.Helper()
	root := t.TempDir()
	fallback = filepath.Join(root, "cwd")
	if err := os.Mkdir(fallback, 0o755); err != nil {
		t.Fatal(err)
	}
	return filepath.Join(root, "data", "sm64pc"), fallback
}

func TestExitCode(t *testing.T) {
	if got := exitCode(errors.New("boom")); got != 1 {
		t.Errorf("exitCode(generic) = %d, want 1", got)
	}
	err := configfile.NewDirUnavailableError("/nope", os.ErrPermission)
	if got := exitCode(err); got != int(syscall.ENOENT) {
		t.Errorf("exitCode(dir unavailable) = %d, want %d", got, int(syscall.ENOENT))
	}
}

func TestLoadCreatesDefaults(t *testing.T) {
	pref, fb := testDirs(t)

	out, err := execute(t, "load", "--dir", pref, "--fallback-dir", fb)
	if err != nil {
		t.Fatalf("load error = %v", err)
	}
	if !strings.Contains(out, "Created default configuration") {
		t.Errorf("output should report creation:\n%s", out)
	}

	data, err := os.ReadFile(filepath.Join(pref, config.FileName))
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "fullscreen false\nkey_a 38\n") {
		t.Errorf("unexpected file contents:\n%s", data)
	}
}

func TestLoadReportsSkippedLines(t *testing.T) {
	pref, fb := testDirs(t)
	content := "fullscreen true\nbogus 1\nkey_a\n"
	if err := os.WriteFile(filepath.Join(fb, config.FileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--dir", pref, "--fallback-dir", fb)
	if err != nil {
		t.Fatalf("load error = %v", err)
	}
	for _, want := range []string{"fallback dir", "unknown option 'bogus'", "expected value after 'key_a'"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(pref); !os.IsNotExist(err) {
		t.Error("loading from the fallback dir should not create the config dir")
	}
}

func TestSetThenGet(t *testing.T) {
	pref, fb := testDirs(t)

	if _, err := execute(t, "set", "fullscreen", "true", "key_a", "44", "--dir", pref, "--fallback-dir", fb); err != nil {
		t.Fatalf("set error = %v", err)
	}

	out, err := execute(t, "get", "key_a", "--dir", pref, "--fallback-dir", fb)
	if err != nil {
		t.Fatalf("get error = %v", err)
	}
	if out != "44\n" {
		t.Errorf("get key_a = %q, want %q", out, "44\n")
	}

	data, err := os.ReadFile(filepath.Join(pref, config.FileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "fullscreen true\nkey_a 44\nkey_b 51\n") {
		t.Errorf("unexpected file contents:\n%s", data)
	}
}

func TestSetRejectsBadInput(t *testing.T) {
	pref, fb := testDirs(t)

	_, err := execute(t, "set", "volume", "3", "--dir", pref, "--fallback-dir", fb)
	if !configfile.IsUnknownOption(err) {
		t.Errorf("set unknown option error = %v, want unknown option", err)
	}

	_, err = execute(t, "set", "key_a", "abc", "--dir", pref, "--fallback-dir", fb)
	if !configfile.IsInvalidValue(err) {
		t.Errorf("set invalid value error = %v, want invalid value", err)
	}

	if _, err := execute(t, "set", "key_a", "--dir", pref, "--fallback-dir", fb); err == nil {
		t.Error("set with an odd number of arguments should fail")
	}
}

func TestGetUnknownOption(t *testing.T) {
	pref, fb := testDirs(t)

	_, err := execute(t, "get", "nope", "--dir", pref, "--fallback-dir", fb)
	if !configfile.IsUnknownOption(err) {
		t.Errorf("get error = %v, want unknown option", err)
	}
}

func TestShowFormats(t *testing.T) {
	pref, fb := testDirs(t)
	if err := os.MkdirAll(pref, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(pref, config.FileName), []byte("key_b 99\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "show", "--format", "json", "--dir", pref, "--fallback-dir", fb)
	if err != nil {
		t.Fatalf("show json error = %v", err)
	}
	var fromJSON config.Settings
	if err := json.Unmarshal([]byte(out), &fromJSON); err != nil {
		t.Fatalf("show json output is not JSON: %v\n%s", err, out)
	}
	if fromJSON.KeyB != 99 || fromJSON.KeyA != 0x26 {
		t.Errorf("show json = %+v", fromJSON)
	}

	out, err = execute(t, "show", "--format", "yaml", "--dir", pref, "--fallback-dir", fb)
	if err != nil {
		t.Fatalf("show yaml error = %v", err)
	}
	var fromYAML config.Settings
	if err := yaml.Unmarshal([]byte(out), &fromYAML); err != nil {
		t.Fatalf("show yaml output is not YAML: %v\n%s", err, out)
	}
	if fromYAML != fromJSON {
		t.Errorf("yaml %+v differs from json %+v", fromYAML, fromJSON)
	}

	out, err = execute(t, "show", "--dir", pref, "--fallback-dir", fb)
	if err != nil {
		t.Fatalf("show table error = %v", err)
	}
	if !strings.Contains(out, "key_stickright") {
		t.Errorf("table should list every option:\n%s", out)
	}

	if _, err := execute(t, "show", "--format", "xml", "--dir", pref, "--fallback-dir", fb); err == nil {
		t.Error("show with an unknown format should fail")
	}
}

func TestResetOverwritesFile(t *testing.T) {
	pref, fb := testDirs(t)
	if _, err := execute(t, "set", "key_z", "1", "--dir", pref, "--fallback-dir", fb); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "reset", "--dir", pref, "--fallback-dir", fb); err != nil {
		t.Fatalf("reset error = %v", err)
	}
	out, err := execute(t, "get", "key_z", "--dir", pref, "--fallback-dir", fb)
	if err != nil {
		t.Fatal(err)
	}
	if out != "37\n" {
		t.Errorf("key_z after reset = %q, want %q", out, "37\n")
	}
}

func TestSaveCopiesFallbackFile(t *testing.T) {
	pref, fb := testDirs(t)
	if err := os.WriteFile(filepath.Join(fb, config.FileName), []byte("key_r 7\njunk\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "save", "--dir", pref, "--fallback-dir", fb); err != nil {
		t.Fatalf("save error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(pref, config.FileName))
	if err != nil {
		t.Fatalf("save did not write the config dir: %v", err)
	}
	if !strings.Contains(string(data), "key_r 7\n") || strings.Contains(string(data), "junk") {
		t.Errorf("unexpected file contents:\n%s", data)
	}
}

func TestPathCommand(t *testing.T) {
	pref, fb := testDirs(t)

	out, err := execute(t, "path", "--dir", pref, "--fallback-dir", fb)
	if err != nil {
		t.Fatalf("path error = %v", err)
	}
	for _, want := range []string{pref, fb, "(none", filepath.Join(pref, config.FileName)} {
		if !strings.Contains(out, want) {
			t.Errorf("path output should contain %q:\n%s", want, out)
		}
	}
}

func TestDirUnavailable(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "load", "--dir", filepath.Join(blocker, "sm64pc"), "--fallback-dir", root)
	if !configfile.IsDirUnavailable(err) {
		t.Fatalf("load error = %v, want directory unavailable", err)
	}
	if exitCode(err) != int(syscall.ENOENT) {
		t.Errorf("exitCode = %d, want %d", exitCode(err), int(syscall.ENOENT))
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "sm64config ") {
		t.Errorf("version output = %q", out)
	}
}
