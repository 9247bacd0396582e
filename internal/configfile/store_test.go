package configfile

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type storeFixture struct {
	values *testValues
	store  *Store
	paths  Paths
	logs   *observer.ObservedLogs
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()
	root := t.TempDir()
	core, logs := observer.New(zapcore.DebugLevel)
	values := newTestValues()
	paths := Paths{
		PreferredDir: filepath.Join(root, "share", "sm64pc"),
		FallbackDir:  filepath.Join(root, "cwd"),
	}
	if err := os.MkdirAll(paths.FallbackDir, 0o755); err != nil {
		t.Fatal(err)
	}
	return &storeFixture{
		values: values,
		store:  NewStore(newTestRegistry(values), paths, testFile, zap.New(core)),
		paths:  paths,
		logs:   logs,
	}
}

func (f *storeFixture) preferredFile() string {
	return filepath.Join(f.paths.PreferredDir, testFile)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func TestSaveWritesRegistryOrder(t *testing.T) {
	f := newStoreFixture(t)

	path, err := f.store.Save()
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if path != f.preferredFile() {
		t.Errorf("Save() path = %v, want %v", path, f.preferredFile())
	}

	want := "fullscreen false\nkey_a 38\nkey_b 51\nvolume 0.500000\n"
	if got := readFile(t, path); got != want {
		t.Errorf("file = %q, want %q", got, want)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}
	if f.logs.FilterMessage("Saving configuration").Len() != 1 {
		t.Error("save was not logged")
	}
}

func TestSaveIsIdempotent(t *testing.T) {
	f := newStoreFixture(t)

	path, err := f.store.Save()
	if err != nil {
		t.Fatalf("first Save() error = %v", err)
	}
	first := readFile(t, path)

	if _, err := f.store.Save(); err != nil {
		t.Fatalf("second Save() error = %v", err)
	}
	if second := readFile(t, path); second != first {
		t.Errorf("second save = %q, first = %q", second, first)
	}
}

func TestRoundTrip(t *testing.T) {
	f := newStoreFixture(t)
	f.values.Fullscreen = true
	f.values.KeyA = 4294967295
	f.values.KeyB = 0
	f.values.Volume = 0.333333

	if _, err := f.store.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := &testValues{}
	store := NewStore(newTestRegistry(loaded), f.paths, testFile, zap.NewNop())
	report, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if report.Created {
		t.Error("Load() created a file that already existed")
	}
	if len(report.Issues) != 0 {
		t.Errorf("Issues = %v, want none", report.Issues)
	}

	if loaded.Fullscreen != f.values.Fullscreen || loaded.KeyA != f.values.KeyA || loaded.KeyB != f.values.KeyB {
		t.Errorf("loaded %+v, want %+v", *loaded, *f.values)
	}
	if diff := loaded.Volume - f.values.Volume; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("Volume = %v, want %v within 1e-6", loaded.Volume, f.values.Volume)
	}
}

func TestLoadExample(t *testing.T) {
	f := newStoreFixture(t)
	writeFile(t, f.preferredFile(), "fullscreen true\n")

	report, err := f.store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !f.values.Fullscreen {
		t.Error("Fullscreen = false, want true")
	}
	if f.values.KeyA != 38 {
		t.Errorf("KeyA = %d, want default 38", f.values.KeyA)
	}
	if len(report.Applied) != 1 || report.Applied[0] != "fullscreen" {
		t.Errorf("Applied = %v, want [fullscreen]", report.Applied)
	}
	if report.Path != f.preferredFile() {
		t.Errorf("Path = %v, want %v", report.Path, f.preferredFile())
	}
}

func TestLoadUnknownOption(t *testing.T) {
	f := newStoreFixture(t)
	writeFile(t, f.preferredFile(), "fullscreen true\nfoo bar\nkey_a 40\n")

	report, err := f.store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !f.values.Fullscreen || f.values.KeyA != 40 {
		t.Errorf("values = %+v, want fullscreen=true key_a=40", *f.values)
	}

	if len(report.Issues) != 1 {
		t.Fatalf("Issues = %v, want 1", report.Issues)
	}
	issue := report.Issues[0]
	if issue.Kind != IssueUnknownOption || issue.Name != "foo" || issue.Line != 2 {
		t.Errorf("issue = %+v, want unknown option foo on line 2", issue)
	}

	unknown := f.logs.FilterMessage("Unknown option").All()
	if len(unknown) != 1 {
		t.Fatalf("logged %d unknown option entries, want 1", len(unknown))
	}
	if got := unknown[0].ContextMap()["option"]; got != "foo" {
		t.Errorf("logged option = %v, want foo", got)
	}
}

func TestLoadMalformedLine(t *testing.T) {
	f := newStoreFixture(t)
	writeFile(t, f.preferredFile(), "fullscreen\n\n   \nkey_a 12 trailing words\nkey_b   77\n")

	report, err := f.store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if f.values.Fullscreen {
		t.Error("Fullscreen changed by a line without a value")
	}
	if f.values.KeyA != 12 || f.values.KeyB != 77 {
		t.Errorf("KeyA, KeyB = %d, %d, want 12, 77", f.values.KeyA, f.values.KeyB)
	}
	if len(report.Issues) != 1 || report.Issues[0].Kind != IssueExpectedValue {
		t.Errorf("Issues = %v, want one expected value", report.Issues)
	}
	if f.logs.FilterMessage("Expected value").Len() != 1 {
		t.Error("expected value was not logged")
	}
}

func TestLoadInvalidValuesKeepPrior(t *testing.T) {
	f := newStoreFixture(t)
	writeFile(t, f.preferredFile(), "fullscreen maybe\nkey_a lots\nvolume quiet\nkey_b 9\n")

	report, err := f.store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if f.values.Fullscreen || f.values.KeyA != 38 || f.values.Volume != 0.5 {
		t.Errorf("values = %+v, want defaults for invalid lines", *f.values)
	}
	if f.values.KeyB != 9 {
		t.Errorf("KeyB = %d, want 9", f.values.KeyB)
	}
	if len(report.Issues) != 3 {
		t.Fatalf("Issues = %v, want 3", report.Issues)
	}
	for _, issue := range report.Issues {
		if issue.Kind != IssueInvalidValue || !IsInvalidValue(issue.Err) {
			t.Errorf("issue = %+v, want invalid value", issue)
		}
	}

	// The boolean is only noted at debug level; numbers warn.
	warned := f.logs.FilterMessage("Invalid value, keeping previous").FilterLevelExact(zapcore.WarnLevel)
	if warned.Len() != 2 {
		t.Errorf("warned %d times, want 2", warned.Len())
	}
}

func TestLoadCreatesDefaultsWhenMissing(t *testing.T) {
	f := newStoreFixture(t)

	report, err := f.store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !report.Created {
		t.Error("Created = false, want true")
	}
	if report.Path != f.preferredFile() {
		t.Errorf("Path = %v, want %v", report.Path, f.preferredFile())
	}

	want := "fullscreen false\nkey_a 38\nkey_b 51\nvolume 0.500000\n"
	if got := readFile(t, f.preferredFile()); got != want {
		t.Errorf("defaults file = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Join(f.paths.FallbackDir, testFile)); !os.IsNotExist(err) {
		t.Error("defaults must not be written to the fallback dir")
	}
	if f.logs.FilterMessage("Config directory not found").Len() != 1 {
		t.Error("missing directory was not logged")
	}
}

func TestLoadFromFallback(t *testing.T) {
	f := newStoreFixture(t)
	fallback := filepath.Join(f.paths.FallbackDir, testFile)
	writeFile(t, fallback, "key_b 99\n")

	report, err := f.store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !report.UsedFallback || report.Path != fallback {
		t.Errorf("report = %+v, want fallback %v", report, fallback)
	}
	if f.values.KeyB != 99 {
		t.Errorf("KeyB = %d, want 99", f.values.KeyB)
	}
	if _, err := os.Stat(f.paths.PreferredDir); !os.IsNotExist(err) {
		t.Error("loading must not create the preferred dir")
	}

	// The next save goes to the preferred dir and later loads read from there.
	if _, err := f.store.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	writeFile(t, fallback, "key_b 1\n")
	report, err = f.store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if report.UsedFallback || f.values.KeyB != 99 {
		t.Errorf("second load used fallback=%v KeyB=%d, want preferred and 99", report.UsedFallback, f.values.KeyB)
	}
}

func TestLoadPreferredDirWithoutFileSaves(t *testing.T) {
	f := newStoreFixture(t)
	if err := os.MkdirAll(f.paths.PreferredDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(f.paths.FallbackDir, testFile), "fullscreen true\n")

	report, err := f.store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !report.Created {
		t.Error("Created = false, want true")
	}
	if f.values.Fullscreen {
		t.Error("fallback file must not be read while the preferred dir exists")
	}
}

func TestLoadDirUnavailable(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocker")
	writeFile(t, blocker, "")

	values := newTestValues()
	store := NewStore(newTestRegistry(values), Paths{
		PreferredDir: filepath.Join(blocker, "sm64pc"),
		FallbackDir:  root,
	}, testFile, zap.NewNop())

	_, err := store.Load()
	if !IsDirUnavailable(err) {
		t.Errorf("Load() error = %v, want directory unavailable", err)
	}
}

func TestSaveWriteFailureIsReported(t *testing.T) {
	f := newStoreFixture(t)
	// A directory where the file should go makes the final rename fail.
	if err := os.MkdirAll(filepath.Join(f.preferredFile(), "occupied"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := f.store.Save()
	if !IsWriteError(err) {
		t.Fatalf("Save() error = %v, want write error", err)
	}
	if IsDirUnavailable(err) {
		t.Error("write failure must not be reported as directory unavailable")
	}
	if _, statErr := os.Stat(f.preferredFile() + ".tmp"); !os.IsNotExist(statErr) {
		t.Error("temporary file left behind after failed save")
	}
}

func TestNewStoreNilLogger(t *testing.T) {
	store := NewStore(newTestRegistry(newTestValues()), Paths{}, testFile, nil)
	if store.log == nil {
		t.Fatal("NewStore(nil logger) left log nil")
	}
	if store.Filename() != testFile {
		t.Errorf("Filename() = %v, want %v", store.Filename(), testFile)
	}
}
