package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/teamsgen/internal/manifest"
)

// writeConfig writes an INI fixture pointing at its own temp root and returns
// (configPath, rootPath).
func writeConfig(t *testing.T, content string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	root := filepath.Join(dir, "out")
	content = strings.ReplaceAll(content, "{{ROOT}}", root)
	path := filepath.Join(dir, "config.ini")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path, root
}

const configTemplate = `[Paths]
sample_teams_root = {{ROOT}}

[Project]
project_name = P1
item_name = I1

[title]
research = T
review_checklist = Checklist
review_minutes = Minutes
`

// testFlags returns generateFlags with safe defaults for testing.
func testFlags(configPath string) generateFlags {
	return generateFlags{
		configPath:     configPath,
		date:           "2026-02-10", // Q1; cycles at 0203/0205/0207/0209
		manifestFormat: "json",
	}
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var ee *exitErr
	if !errors.As(err, &ee) {
		t.Fatalf("error is not an exitErr: %v", err)
	}
	return ee.code
}

// --- Tests ---

func TestRunGenerate_CreatesTree(t *testing.T) {
	configPath, root := writeConfig(t, configTemplate)

	flags := testFlags(configPath)
	flags.manifestOut = filepath.Join(t.TempDir(), "manifest.json")

	if err := runGenerate(flags); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	// The Q1 main-deliverable path from the run date.
	doc := filepath.Join(root, "P1", "I1", "2026_1Q", "030.investigation", "investigation_report_P1_I1.xlsx")
	if _, err := os.Stat(doc); err != nil {
		t.Errorf("missing main deliverable: %v", err)
	}

	stub := filepath.Join(root, "P1", "I1", "2026_1Q", "050.manufacturing", "xxx.py")
	info, err := os.Stat(stub)
	if err != nil {
		t.Fatalf("missing source placeholder: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("source placeholder size = %d, want 0", info.Size())
	}

	variant := filepath.Join(root, "P1", "I1", "2026_1Q", "030.investigation",
		"results", "external-review", "20260209", "investigation_b_P1_I1.xlsx")
	if _, err := os.Stat(variant); err != nil {
		t.Errorf("missing variant document: %v", err)
	}

	data, err := os.ReadFile(flags.manifestOut)
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	var m manifest.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("manifest is not valid JSON: %v\n%s", err, data)
	}
	if m.Tool != "teamsgen" {
		t.Errorf("manifest tool = %q", m.Tool)
	}
	if m.Summary.FileCount() != 48 || m.Summary.DirCount != 43 {
		t.Errorf("summary = %+v, want 43 dirs / 48 files", m.Summary)
	}
	if m.Summary.DegradedCount != 0 {
		t.Errorf("rich run produced %d degraded artifacts", m.Summary.DegradedCount)
	}
}

func TestRunGenerate_MissingProjectSection(t *testing.T) {
	configPath, root := writeConfig(t, `[Paths]
sample_teams_root = {{ROOT}}

[title]
research = T
`)

	err := runGenerate(testFlags(configPath))
	if err == nil {
		t.Fatal("expected error for missing [Project] section")
	}
	if !strings.Contains(err.Error(), "missing required section [Project]") {
		t.Errorf("error = %q, want it to name [Project]", err)
	}
	if code := exitCode(t, err); code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	if _, statErr := os.Stat(root); !os.IsNotExist(statErr) {
		t.Error("root folder was created despite the config error")
	}
}

func TestRunGenerate_PlainWritesFallbackStubs(t *testing.T) {
	configPath, root := writeConfig(t, configTemplate)

	flags := testFlags(configPath)
	flags.plain = true
	flags.manifestOut = filepath.Join(t.TempDir(), "manifest.json")

	if err := runGenerate(flags); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	doc := filepath.Join(root, "P1", "I1", "2026_1Q", "040.design", "functional_design_P1_I1.xlsx")
	data, err := os.ReadFile(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := "Dummy Excel Content (Fallback) - functional_design_P1_I1.xlsx\n"
	if string(data) != want {
		t.Errorf("content = %q, want fixed fallback string", data)
	}

	var m manifest.Manifest
	raw, err := os.ReadFile(flags.manifestOut)
	if err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	if m.Summary.RichCount != 0 || m.Summary.DegradedCount != 47 {
		t.Errorf("summary = %+v, want all artifacts degraded", m.Summary)
	}
	if !m.Input.Plain {
		t.Error("manifest input does not record plain mode")
	}
}

func TestRunGenerate_Idempotent(t *testing.T) {
	configPath, root := writeConfig(t, configTemplate)
	flags := testFlags(configPath)

	collect := func() []string {
		var paths []string
		err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			paths = append(paths, p)
			return nil
		})
		if err != nil {
			t.Fatal(err)
		}
		return paths
	}

	if err := runGenerate(flags); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := collect()

	if err := runGenerate(flags); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second := collect()

	if len(first) != len(second) {
		t.Fatalf("re-run changed path count: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("path %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestRunGenerate_InvalidDate(t *testing.T) {
	configPath, _ := writeConfig(t, configTemplate)
	flags := testFlags(configPath)
	flags.date = "02/10/2026"

	err := runGenerate(flags)
	if err == nil {
		t.Fatal("expected error for bad --date")
	}
	if code := exitCode(t, err); code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
}

func TestRunGenerate_InvalidManifestFormat(t *testing.T) {
	configPath, _ := writeConfig(t, configTemplate)
	flags := testFlags(configPath)
	flags.manifestFormat = "yaml"

	err := runGenerate(flags)
	if err == nil {
		t.Fatal("expected error for bad --manifest-format")
	}
	if code := exitCode(t, err); code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
}

func TestResolveRunDate_DefaultsToNow(t *testing.T) {
	d, err := resolveRunDate("")
	if err != nil {
		t.Fatal(err)
	}
	if d.IsZero() {
		t.Error("empty --date resolved to the zero time")
	}
}
