package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"sable/internal/diag"
	"sable/internal/project"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, project.ManifestName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDiscoversManifestUpwards(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[package]
name = "demo"

[check]
jobs = 3
cache = true

[trace]
level = "phase"
output = "-"
`)
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	m, ok, err := project.Load(nested)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("name = %q", m.Config.Package.Name)
	}
	if m.Config.Check.Jobs != 3 || !m.Config.Check.Cache {
		t.Errorf("check = %+v", m.Config.Check)
	}
	if m.Config.Check.MaxDiagnostics != project.DefaultMaxDiagnostics {
		t.Errorf("max-diagnostics default not applied: %d", m.Config.Check.MaxDiagnostics)
	}
	if m.Config.Trace.Level != "phase" || m.Config.Trace.Output != "-" {
		t.Errorf("trace = %+v", m.Config.Trace)
	}
	wantRoot, _ := filepath.Abs(root)
	if m.Root != wantRoot {
		t.Errorf("root = %q, want %q", m.Root, wantRoot)
	}
	if got := m.CachePath(); got != filepath.Join(wantRoot, project.DefaultCacheDir) {
		t.Errorf("cache path = %q", got)
	}
}

func TestLoadFileRejectsBadManifests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no package", "[check]\njobs = 1\n"},
		{"empty name", "[package]\nname = \"  \"\n"},
		{"unknown key", "[package]\nname = \"x\"\nversion = \"1\"\n"},
		{"negative jobs", "[package]\nname = \"x\"\n[check]\njobs = -1\n"},
		{"broken toml", "[package\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.body)
			_, err := project.LoadFile(path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if code := diag.CodeOf(err); code != diag.ProjBadManifest {
				t.Fatalf("code = %v, want ProjBadManifest (%v)", code, err)
			}
		})
	}
}

func TestCacheKeyDependsOnSchemaAndTool(t *testing.T) {
	var content project.Digest
	content[0] = 1
	a := project.CacheKey(content, 1, "0.1.0")
	if a != project.CacheKey(content, 1, "0.1.0") {
		t.Fatal("key must be deterministic")
	}
	if a == project.CacheKey(content, 2, "0.1.0") {
		t.Error("schema must change the key")
	}
	if a == project.CacheKey(content, 1, "0.2.0") {
		t.Error("tool version must change the key")
	}
	if a.IsZero() || len(a.String()) != 64 {
		t.Errorf("unexpected digest %s", a)
	}
}
