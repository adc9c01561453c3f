package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOutPathFor(t *testing.T) {
	cases := []struct {
		path, outDir, want string
	}{
		{"shaders/frag.json", "", filepath.Join("shaders", "frag.pack")},
		{"shaders/frag.json", "build", filepath.Join("build", "frag.pack")},
		{"frag.json", "", "frag.pack"},
		{"noext", "", "noext.pack"},
	}
	for _, c := range cases {
		if got := outPathFor(c.path, c.outDir); got != c.want {
			t.Errorf("outPathFor(%q, %q) = %q, want %q", c.path, c.outDir, got, c.want)
		}
	}
}

func TestCollectDumpFiles(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"b.json", "a.json", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(sub, "c.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	files, err := collectDumpFiles([]string{dir})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
		filepath.Join(sub, "c.json"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}

	// A direct file argument is taken as-is, whatever its extension.
	direct, err := collectDumpFiles([]string{filepath.Join(dir, "notes.txt")})
	if err != nil {
		t.Fatal(err)
	}
	if len(direct) != 1 || direct[0] != filepath.Join(dir, "notes.txt") {
		t.Errorf("direct = %v", direct)
	}
}

func TestFindGlslpackToml(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(root, "glslpack.toml")
	if err := os.WriteFile(manifest, []byte("[pack]\nversion = 310\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, ok, err := findGlslpackToml(nested)
	if err != nil || !ok {
		t.Fatalf("findGlslpackToml = %v, %v", ok, err)
	}
	if path != manifest {
		t.Errorf("path = %q, want %q", path, manifest)
	}
}

func TestLoadProjectManifest(t *testing.T) {
	root := t.TempDir()
	body := `
[pack]
version = 310
out = "build"

[cache]
dir = ".cache"
`
	if err := os.WriteFile(filepath.Join(root, "glslpack.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	manifest, ok, err := loadProjectManifest(root)
	if err != nil || !ok {
		t.Fatalf("loadProjectManifest = %v, %v", ok, err)
	}
	if manifest.Root != root {
		t.Errorf("Root = %q, want %q", manifest.Root, root)
	}
	if manifest.Config.Pack.Version != 310 || manifest.Config.Pack.Out != "build" {
		t.Errorf("Pack = %+v", manifest.Config.Pack)
	}
	if manifest.Config.Cache.Dir != ".cache" || manifest.Config.Cache.Disabled {
		t.Errorf("Cache = %+v", manifest.Config.Cache)
	}

	bad := filepath.Join(root, "bad")
	if err := os.MkdirAll(bad, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bad, "glslpack.toml"), []byte("[pack]\nversion = -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := loadProjectManifest(bad); err == nil {
		t.Error("negative [pack].version accepted")
	}
}
