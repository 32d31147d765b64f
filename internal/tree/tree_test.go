package tree

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRender_KnownStructure(t *testing.T) {
	root := filepath.Join(t.TempDir(), "root")
	mkdir(t, root)
	touch(t, filepath.Join(root, "a.txt"))
	mkdir(t, filepath.Join(root, "sub"))
	touch(t, filepath.Join(root, "sub", "b.txt"))

	got, err := Render(root)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := "root/\n    a.txt\n    sub/\n        b.txt\n"
	if got != want {
		t.Errorf("unexpected tree:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRender_EmptyDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "root")
	mkdir(t, root)

	got, err := Render(root)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got != "root/\n" {
		t.Errorf("expected just the root line, got %q", got)
	}
}

func TestRender_IndentScalesWithDepth(t *testing.T) {
	root := filepath.Join(t.TempDir(), "root")
	mkdir(t, filepath.Join(root, "sub", "inner"))
	touch(t, filepath.Join(root, "sub", "inner", "c.txt"))

	got, err := Render(root)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := "root/\n    sub/\n        inner/\n            c.txt\n"
	if got != want {
		t.Errorf("unexpected tree:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRender_SiblingsAreSorted(t *testing.T) {
	root := filepath.Join(t.TempDir(), "root")
	mkdir(t, root)
	touch(t, filepath.Join(root, "z.txt"))
	mkdir(t, filepath.Join(root, "m"))
	touch(t, filepath.Join(root, "b.txt"))

	got, err := Render(root)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := "root/\n    b.txt\n    m/\n    z.txt\n"
	if got != want {
		t.Errorf("expected lexical sibling order:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRender_TrailingSeparator(t *testing.T) {
	root := filepath.Join(t.TempDir(), "root")
	mkdir(t, root)
	touch(t, filepath.Join(root, "a.txt"))

	plain, err := Render(root)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	trailing, err := Render(root + string(os.PathSeparator))
	if err != nil {
		t.Fatalf("Render with trailing separator failed: %v", err)
	}
	if plain != trailing {
		t.Errorf("trailing separator changed output:\n%q\nvs\n%q", plain, trailing)
	}
	if !strings.Contains(plain, "    a.txt\n") {
		t.Errorf("expected 4-space indented file line, got %q", plain)
	}
}

func TestRender_UnreadableSubdirSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}

	root := filepath.Join(t.TempDir(), "root")
	mkdir(t, root)
	touch(t, filepath.Join(root, "a.txt"))
	locked := filepath.Join(root, "locked")
	mkdir(t, locked)
	touch(t, filepath.Join(locked, "hidden.txt"))
	touch(t, filepath.Join(root, "z.txt"))

	if err := os.Chmod(locked, 0o000); err != nil {
		t.Fatalf("chmod %s: %v", locked, err)
	}
	defer os.Chmod(locked, 0o755)

	got, err := Render(root)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := "root/\n    a.txt\n    z.txt\n"
	if got != want {
		t.Errorf("unreadable directory should be left out:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRender_MissingPath(t *testing.T) {
	if _, err := Render(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Errorf("expected error for missing path")
	}
}
