package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPath(t *testing.T) {
	d, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if d.Dir != "" || d.FolderIsDir {
		t.Errorf("Load(\"\") = %+v, want zero Defaults", d)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "python-su.yaml")
	content := "dir: /srv/projects\nfolder_is_dir: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if d.Dir != "/srv/projects" {
		t.Errorf("Dir = %q, want %q", d.Dir, "/srv/projects")
	}
	if !d.FolderIsDir {
		t.Error("FolderIsDir should be true")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "python-su.yaml")
	if err := os.WriteFile(path, []byte("dir: work\n"), 0644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if d.Dir != "work" {
		t.Errorf("Dir = %q, want %q", d.Dir, "work")
	}
	if d.FolderIsDir {
		t.Error("FolderIsDir should default to false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("dir: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
