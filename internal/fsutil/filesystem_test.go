package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileSystem_Exists(t *testing.T) {
	fs := OSFileSystem{}

	if !fs.Exists("filesystem.go") {
		t.Error("expected filesystem.go to exist")
	}

	if fs.Exists("nonexistent_file_xyz.go") {
		t.Error("expected nonexistent file to not exist")
	}
}

func TestOSFileSystem_WriteAndRead(t *testing.T) {
	fs := OSFileSystem{}
	path := filepath.Join(t.TempDir(), "report.txt")

	if err := fs.WriteFile(path, []byte("summary"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "summary" {
		t.Errorf("expected %q, got %q", "summary", data)
	}
}

func TestOSFileSystem_MkdirAll(t *testing.T) {
	fs := OSFileSystem{}
	path := filepath.Join(t.TempDir(), "outputs", "plots")

	if err := fs.MkdirAll(path, 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}

func TestMemoryFileSystem_WriteAndRead(t *testing.T) {
	mfs := NewMemoryFileSystem()

	testData := []byte("hello, world")
	if err := mfs.WriteFile("/test.txt", testData, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := mfs.ReadFile("/test.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(data) != string(testData) {
		t.Errorf("expected %q, got %q", testData, data)
	}
}

func TestMemoryFileSystem_CreateAndWrite(t *testing.T) {
	mfs := NewMemoryFileSystem()

	w, err := mfs.Create("/created.txt")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err = w.Write([]byte("created content")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err = w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := mfs.ReadFile("/created.txt")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	if string(data) != "created content" {
		t.Errorf("expected 'created content', got %q", data)
	}
}

func TestMemoryFileSystem_ReadMissing(t *testing.T) {
	mfs := NewMemoryFileSystem()

	if _, err := mfs.ReadFile("/missing.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem()

	if err := mfs.WriteFile("/info.txt", []byte("12345"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	info, err := mfs.Stat("/info.txt")
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Size() != 5 {
		t.Errorf("Size() = %d, want 5", info.Size())
	}
	if info.IsDir() {
		t.Error("expected a regular file")
	}
}

func TestMemoryFileSystem_MkdirAllAndExists(t *testing.T) {
	mfs := NewMemoryFileSystem()

	if err := mfs.MkdirAll("/outputs/plots", 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}

	if !mfs.Exists("/outputs/plots") {
		t.Error("expected /outputs/plots to exist")
	}
	if !mfs.Exists("/outputs") {
		t.Error("expected parent /outputs to exist")
	}
	if mfs.Exists("/elsewhere") {
		t.Error("expected /elsewhere to not exist")
	}
}
