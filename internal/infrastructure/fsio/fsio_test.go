package fsio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestOSFileWriter_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := (OSFileWriter{}).WriteFile(path, []byte("1100"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}
	if string(data) != "1100" {
		t.Errorf("Expected file content %q, got %q", "1100", data)
	}
}

func TestOSFileWriter_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	writer := OSFileWriter{}

	if err := writer.WriteFile(path, []byte("0101010101"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if err := writer.WriteFile(path, []byte("11"), 0644); err != nil {
		t.Fatalf("Failed to overwrite file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}
	if string(data) != "11" {
		t.Errorf("Expected truncated content %q, got %q", "11", data)
	}
}

func TestOSFileWriter_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent-dir", "out.txt")

	err := (OSFileWriter{}).WriteFile(path, []byte("1100"), 0644)
	if err == nil {
		t.Fatal("Expected error writing into a missing directory")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}

func TestOSFileReader_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.txt")
	want := "10011010111100001010"

	if err := (OSFileWriter{}).WriteFile(path, []byte(want), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	data, err := (OSFileReader{}).ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(data) != want {
		t.Errorf("Expected %q, got %q", want, data)
	}
}

func TestOSFileReader_Missing(t *testing.T) {
	_, err := (OSFileReader{}).ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist, got %v", err)
	}
}
