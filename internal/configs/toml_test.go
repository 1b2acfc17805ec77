package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadTOML(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "test.toml")

	type TestStruct struct {
		Marker   string
		Depth    int
		FileName string
	}

	originalData := TestStruct{
		Marker:   "target",
		Depth:    3,
		FileName: ".env",
	}

	err := SaveTOML(testFile, originalData)
	if err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loadedData := TestStruct{}
	err = LoadTOML(testFile, &loadedData)
	if err != nil {
		t.Fatalf("LoadTOML failed: %v", err)
	}

	if loadedData != originalData {
		t.Errorf("Expected %+v, got %+v", originalData, loadedData)
	}
}

func TestLoadTOMLNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "nonexistent.toml")

	type TestStruct struct {
		Name string
	}

	data := TestStruct{}
	err := LoadTOML(testFile, &data)
	if err == nil {
		t.Fatal("Expected error for non-existent file, got nil")
	}
}

func TestSaveTOMLCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "subdir", "test.toml")

	type TestStruct struct {
		Name string
	}

	data := TestStruct{Name: "target"}
	err := SaveTOML(testFile, data)
	if err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	if _, err := os.Stat(testFile); os.IsNotExist(err) {
		t.Fatal("File was not created")
	}
}

func TestLoadTOMLUnknownKeys(t *testing.T) {
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "settings.toml")

	content := "name = \"target\"\nnmae = \"typo\"\n"
	if err := os.WriteFile(testFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write settings file: %v", err)
	}

	type TestStruct struct {
		Name string `toml:"name"`
	}

	data := TestStruct{}
	err := LoadTOML(testFile, &data)

	var unknown *UnknownKeysError
	if !errors.As(err, &unknown) {
		t.Fatalf("Expected UnknownKeysError, got %v", err)
	}
	if len(unknown.Keys) != 1 || unknown.Keys[0].String() != "nmae" {
		t.Errorf("Expected unknown key nmae, got %v", unknown.Keys)
	}
	if data.Name != "target" {
		t.Errorf("Expected known key to still decode, got %q", data.Name)
	}
}
