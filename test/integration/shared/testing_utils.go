// Package shared contains testing utilities shared between integration tests.
// It lays out a fake build tree, sets the build environment and runs the real
// ctenv command tree with captured output.
package shared

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/PolarWolf314/ctenv/cmd"
	logger "github.com/PolarWolf314/ctenv/internal/logging"
)

// TestPackage is the package name used by SetupTestProject.
const TestPackage = "foo"

// TestProject is a fake cargo project with one package output directory.
type TestProject struct {
	// Root is the project root holding .env and target/.
	Root string

	// OutDir is <Root>/target/debug/build/foo-<hash>/out.
	OutDir string
}

// ConfigPath returns the path of the shared configuration file.
func (p TestProject) ConfigPath() string {
	return filepath.Join(p.Root, ".env")
}

// SetupTestProject creates the project tree, writes .env with content and
// points CARGO_PKG_NAME and OUT_DIR at it. Colors are disabled.
func SetupTestProject(t *testing.T, content string) TestProject {
	t.Helper()

	root := t.TempDir()
	project := TestProject{
		Root:   root,
		OutDir: filepath.Join(root, "target", "debug", "build", TestPackage+"-9f8e7d6c", "out"),
	}

	if err := os.MkdirAll(project.OutDir, 0755); err != nil {
		t.Fatalf("Failed to create out dir: %v", err)
	}
	WriteConfig(t, project, content)

	t.Setenv("CARGO_PKG_NAME", TestPackage)
	t.Setenv("OUT_DIR", project.OutDir)
	t.Setenv("NO_COLOR", "1")
	t.Setenv("CTENV_SETTINGS", "")

	return project
}

// WriteConfig replaces the project's .env file.
func WriteConfig(t *testing.T, project TestProject, content string) {
	t.Helper()
	if err := os.WriteFile(project.ConfigPath(), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
}

// ReadArtifact returns the contents of an artifact, failing the test if it is missing.
func ReadArtifact(t *testing.T, project TestProject, key string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(project.OutDir, key))
	if err != nil {
		t.Fatalf("Failed to read artifact %s: %v", key, err)
	}
	return string(data)
}

// ArtifactExists reports whether an artifact file exists.
func ArtifactExists(project TestProject, key string) bool {
	_, err := os.Stat(filepath.Join(project.OutDir, key))
	return err == nil
}

// ExecuteCLI runs the ctenv command tree with args and returns stdout and
// stderr separately, so tests can check that stdout carries only directives.
func ExecuteCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd.ResetGlobalState()

	var stdout, stderr bytes.Buffer
	rootCmd := cmd.GetRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	originalOutput := logger.Output
	logger.Output = &stderr
	defer func() {
		logger.Output = originalOutput
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}
