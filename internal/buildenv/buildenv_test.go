package buildenv

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/ctenv/internal/configs"
	kerrors "github.com/PolarWolf314/ctenv/internal/errors"
)

func mapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestResolveFromEnvironment(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "target", "debug", "build", "foo-1", "out")
	lookup := mapLookup(map[string]string{
		"CARGO_PKG_NAME": "foo",
		"OUT_DIR":        outDir,
	})

	env, err := Resolve(lookup, configs.DefaultSettings().Env, Env{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if env.PackageName != "foo" {
		t.Errorf("Expected package foo, got %q", env.PackageName)
	}
	if env.OutDir != outDir {
		t.Errorf("Expected out dir %q, got %q", outDir, env.OutDir)
	}
}

func TestResolveOverridesWin(t *testing.T) {
	outDir := t.TempDir()
	lookup := mapLookup(map[string]string{
		"CARGO_PKG_NAME": "foo",
		"OUT_DIR":        "/ignored",
	})

	env, err := Resolve(lookup, configs.DefaultSettings().Env, Env{PackageName: "bar", OutDir: outDir})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if env.PackageName != "bar" || env.OutDir != outDir {
		t.Errorf("Expected overrides to win, got %+v", env)
	}
}

func TestResolveCustomVariableNames(t *testing.T) {
	lookup := mapLookup(map[string]string{
		"PKG":     "foo",
		"PKG_OUT": t.TempDir(),
	})

	_, err := Resolve(lookup, configs.EnvVars{PackageName: "PKG", OutDir: "PKG_OUT"}, Env{})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
}

func TestResolveMissing(t *testing.T) {
	tests := []struct {
		name    string
		values  map[string]string
		missing string
	}{
		{"NoPackageName", map[string]string{"OUT_DIR": "/tmp/target/out"}, "CARGO_PKG_NAME"},
		{"EmptyPackageName", map[string]string{"CARGO_PKG_NAME": "", "OUT_DIR": "/tmp/target/out"}, "CARGO_PKG_NAME"},
		{"NoOutDir", map[string]string{"CARGO_PKG_NAME": "foo"}, "OUT_DIR"},
		{"Nothing", map[string]string{}, "CARGO_PKG_NAME"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Resolve(mapLookup(tc.values), configs.DefaultSettings().Env, Env{})
			if !errors.Is(err, kerrors.ErrMissingEnv) {
				t.Fatalf("Expected ErrMissingEnv, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.missing) {
				t.Errorf("Expected error to name %s, got %q", tc.missing, err.Error())
			}
		})
	}
}

func TestResolveOutDirMakesAbsolute(t *testing.T) {
	outDir, err := ResolveOutDir(mapLookup(nil), configs.DefaultSettings().Env, filepath.Join("target", "out"))
	if err != nil {
		t.Fatalf("ResolveOutDir failed: %v", err)
	}
	if !filepath.IsAbs(outDir) {
		t.Errorf("Expected absolute path, got %q", outDir)
	}
}
