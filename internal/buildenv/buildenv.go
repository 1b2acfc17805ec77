package buildenv

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/ctenv/internal/configs"
	kerrors "github.com/PolarWolf314/ctenv/internal/errors"
)

// Env is what the build tool tells ctenv about the package being built.
type Env struct {
	// PackageName is matched against the owner of each entry.
	PackageName string

	// OutDir is the package's private build output directory.
	OutDir string
}

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromProcess resolves Env from the current process environment.
func FromProcess(vars configs.EnvVars, overrides Env) (Env, error) {
	return Resolve(os.LookupEnv, vars, overrides)
}

// Resolve fills Env from overrides first and lookup second. A value that is
// neither overridden nor set to a non-empty string is an error wrapping
// ErrMissingEnv. OutDir is returned as an absolute path.
func Resolve(lookup LookupFunc, vars configs.EnvVars, overrides Env) (Env, error) {
	packageName, err := pick(lookup, vars.PackageName, overrides.PackageName)
	if err != nil {
		return Env{}, err
	}

	outDir, err := ResolveOutDir(lookup, vars, overrides.OutDir)
	if err != nil {
		return Env{}, err
	}

	return Env{PackageName: packageName, OutDir: outDir}, nil
}

// ResolveOutDir resolves only the output directory, for commands that do not
// care which package is being built.
func ResolveOutDir(lookup LookupFunc, vars configs.EnvVars, override string) (string, error) {
	outDir, err := pick(lookup, vars.OutDir, override)
	if err != nil {
		return "", err
	}

	absOutDir, err := filepath.Abs(outDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve output directory %s: %w", outDir, err)
	}
	return absOutDir, nil
}

func pick(lookup LookupFunc, name, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	value, ok := lookup(name)
	if !ok || value == "" {
		return "", fmt.Errorf("%s: %w", name, kerrors.ErrMissingEnv)
	}
	return value, nil
}
