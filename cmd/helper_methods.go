package cmd

import (
	"os"

	"github.com/PolarWolf314/ctenv/internal/buildenv"
)

// resolveEnv returns the package name and output directory, preferring flag
// values over the build environment.
func resolveEnv(packageName, outDir string) (buildenv.Env, error) {
	Logger.Debugf("Resolving build environment from $%s and $%s", Settings.Env.PackageName, Settings.Env.OutDir)
	env, err := buildenv.FromProcess(Settings.Env, buildenv.Env{PackageName: packageName, OutDir: outDir})
	if err != nil {
		return buildenv.Env{}, err
	}
	Logger.Debugf("Package %s, output directory %s", env.PackageName, env.OutDir)
	return env, nil
}

// resolveOutDir returns only the output directory, for commands that do not
// need a package name.
func resolveOutDir(outDir string) (string, error) {
	resolved, err := buildenv.ResolveOutDir(os.LookupEnv, Settings.Env, outDir)
	if err != nil {
		return "", err
	}
	Logger.Debugf("Output directory %s", resolved)
	return resolved, nil
}
