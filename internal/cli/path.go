package cli

import (
	"path/filepath"

	"mirro/internal/backup"
)

// resolveTarget turns a file argument into a path anchored at the effective
// working directory, so -C/--cwd applies to file arguments too.
func resolveTarget(cfg *backup.Config, arg string) string {
	if filepath.IsAbs(arg) {
		return filepath.Clean(arg)
	}

	return filepath.Join(cfg.EffectiveCwd, arg)
}
