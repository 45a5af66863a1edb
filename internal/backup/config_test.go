package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), dirPerms))
	require.NoError(t, os.WriteFile(path, []byte(content), filePerms))
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	home := t.TempDir()

	cfg, err := LoadConfig(LoadConfigInput{
		WorkDirOverride: workDir,
		Env:             map[string]string{"HOME": home},
	})
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, ".local", "share", "mirro"), cfg.BackupDir)
	require.Equal(t, cfg.BackupDir, cfg.BackupDirAbs)
	require.Equal(t, workDir, cfg.EffectiveCwd)
	require.Empty(t, cfg.Sources.Global)
	require.Empty(t, cfg.Sources.Project)
}

func TestLoadConfigXDGDataHome(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	dataHome := t.TempDir()

	cfg, err := LoadConfig(LoadConfigInput{
		WorkDirOverride: workDir,
		Env: map[string]string{
			"HOME":          t.TempDir(),
			"XDG_DATA_HOME": dataHome,
		},
	})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dataHome, "mirro"), cfg.BackupDir)
}

func TestLoadConfigNoHomeFallsBackToWorkDir(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()

	cfg, err := LoadConfig(LoadConfigInput{
		WorkDirOverride: workDir,
		Env:             map[string]string{},
	})
	require.NoError(t, err)
	require.Equal(t, ".mirro-backups", cfg.BackupDir)
	require.Equal(t, filepath.Join(workDir, ".mirro-backups"), cfg.BackupDirAbs)
}

func TestLoadConfigProjectFileWithComments(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	cfgPath := filepath.Join(workDir, ConfigFileName)
	writeConfigFile(t, cfgPath, `{
  // project-local snapshots
  "backup_dir": "snapshots",
  "editor": "nano",
}`)

	cfg, err := LoadConfig(LoadConfigInput{
		WorkDirOverride: workDir,
		Env:             map[string]string{"HOME": t.TempDir()},
	})
	require.NoError(t, err)

	require.Equal(t, "snapshots", cfg.BackupDir)
	require.Equal(t, filepath.Join(workDir, "snapshots"), cfg.BackupDirAbs)
	require.Equal(t, "nano", cfg.Editor)
	require.Equal(t, cfgPath, cfg.Sources.Project)
}

func TestLoadConfigGlobalThenProjectPrecedence(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	home := t.TempDir()

	globalPath := filepath.Join(home, ".config", "mirro", "config.json")
	writeConfigFile(t, globalPath, `{"backup_dir": "/global/backups", "editor": "vi", "backups_life": "90"}`)

	writeConfigFile(t, filepath.Join(workDir, ConfigFileName), `{"editor": "nano"}`)

	cfg, err := LoadConfig(LoadConfigInput{
		WorkDirOverride: workDir,
		Env:             map[string]string{"HOME": home},
	})
	require.NoError(t, err)

	// Project overrides editor, global still supplies the rest.
	require.Equal(t, "nano", cfg.Editor)
	require.Equal(t, "/global/backups", cfg.BackupDir)
	require.Equal(t, "/global/backups", cfg.BackupDirAbs)
	require.Equal(t, "90", cfg.BackupsLife)
	require.Equal(t, globalPath, cfg.Sources.Global)
}

func TestLoadConfigExplicitFileMustExist(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()

	_, err := LoadConfig(LoadConfigInput{
		WorkDirOverride: workDir,
		ConfigPath:      "missing.json",
		Env:             map[string]string{"HOME": t.TempDir()},
	})
	require.ErrorIs(t, err, ErrConfigFileNotFound)
}

func TestLoadConfigExplicitlyEmptyBackupDir(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	writeConfigFile(t, filepath.Join(workDir, ConfigFileName), `{"backup_dir": ""}`)

	_, err := LoadConfig(LoadConfigInput{
		WorkDirOverride: workDir,
		Env:             map[string]string{"HOME": t.TempDir()},
	})
	require.ErrorIs(t, err, ErrConfigInvalid)
	require.ErrorIs(t, err, ErrBackupDirEmpty)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	writeConfigFile(t, filepath.Join(workDir, ConfigFileName), `{"backup_dir": 42}`)

	_, err := LoadConfig(LoadConfigInput{
		WorkDirOverride: workDir,
		Env:             map[string]string{"HOME": t.TempDir()},
	})
	require.ErrorIs(t, err, ErrConfigInvalid)
}

func TestLoadConfigCLIOverrideWins(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	writeConfigFile(t, filepath.Join(workDir, ConfigFileName), `{"backup_dir": "from-file"}`)

	cfg, err := LoadConfig(LoadConfigInput{
		WorkDirOverride:   workDir,
		BackupDirOverride: "/cli/backups",
		Env:               map[string]string{"HOME": t.TempDir()},
	})
	require.NoError(t, err)
	require.Equal(t, "/cli/backups", cfg.BackupDir)
	require.Equal(t, "/cli/backups", cfg.BackupDirAbs)
}

func TestFormatConfigOmitsEmptyOptionals(t *testing.T) {
	t.Parallel()

	out, err := FormatConfig(Config{BackupDir: "/b"})
	require.NoError(t, err)
	require.Contains(t, out, `"backup_dir": "/b"`)
	require.NotContains(t, out, "editor")
	require.NotContains(t, out, "backups_life")
}
