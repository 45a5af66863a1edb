package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"mirro/internal/backup"

	"github.com/natefinch/atomic"
	flag "github.com/spf13/pflag"
	"golang.org/x/sys/unix"
)

func editCmd(cfg *backup.Config, env map[string]string) *Command {
	flags := flag.NewFlagSet("edit", flag.ContinueOnError)
	flagEditor := flags.String("editor", "", "Editor command to use (overrides config and $EDITOR)")

	return &Command{
		Flags: flags,
		Usage: "<file> [--editor <cmd>]",
		Short: "Edit a file, backing up the original if it changes",
		Long: `Open <file> in an external editor. If the edit changed the content,
the prior content is saved to the backup directory before the file is
overwritten. An unchanged edit leaves everything untouched.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			return execEdit(ctx, o, cfg, env, args, *flagEditor)
		},
	}
}

func execEdit(ctx context.Context, o *IO, cfg *backup.Config, env map[string]string, args []string, editorOverride string) error {
	if len(args) == 0 {
		return backup.ErrFileRequired
	}

	target := resolveTarget(cfg, args[0])

	preflightErr := checkWritable(target)
	if preflightErr != nil {
		return preflightErr
	}

	original, readErr := readFileOrEmpty(target)
	if readErr != nil {
		return readErr
	}

	editor, resolveErr := resolveEditor(editorOverride, cfg, env)
	if resolveErr != nil {
		return resolveErr
	}

	edited, sessionErr := editInTempFile(ctx, editor, target, original, env)
	if sessionErr != nil {
		return sessionErr
	}

	if edited == original {
		o.Println("file hasn't changed")

		return nil
	}

	// Back up first: a failed backup must abort before the target is touched.
	backupPath, backupErr := backup.Create(target, original, cfg.BackupDirAbs)
	if backupErr != nil {
		return backupErr
	}

	writeErr := atomic.WriteFile(target, strings.NewReader(edited))
	if writeErr != nil {
		return fmt.Errorf("writing %s: %w", target, writeErr)
	}

	o.Println("file changed; original backed up at " + backupPath)

	return nil
}

// checkWritable verifies the edit can be applied: the target itself when it
// exists, its parent directory when the target would be created.
func checkWritable(target string) error {
	_, statErr := os.Stat(target)
	if statErr == nil {
		if accessErr := unix.Access(target, unix.W_OK); accessErr != nil {
			return fmt.Errorf("%w to open %s", backup.ErrElevatedPrivileges, target)
		}

		return nil
	}

	if !os.IsNotExist(statErr) {
		return fmt.Errorf("checking %s: %w", target, statErr)
	}

	if accessErr := unix.Access(filepath.Dir(target), unix.W_OK); accessErr != nil {
		return fmt.Errorf("%w to create %s", backup.ErrElevatedPrivileges, target)
	}

	return nil
}

// readFileOrEmpty reads a whole file, treating a missing file as empty.
func readFileOrEmpty(path string) (string, error) {
	content, readErr := os.ReadFile(path)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return "", nil
		}

		return "", fmt.Errorf("reading %s: %w", path, readErr)
	}

	return string(content), nil
}

// editInTempFile copies original into a temp file, runs the editor on it,
// and returns the edited content. The temp file is always removed.
func editInTempFile(ctx context.Context, editor []string, target, original string, env map[string]string) (string, error) {
	tmpFile, tmpErr := os.CreateTemp(tempDir(env), "mirro-*"+filepath.Ext(target))
	if tmpErr != nil {
		return "", fmt.Errorf("creating temp file: %w", tmpErr)
	}

	tmpPath := tmpFile.Name()

	defer func() { _ = os.Remove(tmpPath) }()

	_, writeErr := tmpFile.WriteString(original)

	closeErr := tmpFile.Close()
	if writeErr != nil {
		return "", fmt.Errorf("writing temp file: %w", writeErr)
	}

	if closeErr != nil {
		return "", fmt.Errorf("writing temp file: %w", closeErr)
	}

	runErr := runEditor(ctx, editor, tmpPath)
	if runErr != nil {
		return "", runErr
	}

	edited, readErr := os.ReadFile(tmpPath)
	if readErr != nil {
		return "", fmt.Errorf("reading temp file: %w", readErr)
	}

	return string(edited), nil
}

// tempDir checks env["TMPDIR"] first (like os.TempDir on Unix), falls back
// to os.TempDir().
func tempDir(env map[string]string) string {
	if tmp := env["TMPDIR"]; tmp != "" {
		return tmp
	}

	return os.TempDir()
}

// resolveEditor picks the editor command.
// Priority: --editor flag -> config.editor -> $EDITOR -> vi -> nano -> error.
// The command is split on whitespace so values like "code -w" work.
func resolveEditor(override string, cfg *backup.Config, env map[string]string) ([]string, error) {
	for _, candidate := range []string{override, cfg.Editor, env["EDITOR"]} {
		argv := strings.Fields(candidate)
		if len(argv) == 0 {
			continue
		}

		_, lookErr := exec.LookPath(argv[0])
		if lookErr == nil {
			return argv, nil
		}
	}

	_, viErr := exec.LookPath("vi")
	if viErr == nil {
		return []string{"vi"}, nil
	}

	_, nanoErr := exec.LookPath("nano")
	if nanoErr == nil {
		return []string{"nano"}, nil
	}

	return nil, backup.ErrNoEditorFound
}

func runEditor(ctx context.Context, argv []string, path string) error {
	args := append(append([]string{}, argv[1:]...), path)

	cmd := exec.CommandContext(ctx, argv[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	runErr := cmd.Run()
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			return fmt.Errorf("%w: exit code %d", backup.ErrEditorFailed, exitErr.ExitCode())
		}

		return fmt.Errorf("%w: %w", backup.ErrEditorFailed, runErr)
	}

	return nil
}
