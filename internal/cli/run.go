package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"mirro/internal/backup"
)

const appVersion = "0.2.0"

const (
	minArgs      = 2
	consumedOne  = 1
	consumedTwo  = 2
	consumedNone = 0
	helpFlag     = "--help"
)

// Run is the main entry point. Returns exit code.
func Run(_ io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	if len(args) < minArgs {
		printUsage(out)

		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if flags.showVersion {
		fprintln(out, "mirro", appVersion)

		return 0
	}

	if len(flags.remaining) == 0 {
		printUsage(out)

		return 0
	}

	first := flags.remaining[0]
	if first == "-h" || first == helpFlag {
		printUsage(out)

		return 0
	}

	cfg, err := backup.LoadConfig(backup.LoadConfigInput{
		WorkDirOverride:   flags.workDir,
		ConfigPath:        flags.configPath,
		BackupDirOverride: flags.backupDir,
		Env:               env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	ctx := context.Background()
	ioCtx := NewIO(out, errOut)

	if cmd := lookupCommand(first, &cfg, env); cmd != nil {
		return cmd.Run(ctx, ioCtx, flags.remaining[1:])
	}

	// Anything that is not a known command is a file to edit.
	return editCmd(&cfg, env).Run(ctx, ioCtx, flags.remaining)
}

func lookupCommand(name string, cfg *backup.Config, env map[string]string) *Command {
	switch name {
	case "list":
		return listCmd(cfg)
	case "restore":
		return restoreCmd(cfg)
	case "prune":
		return pruneCmd(cfg, env)
	case "diff":
		return diffCmd(cfg)
	case "print-config":
		return printConfigCmd(cfg)
	}

	return nil
}

type globalFlags struct {
	workDir     string
	configPath  string
	backupDir   string
	showVersion bool
	remaining   []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command or the file to edit
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// -C/--cwd flag (work directory)
	if (arg == "-C" || arg == "--cwd") && idx+1 < len(args) {
		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "-C"); ok && after != "" {
		flags.workDir = after

		return consumedOne, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -c/--config flag
	if arg == "-c" || arg == "--config" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", backup.ErrFlagRequiresArg, arg)
		}

		flags.configPath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--config="); ok {
		flags.configPath = after

		return consumedOne, nil
	}

	// --backup-dir flag
	if arg == "--backup-dir" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", backup.ErrFlagRequiresArg, arg)
		}

		flags.backupDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--backup-dir="); ok {
		flags.backupDir = after

		return consumedOne, nil
	}

	// --version flag
	if arg == "--version" {
		flags.showVersion = true

		return consumedOne, nil
	}

	// -h/--help flags
	if arg == "-h" || arg == helpFlag {
		flags.remaining = []string{helpFlag}

		return len(args) - idx, nil
	}

	// --editor belongs to the edit command; stop scanning and let its
	// FlagSet pick it up wherever it appears.
	if arg == "--editor" || strings.HasPrefix(arg, "--editor=") {
		return consumedNone, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("%w: %s", backup.ErrUnknownFlag, arg)
	}

	// Not a flag
	return consumedNone, nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func printUsage(writer io.Writer) {
	fprintln(writer, `mirro - edit a file with automatic original backup

Usage: mirro [options] <file>
       mirro [options] <command> [args]

Options:
  -C, --cwd <dir>       Run as if started in <dir>
  -c, --config <file>   Use specified config file
      --backup-dir <dir>  Override the backup directory
      --version         Print version
      --editor <cmd>    Editor for <file> (overrides config and $EDITOR)

Commands:
  list                   List backups, oldest first
  restore <file>         Restore the most recent backup of <file>
  prune [all|<days>]     Delete backups by age
  diff <file> <backup>   Show what changed since a named backup
  print-config           Show resolved configuration`)
}
