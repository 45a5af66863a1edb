package cli

import (
	"context"

	"mirro/internal/backup"

	flag "github.com/spf13/pflag"
)

func restoreCmd(cfg *backup.Config) *Command {
	flags := flag.NewFlagSet("restore", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "restore <file>",
		Short: "Restore the most recent backup of <file>",
		Long: `Overwrite <file> with the most recent backup taken of it. The backup
record itself is kept.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return backup.ErrFileRequired
			}

			target := resolveTarget(cfg, args[0])

			name, restoreErr := backup.RestoreLast(target, cfg.BackupDirAbs)
			if restoreErr != nil {
				return restoreErr
			}

			o.Println("restored " + args[0] + " from " + name)

			return nil
		},
	}
}
