package cli

import (
	"context"

	"mirro/internal/backup"

	flag "github.com/spf13/pflag"
)

func diffCmd(cfg *backup.Config) *Command {
	flags := flag.NewFlagSet("diff", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "diff <file> <backup>",
		Short: "Show what changed since a named backup",
		Long: `Show a unified diff between a named backup of <file> and its current
content. The backup must belong to <file>; on a mismatch the backups that
do belong to it are listed.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return backup.ErrFileRequired
			}

			if len(args) < 2 {
				return backup.ErrBackupNameRequired
			}

			target := resolveTarget(cfg, args[0])

			text, diffErr := backup.Diff(target, args[1], cfg.BackupDirAbs)
			if diffErr != nil {
				return diffErr
			}

			if text != "" {
				o.Printf("%s", text)
			}

			return nil
		},
	}
}
