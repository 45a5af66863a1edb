package cli

import (
	"context"

	"mirro/internal/backup"

	flag "github.com/spf13/pflag"
)

func listCmd(cfg *backup.Config) *Command {
	flags := flag.NewFlagSet("list", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "list",
		Short: "List backups, oldest first",
		Long:  "List backup records in the backup directory, ordered by capture time (oldest first).",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			entries, listErr := backup.List(cfg.BackupDirAbs)
			if listErr != nil {
				return listErr
			}

			for _, entry := range entries {
				o.Printf("%s  %s\n", entry.Name, entry.CapturedAt())
			}

			return nil
		},
	}
}
