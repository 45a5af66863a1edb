package cli

import (
	"context"

	"mirro/internal/backup"

	flag "github.com/spf13/pflag"
)

func pruneCmd(cfg *backup.Config, env map[string]string) *Command {
	flags := flag.NewFlagSet("prune", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "prune [all|<days>]",
		Short: "Delete backups by age",
		Long: `Delete backup records. "all" removes every file in the backup
directory; <days> removes files older than that many days. With no
argument the age comes from $MIRRO_BACKUPS_LIFE, the backups_life config
setting, or 30 days.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			var (
				policy    backup.Policy
				policyErr error
			)

			if len(args) > 0 {
				policy, policyErr = backup.ParsePolicy(args[0])
			} else {
				policy, policyErr = backup.DefaultPolicy(configuredBackupsLife(cfg, env))
			}

			if policyErr != nil {
				return policyErr
			}

			removed, pruneErr := backup.Prune(cfg.BackupDirAbs, policy)
			if pruneErr != nil {
				return pruneErr
			}

			o.Printf("removed %d backup(s)\n", removed)

			return nil
		},
	}
}

// configuredBackupsLife resolves the default prune age. The store never
// reads the environment itself; the value is resolved here and passed in.
func configuredBackupsLife(cfg *backup.Config, env map[string]string) string {
	if life := env["MIRRO_BACKUPS_LIFE"]; life != "" {
		return life
	}

	return cfg.BackupsLife
}
