package cli

import (
	"context"

	"mirro/internal/backup"

	flag "github.com/spf13/pflag"
)

func printConfigCmd(cfg *backup.Config) *Command {
	flags := flag.NewFlagSet("print-config", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "print-config",
		Short: "Show resolved configuration",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			formatted, err := backup.FormatConfig(*cfg)
			if err != nil {
				return err
			}

			o.Println(formatted)

			o.Println("")
			o.Println("# Sources:")

			if cfg.Sources.Global != "" {
				o.Println("#   global:", cfg.Sources.Global)
			}

			if cfg.Sources.Project != "" {
				o.Println("#   project:", cfg.Sources.Project)
			}

			if cfg.Sources.Global == "" && cfg.Sources.Project == "" {
				o.Println("#   (using defaults only)")
			}

			return nil
		},
	}
}
