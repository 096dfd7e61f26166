package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/vidgate/vidgate-go/internal/cli/config"
	"github.com/vidgate/vidgate-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage CLI configuration",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:      "set",
				Usage:     "Set a configuration value",
				ArgsUsage: "KEY VALUE",
				Action:    configSet,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	flags := ParseGlobalFlags(c)
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}

	format := output.Format(flags.Output)
	if flags.Output == "" {
		format = output.Format(cfg.Output)
	}
	return output.NewFormatter(format).Format(c.App.Writer, cfg)
}

func configSet(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: config set KEY VALUE")
	}
	key, value := c.Args().Get(0), c.Args().Get(1)

	flags := ParseGlobalFlags(c)
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}

	switch key {
	case "server":
		cfg.Server = value
	case "output":
		if value != string(output.FormatTable) && value != string(output.FormatJSON) {
			return fmt.Errorf("invalid output format %q (expected table or json)", value)
		}
		cfg.Output = value
	default:
		return fmt.Errorf("unknown config key %q (expected server or output)", key)
	}

	if err := config.Save(cfg, flags.ConfigPath); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "%s = %s\n", key, value)
	return nil
}
