package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/slackvoice/pkg/cli/config"
	"github.com/secmon-lab/slackvoice/pkg/domain/model"
	"github.com/secmon-lab/slackvoice/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var skillCfg config.Skill

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the skill configuration and print the effective status table",
		Flags:   skillCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			if err := skillCfg.Validate(); err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}

			table, err := skillCfg.StatusTable()
			if err != nil {
				return goerr.Wrap(err, "failed to load status table")
			}
			offset, err := skillCfg.FallbackOffset()
			if err != nil {
				return err
			}

			logger.Info("Configuration validation passed",
				"status_count", len(table.Entries()),
				"fallback_offset", offset.String(),
			)

			printStatusTable(c.Root().Writer, table)
			return nil
		},
	}
}

// printStatusTable writes the status table in evaluation order, marking entries that
// come from the configuration file
func printStatusTable(w io.Writer, table *model.StatusTable) {
	header := color.New(color.Bold)
	keyword := color.New(color.FgCyan)
	custom := color.New(color.FgGreen)

	builtin := len(model.BuiltinStatusEntries())

	_, _ = header.Fprintf(w, "%-3s %-16s %-28s %s\n", "#", "KEYWORD", "ICON", "TEXT")
	for i, e := range table.Entries() {
		mark := ""
		if i >= builtin {
			mark = custom.Sprint(" (custom)")
		}
		_, _ = fmt.Fprintf(w, "%-3d %s %-28s %s%s\n",
			i+1,
			keyword.Sprintf("%-16s", e.Keyword),
			e.Profile.Icon,
			e.Profile.Text,
			mark,
		)
	}
}
