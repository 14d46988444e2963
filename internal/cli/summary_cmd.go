package cli

import (
	"fmt"

	"github.com/alexanderramin/devcontract/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the cost breakdown of a contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := app.Contracts("")

			c, err := svc.Load(ctx, configPath)
			if err != nil {
				return err
			}
			sum, err := svc.Summarize(ctx, *c)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(sum))
			return nil
		},
	}

	addConfigFlag(cmd.Flags(), &configPath, app.Config.ContractPath)

	return cmd
}
