package cli

import (
	"fmt"

	"github.com/alexanderramin/devcontract/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Report every problem in a contract file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			errs, err := app.Contracts("").Check(cmd.Context(), configPath)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatValidation(sourceLabel(configPath), errs))
			if len(errs) > 0 {
				return fmt.Errorf("contract file has %d problem(s)", len(errs))
			}
			return nil
		},
	}

	addConfigFlag(cmd.Flags(), &configPath, app.Config.ContractPath)

	return cmd
}

func sourceLabel(path string) string {
	if path == "" {
		return "built-in contract"
	}
	return path
}
