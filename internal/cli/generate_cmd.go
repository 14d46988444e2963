package cli

import (
	"fmt"

	"github.com/alexanderramin/devcontract/internal/cli/formatter"
	"github.com/alexanderramin/devcontract/internal/contract"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		configPath string
		output     string
		separator  string
		quiet      bool
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the contract to Markdown, write it and echo it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := app.Contracts(output)

			c, err := svc.Load(ctx, configPath)
			if err != nil {
				return err
			}

			req := contract.NewGenerateRequest(*c)
			req.Separator = separator
			req.DryRun = dryRun

			resp, err := svc.Generate(ctx, req)
			if err != nil {
				return err
			}

			if !quiet {
				text := resp.Markdown
				if app.colorEnabled() {
					text = formatter.FormatMarkdown(text)
				}
				fmt.Fprint(cmd.OutOrStdout(), text)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), formatter.FormatGenerated(resp))
			return nil
		},
	}

	addConfigFlag(cmd.Flags(), &configPath, app.Config.ContractPath)
	cmd.Flags().StringVarP(&output, "output", "o", app.Config.OutputPath, "Markdown file to write (overwritten)")
	addSeparatorFlag(cmd.Flags(), &separator, app.Config.Separator)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not echo the contract to stdout")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render without writing the output file")

	return cmd
}
