package cli

import (
	"fmt"

	"github.com/alexanderramin/devcontract/internal/builder"
	"github.com/alexanderramin/devcontract/internal/cli/formatter"
	"github.com/alexanderramin/devcontract/internal/contract"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPreviewCmd(app *App) *cobra.Command {
	var (
		configPath string
		separator  string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Page through the rendered contract without writing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := app.Contracts("")

			c, err := svc.Load(ctx, configPath)
			if err != nil {
				return err
			}

			req := contract.NewGenerateRequest(*c)
			req.Separator = separator
			req.DryRun = true
			resp, err := svc.Generate(ctx, req)
			if err != nil {
				return err
			}

			if !app.interactive() {
				fmt.Fprint(cmd.OutOrStdout(), resp.Markdown)
				return nil
			}

			title, err := builder.Title(c.Project.Type)
			if err != nil {
				return err
			}
			content := resp.Markdown
			if app.colorEnabled() {
				content = formatter.FormatMarkdown(content)
			}

			p := tea.NewProgram(
				newPreviewModel(title, content),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	addConfigFlag(cmd.Flags(), &configPath, app.Config.ContractPath)
	addSeparatorFlag(cmd.Flags(), &separator, app.Config.Separator)

	return cmd
}
