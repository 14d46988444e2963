package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/devcontract/internal/cli/formatter"
	"github.com/alexanderramin/devcontract/internal/importer"
	"github.com/alexanderramin/devcontract/internal/repository"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// DefaultContractFile is where `init` writes when no --output is given.
const DefaultContractFile = "contract.yaml"

func newInitCmd(app *App) *cobra.Command {
	var (
		output      string
		useDefaults bool
		force       bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a contract file, interactively or from the placeholder values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := importer.DefaultSchema()
			if !useDefaults && app.interactive() {
				answers := newInitAnswers(schema)
				if err := newInitForm(answers).Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Cancelled."))
						return nil
					}
					return err
				}
				if err := answers.apply(schema); err != nil {
					return err
				}
			}
			schema.Reference = uuid.NewString()

			if errs := importer.ValidateSchema(schema); len(errs) > 0 {
				return fmt.Errorf("invalid contract: %w", errors.Join(errs...))
			}
			data, err := importer.EncodeSchema(schema)
			if err != nil {
				return err
			}

			repo := repository.NewFileDocumentRepo(output)
			write := repo.CreateNew
			if force {
				write = repo.Write
			}
			path, err := write(cmd.Context(), string(data))
			if errors.Is(err, os.ErrExist) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", output)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Wrote %s", path)))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Field("REFERENCE", schema.Reference))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", DefaultContractFile, "Contract file to create")
	cmd.Flags().BoolVar(&useDefaults, "defaults", false, "Skip the wizard and use the placeholder values")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
