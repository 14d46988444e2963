package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexanderramin/devcontract/internal/cli"
	"github.com/alexanderramin/devcontract/internal/config"
	"github.com/alexanderramin/devcontract/internal/repository"
	"github.com/alexanderramin/devcontract/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Config: cfg,
		Contracts: func(output string) service.ContractService {
			// Commands that never write pass an empty path.
			if output == "" {
				return service.NewContractService(nil, observer)
			}
			return service.NewContractService(repository.NewFileDocumentRepo(output), observer)
		},
	}

	// Pager, wizard and colored echo need a terminal on both ends.
	app.IsInteractive = func() bool {
		in, out := os.Stdin.Fd(), os.Stdout.Fd()
		return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
			(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
