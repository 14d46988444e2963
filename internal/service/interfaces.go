package service

import (
	"context"

	"github.com/alexanderramin/devcontract/internal/contract"
	"github.com/alexanderramin/devcontract/internal/domain"
)

type ContractService interface {
	// Load reads a contract file. An empty path yields the built-in
	// placeholder contract.
	Load(ctx context.Context, path string) (*domain.Contract, error)
	// Check returns every problem found in a contract file without
	// stopping at the first one.
	Check(ctx context.Context, path string) ([]error, error)
	Generate(ctx context.Context, req contract.GenerateRequest) (*contract.GenerateResponse, error)
	Summarize(ctx context.Context, c domain.Contract) (*contract.SummaryResponse, error)
}
