package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/devcontract/internal/builder"
	"github.com/alexanderramin/devcontract/internal/contract"
	"github.com/alexanderramin/devcontract/internal/domain"
	"github.com/alexanderramin/devcontract/internal/importer"
	"github.com/alexanderramin/devcontract/internal/markup"
	"github.com/alexanderramin/devcontract/internal/repository"
)

type contractService struct {
	writer   repository.DocumentRepo
	observer UseCaseObserver
}

// NewContractService wires the builder and renderer to a document repo.
// A nil repo makes every Generate call behave as a dry run.
func NewContractService(writer repository.DocumentRepo, observers ...UseCaseObserver) ContractService {
	return &contractService{
		writer:   writer,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *contractService) Load(ctx context.Context, path string) (*domain.Contract, error) {
	if path == "" {
		return importer.FromSchema(importer.DefaultSchema())
	}
	c, err := importer.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading contract file %s: %w", path, err)
	}
	return c, nil
}

func (s *contractService) Check(ctx context.Context, path string) ([]error, error) {
	schema := importer.DefaultSchema()
	if path != "" {
		var err error
		schema, err = importer.LoadSchema(path)
		if err != nil {
			return nil, fmt.Errorf("loading contract file %s: %w", path, err)
		}
	}
	if errs := importer.ValidateSchema(schema); len(errs) > 0 {
		return errs, nil
	}
	if _, err := importer.Convert(schema); err != nil {
		return unjoin(err), nil
	}
	return nil, nil
}

func (s *contractService) Generate(ctx context.Context, req contract.GenerateRequest) (resp *contract.GenerateResponse, err error) {
	fields := map[string]any{
		"project_type": req.Contract.Project.Type,
		"phases":       len(req.Contract.Project.Phases),
		"dry_run":      req.DryRun || s.writer == nil,
	}
	err = observe(ctx, s.observer, "generate-contract", fields, func() error {
		nodes, err := builder.Assemble(req.Contract)
		if err != nil {
			return fmt.Errorf("building contract: %w", err)
		}
		text, err := markup.Render(nodes, req.Separator)
		if err != nil {
			return fmt.Errorf("rendering contract: %w", err)
		}
		total, err := req.Contract.Project.TotalCost()
		if err != nil {
			return err
		}
		fields["nodes"] = len(nodes)
		fields["bytes"] = len(text)

		resp = &contract.GenerateResponse{
			Nodes:     nodes,
			Markdown:  text,
			TotalCost: total,
			Currency:  req.Contract.Project.Currency,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if req.DryRun || s.writer == nil {
		return resp, nil
	}

	writeFields := map[string]any{"bytes": len(resp.Markdown)}
	err = observe(ctx, s.observer, "write-contract", writeFields, func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		path, err := s.writer.Write(ctx, resp.Markdown)
		if err != nil {
			return fmt.Errorf("writing contract: %w", err)
		}
		writeFields["path"] = path
		resp.OutputPath = path
		resp.Written = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *contractService) Summarize(ctx context.Context, c domain.Contract) (*contract.SummaryResponse, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating contract: %w", err)
	}
	title, err := builder.Title(c.Project.Type)
	if err != nil {
		return nil, err
	}
	total, err := c.Project.TotalCost()
	if err != nil {
		return nil, err
	}
	down, err := c.Project.DownPayment()
	if err != nil {
		return nil, err
	}

	lines := []contract.PhaseLine{{
		Index:       down.Index,
		Label:       "Down payment",
		Cost:        down.Cost,
		DownPayment: true,
	}}
	for _, ph := range c.Project.WorkPhases() {
		lines = append(lines, contract.PhaseLine{
			Index:        ph.Index,
			Label:        fmt.Sprintf("Phase %d", ph.Index),
			Cost:         ph.Cost,
			ElementCount: len(ph.Elements),
		})
	}

	return &contract.SummaryResponse{
		Title:       title,
		ProjectType: c.Project.Type,
		Developer:   c.Developer.Name,
		Client:      c.Client.TradingName(),
		Currency:    c.Project.Currency,
		Phases:      lines,
		TotalCost:   total,
		Reference:   c.Reference,
	}, nil
}

// unjoin flattens an errors.Join tree into its leaves.
func unjoin(err error) []error {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var out []error
	for _, e := range joined.Unwrap() {
		if e != nil {
			out = append(out, unjoin(e)...)
		}
	}
	return out
}
