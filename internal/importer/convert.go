package importer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/devcontract/internal/domain"
)

// Convert transforms a validated ContractSchema into a domain.Contract with
// phases ordered by index. Call ValidateSchema first; Convert assumes the
// schema is valid and only re-checks the domain invariants.
func Convert(schema *ContractSchema) (*domain.Contract, error) {
	dev := schema.Developer
	c := &domain.Contract{
		Reference: strings.TrimSpace(schema.Reference),
		Developer: domain.Party{
			Name:         dev.Name,
			Nickname:     dev.Nickname,
			Company:      dev.Company,
			Address:      dev.Address,
			RateKind:     domain.RateKind(dev.RateKind),
			FeedbackDays: domain.IntFromPtrWithDefault(0, dev.FeedbackDays),
			PaymentDays:  domain.IntFromPtrWithDefault(0, dev.PaymentDueDays),
			PaymentTerms: dev.PaymentMethod,
			Interest:     domain.Float64FromPtrWithDefault(0, dev.Interest),
			Jurisdiction: dev.Jurisdiction,
		},
		Client: domain.Party{
			Name:    schema.Client.Name,
			Company: schema.Client.Company,
			Contact: schema.Client.Contact,
			Address: schema.Client.Address,
		},
		Project: domain.Project{
			Name:  schema.Project.Name,
			Type:  strings.TrimSpace(schema.Project.Type),
			Tasks: append([]string(nil), schema.Project.Tasks...),
		},
	}
	if schema.Project.Currency != nil {
		c.Project.Currency = strings.TrimSpace(*schema.Project.Currency)
	}
	if dev.Rate != nil {
		rate, err := domain.AmountFromFloat("developer.rate", *dev.Rate)
		if err != nil {
			return nil, err
		}
		c.Developer.Rate = rate
	}

	phases := make([]domain.Phase, 0, len(schema.Project.Phases))
	for i, ph := range schema.Project.Phases {
		if ph.Phase == nil {
			return nil, domain.Missing(fmt.Sprintf("project.phases[%d].phase", i))
		}
		if ph.Cost == nil {
			return nil, domain.Missing(fmt.Sprintf("project.phases[%d].cost", i))
		}
		cost, err := domain.AmountFromFloat(fmt.Sprintf("project.phases[%d].cost", i), *ph.Cost)
		if err != nil {
			return nil, err
		}
		phases = append(phases, domain.Phase{
			Index:    *ph.Phase,
			Cost:     cost,
			Elements: append([]string(nil), ph.Elements...),
		})
	}
	sort.SliceStable(phases, func(i, j int) bool { return phases[i].Index < phases[j].Index })
	c.Project.Phases = phases

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads, validates and converts a contract file in one step. Every
// validation problem is reported, joined into a single error.
func Load(path string) (*domain.Contract, error) {
	schema, err := LoadSchema(path)
	if err != nil {
		return nil, err
	}
	return FromSchema(schema)
}

// FromSchema validates and converts an already parsed schema.
func FromSchema(schema *ContractSchema) (*domain.Contract, error) {
	if errs := ValidateSchema(schema); len(errs) > 0 {
		return nil, fmt.Errorf("invalid contract file: %w", errors.Join(errs...))
	}
	return Convert(schema)
}
