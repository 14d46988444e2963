package testutil

import (
	"github.com/alexanderramin/devcontract/internal/domain"
	"github.com/shopspring/decimal"
)

// Amount builds a money value from a literal.
func Amount(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

// Contract options
type ContractOption func(*domain.Contract)

func WithReference(ref string) ContractOption {
	return func(c *domain.Contract) {
		c.Reference = ref
	}
}

func WithProjectType(kind string) ContractOption {
	return func(c *domain.Contract) {
		c.Project.Type = kind
	}
}

func WithCurrency(cur string) ContractOption {
	return func(c *domain.Contract) {
		c.Project.Currency = cur
	}
}

func WithTasks(tasks ...string) ContractOption {
	return func(c *domain.Contract) {
		c.Project.Tasks = tasks
	}
}

// WithPhases replaces every phase, down payment included.
func WithPhases(phases ...domain.Phase) ContractOption {
	return func(c *domain.Contract) {
		c.Project.Phases = phases
	}
}

// WithDownPaymentOnly keeps phase 0 and drops every work phase.
func WithDownPaymentOnly(cost float64) ContractOption {
	return func(c *domain.Contract) {
		c.Project.Phases = []domain.Phase{{Index: 0, Cost: Amount(cost)}}
	}
}

func WithHourlyRate(rate float64) ContractOption {
	return func(c *domain.Contract) {
		c.Developer.Rate = Amount(rate)
		c.Developer.RateKind = domain.RateHourly
	}
}

func WithNickname(nick string) ContractOption {
	return func(c *domain.Contract) {
		c.Developer.Nickname = nick
	}
}

func WithJurisdiction(j string) ContractOption {
	return func(c *domain.Contract) {
		c.Developer.Jurisdiction = j
	}
}

// NewTestContract returns the placeholder contract: Gabriel Dunn developing a
// web project for Placeholder Inc. in four phases of 1000 CAD.
func NewTestContract(opts ...ContractOption) *domain.Contract {
	c := &domain.Contract{
		Developer: domain.Party{
			Name:         "Gabriel Dunn",
			Company:      "Gabe Dunn Development",
			FeedbackDays: 3,
			PaymentDays:  7,
			PaymentTerms: "E-Transfer",
			Interest:     5,
		},
		Client: domain.Party{
			Company: "Placeholder Inc.",
			Contact: "John Smith",
			Address: "123 Fake Address Lane",
		},
		Project: domain.Project{
			Name:     "Placeholder Project",
			Type:     "web",
			Currency: "CAD",
			Tasks:    []string{"Design and develop a web application."},
			Phases: []domain.Phase{
				{Index: 0, Cost: Amount(1000)},
				{Index: 1, Cost: Amount(1000), Elements: []string{"Project setup.", "Initial mockups", "Initial layout."}},
				{Index: 2, Cost: Amount(1000), Elements: []string{"Basic application functionality.", "Content creation and input.", "Initial styling."}},
				{Index: 3, Cost: Amount(1000), Elements: []string{"Finalize functionality.", "Finalize content.", "Finalize layout.", "Finalize styling."}},
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
