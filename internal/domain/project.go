package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// DownPaymentIndex is the phase index reserved for the up-front payment.
const DownPaymentIndex = 0

// Phase is a billable stage of the project. Phase 0 is the down payment and
// carries no work elements.
type Phase struct {
	Index    int
	Cost     decimal.Decimal
	Elements []string
}

type Project struct {
	Name     string
	Type     string
	Currency string
	Tasks    []string
	Phases   []Phase
}

// Contract bundles everything a generation run needs.
type Contract struct {
	Reference string
	Developer Party
	Client    Party
	Project   Project
}

// TotalCost sums phase costs in input order. Negative costs are rejected.
func TotalCost(phases []Phase) (decimal.Decimal, error) {
	total := decimal.Zero
	for i, ph := range phases {
		if ph.Cost.IsNegative() {
			return decimal.Zero, Invalid(fmt.Sprintf("project.phases[%d].cost", i), "must not be negative, got %s", FormatAmount(ph.Cost))
		}
		total = total.Add(ph.Cost)
	}
	return total, nil
}

// TotalCost returns the sum of all phase costs, down payment included.
func (p Project) TotalCost() (decimal.Decimal, error) {
	return TotalCost(p.Phases)
}

// DownPayment returns phase 0.
func (p Project) DownPayment() (Phase, error) {
	for _, ph := range p.Phases {
		if ph.Index == DownPaymentIndex {
			return ph, nil
		}
	}
	return Phase{}, Missing("project.phases[phase=0]")
}

// WorkPhases returns every phase except the down payment, ordered by index.
// The receiver's slice is not modified.
func (p Project) WorkPhases() []Phase {
	out := make([]Phase, 0, len(p.Phases))
	for _, ph := range p.Phases {
		if ph.Index != DownPaymentIndex {
			out = append(out, ph)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Validate checks the invariants the contract text relies on.
func (p Project) Validate() error {
	var errs []error

	if kind := strings.TrimSpace(p.Type); kind == "" {
		errs = append(errs, Missing("project.type"))
	} else if strings.ContainsAny(kind, " \t\n") {
		errs = append(errs, Invalid("project.type", "must be a single word, got %q", p.Type))
	}
	if strings.TrimSpace(p.Currency) == "" {
		errs = append(errs, Invalid("project.currency", "must not be empty"))
	}

	seen := make(map[int]bool, len(p.Phases))
	hasDown := false
	for i, ph := range p.Phases {
		prefix := fmt.Sprintf("project.phases[%d]", i)
		if ph.Index < 0 {
			errs = append(errs, Invalid(prefix+".phase", "must not be negative, got %d", ph.Index))
		}
		if seen[ph.Index] {
			errs = append(errs, Invalid(prefix+".phase", "duplicate phase %d", ph.Index))
		}
		seen[ph.Index] = true
		if ph.Cost.IsNegative() {
			errs = append(errs, Invalid(prefix+".cost", "must not be negative, got %s", FormatAmount(ph.Cost)))
		}
		if ph.Index == DownPaymentIndex {
			hasDown = true
			if len(ph.Elements) > 0 {
				errs = append(errs, Invalid(prefix+".elements", "the down payment phase cannot carry work elements"))
			}
		}
	}
	if !hasDown {
		errs = append(errs, Missing("project.phases[phase=0]"))
	}

	return errors.Join(errs...)
}

// Validate checks both parties and the project, reporting every problem.
func (c Contract) Validate() error {
	return errors.Join(
		c.Developer.ValidateDeveloper(),
		c.Client.ValidateClient(),
		c.Project.Validate(),
	)
}
