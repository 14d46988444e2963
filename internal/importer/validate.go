package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/devcontract/internal/domain"
)

// ValidateSchema checks the contract file before conversion.
// Returns a slice of all validation errors found; each wraps
// domain.ErrMissingField or domain.ErrInvalidValue.
func ValidateSchema(schema *ContractSchema) []error {
	var errs []error

	errs = append(errs, validateDeveloper(&schema.Developer)...)
	errs = append(errs, validateClient(&schema.Client)...)
	errs = append(errs, validateProject(&schema.Project)...)

	return errs
}

func validateDeveloper(d *DeveloperSchema) []error {
	var errs []error

	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, domain.Missing("developer.name"))
	}
	if d.FeedbackDays == nil {
		errs = append(errs, domain.Missing("developer.feedback_days"))
	} else if *d.FeedbackDays < 0 {
		errs = append(errs, domain.Invalid("developer.feedback_days", "must not be negative, got %d", *d.FeedbackDays))
	}
	if d.PaymentDueDays == nil {
		errs = append(errs, domain.Missing("developer.payment_due_days"))
	} else if *d.PaymentDueDays < 0 {
		errs = append(errs, domain.Invalid("developer.payment_due_days", "must not be negative, got %d", *d.PaymentDueDays))
	}
	if strings.TrimSpace(d.PaymentMethod) == "" {
		errs = append(errs, domain.Missing("developer.payment_method"))
	}
	if d.Interest == nil {
		errs = append(errs, domain.Missing("developer.interest"))
	} else if err := checkNonNegative("developer.interest", *d.Interest); err != nil {
		errs = append(errs, err)
	}
	if d.Rate != nil {
		if err := checkNonNegative("developer.rate", *d.Rate); err != nil {
			errs = append(errs, err)
		}
	}
	if !domain.RateKind(d.RateKind).Valid() {
		errs = append(errs, domain.Invalid("developer.rate_kind", "invalid value %q (expected hourly or fixed)", d.RateKind))
	}

	return errs
}

func validateClient(c *ClientSchema) []error {
	if strings.TrimSpace(c.Company) == "" && strings.TrimSpace(c.Name) == "" {
		return []error{domain.Missing("client.company")}
	}
	return nil
}

func validateProject(p *ProjectSchema) []error {
	var errs []error

	if strings.TrimSpace(p.Type) == "" {
		errs = append(errs, domain.Missing("project.type"))
	} else if strings.ContainsAny(strings.TrimSpace(p.Type), " \t\n") {
		errs = append(errs, domain.Invalid("project.type", "must be a single word, got %q", p.Type))
	}
	if p.Currency == nil {
		errs = append(errs, domain.Missing("project.currency"))
	} else if strings.TrimSpace(*p.Currency) == "" {
		errs = append(errs, domain.Invalid("project.currency", "must not be empty"))
	}

	errs = append(errs, validatePhases(p.Phases)...)

	return errs
}

func validatePhases(phases []PhaseSchema) []error {
	var errs []error

	seen := make(map[int]bool, len(phases))
	hasDown := false
	for i, ph := range phases {
		prefix := fmt.Sprintf("project.phases[%d]", i)

		if ph.Phase == nil {
			errs = append(errs, domain.Missing(prefix+".phase"))
		} else {
			idx := *ph.Phase
			switch {
			case idx < 0:
				errs = append(errs, domain.Invalid(prefix+".phase", "must not be negative, got %d", idx))
			case seen[idx]:
				errs = append(errs, domain.Invalid(prefix+".phase", "duplicate phase %d", idx))
			}
			seen[idx] = true
			if idx == domain.DownPaymentIndex {
				hasDown = true
				if len(ph.Elements) > 0 {
					errs = append(errs, domain.Invalid(prefix+".elements", "the down payment phase cannot carry work elements"))
				}
			}
		}

		if ph.Cost == nil {
			errs = append(errs, domain.Missing(prefix+".cost"))
		} else if err := checkNonNegative(prefix+".cost", *ph.Cost); err != nil {
			errs = append(errs, err)
		}
	}
	if !hasDown {
		errs = append(errs, domain.Missing("project.phases[phase=0]"))
	}

	return errs
}

// checkNonNegative rejects NaN, infinities and negative numbers. YAML
// accepts .nan and .inf as floats, so a decoded value can be either.
func checkNonNegative(field string, v float64) error {
	if !domain.IsFinite(v) {
		return domain.Invalid(field, "must be a finite number, got %v", v)
	}
	if v < 0 {
		return domain.Invalid(field, "must not be negative, got %s", domain.FormatNumber(v))
	}
	return nil
}
