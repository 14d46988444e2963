package builder

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/devcontract/internal/document"
	"github.com/alexanderramin/devcontract/internal/domain"
)

// RemainingBalances returns the cost string of every work phase in index
// order, joined with ", ".
func RemainingBalances(phases []domain.Phase, currency string) string {
	work := domain.Project{Phases: phases}.WorkPhases()
	parts := make([]string, len(work))
	for i, ph := range work {
		parts[i] = domain.FormatMoney(ph.Cost, currency)
	}
	return strings.Join(parts, ", ")
}

// BuildPaymentsSection emits the payment schedule: total, down payment,
// per-phase balances and the developer's invoicing terms.
func BuildPaymentsSection(phases []domain.Phase, dev domain.Party, currency string) ([]document.Node, error) {
	total, err := domain.TotalCost(phases)
	if err != nil {
		return nil, err
	}
	down, err := domain.Project{Phases: phases}.DownPayment()
	if err != nil {
		return nil, err
	}

	paragraphs := []string{
		"I am sure you understand how important it is for a small business such as myself that you pay the invoices that " +
			"I send you promptly. As I'm also sure you'll want to stay friends, you agree to stick tight to the following " +
			"payment schedule.",
		fmt.Sprintf("The total estimated cost of the project is `%s`.", domain.FormatMoney(total, currency)),
		fmt.Sprintf("I will invoice for an initial down payment of %s once this agreement has been signed. "+
			"I will start work after receiving this payment.", domain.FormatMoney(down.Cost, currency)),
	}
	if balances := RemainingBalances(phases, currency); balances != "" {
		paragraphs = append(paragraphs,
			fmt.Sprintf("I will invoice for the remaining balance(s) (%s) after each of the respective phases "+
				"are completed as described.", balances))
	}
	paragraphs = append(paragraphs,
		fmt.Sprintf("I issue invoices electronically. My payment terms are %d days after the invoice is received by "+
			"%s. All proposals are quoted in %s and payments will be made at the equivalent "+
			"conversion rate at the date the transfer is made.", dev.PaymentDays, dev.PaymentTerms, currency),
		"You agree to pay all charges associated with international transfers of funds. The appropriate bank account "+
			"details will be provided either in the electronic invoice or in previous correspondence.",
	)
	if line := rateLine(dev, currency); line != "" {
		paragraphs = append(paragraphs, line)
	}
	paragraphs = append(paragraphs,
		fmt.Sprintf("I reserve the right to charge interest on all overdue debts at the rate of %s%% per month or part of a "+
			"month.", domain.FormatNumber(dev.Interest)))

	return []document.Node{
		section(HeadingPayments),
		document.P(paragraphs...),
	}, nil
}

func rateLine(dev domain.Party, currency string) string {
	if !dev.Rate.IsPositive() {
		return ""
	}
	switch dev.RateKind {
	case domain.RateFixed:
		return fmt.Sprintf("Work requested outside of the phases above is quoted at a fixed fee of %s per request.",
			domain.FormatMoney(dev.Rate, currency))
	default:
		return fmt.Sprintf("Work requested outside of the phases above is billed at %s per hour.",
			domain.FormatMoney(dev.Rate, currency))
	}
}
