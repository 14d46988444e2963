package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Party is one side of the contract. The developer uses the billing fields
// (rate, windows, payment method, interest, jurisdiction); the client
// typically only carries its identity.
type Party struct {
	Name         string
	Nickname     string
	Company      string
	Contact      string
	Address      string
	Rate         decimal.Decimal
	RateKind     RateKind
	FeedbackDays int
	PaymentDays  int
	PaymentTerms string
	Interest     float64
	Jurisdiction string
}

// Aliases returns the names the party may be referred to by in the
// contract body: the nickname when set, then the trading name.
func (p Party) Aliases() []string {
	var out []string
	if nick := strings.TrimSpace(p.Nickname); nick != "" && nick != p.TradingName() {
		out = append(out, nick)
	}
	return append(out, p.TradingName())
}

// TradingName returns the company the party trades as, falling back to the
// party's own name for sole traders.
func (p Party) TradingName() string {
	return CoalesceStr(p.Company, p.Name)
}

// Representative returns the person who signs on behalf of the party.
func (p Party) Representative() string {
	return CoalesceStr(p.Contact, p.Name, p.Company)
}

// ValidateDeveloper checks the fields the contract text cannot do without.
func (p Party) ValidateDeveloper() error {
	if strings.TrimSpace(p.Name) == "" {
		return Missing("developer.name")
	}
	if p.FeedbackDays < 0 {
		return Invalid("developer.feedback_days", "must not be negative, got %d", p.FeedbackDays)
	}
	if p.PaymentDays < 0 {
		return Invalid("developer.payment_due_days", "must not be negative, got %d", p.PaymentDays)
	}
	if !IsFinite(p.Interest) {
		return Invalid("developer.interest", "must be a finite number, got %v", p.Interest)
	}
	if p.Interest < 0 {
		return Invalid("developer.interest", "must not be negative, got %s", FormatNumber(p.Interest))
	}
	if p.Rate.IsNegative() {
		return Invalid("developer.rate", "must not be negative, got %s", FormatAmount(p.Rate))
	}
	if !p.RateKind.Valid() {
		return Invalid("developer.rate_kind", "unknown rate kind %q", p.RateKind)
	}
	return nil
}

// ValidateClient checks that the client can be named in the contract.
func (p Party) ValidateClient() error {
	if strings.TrimSpace(p.Company) == "" && strings.TrimSpace(p.Name) == "" {
		return Missing("client.company")
	}
	return nil
}
