package contract

import "github.com/shopspring/decimal"

// PhaseLine is one row of the cost breakdown.
type PhaseLine struct {
	Index        int
	Label        string
	Cost         decimal.Decimal
	ElementCount int
	DownPayment  bool
}

// SummaryResponse is the cost breakdown of a contract without rendering it.
type SummaryResponse struct {
	Title       string
	ProjectType string
	Developer   string
	Client      string
	Currency    string
	Phases      []PhaseLine
	TotalCost   decimal.Decimal
	Reference   string
}

// Balance returns the amount still due after the down payment.
func (s *SummaryResponse) Balance() decimal.Decimal {
	balance := decimal.Zero
	for _, p := range s.Phases {
		if !p.DownPayment {
			balance = balance.Add(p.Cost)
		}
	}
	return balance
}
