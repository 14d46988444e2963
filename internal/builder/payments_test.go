package builder

import (
	"testing"

	"github.com/alexanderramin/devcontract/internal/document"
	"github.com/alexanderramin/devcontract/internal/domain"
	"github.com/alexanderramin/devcontract/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentLines(t *testing.T, c *domain.Contract) []string {
	t.Helper()
	nodes, err := BuildPaymentsSection(c.Project.Phases, c.Developer, c.Project.Currency)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, document.H(2, HeadingPayments), nodes[0])
	return nodes[1].(document.Paragraph).Lines
}

func TestBuildPaymentsSection_Default(t *testing.T) {
	lines := paymentLines(t, testutil.NewTestContract())
	assert.Contains(t, lines, "The total estimated cost of the project is `$4000 CAD`.")
	assert.Contains(t, lines, "I will invoice for an initial down payment of $1000 CAD once this agreement has been signed. "+
		"I will start work after receiving this payment.")
	assert.Contains(t, lines, "I will invoice for the remaining balance(s) ($1000 CAD, $1000 CAD, $1000 CAD) after each of "+
		"the respective phases are completed as described.")
	assert.Equal(t, "I reserve the right to charge interest on all overdue debts at the rate of 5% per month or part of a month.",
		lines[len(lines)-1])
}

func TestBuildPaymentsSection_DownPaymentOnly(t *testing.T) {
	lines := paymentLines(t, testutil.NewTestContract(testutil.WithDownPaymentOnly(750)))
	assert.Contains(t, lines, "The total estimated cost of the project is `$750 CAD`.")
	for _, l := range lines {
		assert.NotContains(t, l, "remaining balance")
	}
}

func TestBuildPaymentsSection_HourlyRate(t *testing.T) {
	lines := paymentLines(t, testutil.NewTestContract(testutil.WithHourlyRate(85)))
	assert.Contains(t, lines, "Work requested outside of the phases above is billed at $85 CAD per hour.")
}

func TestBuildPaymentsSection_NegativeCost(t *testing.T) {
	c := testutil.NewTestContract()
	_, err := BuildPaymentsSection([]domain.Phase{{Index: 0, Cost: testutil.Amount(-1)}}, c.Developer, "CAD")
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestBuildPaymentsSection_MissingDownPayment(t *testing.T) {
	c := testutil.NewTestContract()
	_, err := BuildPaymentsSection([]domain.Phase{{Index: 1, Cost: testutil.Amount(10)}}, c.Developer, "CAD")
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestRemainingBalances(t *testing.T) {
	phases := []domain.Phase{
		{Index: 2, Cost: testutil.Amount(2500.5)},
		{Index: 0, Cost: testutil.Amount(1000)},
		{Index: 1, Cost: testutil.Amount(1200)},
	}
	assert.Equal(t, "$1200 EUR, $2500.50 EUR", RemainingBalances(phases, "EUR"))
	assert.Empty(t, RemainingBalances([]domain.Phase{{Index: 0}}, "EUR"))
}

func TestBuildPaymentsSection_CentAmounts(t *testing.T) {
	lines := paymentLines(t, testutil.NewTestContract(testutil.WithPhases(
		domain.Phase{Index: 0, Cost: testutil.Amount(1000.20)},
		domain.Phase{Index: 1, Cost: testutil.Amount(1000.10), Elements: []string{"a"}},
	)))
	assert.Contains(t, lines, "The total estimated cost of the project is `$2000.30 CAD`.")
	assert.Contains(t, lines, "I will invoice for an initial down payment of $1000.20 CAD once this agreement has been signed. "+
		"I will start work after receiving this payment.")

	lines = paymentLines(t, testutil.NewTestContract(testutil.WithPhases(
		domain.Phase{Index: 0, Cost: testutil.Amount(0.1)},
		domain.Phase{Index: 1, Cost: testutil.Amount(0.2), Elements: []string{"a"}},
	)))
	assert.Contains(t, lines, "The total estimated cost of the project is `$0.30 CAD`.")
	for _, l := range lines {
		assert.NotContains(t, l, "0000000")
	}
}

func TestBuildPaymentsSection_FractionalInterest(t *testing.T) {
	c := testutil.NewTestContract()
	c.Developer.Interest = 1.5
	lines := paymentLines(t, c)
	assert.Equal(t, "I reserve the right to charge interest on all overdue debts at the rate of 1.5% per month or part of a month.",
		lines[len(lines)-1])
}
