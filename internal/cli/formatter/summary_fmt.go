package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/devcontract/internal/contract"
	"github.com/alexanderramin/devcontract/internal/domain"
)

// FormatSummary renders the cost breakdown of a contract inside a box.
func FormatSummary(s *contract.SummaryResponse) string {
	var b strings.Builder

	b.WriteString(Bold(s.Title) + "\n\n")
	b.WriteString(Field("TYPE     ", TypeBadge(s.ProjectType)) + "\n")
	b.WriteString(Field("DEVELOPER", s.Developer) + "\n")
	b.WriteString(Field("CLIENT   ", s.Client) + "\n")
	b.WriteString(Field("CURRENCY ", s.Currency) + "\n")
	b.WriteString(Field("REFERENCE", s.Reference) + "\n")

	b.WriteString("\n")
	b.WriteString(Header("Cost breakdown"))
	b.WriteString("\n")

	rows := make([][]string, 0, len(s.Phases))
	for _, p := range s.Phases {
		label := p.Label
		elements := strconv.Itoa(p.ElementCount)
		if p.DownPayment {
			label = StyleGreen.Render(label)
			elements = Dim("--")
		}
		rows = append(rows, []string{label, domain.FormatMoney(p.Cost, s.Currency), elements})
	}

	table := Table{
		Headers:    []string{"PHASE", "COST", "ELEMENTS"},
		Rows:       rows,
		Footer:     []string{Bold("Total"), Bold(domain.FormatMoney(s.TotalCost, s.Currency)), ""},
		RightAlign: map[int]bool{1: true, 2: true},
	}
	b.WriteString(table.Render())
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("Due after down payment: %s", domain.FormatMoney(s.Balance(), s.Currency))))

	return RenderBox("Contract summary", b.String())
}
