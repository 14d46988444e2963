package builder

import (
	"fmt"

	"github.com/alexanderramin/devcontract/internal/document"
	"github.com/alexanderramin/devcontract/internal/domain"
	"github.com/shopspring/decimal"
)

// FinalReviewHeading closes the phase list. It has no fixed cost.
const FinalReviewHeading = "Final Review & Amendments"

var phaseReviewItems = []string{
	"Feedback on phase.",
	"Testing of phase and integration with previous phases.",
	"Amendments.",
	"Testing of amendments.",
}

var finalReviewItems = []string{
	"Feedback on entire project.",
	"Testing of entire project.",
	"Amendments.",
	"Final review and feedback.",
	"Approval.",
}

// PhaseCost returns the blockquote text for a phase, e.g. "Cost: $1000 CAD".
func PhaseCost(cost decimal.Decimal, currency string) string {
	return "Cost: " + domain.FormatMoney(cost, currency)
}

// BuildPhasesSection emits one block per work phase in increasing index
// order, then the final review block. The down payment phase is skipped.
func BuildPhasesSection(phases []domain.Phase, currency string) []document.Node {
	work := domain.Project{Phases: phases}.WorkPhases()

	nodes := make([]document.Node, 0, 1+3*(len(work)+1))
	nodes = append(nodes, section(HeadingPhases))
	for _, ph := range work {
		items := make([]string, 0, len(ph.Elements)+len(phaseReviewItems))
		items = append(items, ph.Elements...)
		items = append(items, phaseReviewItems...)
		nodes = append(nodes,
			document.H(phaseLevel, fmt.Sprintf("Phase %d", ph.Index)),
			document.Quote(PhaseCost(ph.Cost, currency)),
			document.UL(items...),
		)
	}
	nodes = append(nodes,
		document.H(phaseLevel, FinalReviewHeading),
		document.Quote("Cost: Subject to change based on changes & amendments."),
		document.UL(finalReviewItems...),
	)
	return nodes
}
