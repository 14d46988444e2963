// Package builder assembles the contract body from a domain.Contract.
//
// Every function here is pure: the same contract always yields the same
// node sequence, and inputs are never modified.
package builder

import (
	"fmt"

	"github.com/alexanderramin/devcontract/internal/document"
	"github.com/alexanderramin/devcontract/internal/domain"
)

// Section headings, in document order.
const (
	HeadingSummary      = "Summary"
	HeadingAgreements   = "What Do Both Parties Agree To?"
	HeadingDetails      = "Getting Down to the Nitty Gritty"
	HeadingCancellation = "Cancelling this Contract"
	HeadingLegal        = "Legal Stuff"
	HeadingCopyright    = "Intellectual Property Rights"
	HeadingDisplay      = "Displaying my Work"
	HeadingPhases       = "Project Phases"
	HeadingPayments     = "Payments"
	HeadingSmallPrint   = "But Where's All the Horrible Small Print?"
	HeadingSignatures   = "The Dotted Line"
)

// SectionHeadings lists the level-2 headings of an assembled contract.
var SectionHeadings = []string{
	HeadingSummary,
	HeadingAgreements,
	HeadingDetails,
	HeadingCancellation,
	HeadingLegal,
	HeadingCopyright,
	HeadingDisplay,
	HeadingPhases,
	HeadingPayments,
	HeadingSmallPrint,
	HeadingSignatures,
}

const (
	titleLevel   = 1
	sectionLevel = 2
	phaseLevel   = 3
)

// Assemble validates c and returns the full contract body.
func Assemble(c domain.Contract) ([]document.Node, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validating contract: %w", err)
	}

	summary, err := BuildSummarySection(c)
	if err != nil {
		return nil, err
	}
	payments, err := BuildPaymentsSection(c.Project.Phases, c.Developer, c.Project.Currency)
	if err != nil {
		return nil, err
	}

	sections := [][]document.Node{
		summary,
		BuildAgreementsSection(),
		BuildDetailsSection(c.Developer, c.Project),
		BuildCancellationSections(),
		BuildLegalSection(),
		BuildCopyrightSection(),
		BuildDisplaySection(),
		BuildPhasesSection(c.Project.Phases, c.Project.Currency),
		payments,
		BuildSmallPrintSection(c.Developer),
		BuildSignatureSection(c.Developer, c.Client),
	}

	size := 0
	for _, s := range sections {
		size += len(s)
	}
	nodes := make([]document.Node, 0, size)
	for _, s := range sections {
		nodes = append(nodes, s...)
	}
	return nodes, nil
}

func section(title string) document.Heading {
	return document.H(sectionLevel, title)
}
