package builder

import (
	"strings"
	"testing"

	"github.com/alexanderramin/devcontract/internal/document"
	"github.com/alexanderramin/devcontract/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// paragraphText flattens every paragraph line in nodes.
func paragraphText(nodes []document.Node) string {
	var parts []string
	for _, n := range nodes {
		if p, ok := n.(document.Paragraph); ok {
			parts = append(parts, p.Lines...)
		}
	}
	return strings.Join(parts, "\n")
}

func TestFixedSections_StartWithTheirHeading(t *testing.T) {
	tests := []struct {
		name    string
		nodes   []document.Node
		heading string
	}{
		{"agreements", BuildAgreementsSection(), HeadingAgreements},
		{"cancellation", BuildCancellationSections(), HeadingCancellation},
		{"legal", BuildLegalSection(), HeadingLegal},
		{"copyright", BuildCopyrightSection(), HeadingCopyright},
		{"display", BuildDisplaySection(), HeadingDisplay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotEmpty(t, tt.nodes)
			assert.Equal(t, document.H(2, tt.heading), tt.nodes[0])
			assert.Equal(t, 1, document.CountHeadings(tt.nodes, 0))
		})
	}
}

func TestAgreementsAndCancellation_HaveTwoLists(t *testing.T) {
	for _, nodes := range [][]document.Node{BuildAgreementsSection(), BuildCancellationSections()} {
		lists := 0
		for _, n := range nodes {
			if l, ok := n.(document.List); ok {
				lists++
				assert.NotEmpty(t, l.Items)
			}
		}
		assert.Equal(t, 2, lists)
	}
}

func TestBuildDetailsSection_Interpolates(t *testing.T) {
	c := testutil.NewTestContract(testutil.WithProjectType("mobile"))
	c.Developer.FeedbackDays = 9

	nodes := BuildDetailsSection(c.Developer, c.Project)
	assert.Equal(t, document.H(2, HeadingDetails), nodes[0])

	text := paragraphText(nodes)
	assert.Contains(t, text, "mobile")
	assert.Contains(t, text, "within 9 days")
}

func TestBuildSmallPrintSection_Jurisdiction(t *testing.T) {
	with := paragraphText(BuildSmallPrintSection(testutil.NewTestContract(testutil.WithJurisdiction("British Columbia")).Developer))
	assert.True(t, strings.HasSuffix(with, "legal document under exclusive jurisdiction of British Columbia."))

	without := paragraphText(BuildSmallPrintSection(testutil.NewTestContract().Developer))
	assert.True(t, strings.HasSuffix(without, "Although the language is simple, the intentions are serious and this contract is a legal document."))
	assert.NotContains(t, without, "jurisdiction")
}

func TestBuildSignatureSection(t *testing.T) {
	c := testutil.NewTestContract()
	nodes := BuildSignatureSection(c.Developer, c.Client)

	assert.Equal(t, document.H(2, HeadingSignatures), nodes[0])
	text := paragraphText(nodes)
	assert.Contains(t, text, "Signed by John Smith on behalf of the client (Placeholder Inc.):")
	assert.Contains(t, text, "Signed by Gabriel Dunn on behalf of the developer (Gabe Dunn Development):")
	assert.Contains(t, text, "Date: \t\t\t\t\t\t\t\t\t\t_____________________")
	assert.Equal(t, 2+1, strings.Count(text, signatureBlank))
}
