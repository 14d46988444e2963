package builder

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/devcontract/internal/document"
	"github.com/alexanderramin/devcontract/internal/domain"
)

const signatureBlank = "_____________________"

var smallPrintParagraphs = []string{
	"Just like a parking ticket, neither of us can transfer this contract to anyone else without the other's " +
		"permission.",
	"We both agree that we'll adhere to all relevant laws and regulations in relation to our activities under this " +
		"contract and not to cause the other to breach any relevant laws or regulations.",
	"If under any circumstance either party is required to obtain legal counsel or services in order to enforce any " +
		"part of this contract, the offending party will be required to reimburse all expenses made in effort to uphold " +
		"these terms, including, but not limited to court fees, lawyer fees, and travel expenses related to this effort.",
	"This contract stays in place and need not be renewed. If for some reason one part of this contract becomes " +
		"invalid or unenforceable, the remaining parts of it remain in place.",
}

// BuildSmallPrintSection emits the closing terms, ending with the governing
// jurisdiction when the developer names one.
func BuildSmallPrintSection(dev domain.Party) []document.Node {
	closing := "Although the language is simple, the intentions are serious and this contract is a legal document"
	if j := strings.TrimSpace(dev.Jurisdiction); j != "" {
		closing += " under exclusive jurisdiction of " + j
	}
	closing += "."

	lines := make([]string, 0, len(smallPrintParagraphs)+1)
	lines = append(lines, smallPrintParagraphs...)
	lines = append(lines, closing)

	return []document.Node{
		section(HeadingSmallPrint),
		document.P(lines...),
	}
}

// BuildSignatureSection emits the signature and date lines.
func BuildSignatureSection(dev, client domain.Party) []document.Node {
	return []document.Node{
		section(HeadingSignatures),
		document.P(fmt.Sprintf("Signed by %s on behalf of the client (%s): \t\t%s",
			client.Representative(), client.TradingName(), signatureBlank)),
		document.P(fmt.Sprintf("Signed by %s on behalf of the developer (%s): \t%s",
			dev.Name, dev.TradingName(), signatureBlank)),
		document.P("Date: " + strings.Repeat("\t", 10) + signatureBlank),
		document.P("Everyone should sign above and keep at least one copy for their own records."),
	}
}
