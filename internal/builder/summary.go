package builder

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/devcontract/internal/document"
	"github.com/alexanderramin/devcontract/internal/domain"
)

// Title returns the document title, e.g. "Web Development Contract.".
func Title(projectType string) (string, error) {
	word, err := domain.Capitalize(projectType)
	if err != nil {
		return "", fmt.Errorf("project.type: %w", err)
	}
	return word + " Development Contract.", nil
}

// BuildSummarySection emits the title block and the summary: who is hiring
// whom, for which tasks, at what estimated price.
func BuildSummarySection(c domain.Contract) ([]document.Node, error) {
	title, err := Title(c.Project.Type)
	if err != nil {
		return nil, err
	}
	total, err := c.Project.TotalCost()
	if err != nil {
		return nil, err
	}

	dev, client := c.Developer, c.Client

	subtitle := fmt.Sprintf("**Between** %s\n\n**And** %s", dev.Name, client.TradingName())
	if c.Reference != "" {
		subtitle += fmt.Sprintf("\n\n**Reference** %s", c.Reference)
	}

	intro := []string{
		"I will always do my best to fulfil your needs and meet your expectations, but it's important to have things " +
			"written down so that we both know what is what, who should do what and what happens if something goes wrong. In " +
			"this contract you won't find any complicated legal terms or large passages of unreadable text. I have no desire " +
			"to trick you into signing something that you might later regret. What I do want is what's best for both parties, " +
			"now and in the future.",
		"So, in short;",
		fmt.Sprintf("You (%s), located at %s (\"you\", \"client\"), represented by %s, are "+
			"hiring me (%s) (%s) to:",
			client.TradingName(), client.Address, client.Representative(), dev.Name, developerAliases(dev)),
	}
	outro := []string{
		fmt.Sprintf("For the estimated total price of %s as outlined in our previous correspondence.",
			domain.FormatMoney(total, c.Project.Currency)),
		"Of course it's a little more complicated, but we'll get to that.",
	}

	nodes := []document.Node{
		document.H(titleLevel, title),
		document.Quote(subtitle),
		section(HeadingSummary),
		document.P(intro...),
	}
	if len(c.Project.Tasks) > 0 {
		nodes = append(nodes, document.UL(c.Project.Tasks...))
	}
	nodes = append(nodes, document.P(outro...))
	return nodes, nil
}

// developerAliases quotes every name the developer answers to, e.g.
// "I", "me", "developer", or "Gabe Dunn Development".
func developerAliases(dev domain.Party) string {
	names := append([]string{"I", "me", "developer"}, dev.Aliases()...)
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = `"` + n + `"`
	}
	last := len(quoted) - 1
	return strings.Join(quoted[:last], ", ") + ", or " + quoted[last]
}
