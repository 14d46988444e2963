package builder

import "github.com/alexanderramin/devcontract/internal/document"

var clientCancellation = []string{
	"I will retain your down payment.",
	"I will retain the payments for each of the completed phases.",
	"If I am working on a phase that has not yet been completed, that phase will be considered completed and as such I " +
		"will receive full payment for it as a \"kill fee\".",
	"The \"kill fee\" will be considered the final payment for the project.",
}

var developerCancellation = []string{
	"I will retain your down payment.",
	"I will retain the payments for each of the completed phases.",
	"If I am working on a phase that has not yet been completed, that phase will be disregarded, and as such you will " +
		"not be required to pay for any work done on that phase.",
	"The payment for the last completed phase will be considered the final payment for the project.",
}

// BuildCancellationSections emits what happens when either side walks away.
func BuildCancellationSections() []document.Node {
	return []document.Node{
		section(HeadingCancellation),
		document.P("If you wish to cancel this Agreement:"),
		document.UL(clientCancellation...),
		document.P("If I wish to cancel this Agreement:"),
		document.UL(developerCancellation...),
	}
}
