package builder

import "github.com/alexanderramin/devcontract/internal/document"

var clientAgreements = []string{
	"That you have the authority to enter into this contract on behalf of yourself, your company, or your organization.",
	"To provide me with the assets and information I tell you I will need to complete the project.",
	"To do this when I ask and provide it in the formats I ask for.",
	"To review my work, provide feedback, and approval in a timely manner too.",
	"To be bound by any dates that we set together.",
	"To stick to the payment schedule set out at the end of this contract.",
}

var developerAgreements = []string{
	"That I have the experience and ability to perform the services that we have agreed upon.",
	"To carry out this all in a professional and timely manner.",
	"To endeavor to meet every deadline that's set.",
	"To respect the confidentiality of any information that you give me.",
}

// BuildAgreementsSection emits the obligations of each party.
func BuildAgreementsSection() []document.Node {
	return []document.Node{
		section(HeadingAgreements),
		document.P("As my client, you agree:"),
		document.UL(clientAgreements...),
		document.P("As the developer, I agree:"),
		document.UL(developerAgreements...),
	}
}
