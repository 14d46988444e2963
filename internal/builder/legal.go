package builder

import "github.com/alexanderramin/devcontract/internal/document"

var legalParagraphs = []string{
	"I will carry out my work in accordance with good industry practice and at the standard expected from a suitably " +
		"qualified person with relevant experience. That said, I can't guarantee that my work will be error-free, and so " +
		"I can't be liable to you or any third party for any damages including lost profits, lost savings, or other " +
		"incidental, consequential, or special damages, even if I've been advised of them.",
	"Your liability to me will also be limited to the amount of fees payable under this contract and you won't be " +
		"liable to me or any third party for any damages, including lost profits, lost savings, or other incidental, " +
		"consequential, or special damages, even if I've advised you of them.",
	"You expressly acknowledge that although you are free to engage others to perform services of the same or similar " +
		"nature to those provided by me, I must be notified of such engagements, and in the occurrence of an engagement " +
		"of this nature I retain the right to terminate my involvement in the project and consider it equivalent to - " +
		"under the terms of this contract - you cancelling the agreement, and as such I will retain the right to receive " +
		"the same \"kill fee\" referred to in the previous cancellation section. Additionally, I shall be entitled to offer " +
		"and provide my services to others, solicit other clients, and otherwise advertise the services offered by me.",
	"Finally, if any provision of this contract shall be unlawful, void, or for any reason unenforceable, then that " +
		"provision shall be deemed severable from this contract and shall not affect the validity and enforceability of " +
		"any remaining provisions.",
}

var copyrightParagraphs = []string{
	"Just to be clear, \"Intellectual property rights\" means all patents, rights to inventions, copyright, (including " +
		"rights in software), and related rights, trademarks, service marks, get up and trade names, internet domain " +
		"names, rights to goodwill or to sue for passing off, rights in designs, database rights, rights in confidential " +
		"information, (including know-how), and any other intellectual property rights, in each case whether registered or " +
		"unregistered and including all applications (or rights to apply) for, and renewals or extensions of such, and all " +
		"similar or equivalent rights or forms of protection which subsist or shall subsist now or in the future in any " +
		"part of the world.",
	"First, you guarantee that all elements of text, images, other artwork that you provide are either owned by your " +
		"good selves, or that you've permission to use them. When you provide text, images, or other artwork to me, you " +
		"agree to protect me from any claim by a third party that I'm using their intellectual property.",
	"I guarantee that all elements of the work I deliver to you are either owned by me or I've obtained permission to " +
		"provide them to you.",
	"By default, all intellectual properties are solely owned by me, and will only be assigned to you upon the " +
		"final payment for the project. They will be assigned as follows:",
	"You'll own the website I design for you plus the visual elements that I create for it. I'll give you the source " +
		"files and finished files and you should keep them somewhere safe as I'm not required to keep a copy. You own all " +
		"intellectual property rights of text, images, site specification, and data you provided, unless someone else " +
		"owns them.",
	"I'll own any intellectual property rights I've developed prior to, or developed separately from this project " +
		"and not paid for by you. I'll own the unique combination of these elements that constitutes a complete design " +
		"and I'll license its use to you, exclusively and in perpetuity for this project only, unless we agree otherwise.",
	"In the event of the termination of this Agreement, the payment for the last complete phase will be considered the " +
		"final payment, and you will receive the agreed upon intellectual property rights for all of the completed " +
		"phases.",
}

const displayParagraph = "I love to show off my work, so I reserve the right to display all aspects of my creative " +
	"work, including sketches, work-in-progress designs, and the completed project on my portfolio and in articles on " +
	"websites, in magazine articles, and in books."

// BuildLegalSection emits the liability and severability paragraphs.
func BuildLegalSection() []document.Node {
	return []document.Node{
		section(HeadingLegal),
		document.P(legalParagraphs...),
	}
}

// BuildCopyrightSection emits the intellectual property terms.
func BuildCopyrightSection() []document.Node {
	return []document.Node{
		section(HeadingCopyright),
		document.P(copyrightParagraphs...),
	}
}

func BuildDisplaySection() []document.Node {
	return []document.Node{
		section(HeadingDisplay),
		document.P(displayParagraph),
	}
}
