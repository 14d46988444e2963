package builder

import (
	"fmt"

	"github.com/alexanderramin/devcontract/internal/document"
	"github.com/alexanderramin/devcontract/internal/domain"
)

// BuildDetailsSection emits the working-practice details: design process,
// content, assets, testing, support and revisions.
func BuildDetailsSection(dev domain.Party, project domain.Project) []document.Node {
	paragraphs := []string{
		"**Design**",
		"I create designs that adapt to the capabilities of many devices and screen sizes. I create them iteratively and " +
			"use predominantly HTML, CSS, and JS so I won't waste time mocking up every template as a static visual. I may " +
			"use visuals to indicate a creative direction (colour, texture, and typography).",
		"You'll have plenty of opportunities to review my work and provide feedback. I'll either share a Dropbox folder, " +
			"Google Drive folder, or GitHub repository or development site with you and we'll have regular contact by either " +
			"email or Discord.",
		"If - at any stage - you change your mind about what you want delivered or aren't happy with the direction my " +
			"work is going, you'll pay me in accordance with the termination section, and may terminate this contract.",
		"**Text Content**",
		fmt.Sprintf("Unless agreed upon separately, I'm not responsible for inputting text or images into your content management "+
			"system or creating every page in your %s application. I can provide outsourced professional "+
			"copy writing and editing services, so if you'd like that, I can provide a separate estimate.", project.Type),
		"**Graphics and Photographs**",
		"You should supply graphic files in an editable, vector digital format. You should supply photographs in a high " +
			"resolution (preferably original size) digital format. If you choose to buy stock photographs, I can suggest stock " +
			"libraries. If you'd like me to search for photographs for you, I can provide a separate estimate.",
		"**HTML, CSS, and JS**",
		"I deliver pages in HTML for markup, CSS stylesheets for styling, and unobtrusive JS for behaviors and the " +
			"framework.",
		"**Browser Testing**",
		"Browser testing no longer means attempting to make a website look the same in browsers of different " +
			"capabilities or on devices with different size screens. It does mean ensuring that a person's experience of a " +
			"design should be appropriate to the capabilities of a browser or device.",
		"I test my work in current versions of major desktop browsers including those made by Google (Chrome/Chromium), " +
			"Mozilla (Firefox), and Vivaldi. I won't test in older or \"problem browsers\" such as Microsoft's Internet " +
			"Explorer and Edge. If you need an enhanced design for an older or \"problem browser\", I can provide a separate " +
			"estimate for that.",
		"**Mobile Browser Testing**",
		"Testing using popular smaller screen devices is essential in ensuring that a person's experience of a design is " +
			"appropriate to the capabilities of the device they're using. I test my designs in Google Chrome on the latest " +
			"version of android, and can additionally test with Safari and Google Chrome on the latest version of iOS.",
		"I won't test in Opera Mini/Mobile, specific android devices, or other mobile browsers unless we agreed " +
			"separately. If you need me to test using these, I can provide a separate estimate.",
		"**Technical Support**",
		"I'm not a web hosting company so I don't offer support for web hosting, email, or other services relating to " +
			"hosting. You may already have professional hosting and you might even manage that hosting in-house; if you do, " +
			"great. If you don't, I can recommend one of my preferred hosting providers. I can even set up your site on a " +
			"server, plus any statistics software such as Google Analytics and will provide a separate estimate for that. " +
			"Then, the updates to, and management of that server will be up to you. I can provide the said updates and " +
			"management, and for that will provide a separate estimate.",
		"**Search Engine Optimization (SEO)**",
		"I don't guarantee improvements to your website's search engine ranking, but the pages that I develop are " +
			"accessible to and indexable by search engines.",
		"**Changes and Revisions**",
		fmt.Sprintf("After each phase of development, I will send the current project to you for review. You agree to get back to me "+
			"within %d days. If not, the phase will be considered satisfactorily completed.", dev.FeedbackDays),
		"I don't want to limit your ability to change your mind. The price at the beginning (and end) of this contract is " +
			"based on the amount of time that I estimate I'll need to accomplish everything you've told me you want to " +
			"achieve, but I'm happy to be flexible. If you want to change your mind or add anything new, that won't be a " +
			"problem as I'll just provide a separate estimate for the additional time. To make changes, you must bring them " +
			"up during the review of each phase of the project, or at the final review.",
	}

	return []document.Node{
		section(HeadingDetails),
		document.P(paragraphs...),
	}
}
