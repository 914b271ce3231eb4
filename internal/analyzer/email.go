package analyzer

import (
	"fmt"
	"strings"
)

// ComposeEmail renders the reply template. The "points to clarify" block
// lists one bullet per flag, in detection order, and is omitted when there
// are no flags.
func ComposeEmail(category string, flags []RedFlag) string {
	var b strings.Builder

	b.WriteString("Dear Client,\n\n")
	fmt.Fprintf(&b, "Thank you for contacting me about your %s project.\n\n", category)
	b.WriteString("I have reviewed your request and I am interested in working with you. ")
	b.WriteString("To prepare an accurate proposal, I would need a few clarifications:\n\n")

	if len(flags) > 0 {
		b.WriteString("⚠️ Points to clarify:\n")
		for _, f := range flags {
			fmt.Fprintf(&b, "• %s\n", f.Suggestion)
		}
		b.WriteString("\n")
	}

	b.WriteString("I would be happy to set up a call to discuss the project details.\n\n")
	b.WriteString("Best regards,\n")
	b.WriteString("[Your name]")

	return b.String()
}
