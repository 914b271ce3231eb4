package analyzer

import (
	"fmt"
	"strings"
)

var baseQuestions = []string{
	"What is the available budget for this project?",
	"What is the ideal timeline for completion?",
	"Who is the target audience?",
}

const technicalQuestion = "Do you have specific technical preferences?"

var categoryQuestions = map[string][]string{
	CategoryWeb: {
		"Does the site need to be multilingual?",
		"Is integration with existing systems required?",
	},
	CategoryMobile: {
		"Does the app need to work offline?",
		"Is integration with external APIs required?",
	},
}

// GenerateQuestions returns the base questions followed by follow-ups
// driven by the flags and the category. Order is significant.
func GenerateQuestions(flags []RedFlag, category string) []string {
	questions := append([]string(nil), baseQuestions...)

	// No keyword family emits technical flags today, so this branch only
	// fires for flag lists built elsewhere.
	for _, f := range flags {
		if f.Type == FlagTechnical {
			questions = append(questions, technicalQuestion)
			break
		}
	}

	questions = append(questions, categoryQuestions[category]...)
	return questions
}

// NumberedQuestions renders questions as a "1. ...\n2. ..." block for
// copying in one go.
func NumberedQuestions(questions []string) string {
	lines := make([]string, len(questions))
	for i, q := range questions {
		lines[i] = fmt.Sprintf("%d. %s", i+1, q)
	}
	return strings.Join(lines, "\n")
}
