package analyzer

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// idSequence hands out flag ids that are unique within one analysis run.
type idSequence struct {
	n int
}

func (s *idSequence) next(prefix string) string {
	s.n++
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

// Normalize lowercases the brief. No other preprocessing is applied.
func Normalize(brief string) string {
	return strings.ToLower(brief)
}

// DetectRedFlags scans a normalized brief and returns flags in discovery
// order. Every matching keyword yields its own flag, so one category can
// appear several times.
func DetectRedFlags(normalized string) []RedFlag {
	return detectRedFlags(normalized, &idSequence{})
}

func detectRedFlags(normalized string, ids *idSequence) []RedFlag {
	flags := []RedFlag{}

	for _, family := range riskKeywords {
		tmpl, ok := flagTemplates[FlagType(family.Name)]
		if !ok {
			continue
		}
		for _, kw := range family.Keywords {
			if strings.Contains(normalized, kw) {
				flags = append(flags, tmpl.emit(ids.next(family.Name+"-"+kw)))
			}
		}
	}

	if briefLength(normalized) < shortBriefThreshold {
		flags = append(flags, shortBriefTemplate.emit(ids.next("brief-short")))
	}

	if !containsAny(normalized, budgetMentions) {
		flags = append(flags, missingBudgetTemplate.emit(ids.next("no-budget")))
	}

	return flags
}

// briefLength counts characters, not bytes.
func briefLength(s string) int {
	return utf8.RuneCountInString(s)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func countHits(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
