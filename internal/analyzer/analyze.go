package analyzer

// Analyze runs the full pipeline over a raw brief. It never fails: an empty
// or very short brief simply collects the maximal structural penalties.
//
// The mode is accepted for forward compatibility and does not change the
// report. Flag ids come from a per-call counter, so two calls with the same
// brief return identical reports.
func Analyze(brief string, mode Mode) ProjectAnalysis {
	_ = mode

	normalized := Normalize(brief)
	rawLen := briefLength(brief)

	flags := detectRedFlags(normalized, &idSequence{})
	category := ClassifyProject(normalized)
	personality := ClassifyPersonality(normalized)
	score := ScoreRisk(flags, rawLen)
	estimate := EstimateEffort(category, rawLen, score)

	return ProjectAnalysis{
		RedFlags:              flags,
		TechnicalRequirements: ExtractRequirements(normalized, category),
		ProjectType:           category,
		ClientPersonality:     personality,
		RiskScore:             score,
		EstimatedHours:        estimate.Hours,
		SuggestedBudget:       estimate.Budget,
		Timeline:              estimate.Timeline,
		SuggestedQuestions:    GenerateQuestions(flags, category),
		EmailTemplate:         ComposeEmail(category, flags),
	}
}
