package analyzer

// ScoreRisk sums flag severities and brief-length penalties, capped at 100.
// briefLen is the character length of the raw brief. A brief shorter than
// 50 characters collects both length penalties.
func ScoreRisk(flags []RedFlag, briefLen int) int {
	score := 0
	for _, f := range flags {
		score += severityWeights[f.Severity]
	}

	if briefLen < shortBriefThreshold {
		score += shortBriefPenalty
	}
	if briefLen < veryShortBriefThreshold {
		score += veryShortBriefPenalty
	}

	if score > maxRiskScore {
		return maxRiskScore
	}
	return score
}

// RiskLevel buckets a risk score for display.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// LevelFor maps a score to its bucket: <=30 low, <=60 medium, otherwise high.
func LevelFor(score int) RiskLevel {
	switch {
	case score <= 30:
		return RiskLow
	case score <= 60:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// Summary is a one-line reading of the risk level.
func (l RiskLevel) Summary() string {
	switch l {
	case RiskLow:
		return "Low-risk project. The brief looks clear and well structured."
	case RiskMedium:
		return "Moderate-risk project. Some aspects need clarification."
	default:
		return "High-risk project. Many critical aspects to clarify before proceeding."
	}
}
