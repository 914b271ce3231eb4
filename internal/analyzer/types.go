// Package analyzer turns a free-text client brief into a risk assessment.
//
// The engine is a single synchronous pass over the brief: red flags are
// detected from keyword families and structural gaps, the project is
// classified, a bounded risk score is computed, and estimates, questions and
// a reply email are generated from those results. Every stage is a pure
// function of its inputs; nothing here performs I/O.
package analyzer

// FlagType is the risk area a red flag belongs to.
type FlagType string

const (
	FlagBudget        FlagType = "budget"
	FlagTimeline      FlagType = "timeline"
	FlagScope         FlagType = "scope"
	FlagCommunication FlagType = "communication"
	FlagTechnical     FlagType = "technical"
)

// Severity grades how much a red flag contributes to the risk score.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Personality is the heuristic disposition label for the client.
type Personality string

const (
	PersonalityCollaborative Personality = "collaborative"
	PersonalityDifficult     Personality = "difficult"
	PersonalityNeutral       Personality = "neutral"
)

// Project categories returned by ClassifyProject.
const (
	CategoryWeb      = "web"
	CategoryMobile   = "mobile"
	CategoryBranding = "branding"
	CategoryDesign   = "design"
	CategorySaaS     = "saas"
	CategoryGeneral  = "general"
)

// RedFlag is a single detected risk signal.
type RedFlag struct {
	ID          string   `json:"id" yaml:"id"`
	Type        FlagType `json:"type" yaml:"type"`
	Severity    Severity `json:"severity" yaml:"severity"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Suggestion  string   `json:"suggestion" yaml:"suggestion"`
	Icon        string   `json:"icon" yaml:"icon"`
}

// TechnicalRequirement groups the technologies a project family implies.
type TechnicalRequirement struct {
	Category     string   `json:"category" yaml:"category"`
	Requirements []string `json:"requirements" yaml:"requirements"`
}

// ProjectAnalysis is the full report produced by Analyze.
type ProjectAnalysis struct {
	RedFlags              []RedFlag              `json:"redFlags" yaml:"redFlags"`
	TechnicalRequirements []TechnicalRequirement `json:"technicalRequirements" yaml:"technicalRequirements"`
	ProjectType           string                 `json:"projectType" yaml:"projectType"`
	ClientPersonality     Personality            `json:"clientPersonality" yaml:"clientPersonality"`
	RiskScore             int                    `json:"riskScore" yaml:"riskScore"`
	EstimatedHours        int                    `json:"estimatedHours" yaml:"estimatedHours"`
	SuggestedBudget       string                 `json:"suggestedBudget" yaml:"suggestedBudget"`
	Timeline              string                 `json:"timeline" yaml:"timeline"`
	SuggestedQuestions    []string               `json:"suggestedQuestions" yaml:"suggestedQuestions"`
	EmailTemplate         string                 `json:"emailTemplate" yaml:"emailTemplate"`
}

// Estimate is the effort/budget/timeline triple produced by Estimate.
type Estimate struct {
	Hours    int    `json:"hours"`
	Budget   string `json:"budget"`
	Timeline string `json:"timeline"`
}
