package analyzer

// keywordFamily maps a set of trigger substrings to one label.
// Families are kept in slices, not maps, because match order is observable.
type keywordFamily struct {
	Name     string
	Keywords []string
}

// riskKeywords drives keyword red-flag detection. Family names are FlagType values.
var riskKeywords = []keywordFamily{
	{Name: string(FlagBudget), Keywords: []string{"economico", "low budget", "poco budget", "gratis", "baratto", "scambio"}},
	{Name: string(FlagTimeline), Keywords: []string{"urgente", "subito", "ieri", "asap", "rush", "veloce"}},
	{Name: string(FlagScope), Keywords: []string{"tutto", "completo", "full", "anche", "inoltre", "magari"}},
	{Name: string(FlagCommunication), Keywords: []string{"pretendo", "voglio", "deve", "obbligatorio", "non accetto"}},
}

// projectFamilies is evaluated in order; the first family with a hit wins.
var projectFamilies = []keywordFamily{
	{Name: CategoryWeb, Keywords: []string{"sito web", "website", "landing page", "e-commerce", "blog", "cms"}},
	{Name: CategoryMobile, Keywords: []string{"app mobile", "applicazione", "ios", "android", "react native", "flutter"}},
	{Name: CategoryBranding, Keywords: []string{"logo", "brand", "identità visiva", "corporate identity", "branding"}},
	{Name: CategoryDesign, Keywords: []string{"ui/ux", "design", "interfaccia", "grafica", "layout", "mockup"}},
	{Name: CategorySaaS, Keywords: []string{"saas", "dashboard", "piattaforma", "software", "gestionale"}},
}

var (
	difficultKeywords     = []string{"pretendo", "voglio", "deve", "obbligatorio", "non accetto"}
	collaborativeKeywords = []string{"collaborare", "insieme", "feedback", "suggerimenti"}

	budgetMentions = []string{"budget", "prezzo", "costo"}
	cmsMentions    = []string{"cms", "gestione contenuti"}
)

// flagTemplate is a red flag without its per-run id.
type flagTemplate struct {
	Type        FlagType
	Severity    Severity
	Title       string
	Description string
	Suggestion  string
	Icon        string
}

func (ft flagTemplate) emit(id string) RedFlag {
	return RedFlag{
		ID:          id,
		Type:        ft.Type,
		Severity:    ft.Severity,
		Title:       ft.Title,
		Description: ft.Description,
		Suggestion:  ft.Suggestion,
		Icon:        ft.Icon,
	}
}

// flagTemplates holds one template per flag type. The technical template is
// never produced by riskKeywords.
var flagTemplates = map[FlagType]flagTemplate{
	FlagBudget: {
		Type:        FlagBudget,
		Severity:    SeverityHigh,
		Title:       "Vague Budget",
		Description: `The client did not give a clear budget or used vague terms such as "cheap" or "reasonable".`,
		Suggestion:  "Ask for a specific budget range before preparing the proposal.",
		Icon:        "💰",
	},
	FlagTimeline: {
		Type:        FlagTimeline,
		Severity:    SeverityHigh,
		Title:       "Unrealistic Timeline",
		Description: "The client asks for delivery times that are too tight for the complexity of the project.",
		Suggestion:  "Propose a realistic timeline and explain why the time is needed.",
		Icon:        "⏰",
	},
	FlagScope: {
		Type:        FlagScope,
		Severity:    SeverityMedium,
		Title:       "Potential Scope Creep",
		Description: "The brief contains open-ended requests that could grow during the project.",
		Suggestion:  "Define clearly what is and what is not included in the project.",
		Icon:        "📈",
	},
	FlagCommunication: {
		Type:        FlagCommunication,
		Severity:    SeverityMedium,
		Title:       "Problematic Communication",
		Description: "The tone of the message suggests possible communication difficulties.",
		Suggestion:  "Agree on clear communication channels and an update cadence.",
		Icon:        "💬",
	},
	FlagTechnical: {
		Type:        FlagTechnical,
		Severity:    SeverityLow,
		Title:       "Vague Technical Requirements",
		Description: "The technical requirements are not clearly specified.",
		Suggestion:  "Ask for detailed technical specifications before starting.",
		Icon:        "⚙️",
	},
}

var (
	shortBriefTemplate = flagTemplate{
		Type:        FlagCommunication,
		Severity:    SeverityMedium,
		Title:       "Brief Too Short",
		Description: "The brief is very short and may be missing important details.",
		Suggestion:  "Ask for more details about the project and its goals.",
		Icon:        "📝",
	}
	missingBudgetTemplate = flagTemplate{
		Type:        FlagBudget,
		Severity:    SeverityHigh,
		Title:       "Budget Not Mentioned",
		Description: "The client did not mention any budget or price range.",
		Suggestion:  "Ask explicitly for the budget available for the project.",
		Icon:        "💰",
	}
)

// severityWeights is the score contribution of one flag.
var severityWeights = map[Severity]int{
	SeverityHigh:   25,
	SeverityMedium: 15,
	SeverityLow:    5,
}

// baseHours is the unadjusted effort per category.
var baseHours = map[string]int{
	CategoryWeb:      40,
	CategoryMobile:   120,
	CategoryBranding: 30,
	CategoryDesign:   25,
	CategorySaaS:     200,
	CategoryGeneral:  50,
}

// requirementGroups lists the fixed technology groups per family.
var requirementGroups = map[string]TechnicalRequirement{
	"frontend": {Category: "Frontend", Requirements: []string{"HTML/CSS", "JavaScript", "Responsive Design"}},
	"cms":      {Category: "CMS", Requirements: []string{"WordPress", "Strapi", "Contentful"}},
	"mobile":   {Category: "Mobile Development", Requirements: []string{"React Native", "Flutter", "Native iOS/Android"}},
	"backend":  {Category: "Backend", Requirements: []string{"Database", "API", "Authentication", "Hosting"}},
}

const (
	shortBriefThreshold     = 100
	veryShortBriefThreshold = 50
	shortBriefPenalty       = 20
	veryShortBriefPenalty   = 30
	maxRiskScore            = 100

	defaultBaseHours = 50
	hourlyRate       = 50
	hoursPerWeek     = 20
)
