package analyzer

// ClassifyProject returns the first project family with a keyword hit, or
// CategoryGeneral when nothing matches. Only one category is ever returned.
func ClassifyProject(normalized string) string {
	for _, family := range projectFamilies {
		if containsAny(normalized, family.Keywords) {
			return family.Name
		}
	}
	return CategoryGeneral
}

// ClassifyPersonality compares difficulty and collaboration keyword hits.
// Ties, including 0/0, are neutral.
func ClassifyPersonality(normalized string) Personality {
	difficult := countHits(normalized, difficultKeywords)
	collaborative := countHits(normalized, collaborativeKeywords)

	switch {
	case difficult > collaborative && difficult > 0:
		return PersonalityDifficult
	case collaborative > difficult && collaborative > 0:
		return PersonalityCollaborative
	default:
		return PersonalityNeutral
	}
}

// PersonalityInfo is the display metadata for a personality label.
type PersonalityInfo struct {
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

var personalityInfo = map[Personality]PersonalityInfo{
	PersonalityCollaborative: {Label: "Collaborative", Icon: "🤝", Description: "Client open to dialogue and collaboration"},
	PersonalityDifficult:     {Label: "Difficult", Icon: "⚠️", Description: "Possible communication difficulties"},
	PersonalityNeutral:       {Label: "Neutral", Icon: "😐", Description: "Personality not clearly defined"},
}

// Info returns display metadata; unknown values fall back to neutral.
func (p Personality) Info() PersonalityInfo {
	if info, ok := personalityInfo[p]; ok {
		return info
	}
	return personalityInfo[PersonalityNeutral]
}
