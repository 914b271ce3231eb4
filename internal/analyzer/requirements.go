package analyzer

// ExtractRequirements maps the project category, plus CMS mentions for web
// projects, to technology groups. At most two groups are returned.
func ExtractRequirements(normalized, category string) []TechnicalRequirement {
	reqs := []TechnicalRequirement{}

	switch category {
	case CategoryWeb:
		reqs = append(reqs, requirementGroup("frontend"))
		if containsAny(normalized, cmsMentions) {
			reqs = append(reqs, requirementGroup("cms"))
		}
	case CategoryMobile:
		reqs = append(reqs, requirementGroup("mobile"))
	case CategorySaaS:
		reqs = append(reqs, requirementGroup("backend"))
	}

	return reqs
}

// requirementGroup copies a table entry so callers cannot mutate the table.
func requirementGroup(key string) TechnicalRequirement {
	g := requirementGroups[key]
	return TechnicalRequirement{
		Category:     g.Category,
		Requirements: append([]string(nil), g.Requirements...),
	}
}
