package analyzer

import "fmt"

// EstimateEffort converts category and risk score into hours, a budget range
// and a timeline. Higher risk inflates the hours as a contingency buffer.
// briefLen is accepted for parity with the other stages and is not used.
func EstimateEffort(category string, briefLen, riskScore int) Estimate {
	_ = briefLen

	base, ok := baseHours[category]
	if !ok {
		base = defaultBaseHours
	}

	// round-half-up of base * (1 + score/100), in integer arithmetic
	hours := (base*(100+riskScore) + 50) / 100

	low := hours * hourlyRate
	high := low * 3 / 2

	weeks := (hours + hoursPerWeek - 1) / hoursPerWeek

	return Estimate{
		Hours:    hours,
		Budget:   fmt.Sprintf("€%d - €%d", low, high),
		Timeline: formatWeeks(weeks),
	}
}

func formatWeeks(weeks int) string {
	if weeks > 1 {
		return fmt.Sprintf("%d weeks", weeks)
	}
	return fmt.Sprintf("%d week", weeks)
}
