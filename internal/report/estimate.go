package report

import "math"

// BusinessDaysPerMonth is the average number of working days in a month.
const BusinessDaysPerMonth = 21.75

// EstimateMonths converts business days to months, rounded to one decimal.
func EstimateMonths(businessDays int) float64 {
	if businessDays <= 0 {
		return 0
	}
	return math.Round(float64(businessDays)/BusinessDaysPerMonth*10) / 10
}
