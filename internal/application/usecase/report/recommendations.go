package report

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Recommendation sets, evaluated top to bottom. The first matching condition
// determines the advice set.
var (
	lossRecommendations = []string{
		"Urgent: reduce operating costs to stop the current loss.",
		"Diversify income streams beyond the current sales mix.",
		"Renegotiate supplier contracts, starting with feed.",
	}
	thinMarginRecommendations = []string{
		"Focus on operational efficiency to lift the thin margin.",
		"Explore premium product lines such as organic or free-range eggs.",
		"Optimize feed conversion ratios to cut the largest cost driver.",
	}
	strongMarginRecommendations = []string{
		"Consider expanding flock capacity while margins are strong.",
		"Invest in automation to lock in the current cost structure.",
		"Build an emergency fund covering at least three months of costs.",
	}
	steadyRecommendations = []string{
		"Maintain the current strategy; performance is within a healthy band.",
		"Monitor seasonal demand patterns for eggs and poultry.",
		"Plan gradual expansion funded from retained earnings.",
	}
)

// Recommendations evaluates the decision table over profit and margin, then
// appends the independent budget addendum when usage is known.
func Recommendations(profit decimal.Decimal, profitMargin float64, budgetUsage *float64) []string {
	var advice []string

	switch {
	case profit.IsNegative():
		advice = append(advice, lossRecommendations...)
	case profitMargin < 10:
		advice = append(advice, thinMarginRecommendations...)
	case profitMargin > 25:
		advice = append(advice, strongMarginRecommendations...)
	default:
		advice = append(advice, steadyRecommendations...)
	}

	if budgetUsage != nil {
		switch usage := *budgetUsage; {
		case usage > 100:
			advice = append(advice, fmt.Sprintf(
				"Warning: spending is %.1f%% over the monthly budget; review category allocations immediately.",
				usage-100,
			))
		case usage < 70:
			advice = append(advice,
				"Budget usage is comfortably low; consider redirecting the surplus into strategic investments.",
			)
		}
	}

	return advice
}
