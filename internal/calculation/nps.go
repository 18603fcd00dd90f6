package calculation

import (
	"github.com/sipcalc/projection-engine/internal/domain"
)

// ProjectNPS accumulates monthly pension contributions, then splits the corpus
// into an annuitized share and a lump sum. The pension is the annuity corpus
// times the annuity rate, paid monthly.
func ProjectNPS(plan domain.NPSPlan) (domain.NPSProjection, error) {
	if err := requireNonNegative("annuity_rate_percent", plan.AnnuityRatePercent); err != nil {
		return domain.NPSProjection{}, err
	}
	if plan.AnnuityPercent < domain.MinNPSAnnuityPercent || plan.AnnuityPercent > 100 {
		return domain.NPSProjection{}, invalidParam("annuity_percent", "must be between %.0f and 100, got %v",
			domain.MinNPSAnnuityPercent, plan.AnnuityPercent)
	}

	accumulation, err := ProjectContribution(domain.ContributionPlan{
		Name:              plan.Name,
		PeriodicAmount:    plan.MonthlyContribution,
		AnnualRatePercent: plan.AnnualRatePercent,
		PeriodsPerYear:    domain.PeriodsMonthly,
		DurationYears:     plan.DurationYears,
	})
	if err != nil {
		return domain.NPSProjection{}, err
	}

	corpus := accumulation.Summary.FinalBalance
	annuityCorpus := corpus * plan.AnnuityPercent / 100
	pension := annuityCorpus * plan.AnnuityRatePercent / 100 / 12
	if err := checkFinite("nps annuity", annuityCorpus, pension); err != nil {
		return domain.NPSProjection{}, err
	}

	return domain.NPSProjection{
		Accumulation:   accumulation,
		Corpus:         corpus,
		AnnuityCorpus:  annuityCorpus,
		LumpSum:        corpus - annuityCorpus,
		MonthlyPension: pension,
	}, nil
}
