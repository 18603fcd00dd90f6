package calculation

import (
	"github.com/sipcalc/projection-engine/internal/domain"
)

func validateContributionPlan(plan domain.ContributionPlan) error {
	if err := requireNonNegative("periodic_amount", plan.PeriodicAmount); err != nil {
		return err
	}
	if err := requireNonNegative("annual_rate_percent", plan.AnnualRatePercent); err != nil {
		return err
	}
	if err := requirePeriodsPerYear(plan.PeriodsPerYear); err != nil {
		return err
	}
	if err := requirePositiveYears("duration_years", plan.DurationYears); err != nil {
		return err
	}
	if plan.StartYear < 0 {
		return invalidParam("start_year", "must not be negative, got %d", plan.StartYear)
	}
	if err := requireMaxYears("start_year", plan.StartYear); err != nil {
		return err
	}
	return nil
}

// summarize fills the summary from the last snapshot of the series.
func summarize(series []domain.PeriodSnapshot) domain.ProjectionResult {
	result := domain.ProjectionResult{Series: series}
	final := result.Final()
	result.Summary = domain.ProjectionSummary{
		TotalContributed: final.TotalContributed,
		FinalBalance:     final.Balance,
		TotalGain:        final.Gain,
		TotalWithdrawn:   final.Withdrawn,
	}
	return result
}

// ProjectContribution projects a SIP year by year.
func ProjectContribution(plan domain.ContributionPlan) (domain.ProjectionResult, error) {
	if err := validateContributionPlan(plan); err != nil {
		return domain.ProjectionResult{}, err
	}

	k := plan.PeriodsPerYear
	series := make([]domain.PeriodSnapshot, 0, plan.DurationYears)
	for year := 1; year <= plan.DurationYears; year++ {
		contributed := plan.PeriodicAmount * float64(k) * float64(year)
		balance, err := FutureValueOfSeries(plan.PeriodicAmount, plan.AnnualRatePercent, k, k*year)
		if err != nil {
			return domain.ProjectionResult{}, err
		}
		gain := balance - contributed
		if err := checkFinite("contribution projection", contributed, gain); err != nil {
			return domain.ProjectionResult{}, err
		}
		series = append(series, domain.PeriodSnapshot{
			PeriodIndex:      year,
			TotalContributed: contributed,
			Balance:          balance,
			Gain:             gain,
		})
	}
	return summarize(series), nil
}

// ProjectDailyContribution projects a SIP that invests every day.
func ProjectDailyContribution(plan domain.ContributionPlan) (domain.ProjectionResult, error) {
	plan.PeriodsPerYear = domain.PeriodsDaily
	return ProjectContribution(plan)
}

// ProjectLumpSum projects a one-off investment with annual compounding.
func ProjectLumpSum(plan domain.LumpSumPlan) (domain.ProjectionResult, error) {
	if err := requireNonNegative("principal", plan.Principal); err != nil {
		return domain.ProjectionResult{}, err
	}
	if err := requireNonNegative("annual_rate_percent", plan.AnnualRatePercent); err != nil {
		return domain.ProjectionResult{}, err
	}
	if err := requirePositiveYears("duration_years", plan.DurationYears); err != nil {
		return domain.ProjectionResult{}, err
	}

	series := make([]domain.PeriodSnapshot, 0, plan.DurationYears)
	for year := 1; year <= plan.DurationYears; year++ {
		balance, err := FutureValueOfLumpSum(plan.Principal, plan.AnnualRatePercent, year)
		if err != nil {
			return domain.ProjectionResult{}, err
		}
		series = append(series, domain.PeriodSnapshot{
			PeriodIndex:      year,
			TotalContributed: plan.Principal,
			Balance:          balance,
			Gain:             balance - plan.Principal,
		})
	}
	return summarize(series), nil
}

// ProjectWithdrawal projects an SWP. TotalContributed carries the opening
// balance on every row, and gain counts withdrawals as realised value.
func ProjectWithdrawal(plan domain.WithdrawalPlan) (domain.ProjectionResult, error) {
	if err := requirePositiveYears("duration_years", plan.DurationYears); err != nil {
		return domain.ProjectionResult{}, err
	}
	schedule, err := DepleteWithBalance(plan.OpeningBalance, plan.AnnualRatePercent, plan.WithdrawalAmount, plan.WithdrawalFrequency, plan.DurationYears)
	if err != nil {
		return domain.ProjectionResult{}, err
	}

	series := make([]domain.PeriodSnapshot, 0, len(schedule.Steps))
	for _, step := range schedule.Steps {
		series = append(series, domain.PeriodSnapshot{
			PeriodIndex:      step.Year,
			TotalContributed: plan.OpeningBalance,
			Balance:          step.Balance,
			Gain:             step.Balance + step.TotalWithdrawn - plan.OpeningBalance,
			Withdrawn:        step.TotalWithdrawn,
		})
	}
	result := summarize(series)
	if schedule.DepletedAtMonth > 0 {
		result.Summary.DepletedInYear = (schedule.DepletedAtMonth + 11) / 12
	}
	return result, nil
}

// InflationAdjustedTarget grows today's amount by inflation over the given years.
func InflationAdjustedTarget(amountToday, annualInflationPercent float64, years int) (float64, error) {
	if err := requireNonNegative("target_amount_today", amountToday); err != nil {
		return 0, err
	}
	if err := requireNonNegative("annual_inflation_percent", annualInflationPercent); err != nil {
		return 0, err
	}
	target := amountToday * growthFactor(annualInflationPercent/100.0, years)
	if err := checkFinite("inflation-adjusted target", target); err != nil {
		return 0, err
	}
	return target, nil
}

// ProjectGoal derives the monthly SIP needed for an inflation-adjusted target
// and projects it. Each snapshot carries the target as GoalCorpus.
func ProjectGoal(plan domain.GoalPlan) (domain.GoalProjection, error) {
	if err := requireNonNegative("annual_rate_percent", plan.AnnualRatePercent); err != nil {
		return domain.GoalProjection{}, err
	}
	if err := requirePositiveYears("duration_years", plan.DurationYears); err != nil {
		return domain.GoalProjection{}, err
	}
	target, err := InflationAdjustedTarget(plan.TargetAmountToday, plan.AnnualInflationPercent, plan.DurationYears)
	if err != nil {
		return domain.GoalProjection{}, err
	}
	months := plan.DurationYears * domain.PeriodsMonthly
	monthly, err := RequiredPeriodicContribution(target, plan.AnnualRatePercent, domain.PeriodsMonthly, months)
	if err != nil {
		return domain.GoalProjection{}, err
	}

	accumulation, err := ProjectContribution(domain.ContributionPlan{
		Name:              plan.Name,
		PeriodicAmount:    monthly,
		AnnualRatePercent: plan.AnnualRatePercent,
		PeriodsPerYear:    domain.PeriodsMonthly,
		DurationYears:     plan.DurationYears,
	})
	if err != nil {
		return domain.GoalProjection{}, err
	}
	for i := range accumulation.Series {
		accumulation.Series[i].GoalCorpus = target
	}

	return domain.GoalProjection{
		ProjectionResult:        accumulation,
		InflationAdjustedTarget: target,
		RequiredPeriodicAmount:  monthly,
	}, nil
}
