package calculation

import (
	"fmt"

	"github.com/sipcalc/projection-engine/internal/domain"
)

// Aggregate sums several SIPs that may start in different years.
//
// The series covers years min(StartYear)+1 through max(StartYear+DurationYears).
// A plan contributes nothing up to and including its StartYear, its own
// snapshot for local year (year − StartYear) while running, and its final
// values, frozen, once its duration has elapsed.
func Aggregate(plans []domain.ContributionPlan) (domain.ProjectionResult, error) {
	if len(plans) == 0 {
		return domain.ProjectionResult{}, invalidParam("plans", "must contain at least one plan")
	}

	projections := make([]domain.ProjectionResult, len(plans))
	first, last := -1, 0
	for i, plan := range plans {
		proj, err := ProjectContribution(plan)
		if err != nil {
			return domain.ProjectionResult{}, fmt.Errorf("plan %d: %w", i, err)
		}
		projections[i] = proj
		if first == -1 || plan.StartYear < first {
			first = plan.StartYear
		}
		if end := plan.StartYear + plan.DurationYears; end > last {
			last = end
		}
	}

	series := make([]domain.PeriodSnapshot, 0, last-first)
	for year := first + 1; year <= last; year++ {
		snap := domain.PeriodSnapshot{PeriodIndex: year}
		for i, plan := range plans {
			if year < plan.StartYear+1 {
				continue
			}
			local := year - plan.StartYear
			var contrib domain.PeriodSnapshot
			if local > plan.DurationYears {
				contrib = projections[i].Final()
			} else {
				contrib = projections[i].Series[local-1]
			}
			snap.TotalContributed += contrib.TotalContributed
			snap.Balance += contrib.Balance
		}
		snap.Gain = snap.Balance - snap.TotalContributed
		if err := checkFinite("aggregate balance", snap.Balance, snap.TotalContributed); err != nil {
			return domain.ProjectionResult{}, err
		}
		series = append(series, snap)
	}
	return summarize(series), nil
}

// ChainAccumulationToWithdrawal runs a SIP and then an SWP that opens with
// the SIP's final balance. The template's own OpeningBalance is ignored.
func ChainAccumulationToWithdrawal(plan domain.ContributionPlan, template domain.WithdrawalPlan) (domain.ChainedProjection, error) {
	accumulation, err := ProjectContribution(plan)
	if err != nil {
		return domain.ChainedProjection{}, fmt.Errorf("accumulation phase: %w", err)
	}
	template.OpeningBalance = accumulation.Summary.FinalBalance
	withdrawal, err := ProjectWithdrawal(template)
	if err != nil {
		return domain.ChainedProjection{}, fmt.Errorf("withdrawal phase: %w", err)
	}
	return domain.ChainedProjection{Accumulation: accumulation, Withdrawal: withdrawal}, nil
}
