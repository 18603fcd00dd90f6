package calculation

import (
	"context"
	"fmt"

	"github.com/sipcalc/projection-engine/internal/domain"
)

// ProjectionEngine runs every plan of a portfolio through the projection
// functions, applying the configured assumptions where plans ask for them.
type ProjectionEngine struct {
	Assumptions domain.Assumptions
	Debug       bool // Log every snapshot at debug level
	Logger      Logger
}

// NewProjectionEngine creates an engine with the stock assumptions
func NewProjectionEngine() *ProjectionEngine {
	return NewProjectionEngineWithAssumptions(domain.DefaultAssumptions())
}

// NewProjectionEngineWithAssumptions creates an engine with explicit assumptions
func NewProjectionEngineWithAssumptions(a domain.Assumptions) *ProjectionEngine {
	return &ProjectionEngine{
		Assumptions: a,
		Logger:      NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (pe *ProjectionEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// contributionPlan copies the default return into a plan that opts in,
// replacing whatever rate the plan carried.
func (pe *ProjectionEngine) contributionPlan(plan domain.ContributionPlan) domain.ContributionPlan {
	if plan.UseDefaultRate {
		plan.AnnualRatePercent = pe.Assumptions.FixedReturnPercent
	}
	// An unset frequency means monthly.
	if plan.PeriodsPerYear == 0 {
		plan.PeriodsPerYear = domain.PeriodsMonthly
	}
	return plan
}

func (pe *ProjectionEngine) lumpSumPlan(plan domain.LumpSumPlan) domain.LumpSumPlan {
	if plan.UseDefaultRate {
		plan.AnnualRatePercent = pe.Assumptions.FixedReturnPercent
	}
	return plan
}

func (pe *ProjectionEngine) withdrawalPlan(plan domain.WithdrawalPlan) domain.WithdrawalPlan {
	if plan.UseDefaultRate {
		plan.AnnualRatePercent = pe.Assumptions.FixedReturnPercent
	}
	return plan
}

func (pe *ProjectionEngine) goalPlan(plan domain.GoalPlan) domain.GoalPlan {
	if plan.UseDefaultRate {
		plan.AnnualRatePercent = pe.Assumptions.FixedReturnPercent
	}
	if plan.UseDefaultInflation {
		plan.AnnualInflationPercent = pe.Assumptions.InflationPercent
	}
	return plan
}

func (pe *ProjectionEngine) npsPlan(plan domain.NPSPlan) domain.NPSPlan {
	if plan.AnnuityPercent == 0 {
		plan.AnnuityPercent = pe.Assumptions.NPSAnnuityPercent
	}
	if plan.AnnuityRatePercent == 0 {
		plan.AnnuityRatePercent = pe.Assumptions.NPSAnnuityRatePercent
	}
	return plan
}

func entryName(name string, kind domain.Kind, i int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("%s #%d", kind, i+1)
}

// RunPortfolio projects every plan in the portfolio. The first failing entry
// aborts the run; no partial report is returned.
func (pe *ProjectionEngine) RunPortfolio(ctx context.Context, p *domain.Portfolio) (*domain.PortfolioReport, error) {
	if p == nil || p.IsEmpty() {
		return nil, fmt.Errorf("%w: portfolio has no plans", ErrInvalidParameter)
	}

	report := &domain.PortfolioReport{
		Name:        p.Name,
		Assumptions: pe.Assumptions.Describe(),
	}
	add := func(np domain.NamedProjection) {
		pe.Logger.Infof("projected %s %q: final balance %.2f", np.Kind, np.Name, np.Result.Summary.FinalBalance)
		if pe.Debug {
			for _, s := range np.Result.Series {
				pe.Logger.Debugf("  %s period %d: contributed=%.2f balance=%.2f gain=%.2f",
					np.Name, s.PeriodIndex, s.TotalContributed, s.Balance, s.Gain)
			}
		}
		report.Projections = append(report.Projections, np)
	}
	fail := func(kind domain.Kind, name string, err error) error {
		pe.Logger.Errorf("%s %q failed: %v", kind, name, err)
		return fmt.Errorf("%s %q: %w", kind, name, err)
	}

	var streams []domain.ContributionPlan

	for i, raw := range p.SIPs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plan := pe.contributionPlan(raw)
		name := entryName(plan.Name, domain.KindSIP, i)
		res, err := ProjectContribution(plan)
		if err != nil {
			return nil, fail(domain.KindSIP, name, err)
		}
		streams = append(streams, plan)
		add(domain.NamedProjection{Name: name, Kind: domain.KindSIP, Result: res})
	}

	for i, raw := range p.DailySIPs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plan := pe.contributionPlan(raw)
		plan.PeriodsPerYear = domain.PeriodsDaily
		name := entryName(plan.Name, domain.KindDailySIP, i)
		res, err := ProjectDailyContribution(plan)
		if err != nil {
			return nil, fail(domain.KindDailySIP, name, err)
		}
		streams = append(streams, plan)
		add(domain.NamedProjection{Name: name, Kind: domain.KindDailySIP, Result: res})
	}

	if p.AggregateSIPs && len(streams) > 0 {
		res, err := Aggregate(streams)
		if err != nil {
			return nil, fail(domain.KindAggregate, "all SIPs", err)
		}
		add(domain.NamedProjection{Name: "All SIPs", Kind: domain.KindAggregate, Result: res})
	}

	for i, raw := range p.LumpSums {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plan := pe.lumpSumPlan(raw)
		name := entryName(plan.Name, domain.KindLumpSum, i)
		res, err := ProjectLumpSum(plan)
		if err != nil {
			return nil, fail(domain.KindLumpSum, name, err)
		}
		add(domain.NamedProjection{Name: name, Kind: domain.KindLumpSum, Result: res})
	}

	for i, raw := range p.Withdrawals {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plan := pe.withdrawalPlan(raw)
		name := entryName(plan.Name, domain.KindSWP, i)
		res, err := ProjectWithdrawal(plan)
		if err != nil {
			return nil, fail(domain.KindSWP, name, err)
		}
		if res.Summary.DepletedInYear > 0 {
			pe.Logger.Warnf("swp %q depletes in year %d of %d", name, res.Summary.DepletedInYear, plan.DurationYears)
		}
		add(domain.NamedProjection{Name: name, Kind: domain.KindSWP, Result: res})
	}

	for i, raw := range p.Goals {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plan := pe.goalPlan(raw)
		name := entryName(plan.Name, domain.KindGoal, i)
		goal, err := ProjectGoal(plan)
		if err != nil {
			return nil, fail(domain.KindGoal, name, err)
		}
		add(domain.NamedProjection{Name: name, Kind: domain.KindGoal, Result: goal.ProjectionResult, Goal: &goal})
	}

	for i, raw := range p.NPS {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plan := pe.npsPlan(raw)
		name := entryName(plan.Name, domain.KindNPS, i)
		nps, err := ProjectNPS(plan)
		if err != nil {
			return nil, fail(domain.KindNPS, name, err)
		}
		add(domain.NamedProjection{Name: name, Kind: domain.KindNPS, Result: nps.Accumulation, NPS: &nps})
	}

	for i, raw := range p.Retirement {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := entryName(raw.Name, domain.KindRetirement, i)
		chain, err := ChainAccumulationToWithdrawal(pe.contributionPlan(raw.Accumulation), pe.withdrawalPlan(raw.Withdrawal))
		if err != nil {
			return nil, fail(domain.KindRetirement, name, err)
		}
		add(domain.NamedProjection{Name: name, Kind: domain.KindRetirement, Result: chain.Withdrawal, Retirement: &chain})
	}

	return report, nil
}
