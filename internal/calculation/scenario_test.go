package calculation

import (
	"testing"

	"github.com/sipcalc/projection-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateOverlappingSIPs(t *testing.T) {
	early := domain.ContributionPlan{PeriodicAmount: 1000, AnnualRatePercent: 10, PeriodsPerYear: 12, DurationYears: 5, StartYear: 0}
	late := domain.ContributionPlan{PeriodicAmount: 2000, AnnualRatePercent: 12, PeriodsPerYear: 12, DurationYears: 5, StartYear: 3}

	res, err := Aggregate([]domain.ContributionPlan{early, late})
	require.NoError(t, err)
	require.Len(t, res.Series, 8)

	earlyProj, err := ProjectContribution(early)
	require.NoError(t, err)
	lateProj, err := ProjectContribution(late)
	require.NoError(t, err)

	for i, s := range res.Series {
		assert.Equal(t, i+1, s.PeriodIndex)
	}

	// Years 1-3: only the early plan runs.
	for y := 1; y <= 3; y++ {
		assert.Equal(t, earlyProj.Series[y-1].Balance, res.Series[y-1].Balance, "year %d", y)
	}

	// Years 4-5 overlap: both plans run.
	assert.InDelta(t, 84830.50, res.Series[3].Balance, 0.01)
	assert.InDelta(t, 132568.78, res.Series[4].Balance, 0.01)
	assert.Equal(t, 48000.0+24000.0, res.Series[3].TotalContributed)
	assert.Equal(t, 60000.0+48000.0, res.Series[4].TotalContributed)

	// Years 6-8: the early plan is frozen at its final value.
	frozen := earlyProj.Final()
	for y := 6; y <= 8; y++ {
		s := res.Series[y-1]
		lateLocal := lateProj.Series[y-3-1]
		assert.InDelta(t, frozen.Balance+lateLocal.Balance, s.Balance, 1e-6, "year %d", y)
		assert.InDelta(t, frozen.TotalContributed+lateLocal.TotalContributed, s.TotalContributed, 1e-6, "year %d", y)
	}

	assert.InDelta(t, 243055.11, res.Summary.FinalBalance, 0.01)
	assert.Equal(t, 60000.0+120000.0, res.Summary.TotalContributed)
	assert.InDelta(t, res.Summary.FinalBalance-res.Summary.TotalContributed, res.Summary.TotalGain, 1e-9)
}

func TestAggregateStartYearIsExclusive(t *testing.T) {
	a := domain.ContributionPlan{PeriodicAmount: 1000, PeriodsPerYear: 12, DurationYears: 2, StartYear: 2}
	b := domain.ContributionPlan{PeriodicAmount: 500, PeriodsPerYear: 12, DurationYears: 1, StartYear: 3}

	res, err := Aggregate([]domain.ContributionPlan{a, b})
	require.NoError(t, err)
	require.Len(t, res.Series, 2)

	assert.Equal(t, 3, res.Series[0].PeriodIndex)
	assert.Equal(t, 12000.0, res.Series[0].Balance)
	assert.Equal(t, 4, res.Series[1].PeriodIndex)
	assert.Equal(t, 24000.0+6000.0, res.Series[1].Balance)
}

func TestAggregateSinglePlanMatchesProjection(t *testing.T) {
	plan := domain.ContributionPlan{PeriodicAmount: 5000, AnnualRatePercent: 12, PeriodsPerYear: 12, DurationYears: 10}
	agg, err := Aggregate([]domain.ContributionPlan{plan})
	require.NoError(t, err)
	single, err := ProjectContribution(plan)
	require.NoError(t, err)
	assert.Equal(t, single.Summary, agg.Summary)
}

func TestAggregateErrors(t *testing.T) {
	_, err := Aggregate(nil)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Aggregate([]domain.ContributionPlan{
		{PeriodicAmount: 1000, PeriodsPerYear: 12, DurationYears: 1},
		{PeriodicAmount: -1, PeriodsPerYear: 12, DurationYears: 1},
	})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "plan 1")
}

func TestChainAccumulationToWithdrawal(t *testing.T) {
	sip := domain.ContributionPlan{PeriodicAmount: 10000, AnnualRatePercent: 12, PeriodsPerYear: 12, DurationYears: 10}
	swp := domain.WithdrawalPlan{
		OpeningBalance:      1, // replaced by the accumulated corpus
		WithdrawalAmount:    20000,
		WithdrawalFrequency: domain.WithdrawMonthly,
		AnnualRatePercent:   8,
		DurationYears:       15,
	}

	chain, err := ChainAccumulationToWithdrawal(sip, swp)
	require.NoError(t, err)
	require.Len(t, chain.Accumulation.Series, 10)
	require.Len(t, chain.Withdrawal.Series, 15)

	corpus := chain.Accumulation.Summary.FinalBalance
	assert.InDelta(t, 2323390.76, corpus, 0.01)
	assert.Equal(t, corpus, chain.Withdrawal.Summary.TotalContributed)

	direct, err := ProjectWithdrawal(domain.WithdrawalPlan{
		OpeningBalance:      corpus,
		WithdrawalAmount:    20000,
		WithdrawalFrequency: domain.WithdrawMonthly,
		AnnualRatePercent:   8,
		DurationYears:       15,
	})
	require.NoError(t, err)
	assert.Equal(t, direct, chain.Withdrawal)
}

func TestAggregateRejectsHugeStartYear(t *testing.T) {
	_, err := Aggregate([]domain.ContributionPlan{
		{PeriodicAmount: 1000, PeriodsPerYear: 12, DurationYears: 5},
		{PeriodicAmount: 1000, PeriodsPerYear: 12, DurationYears: 5, StartYear: 1 << 40},
	})
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "plan 1")
}

func TestChainAccumulationToWithdrawalErrors(t *testing.T) {
	_, err := ChainAccumulationToWithdrawal(
		domain.ContributionPlan{PeriodicAmount: 1000, PeriodsPerYear: 12, DurationYears: 0},
		domain.WithdrawalPlan{WithdrawalFrequency: domain.WithdrawMonthly, DurationYears: 5},
	)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "accumulation phase")

	_, err = ChainAccumulationToWithdrawal(
		domain.ContributionPlan{PeriodicAmount: 1000, PeriodsPerYear: 12, DurationYears: 5},
		domain.WithdrawalPlan{WithdrawalFrequency: domain.WithdrawMonthly, DurationYears: 0},
	)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "withdrawal phase")
}
