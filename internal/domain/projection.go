package domain

// PeriodSnapshot is the cumulative state of a projection at the end of one
// period (a year, unless noted otherwise).
type PeriodSnapshot struct {
	PeriodIndex      int     `json:"period_index"`
	TotalContributed float64 `json:"total_contributed"`
	Balance          float64 `json:"balance"`
	// Gain is Balance - TotalContributed, plus withdrawals for SWP series.
	Gain float64 `json:"gain"`

	// Withdrawn is the cumulative amount paid out (SWP only).
	Withdrawn float64 `json:"withdrawn,omitempty"`
	// GoalCorpus is the inflation-adjusted target line (goal projections only).
	GoalCorpus float64 `json:"goal_corpus,omitempty"`
}

// ProjectionSummary holds the headline totals of a projection.
type ProjectionSummary struct {
	TotalContributed float64 `json:"total_contributed"`
	FinalBalance     float64 `json:"final_balance"`
	TotalGain        float64 `json:"total_gain"`
	TotalWithdrawn   float64 `json:"total_withdrawn,omitempty"`
	// DepletedInYear is the first year the balance hit zero; 0 if it never did.
	DepletedInYear int `json:"depleted_in_year,omitempty"`
}

// ProjectionResult is an ordered series plus its summary.
type ProjectionResult struct {
	Series  []PeriodSnapshot  `json:"series"`
	Summary ProjectionSummary `json:"summary"`
}

// Final returns the last snapshot, or a zero snapshot for an empty series.
func (pr *ProjectionResult) Final() PeriodSnapshot {
	if len(pr.Series) == 0 {
		return PeriodSnapshot{}
	}
	return pr.Series[len(pr.Series)-1]
}

// WithdrawalStep is the state of a depleting balance at the end of a year.
type WithdrawalStep struct {
	Year           int     `json:"year"`
	Balance        float64 `json:"balance"`
	TotalWithdrawn float64 `json:"total_withdrawn"`
}

// GoalProjection is the accumulation needed to reach an inflation-adjusted goal.
type GoalProjection struct {
	ProjectionResult
	InflationAdjustedTarget float64 `json:"inflation_adjusted_target"`
	RequiredPeriodicAmount  float64 `json:"required_periodic_amount"`
}

// NPSProjection is the accumulation and annuitization split of a pension plan.
type NPSProjection struct {
	Accumulation   ProjectionResult `json:"accumulation"`
	Corpus         float64          `json:"corpus"`
	AnnuityCorpus  float64          `json:"annuity_corpus"`
	LumpSum        float64          `json:"lump_sum"`
	MonthlyPension float64          `json:"monthly_pension"`
}

// ChainedProjection is a SIP accumulation phase followed by an SWP phase.
type ChainedProjection struct {
	Accumulation ProjectionResult `json:"accumulation"`
	Withdrawal   ProjectionResult `json:"withdrawal"`
}
