package domain

import "fmt"

// Default planning assumptions. They are passed into plans explicitly; no
// formula reads them directly.
const (
	DefaultFixedReturnPercent    = 18.0
	DefaultInflationPercent      = 6.0
	DefaultNPSAnnuityRatePercent = 6.0
	DefaultNPSAnnuityPercent     = 40.0
	MinNPSAnnuityPercent         = 40.0
)

// Assumptions are the named planning defaults applied to plans that opt in
// with UseDefaultRate / UseDefaultInflation.
type Assumptions struct {
	FixedReturnPercent    float64 `yaml:"fixed_return_percent" json:"fixed_return_percent" mapstructure:"fixed_return_percent"`
	InflationPercent      float64 `yaml:"inflation_percent" json:"inflation_percent" mapstructure:"inflation_percent"`
	NPSAnnuityRatePercent float64 `yaml:"nps_annuity_rate_percent" json:"nps_annuity_rate_percent" mapstructure:"nps_annuity_rate_percent"`
	NPSAnnuityPercent     float64 `yaml:"nps_annuity_percent" json:"nps_annuity_percent" mapstructure:"nps_annuity_percent"`
}

// DefaultAssumptions returns the stock planning assumptions.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		FixedReturnPercent:    DefaultFixedReturnPercent,
		InflationPercent:      DefaultInflationPercent,
		NPSAnnuityRatePercent: DefaultNPSAnnuityRatePercent,
		NPSAnnuityPercent:     DefaultNPSAnnuityPercent,
	}
}

// Describe lists the assumptions as human-readable lines.
func (a Assumptions) Describe() []string {
	return []string{
		fmt.Sprintf("Fixed return: %.2f%% per year", a.FixedReturnPercent),
		fmt.Sprintf("Inflation: %.2f%% per year", a.InflationPercent),
		fmt.Sprintf("NPS annuity rate: %.2f%% per year", a.NPSAnnuityRatePercent),
		fmt.Sprintf("NPS annuitized share: %.0f%% of corpus", a.NPSAnnuityPercent),
	}
}

// Portfolio is a named collection of plans evaluated together.
type Portfolio struct {
	Name          string                 `yaml:"name" json:"name"`
	SIPs          []ContributionPlan     `yaml:"sips,omitempty" json:"sips,omitempty"`
	DailySIPs     []ContributionPlan     `yaml:"daily_sips,omitempty" json:"daily_sips,omitempty"`
	LumpSums      []LumpSumPlan          `yaml:"lump_sums,omitempty" json:"lump_sums,omitempty"`
	Withdrawals   []WithdrawalPlan       `yaml:"withdrawals,omitempty" json:"withdrawals,omitempty"`
	Goals         []GoalPlan             `yaml:"goals,omitempty" json:"goals,omitempty"`
	NPS           []NPSPlan              `yaml:"nps,omitempty" json:"nps,omitempty"`
	Retirement    []RetirementIncomePlan `yaml:"retirement_income,omitempty" json:"retirement_income,omitempty"`
	AggregateSIPs bool                   `yaml:"aggregate_sips,omitempty" json:"aggregate_sips,omitempty"`
}

// IsEmpty reports whether the portfolio has nothing to project.
func (p *Portfolio) IsEmpty() bool {
	return len(p.SIPs) == 0 && len(p.DailySIPs) == 0 && len(p.LumpSums) == 0 &&
		len(p.Withdrawals) == 0 && len(p.Goals) == 0 && len(p.NPS) == 0 && len(p.Retirement) == 0
}

// Kind identifies the product behind a named projection.
type Kind string

const (
	KindSIP        Kind = "sip"
	KindDailySIP   Kind = "daily_sip"
	KindLumpSum    Kind = "lump_sum"
	KindSWP        Kind = "swp"
	KindGoal       Kind = "goal"
	KindAggregate  Kind = "aggregate"
	KindNPS        Kind = "nps"
	KindRetirement Kind = "retirement_income"
)

// NamedProjection is one entry of a portfolio report. Exactly one of the
// detail pointers is set for goal, NPS and retirement entries.
type NamedProjection struct {
	Name       string             `json:"name"`
	Kind       Kind               `json:"kind"`
	Result     ProjectionResult   `json:"result"`
	Goal       *GoalProjection    `json:"goal,omitempty"`
	NPS        *NPSProjection     `json:"nps,omitempty"`
	Retirement *ChainedProjection `json:"retirement,omitempty"`
}

// PortfolioReport is the outcome of running a whole portfolio.
type PortfolioReport struct {
	Name        string            `json:"name"`
	Projections []NamedProjection `json:"projections"`
	Assumptions []string          `json:"assumptions"`
}
