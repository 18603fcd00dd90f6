package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported contribution periods per year.
const (
	PeriodsMonthly = 12
	PeriodsDaily   = 365
)

// MaxDurationYears bounds every plan horizon and start offset. Projections
// hold one snapshot per year, so the bound also caps their size.
const MaxDurationYears = 1000

// WithdrawalFrequency is how often an SWP pays out.
type WithdrawalFrequency int

const (
	WithdrawMonthly WithdrawalFrequency = iota + 1
	WithdrawQuarterly
	WithdrawAnnually
)

var frequencyNames = map[WithdrawalFrequency]string{
	WithdrawMonthly:   "monthly",
	WithdrawQuarterly: "quarterly",
	WithdrawAnnually:  "annually",
}

// ParseWithdrawalFrequency resolves a frequency name. "yearly" is accepted as
// an alias of "annually".
func ParseWithdrawalFrequency(s string) (WithdrawalFrequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly":
		return WithdrawMonthly, nil
	case "quarterly":
		return WithdrawQuarterly, nil
	case "annually", "annual", "yearly":
		return WithdrawAnnually, nil
	}
	return 0, fmt.Errorf("unsupported withdrawal frequency %q", s)
}

// MonthsCovered returns the number of months a single withdrawal pays for,
// or 0 for an unknown frequency.
func (f WithdrawalFrequency) MonthsCovered() int {
	switch f {
	case WithdrawMonthly:
		return 1
	case WithdrawQuarterly:
		return 3
	case WithdrawAnnually:
		return 12
	}
	return 0
}

// Valid reports whether f is one of the known frequencies.
func (f WithdrawalFrequency) Valid() bool { return f.MonthsCovered() > 0 }

func (f WithdrawalFrequency) String() string {
	if name, ok := frequencyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("WithdrawalFrequency(%d)", int(f))
}

// MarshalText renders the frequency name; used by both YAML and JSON encoders.
func (f WithdrawalFrequency) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("unsupported withdrawal frequency %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText parses a frequency name.
func (f *WithdrawalFrequency) UnmarshalText(text []byte) error {
	parsed, err := ParseWithdrawalFrequency(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for WithdrawalFrequency
func (f *WithdrawalFrequency) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParseWithdrawalFrequency(raw)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ContributionPlan is a recurring contribution stream (SIP).
type ContributionPlan struct {
	Name              string  `yaml:"name,omitempty" json:"name,omitempty"`
	PeriodicAmount    float64 `yaml:"periodic_amount" json:"periodic_amount"`
	AnnualRatePercent float64 `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	PeriodsPerYear    int     `yaml:"periods_per_year" json:"periods_per_year"`
	DurationYears     int     `yaml:"duration_years" json:"duration_years"`
	// StartYear offsets the plan when several streams are aggregated.
	StartYear int `yaml:"start_year,omitempty" json:"start_year,omitempty"`
	// UseDefaultRate makes the engine substitute the configured fixed return.
	UseDefaultRate bool `yaml:"use_default_rate,omitempty" json:"use_default_rate,omitempty"`
}

// LumpSumPlan is a single upfront investment.
type LumpSumPlan struct {
	Name              string  `yaml:"name,omitempty" json:"name,omitempty"`
	Principal         float64 `yaml:"principal" json:"principal"`
	AnnualRatePercent float64 `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	DurationYears     int     `yaml:"duration_years" json:"duration_years"`
	UseDefaultRate    bool    `yaml:"use_default_rate,omitempty" json:"use_default_rate,omitempty"`
}

// WithdrawalPlan is a systematic withdrawal from an invested balance.
// WithdrawalAmount is a monthly figure; quarterly and annual payouts are
// scaled by the months they cover.
type WithdrawalPlan struct {
	Name                string              `yaml:"name,omitempty" json:"name,omitempty"`
	OpeningBalance      float64             `yaml:"opening_balance" json:"opening_balance"`
	WithdrawalAmount    float64             `yaml:"withdrawal_amount" json:"withdrawal_amount"`
	WithdrawalFrequency WithdrawalFrequency `yaml:"withdrawal_frequency" json:"withdrawal_frequency"`
	AnnualRatePercent   float64             `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	DurationYears       int                 `yaml:"duration_years" json:"duration_years"`
	UseDefaultRate      bool                `yaml:"use_default_rate,omitempty" json:"use_default_rate,omitempty"`
}

// GoalPlan describes a target amount expressed in today's money.
type GoalPlan struct {
	Name                   string  `yaml:"name,omitempty" json:"name,omitempty"`
	TargetAmountToday      float64 `yaml:"target_amount_today" json:"target_amount_today"`
	DurationYears          int     `yaml:"duration_years" json:"duration_years"`
	AnnualRatePercent      float64 `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	AnnualInflationPercent float64 `yaml:"annual_inflation_percent" json:"annual_inflation_percent"`
	UseDefaultRate         bool    `yaml:"use_default_rate,omitempty" json:"use_default_rate,omitempty"`
	UseDefaultInflation    bool    `yaml:"use_default_inflation,omitempty" json:"use_default_inflation,omitempty"`
}

// NPSPlan is a pension accumulation followed by partial annuitization.
type NPSPlan struct {
	Name                string  `yaml:"name,omitempty" json:"name,omitempty"`
	MonthlyContribution float64 `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualRatePercent   float64 `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	DurationYears       int     `yaml:"duration_years" json:"duration_years"`
	AnnuityPercent      float64 `yaml:"annuity_percent" json:"annuity_percent"`
	AnnuityRatePercent  float64 `yaml:"annuity_rate_percent" json:"annuity_rate_percent"`
}

// RetirementIncomePlan chains a SIP accumulation into an SWP. The
// withdrawal's opening balance is taken from the accumulated corpus.
type RetirementIncomePlan struct {
	Name         string           `yaml:"name,omitempty" json:"name,omitempty"`
	Accumulation ContributionPlan `yaml:"accumulation" json:"accumulation"`
	Withdrawal   WithdrawalPlan   `yaml:"withdrawal" json:"withdrawal"`
}
