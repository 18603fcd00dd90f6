package config

import (
	"fmt"
	"os"

	"github.com/sipcalc/projection-engine/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of portfolio input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a portfolio from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Portfolio, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML portfolio document
func (ip *InputParser) Parse(data []byte) (*domain.Portfolio, error) {
	var portfolio domain.Portfolio
	if err := yaml.Unmarshal(data, &portfolio); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePortfolio(&portfolio); err != nil {
		return nil, fmt.Errorf("portfolio validation failed: %w", err)
	}

	return &portfolio, nil
}

// ValidatePortfolio checks the structural shape of a portfolio. Numeric
// ranges are enforced again by the projection functions.
func (ip *InputParser) ValidatePortfolio(p *domain.Portfolio) error {
	if p.IsEmpty() {
		return fmt.Errorf("no plans provided")
	}

	for i := range p.SIPs {
		if err := validateContribution(&p.SIPs[i], true); err != nil {
			return fmt.Errorf("sip %d validation failed: %w", i, err)
		}
	}
	for i := range p.DailySIPs {
		if err := validateContribution(&p.DailySIPs[i], false); err != nil {
			return fmt.Errorf("daily sip %d validation failed: %w", i, err)
		}
	}
	for i, l := range p.LumpSums {
		if l.Principal < 0 {
			return fmt.Errorf("lump sum %d validation failed: principal cannot be negative", i)
		}
		if err := validateRateAndYears(l.AnnualRatePercent, l.DurationYears); err != nil {
			return fmt.Errorf("lump sum %d validation failed: %w", i, err)
		}
	}
	for i := range p.Withdrawals {
		if err := validateWithdrawal(&p.Withdrawals[i], true); err != nil {
			return fmt.Errorf("withdrawal %d validation failed: %w", i, err)
		}
	}
	for i, g := range p.Goals {
		if g.TargetAmountToday <= 0 {
			return fmt.Errorf("goal %d validation failed: target amount must be positive", i)
		}
		if g.AnnualInflationPercent < 0 {
			return fmt.Errorf("goal %d validation failed: inflation cannot be negative", i)
		}
		if err := validateRateAndYears(g.AnnualRatePercent, g.DurationYears); err != nil {
			return fmt.Errorf("goal %d validation failed: %w", i, err)
		}
	}
	for i, n := range p.NPS {
		if n.MonthlyContribution < 0 {
			return fmt.Errorf("nps %d validation failed: monthly contribution cannot be negative", i)
		}
		if n.AnnuityPercent != 0 && (n.AnnuityPercent < domain.MinNPSAnnuityPercent || n.AnnuityPercent > 100) {
			return fmt.Errorf("nps %d validation failed: annuity percent must be between %.0f and 100",
				i, domain.MinNPSAnnuityPercent)
		}
		if err := validateRateAndYears(n.AnnualRatePercent, n.DurationYears); err != nil {
			return fmt.Errorf("nps %d validation failed: %w", i, err)
		}
	}
	for i := range p.Retirement {
		r := &p.Retirement[i]
		if err := validateContribution(&r.Accumulation, true); err != nil {
			return fmt.Errorf("retirement income %d accumulation validation failed: %w", i, err)
		}
		if err := validateWithdrawal(&r.Withdrawal, false); err != nil {
			return fmt.Errorf("retirement income %d withdrawal validation failed: %w", i, err)
		}
	}

	return nil
}

func validateRateAndYears(rate float64, years int) error {
	if rate < 0 {
		return fmt.Errorf("annual rate cannot be negative")
	}
	if years <= 0 {
		return fmt.Errorf("duration must be at least one year")
	}
	if years > domain.MaxDurationYears {
		return fmt.Errorf("duration cannot exceed %d years", domain.MaxDurationYears)
	}
	return nil
}

func validateContribution(c *domain.ContributionPlan, monthly bool) error {
	if c.PeriodicAmount < 0 {
		return fmt.Errorf("periodic amount cannot be negative")
	}
	if c.StartYear < 0 {
		return fmt.Errorf("start year cannot be negative")
	}
	if monthly && c.PeriodsPerYear != 0 && c.PeriodsPerYear != domain.PeriodsMonthly && c.PeriodsPerYear != domain.PeriodsDaily {
		return fmt.Errorf("periods per year must be %d or %d", domain.PeriodsMonthly, domain.PeriodsDaily)
	}
	return validateRateAndYears(c.AnnualRatePercent, c.DurationYears)
}

func validateWithdrawal(w *domain.WithdrawalPlan, needsBalance bool) error {
	if needsBalance && w.OpeningBalance <= 0 {
		return fmt.Errorf("opening balance must be positive")
	}
	if w.WithdrawalAmount < 0 {
		return fmt.Errorf("withdrawal amount cannot be negative")
	}
	if !w.WithdrawalFrequency.Valid() {
		return fmt.Errorf("withdrawal frequency is required (monthly, quarterly or annually)")
	}
	return validateRateAndYears(w.AnnualRatePercent, w.DurationYears)
}

// SavePortfolio writes a portfolio back out as YAML.
func SavePortfolio(p *domain.Portfolio, filename string) error {
	b, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
