package calculation

import (
	"math"

	"github.com/sipcalc/projection-engine/internal/domain"
)

// periodicRate converts an annual percentage into a per-period fraction.
func periodicRate(annualRatePercent float64, periodsPerYear int) float64 {
	return annualRatePercent / 100.0 / float64(periodsPerYear)
}

// growthFactor is (1+r)^n computed through log1p, so rates too small to
// change 1+r still compound.
func growthFactor(r float64, n int) float64 {
	return math.Exp(float64(n) * math.Log1p(r))
}

// annuityFactor is ((1+r)^n - 1) / r, or n when r is zero. The numerator goes
// through expm1 so it does not cancel to zero for tiny r. The factor is never
// below n for r >= 0; the clamp absorbs rounding right above zero.
func annuityFactor(r float64, n int) float64 {
	if r == 0 {
		return float64(n)
	}
	return math.Max(math.Expm1(float64(n)*math.Log1p(r))/r, float64(n))
}

func validateSeriesInputs(amountName string, amount, annualRatePercent float64, periodsPerYear, totalPeriods int) error {
	if err := requireNonNegative(amountName, amount); err != nil {
		return err
	}
	if err := requireNonNegative("annual_rate_percent", annualRatePercent); err != nil {
		return err
	}
	if err := requirePeriodsPerYear(periodsPerYear); err != nil {
		return err
	}
	if totalPeriods < 0 {
		return invalidParam("total_periods", "must not be negative, got %d", totalPeriods)
	}
	return nil
}

// FutureValueOfSeries returns the future value of a contribution made at the
// start of every period (annuity-due):
//
//	FV = P × ((1+r)^n − 1)/r × (1+r),  r = rate/100/periodsPerYear
//
// A zero rate yields exactly P × n.
func FutureValueOfSeries(periodicAmount, annualRatePercent float64, periodsPerYear, totalPeriods int) (float64, error) {
	if err := validateSeriesInputs("periodic_amount", periodicAmount, annualRatePercent, periodsPerYear, totalPeriods); err != nil {
		return 0, err
	}
	r := periodicRate(annualRatePercent, periodsPerYear)
	var fv float64
	if r == 0 {
		fv = periodicAmount * float64(totalPeriods)
	} else {
		fv = periodicAmount * annuityFactor(r, totalPeriods) * (1 + r)
	}
	if err := checkFinite("future value of series", fv); err != nil {
		return 0, err
	}
	return fv, nil
}

// FutureValueOfLumpSum compounds a principal once a year.
func FutureValueOfLumpSum(principal, annualRatePercent float64, years int) (float64, error) {
	if err := requireNonNegative("principal", principal); err != nil {
		return 0, err
	}
	if err := requireNonNegative("annual_rate_percent", annualRatePercent); err != nil {
		return 0, err
	}
	if years < 0 {
		return 0, invalidParam("years", "must not be negative, got %d", years)
	}
	fv := principal * growthFactor(annualRatePercent/100.0, years)
	if err := checkFinite("future value of lump sum", fv); err != nil {
		return 0, err
	}
	return fv, nil
}

// RequiredPeriodicContribution is the contribution needed to reach
// targetFutureValue, using the ordinary-annuity divisor ((1+r)^n − 1)/r.
// It is not the exact inverse of FutureValueOfSeries: feeding its result back
// through the forward formula overshoots the target by a factor of (1+r).
// Goal planning uses this convention.
func RequiredPeriodicContribution(targetFutureValue, annualRatePercent float64, periodsPerYear, totalPeriods int) (float64, error) {
	return requiredContribution(targetFutureValue, annualRatePercent, periodsPerYear, totalPeriods, false)
}

// RequiredPeriodicContributionDue is the exact inverse of FutureValueOfSeries
// (annuity-due divisor).
func RequiredPeriodicContributionDue(targetFutureValue, annualRatePercent float64, periodsPerYear, totalPeriods int) (float64, error) {
	return requiredContribution(targetFutureValue, annualRatePercent, periodsPerYear, totalPeriods, true)
}

func requiredContribution(target, annualRatePercent float64, periodsPerYear, totalPeriods int, due bool) (float64, error) {
	if err := validateSeriesInputs("target_future_value", target, annualRatePercent, periodsPerYear, totalPeriods); err != nil {
		return 0, err
	}
	if totalPeriods == 0 {
		return 0, invalidParam("total_periods", "must be positive, got 0")
	}
	r := periodicRate(annualRatePercent, periodsPerYear)
	divisor := annuityFactor(r, totalPeriods)
	if due {
		divisor *= 1 + r
	}
	if err := checkFinite("annuity divisor", divisor); err != nil {
		return 0, err
	}
	pmt := target / divisor
	if err := checkFinite("required contribution", pmt); err != nil {
		return 0, err
	}
	return pmt, nil
}

// DepletionSchedule is the year-end state of a balance under withdrawal.
type DepletionSchedule struct {
	Steps []domain.WithdrawalStep
	// DepletedAtMonth is the month the balance reached zero, or 0.
	DepletedAtMonth int
}

// DepleteWithBalance simulates a balance month by month. Each month it grows
// by rate/100/12; on scheduled months withdrawalAmount × MonthsCovered is
// taken out. A withdrawal larger than the balance empties it, and the balance
// stays at zero from then on. Zero years yields an empty schedule.
func DepleteWithBalance(openingBalance, annualRatePercent, withdrawalAmount float64, frequency domain.WithdrawalFrequency, totalYears int) (DepletionSchedule, error) {
	if err := requireNonNegative("opening_balance", openingBalance); err != nil {
		return DepletionSchedule{}, err
	}
	if err := requireNonNegative("annual_rate_percent", annualRatePercent); err != nil {
		return DepletionSchedule{}, err
	}
	if err := requireNonNegative("withdrawal_amount", withdrawalAmount); err != nil {
		return DepletionSchedule{}, err
	}
	if !frequency.Valid() {
		return DepletionSchedule{}, invalidParam("withdrawal_frequency", "unsupported value %d", int(frequency))
	}
	if totalYears < 0 {
		return DepletionSchedule{}, invalidParam("duration_years", "must not be negative, got %d", totalYears)
	}
	if err := requireMaxYears("duration_years", totalYears); err != nil {
		return DepletionSchedule{}, err
	}

	schedule := DepletionSchedule{Steps: make([]domain.WithdrawalStep, 0, totalYears)}
	monthlyRate := periodicRate(annualRatePercent, 12)
	every := frequency.MonthsCovered()
	payout := withdrawalAmount * float64(every)

	balance := openingBalance
	withdrawn := 0.0
	depleted := false

	for month := 1; month <= totalYears*12; month++ {
		if !depleted {
			balance *= 1 + monthlyRate
			if month%every == 0 && payout > 0 {
				if balance <= payout {
					withdrawn += balance
					balance = 0
					depleted = true
					schedule.DepletedAtMonth = month
				} else {
					balance -= payout
					withdrawn += payout
				}
			}
		}
		if month%12 == 0 {
			if err := checkFinite("withdrawal balance", balance, withdrawn); err != nil {
				return DepletionSchedule{}, err
			}
			schedule.Steps = append(schedule.Steps, domain.WithdrawalStep{
				Year:           month / 12,
				Balance:        balance,
				TotalWithdrawn: withdrawn,
			})
		}
	}
	return schedule, nil
}
