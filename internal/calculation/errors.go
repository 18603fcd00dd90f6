package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/sipcalc/projection-engine/internal/domain"
)

var (
	// ErrInvalidParameter is returned for negative amounts or rates,
	// non-positive durations and unsupported enum values.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNumericOverflow is returned when a result is not a finite number.
	ErrNumericOverflow = errors.New("numeric overflow")
)

func invalidParam(name string, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidParameter, name, fmt.Sprintf(format, args...))
}

func requireNonNegative(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return invalidParam(name, "must be a finite number, got %v", value)
	}
	if value < 0 {
		return invalidParam(name, "must not be negative, got %v", value)
	}
	return nil
}

func requirePositiveYears(name string, years int) error {
	if years <= 0 {
		return invalidParam(name, "must be positive, got %d", years)
	}
	return requireMaxYears(name, years)
}

func requireMaxYears(name string, years int) error {
	if years > domain.MaxDurationYears {
		return invalidParam(name, "must not exceed %d, got %d", domain.MaxDurationYears, years)
	}
	return nil
}

func requirePeriodsPerYear(periodsPerYear int) error {
	if periodsPerYear != 12 && periodsPerYear != 365 {
		return invalidParam("periods_per_year", "must be 12 or 365, got %d", periodsPerYear)
	}
	return nil
}

// checkFinite guards every value handed back to callers.
func checkFinite(name string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrNumericOverflow, name)
		}
	}
	return nil
}
