package output

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/sipcalc/projection-engine/internal/calculation"
	"github.com/sipcalc/projection-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestReport(t *testing.T) *domain.PortfolioReport {
	t.Helper()
	engine := calculation.NewProjectionEngine()
	report, err := engine.RunPortfolio(context.Background(), &domain.Portfolio{
		Name: "Test plan",
		SIPs: []domain.ContributionPlan{{Name: "Hero SIP", PeriodicAmount: 5000, AnnualRatePercent: 12, DurationYears: 10}},
		Withdrawals: []domain.WithdrawalPlan{{
			Name: "SWP", OpeningBalance: 100000, WithdrawalAmount: 10000,
			WithdrawalFrequency: domain.WithdrawMonthly, AnnualRatePercent: 8, DurationYears: 2,
		}},
		Goals: []domain.GoalPlan{{Name: "Home", TargetAmountToday: 10000000, DurationYears: 25, AnnualRatePercent: 18, AnnualInflationPercent: 6}},
		NPS:   []domain.NPSPlan{{Name: "NPS", MonthlyContribution: 5000, AnnualRatePercent: 10, DurationYears: 25}},
		Retirement: []domain.RetirementIncomePlan{{
			Name:         "Income",
			Accumulation: domain.ContributionPlan{PeriodicAmount: 10000, AnnualRatePercent: 12, DurationYears: 10},
			Withdrawal:   domain.WithdrawalPlan{WithdrawalAmount: 20000, WithdrawalFrequency: domain.WithdrawMonthly, AnnualRatePercent: 8, DurationYears: 15},
		}},
	})
	require.NoError(t, err)
	return report
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"console", "console"},
		{"  JSON ", "json"},
		{"json-pretty", "json"},
		{"csv", "csv"},
		{"series", "detailed-csv"},
		{"table", "console"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f := GetFormatterByName(tt.in)
			require.NotNil(t, f)
			assert.Equal(t, tt.want, f.Name())
		})
	}
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "detailed-csv", "json"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "series")
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)
	content := string(out)

	assert.True(t, strings.HasPrefix(content, "TEST PLAN - PROJECTION SUMMARY"))
	assert.Contains(t, content, "Hero SIP [sip]")
	assert.Contains(t, content, "₹11,61,695")
	assert.Contains(t, content, "₹6,00,000")
	assert.Contains(t, content, "Final value: ₹11,61,695 (₹11.6 Lakhs)")
	assert.Contains(t, content, "₹4,29,18,707 (₹4.29 Cr)")
	assert.Contains(t, content, "Depleted in year 1")
	assert.Contains(t, content, "Goal corpus (inflation-adjusted): ₹4,29,18,707")
	assert.Contains(t, content, "Monthly pension:      ₹13,379")
	assert.Contains(t, content, "Accumulation phase:")
	assert.Contains(t, content, "Withdrawal phase:")
	assert.Contains(t, content, "Fixed return: 18.00% per year")
}

func TestJSONFormatter(t *testing.T) {
	report := buildTestReport(t)
	out, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded domain.PortfolioReport
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Test plan", decoded.Name)
	require.Len(t, decoded.Projections, 5)
	assert.Equal(t, domain.KindGoal, decoded.Projections[2].Kind)
	require.NotNil(t, decoded.Projections[2].Goal)
	assert.InDelta(t, 42918707.2, decoded.Projections[2].Goal.InflationAdjustedTarget, 0.01)
	assert.Contains(t, string(out), `"kind": "swp"`)
}

func TestCSVSummarizer(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestReport(t))
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, []string{"Hero SIP", "sip", "10", "600000.00", "1161695.38", "561695.38", "0.00", "0"}, rows[1])
	assert.Equal(t, "1", rows[2][7])
}

func TestCSVDetailedExporter(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestReport(t))
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	// header + SIP 10 + SWP 2 + goal 25 + NPS 25 + retirement 10 + 15
	require.Len(t, rows, 1+10+2+25+25+10+15)

	var phases []string
	for _, r := range rows[1:] {
		if r[0] == "Income" && (len(phases) == 0 || phases[len(phases)-1] != r[2]) {
			phases = append(phases, r[2])
		}
	}
	assert.Equal(t, []string{"accumulation", "withdrawal"}, phases)
}

func TestWriteReport(t *testing.T) {
	report := buildTestReport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, report, "csv-summary"))
	assert.True(t, strings.HasPrefix(buf.String(), "Name,Kind"))

	err := WriteReport(&buf, report, "pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "console, csv, detailed-csv, json")
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "names", F: func(r *domain.PortfolioReport) ([]byte, error) {
		return []byte(r.Name), nil
	}}
	out, err := f.Format(&domain.PortfolioReport{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, "x", string(out))
	assert.Equal(t, "names", f.Name())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "₹31,05,848", FormatCurrency(3105848.21))
	assert.Equal(t, "₹31.1 Lakhs", FormatCompact(3105848.21))
	assert.Equal(t, "₹50,000", FormatCompact(50000))
	assert.Equal(t, "3105848.21", FormatAmount(3105848.2083))
	assert.Equal(t, "42", intToString(42))
}
