package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/sipcalc/projection-engine/internal/calculation"
	"github.com/sipcalc/projection-engine/internal/domain"
	"github.com/sipcalc/projection-engine/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func TestSIPCommandConsole(t *testing.T) {
	out, err := execute(t, "sip", "--amount", "5000", "--rate", "12", "--years", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "SIP [sip]")
	assert.Contains(t, out, "₹11,61,695")
	assert.Contains(t, out, "₹6,00,000")
}

func TestSIPCommandJSON(t *testing.T) {
	out, err := execute(t, "sip", "--amount", "5000", "--rate", "12", "--years", "10", "--format", "json")
	require.NoError(t, err)

	var report domain.PortfolioReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Projections, 1)
	res := report.Projections[0].Result
	require.Len(t, res.Series, 10)
	assert.InDelta(t, 1161695.38, res.Summary.FinalBalance, 0.01)
	assert.InDelta(t, 600000.0, res.Summary.TotalContributed, 1e-9)
}

func TestLumpSumUsesConfiguredReturn(t *testing.T) {
	out, err := execute(t, "lumpsum", "--principal", "1000000", "--years", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "₹52,33,836")

	dir := t.TempDir()
	settings := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("assumptions:\n  fixed_return_percent: 12\n"), 0644))

	out, err = execute(t, "--config", settings, "lumpsum", "--principal", "1000000", "--years", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "₹31,05,848")
}

func TestSWPCommandReportsDepletion(t *testing.T) {
	out, err := execute(t, "swp", "--balance", "100000", "--withdrawal", "10000", "--rate", "8", "--years", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Depleted in year 1")
	assert.Contains(t, out, "₹1,03,842")
}

func TestGoalCommand(t *testing.T) {
	out, err := execute(t, "goal", "--target", "10000000", "--years", "25", "--rate", "18")
	require.NoError(t, err)
	assert.Contains(t, out, "₹4,29,18,707")
	assert.Contains(t, out, "₹7,481")
}

func TestNPSAndRetirementCommands(t *testing.T) {
	out, err := execute(t, "nps", "--amount", "5000", "--rate", "10", "--years", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly pension:      ₹13,379")

	out, err = execute(t, "retirement", "--amount", "10000", "--accumulation-rate", "12", "--accumulation-years", "10",
		"--withdrawal", "20000", "--withdrawal-rate", "8", "--withdrawal-years", "15")
	require.NoError(t, err)
	assert.Contains(t, out, "Corpus at retirement: ₹23,23,391")
	assert.NotContains(t, out, "Depleted")
}

func TestDailySIPCommand(t *testing.T) {
	out, err := execute(t, "daily-sip", "--amount", "1000", "--rate", "12", "--years", "10", "-f", "csv")
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "daily_sip", rows[1][1])
	assert.Equal(t, "7057350.33", rows[1][4])
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "--input", "testdata/portfolio.yaml", "--format", "csv")
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	var names []string
	for _, r := range rows[1:] {
		names = append(names, r[0])
	}
	assert.Equal(t, []string{"Equity SIP", "Top-up SIP", "All SIPs", "Bonus", "Pension SWP", "Retirement corpus"}, names)
	assert.Equal(t, "3105848.21", rows[4][4])
	assert.Equal(t, "390179.88", rows[5][4])
}

func TestCommandErrors(t *testing.T) {
	_, err := execute(t, "sip", "--amount", "5000", "--years", "10", "--format", "pdf")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)

	_, err = execute(t, "sip", "--amount", "-5", "--rate", "12", "--years", "10")
	assert.ErrorIs(t, err, calculation.ErrInvalidParameter)

	_, err = execute(t, "sip", "--amount", "5000", "--rate", "12", "--years", "1099511627776")
	assert.ErrorIs(t, err, calculation.ErrInvalidParameter)

	_, err = execute(t, "swp", "--balance", "1000", "--withdrawal", "10", "--years", "1", "--frequency", "weekly")
	assert.ErrorContains(t, err, "unsupported withdrawal frequency")

	_, err = execute(t, "sip", "--amount", "5000")
	assert.ErrorContains(t, err, "required flag")

	_, err = execute(t, "run", "--input", "testdata/missing.yaml")
	assert.ErrorContains(t, err, "failed to load portfolio")
}
