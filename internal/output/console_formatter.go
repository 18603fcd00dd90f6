package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/sipcalc/projection-engine/internal/domain"
)

// ConsoleFormatter renders summary cards and a yearly table per projection.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.PortfolioReport) ([]byte, error) {
	var buf bytes.Buffer
	title := "PROJECTION SUMMARY"
	if report.Name != "" {
		title = strings.ToUpper(report.Name) + " - " + title
	}
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len(title)))

	for _, p := range report.Projections {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "%s [%s]\n", p.Name, p.Kind)
		writeDetails(&buf, p)
		if p.Retirement != nil {
			fmt.Fprintln(&buf, "  Accumulation phase:")
			writeTable(&buf, p.Retirement.Accumulation.Series, false)
			fmt.Fprintln(&buf, "  Withdrawal phase:")
			writeTable(&buf, p.Retirement.Withdrawal.Series, true)
			continue
		}
		writeTable(&buf, p.Result.Series, p.Kind == domain.KindSWP)
	}

	if len(report.Assumptions) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "Assumptions:")
		for _, a := range report.Assumptions {
			fmt.Fprintf(&buf, "  - %s\n", a)
		}
	}
	return buf.Bytes(), nil
}

func writeDetails(buf *bytes.Buffer, p domain.NamedProjection) {
	s := p.Result.Summary
	switch {
	case p.Goal != nil:
		fmt.Fprintf(buf, "  Goal corpus (inflation-adjusted): %s (%s)\n",
			FormatCurrency(p.Goal.InflationAdjustedTarget), FormatCompact(p.Goal.InflationAdjustedTarget))
		fmt.Fprintf(buf, "  Required monthly SIP:             %s\n", FormatCurrency(p.Goal.RequiredPeriodicAmount))
	case p.NPS != nil:
		fmt.Fprintf(buf, "  Corpus at retirement: %s (%s)\n", FormatCurrency(p.NPS.Corpus), FormatCompact(p.NPS.Corpus))
		fmt.Fprintf(buf, "  Annuity purchase:     %s\n", FormatCurrency(p.NPS.AnnuityCorpus))
		fmt.Fprintf(buf, "  Lump sum:             %s\n", FormatCurrency(p.NPS.LumpSum))
		fmt.Fprintf(buf, "  Monthly pension:      %s\n", FormatCurrency(p.NPS.MonthlyPension))
	case p.Retirement != nil:
		fmt.Fprintf(buf, "  Corpus at retirement: %s\n", FormatCurrency(p.Retirement.Accumulation.Summary.FinalBalance))
		fmt.Fprintf(buf, "  Total withdrawn:      %s\n", FormatCurrency(s.TotalWithdrawn))
		fmt.Fprintf(buf, "  Remaining balance:    %s\n", FormatCurrency(s.FinalBalance))
		if s.DepletedInYear > 0 {
			fmt.Fprintf(buf, "  Depleted in year %d\n", s.DepletedInYear)
		}
		return
	}
	label := "Invested"
	if p.Kind == domain.KindSWP {
		label = "Opening balance"
	}
	fmt.Fprintf(buf, "  %s: %s  Final value: %s (%s)  Gain: %s\n",
		label, FormatCurrency(s.TotalContributed), FormatCurrency(s.FinalBalance), FormatCompact(s.FinalBalance), FormatCurrency(s.TotalGain))
	if p.Kind == domain.KindSWP {
		fmt.Fprintf(buf, "  Total withdrawn: %s\n", FormatCurrency(s.TotalWithdrawn))
		if s.DepletedInYear > 0 {
			fmt.Fprintf(buf, "  Depleted in year %d\n", s.DepletedInYear)
		}
	}
}

func writeTable(buf *bytes.Buffer, series []domain.PeriodSnapshot, withdrawals bool) {
	tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	if withdrawals {
		fmt.Fprintln(tw, "Year\tWithdrawn\tBalance\tGain\t")
	} else {
		fmt.Fprintln(tw, "Year\tInvested\tBalance\tGain\t")
	}
	for _, s := range series {
		first := s.TotalContributed
		if withdrawals {
			first = s.Withdrawn
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t\n", s.PeriodIndex, FormatCurrency(first), FormatCurrency(s.Balance), FormatCurrency(s.Gain))
	}
	_ = tw.Flush()
}
