package output

import (
	"bytes"
	"encoding/csv"

	"github.com/sipcalc/projection-engine/internal/domain"
)

// CSVDetailedExporter writes one row per projection per period, ready for
// charting. Retirement chains emit both phases.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.PortfolioReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Kind", "Phase", "Period", "TotalContributed", "Balance", "Gain", "Withdrawn", "GoalCorpus"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	writeSeries := func(p domain.NamedProjection, phase string, series []domain.PeriodSnapshot) error {
		for _, s := range series {
			row := []string{
				p.Name,
				string(p.Kind),
				phase,
				intToString(s.PeriodIndex),
				FormatAmount(s.TotalContributed),
				FormatAmount(s.Balance),
				FormatAmount(s.Gain),
				FormatAmount(s.Withdrawn),
				FormatAmount(s.GoalCorpus),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	}

	for _, p := range report.Projections {
		var err error
		if p.Retirement != nil {
			if err = writeSeries(p, "accumulation", p.Retirement.Accumulation.Series); err == nil {
				err = writeSeries(p, "withdrawal", p.Retirement.Withdrawal.Series)
			}
		} else {
			err = writeSeries(p, "", p.Result.Series)
		}
		if err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
