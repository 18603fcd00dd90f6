package output

import (
	"bytes"
	"encoding/csv"

	"github.com/sipcalc/projection-engine/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per projection).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.PortfolioReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Name", "Kind", "Years", "TotalContributed", "FinalBalance", "TotalGain", "TotalWithdrawn", "DepletedInYear"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, p := range report.Projections {
		s := p.Result.Summary
		row := []string{
			p.Name,
			string(p.Kind),
			intToString(len(p.Result.Series)),
			FormatAmount(s.TotalContributed),
			FormatAmount(s.FinalBalance),
			FormatAmount(s.TotalGain),
			FormatAmount(s.TotalWithdrawn),
			intToString(s.DepletedInYear),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
