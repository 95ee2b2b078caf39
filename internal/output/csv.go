package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/jmwhitney/locumcalc/internal/domain"
)

// CSVFormatter writes a one-row summary suitable for spreadsheets.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(r *domain.ContractResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"State", "FilingStatus", "DurationWeeks", "BasePay", "OvertimePay",
		"Bonuses", "TotalStipends", "GrossPay", "TotalDeductions",
		"TotalTaxes", "NetPay", "EffectiveHourlyRate", "TakeHomePercent",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		r.Input.Jurisdiction.String(),
		r.Input.FilingStatus.String(),
		strconv.Itoa(r.Input.DurationWeeks),
		r.Breakdown.BasePay.StringFixed(2),
		r.Breakdown.OvertimePay.StringFixed(2),
		r.Breakdown.BonusTotal.StringFixed(2),
		r.Totals.TotalStipends.StringFixed(2),
		r.Totals.GrossPay.StringFixed(2),
		r.Totals.TotalDeductions.StringFixed(2),
		r.Totals.TotalTaxes.StringFixed(2),
		r.Totals.NetPay.StringFixed(2),
		r.Totals.EffectiveHourlyRate.StringFixed(2),
		r.Metrics.TakeHomePercent.StringFixed(1),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
