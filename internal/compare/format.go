package compare

import (
	"bytes"
	"fmt"
	"text/tabwriter"
)

// FormatTable renders a comparison as an aligned text table, ranked order
// preserved.
func FormatTable(c *Comparison) string {
	buf := &bytes.Buffer{}
	w := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Rank\tState\tNet Pay\tAdjusted Net\tEff. Tax %\tCOL Index\tScore")
	for i, o := range c.Outcomes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
			i+1,
			o.Jurisdiction,
			o.NetPay.StringFixed(2),
			o.AdjustedNetPay.StringFixed(2),
			o.EffectiveTaxRate.StringFixed(1),
			o.CostOfLivingIndex.StringFixed(0),
			o.LocationScore,
		)
	}
	w.Flush()
	return buf.String()
}
