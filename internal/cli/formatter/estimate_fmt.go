package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/deadline/internal/contract"
	"github.com/alexanderramin/deadline/internal/domain"
	"github.com/goccy/go-json"
)

// FormatEstimate renders the console report: start date, one row per
// scenario and the realistic fee with its margin.
func FormatEstimate(resp *contract.EstimateResponse, money *Money) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		StyleDim.Render("START"),
		StyleFg.Render(HumanDate(resp.StartDate)+" ("+resp.StartDate.Format(domain.DateLayout)+")")))

	headers := []string{"SCENARIO", "HOURS", "DONE BY", "SPAN", "FEE"}
	rows := make([][]string, 0, len(domain.Scenarios))
	for _, sc := range domain.Scenarios {
		est, ok := resp.Get(sc)
		if !ok {
			continue
		}
		doneBy := StyleFg.Render(FormatDeadline(est.Deadline))
		if est.Deadline == nil {
			doneBy = StyleRed.Render(NeverLabel)
		}
		rows = append(rows, []string{
			ScenarioIndicator(sc),
			FormatHours(est.WorkHours),
			doneBy,
			Dim(CalendarSpan(resp.StartDate, est.Deadline)),
			money.Format(est.Fee, est.Currency),
		})
	}
	b.WriteString(RenderAlignedTable(headers, rows,
		[]Align{AlignLeft, AlignRight, AlignLeft, AlignRight, AlignRight}))

	if realistic, ok := resp.Get(domain.ScenarioRealistic); ok {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s %s",
			StyleDim.Render("Fee:"),
			Bold(money.FormatMargin(realistic.Fee, realistic.FeeMargin, realistic.Currency))))
	}

	return RenderBox("Estimate", b.String())
}


type estimateJSON struct {
	WorkHours          int     `json:"workHours"`
	Deadline           *string `json:"deadline"`
	Fee                float64 `json:"fee"`
	FeeMargin          float64 `json:"feeMargin"`
	FormattedFee       string  `json:"formattedFee"`
	FormattedFeeMargin string  `json:"formattedFeeMargin"`
	Currency           string  `json:"currency"`
}

type reportJSON struct {
	RunID     string        `json:"runId"`
	StartDate string        `json:"startDate"`
	BestCase  *estimateJSON `json:"BEST_CASE,omitempty"`
	WorstCase *estimateJSON `json:"WORST_CASE,omitempty"`
	Realistic *estimateJSON `json:"REALISTIC,omitempty"`
}

// FormatEstimateJSON renders the response as indented JSON. Unreachable
// deadlines are null.
func FormatEstimateJSON(resp *contract.EstimateResponse, money *Money) ([]byte, error) {
	convert := func(sc domain.Scenario) *estimateJSON {
		est, ok := resp.Get(sc)
		if !ok {
			return nil
		}
		out := &estimateJSON{
			WorkHours:          est.WorkHours,
			Fee:                est.Fee,
			FeeMargin:          est.FeeMargin,
			FormattedFee:       money.Format(est.Fee, est.Currency),
			FormattedFeeMargin: money.Format(est.FeeMargin, est.Currency),
			Currency:           est.Currency,
		}
		if est.Deadline != nil {
			d := est.Deadline.Format(domain.DateLayout)
			out.Deadline = &d
		}
		return out
	}

	report := reportJSON{
		RunID:     resp.RunID,
		StartDate: resp.StartDate.Format(domain.DateLayout),
		BestCase:  convert(domain.ScenarioBestCase),
		WorstCase: convert(domain.ScenarioWorstCase),
		Realistic: convert(domain.ScenarioRealistic),
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}
	return append(data, '\n'), nil
}
