package dashboard

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"

	"github.com/satriapw/tolldash/internal/domain"
)

// DeriveInsights builds the natural-language highlight strings. Percentages
// are whole numbers of total traffic; a zero total yields 0% instead of a
// division error. The printer renders counts with locale separators.
func DeriveInsights(
	kpi domain.DashboardKpi,
	paymentMethods []domain.PaymentMethodData,
	gateTraffic []domain.GateTraffic,
	shiftTraffic []domain.ShiftTraffic,
	branchTraffic []domain.BranchTraffic,
	printer *message.Printer,
) domain.DashboardInsights {
	total := kpi.TotalTraffic

	maxMethod := domain.PaymentMethodData{Method: "-"}
	maxCount := -1
	for _, m := range paymentMethods {
		if m.Count > maxCount {
			maxCount = m.Count
			maxMethod = m
		}
	}
	paymentPct := percentage(maxMethod.Count, total)
	payment := fmt.Sprintf("%s menyumbang %d%% dari total transaksi", maxMethod.Method, paymentPct)

	var gate string
	if len(gateTraffic) > 0 {
		gate = fmt.Sprintf("%s mencatat volume tertinggi dengan %s kendaraan",
			gateTraffic[0].GateName, printer.Sprintf("%d", gateTraffic[0].Traffic))
	}

	maxShift := domain.ShiftTraffic{ShiftName: "-"}
	maxShiftCount := -1
	for _, s := range shiftTraffic {
		if s.Traffic > maxShiftCount {
			maxShiftCount = s.Traffic
			maxShift = s
		}
	}
	shiftPct := percentage(maxShift.Traffic, total)
	shift := fmt.Sprintf("%s menangani %d%% lalu lintas harian", maxShift.ShiftName, shiftPct)

	var branch string
	if len(branchTraffic) > 0 {
		branch = fmt.Sprintf("%s menjadi ruas dengan volume tertinggi", branchTraffic[0].BranchName)
	}

	return domain.DashboardInsights{
		General:           []string{payment, shift, gate},
		Payment:           payment,
		Shift:             shift,
		Gate:              gate,
		Branch:            branch,
		PaymentPercentage: paymentPct,
		ShiftPercentage:   shiftPct,
	}
}

// percentage is round(100*part/total), 0 when total is 0. Rounding is
// half-up, matching how the figures were presented historically.
func percentage(part, total int) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(part) * 100).
		Div(decimal.NewFromInt(int64(total))).
		Round(0)
	return int(pct.IntPart())
}
