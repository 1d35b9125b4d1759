package analytics

import (
	"github.com/celulaviver/internal/model"
	"github.com/shopspring/decimal"
)

// Totals 为筛选后报告的合计
type Totals struct {
	Attendance           int             `json:"attendance"`
	Visitors             int             `json:"visitors"`
	FirstTimeVisitors    int             `json:"firstTimeVisitors"`
	Conversions          int             `json:"conversions"`
	WeeklyVisits         int             `json:"weeklyVisits"`
	Children             int             `json:"children"`
	Offering             decimal.Decimal `json:"offering"`
	KidsOffering         decimal.Decimal `json:"kidsOffering"`
	Baptized             int             `json:"baptized"`
	NotBaptized          int             `json:"notBaptized"`
	AttendedEncounter    int             `json:"attendedEncounter"`
	NotAttendedEncounter int             `json:"notAttendedEncounter"`
}

// TotalOffering 返回成人与儿童奉献之和
func (t Totals) TotalOffering() decimal.Decimal {
	return t.Offering.Add(t.KidsOffering)
}

// ComputeTotals 汇总报告数值并统计首访者的受洗与 Encontro 情况
func ComputeTotals(reports []model.Report) Totals {
	totals := Totals{Offering: decimal.Zero, KidsOffering: decimal.Zero}
	for _, r := range reports {
		totals.Attendance += r.Attendance
		totals.Visitors += r.Visitors
		totals.FirstTimeVisitors += r.FirstTimeVisitorsCount
		totals.Conversions += r.Conversions
		totals.WeeklyVisits += r.WeeklyVisits
		totals.Children += r.ChildrenCount
		totals.Offering = totals.Offering.Add(Money(r.Offering))
		totals.KidsOffering = totals.KidsOffering.Add(Money(r.KidsOffering))

		for _, v := range r.FirstTimeVisitorsList {
			if v.IsBaptized {
				totals.Baptized++
			} else {
				totals.NotBaptized++
			}
			if v.HasAttendedEncounter {
				totals.AttendedEncounter++
			} else {
				totals.NotAttendedEncounter++
			}
		}
	}
	return totals
}

// Money 将浮点金额转换为精确到分的十进制数
func Money(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(2)
}
