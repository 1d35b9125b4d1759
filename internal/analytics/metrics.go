package analytics

import (
	"time"

	"github.com/celulaviver/internal/model"
)

// Slice 是饼图或分组柱状图中的一项
type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Comparison 是出席对比柱状图的数据
type Comparison struct {
	Name       string `json:"name"`
	Attendance int    `json:"totalPresentes"`
	Visitors   int    `json:"visitantes"`
	FirstTime  int    `json:"primeiraVez"`
}

// Metrics 是管理员统计页的完整视图
type Metrics struct {
	Totals         Totals          `json:"totals"`
	TotalPeople    int             `json:"totalPeople"`
	Comparison     []Comparison    `json:"comparisonData"`
	VisitorProfile []Slice         `json:"visitorProfileData"`
	Baptized       []Slice         `json:"baptizedPieData"`
	Encounter      []Slice         `json:"encounterPieData"`
	Attention      []CellAttention `json:"attentionLevels"`
	Reports        int             `json:"reportCount"`
}

// ComputeMetrics 基于统计筛选计算全部图表数据
func ComputeMetrics(reports []model.Report, cells []model.Cell, filter ReportFilter, now time.Time) Metrics {
	filtered := MetricsReports(reports, cells, filter, now)
	totals := ComputeTotals(filtered)

	recurrent := totals.Visitors - totals.FirstTimeVisitors
	if recurrent < 0 {
		recurrent = 0
	}

	return Metrics{
		Totals:      totals,
		TotalPeople: totals.Attendance + totals.Visitors,
		Comparison: []Comparison{{
			Name:       "Presença",
			Attendance: totals.Attendance,
			Visitors:   totals.Visitors,
			FirstTime:  totals.FirstTimeVisitors,
		}},
		VisitorProfile: []Slice{
			{Name: "Visitantes 1ª Vez", Value: totals.FirstTimeVisitors},
			{Name: "Recorrentes", Value: recurrent},
		},
		Baptized: []Slice{
			{Name: "Batizados", Value: totals.Baptized},
			{Name: "Não Batizados", Value: totals.NotBaptized},
		},
		Encounter: []Slice{
			{Name: "Foi ao Encontro", Value: totals.AttendedEncounter},
			{Name: "Não Foi", Value: totals.NotAttendedEncounter},
		},
		Attention: AttentionLevels(filtered),
		Reports:   len(filtered),
	}
}
