package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/celulaviver/internal/model"
)

// AttentionLevel 为小组关注等级
type AttentionLevel string

const (
	LevelCritical  AttentionLevel = "Crítico"
	LevelAttention AttentionLevel = "Atenção"
	LevelNormal    AttentionLevel = "Normal"
)

func (l AttentionLevel) severity() int {
	switch l {
	case LevelCritical:
		return 0
	case LevelAttention:
		return 1
	default:
		return 2
	}
}

// CellAttention 是单个小组的关注等级结果
type CellAttention struct {
	CellName                 string         `json:"name"`
	Level                    AttentionLevel `json:"level"`
	Label                    string         `json:"label"`
	Reason                   string         `json:"reason"`
	WeeksWithoutVisitors     int            `json:"weeksWithoutVisitors"`
	AverageVisitors          float64        `json:"avgVisitors"`
	AverageAttendance        float64        `json:"avgAttendance"`
	AverageVisitorsDisplay   string         `json:"avgVisitorsDisplay"`
	AverageAttendanceDisplay string         `json:"avgAttendanceDisplay"`
}

// AttentionLevels 按小组名分组，依据最近连续无访客的报告数与平均访客数分级。
// 先判断 Atenção，再判断 Crítico；输出按 Crítico、Atenção、Normal 稳定排序。
func AttentionLevels(reports []model.Report) []CellAttention {
	order := make([]string, 0)
	groups := make(map[string][]model.Report)
	for _, r := range reports {
		if _, seen := groups[r.CellName]; !seen {
			order = append(order, r.CellName)
		}
		groups[r.CellName] = append(groups[r.CellName], r)
	}

	result := make([]CellAttention, 0, len(order))
	for _, name := range order {
		group := append([]model.Report(nil), groups[name]...)
		SortReportsByDateDesc(group)
		result = append(result, classify(name, group))
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Level.severity() < result[j].Level.severity()
	})
	return result
}

func classify(name string, group []model.Report) CellAttention {
	streak := 0
	for _, r := range group {
		if r.Visitors != 0 {
			break
		}
		streak++
	}

	var visitors, attendance int
	for _, r := range group {
		visitors += r.Visitors
		attendance += r.Attendance
	}
	avgVisitors := float64(visitors) / float64(len(group))
	avgAttendance := float64(attendance) / float64(len(group))

	item := CellAttention{
		CellName:                 name,
		WeeksWithoutVisitors:     streak,
		AverageVisitors:          avgVisitors,
		AverageAttendance:        avgAttendance,
		AverageVisitorsDisplay:   oneDecimal(avgVisitors),
		AverageAttendanceDisplay: oneDecimal(avgAttendance),
	}

	switch {
	case streak >= 2:
		item.Level = LevelAttention
		item.Label = "Precisa de atenção"
		item.Reason = fmt.Sprintf("Célula há %d relatórios consecutivos sem visitantes. Requer atenção.", streak)
	case avgVisitors <= 0:
		item.Level = LevelCritical
		item.Label = "Acompanhar"
		item.Reason = "Célula sem média de visitantes no período selecionado. Precisa de acompanhamento."
	default:
		item.Level = LevelNormal
		item.Label = "Tudo OK"
		item.Reason = "Célula com visitantes regulares. Tudo OK."
	}
	return item
}

func oneDecimal(value float64) string {
	return fmt.Sprintf("%.1f", math.Round(value*10)/10)
}
