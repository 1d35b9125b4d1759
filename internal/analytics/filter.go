package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/celulaviver/internal/model"
)

// ReportFilter 汇总报告列表与统计页共用的筛选条件
type ReportFilter struct {
	CellType string `form:"type"`
	CellName string `form:"cell"`
	Date     string `form:"date"`
	Period   string `form:"period"`
	Year     string `form:"year"`
}

func (f ReportFilter) matchType(cell *model.Cell) bool {
	if isAll(f.CellType) {
		return true
	}
	return cell != nil && string(cell.Type) == f.CellType
}

func (f ReportFilter) matchCell(r model.Report) bool {
	return isAll(f.CellName) || r.CellName == f.CellName
}

// FilterReports 返回报告列表视图：按类型、小组名、具体日期或周期筛选，按日期倒序
func FilterReports(reports []model.Report, cells []model.Cell, filter ReportFilter, now time.Time) []model.Report {
	byID := indexCells(cells)

	result := make([]model.Report, 0, len(reports))
	for _, r := range reports {
		var cell *model.Cell
		if c, ok := byID[r.CellID]; ok {
			cell = &c
		}
		if !filter.matchType(cell) || !filter.matchCell(r) {
			continue
		}

		if date := strings.TrimSpace(filter.Date); date != "" {
			if r.Date == date {
				result = append(result, r)
			}
			continue
		}
		if MatchesPeriod(r.Date, filter.Period, filter.Year, now) {
			result = append(result, r)
		}
	}

	SortReportsByDateDesc(result)
	return result
}

// MetricsReports 返回统计视图使用的报告：丢弃所属小组已删除的报告，忽略具体日期
func MetricsReports(reports []model.Report, cells []model.Cell, filter ReportFilter, now time.Time) []model.Report {
	byID := indexCells(cells)

	result := make([]model.Report, 0, len(reports))
	for _, r := range reports {
		c, ok := byID[r.CellID]
		if !ok {
			continue
		}
		if !filter.matchType(&c) || !filter.matchCell(r) {
			continue
		}
		if MatchesPeriod(r.Date, filter.Period, filter.Year, now) {
			result = append(result, r)
		}
	}
	return result
}

// SortReportsByDateDesc 原地按日期倒序排序，日期相同时保持原顺序
func SortReportsByDateDesc(reports []model.Report) {
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Date > reports[j].Date
	})
}

// ReportsForCell 返回某个小组的报告，按日期倒序
func ReportsForCell(reports []model.Report, cellID string) []model.Report {
	result := make([]model.Report, 0)
	for _, r := range reports {
		if r.CellID == cellID {
			result = append(result, r)
		}
	}
	SortReportsByDateDesc(result)
	return result
}

func indexCells(cells []model.Cell) map[string]model.Cell {
	byID := make(map[string]model.Cell, len(cells))
	for _, c := range cells {
		byID[c.ID] = c
	}
	return byID
}

func isAll(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || trimmed == model.AllCellTypes || strings.EqualFold(trimmed, "all")
}
