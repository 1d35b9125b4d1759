// Package export 将报告导出为 XLSX 表格。
package export

import (
	"fmt"
	"io"

	"github.com/celulaviver/internal/analytics"
	"github.com/celulaviver/internal/locale"
	"github.com/celulaviver/internal/model"
	"github.com/xuri/excelize/v2"
)

// SheetName 是报告工作表名称
const SheetName = "Relatórios"

// ContentType 是 XLSX 的 MIME 类型
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var headers = []string{
	"Data", "Célula", "Presentes", "Visitantes", "1ª Vez", "Conversões",
	"Visitas", "Crianças", "Oferta", "Oferta Kids", "Atrasado", "Resumo",
}

func reportRow(r model.Report) []interface{} {
	late := "Não"
	if r.IsLate {
		late = "Sim"
	}
	return []interface{}{
		locale.FormatISODate(r.Date),
		r.CellName,
		r.Attendance,
		r.Visitors,
		r.FirstTimeVisitorsCount,
		r.Conversions,
		r.WeeklyVisits,
		r.ChildrenCount,
		analytics.Money(r.Offering).InexactFloat64(),
		analytics.Money(r.KidsOffering).InexactFloat64(),
		late,
		r.Summary,
	}
}

// Workbook 生成包含报告明细与合计行的工作簿
func Workbook(reports []model.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := setRow(f, 1, toInterfaces(headers)); err != nil {
		_ = f.Close()
		return nil, err
	}
	for i, r := range reports {
		if err := setRow(f, i+2, reportRow(r)); err != nil {
			_ = f.Close()
			return nil, err
		}
	}

	totals := analytics.ComputeTotals(reports)
	totalRow := []interface{}{
		"Total", "",
		totals.Attendance,
		totals.Visitors,
		totals.FirstTimeVisitors,
		totals.Conversions,
		totals.WeeklyVisits,
		totals.Children,
		totals.Offering.InexactFloat64(),
		totals.KidsOffering.InexactFloat64(),
		"", "",
	}
	if err := setRow(f, len(reports)+2, totalRow); err != nil {
		_ = f.Close()
		return nil, err
	}

	return f, nil
}

// WriteReports 直接把工作簿写入 w
func WriteReports(w io.Writer, reports []model.Report) error {
	f, err := Workbook(reports)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// SaveReports 将工作簿保存到文件
func SaveReports(path string, reports []model.Report) error {
	f, err := Workbook(reports)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// FileName 返回导出文件名，例如 relatorios-2024-05.xlsx
func FileName(period, year string) string {
	if period == "" {
		period = analytics.PeriodAll
	}
	if year == "" {
		year = analytics.YearAll
	}
	return fmt.Sprintf("relatorios-%s-%s.xlsx", year, period)
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("resolve cell: %w", err)
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", row, err)
	}
	return nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
