package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/celulaviver/internal/analytics"
	"github.com/celulaviver/internal/model"
)

// ReportInput 是领袖提交的聚会报告
type ReportInput struct {
	Date                   string          `json:"date" validate:"required,isodate"`
	Attendance             int             `json:"attendance" validate:"gte=0"`
	Visitors               int             `json:"visitors" validate:"gte=0"`
	Conversions            int             `json:"conversions" validate:"gte=0"`
	WeeklyVisits           int             `json:"weeklyVisits" validate:"gte=0"`
	FirstTimeVisitorsCount int             `json:"firstTimeVisitorsCount" validate:"gte=0"`
	FirstTimeVisitorsList  []model.Visitor `json:"firstTimeVisitorsList"`
	ChildrenCount          int             `json:"childrenCount" validate:"gte=0"`
	Offering               float64         `json:"offering" validate:"gte=0"`
	KidsOffering           float64         `json:"kidsOffering" validate:"gte=0"`
	Summary                string          `json:"summary"`
}

// DuplicateReportError 携带重复的日期，用于展示提示
type DuplicateReportError struct {
	Date string
}

func (e *DuplicateReportError) Error() string {
	return fmt.Sprintf("report already exists on %s", e.Date)
}

func (e *DuplicateReportError) Unwrap() error { return ErrDuplicateReport }

func (s *Store) buildReport(id string, cell model.Cell, in ReportInput) (model.Report, error) {
	in.Date = strings.TrimSpace(in.Date)
	if err := s.check(in); err != nil {
		return model.Report{}, fmt.Errorf("validate report: %w", err)
	}
	if err := ValidateVisitors(in.FirstTimeVisitorsCount, in.FirstTimeVisitorsList); err != nil {
		return model.Report{}, err
	}

	report := model.Report{
		ID:                     id,
		CellID:                 cell.ID,
		CellName:               cell.Name,
		Date:                   in.Date,
		Attendance:             in.Attendance,
		Visitors:               in.Visitors,
		Conversions:            in.Conversions,
		WeeklyVisits:           in.WeeklyVisits,
		FirstTimeVisitorsCount: in.FirstTimeVisitorsCount,
		FirstTimeVisitorsList:  normalizeVisitors(in.FirstTimeVisitorsCount, in.FirstTimeVisitorsList),
		ChildrenCount:          in.ChildrenCount,
		Offering:               in.Offering,
		KidsOffering:           in.KidsOffering,
		Summary:                strings.TrimSpace(in.Summary),
		IsLate:                 analytics.IsLateSubmission(cell, in.Date),
	}
	if cell.Type.Youth() {
		report.ChildrenCount = 0
		report.KidsOffering = 0
	}
	return report, nil
}

// AddReport 提交一份新报告。
// 同一小组同一日期已有报告时返回 ErrDuplicateReport，且不会触发任何写入。
// 每位首访者都会生成一条 visitor 通知。
func (s *Store) AddReport(cellID string, in ReportInput) (model.Report, error) {
	cell, ok := s.Cell(cellID)
	if !ok {
		return model.Report{}, ErrCellNotFound
	}
	report, err := s.buildReport(s.newID(), cell, in)
	if err != nil {
		return model.Report{}, err
	}

	s.mu.Lock()
	if analytics.HasReportOn(s.reports, cell.ID, report.Date, "") {
		s.mu.Unlock()
		return model.Report{}, &DuplicateReportError{Date: report.Date}
	}
	s.reports = append([]model.Report{report}, s.reports...)
	s.persistAlerting("insert report", cell.ID, reportAlertMessage, func(ctx context.Context) error {
		return s.gw.Reports().Insert(ctx, report)
	})
	s.mu.Unlock()

	for _, v := range report.FirstTimeVisitorsList {
		s.AddNotification(NotificationInput{
			Title:        "Novo Visitante!",
			Message:      fmt.Sprintf("%s visitou a célula %s.", v.Name, report.CellName),
			Type:         model.NotificationVisitor,
			VisitorPhone: v.Phone,
			CellID:       report.CellID,
		})
	}
	return report, nil
}

// UpdateReport 修改报告内容，所属小组保持不变
func (s *Store) UpdateReport(id string, in ReportInput) (model.Report, error) {
	existing, ok := s.Report(id)
	if !ok {
		return model.Report{}, ErrReportNotFound
	}

	cell, found := s.Cell(existing.CellID)
	if !found {
		cell = model.Cell{ID: existing.CellID, Name: existing.CellName}
	}
	report, err := s.buildReport(id, cell, in)
	if err != nil {
		return model.Report{}, err
	}
	report.CellName = existing.CellName
	if !found {
		report.IsLate = existing.IsLate
	}

	s.mu.Lock()
	if analytics.HasReportOn(s.reports, report.CellID, report.Date, id) {
		s.mu.Unlock()
		return model.Report{}, &DuplicateReportError{Date: report.Date}
	}
	idx := indexOf(s.reports, id, func(r model.Report) string { return r.ID })
	if idx < 0 {
		s.mu.Unlock()
		return model.Report{}, ErrReportNotFound
	}
	reports := append([]model.Report(nil), s.reports...)
	reports[idx] = report
	s.reports = reports
	s.persist("update report", func(ctx context.Context) error {
		return s.gw.Reports().Update(ctx, report)
	})
	s.mu.Unlock()
	return report, nil
}

// DeleteReport 删除报告
func (s *Store) DeleteReport(id string) error {
	s.mu.Lock()
	reports, ok := without(s.reports, id, func(r model.Report) string { return r.ID })
	if !ok {
		s.mu.Unlock()
		return ErrReportNotFound
	}
	s.reports = reports
	s.persist("delete report", func(ctx context.Context) error {
		return s.gw.Reports().Delete(ctx, id)
	})
	s.mu.Unlock()
	return nil
}
