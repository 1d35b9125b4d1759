// Package analytics 从小组与报告派生视图数据，全部为纯函数。
package analytics

import (
	"strconv"
	"strings"
	"time"

	"github.com/celulaviver/internal/locale"
	"github.com/celulaviver/internal/model"
)

const (
	defaultMeetingHour   = 20
	defaultMeetingMinute = 0

	lateThreshold = 24 * time.Hour
)

// LateAlert 表示一次缺失的聚会报告
type LateAlert struct {
	Cell        model.Cell `json:"cell"`
	Date        string     `json:"date"`
	ScheduledAt time.Time  `json:"scheduledAt"`
}

// MeetingTime 解析 "HH:MM" 或 "HH:MM - HH:MM" 的开始时间，无法解析时为 20:00
func MeetingTime(value string) (hour, minute int) {
	start := strings.TrimSpace(value)
	if idx := strings.IndexAny(start, " -–"); idx >= 0 {
		start = start[:idx]
	}

	h, m, found := strings.Cut(start, ":")
	if !found {
		return defaultMeetingHour, defaultMeetingMinute
	}
	hour, errH := strconv.Atoi(h)
	minute, errM := strconv.Atoi(m)
	if errH != nil || errM != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return defaultMeetingHour, defaultMeetingMinute
	}
	return hour, minute
}

// LastMeeting 计算小组最近一次（含当天）计划聚会的时刻。
// 聚会日无法识别时返回 false。
func LastMeeting(cell model.Cell, now time.Time) (time.Time, bool) {
	weekday, ok := locale.ParseWeekday(cell.Day)
	if !ok {
		return time.Time{}, false
	}

	offset := (int(now.Weekday()) - int(weekday) + 7) % 7
	day := now.AddDate(0, 0, -offset)
	hour, minute := MeetingTime(cell.Time)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, now.Location()), true
}

// DetectLateCells 找出最近一次聚会已过去 24 小时仍未提交报告、且未被忽略的小组
func DetectLateCells(cells []model.Cell, reports []model.Report, now time.Time) []LateAlert {
	alerts := make([]LateAlert, 0)
	for _, cell := range cells {
		scheduled, ok := LastMeeting(cell, now)
		if !ok {
			continue
		}
		if now.Sub(scheduled) < lateThreshold {
			continue
		}

		date := scheduled.Format(locale.ISODateLayout)
		if cell.DismissedLateDate == date {
			continue
		}
		if HasReportOn(reports, cell.ID, date, "") {
			continue
		}
		alerts = append(alerts, LateAlert{Cell: cell, Date: date, ScheduledAt: scheduled})
	}
	return alerts
}

// HasReportOn 判断小组在指定日期是否已有报告，excludeID 用于编辑时排除自身
func HasReportOn(reports []model.Report, cellID, date, excludeID string) bool {
	for _, r := range reports {
		if r.CellID == cellID && r.Date == date && (excludeID == "" || r.ID != excludeID) {
			return true
		}
	}
	return false
}

// IsLateSubmission 判断报告日期是否不在小组的聚会日。
// 聚会日未知或日期无效时视为准时。
func IsLateSubmission(cell model.Cell, date string) bool {
	weekday, ok := locale.ParseWeekday(cell.Day)
	if !ok {
		return false
	}
	parsed, err := time.Parse(locale.ISODateLayout, strings.TrimSpace(date))
	if err != nil {
		return false
	}
	return parsed.Weekday() != weekday
}
