package db

import (
	"strings"
	"time"

	"github.com/celulaviver/internal/model"
)

// CellRow 对应 cells 表
type CellRow struct {
	ID                string   `gorm:"column:id;primaryKey"`
	Name              string   `gorm:"column:name"`
	Leader            string   `gorm:"column:leader"`
	Host              string   `gorm:"column:host"`
	Trainee           string   `gorm:"column:trainee"`
	Secretary         string   `gorm:"column:secretary"`
	Team              []string `gorm:"column:team;type:text;serializer:json"`
	Address           string   `gorm:"column:address"`
	Type              string   `gorm:"column:type"`
	Day               string   `gorm:"column:day"`
	Time              string   `gorm:"column:time"`
	Region            string   `gorm:"column:region"`
	Phone             string   `gorm:"column:phone"`
	LeaderPhoto       string   `gorm:"column:leader_photo"`
	DismissedLateDate string   `gorm:"column:dismissed_late_date"`
}

func (CellRow) TableName() string { return "cells" }

// CellFromModel 将应用记录映射为数据库行
func CellFromModel(c model.Cell) CellRow {
	return CellRow{
		ID:                c.ID,
		Name:              c.Name,
		Leader:            c.Leader,
		Host:              c.Host,
		Trainee:           c.Trainee,
		Secretary:         c.Secretary,
		Team:              c.Team,
		Address:           c.Address,
		Type:              string(c.Type),
		Day:               c.Day,
		Time:              c.Time,
		Region:            c.Region,
		Phone:             c.Phone,
		LeaderPhoto:       c.LeaderPhoto,
		DismissedLateDate: c.DismissedLateDate,
	}
}

// Model 将数据库行还原为应用记录
func (r CellRow) Model() model.Cell {
	return model.Cell{
		ID:                r.ID,
		Name:              r.Name,
		Leader:            r.Leader,
		Host:              r.Host,
		Trainee:           r.Trainee,
		Secretary:         r.Secretary,
		Team:              r.Team,
		Address:           r.Address,
		Type:              model.CellType(r.Type),
		Day:               r.Day,
		Time:              r.Time,
		Region:            r.Region,
		Phone:             r.Phone,
		LeaderPhoto:       r.LeaderPhoto,
		DismissedLateDate: r.DismissedLateDate,
	}
}

// ReportRow 对应 reports 表
type ReportRow struct {
	ID                     string          `gorm:"column:id;primaryKey"`
	CellID                 string          `gorm:"column:cell_id;index"`
	CellName               string          `gorm:"column:cell_name"`
	Date                   string          `gorm:"column:date;index"`
	Attendance             int             `gorm:"column:attendance"`
	Visitors               int             `gorm:"column:visitors"`
	Conversions            int             `gorm:"column:conversions"`
	WeeklyVisits           int             `gorm:"column:weekly_visits"`
	FirstTimeVisitorsCount int             `gorm:"column:first_time_visitors_count"`
	FirstTimeVisitorsList  []model.Visitor `gorm:"column:first_time_visitors_list;type:text;serializer:json"`
	ChildrenCount          int             `gorm:"column:children_count"`
	Offering               float64         `gorm:"column:offering"`
	KidsOffering           float64         `gorm:"column:kids_offering"`
	Summary                string          `gorm:"column:summary"`
	IsLate                 bool            `gorm:"column:is_late"`
}

func (ReportRow) TableName() string { return "reports" }

func ReportFromModel(r model.Report) ReportRow {
	return ReportRow{
		ID:                     r.ID,
		CellID:                 r.CellID,
		CellName:               r.CellName,
		Date:                   r.Date,
		Attendance:             r.Attendance,
		Visitors:               r.Visitors,
		Conversions:            r.Conversions,
		WeeklyVisits:           r.WeeklyVisits,
		FirstTimeVisitorsCount: r.FirstTimeVisitorsCount,
		FirstTimeVisitorsList:  r.FirstTimeVisitorsList,
		ChildrenCount:          r.ChildrenCount,
		Offering:               r.Offering,
		KidsOffering:           r.KidsOffering,
		Summary:                r.Summary,
		IsLate:                 r.IsLate,
	}
}

func (r ReportRow) Model() model.Report {
	return model.Report{
		ID:                     r.ID,
		CellID:                 r.CellID,
		CellName:               r.CellName,
		Date:                   r.Date,
		Attendance:             r.Attendance,
		Visitors:               r.Visitors,
		Conversions:            r.Conversions,
		WeeklyVisits:           r.WeeklyVisits,
		FirstTimeVisitorsCount: r.FirstTimeVisitorsCount,
		FirstTimeVisitorsList:  r.FirstTimeVisitorsList,
		ChildrenCount:          r.ChildrenCount,
		Offering:               r.Offering,
		KidsOffering:           r.KidsOffering,
		Summary:                r.Summary,
		IsLate:                 r.IsLate,
	}
}

// ShareRow 对应 shares 表，CreatedAt 用于排序
type ShareRow struct {
	ID          string    `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	Date        string    `gorm:"column:date"`
	FileURL     string    `gorm:"column:file_url"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (ShareRow) TableName() string { return "shares" }

func ShareFromModel(s model.Share) ShareRow {
	return ShareRow{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Date:        s.Date,
		FileURL:     s.FileURL,
	}
}

func (r ShareRow) Model() model.Share {
	return model.Share{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		FileURL:     r.FileURL,
	}
}

// BaptismRow 对应 baptisms 表
type BaptismRow struct {
	ID       string `gorm:"column:id;primaryKey"`
	Name     string `gorm:"column:name"`
	WhatsApp string `gorm:"column:whatsapp"`
	Date     string `gorm:"column:date"`
	CellName string `gorm:"column:cell_name"`
}

func (BaptismRow) TableName() string { return "baptisms" }

func BaptismFromModel(b model.Baptism) BaptismRow {
	return BaptismRow{ID: b.ID, Name: b.Name, WhatsApp: b.WhatsApp, Date: b.Date, CellName: b.CellName}
}

func (r BaptismRow) Model() model.Baptism {
	return model.Baptism{ID: r.ID, Name: r.Name, WhatsApp: r.WhatsApp, Date: r.Date, CellName: r.CellName}
}

// GoalRow 对应 goals 表
type GoalRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	StartDate   string `gorm:"column:start_date"`
	EndDate     string `gorm:"column:end_date"`
	Objective   string `gorm:"column:objective"`
	CellType    string `gorm:"column:cell_type"`
	CellID      string `gorm:"column:cell_id"`
	Report      string `gorm:"column:report"`
	IsCompleted bool   `gorm:"column:is_completed"`
}

func (GoalRow) TableName() string { return "goals" }

func GoalFromModel(g model.Goal) GoalRow {
	return GoalRow{
		ID:          g.ID,
		Name:        g.Name,
		StartDate:   g.StartDate,
		EndDate:     g.EndDate,
		Objective:   g.Objective,
		CellType:    g.CellType,
		CellID:      g.CellID,
		Report:      g.Report,
		IsCompleted: g.IsCompleted,
	}
}

func (r GoalRow) Model() model.Goal {
	return model.Goal{
		ID:          r.ID,
		Name:        r.Name,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Objective:   r.Objective,
		CellType:    r.CellType,
		CellID:      r.CellID,
		Report:      r.Report,
		IsCompleted: r.IsCompleted,
	}
}

// NotificationRow 对应 notifications 表，通知日期保存在 created_at
type NotificationRow struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Title        string    `gorm:"column:title"`
	Message      string    `gorm:"column:message"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	IsRead       bool      `gorm:"column:is_read"`
	Type         string    `gorm:"column:type"`
	VisitorPhone string    `gorm:"column:visitor_phone"`
	CellID       string    `gorm:"column:cell_id;index"`
}

func (NotificationRow) TableName() string { return "notifications" }

func NotificationFromModel(n model.AppNotification) NotificationRow {
	row := NotificationRow{
		ID:           n.ID,
		Title:        n.Title,
		Message:      n.Message,
		IsRead:       n.IsRead,
		Type:         string(n.Type),
		VisitorPhone: n.VisitorPhone,
		CellID:       n.CellID,
	}
	if parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(n.Date)); err == nil {
		row.CreatedAt = parsed
	}
	return row
}

func (r NotificationRow) Model() model.AppNotification {
	date := ""
	if !r.CreatedAt.IsZero() {
		date = r.CreatedAt.Format(time.RFC3339)
	}
	return model.AppNotification{
		ID:           r.ID,
		Title:        r.Title,
		Message:      r.Message,
		Date:         date,
		IsRead:       r.IsRead,
		Type:         model.NotificationType(r.Type),
		VisitorPhone: r.VisitorPhone,
		CellID:       r.CellID,
	}
}

// EventRow 对应 events 表
type EventRow struct {
	ID          string `gorm:"column:id;primaryKey"`
	Title       string `gorm:"column:title"`
	Description string `gorm:"column:description"`
	Date        string `gorm:"column:date"`
	Location    string `gorm:"column:location"`
	CellType    string `gorm:"column:cell_type"`
}

func (EventRow) TableName() string { return "events" }

func EventFromModel(e model.AppEvent) EventRow {
	return EventRow{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		CellType:    e.CellType,
	}
}

func (r EventRow) Model() model.AppEvent {
	return model.AppEvent{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Location:    r.Location,
		CellType:    r.CellType,
	}
}
