package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/celulaviver/internal/model"
)

// CellInput 是管理员提交的小组表单
type CellInput struct {
	Name        string         `json:"name" validate:"required"`
	Leader      string         `json:"leader" validate:"required"`
	Host        string         `json:"host"`
	Trainee     string         `json:"trainee"`
	Secretary   string         `json:"secretary"`
	Team        []string       `json:"team"`
	Address     string         `json:"address"`
	Type        model.CellType `json:"type" validate:"required,celltype"`
	Day         string         `json:"day" validate:"required,weekday"`
	Time        string         `json:"time"`
	Region      string         `json:"region"`
	Phone       string         `json:"phone"`
	LeaderPhoto string         `json:"leaderPhoto" validate:"omitempty,datauri"`
}

func (in CellInput) toCell(id string) model.Cell {
	team := make([]string, 0, len(in.Team))
	for _, member := range in.Team {
		if trimmed := strings.TrimSpace(member); trimmed != "" {
			team = append(team, trimmed)
		}
	}
	return model.Cell{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		Leader:      strings.TrimSpace(in.Leader),
		Host:        strings.TrimSpace(in.Host),
		Trainee:     strings.TrimSpace(in.Trainee),
		Secretary:   strings.TrimSpace(in.Secretary),
		Team:        team,
		Address:     strings.TrimSpace(in.Address),
		Type:        in.Type,
		Day:         strings.TrimSpace(in.Day),
		Time:        strings.TrimSpace(in.Time),
		Region:      strings.TrimSpace(in.Region),
		Phone:       strings.TrimSpace(in.Phone),
		LeaderPhoto: strings.TrimSpace(in.LeaderPhoto),
	}
}

// AddCell 新增小组
func (s *Store) AddCell(in CellInput) (model.Cell, error) {
	if err := s.check(in); err != nil {
		return model.Cell{}, fmt.Errorf("validate cell: %w", err)
	}
	cell := in.toCell(s.newID())

	s.mu.Lock()
	s.cells = append(s.cells, cell)
	s.persist("insert cell", func(ctx context.Context) error {
		return s.gw.Cells().Insert(ctx, cell)
	})
	s.mu.Unlock()
	return cell, nil
}

// UpdateCell 覆盖小组资料，保留已忽略的迟交日期
func (s *Store) UpdateCell(id string, in CellInput) (model.Cell, error) {
	if err := s.check(in); err != nil {
		return model.Cell{}, fmt.Errorf("validate cell: %w", err)
	}

	s.mu.Lock()
	idx := indexOf(s.cells, id, func(c model.Cell) string { return c.ID })
	if idx < 0 {
		s.mu.Unlock()
		return model.Cell{}, ErrCellNotFound
	}
	cell := in.toCell(id)
	cell.DismissedLateDate = s.cells[idx].DismissedLateDate
	cells := append([]model.Cell(nil), s.cells...)
	cells[idx] = cell
	s.cells = cells
	s.persist("update cell", func(ctx context.Context) error {
		return s.gw.Cells().Update(ctx, cell)
	})
	s.mu.Unlock()
	return cell, nil
}

// DeleteCell 删除小组，已有报告保留
func (s *Store) DeleteCell(id string) error {
	s.mu.Lock()
	cells, ok := without(s.cells, id, func(c model.Cell) string { return c.ID })
	if !ok {
		s.mu.Unlock()
		return ErrCellNotFound
	}
	s.cells = cells
	s.persist("delete cell", func(ctx context.Context) error {
		return s.gw.Cells().Delete(ctx, id)
	})
	s.mu.Unlock()
	return nil
}

// DismissLateAlert 忽略小组在 date 当天的迟交提醒
func (s *Store) DismissLateAlert(cellID, date string) error {
	date = strings.TrimSpace(date)
	if err := s.validate.Var(date, "required,isodate"); err != nil {
		return &InputError{Field: "date", Tag: "isodate"}
	}

	s.mu.Lock()
	idx := indexOf(s.cells, cellID, func(c model.Cell) string { return c.ID })
	if idx < 0 {
		s.mu.Unlock()
		return ErrCellNotFound
	}
	cells := append([]model.Cell(nil), s.cells...)
	cells[idx].DismissedLateDate = date
	s.cells = cells
	s.persist("dismiss late alert", func(ctx context.Context) error {
		return s.gw.Cells().Patch(ctx, cellID, map[string]any{"dismissed_late_date": date})
	})
	s.mu.Unlock()
	return nil
}
