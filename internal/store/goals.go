package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/celulaviver/internal/model"
)

// GoalInput 是管理员提交的目标表单
type GoalInput struct {
	Name        string `json:"name" validate:"required"`
	StartDate   string `json:"startDate" validate:"omitempty,isodate"`
	EndDate     string `json:"endDate" validate:"omitempty,isodate"`
	Objective   string `json:"objective"`
	CellType    string `json:"cellType" validate:"omitempty,audience"`
	CellID      string `json:"cellId"`
	Report      string `json:"report"`
	IsCompleted bool   `json:"isCompleted"`
}

func (in GoalInput) toGoal(id string) model.Goal {
	cellType := strings.TrimSpace(in.CellType)
	if cellType == "" {
		cellType = model.AllCellTypes
	}
	return model.Goal{
		ID:          id,
		Name:        strings.TrimSpace(in.Name),
		StartDate:   strings.TrimSpace(in.StartDate),
		EndDate:     strings.TrimSpace(in.EndDate),
		Objective:   strings.TrimSpace(in.Objective),
		CellType:    cellType,
		CellID:      strings.TrimSpace(in.CellID),
		Report:      strings.TrimSpace(in.Report),
		IsCompleted: in.IsCompleted,
	}
}

// AddGoal 新增目标，写入失败时生成提示
func (s *Store) AddGoal(in GoalInput) (model.Goal, error) {
	if err := s.check(in); err != nil {
		return model.Goal{}, fmt.Errorf("validate goal: %w", err)
	}
	goal := in.toGoal(s.newID())

	s.mu.Lock()
	s.goals = append(s.goals, goal)
	s.persistAlerting("insert goal", AdminAlerts, goalAlertMessage, func(ctx context.Context) error {
		return s.gw.Goals().Insert(ctx, goal)
	})
	s.mu.Unlock()
	return goal, nil
}

// UpdateGoal 覆盖目标内容
func (s *Store) UpdateGoal(id string, in GoalInput) (model.Goal, error) {
	if err := s.check(in); err != nil {
		return model.Goal{}, fmt.Errorf("validate goal: %w", err)
	}
	goal := in.toGoal(id)

	if err := s.replaceGoal(goal); err != nil {
		return model.Goal{}, err
	}
	return goal, nil
}

// ToggleGoal 切换目标的完成状态
func (s *Store) ToggleGoal(id string) (model.Goal, error) {
	s.mu.Lock()
	idx := indexOf(s.goals, id, func(g model.Goal) string { return g.ID })
	if idx < 0 {
		s.mu.Unlock()
		return model.Goal{}, ErrGoalNotFound
	}
	goals := append([]model.Goal(nil), s.goals...)
	goals[idx].IsCompleted = !goals[idx].IsCompleted
	goal := goals[idx]
	s.goals = goals
	s.persist("toggle goal", func(ctx context.Context) error {
		return s.gw.Goals().Patch(ctx, id, map[string]any{"is_completed": goal.IsCompleted})
	})
	s.mu.Unlock()
	return goal, nil
}

// DeleteGoal 删除目标
func (s *Store) DeleteGoal(id string) error {
	s.mu.Lock()
	goals, ok := without(s.goals, id, func(g model.Goal) string { return g.ID })
	if !ok {
		s.mu.Unlock()
		return ErrGoalNotFound
	}
	s.goals = goals
	s.persist("delete goal", func(ctx context.Context) error {
		return s.gw.Goals().Delete(ctx, id)
	})
	s.mu.Unlock()
	return nil
}

func (s *Store) replaceGoal(goal model.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOf(s.goals, goal.ID, func(g model.Goal) string { return g.ID })
	if idx < 0 {
		return ErrGoalNotFound
	}
	goals := append([]model.Goal(nil), s.goals...)
	goals[idx] = goal
	s.goals = goals
	s.persist("update goal", func(ctx context.Context) error {
		return s.gw.Goals().Update(ctx, goal)
	})
	return nil
}
