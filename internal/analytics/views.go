package analytics

import (
	"strings"
	"time"

	"github.com/celulaviver/internal/locale"
	"github.com/celulaviver/internal/model"
)

const (
	GoalStatusAll       = "all"
	GoalStatusCompleted = "completed"
	GoalStatusPending   = "pending"
)

// FilterGoals 按完成状态筛选目标
func FilterGoals(goals []model.Goal, status string) []model.Goal {
	result := make([]model.Goal, 0, len(goals))
	for _, g := range goals {
		switch strings.ToLower(strings.TrimSpace(status)) {
		case GoalStatusCompleted:
			if !g.IsCompleted {
				continue
			}
		case GoalStatusPending:
			if g.IsCompleted {
				continue
			}
		}
		result = append(result, g)
	}
	return result
}

// SplitEvents 将活动分为未开始（含今天）与已结束两组，保持原顺序
func SplitEvents(events []model.AppEvent, now time.Time) (upcoming, past []model.AppEvent) {
	today := now.Format(locale.ISODateLayout)
	upcoming = make([]model.AppEvent, 0)
	past = make([]model.AppEvent, 0)
	for _, e := range events {
		if e.Date >= today {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}
	return upcoming, past
}

// EventsForCell 返回面向全部类型或与小组同类型的活动
func EventsForCell(events []model.AppEvent, cell model.Cell) []model.AppEvent {
	result := make([]model.AppEvent, 0)
	for _, e := range events {
		if e.CellType == "" || e.CellType == model.AllCellTypes || e.CellType == string(cell.Type) {
			result = append(result, e)
		}
	}
	return result
}

// NotificationsForLeader 返回领袖可见的通知：未指定小组或属于本小组
func NotificationsForLeader(notifications []model.AppNotification, cellID string) []model.AppNotification {
	result := make([]model.AppNotification, 0)
	for _, n := range notifications {
		if n.CellID == "" || n.CellID == cellID {
			result = append(result, n)
		}
	}
	return result
}

// UnreadCount 统计未读通知
func UnreadCount(notifications []model.AppNotification) int {
	count := 0
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}
