package store

import (
	"context"
	"strings"
	"time"

	"github.com/celulaviver/internal/model"
)

// BroadcastAll 作为收件人时表示发给全部小组
const BroadcastAll = "all"

// NotificationInput 描述一条新通知
type NotificationInput struct {
	Title        string
	Message      string
	Type         model.NotificationType
	VisitorPhone string
	CellID       string
}

// AddNotification 新增一条未读通知，新通知排在最前
func (s *Store) AddNotification(in NotificationInput) model.AppNotification {
	n := model.AppNotification{
		ID:           s.newID(),
		Title:        in.Title,
		Message:      in.Message,
		Date:         s.now().UTC().Format(time.RFC3339),
		Type:         in.Type,
		VisitorPhone: in.VisitorPhone,
		CellID:       in.CellID,
	}

	s.mu.Lock()
	s.notifications = append([]model.AppNotification{n}, s.notifications...)
	s.persist("insert notification", func(ctx context.Context) error {
		return s.gw.Notifications().Insert(ctx, n)
	})
	s.mu.Unlock()
	return n
}

// MarkNotificationRead 标记通知为已读
func (s *Store) MarkNotificationRead(id string) error {
	s.mu.Lock()
	idx := indexOf(s.notifications, id, func(n model.AppNotification) string { return n.ID })
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotificationNotFound
	}
	notifications := append([]model.AppNotification(nil), s.notifications...)
	notifications[idx].IsRead = true
	s.notifications = notifications
	s.persist("mark notification read", func(ctx context.Context) error {
		return s.gw.Notifications().Patch(ctx, id, map[string]any{"is_read": true})
	})
	s.mu.Unlock()
	return nil
}

// DeleteNotification 删除通知
func (s *Store) DeleteNotification(id string) error {
	s.mu.Lock()
	notifications, ok := without(s.notifications, id, func(n model.AppNotification) string { return n.ID })
	if !ok {
		s.mu.Unlock()
		return ErrNotificationNotFound
	}
	s.notifications = notifications
	s.persist("delete notification", func(ctx context.Context) error {
		return s.gw.Notifications().Delete(ctx, id)
	})
	s.mu.Unlock()
	return nil
}

// BroadcastNotice 向指定小组或全部小组（recipient 为 "all"）发送公告
func (s *Store) BroadcastNotice(recipient, title, message string) ([]model.AppNotification, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" || message == "" {
		return nil, ErrInvalidNotice
	}

	var targets []model.Cell
	if recipient == BroadcastAll {
		targets = s.Cells()
	} else {
		cell, ok := s.Cell(recipient)
		if !ok {
			return nil, ErrCellNotFound
		}
		targets = []model.Cell{cell}
	}

	sent := make([]model.AppNotification, 0, len(targets))
	for _, cell := range targets {
		sent = append(sent, s.AddNotification(NotificationInput{
			Title:   title,
			Message: message,
			Type:    model.NotificationNotice,
			CellID:  cell.ID,
		}))
	}
	logf("notice %q sent to %d cell(s)", title, len(sent))
	return sent, nil
}
