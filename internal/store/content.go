package store

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/celulaviver/internal/model"
)

// ShareInput 是共享资料表单，Date 为空时取当天
type ShareInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"omitempty,isodate"`
	FileURL     string `json:"fileUrl" validate:"omitempty,url"`
}

// BaptismInput 是洗礼登记表单
type BaptismInput struct {
	Name     string `json:"name" validate:"required"`
	WhatsApp string `json:"whatsapp"`
	Date     string `json:"date" validate:"required,isodate"`
	CellName string `json:"cellName" validate:"required"`
}

// EventInput 是活动表单，CellType 为空时面向全部类型
type EventInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required,isodate"`
	Location    string `json:"location"`
	CellType    string `json:"cellType" validate:"omitempty,audience"`
}

// AddShare 新增共享资料，新资料排在最前
func (s *Store) AddShare(in ShareInput) (model.Share, error) {
	in.Date = strings.TrimSpace(in.Date)
	if err := s.check(in); err != nil {
		return model.Share{}, fmt.Errorf("validate share: %w", err)
	}
	share := model.Share{
		ID:          s.newID(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date,
		FileURL:     strings.TrimSpace(in.FileURL),
	}
	if share.Date == "" {
		share.Date = s.today()
	}

	s.mu.Lock()
	s.shares = append([]model.Share{share}, s.shares...)
	s.persist("insert share", func(ctx context.Context) error {
		return s.gw.Shares().Insert(ctx, share)
	})
	s.mu.Unlock()
	return share, nil
}

func (s *Store) DeleteShare(id string) error {
	s.mu.Lock()
	shares, ok := without(s.shares, id, func(sh model.Share) string { return sh.ID })
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.shares = shares
	s.persist("delete share", func(ctx context.Context) error {
		return s.gw.Shares().Delete(ctx, id)
	})
	s.mu.Unlock()
	return nil
}

// AddBaptism 登记洗礼候选人
func (s *Store) AddBaptism(in BaptismInput) (model.Baptism, error) {
	if err := s.check(in); err != nil {
		return model.Baptism{}, fmt.Errorf("validate baptism: %w", err)
	}
	baptism := model.Baptism{
		ID:       s.newID(),
		Name:     strings.TrimSpace(in.Name),
		WhatsApp: strings.TrimSpace(in.WhatsApp),
		Date:     in.Date,
		CellName: strings.TrimSpace(in.CellName),
	}

	s.mu.Lock()
	s.baptisms = append(s.baptisms, baptism)
	s.persist("insert baptism", func(ctx context.Context) error {
		return s.gw.Baptisms().Insert(ctx, baptism)
	})
	s.mu.Unlock()
	return baptism, nil
}

func (s *Store) DeleteBaptism(id string) error {
	s.mu.Lock()
	baptisms, ok := without(s.baptisms, id, func(b model.Baptism) string { return b.ID })
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.baptisms = baptisms
	s.persist("delete baptism", func(ctx context.Context) error {
		return s.gw.Baptisms().Delete(ctx, id)
	})
	s.mu.Unlock()
	return nil
}

// AddEvent 新增活动，列表保持按日期升序
func (s *Store) AddEvent(in EventInput) (model.AppEvent, error) {
	if err := s.check(in); err != nil {
		return model.AppEvent{}, fmt.Errorf("validate event: %w", err)
	}
	event := model.AppEvent{
		ID:          s.newID(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date,
		Location:    strings.TrimSpace(in.Location),
		CellType:    strings.TrimSpace(in.CellType),
	}
	if event.CellType == "" {
		event.CellType = model.AllCellTypes
	}

	s.mu.Lock()
	events := append(append([]model.AppEvent(nil), s.events...), event)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date < events[j].Date })
	s.events = events
	s.persist("insert event", func(ctx context.Context) error {
		return s.gw.Events().Insert(ctx, event)
	})
	s.mu.Unlock()
	return event, nil
}

func (s *Store) DeleteEvent(id string) error {
	s.mu.Lock()
	events, ok := without(s.events, id, func(e model.AppEvent) string { return e.ID })
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.events = events
	s.persist("delete event", func(ctx context.Context) error {
		return s.gw.Events().Delete(ctx, id)
	})
	s.mu.Unlock()
	return nil
}
