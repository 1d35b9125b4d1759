package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/celulaviver/internal/gateway"
)

// Refresh 逐表重新拉取全部集合。
// 某张表失败时保留其原有数据；cells 表只有在非空时才覆盖本地列表。
func (s *Store) Refresh(ctx context.Context) error {
	if !s.gw.Available() {
		return nil
	}

	var errs []error
	cells, err := fetch(ctx, "cells", s.gw.Cells())
	errs = append(errs, err)
	reports, err := fetch(ctx, "reports", s.gw.Reports())
	errs = append(errs, err)
	shares, err := fetch(ctx, "shares", s.gw.Shares())
	errs = append(errs, err)
	baptisms, err := fetch(ctx, "baptisms", s.gw.Baptisms())
	errs = append(errs, err)
	goals, err := fetch(ctx, "goals", s.gw.Goals())
	errs = append(errs, err)
	notifications, err := fetch(ctx, "notifications", s.gw.Notifications())
	errs = append(errs, err)
	events, err := fetch(ctx, "events", s.gw.Events())
	errs = append(errs, err)

	s.mu.Lock()
	if len(cells) > 0 {
		s.cells = cells
	}
	if reports != nil {
		s.reports = reports
	}
	if shares != nil {
		s.shares = shares
	}
	if baptisms != nil {
		s.baptisms = baptisms
	}
	if goals != nil {
		s.goals = goals
	}
	if notifications != nil {
		s.notifications = notifications
	}
	if events != nil {
		s.events = events
	}
	s.mu.Unlock()

	if err := errors.Join(errs...); err != nil {
		s.reporter.Report("refresh", err)
		return err
	}
	return nil
}

// fetch 在出错时返回 nil，成功但表为空时返回非 nil 的空切片
func fetch[M any](ctx context.Context, name string, table gateway.Table[M]) ([]M, error) {
	rows, err := table.SelectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	if rows == nil {
		rows = []M{}
	}
	return rows, nil
}

// LoadInitial 启动时拉取一次数据，超过 timeout 后继续使用已有内容
func (s *Store) LoadInitial(ctx context.Context, timeout time.Duration) error {
	if !s.gw.Available() {
		logf("backend not configured, using local data only")
		return nil
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	err := s.Refresh(ctx)
	if err != nil {
		logf("initial load finished with errors after %s: %v", time.Since(start).Round(time.Millisecond), err)
		return err
	}
	logf("initial load finished in %s", time.Since(start).Round(time.Millisecond))
	return nil
}

// Watch 订阅后端变更并在每次变更后整体刷新，直到 ctx 结束。
// 刷新进行中到达的多次变更只会再触发一次刷新。
func (s *Store) Watch(ctx context.Context) {
	pending := make(chan struct{}, 1)
	unsubscribe := s.gw.Subscribe(func(gateway.Change) {
		select {
		case pending <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	for {
		select {
		case <-ctx.Done():
			return
		case <-pending:
			if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
				logf("refresh after change failed: %v", err)
			}
		}
	}
}
