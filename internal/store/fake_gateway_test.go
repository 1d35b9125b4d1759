package store

import (
	"context"
	"errors"
	"sync"

	"github.com/celulaviver/internal/gateway"
	"github.com/celulaviver/internal/model"
)

var errBackend = errors.New("backend unavailable")

type fakeTable[M any] struct {
	mu        sync.Mutex
	rows      []M
	calls     []string
	patches   []map[string]any
	failWrite bool
	failRead  bool
}

func (t *fakeTable[M]) record(call string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, call)
	if t.failWrite {
		return errBackend
	}
	return nil
}

func (t *fakeTable[M]) SelectAll(context.Context) ([]M, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.failRead {
		return nil, errBackend
	}
	return append([]M(nil), t.rows...), nil
}

func (t *fakeTable[M]) Insert(_ context.Context, record M) error {
	if err := t.record("insert"); err != nil {
		return err
	}
	t.mu.Lock()
	t.rows = append(t.rows, record)
	t.mu.Unlock()
	return nil
}

func (t *fakeTable[M]) Update(context.Context, M) error { return t.record("update") }

func (t *fakeTable[M]) Patch(_ context.Context, _ string, columns map[string]any) error {
	t.mu.Lock()
	t.patches = append(t.patches, columns)
	t.mu.Unlock()
	return t.record("patch")
}

func (t *fakeTable[M]) Delete(context.Context, string) error { return t.record("delete") }

func (t *fakeTable[M]) callCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.calls)
}

func (t *fakeTable[M]) set(rows ...M) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = rows
}

type fakeGateway struct {
	cells         fakeTable[model.Cell]
	reports       fakeTable[model.Report]
	shares        fakeTable[model.Share]
	baptisms      fakeTable[model.Baptism]
	goals         fakeTable[model.Goal]
	notifications fakeTable[model.AppNotification]
	events        fakeTable[model.AppEvent]

	mu          sync.Mutex
	subscribers []func(gateway.Change)
}

func (g *fakeGateway) Available() bool                        { return true }
func (g *fakeGateway) Cells() gateway.Table[model.Cell]       { return &g.cells }
func (g *fakeGateway) Reports() gateway.Table[model.Report]   { return &g.reports }
func (g *fakeGateway) Shares() gateway.Table[model.Share]     { return &g.shares }
func (g *fakeGateway) Baptisms() gateway.Table[model.Baptism] { return &g.baptisms }
func (g *fakeGateway) Goals() gateway.Table[model.Goal]       { return &g.goals }
func (g *fakeGateway) Events() gateway.Table[model.AppEvent]  { return &g.events }
func (g *fakeGateway) Notifications() gateway.Table[model.AppNotification] {
	return &g.notifications
}

func (g *fakeGateway) Subscribe(fn func(gateway.Change)) func() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subscribers = append(g.subscribers, fn)
	return func() {}
}

func (g *fakeGateway) subscribed() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subscribers) > 0
}

func (g *fakeGateway) emit(change gateway.Change) {
	g.mu.Lock()
	subs := append([]func(gateway.Change){}, g.subscribers...)
	g.mu.Unlock()
	for _, fn := range subs {
		fn(change)
	}
}

type recordingReporter struct {
	mu  sync.Mutex
	ops []string
}

func (r *recordingReporter) Report(op string, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, op)
}

func (r *recordingReporter) Close() {}
