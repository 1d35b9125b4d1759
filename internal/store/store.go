// Package store 持有应用的全部集合，先在本地乐观更新，再异步写入后端。
package store

import (
	"context"
	"errors"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/celulaviver/internal/gateway"
	"github.com/celulaviver/internal/model"
	"github.com/celulaviver/internal/reporting"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrDuplicateReport      = errors.New("report already exists for this cell and date")
	ErrCellNotFound         = errors.New("cell not found")
	ErrReportNotFound       = errors.New("report not found")
	ErrGoalNotFound         = errors.New("goal not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidVisitor       = errors.New("invalid first-time visitor")
	ErrInvalidNotice        = errors.New("notice requires title and message")
	ErrInvalidInput         = errors.New("invalid input")
	// ErrNotFound 用于资料、洗礼和活动
	ErrNotFound = errors.New("record not found")
)

const (
	reportAlertMessage = "Erro ao salvar no banco de dados. Verifique sua conexão."
	goalAlertMessage   = "Erro ao salvar meta no banco."
)

// AdminAlerts 是管理员会话取提示时使用的键，领袖会话使用所属小组 id
const AdminAlerts = "admin"

// Alert 是需要展示给用户的后台写入失败
type Alert struct {
	Operation string    `json:"operation"`
	Message   string    `json:"message"`
	At        time.Time `json:"at"`
}

// Snapshot 是某一时刻全部集合的副本
type Snapshot struct {
	Cells         []model.Cell            `json:"cells"`
	Reports       []model.Report          `json:"reports"`
	Shares        []model.Share           `json:"shares"`
	Baptisms      []model.Baptism         `json:"baptisms"`
	Goals         []model.Goal            `json:"goals"`
	Events        []model.AppEvent        `json:"events"`
	Notifications []model.AppNotification `json:"notifications"`
}

// Store 是注入到处理器中的应用状态
type Store struct {
	gw       gateway.Gateway
	reporter reporting.Reporter
	now      func() time.Time
	newID    func() string
	validate *validator.Validate

	mu            sync.RWMutex
	cells         []model.Cell
	reports       []model.Report
	shares        []model.Share
	baptisms      []model.Baptism
	goals         []model.Goal
	events        []model.AppEvent
	notifications []model.AppNotification

	alertsMu sync.Mutex
	alerts   map[string][]Alert

	// 后台写入按提交顺序串行执行
	writeMu  sync.Mutex
	pending  []writeTask
	draining bool
	inflight sync.WaitGroup
}

type writeTask struct {
	op      string
	owner   string
	message string
	fn      func(ctx context.Context) error
}

// Option 配置 Store
type Option func(*Store)

// WithClock 替换当前时间来源
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithReporter 替换失败上报方式
func WithReporter(r reporting.Reporter) Option {
	return func(s *Store) { s.reporter = r }
}

// WithIDGenerator 替换 id 生成方式
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithInitialCells 替换默认小组列表
func WithInitialCells(cells []model.Cell) Option {
	return func(s *Store) { s.cells = slices.Clone(cells) }
}

// New 创建 Store，gw 为 nil 时使用 gateway.Null
func New(gw gateway.Gateway, opts ...Option) *Store {
	if gw == nil {
		gw = gateway.Null{}
	}
	s := &Store{
		gw:       gw,
		reporter: reporting.LogReporter{Tag: "store"},
		now:      time.Now,
		newID:    uuid.NewString,
		validate: newValidator(),

		cells:         InitialCells(),
		reports:       []model.Report{},
		shares:        []model.Share{},
		baptisms:      []model.Baptism{},
		goals:         []model.Goal{},
		events:        []model.AppEvent{},
		notifications: []model.AppNotification{},

		alerts: map[string][]Alert{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available 表示后端是否可用
func (s *Store) Available() bool {
	return s.gw.Available()
}

// Now 返回 Store 使用的当前时间
func (s *Store) Now() time.Time {
	return s.now()
}

// Snapshot 返回全部集合的副本
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Cells:         slices.Clone(s.cells),
		Reports:       slices.Clone(s.reports),
		Shares:        slices.Clone(s.shares),
		Baptisms:      slices.Clone(s.baptisms),
		Goals:         slices.Clone(s.goals),
		Events:        slices.Clone(s.events),
		Notifications: slices.Clone(s.notifications),
	}
}

func (s *Store) Cells() []model.Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cells)
}

func (s *Store) Reports() []model.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.reports)
}

func (s *Store) Shares() []model.Share {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.shares)
}

func (s *Store) Baptisms() []model.Baptism {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.baptisms)
}

func (s *Store) Goals() []model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.goals)
}

func (s *Store) Events() []model.AppEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.events)
}

func (s *Store) Notifications() []model.AppNotification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.notifications)
}

// Cell 按 id 查找小组
func (s *Store) Cell(id string) (model.Cell, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := indexOf(s.cells, id, func(c model.Cell) string { return c.ID })
	if idx < 0 {
		return model.Cell{}, false
	}
	return s.cells[idx], true
}

// Report 按 id 查找报告
func (s *Store) Report(id string) (model.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := indexOf(s.reports, id, func(r model.Report) string { return r.ID })
	if idx < 0 {
		return model.Report{}, false
	}
	return s.reports[idx], true
}

// Notification 按 id 查找通知
func (s *Store) Notification(id string) (model.AppNotification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx := indexOf(s.notifications, id, func(n model.AppNotification) string { return n.ID })
	if idx < 0 {
		return model.AppNotification{}, false
	}
	return s.notifications[idx], true
}

// DrainAlerts 取出并清空 owner 名下待展示的失败提示
func (s *Store) DrainAlerts(owner string) []Alert {
	s.alertsMu.Lock()
	defer s.alertsMu.Unlock()
	alerts := s.alerts[owner]
	delete(s.alerts, owner)
	return alerts
}

// Wait 等待所有进行中的后台写入结束
func (s *Store) Wait() {
	s.inflight.Wait()
}

// persist 把写入排入后台队列，失败只上报不提示。
// 调用方须持有 s.mu，队列顺序与本地修改顺序一致。
func (s *Store) persist(op string, fn func(ctx context.Context) error) {
	s.enqueue(writeTask{op: op, fn: fn})
}

// persistAlerting 同 persist，失败时给 owner 留一条提示
func (s *Store) persistAlerting(op, owner, message string, fn func(ctx context.Context) error) {
	s.enqueue(writeTask{op: op, owner: owner, message: message, fn: fn})
}

func (s *Store) enqueue(task writeTask) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.inflight.Add(1)
	s.pending = append(s.pending, task)
	if !s.draining {
		s.draining = true
		go s.drainWrites()
	}
}

func (s *Store) drainWrites() {
	for {
		s.writeMu.Lock()
		if len(s.pending) == 0 {
			s.draining = false
			s.writeMu.Unlock()
			return
		}
		task := s.pending[0]
		s.pending = s.pending[1:]
		s.writeMu.Unlock()

		s.runWrite(task)
	}
}

func (s *Store) runWrite(task writeTask) {
	defer s.inflight.Done()
	if err := task.fn(context.Background()); err != nil {
		s.reporter.Report(task.op, err)
		if task.message != "" {
			s.pushAlert(task.owner, task.op, task.message)
		}
	}
}

func (s *Store) pushAlert(owner, op, message string) {
	s.alertsMu.Lock()
	defer s.alertsMu.Unlock()
	s.alerts[owner] = append(s.alerts[owner], Alert{Operation: op, Message: message, At: s.now()})
}

func (s *Store) today() string {
	return s.now().Format("2006-01-02")
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

func without[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	idx := indexOf(items, id, idOf)
	if idx < 0 {
		return items, false
	}
	return slices.Delete(slices.Clone(items), idx, idx+1), true
}

func logf(format string, args ...any) {
	log.Printf("[store] "+format, args...)
}
