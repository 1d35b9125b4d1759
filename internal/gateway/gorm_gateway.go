package gateway

import (
	"context"
	"fmt"
	"log"

	"github.com/celulaviver/internal/db"
	"github.com/celulaviver/internal/model"
	"gorm.io/gorm"
)

const afterCommit = "gorm:commit_or_rollback_transaction"

// GormGateway 是基于 gorm 的后端实现
type GormGateway struct {
	db  *gorm.DB
	hub *hub

	cells         *gormTable[model.Cell, db.CellRow]
	reports       *gormTable[model.Report, db.ReportRow]
	shares        *gormTable[model.Share, db.ShareRow]
	baptisms      *gormTable[model.Baptism, db.BaptismRow]
	goals         *gormTable[model.Goal, db.GoalRow]
	notifications *gormTable[model.AppNotification, db.NotificationRow]
	events        *gormTable[model.AppEvent, db.EventRow]
}

// New 基于已迁移的连接创建网关并注册变更回调。
// 每个 *gorm.DB 只应创建一个网关。
func New(gdb *gorm.DB) (*GormGateway, error) {
	g := &GormGateway{db: gdb, hub: newHub()}

	g.cells = newTable(gdb, "", db.CellFromModel, db.CellRow.Model, func(c model.Cell) string { return c.ID })
	g.reports = newTable(gdb, "date DESC", db.ReportFromModel, db.ReportRow.Model, func(r model.Report) string { return r.ID })
	g.shares = newTable(gdb, "created_at DESC", db.ShareFromModel, db.ShareRow.Model, func(s model.Share) string { return s.ID })
	g.baptisms = newTable(gdb, "", db.BaptismFromModel, db.BaptismRow.Model, func(b model.Baptism) string { return b.ID })
	g.goals = newTable(gdb, "", db.GoalFromModel, db.GoalRow.Model, func(goal model.Goal) string { return goal.ID })
	g.notifications = newTable(gdb, "created_at DESC", db.NotificationFromModel, db.NotificationRow.Model, func(n model.AppNotification) string { return n.ID })
	g.events = newTable(gdb, "date ASC", db.EventFromModel, db.EventRow.Model, func(e model.AppEvent) string { return e.ID })

	callbacks := gdb.Callback()
	if err := callbacks.Create().After(afterCommit).Register("celulas:notify_insert", g.notify(OpInsert)); err != nil {
		return nil, fmt.Errorf("register insert callback: %w", err)
	}
	if err := callbacks.Update().After(afterCommit).Register("celulas:notify_update", g.notify(OpUpdate)); err != nil {
		return nil, fmt.Errorf("register update callback: %w", err)
	}
	if err := callbacks.Delete().After(afterCommit).Register("celulas:notify_delete", g.notify(OpDelete)); err != nil {
		return nil, fmt.Errorf("register delete callback: %w", err)
	}

	return g, nil
}

// Open 按配置打开后端；disabled 或打开失败时返回 Null
func Open(databasePath string, disabled bool) (Gateway, func(), error) {
	if disabled {
		return Null{}, func() {}, nil
	}

	gdb, err := db.Open(databasePath)
	if err != nil {
		return Null{}, func() {}, fmt.Errorf("open database: %w", err)
	}

	g, err := New(gdb)
	if err != nil {
		return Null{}, func() {}, err
	}
	return g, g.Close, nil
}

func (g *GormGateway) notify(op ChangeOp) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		if tx.Error != nil || tx.RowsAffected == 0 {
			return
		}
		table := tx.Statement.Table
		if table == "" && tx.Statement.Schema != nil {
			table = tx.Statement.Schema.Table
		}
		g.hub.publish(Change{Table: table, Op: op})
	}
}

// Close 关闭底层连接
func (g *GormGateway) Close() {
	sqlDB, err := g.db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("[gateway] close database: %v", err)
	}
}

func (g *GormGateway) Available() bool { return true }

func (g *GormGateway) Cells() Table[model.Cell]       { return g.cells }
func (g *GormGateway) Reports() Table[model.Report]   { return g.reports }
func (g *GormGateway) Shares() Table[model.Share]     { return g.shares }
func (g *GormGateway) Baptisms() Table[model.Baptism] { return g.baptisms }
func (g *GormGateway) Goals() Table[model.Goal]       { return g.goals }
func (g *GormGateway) Events() Table[model.AppEvent]  { return g.events }

func (g *GormGateway) Notifications() Table[model.AppNotification] {
	return g.notifications
}

func (g *GormGateway) Subscribe(fn func(Change)) func() {
	return g.hub.subscribe(fn)
}

type gormTable[M any, R any] struct {
	db      *gorm.DB
	order   string
	toRow   func(M) R
	fromRow func(R) M
	idOf    func(M) string
}

func newTable[M any, R any](gdb *gorm.DB, order string, toRow func(M) R, fromRow func(R) M, idOf func(M) string) *gormTable[M, R] {
	return &gormTable[M, R]{db: gdb, order: order, toRow: toRow, fromRow: fromRow, idOf: idOf}
}

func (t *gormTable[M, R]) SelectAll(ctx context.Context) ([]M, error) {
	query := t.db.WithContext(ctx)
	if t.order != "" {
		query = query.Order(t.order)
	}

	var rows []R
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select rows: %w", err)
	}

	records := make([]M, 0, len(rows))
	for _, row := range rows {
		records = append(records, t.fromRow(row))
	}
	return records, nil
}

func (t *gormTable[M, R]) Insert(ctx context.Context, record M) error {
	row := t.toRow(record)
	if err := t.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert row: %w", err)
	}
	return nil
}

func (t *gormTable[M, R]) Update(ctx context.Context, record M) error {
	row := t.toRow(record)
	err := t.db.WithContext(ctx).
		Model(new(R)).
		Where("id = ?", t.idOf(record)).
		Select("*").
		Omit("id", "created_at").
		Updates(&row).Error
	if err != nil {
		return fmt.Errorf("update row: %w", err)
	}
	return nil
}

func (t *gormTable[M, R]) Patch(ctx context.Context, id string, columns map[string]any) error {
	if len(columns) == 0 {
		return nil
	}
	if err := t.db.WithContext(ctx).Model(new(R)).Where("id = ?", id).Updates(columns).Error; err != nil {
		return fmt.Errorf("patch row: %w", err)
	}
	return nil
}

func (t *gormTable[M, R]) Delete(ctx context.Context, id string) error {
	if err := t.db.WithContext(ctx).Where("id = ?", id).Delete(new(R)).Error; err != nil {
		return fmt.Errorf("delete row: %w", err)
	}
	return nil
}
