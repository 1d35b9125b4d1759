// Package gateway 封装后端表的读写与变更通知。
package gateway

import (
	"context"

	"github.com/celulaviver/internal/model"
)

// ChangeOp 表示变更类型
type ChangeOp string

const (
	OpInsert ChangeOp = "INSERT"
	OpUpdate ChangeOp = "UPDATE"
	OpDelete ChangeOp = "DELETE"
)

// Change 描述后端任意表上发生的一次写入
type Change struct {
	Table string
	Op    ChangeOp
}

// Table 是单个实体表的操作集合
type Table[M any] interface {
	SelectAll(ctx context.Context) ([]M, error)
	Insert(ctx context.Context, record M) error
	// Update 按 id 覆盖除 id 以外的全部列
	Update(ctx context.Context, record M) error
	// Patch 按 snake_case 列名做部分更新
	Patch(ctx context.Context, id string, columns map[string]any) error
	Delete(ctx context.Context, id string) error
}

// Gateway 聚合全部表以及一个跨表的变更订阅
type Gateway interface {
	Available() bool
	Cells() Table[model.Cell]
	Reports() Table[model.Report]
	Shares() Table[model.Share]
	Baptisms() Table[model.Baptism]
	Goals() Table[model.Goal]
	Notifications() Table[model.AppNotification]
	Events() Table[model.AppEvent]
	// Subscribe 在任意表写入后异步调用 fn，返回取消订阅函数
	Subscribe(fn func(Change)) (unsubscribe func())
}
