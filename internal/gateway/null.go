package gateway

import (
	"context"

	"github.com/celulaviver/internal/model"
)

// Null 在后端未配置时使用：查询为空，写入直接忽略
type Null struct{}

func (Null) Available() bool { return false }

func (Null) Cells() Table[model.Cell]                    { return nullTable[model.Cell]{} }
func (Null) Reports() Table[model.Report]                { return nullTable[model.Report]{} }
func (Null) Shares() Table[model.Share]                  { return nullTable[model.Share]{} }
func (Null) Baptisms() Table[model.Baptism]              { return nullTable[model.Baptism]{} }
func (Null) Goals() Table[model.Goal]                    { return nullTable[model.Goal]{} }
func (Null) Notifications() Table[model.AppNotification] { return nullTable[model.AppNotification]{} }
func (Null) Events() Table[model.AppEvent]               { return nullTable[model.AppEvent]{} }

func (Null) Subscribe(func(Change)) func() { return func() {} }

type nullTable[M any] struct{}

func (nullTable[M]) SelectAll(context.Context) ([]M, error)              { return nil, nil }
func (nullTable[M]) Insert(context.Context, M) error                     { return nil }
func (nullTable[M]) Update(context.Context, M) error                     { return nil }
func (nullTable[M]) Patch(context.Context, string, map[string]any) error { return nil }
func (nullTable[M]) Delete(context.Context, string) error                { return nil }
