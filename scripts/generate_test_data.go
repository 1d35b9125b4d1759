package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/celulaviver/internal/analytics"
	"github.com/celulaviver/internal/config"
	"github.com/celulaviver/internal/gateway"
	"github.com/celulaviver/internal/locale"
	"github.com/celulaviver/internal/model"
	"github.com/celulaviver/internal/store"
)

const demoWeeks = 6

// 测试数据生成器
func main() {
	cfg := config.Load()
	gw, closeGateway, err := gateway.Open(cfg.DatabasePath, false)
	if err != nil {
		log.Fatal("数据库初始化失败:", err)
	}
	defer closeGateway()

	ctx := context.Background()
	existing, err := gw.Cells().SelectAll(ctx)
	if err != nil {
		log.Fatal("读取小组失败:", err)
	}
	if len(existing) == 0 {
		for _, cell := range store.InitialCells() {
			if err := gw.Cells().Insert(ctx, cell); err != nil {
				log.Fatal("创建小组失败:", err)
			}
		}
	}

	s := store.New(gw)
	if err := s.LoadInitial(ctx, cfg.StartupFetchTimeout); err != nil {
		log.Fatal("载入数据失败:", err)
	}

	fmt.Println("开始生成测试数据...")
	now := time.Now().In(cfg.Location())
	reports := createDemoReports(s, now, demoWeeks)
	goals := createDemoGoals(s, now)
	events := createDemoEvents(s, now)
	s.Wait()

	fmt.Println("测试数据生成完成！")
	fmt.Printf("报告: %d 份\n", reports)
	fmt.Printf("目标: %d 个\n", goals)
	fmt.Printf("活动: %d 个\n", events)
}

// createDemoReports 为每个小组补齐最近几周的聚会报告，已存在的日期跳过
func createDemoReports(s *store.Store, now time.Time, weeks int) int {
	created := 0
	for i, cell := range s.Cells() {
		last, ok := analytics.LastMeeting(cell, now)
		if !ok {
			continue
		}
		for w := 0; w < weeks; w++ {
			// 每个小组留一周空缺，让迟交提醒有数据
			if w == 0 && i%3 == 0 {
				continue
			}
			date := last.AddDate(0, 0, -7*w).Format(locale.ISODateLayout)
			in := store.ReportInput{
				Date:          date,
				Attendance:    8 + (i+w)%7,
				Visitors:      (i * w) % 4,
				Conversions:   w % 2,
				WeeklyVisits:  1 + i%3,
				ChildrenCount: (i + w) % 5,
				Offering:      float64(40 + 5*((i+w)%6)),
				KidsOffering:  float64((i + w) % 3 * 5),
				Summary:       fmt.Sprintf("Encontro da semana %d", weeks-w),
			}
			if w == 1 && i%4 == 0 {
				in.FirstTimeVisitorsCount = 1
				in.FirstTimeVisitorsList = []model.Visitor{{
					Name:    fmt.Sprintf("Visitante Teste %d", i+1),
					Phone:   fmt.Sprintf("3198%07d", i+1),
					Address: cell.Address,
				}}
				in.Visitors++
			}
			if _, err := s.AddReport(cell.ID, in); err != nil {
				log.Printf("[seed] skip report %s %s: %v", cell.Name, date, err)
				continue
			}
			created++
		}
	}
	fmt.Println("✅ 测试报告创建完成")
	return created
}

// createDemoGoals 创建示例目标
func createDemoGoals(s *store.Store, now time.Time) int {
	if len(s.Goals()) > 0 {
		fmt.Println("目标已存在，跳过创建")
		return 0
	}
	start := now.Format(locale.ISODateLayout)
	end := now.AddDate(0, 3, 0).Format(locale.ISODateLayout)
	inputs := []store.GoalInput{
		{Name: "Multiplicar células", StartDate: start, EndDate: end, Objective: "Abrir duas novas células adultas", CellType: string(model.CellTypeAdulto)},
		{Name: "Evangelismo jovem", StartDate: start, EndDate: end, Objective: "Trazer 20 novos visitantes", CellType: string(model.CellTypeJovem)},
		{Name: "Fidelidade nos relatórios", StartDate: start, EndDate: end, Objective: "Nenhum relatório atrasado no trimestre", CellType: model.AllCellTypes},
	}
	created := 0
	for _, in := range inputs {
		if _, err := s.AddGoal(in); err != nil {
			log.Printf("[seed] skip goal %s: %v", in.Name, err)
			continue
		}
		created++
	}
	fmt.Println("✅ 测试目标创建完成")
	return created
}

// createDemoEvents 创建一个过去和两个未来的活动
func createDemoEvents(s *store.Store, now time.Time) int {
	if len(s.Events()) > 0 {
		fmt.Println("活动已存在，跳过创建")
		return 0
	}
	inputs := []store.EventInput{
		{Title: "Culto de Celebração", Date: now.AddDate(0, 0, -10).Format(locale.ISODateLayout), Location: "Templo sede"},
		{Title: "Encontro com Deus", Date: now.AddDate(0, 0, 14).Format(locale.ISODateLayout), Location: "Chácara Betânia"},
		{Title: "Noite Jovem", Date: now.AddDate(0, 1, 0).Format(locale.ISODateLayout), Location: "Templo sede", CellType: string(model.CellTypeJovem)},
	}
	created := 0
	for _, in := range inputs {
		if _, err := s.AddEvent(in); err != nil {
			log.Printf("[seed] skip event %s: %v", in.Title, err)
			continue
		}
		created++
	}
	fmt.Println("✅ 测试活动创建完成")
	return created
}
