package store

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/celulaviver/internal/gateway"
	"github.com/celulaviver/internal/model"
)

var fixedNow = time.Date(2024, 1, 10, 15, 0, 0, 0, time.UTC)

func testCells() []model.Cell {
	return []model.Cell{
		{ID: "c1", Name: "Célula Ágape", Leader: "Pedro", Type: model.CellTypeAdulto, Day: "Quinta-Feira", Time: "20:00", Phone: "31999990001"},
		{ID: "c2", Name: "Conexão Jovem", Leader: "Jane", Type: model.CellTypeJovem, Day: "Sábado", Time: "19:00"},
	}
}

func setupStoreTest(t *testing.T) (*Store, *fakeGateway, *recordingReporter) {
	t.Helper()

	gw := &fakeGateway{}
	rep := &recordingReporter{}
	var seq atomic.Int64
	s := New(gw,
		WithClock(func() time.Time { return fixedNow }),
		WithReporter(rep),
		WithIDGenerator(func() string { return fmt.Sprintf("id-%d", seq.Add(1)) }),
		WithInitialCells(testCells()),
	)
	t.Cleanup(s.Wait)
	return s, gw, rep
}

func validReport(date string) ReportInput {
	return ReportInput{
		Date:          date,
		Attendance:    12,
		Visitors:      2,
		Conversions:   1,
		WeeklyVisits:  3,
		ChildrenCount: 4,
		Offering:      50.5,
		KidsOffering:  10,
		Summary:       "  Boa reunião  ",
	}
}

func TestNewUsesSeededCells(t *testing.T) {
	s := New(nil)
	if s.Available() {
		t.Fatalf("expected null gateway to be unavailable")
	}
	if got := len(s.Cells()); got != 16 {
		t.Fatalf("expected 16 seeded cells, got %d", got)
	}
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh against null gateway should be a no-op, got %v", err)
	}
	if got := len(s.Cells()); got != 16 {
		t.Fatalf("expected seeded cells to survive refresh, got %d", got)
	}
}

func TestAddReportRejectsDuplicateBeforePersisting(t *testing.T) {
	s, gw, _ := setupStoreTest(t)

	if _, err := s.AddReport("c1", validReport("2024-01-04")); err != nil {
		t.Fatalf("add report: %v", err)
	}
	s.Wait()

	_, err := s.AddReport("c1", validReport("2024-01-04"))
	if !errors.Is(err, ErrDuplicateReport) {
		t.Fatalf("expected ErrDuplicateReport, got %v", err)
	}
	var dup *DuplicateReportError
	if !errors.As(err, &dup) || dup.Date != "2024-01-04" {
		t.Fatalf("expected duplicate error carrying the date, got %v", err)
	}
	s.Wait()

	if got := gw.reports.callCount(); got != 1 {
		t.Fatalf("expected exactly one insert call, got %d", got)
	}
	if got := len(s.Reports()); got != 1 {
		t.Fatalf("expected one local report, got %d", got)
	}

	if _, err := s.AddReport("c2", validReport("2024-01-04")); err != nil {
		t.Fatalf("same date on another cell should be accepted: %v", err)
	}
}

func TestAddReportDerivesFields(t *testing.T) {
	s, _, _ := setupStoreTest(t)

	tests := []struct {
		name         string
		cellID       string
		date         string
		wantLate     bool
		wantChildren int
		wantKids     float64
	}{
		{name: "meeting day", cellID: "c1", date: "2024-01-04", wantLate: false, wantChildren: 4, wantKids: 10},
		{name: "other weekday", cellID: "c1", date: "2024-01-05", wantLate: true, wantChildren: 4, wantKids: 10},
		{name: "youth cell", cellID: "c2", date: "2024-01-06", wantLate: false, wantChildren: 0, wantKids: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := s.AddReport(tt.cellID, validReport(tt.date))
			if err != nil {
				t.Fatalf("add report: %v", err)
			}
			if r.IsLate != tt.wantLate {
				t.Fatalf("expected isLate=%v, got %v", tt.wantLate, r.IsLate)
			}
			if r.ChildrenCount != tt.wantChildren || r.KidsOffering != tt.wantKids {
				t.Fatalf("expected children=%d kids=%v, got %d %v", tt.wantChildren, tt.wantKids, r.ChildrenCount, r.KidsOffering)
			}
			if r.Summary != "Boa reunião" {
				t.Fatalf("expected trimmed summary, got %q", r.Summary)
			}
		})
	}

	reports := s.Reports()
	if reports[0].Date != "2024-01-06" {
		t.Fatalf("expected newest submission first, got %q", reports[0].Date)
	}
}

func TestAddReportUnknownCell(t *testing.T) {
	s, _, _ := setupStoreTest(t)
	if _, err := s.AddReport("missing", validReport("2024-01-04")); !errors.Is(err, ErrCellNotFound) {
		t.Fatalf("expected ErrCellNotFound, got %v", err)
	}
}

func TestAddReportValidatesInput(t *testing.T) {
	s, gw, _ := setupStoreTest(t)

	bad := validReport("04/01/2024")
	if _, err := s.AddReport("c1", bad); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad date, got %v", err)
	}

	negative := validReport("2024-01-04")
	negative.Attendance = -1
	if _, err := s.AddReport("c1", negative); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative attendance, got %v", err)
	}

	s.Wait()
	if got := gw.reports.callCount(); got != 0 {
		t.Fatalf("expected no persistence for invalid input, got %d calls", got)
	}
}

func TestAddReportVisitors(t *testing.T) {
	s, _, _ := setupStoreTest(t)

	in := validReport("2024-01-04")
	in.FirstTimeVisitorsCount = 2
	in.FirstTimeVisitorsList = []model.Visitor{
		{Name: "Maria Souza", Phone: "(31) 98888-7777", Address: "Rua A, 1"},
		{Name: "José Lima", Phone: "31 97777-6666", Address: "Rua B, 2", IsBaptized: true},
	}

	r, err := s.AddReport("c1", in)
	if err != nil {
		t.Fatalf("add report: %v", err)
	}
	if r.FirstTimeVisitorsList[0].Phone != "31988887777" {
		t.Fatalf("expected normalized phone, got %q", r.FirstTimeVisitorsList[0].Phone)
	}

	notifications := s.Notifications()
	if len(notifications) != 2 {
		t.Fatalf("expected one notification per visitor, got %d", len(notifications))
	}
	latest := notifications[0]
	if latest.Type != model.NotificationVisitor || latest.Title != "Novo Visitante!" {
		t.Fatalf("unexpected notification %+v", latest)
	}
	if latest.Message != "José Lima visitou a célula Célula Ágape." {
		t.Fatalf("unexpected message %q", latest.Message)
	}
	if latest.CellID != "c1" || latest.VisitorPhone != "31977776666" {
		t.Fatalf("expected cell and phone on notification, got %+v", latest)
	}
	if latest.IsRead || latest.Date != fixedNow.Format(time.RFC3339) {
		t.Fatalf("expected unread notification dated now, got %+v", latest)
	}
}

func TestAddReportRejectsIncompleteVisitors(t *testing.T) {
	tests := []struct {
		name     string
		visitors []model.Visitor
	}{
		{name: "missing entries", visitors: []model.Visitor{{Name: "Maria Souza", Phone: "31988887777", Address: "Rua A"}}},
		{name: "single name", visitors: []model.Visitor{{Name: "Maria", Phone: "31988887777", Address: "Rua A"}, {Name: "José Lima", Phone: "31977776666", Address: "Rua B"}}},
		{name: "short phone", visitors: []model.Visitor{{Name: "Maria Souza", Phone: "9888-777", Address: "Rua A"}, {Name: "José Lima", Phone: "31977776666", Address: "Rua B"}}},
		{name: "no address", visitors: []model.Visitor{{Name: "Maria Souza", Phone: "31988887777"}, {Name: "José Lima", Phone: "31977776666", Address: "Rua B"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, _ := setupStoreTest(t)
			in := validReport("2024-01-04")
			in.FirstTimeVisitorsCount = 2
			in.FirstTimeVisitorsList = tt.visitors

			_, err := s.AddReport("c1", in)
			if !errors.Is(err, ErrInvalidVisitor) {
				t.Fatalf("expected ErrInvalidVisitor, got %v", err)
			}
			if len(s.Reports()) != 0 || len(s.Notifications()) != 0 {
				t.Fatalf("expected nothing stored for rejected report")
			}
		})
	}
}

func TestUpdateReport(t *testing.T) {
	s, gw, _ := setupStoreTest(t)

	first, err := s.AddReport("c1", validReport("2024-01-04"))
	if err != nil {
		t.Fatalf("add report: %v", err)
	}
	if _, err := s.AddReport("c1", validReport("2024-01-11")); err != nil {
		t.Fatalf("add report: %v", err)
	}

	if _, err := s.UpdateReport(first.ID, validReport("2024-01-11")); !errors.Is(err, ErrDuplicateReport) {
		t.Fatalf("expected duplicate when moving onto another report's date, got %v", err)
	}

	in := validReport("2024-01-05")
	in.Attendance = 20
	updated, err := s.UpdateReport(first.ID, in)
	if err != nil {
		t.Fatalf("update report: %v", err)
	}
	if updated.CellID != "c1" || updated.Attendance != 20 || !updated.IsLate {
		t.Fatalf("unexpected updated report %+v", updated)
	}

	same, err := s.UpdateReport(first.ID, in)
	if err != nil {
		t.Fatalf("updating a report onto its own date should work: %v", err)
	}
	if same.ID != first.ID {
		t.Fatalf("expected id to be kept")
	}

	if _, err := s.UpdateReport("missing", in); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}

	s.Wait()
	gw.reports.mu.Lock()
	defer gw.reports.mu.Unlock()
	updates := 0
	for _, call := range gw.reports.calls {
		if call == "update" {
			updates++
		}
	}
	if updates != 2 {
		t.Fatalf("expected two update calls, got %d", updates)
	}
}

func TestDeleteReport(t *testing.T) {
	s, _, _ := setupStoreTest(t)
	r, err := s.AddReport("c1", validReport("2024-01-04"))
	if err != nil {
		t.Fatalf("add report: %v", err)
	}
	if err := s.DeleteReport(r.ID); err != nil {
		t.Fatalf("delete report: %v", err)
	}
	if err := s.DeleteReport(r.ID); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
	if _, err := s.AddReport("c1", validReport("2024-01-04")); err != nil {
		t.Fatalf("date should be free again after delete: %v", err)
	}
}

func TestPersistFailureAlerts(t *testing.T) {
	s, gw, rep := setupStoreTest(t)
	gw.reports.failWrite = true
	gw.goals.failWrite = true
	gw.cells.failWrite = true

	if _, err := s.AddReport("c1", validReport("2024-01-04")); err != nil {
		t.Fatalf("add report: %v", err)
	}
	if _, err := s.AddGoal(GoalInput{Name: "Multiplicar"}); err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if _, err := s.AddCell(CellInput{Name: "Nova", Leader: "Ana", Type: model.CellTypeKids, Day: "Sexta-Feira"}); err != nil {
		t.Fatalf("add cell: %v", err)
	}
	s.Wait()

	if alerts := s.DrainAlerts("c2"); len(alerts) != 0 {
		t.Fatalf("expected no alerts for another cell, got %+v", alerts)
	}
	leader := s.DrainAlerts("c1")
	if len(leader) != 1 || leader[0].Message != reportAlertMessage {
		t.Fatalf("expected the report alert for the submitting cell, got %+v", leader)
	}
	admin := s.DrainAlerts(AdminAlerts)
	if len(admin) != 1 || admin[0].Message != goalAlertMessage {
		t.Fatalf("expected the goal alert for the admin, got %+v", admin)
	}
	if len(s.DrainAlerts("c1")) != 0 || len(s.DrainAlerts(AdminAlerts)) != 0 {
		t.Fatalf("expected alerts to be drained")
	}

	rep.mu.Lock()
	defer rep.mu.Unlock()
	if len(rep.ops) != 3 {
		t.Fatalf("expected every failure to be reported, got %v", rep.ops)
	}
	if len(s.Reports()) != 1 || len(s.Goals()) != 1 || len(s.Cells()) != 3 {
		t.Fatalf("expected optimistic state to be kept without rollback")
	}
}

func TestWritesReachBackendInOrder(t *testing.T) {
	s, gw, _ := setupStoreTest(t)

	var want []string
	for i := 0; i < 40; i++ {
		r, err := s.AddReport("c1", validReport(fixedNow.AddDate(0, 0, -i).Format("2006-01-02")))
		if err != nil {
			t.Fatalf("add report %d: %v", i, err)
		}
		want = append(want, "insert")
		if i%2 == 0 {
			if err := s.DeleteReport(r.ID); err != nil {
				t.Fatalf("delete report %d: %v", i, err)
			}
			want = append(want, "delete")
			continue
		}
		in := validReport(r.Date)
		in.Attendance = 99
		if _, err := s.UpdateReport(r.ID, in); err != nil {
			t.Fatalf("update report %d: %v", i, err)
		}
		want = append(want, "update")
	}
	s.Wait()

	gw.reports.mu.Lock()
	defer gw.reports.mu.Unlock()
	if len(gw.reports.calls) != len(want) {
		t.Fatalf("expected %d backend calls, got %d", len(want), len(gw.reports.calls))
	}
	for i := range want {
		if gw.reports.calls[i] != want[i] {
			t.Fatalf("call %d: expected %s, got %s (calls %v)", i, want[i], gw.reports.calls[i], gw.reports.calls)
		}
	}
}

func TestCellMutations(t *testing.T) {
	s, gw, _ := setupStoreTest(t)

	if _, err := s.AddCell(CellInput{Name: "Nova", Leader: "Ana", Type: "Idosos", Day: "Sexta-Feira"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}
	if _, err := s.AddCell(CellInput{Name: "Nova", Leader: "Ana", Type: model.CellTypeKids, Day: "Feriado"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown weekday, got %v", err)
	}
	if _, err := s.AddCell(CellInput{Name: "Nova", Leader: "Ana", Type: model.CellTypeKids, Day: "Sexta-Feira", LeaderPhoto: "not-a-photo"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad photo, got %v", err)
	}

	cell, err := s.AddCell(CellInput{Name: " Nova ", Leader: "Ana", Type: model.CellTypeKids, Day: "sexta", Team: []string{"Rui", " ", "Bia"}})
	if err != nil {
		t.Fatalf("add cell: %v", err)
	}
	if cell.Name != "Nova" || len(cell.Team) != 2 {
		t.Fatalf("expected trimmed cell, got %+v", cell)
	}

	if err := s.DismissLateAlert(cell.ID, "2024-01-05"); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	if err := s.DismissLateAlert(cell.ID, "ontem"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad date, got %v", err)
	}
	if err := s.DismissLateAlert("missing", "2024-01-05"); !errors.Is(err, ErrCellNotFound) {
		t.Fatalf("expected ErrCellNotFound, got %v", err)
	}

	updated, err := s.UpdateCell(cell.ID, CellInput{Name: "Nova Vida", Leader: "Ana", Type: model.CellTypeKids, Day: "Sexta-Feira"})
	if err != nil {
		t.Fatalf("update cell: %v", err)
	}
	if updated.DismissedLateDate != "2024-01-05" {
		t.Fatalf("expected dismissed date to survive update, got %q", updated.DismissedLateDate)
	}

	if err := s.DeleteCell(cell.ID); err != nil {
		t.Fatalf("delete cell: %v", err)
	}
	if _, ok := s.Cell(cell.ID); ok {
		t.Fatalf("expected cell to be removed")
	}
	if err := s.DeleteCell(cell.ID); !errors.Is(err, ErrCellNotFound) {
		t.Fatalf("expected ErrCellNotFound, got %v", err)
	}

	s.Wait()
	gw.cells.mu.Lock()
	defer gw.cells.mu.Unlock()
	if len(gw.cells.patches) != 1 || gw.cells.patches[0]["dismissed_late_date"] != "2024-01-05" {
		t.Fatalf("expected dismiss patch, got %+v", gw.cells.patches)
	}
}

func TestGoalMutations(t *testing.T) {
	s, _, _ := setupStoreTest(t)

	if _, err := s.AddGoal(GoalInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := s.AddGoal(GoalInput{Name: "X", CellType: "Idosos"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown audience, got %v", err)
	}

	first, _ := s.AddGoal(GoalInput{Name: "Multiplicar"})
	second, _ := s.AddGoal(GoalInput{Name: "Evangelizar", CellType: "Jovem"})
	goals := s.Goals()
	if goals[0].ID != first.ID || goals[1].ID != second.ID {
		t.Fatalf("expected goals in creation order")
	}
	if first.CellType != model.AllCellTypes {
		t.Fatalf("expected default audience, got %q", first.CellType)
	}

	toggled, err := s.ToggleGoal(first.ID)
	if err != nil || !toggled.IsCompleted {
		t.Fatalf("expected completed goal, got %+v %v", toggled, err)
	}
	toggled, _ = s.ToggleGoal(first.ID)
	if toggled.IsCompleted {
		t.Fatalf("expected toggle back to pending")
	}

	if _, err := s.UpdateGoal("missing", GoalInput{Name: "X"}); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
	if err := s.DeleteGoal(second.ID); err != nil {
		t.Fatalf("delete goal: %v", err)
	}
	if len(s.Goals()) != 1 {
		t.Fatalf("expected one goal left")
	}
}

func TestNotificationMutations(t *testing.T) {
	s, gw, _ := setupStoreTest(t)

	n := s.AddNotification(NotificationInput{Title: "Olá", Message: "Bem-vindo", Type: model.NotificationInfo})
	if err := s.MarkNotificationRead(n.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	got, _ := s.Notification(n.ID)
	if !got.IsRead {
		t.Fatalf("expected notification to be read")
	}
	if err := s.MarkNotificationRead("missing"); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
	if err := s.DeleteNotification(n.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := s.DeleteNotification(n.ID); !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}

	s.Wait()
	gw.notifications.mu.Lock()
	defer gw.notifications.mu.Unlock()
	if len(gw.notifications.patches) != 1 || gw.notifications.patches[0]["is_read"] != true {
		t.Fatalf("expected is_read patch, got %+v", gw.notifications.patches)
	}
}

func TestBroadcastNotice(t *testing.T) {
	s, _, _ := setupStoreTest(t)

	if _, err := s.BroadcastNotice(BroadcastAll, " ", "texto"); !errors.Is(err, ErrInvalidNotice) {
		t.Fatalf("expected ErrInvalidNotice, got %v", err)
	}
	if _, err := s.BroadcastNotice("missing", "Aviso", "texto"); !errors.Is(err, ErrCellNotFound) {
		t.Fatalf("expected ErrCellNotFound, got %v", err)
	}

	sent, err := s.BroadcastNotice(BroadcastAll, "Aviso", "Culto especial")
	if err != nil {
		t.Fatalf("broadcast: %v", err)
	}
	if len(sent) != 2 {
		t.Fatalf("expected one notice per cell, got %d", len(sent))
	}
	for _, n := range sent {
		if n.Type != model.NotificationNotice || n.CellID == "" {
			t.Fatalf("unexpected notice %+v", n)
		}
	}

	sent, err = s.BroadcastNotice("c2", "Aviso", "Só jovens")
	if err != nil || len(sent) != 1 || sent[0].CellID != "c2" {
		t.Fatalf("expected a single notice for c2, got %+v %v", sent, err)
	}
	if len(s.Notifications()) != 3 {
		t.Fatalf("expected three notifications, got %d", len(s.Notifications()))
	}
}

func TestContentMutations(t *testing.T) {
	s, _, _ := setupStoreTest(t)

	share, err := s.AddShare(ShareInput{Title: "Estudo", Description: "Semana 1"})
	if err != nil {
		t.Fatalf("add share: %v", err)
	}
	if share.Date != "2024-01-10" {
		t.Fatalf("expected share date to default to today, got %q", share.Date)
	}
	if _, err := s.AddShare(ShareInput{Title: "Estudo"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	second, _ := s.AddShare(ShareInput{Title: "Estudo 2", Description: "Semana 2", Date: "2024-01-09"})
	if s.Shares()[0].ID != second.ID {
		t.Fatalf("expected newest share first")
	}
	if err := s.DeleteShare(share.ID); err != nil {
		t.Fatalf("delete share: %v", err)
	}
	if err := s.DeleteShare(share.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, err := s.AddBaptism(BaptismInput{Name: "Maria"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	b, err := s.AddBaptism(BaptismInput{Name: "Maria", Date: "2024-02-01", CellName: "Célula Ágape"})
	if err != nil {
		t.Fatalf("add baptism: %v", err)
	}
	if err := s.DeleteBaptism(b.ID); err != nil || len(s.Baptisms()) != 0 {
		t.Fatalf("expected baptism to be deleted, got %v", err)
	}

	for _, date := range []string{"2024-03-01", "2024-01-20", "2024-02-15"} {
		if _, err := s.AddEvent(EventInput{Title: "Evento " + date, Date: date}); err != nil {
			t.Fatalf("add event: %v", err)
		}
	}
	events := s.Events()
	if events[0].Date != "2024-01-20" || events[2].Date != "2024-03-01" {
		t.Fatalf("expected events sorted by date, got %+v", events)
	}
	if events[0].CellType != model.AllCellTypes {
		t.Fatalf("expected default audience, got %q", events[0].CellType)
	}
	if err := s.DeleteEvent(events[1].ID); err != nil || len(s.Events()) != 2 {
		t.Fatalf("expected event to be deleted, got %v", err)
	}
}

func TestRefreshKeepsFailedTables(t *testing.T) {
	s, gw, _ := setupStoreTest(t)

	if _, err := s.AddGoal(GoalInput{Name: "Local"}); err != nil {
		t.Fatalf("add goal: %v", err)
	}
	s.Wait()

	gw.reports.set(model.Report{ID: "r1", CellID: "c1", Date: "2024-01-04"})
	gw.goals.failRead = true

	err := s.Refresh(context.Background())
	if !errors.Is(err, errBackend) {
		t.Fatalf("expected joined backend error, got %v", err)
	}
	if got := s.Reports(); len(got) != 1 || got[0].ID != "r1" {
		t.Fatalf("expected reports from backend, got %+v", got)
	}
	if got := s.Goals(); len(got) != 1 || got[0].Name != "Local" {
		t.Fatalf("expected goals to keep previous state, got %+v", got)
	}
	if got := len(s.Cells()); got != 2 {
		t.Fatalf("expected empty cells table to keep local cells, got %d", got)
	}

	gw.cells.set(model.Cell{ID: "remote", Name: "Remota", Type: model.CellTypeAdulto, Day: "Domingo"})
	gw.goals.failRead = false
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if got := s.Cells(); len(got) != 1 || got[0].ID != "remote" {
		t.Fatalf("expected backend cells to replace local, got %+v", got)
	}
}

func TestLoadInitialSkipsNullGateway(t *testing.T) {
	s := New(gateway.Null{}, WithInitialCells(testCells()))
	if err := s.LoadInitial(context.Background(), time.Second); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(s.Cells()) != 2 {
		t.Fatalf("expected local cells to be kept")
	}
}

func TestWatchRefreshesOnChange(t *testing.T) {
	s, gw, _ := setupStoreTest(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Watch(ctx)
		close(done)
	}()

	deadline := time.Now().Add(2 * time.Second)
	for !gw.subscribed() {
		if time.Now().After(deadline) {
			t.Fatalf("watch never subscribed")
		}
		time.Sleep(5 * time.Millisecond)
	}

	gw.events.set(model.AppEvent{ID: "e1", Title: "Culto", Date: "2024-02-01", CellType: model.AllCellTypes})
	for i := 0; i < 5; i++ {
		gw.emit(gateway.Change{Table: "events", Op: gateway.OpInsert})
	}

	for len(s.Events()) == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("expected events to be refreshed after change")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("watch did not stop after cancel")
	}
}
