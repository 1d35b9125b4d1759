package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/celulaviver/internal/analytics"
	"github.com/celulaviver/internal/contact"
	"github.com/celulaviver/internal/locale"
	"github.com/celulaviver/internal/model"
	"github.com/celulaviver/internal/store"
	"github.com/gin-gonic/gin"
)

type dismissRequest struct {
	Date string `json:"date" binding:"required"`
}

type chargeRequest struct {
	Date string `json:"date"`
}

// lateAlertView 在迟交提醒上附带催交链接
type lateAlertView struct {
	analytics.LateAlert
	LeaderName  string `json:"leaderName"`
	DisplayDate string `json:"displayDate"`
	ContactURL  string `json:"contactUrl,omitempty"`
}

// GetCells 返回全部小组
func (a *API) GetCells(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cells": a.store.Cells(), "weekdays": locale.WeekdayNames()})
}

// GetCell 返回单个小组
func (a *API) GetCell(c *gin.Context) {
	cell, ok := a.store.Cell(c.Param("id"))
	if !ok {
		handleStoreError(c, store.ErrCellNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cell": cell})
}

// CreateCell 新增小组
func (a *API) CreateCell(c *gin.Context) {
	var req store.CellInput
	if !bindJSON(c, &req, "Dados da célula inválidos") {
		return
	}
	cell, err := a.store.AddCell(req)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Célula cadastrada", "cell": cell})
}

// UpdateCell 修改小组资料
func (a *API) UpdateCell(c *gin.Context) {
	var req store.CellInput
	if !bindJSON(c, &req, "Dados da célula inválidos") {
		return
	}
	cell, err := a.store.UpdateCell(c.Param("id"), req)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Célula atualizada", "cell": cell})
}

// DeleteCell 删除小组
func (a *API) DeleteCell(c *gin.Context) {
	if err := a.store.DeleteCell(c.Param("id")); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Célula excluída"})
}

// DismissLateAlert 忽略小组某天的迟交提醒
func (a *API) DismissLateAlert(c *gin.Context) {
	var req dismissRequest
	if !bindJSON(c, &req, "Informe a data do encontro") {
		return
	}
	if err := a.store.DismissLateAlert(c.Param("id"), req.Date); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alerta dispensado"})
}

// GetLateAlerts 返回当前未提交报告的小组
func (a *API) GetLateAlerts(c *gin.Context) {
	alerts := analytics.DetectLateCells(a.store.Cells(), a.store.Reports(), a.now())

	views := make([]lateAlertView, 0, len(alerts))
	for _, alert := range alerts {
		view := lateAlertView{
			LateAlert:   alert,
			LeaderName:  alert.Cell.Leader,
			DisplayDate: locale.FormatISODate(alert.Date),
		}
		if link, err := contact.ChargeLeaderLink(alert.Cell, alert.Date); err == nil {
			view.ContactURL = link
		}
		views = append(views, view)
	}
	c.JSON(http.StatusOK, gin.H{"alerts": views, "count": len(views)})
}

// ChargeLateCell 返回催交链接，并给该小组留一条 late 通知
func (a *API) ChargeLateCell(c *gin.Context) {
	var req chargeRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req, "Dados inválidos") {
		return
	}

	cell, ok := a.store.Cell(c.Param("cellId"))
	if !ok {
		handleStoreError(c, store.ErrCellNotFound)
		return
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		if last, ok := analytics.LastMeeting(cell, a.now()); ok {
			date = last.Format(locale.ISODateLayout)
		}
	}

	link, err := contact.ChargeLeaderLink(cell, date)
	if err != nil {
		handleStoreError(c, err)
		return
	}

	notification := a.store.AddNotification(store.NotificationInput{
		Title:   "Relatório pendente",
		Message: fmt.Sprintf("O relatório da célula %s do dia %s ainda não foi enviado.", cell.Name, locale.FormatISODate(date)),
		Type:    model.NotificationLate,
		CellID:  cell.ID,
	})
	c.JSON(http.StatusOK, gin.H{"url": link, "notification": notification})
}
