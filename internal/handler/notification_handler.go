package handler

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/celulaviver/internal/analytics"
	"github.com/celulaviver/internal/contact"
	"github.com/celulaviver/internal/model"
	"github.com/celulaviver/internal/store"
	"github.com/gin-gonic/gin"
)

type noticeRequest struct {
	Recipient string `json:"recipient" binding:"required"`
	Title     string `json:"title"`
	Message   string `json:"message"`
}

type notificationView struct {
	model.AppNotification
	MessageHTML template.HTML `json:"messageHtml"`
}

// GetNotifications 返回当前用户可见的通知与未读数量
func (a *API) GetNotifications(c *gin.Context) {
	notifications := a.store.Notifications()
	if cell, ok := currentCell(c); ok {
		notifications = analytics.NotificationsForLeader(notifications, cell.ID)
	}

	views := make([]notificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, notificationView{AppNotification: n, MessageHTML: renderMarkdown(n.Message)})
	}
	c.JSON(http.StatusOK, gin.H{"notifications": views, "unread": analytics.UnreadCount(notifications)})
}

// visibleNotification 查找通知，领袖只能访问自己的通知
func (a *API) visibleNotification(c *gin.Context) (model.AppNotification, bool) {
	n, ok := a.store.Notification(c.Param("id"))
	if ok {
		if cell, isLeader := currentCell(c); isLeader && n.CellID != "" && n.CellID != cell.ID {
			ok = false
		}
	}
	if !ok {
		handleStoreError(c, store.ErrNotificationNotFound)
	}
	return n, ok
}

// MarkNotificationRead 标记通知已读
func (a *API) MarkNotificationRead(c *gin.Context) {
	n, ok := a.visibleNotification(c)
	if !ok {
		return
	}
	if err := a.store.MarkNotificationRead(n.ID); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notificação lida"})
}

// DeleteNotification 删除通知
func (a *API) DeleteNotification(c *gin.Context) {
	n, ok := a.visibleNotification(c)
	if !ok {
		return
	}
	if err := a.store.DeleteNotification(n.ID); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notificação excluída"})
}

// GetNotificationContact 返回 visitor 或 late 通知的 WhatsApp 联系链接
func (a *API) GetNotificationContact(c *gin.Context) {
	n, ok := a.visibleNotification(c)
	if !ok {
		return
	}
	text, ok := contact.NotificationMessage(n)
	if !ok {
		respondError(c, http.StatusBadRequest, "Esta notificação não possui contato.")
		return
	}

	phone := n.VisitorPhone
	if phone == "" && n.CellID != "" {
		if cell, found := a.store.Cell(n.CellID); found {
			phone = cell.Phone
		}
	}
	link, err := contact.WhatsAppLink(phone, text)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": link})
}

// SendNotice 发送站内公告，recipient 为小组 id 或 all
func (a *API) SendNotice(c *gin.Context) {
	var req noticeRequest
	if !bindJSON(c, &req, "Selecione o destinatário.") {
		return
	}
	sent, err := a.store.BroadcastNotice(strings.TrimSpace(req.Recipient), req.Title, req.Message)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Aviso enviado com sucesso!",
		"count":       len(sent),
		"messageHtml": renderMarkdown(strings.TrimSpace(req.Message)),
	})
}

// SendNoticeWhatsApp 返回把公告发给指定小组领袖的 WhatsApp 链接
func (a *API) SendNoticeWhatsApp(c *gin.Context) {
	var req noticeRequest
	if !bindJSON(c, &req, "Selecione o destinatário.") {
		return
	}
	title := strings.TrimSpace(req.Title)
	message := strings.TrimSpace(req.Message)
	if title == "" || message == "" {
		handleStoreError(c, store.ErrInvalidNotice)
		return
	}
	recipient := strings.TrimSpace(req.Recipient)
	if recipient == store.BroadcastAll {
		respondError(c, http.StatusBadRequest, "Selecione uma célula específica para enviar via WhatsApp.")
		return
	}
	cell, ok := a.store.Cell(recipient)
	if !ok {
		handleStoreError(c, store.ErrCellNotFound)
		return
	}

	link, err := contact.NoticeLink(cell, title, message)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": link})
}

// GetAlerts 取出当前会话等待展示的写入失败提示
func (a *API) GetAlerts(c *gin.Context) {
	alerts := a.store.DrainAlerts(alertOwner(c))
	if alerts == nil {
		alerts = []store.Alert{}
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts, "backendAvailable": a.store.Available()})
}

// Ping 健康检查
func (a *API) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong", "backend": a.store.Available()})
}

// alertOwner 领袖按所属小组取提示，管理员共用一个键
func alertOwner(c *gin.Context) string {
	if cell, ok := currentCell(c); ok {
		return cell.ID
	}
	return store.AdminAlerts
}
