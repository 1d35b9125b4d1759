package handler

import (
	"html/template"
	"net/http"

	"github.com/celulaviver/internal/analytics"
	"github.com/celulaviver/internal/model"
	"github.com/celulaviver/internal/store"
	"github.com/gin-gonic/gin"
)

type shareView struct {
	model.Share
	DescriptionHTML template.HTML `json:"descriptionHtml"`
}

func shareViews(shares []model.Share) []shareView {
	views := make([]shareView, 0, len(shares))
	for _, s := range shares {
		views = append(views, shareView{Share: s, DescriptionHTML: renderMarkdown(s.Description)})
	}
	return views
}

// GetShares 返回共享资料
func (a *API) GetShares(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"shares": shareViews(a.store.Shares())})
}

// CreateShare 新增共享资料
func (a *API) CreateShare(c *gin.Context) {
	var req store.ShareInput
	if !bindJSON(c, &req, "Preencha o título e a descrição.") {
		return
	}
	share, err := a.store.AddShare(req)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"share": shareView{Share: share, DescriptionHTML: renderMarkdown(share.Description)}})
}

// DeleteShare 删除共享资料
func (a *API) DeleteShare(c *gin.Context) {
	if err := a.store.DeleteShare(c.Param("id")); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Material excluído"})
}

// GetBaptisms 返回洗礼登记
func (a *API) GetBaptisms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"baptisms": a.store.Baptisms()})
}

// CreateBaptism 登记洗礼
func (a *API) CreateBaptism(c *gin.Context) {
	var req store.BaptismInput
	if !bindJSON(c, &req, "Preencha nome, data e célula.") {
		return
	}
	baptism, err := a.store.AddBaptism(req)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"baptism": baptism})
}

// DeleteBaptism 删除洗礼登记
func (a *API) DeleteBaptism(c *gin.Context) {
	if err := a.store.DeleteBaptism(c.Param("id")); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Batismo excluído"})
}

// GetEvents 返回活动，分为未开始和已结束；领袖只看到面向本小组类型的活动
func (a *API) GetEvents(c *gin.Context) {
	events := a.store.Events()
	if cell, ok := currentCell(c); ok {
		events = analytics.EventsForCell(events, cell)
	}
	upcoming, past := analytics.SplitEvents(events, a.now())
	c.JSON(http.StatusOK, gin.H{"upcoming": upcoming, "past": past})
}

// CreateEvent 新增活动
func (a *API) CreateEvent(c *gin.Context) {
	var req store.EventInput
	if !bindJSON(c, &req, "Preencha o título e a data.") {
		return
	}
	event, err := a.store.AddEvent(req)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// DeleteEvent 删除活动
func (a *API) DeleteEvent(c *gin.Context) {
	if err := a.store.DeleteEvent(c.Param("id")); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Evento excluído"})
}
