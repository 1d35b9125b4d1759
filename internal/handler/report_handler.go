package handler

import (
	"net/http"

	"github.com/celulaviver/internal/analytics"
	"github.com/celulaviver/internal/contact"
	"github.com/celulaviver/internal/export"
	"github.com/celulaviver/internal/model"
	"github.com/celulaviver/internal/store"
	"github.com/gin-gonic/gin"
)

type leaderReportQuery struct {
	Period string `form:"period"`
	Year   string `form:"year"`
}

type welcomeRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// GetLeaderReports 返回当前小组的报告，可按周期和年份筛选
func (a *API) GetLeaderReports(c *gin.Context) {
	cell, _ := currentCell(c)

	var query leaderReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, http.StatusBadRequest, "Filtro inválido")
		return
	}

	now := a.now()
	own := analytics.ReportsForCell(a.store.Reports(), cell.ID)
	reports := make([]model.Report, 0, len(own))
	for _, r := range own {
		if analytics.MatchesPeriod(r.Date, query.Period, query.Year, now) {
			reports = append(reports, r)
		}
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports, "totals": analytics.ComputeTotals(reports)})
}

// CreateLeaderReport 提交当前小组的报告
func (a *API) CreateLeaderReport(c *gin.Context) {
	cell, _ := currentCell(c)

	var req store.ReportInput
	if !bindJSON(c, &req, "Dados do relatório inválidos") {
		return
	}

	report, err := a.store.AddReport(cell.ID, req)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Relatório enviado com sucesso!", "report": report})
}

// UpdateLeaderReport 修改本小组的报告
func (a *API) UpdateLeaderReport(c *gin.Context) {
	if !a.ownsReport(c) {
		return
	}

	var req store.ReportInput
	if !bindJSON(c, &req, "Dados do relatório inválidos") {
		return
	}

	report, err := a.store.UpdateReport(c.Param("id"), req)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Relatório atualizado", "report": report})
}

// DeleteLeaderReport 删除本小组的报告
func (a *API) DeleteLeaderReport(c *gin.Context) {
	if !a.ownsReport(c) {
		return
	}
	if err := a.store.DeleteReport(c.Param("id")); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Relatório excluído"})
}

func (a *API) ownsReport(c *gin.Context) bool {
	cell, _ := currentCell(c)
	report, ok := a.store.Report(c.Param("id"))
	if !ok || report.CellID != cell.ID {
		respondError(c, http.StatusNotFound, "Relatório não encontrado")
		return false
	}
	return true
}

// WelcomeVisitor 返回发送欢迎消息给首访者的 WhatsApp 链接
func (a *API) WelcomeVisitor(c *gin.Context) {
	cell, _ := currentCell(c)

	var req welcomeRequest
	if !bindJSON(c, &req, "Informe o nome e o WhatsApp do visitante.") {
		return
	}

	link, err := contact.VisitorWelcomeLink(model.Visitor{Name: req.Name, Phone: req.Phone}, cell.Name)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": link})
}

// GetAdminReports 返回管理员报告列表
func (a *API) GetAdminReports(c *gin.Context) {
	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}

	reports := analytics.FilterReports(a.store.Reports(), a.store.Cells(), filter, a.now())
	c.JSON(http.StatusOK, gin.H{"reports": reports, "totals": analytics.ComputeTotals(reports)})
}

// ExportAdminReports 以 XLSX 下载筛选后的报告
func (a *API) ExportAdminReports(c *gin.Context) {
	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}

	reports := analytics.FilterReports(a.store.Reports(), a.store.Cells(), filter, a.now())
	c.Header("Content-Type", export.ContentType)
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName(filter.Period, filter.Year)+`"`)
	c.Status(http.StatusOK)
	if err := export.WriteReports(c.Writer, reports); err != nil {
		_ = c.Error(err)
	}
}

// DeleteAdminReport 删除任意报告
func (a *API) DeleteAdminReport(c *gin.Context) {
	if err := a.store.DeleteReport(c.Param("id")); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Relatório excluído"})
}

// GetMetrics 返回统计页的全部图表数据
func (a *API) GetMetrics(c *gin.Context) {
	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}
	metrics := analytics.ComputeMetrics(a.store.Reports(), a.store.Cells(), filter, a.now())
	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

func bindReportFilter(c *gin.Context) (analytics.ReportFilter, bool) {
	var filter analytics.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondError(c, http.StatusBadRequest, "Filtro inválido")
		return filter, false
	}
	return filter, true
}
