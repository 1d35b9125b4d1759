package handler

import (
	"net/http"

	"github.com/celulaviver/internal/analytics"
	"github.com/celulaviver/internal/store"
	"github.com/gin-gonic/gin"
)

// GetGoals 返回目标列表，status 可为 all、completed 或 pending
func (a *API) GetGoals(c *gin.Context) {
	goals := analytics.FilterGoals(a.store.Goals(), c.DefaultQuery("status", analytics.GoalStatusAll))
	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// CreateGoal 新增目标
func (a *API) CreateGoal(c *gin.Context) {
	var req store.GoalInput
	if !bindJSON(c, &req, "Dados da meta inválidos") {
		return
	}
	goal, err := a.store.AddGoal(req)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Meta cadastrada", "goal": goal})
}

// UpdateGoal 修改目标
func (a *API) UpdateGoal(c *gin.Context) {
	var req store.GoalInput
	if !bindJSON(c, &req, "Dados da meta inválidos") {
		return
	}
	goal, err := a.store.UpdateGoal(c.Param("id"), req)
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meta atualizada", "goal": goal})
}

// ToggleGoal 切换目标完成状态
func (a *API) ToggleGoal(c *gin.Context) {
	goal, err := a.store.ToggleGoal(c.Param("id"))
	if err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal 删除目标
func (a *API) DeleteGoal(c *gin.Context) {
	if err := a.store.DeleteGoal(c.Param("id")); err != nil {
		handleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Meta excluída"})
}
