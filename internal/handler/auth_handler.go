package handler

import (
	"net/http"
	"strings"

	"github.com/celulaviver/internal/model"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Role       model.UserRole `json:"role" binding:"required,oneof=admin leader"`
	Password   string         `json:"password"`
	CellID     string         `json:"cellId"`
	RememberMe bool           `json:"rememberMe"`
}

// cellOption 是登录页选择小组时展示的精简信息
type cellOption struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Leader string         `json:"leader"`
	Type   model.CellType `json:"type"`
}

// ListCellOptions 返回登录页的小组列表
func (a *API) ListCellOptions(c *gin.Context) {
	cells := a.store.Cells()
	options := make([]cellOption, 0, len(cells))
	for _, cell := range cells {
		options = append(options, cellOption{ID: cell.ID, Name: cell.Name, Leader: cell.Leader, Type: cell.Type})
	}
	c.JSON(http.StatusOK, gin.H{"cells": options})
}

// Login 处理登录请求
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "Selecione seu perfil de acesso.") {
		return
	}

	var state model.AuthState
	switch req.Role {
	case model.RoleAdmin:
		if len(a.adminHash) == 0 || bcrypt.CompareHashAndPassword(a.adminHash, []byte(req.Password)) != nil {
			respondError(c, http.StatusUnauthorized, "Senha incorreta para administrador.")
			return
		}
		state = model.AuthState{Role: model.RoleAdmin, IsAuthenticated: true, IsConfirmed: true}
	case model.RoleLeader:
		cellID := strings.TrimSpace(req.CellID)
		if cellID == "" {
			respondError(c, http.StatusBadRequest, "Selecione uma célula para acessar.")
			return
		}
		cell, ok := a.store.Cell(cellID)
		if !ok {
			respondError(c, http.StatusNotFound, "Célula não encontrada")
			return
		}
		state = model.AuthState{Role: model.RoleLeader, Cell: &cell, IsAuthenticated: true}
	}

	if err := a.saveAuth(c, state, req.RememberMe); err != nil {
		respondError(c, http.StatusInternalServerError, "Falha ao salvar a sessão")
		return
	}
	c.JSON(http.StatusOK, gin.H{"auth": state})
}

// Logout 清除会话
func (a *API) Logout(c *gin.Context) {
	if err := clearAuth(c); err != nil {
		respondError(c, http.StatusInternalServerError, "Falha ao encerrar a sessão")
		return
	}
	c.JSON(http.StatusOK, gin.H{"auth": model.AuthState{}})
}

// GetSession 返回当前登录状态，未登录时返回空状态
func (a *API) GetSession(c *gin.Context) {
	state, ok := a.resolveAuth(c)
	if !ok {
		state = model.AuthState{}
	}
	c.JSON(http.StatusOK, gin.H{"auth": state})
}

// ConfirmSession 领袖确认所选小组
func (a *API) ConfirmSession(c *gin.Context) {
	state, ok := a.resolveAuth(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Sessão expirada. Faça login novamente.")
		return
	}
	if state.IsConfirmed {
		c.JSON(http.StatusOK, gin.H{"auth": state})
		return
	}

	state.IsConfirmed = true
	remember := sessionRemembered(c)
	if err := a.saveAuth(c, state, remember); err != nil {
		respondError(c, http.StatusInternalServerError, "Falha ao salvar a sessão")
		return
	}
	c.JSON(http.StatusOK, gin.H{"auth": state})
}
