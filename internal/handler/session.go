package handler

import (
	"encoding/json"
	"net/http"

	"github.com/celulaviver/internal/model"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthSessionKey 是会话中保存登录状态的键
const AuthSessionKey = "viver_em_cristo_auth"

const rememberSessionKey = "remember_me"

const (
	authContextKey = "__auth_state"
	cellContextKey = "__auth_cell"
)

// loadAuth 读取会话中的登录状态，内容损坏时视为未登录
func loadAuth(c *gin.Context) model.AuthState {
	session := sessions.Default(c)
	raw, ok := session.Get(AuthSessionKey).(string)
	if !ok || raw == "" {
		return model.AuthState{}
	}
	var state model.AuthState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return model.AuthState{}
	}
	if !state.IsAuthenticated {
		return model.AuthState{}
	}
	return state
}

func (a *API) saveAuth(c *gin.Context, state model.AuthState, remember bool) error {
	if state.Cell != nil {
		// 照片不写入 cookie，每次请求重新从 store 取小组
		cell := *state.Cell
		cell.LeaderPhoto = ""
		state.Cell = &cell
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	maxAge := 0
	if remember {
		maxAge = a.rememberDays * 24 * 60 * 60
	}
	session := sessions.Default(c)
	session.Options(sessions.Options{Path: "/", MaxAge: maxAge, HttpOnly: true, SameSite: http.SameSiteLaxMode})
	session.Set(AuthSessionKey, string(payload))
	session.Set(rememberSessionKey, remember)
	return session.Save()
}

func sessionRemembered(c *gin.Context) bool {
	remember, _ := sessions.Default(c).Get(rememberSessionKey).(bool)
	return remember
}

func clearAuth(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(AuthSessionKey)
	session.Delete(rememberSessionKey)
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// resolveAuth 读取登录状态并用 store 中最新的小组替换会话里的副本
func (a *API) resolveAuth(c *gin.Context) (model.AuthState, bool) {
	state := loadAuth(c)
	if !state.IsAuthenticated {
		return state, false
	}
	switch state.Role {
	case model.RoleAdmin:
		state.Cell = nil
		return state, true
	case model.RoleLeader:
		if state.Cell == nil {
			return model.AuthState{}, false
		}
		cell, ok := a.store.Cell(state.Cell.ID)
		if !ok {
			return model.AuthState{}, false
		}
		state.Cell = &cell
		return state, true
	default:
		return model.AuthState{}, false
	}
}

// AuthRequired 要求已登录且已确认小组
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		state, ok := a.resolveAuth(c)
		if !ok {
			respondError(c, http.StatusUnauthorized, "Sessão expirada. Faça login novamente.")
			c.Abort()
			return
		}
		if !state.IsConfirmed {
			respondError(c, http.StatusForbidden, "Confirme sua célula para continuar.")
			c.Abort()
			return
		}
		c.Set(authContextKey, state)
		if state.Cell != nil {
			c.Set(cellContextKey, *state.Cell)
		}
		c.Next()
	}
}

// LeaderRequired 需配合 AuthRequired 使用
func (a *API) LeaderRequired() gin.HandlerFunc {
	return requireRole(model.RoleLeader)
}

// AdminRequired 需配合 AuthRequired 使用
func (a *API) AdminRequired() gin.HandlerFunc {
	return requireRole(model.RoleAdmin)
}

func requireRole(role model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentAuth(c).Role != role {
			respondError(c, http.StatusForbidden, "Acesso não permitido")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentAuth(c *gin.Context) model.AuthState {
	if v, ok := c.Get(authContextKey); ok {
		if state, ok := v.(model.AuthState); ok {
			return state
		}
	}
	return model.AuthState{}
}

// currentCell 返回当前领袖的小组，管理员没有小组
func currentCell(c *gin.Context) (model.Cell, bool) {
	if v, ok := c.Get(cellContextKey); ok {
		if cell, ok := v.(model.Cell); ok {
			return cell, true
		}
	}
	return model.Cell{}, false
}
