package handler

import (
	"time"

	"github.com/celulaviver/internal/store"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	store        *store.Store
	adminHash    []byte
	rememberDays int
	loc          *time.Location
}

// Options 是构造 API 时的可选配置
type Options struct {
	// AdminPasswordHash 为 bcrypt 哈希
	AdminPasswordHash []byte
	RememberMeDays    int
	Location          *time.Location
}

// NewAPI constructs a handler set around the shared store.
func NewAPI(s *store.Store, opts Options) *API {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	days := opts.RememberMeDays
	if days <= 0 {
		days = 30
	}
	return &API{
		store:        s,
		adminHash:    opts.AdminPasswordHash,
		rememberDays: days,
		loc:          loc,
	}
}

// Store exposes the underlying store for background jobs.
func (a *API) Store() *store.Store {
	return a.store
}

func (a *API) now() time.Time {
	return a.store.Now().In(a.loc)
}
