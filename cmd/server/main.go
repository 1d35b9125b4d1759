package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/celulaviver/internal/config"
	"github.com/celulaviver/internal/gateway"
	"github.com/celulaviver/internal/handler"
	"github.com/celulaviver/internal/reporting"
	"github.com/celulaviver/internal/router"
	"github.com/celulaviver/internal/store"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化后端，失败时退回本地数据
	gw, closeGateway, err := gateway.Open(cfg.DatabasePath, cfg.BackendDisabled)
	if err != nil {
		log.Printf("[gateway] backend unavailable, running without persistence: %v", err)
	} else if !gw.Available() {
		log.Printf("[gateway] backend disabled, running without persistence")
	}
	defer closeGateway()

	reporter := reporting.New(reporting.Options{
		Token:       cfg.RollbarToken,
		Environment: cfg.AppEnv,
	})
	defer reporter.Close()

	s := store.New(gw, store.WithReporter(reporter))
	defer s.Wait()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.LoadInitial(ctx, cfg.StartupFetchTimeout); err != nil {
		log.Printf("[store] continuing with partial data: %v", err)
	}
	go s.Watch(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	api := handler.NewAPI(s, handler.Options{
		AdminPasswordHash: hash,
		RememberMeDays:    cfg.RememberMeDays,
		Location:          cfg.Location(),
	})

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(api, cfg.SessionSecret)
	log.Printf("[server] listening on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
