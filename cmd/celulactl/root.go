package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/celulaviver/internal/config"
	"github.com/celulaviver/internal/gateway"
	"github.com/celulaviver/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath   string
	timezone string
)

var rootCmd = &cobra.Command{
	Use:   "celulactl",
	Short: "celulactl administra os dados das células pelo terminal",
	Long:  "celulactl opera diretamente sobre o banco das células: carga inicial, alertas de atraso e exportação de relatórios.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database (defaults to DATABASE_PATH)")
	rootCmd.PersistentFlags().StringVar(&timezone, "tz", "", "Timezone used for dates (defaults to TIMEZONE)")
}

func loadConfig() config.AppConfig {
	cfg := config.Load()
	if dbPath != "" {
		cfg.DatabasePath = dbPath
	}
	if timezone != "" {
		cfg.Timezone = timezone
	}
	return cfg
}

// withGateway 打开后端并在 fn 返回后关闭
func withGateway(fn func(cfg config.AppConfig, gw gateway.Gateway) error) error {
	cfg := loadConfig()
	gw, closeGateway, err := gateway.Open(cfg.DatabasePath, false)
	if err != nil {
		return err
	}
	defer closeGateway()
	return fn(cfg, gw)
}

// withStore 在 withGateway 基础上载入全部数据
func withStore(fn func(cfg config.AppConfig, s *store.Store) error) error {
	return withGateway(func(cfg config.AppConfig, gw gateway.Gateway) error {
		s := store.New(gw)
		defer s.Wait()
		if err := s.LoadInitial(context.Background(), cfg.StartupFetchTimeout); err != nil {
			return err
		}
		return fn(cfg, s)
	})
}

func now(cfg config.AppConfig) time.Time {
	return time.Now().In(cfg.Location())
}
