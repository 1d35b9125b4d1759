// Package reporting 将后台写入失败记录到日志，并在配置了令牌时上报 Rollbar。
package reporting

import (
	"log"
	"os"
	"strings"

	"github.com/rollbar/rollbar-go"
)

// Reporter 接收持久化等后台操作的失败
type Reporter interface {
	Report(op string, err error)
	Close()
}

// LogReporter 只写日志
type LogReporter struct {
	Tag string
}

func (r LogReporter) Report(op string, err error) {
	if err == nil {
		return
	}
	log.Printf("[%s] %s failed: %v", r.tag(), op, err)
}

func (LogReporter) Close() {}

func (r LogReporter) tag() string {
	if r.Tag == "" {
		return "store"
	}
	return r.Tag
}

// RollbarReporter 同时写日志与上报 Rollbar
type RollbarReporter struct {
	client *rollbar.Client
	log    LogReporter
}

// Options 描述 Rollbar 客户端的环境信息
type Options struct {
	Token       string
	Environment string
	CodeVersion string
}

// New 在 Token 为空时返回 LogReporter
func New(opts Options) Reporter {
	token := strings.TrimSpace(opts.Token)
	if token == "" {
		return LogReporter{}
	}

	env := strings.TrimSpace(opts.Environment)
	if env == "" {
		env = "development"
	}
	host, _ := os.Hostname()
	client := rollbar.New(token, env, opts.CodeVersion, host, "")
	return &RollbarReporter{client: client}
}

func (r *RollbarReporter) Report(op string, err error) {
	if err == nil {
		return
	}
	r.log.Report(op, err)
	r.client.ErrorWithExtras(rollbar.ERR, err, map[string]interface{}{"operation": op})
}

// Close 等待未发送的上报完成
func (r *RollbarReporter) Close() {
	r.client.Wait()
}
