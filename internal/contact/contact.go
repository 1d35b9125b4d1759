// Package contact 生成预填文本的 WhatsApp 联系链接。
package contact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/celulaviver/internal/locale"
	"github.com/celulaviver/internal/model"
)

const (
	whatsAppBase = "https://wa.me/"
	countryCode  = "55"
)

// ErrMissingPhone 表示号码中没有任何数字
var ErrMissingPhone = errors.New("phone number has no digits")

// Digits 去掉号码中的非数字字符
func Digits(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WhatsAppLink 构造 https://wa.me/55<digits>?text=<encoded> 链接
func WhatsAppLink(phone, text string) (string, error) {
	digits := Digits(phone)
	if digits == "" {
		return "", ErrMissingPhone
	}
	return whatsAppBase + countryCode + digits + "?text=" + encodeText(text), nil
}

// encodeText 与浏览器的 encodeURIComponent 一样用 %20 表示空格
func encodeText(text string) string {
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// ChargeLeaderMessage 是催交报告的消息，date 为 YYYY-MM-DD，可为空
func ChargeLeaderMessage(cell model.Cell, date string) string {
	when := ""
	if strings.TrimSpace(date) != "" {
		when = fmt.Sprintf(" (dia %s)", locale.FormatISODate(date))
	}
	return fmt.Sprintf("Olá líder! Percebemos que sua célula de %s%s ainda não possui relatório cadastrado. Tudo bem por aí?", cell.Day, when)
}

// VisitorWelcomeMessage 是发给首访者的欢迎消息
func VisitorWelcomeMessage(visitorName, cellName string) string {
	return fmt.Sprintf("Olá %s! Que alegria ter você conosco na Célula %s. Volte sempre!", strings.TrimSpace(visitorName), cellName)
}

// NoticeMessage 是通过 WhatsApp 发送的公告
func NoticeMessage(title, message string) string {
	return fmt.Sprintf("*Aviso Importante - Viver em Cristo*\n\n*%s*\n\n%s", title, message)
}

// NotificationMessage 根据通知类型返回联系文本，其他类型没有模板
func NotificationMessage(n model.AppNotification) (string, bool) {
	switch n.Type {
	case model.NotificationVisitor:
		return "Olá! Recebemos a notícia da sua visita na nossa Célula Viver em Cristo. Que alegria ter você conosco! Seja muito bem-vindo(a).", true
	case model.NotificationLate:
		return "Olá líder! Notamos que o relatório do último encontro ainda não foi enviado no aplicativo Viver em Cristo. Poderia nos enviar assim que possível? Obrigado!", true
	default:
		return "", false
	}
}

// ChargeLeaderLink 构造催交链接
func ChargeLeaderLink(cell model.Cell, date string) (string, error) {
	return WhatsAppLink(cell.Phone, ChargeLeaderMessage(cell, date))
}

// VisitorWelcomeLink 构造欢迎首访者的链接
func VisitorWelcomeLink(visitor model.Visitor, cellName string) (string, error) {
	return WhatsAppLink(visitor.Phone, VisitorWelcomeMessage(visitor.Name, cellName))
}

// NoticeLink 构造发送公告给指定小组领袖的链接
func NoticeLink(cell model.Cell, title, message string) (string, error) {
	return WhatsAppLink(cell.Phone, NoticeMessage(title, message))
}
