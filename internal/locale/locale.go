package locale

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// DateLayout 为 pt-BR 日期显示格式
	DateLayout = "02/01/2006"
	// ISODateLayout 为存储使用的日期格式
	ISODateLayout = "2006-01-02"
)

var weekdayNames = [7]string{
	"Domingo",
	"Segunda-Feira",
	"Terça-Feira",
	"Quarta-Feira",
	"Quinta-Feira",
	"Sexta-Feira",
	"Sábado",
}

var weekdayShortNames = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// WeekdayNames 返回按 time.Weekday 顺序排列的星期名称
func WeekdayNames() []string {
	names := make([]string, len(weekdayNames))
	copy(names, weekdayNames[:])
	return names
}

// WeekdayName 返回星期的完整名称
func WeekdayName(day time.Weekday) string {
	if day < time.Sunday || day > time.Saturday {
		return ""
	}
	return weekdayNames[day]
}

// ShortWeekdayName 返回星期的缩写
func ShortWeekdayName(day time.Weekday) string {
	if day < time.Sunday || day > time.Saturday {
		return ""
	}
	return weekdayShortNames[day]
}

// ParseWeekday 解析小组的聚会日。
// 只取第一个词（"Quinta-Feira 20h" 取 "Quinta-Feira"），忽略大小写与重音，
// 同时接受缩写和去掉 "-Feira" 的写法。
func ParseWeekday(value string) (time.Weekday, bool) {
	token := strings.TrimSpace(value)
	if idx := strings.IndexAny(token, " \t–—,"); idx >= 0 {
		token = token[:idx]
	}
	key := fold(token)
	if key == "" {
		return time.Sunday, false
	}

	for i := range weekdayNames {
		full := fold(weekdayNames[i])
		if key == full || key == strings.TrimSuffix(full, "-feira") || key == fold(weekdayShortNames[i]) {
			return time.Weekday(i), true
		}
	}
	return time.Sunday, false
}

// FormatDate 按 pt-BR 格式输出日期
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// FormatISODate 将 YYYY-MM-DD 转换为 DD/MM/YYYY，无法解析时原样返回
func FormatISODate(value string) string {
	parsed, err := time.Parse(ISODateLayout, strings.TrimSpace(value))
	if err != nil {
		return value
	}
	return parsed.Format(DateLayout)
}

// FormatCurrency 以 R$ 1.234,56 的形式输出金额
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	integer, fraction, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, r := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	return sign + "R$ " + grouped.String() + "," + fraction
}

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(value string) string {
	folded, _, err := transform.String(accentFolder, value)
	if err != nil {
		folded = value
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
