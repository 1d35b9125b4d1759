package analytics

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/celulaviver/internal/locale"
)

const (
	PeriodAll      = "all"
	PeriodWeek     = "week"
	PeriodMonth    = "month"
	PeriodBimester = "bimester"
	PeriodQuarter  = "quarter"
	PeriodSemester = "semester"
	PeriodYear     = "year"

	// YearAll 表示不限年份
	YearAll = "all"
)

// ReportTime 将 YYYY-MM-DD 解释为当地时间中午
func ReportTime(date string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	parsed, err := time.ParseInLocation(locale.ISODateLayout, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.Add(12 * time.Hour), true
}

// MatchesPeriod 判断报告日期是否落在所选周期内。
// 月/双月/季度/半年始终与 now 所在年份比较；year 使用 targetYear 本身；
// period 也可以是 1..12 的月份数字。
func MatchesPeriod(reportDate, period, targetYear string, now time.Time) bool {
	period = normalize(period, PeriodAll)
	targetYear = normalize(targetYear, YearAll)

	date, ok := ReportTime(reportDate, now.Location())
	if !ok {
		return period == PeriodAll && targetYear == YearAll
	}

	reportYear := strconv.Itoa(date.Year())
	if targetYear != YearAll && reportYear != targetYear {
		return false
	}

	sameYear := date.Year() == now.Year()
	month := int(date.Month()) - 1
	current := int(now.Month()) - 1

	switch period {
	case PeriodAll:
		return true
	case PeriodWeek:
		diff := math.Abs(float64(now.Sub(date)))
		days := math.Ceil(diff / float64(24*time.Hour))
		return days <= 7
	case PeriodMonth:
		return sameYear && month == current
	case PeriodBimester:
		return sameYear && month/2 == current/2
	case PeriodQuarter:
		return sameYear && month/3 == current/3
	case PeriodSemester:
		return sameYear && month/6 == current/6
	case PeriodYear:
		return reportYear == targetYear
	}

	if n, err := strconv.Atoi(period); err == nil && n >= 1 && n <= 12 {
		return int(date.Month()) == n
	}
	return true
}

func normalize(value, fallback string) string {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
