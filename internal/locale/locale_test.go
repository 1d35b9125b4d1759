package locale

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		input string
		want  time.Weekday
		ok    bool
	}{
		{input: "Quinta-Feira", want: time.Thursday, ok: true},
		{input: "quinta-feira", want: time.Thursday, ok: true},
		{input: "Quinta", want: time.Thursday, ok: true},
		{input: "Qui", want: time.Thursday, ok: true},
		{input: "Terça-Feira", want: time.Tuesday, ok: true},
		{input: "terca-feira", want: time.Tuesday, ok: true},
		{input: "Sábado", want: time.Saturday, ok: true},
		{input: "sabado", want: time.Saturday, ok: true},
		{input: "Domingo", want: time.Sunday, ok: true},
		{input: "Segunda-Feira 20h", want: time.Monday, ok: true},
		{input: "Sexta-Feira – quinzenal", want: time.Friday, ok: true},
		{input: "", ok: false},
		{input: "Thursday", ok: false},
	}

	for _, tc := range cases {
		got, ok := ParseWeekday(tc.input)
		if ok != tc.ok {
			t.Fatalf("ParseWeekday(%q) ok = %v, want %v", tc.input, ok, tc.ok)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseWeekday(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestWeekdayNameRoundTrip(t *testing.T) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		name := WeekdayName(day)
		got, ok := ParseWeekday(name)
		if !ok || got != day {
			t.Fatalf("expected %q to parse back to %v, got %v (ok=%v)", name, day, got, ok)
		}
		short, ok := ParseWeekday(ShortWeekdayName(day))
		if !ok || short != day {
			t.Fatalf("expected short name of %v to parse back, got %v", day, short)
		}
	}
	if WeekdayName(time.Weekday(9)) != "" {
		t.Fatalf("expected empty name for out of range weekday")
	}
}

func TestFormatISODate(t *testing.T) {
	if got := FormatISODate("2024-03-07"); got != "07/03/2024" {
		t.Fatalf("expected %q, got %q", "07/03/2024", got)
	}
	if got := FormatISODate("ontem"); got != "ontem" {
		t.Fatalf("expected invalid input to pass through, got %q", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Fatalf("expected empty string for zero time, got %q", got)
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "0", want: "R$ 0,00"},
		{input: "12.5", want: "R$ 12,50"},
		{input: "1234.56", want: "R$ 1.234,56"},
		{input: "1234567.891", want: "R$ 1.234.567,89"},
		{input: "-300", want: "-R$ 300,00"},
	}

	for _, tc := range cases {
		if got := FormatCurrency(decimal.RequireFromString(tc.input)); got != tc.want {
			t.Fatalf("FormatCurrency(%s) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
