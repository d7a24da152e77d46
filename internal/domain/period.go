package domain

import (
	"errors"
	"fmt"
	"time"
)

const periodLayout = "2006-01"

var ErrInvalidPeriod = errors.New("periodo debe ser YYYY-MM")

// Period é um mês do calendário, representado pelo seu primeiro dia
type Period struct {
	year  int
	month time.Month
}

func NewPeriod(year int, month time.Month) Period {
	return Period{year: year, month: month}
}

// PeriodOf retorna o período que contém t
func PeriodOf(t time.Time) Period {
	return Period{year: t.Year(), month: t.Month()}
}

// ParsePeriod aceita somente o formato YYYY-MM
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse(periodLayout, s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return PeriodOf(t), nil
}

func (p Period) Year() int           { return p.year }
func (p Period) Month() time.Month   { return p.month }
func (p Period) FirstDay() time.Time { return time.Date(p.year, p.month, 1, 0, 0, 0, 0, time.UTC) }

// Contains compara somente ano e mês
func (p Period) Contains(d Date) bool {
	return d.Year() == p.year && d.Month() == p.month
}

// YearMonth retorna o período no formato de entrada, ex: 2025-09
func (p Period) YearMonth() string {
	return p.FirstDay().Format(periodLayout)
}

// String retorna o primeiro dia do mês, ex: 2025-09-01
func (p Period) String() string {
	return p.FirstDay().Format(time.DateOnly)
}

func (p Period) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.String() + `"`), nil
}
