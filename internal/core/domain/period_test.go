package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fintrackhq/expense_tracker_app/internal/core/domain"
)

func TestMonthPeriod_ContainsLastMillisecond(t *testing.T) {
	period := domain.MonthPeriod(2025, time.January, time.UTC)

	lastMilli := time.Date(2025, time.January, 31, 23, 59, 59, 999_000_000, time.UTC)
	assert.True(t, period.Contains(lastMilli), "last millisecond of January must stay in January")

	nextMonth := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, period.Contains(nextMonth), "first instant of February must not be in January")

	firstInstant := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, period.Contains(firstInstant))
	assert.Equal(t, firstInstant, period.Start)
}

func TestMonthPeriod_December(t *testing.T) {
	period := domain.MonthPeriod(2024, time.December, time.UTC)

	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), period.Start)
	assert.True(t, period.Contains(time.Date(2024, time.December, 31, 23, 59, 59, 999_000_000, time.UTC)))
	assert.False(t, period.Contains(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthPeriod_February(t *testing.T) {
	leap := domain.MonthPeriod(2024, time.February, time.UTC)
	assert.True(t, leap.Contains(time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)))

	nonLeap := domain.MonthPeriod(2025, time.February, time.UTC)
	assert.True(t, nonLeap.Contains(time.Date(2025, time.February, 28, 23, 59, 59, 999_000_000, time.UTC)))
	assert.False(t, nonLeap.Contains(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
}

func TestDayPeriod_Bounds(t *testing.T) {
	noon := time.Date(2025, time.June, 10, 12, 34, 56, 0, time.UTC)
	period := domain.DayPeriod(noon)

	assert.Equal(t, time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), period.Start)
	assert.True(t, period.Contains(time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)))
	assert.True(t, period.Contains(time.Date(2025, time.June, 10, 23, 59, 59, 999_000_000, time.UTC)))
	assert.False(t, period.Contains(time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC)))
	assert.False(t, period.Contains(time.Date(2025, time.June, 9, 23, 59, 59, 0, time.UTC)))
}

func TestMonthOf(t *testing.T) {
	inside := time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC)
	period := domain.MonthOf(inside)

	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), period.Start)
	assert.True(t, period.Contains(inside))
}

func TestPreviousMonth_JanuaryRollsBackYear(t *testing.T) {
	january := time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)
	prev := domain.PreviousMonth(january)

	assert.Equal(t, domain.MonthPeriod(2024, time.December, time.UTC), prev)
}

func TestPreviousMonth_MidYear(t *testing.T) {
	june := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	prev := domain.PreviousMonth(june)

	assert.Equal(t, domain.MonthPeriod(2025, time.May, time.UTC), prev)
}
