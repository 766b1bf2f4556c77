package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/portal-go/internal/domain/leave"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := ParseDay(s)
	require.NoError(t, err)
	return parsed
}

func newCalc(holidays, exceptions []string) *Calculator {
	hs := make([]leave.Holiday, len(holidays))
	for i, h := range holidays {
		hs[i] = leave.Holiday{Date: h}
	}
	es := make([]leave.SundayException, len(exceptions))
	for i, e := range exceptions {
		es[i] = leave.SundayException{Date: e}
	}
	return NewCalculator(leave.NewCalendar(hs, es))
}

func TestWorkingDays_SingleHoliday(t *testing.T) {
	calc := newCalc([]string{"2024-12-25"}, nil)

	days, err := calc.WorkingDays(day(t, "2024-12-25"), day(t, "2024-12-25"))
	require.NoError(t, err)
	assert.Equal(t, 0, days)

	_, err = calc.Duration(day(t, "2024-12-25"), day(t, "2024-12-25"), nil)
	assert.ErrorIs(t, err, leave.ErrNonWorkingRange)
}

func TestWorkingDays_FullWeekExcludesSunday(t *testing.T) {
	// 2024-12-16 (Mon) through 2024-12-22 (Sun), no holidays
	calc := newCalc(nil, nil)

	days, err := calc.WorkingDays(day(t, "2024-12-16"), day(t, "2024-12-22"))
	require.NoError(t, err)
	assert.Equal(t, 6, days)
}

func TestWorkingDays_SundayExceptionCounts(t *testing.T) {
	calc := newCalc(nil, []string{"2024-12-22"})

	days, err := calc.WorkingDays(day(t, "2024-12-16"), day(t, "2024-12-22"))
	require.NoError(t, err)
	assert.Equal(t, 7, days)
}

func TestWorkingDays_EndBeforeStart(t *testing.T) {
	calc := newCalc(nil, nil)

	_, err := calc.WorkingDays(day(t, "2024-12-20"), day(t, "2024-12-19"))
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestDuration_SingleDayCustomClock(t *testing.T) {
	calc := newCalc(nil, nil)
	from := day(t, "2024-12-23")

	dur, err := calc.Duration(from, from, &ClockRange{From: "09:00", To: "13:00"})
	require.NoError(t, err)
	assert.Equal(t, 1, dur.WorkingDays)
	assert.Equal(t, 4.0, dur.Hours)
}

func TestDuration_SingleDayDefaultHours(t *testing.T) {
	calc := newCalc(nil, nil)
	from := day(t, "2024-12-23")

	dur, err := calc.Duration(from, from, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, dur.WorkingDays)
	assert.Equal(t, 8.0, dur.Hours)
}

func TestDuration_InvertedClockRangeFloorsAtZero(t *testing.T) {
	calc := newCalc(nil, nil)
	from := day(t, "2024-12-23")

	dur, err := calc.Duration(from, from, &ClockRange{From: "16:00", To: "07:00"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, dur.Hours)
}

func TestDuration_CustomClockIgnoredAcrossMultipleDays(t *testing.T) {
	calc := newCalc(nil, nil)

	dur, err := calc.Duration(day(t, "2024-12-23"), day(t, "2024-12-24"), &ClockRange{From: "09:00", To: "13:00"})
	require.NoError(t, err)
	assert.Equal(t, 2, dur.WorkingDays)
	assert.Equal(t, 16.0, dur.Hours)
}

func TestDuration_HolidayMidRange(t *testing.T) {
	// 2024-12-23 (Mon) to 2024-12-26 (Thu) with Christmas as a holiday;
	// 23, 24 and 26 count.
	calc := newCalc([]string{"2024-12-25"}, nil)

	dur, err := calc.Duration(day(t, "2024-12-23"), day(t, "2024-12-26"), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, dur.WorkingDays)
	assert.Equal(t, 24.0, dur.Hours)
}

func TestClockRangeMinutes(t *testing.T) {
	minutes, err := ClockRange{From: "07:00", To: "16:00"}.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 540, minutes)

	_, err = ClockRange{From: "7am", To: "16:00"}.Minutes()
	assert.Error(t, err)
}
