package stats

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courierbot/internal/constants"
	"courierbot/internal/models"
)

// fakeSource - фиктивный источник данных для агрегатора.
type fakeSource struct {
	shifts    []models.Shift
	shiftsErr error
	orders    []models.Order
	ordersErr error
}

func (f *fakeSource) GetShiftsForStats(userID int64) ([]models.Shift, error) {
	return f.shifts, f.shiftsErr
}

func (f *fakeSource) GetOrdersForUser(userID int64) ([]models.Order, error) {
	return f.orders, f.ordersErr
}

func closedShift(start, end time.Time, orders int, earnings float64) models.Shift {
	return models.Shift{
		StartTime:  sql.NullTime{Time: start, Valid: true},
		EndTime:    sql.NullTime{Time: end, Valid: true},
		OrderCount: orders,
		Earnings:   earnings,
	}
}

func TestComputeStatistics_EmptyHistory(t *testing.T) {
	src := &fakeSource{}

	st := ComputeStatistics(src, 1)
	assert.Equal(t, models.Statistics{}, st)
}

func TestComputeStatistics_FetchFailure(t *testing.T) {
	src := &fakeSource{shiftsErr: errors.New("соединение потеряно")}

	st := ComputeStatistics(src, 1)
	assert.Equal(t, models.Statistics{}, st)
}

func TestComputeStatistics_ClosedShifts(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{shifts: []models.Shift{
		closedShift(day.Add(9*time.Hour), day.Add(17*time.Hour), 10, 2500), // 8 часов
		closedShift(day.Add(18*time.Hour), day.Add(22*time.Hour), 4, 1500), // 4 часа
	}}

	st := ComputeStatistics(src, 1)

	assert.Equal(t, 2, st.TotalShifts)
	assert.Equal(t, 14, st.TotalOrders)
	assert.InDelta(t, 4000.0, st.TotalEarnings, 0.001)
	assert.InDelta(t, 2000.0, st.AvgEarnings, 0.001)
	assert.InDelta(t, 7.0, st.AvgOrders, 0.001)
	assert.InDelta(t, 2500.0, st.MaxEarnings, 0.001)
	assert.InDelta(t, 1500.0, st.MinEarnings, 0.001)
	assert.InDelta(t, 12.0, st.TotalHours, 0.001)
	assert.InDelta(t, 6.0, st.AvgShiftDuration, 0.001)
	assert.InDelta(t, 4000.0/12.0, st.EarningsPerHour, 0.001)
}

func TestComputeStatistics_OpenShiftContributesEarningsButNoHours(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{shifts: []models.Shift{
		closedShift(day.Add(9*time.Hour), day.Add(13*time.Hour), 8, 2000), // 4 часа
		{
			StartTime:  sql.NullTime{Time: day.Add(18 * time.Hour), Valid: true},
			OrderCount: 5,
			Earnings:   1000,
		},
	}}

	st := ComputeStatistics(src, 1)

	assert.Equal(t, 2, st.TotalShifts)
	assert.Equal(t, 13, st.TotalOrders)
	assert.InDelta(t, 3000.0, st.TotalEarnings, 0.001)
	assert.InDelta(t, 4.0, st.TotalHours, 0.001)
	assert.InDelta(t, 750.0, st.EarningsPerHour, 0.001)
}

func TestComputeStatistics_NoClosedShiftsZeroRate(t *testing.T) {
	src := &fakeSource{shifts: []models.Shift{
		{OrderCount: 3, Earnings: 900},
	}}

	st := ComputeStatistics(src, 1)

	assert.InDelta(t, 900.0, st.TotalEarnings, 0.001)
	assert.Zero(t, st.TotalHours)
	// Деления на нулевую длительность быть не должно.
	assert.Zero(t, st.EarningsPerHour)
	assert.InDelta(t, 900.0, st.MinEarnings, 0.001)
}

func TestComputeStatistics_Idempotent(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{shifts: []models.Shift{
		closedShift(day.Add(9*time.Hour), day.Add(17*time.Hour), 10, 2500),
	}}

	first := ComputeStatistics(src, 1)
	second := ComputeStatistics(src, 1)
	assert.Equal(t, first, second)
}

func TestComputeDetailedStatistics_Buckets(t *testing.T) {
	monday := time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC)
	tuesday := monday.AddDate(0, 0, 1)
	src := &fakeSource{orders: []models.Order{
		{Time: "07:30", CreatedAt: monday},
		{Time: "11:59", CreatedAt: monday},
		{Time: "13:00", CreatedAt: tuesday},
		{Time: "19:45", CreatedAt: tuesday},
		{Time: "02:10", CreatedAt: tuesday},
	}}

	detailed := ComputeDetailedStatistics(src, 1)

	assert.Equal(t, 2, detailed.TimeOfDay[constants.TIME_OF_DAY_MORNING])
	assert.Equal(t, 1, detailed.TimeOfDay[constants.TIME_OF_DAY_DAY])
	assert.Equal(t, 1, detailed.TimeOfDay[constants.TIME_OF_DAY_EVENING])
	assert.Equal(t, 1, detailed.TimeOfDay[constants.TIME_OF_DAY_NIGHT])

	assert.Equal(t, 2, detailed.Weekday[int(time.Monday)])
	assert.Equal(t, 3, detailed.Weekday[int(time.Tuesday)])
}

func TestComputeDetailedStatistics_EmptyBucketsAbsent(t *testing.T) {
	monday := time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC)
	src := &fakeSource{orders: []models.Order{
		{Time: "08:00", CreatedAt: monday},
	}}

	detailed := ComputeDetailedStatistics(src, 1)

	require.Len(t, detailed.TimeOfDay, 1)
	_, hasEvening := detailed.TimeOfDay[constants.TIME_OF_DAY_EVENING]
	assert.False(t, hasEvening)
	require.Len(t, detailed.Weekday, 1)
}

func TestComputeDetailedStatistics_SkipsMalformedTimes(t *testing.T) {
	monday := time.Date(2024, 3, 18, 10, 0, 0, 0, time.UTC)
	src := &fakeSource{orders: []models.Order{
		{Time: "", CreatedAt: monday},
		{Time: "ab:cd", CreatedAt: monday},
		{Time: "25:00", CreatedAt: monday},
		{Time: "09:15", CreatedAt: monday},
	}}

	detailed := ComputeDetailedStatistics(src, 1)

	assert.Equal(t, 1, detailed.TimeOfDay[constants.TIME_OF_DAY_MORNING])
	require.Len(t, detailed.TimeOfDay, 1)
	// День недели считается по CreatedAt независимо от времени заказа.
	assert.Equal(t, 4, detailed.Weekday[int(time.Monday)])
}

func TestComputeDetailedStatistics_OrderFetchFailure(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	src := &fakeSource{
		shifts:    []models.Shift{closedShift(day.Add(9*time.Hour), day.Add(17*time.Hour), 10, 2500)},
		ordersErr: errors.New("таймаут"),
	}

	detailed := ComputeDetailedStatistics(src, 1)

	// Сводная статистика не страдает от сбоя выборки заказов.
	assert.Equal(t, 1, detailed.TotalShifts)
	assert.Empty(t, detailed.TimeOfDay)
	assert.Empty(t, detailed.Weekday)
}
