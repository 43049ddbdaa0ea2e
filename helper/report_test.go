package helper

import (
	"testing"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)

	from, to, err := ReportWindow("day", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, now, to)

	from, _, err = ReportWindow("week", now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), from)

	from, _, err = ReportWindow("month", now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, -1, 0), from)

	_, _, err = ReportWindow("year", now)
	assert.Error(t, err)
}

func TestAggregateSales(t *testing.T) {
	now := time.Date(2026, 8, 29, 22, 0, 0, 0, time.UTC)
	from := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	orders := []model.Order{
		{Status: constants.STATUS_SERVED, TotalPrice: 25.00, CreatedAt: from.Add(2 * time.Hour)},
		{Status: constants.STATUS_SERVED, TotalPrice: 15.00, CreatedAt: from.Add(5 * time.Hour)},
	}

	report := AggregateSales("day", from, now, orders)
	assert.Equal(t, 40.00, report.TotalSales)
	assert.Equal(t, int64(2), report.TotalOrders)
	assert.Equal(t, 20.00, report.AverageOrder)
}

func TestAggregateSalesSkipsNonServed(t *testing.T) {
	now := time.Date(2026, 8, 29, 22, 0, 0, 0, time.UTC)
	from := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	orders := []model.Order{
		{Status: constants.STATUS_SERVED, TotalPrice: 30.00, CreatedAt: from.Add(time.Hour)},
		{Status: constants.STATUS_PENDING, TotalPrice: 99.00, CreatedAt: from.Add(time.Hour)},
		{Status: constants.STATUS_CANCELLED, TotalPrice: 50.00, CreatedAt: from.Add(time.Hour)},
		{Status: constants.STATUS_READY, TotalPrice: 12.00, CreatedAt: from.Add(time.Hour)},
	}

	report := AggregateSales("day", from, now, orders)
	assert.Equal(t, 30.00, report.TotalSales)
	assert.Equal(t, int64(1), report.TotalOrders)
	assert.Equal(t, 30.00, report.AverageOrder)
}

func TestAggregateSalesHonorsWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 22, 0, 0, 0, time.UTC)
	from := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	orders := []model.Order{
		{Status: constants.STATUS_SERVED, TotalPrice: 20.00, CreatedAt: from.Add(time.Hour)},
		{Status: constants.STATUS_SERVED, TotalPrice: 35.00, CreatedAt: from.AddDate(0, 0, -1)},
	}

	report := AggregateSales("day", from, now, orders)
	assert.Equal(t, 20.00, report.TotalSales)
	assert.Equal(t, int64(1), report.TotalOrders)
}

func TestAggregateSalesEmpty(t *testing.T) {
	now := time.Now()
	report := AggregateSales("day", now.Add(-time.Hour), now, nil)
	assert.Equal(t, 0.0, report.TotalSales)
	assert.Equal(t, int64(0), report.TotalOrders)
	assert.Equal(t, 0.0, report.AverageOrder)
}
