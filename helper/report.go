package helper

import (
	"fmt"
	"log"
	"time"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/robfig/cron/v3"
)

var reportScheduler *cron.Cron

// ReportWindow resolves a report range keyword to its time window.
func ReportWindow(rng string, now time.Time) (time.Time, time.Time, error) {
	switch rng {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, now, nil
	case "week":
		return now.AddDate(0, 0, -7), now, nil
	case "month":
		return now.AddDate(0, -1, 0), now, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("unknown report range %q", rng)
	}
}

// AggregateSales sums served orders inside the window. Pending, preparing,
// ready and cancelled orders never count as revenue.
func AggregateSales(rng string, from, to time.Time, orders []model.Order) model.SalesReport {
	report := model.SalesReport{Range: rng, From: from, To: to}
	for _, order := range orders {
		if order.Status != constants.STATUS_SERVED {
			continue
		}
		if order.CreatedAt.Before(from) || order.CreatedAt.After(to) {
			continue
		}
		report.TotalSales += order.TotalPrice
		report.TotalOrders++
	}
	if report.TotalOrders > 0 {
		report.AverageOrder = report.TotalSales / float64(report.TotalOrders)
	}
	return report
}

// BuildSalesReport loads served orders for the window and aggregates them.
func BuildSalesReport(rng string, now time.Time) (model.SalesReport, error) {
	from, to, err := ReportWindow(rng, now)
	if err != nil {
		return model.SalesReport{}, err
	}

	var orders []model.Order
	if err := database.DB.
		Where("status = ? AND created_at BETWEEN ? AND ?", constants.STATUS_SERVED, from, to).
		Find(&orders).Error; err != nil {
		return model.SalesReport{}, err
	}

	return AggregateSales(rng, from, to, orders), nil
}

func sendDailySalesEmail() {
	to := config.Config("REPORT_EMAIL")
	if to == "" {
		return
	}

	report, err := BuildSalesReport("day", time.Now())
	if err != nil {
		log.Printf("Failed to build daily sales report: %v", err)
		return
	}

	utils.SendSalesReportEmail(to, utils.SalesReportEmailData{
		Date:         report.From.Format("02/01/2006"),
		TotalSales:   report.TotalSales,
		TotalOrders:  report.TotalOrders,
		AverageOrder: report.AverageOrder,
	})
}

// StartReportScheduler emails the day's sales summary at closing time.
func StartReportScheduler() {
	reportScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := reportScheduler.AddFunc("0 22 * * *", sendDailySalesEmail)
	if err != nil {
		log.Printf("Failed to start report scheduler: %v", err)
		return
	}

	reportScheduler.Start()
	log.Println("Sales report scheduler started (22:00 daily)")
}

func StopReportScheduler() {
	if reportScheduler != nil {
		reportScheduler.Stop()
	}
}
