package model

import "time"

type SalesReport struct {
	Range        string    `json:"range"`
	From         time.Time `json:"from"`
	To           time.Time `json:"to"`
	TotalSales   float64   `json:"totalSales"`
	TotalOrders  int64     `json:"totalOrders"`
	AverageOrder float64   `json:"averageOrder"`
}
