package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

type SalesReportEmailData struct {
	Date         string
	TotalSales   float64
	TotalOrders  int64
	AverageOrder float64
}

var salesReportTemplate = template.Must(template.New("salesReport").Parse(`
<h2>Sales summary for {{.Date}}</h2>
<ul>
  <li>Total sales: {{printf "%.2f" .TotalSales}}</li>
  <li>Orders served: {{.TotalOrders}}</li>
  <li>Average order: {{printf "%.2f" .AverageOrder}}</li>
</ul>
`))

// SendSalesReportEmail mails the daily summary to the shop owner (async).
func SendSalesReportEmail(to string, data SalesReportEmailData) {
	go func() {
		var body bytes.Buffer
		if err := salesReportTemplate.Execute(&body, data); err != nil {
			log.Printf("Failed to render sales report email: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Daily sales report "+data.Date)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("Failed to send sales report email: %v", err)
		}
	}()
}
