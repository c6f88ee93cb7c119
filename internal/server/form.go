package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// formPage posts a single scenario to the compare endpoint and shows the
// HTML report.
const formPage = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Buy vs Rent Calculator</title>
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 560px; margin: 40px auto; color: #2c3e50; }
        label { display: block; margin-top: 12px; }
        input { width: 100%; padding: 6px; }
        button { margin-top: 20px; padding: 8px 16px; }
    </style>
</head>
<body>
<h1>Buy vs Rent Calculator</h1>
<form method="post" action="/api/v1/compare?format=html">
    <label>Property price <input name="property_price" value="750,000,000" required></label>
    <label>Down payment (%) <input name="down_payment_percent" value="20" required></label>
    <label>Interest rate, fixed period (%) <input name="first_period_rate_percent" value="7.92" required></label>
    <label>Interest rate, subsequent (%) <input name="subsequent_rate_percent" value="12" required></label>
    <label>Interest rate, subsequent maximum (%) <input name="subsequent_rate_max_percent" placeholder="optional"></label>
    <label>Mortgage term (years) <input name="term_years" value="5" required></label>
    <label>Fixed period (years) <input name="fixed_period_years" value="3" required></label>
    <label>Monthly rent <input name="monthly_rent" value="5,000,000" required></label>
    <label>Investment return (%) <input name="investment_return_percent" value="6" required></label>
    <label>Start month (YYYY-MM) <input name="start_month" placeholder="optional"></label>
    <button type="submit">Compare</button>
</form>
</body>
</html>
`

func (s *Server) handleForm(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(formPage))
}
