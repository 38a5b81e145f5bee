package financial

import "storseek-backend/internal/models"

// Snapshot is everything the statistics computation reads. Handlers assemble
// it from the store; tests build it literally.
type Snapshot struct {
	Orders          []models.Order
	DeliveredOrders []models.DeliveredOrder
	Clients         []models.Client
	Expenses        []models.Expense
}

// Statistics is the dashboard payload. Revenue and expenses honor the date
// range; client balances and the order backlog are always current totals.
type Statistics struct {
	TotalRevenue      float64  `json:"totalRevenue"`
	PendingCollection float64  `json:"pendingCollection"`
	TotalExpenses     float64  `json:"totalExpenses"`
	NetProfit         float64  `json:"netProfit"`
	ProfitMargin      *float64 `json:"profitMargin,omitempty"`

	WholesaleClientsCount int     `json:"wholesaleClientsCount"`
	RetailClientsCount    int     `json:"retailClientsCount"`
	WholesaleCreditTotal  float64 `json:"wholesaleCreditTotal"`
	RetailCreditTotal     float64 `json:"retailCreditTotal"`

	ReadyOrdersCount   int     `json:"readyOrdersCount"`
	ReadyOrdersValue   float64 `json:"readyOrdersValue"`
	PendingOrdersCount int     `json:"pendingOrdersCount"`
	PendingOrdersValue float64 `json:"pendingOrdersValue"`
}

// Calculate aggregates a snapshot over [from, to]. Empty bounds are open.
// The margin is omitted when there is no revenue so the caller never divides
// by zero or renders a meaningless percentage.
func Calculate(snap Snapshot, from, to string) Statistics {
	var stats Statistics

	delivered := FilterByRange(snap.DeliveredOrders, from, to,
		func(d models.DeliveredOrder) string { return d.DeliveredAt })
	for _, d := range delivered {
		stats.TotalRevenue += d.PaidAmount.Float()
	}

	for _, c := range snap.Clients {
		stats.PendingCollection += c.Balance.Float()
		switch c.Type {
		case models.ClientTypeWholesale:
			stats.WholesaleClientsCount++
			stats.WholesaleCreditTotal += c.Balance.Float()
		case models.ClientTypeRetail:
			stats.RetailClientsCount++
			stats.RetailCreditTotal += c.Balance.Float()
		}
	}

	expenses := FilterByRange(snap.Expenses, from, to,
		func(e models.Expense) string { return e.Date })
	for _, e := range expenses {
		stats.TotalExpenses += e.Amount.Float()
	}

	stats.NetProfit = stats.TotalRevenue - stats.TotalExpenses
	if stats.TotalRevenue > 0 {
		margin := stats.NetProfit / stats.TotalRevenue * 100
		stats.ProfitMargin = &margin
	}

	for _, o := range snap.Orders {
		switch o.Status {
		case models.OrderStatusReady:
			stats.ReadyOrdersCount++
			stats.ReadyOrdersValue += o.Total.Float()
		case models.OrderStatusPending:
			stats.PendingOrdersCount++
			stats.PendingOrdersValue += o.Total.Float()
		}
	}

	return stats
}
