package financial

import (
	"encoding/json"
	"testing"

	"storseek-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateRevenueAndExpensesHonorRange(t *testing.T) {
	snap := Snapshot{
		DeliveredOrders: []models.DeliveredOrder{
			{OrderID: "o1", PaidAmount: 100, DeliveredAt: "2025-01-10T08:00:00Z"},
			{OrderID: "o2", PaidAmount: 250, DeliveredAt: "2025-01-20T08:00:00Z"},
			{OrderID: "o3", PaidAmount: 999, DeliveredAt: "2025-02-05T08:00:00Z"}, // outside
			{OrderID: "o4", PaidAmount: 50, DeliveredAt: ""},                      // broken date
		},
		Expenses: []models.Expense{
			{Amount: 80, Date: "2025-01-15"},
			{Amount: 40, Date: "2025-03-01"}, // outside
		},
	}

	stats := Calculate(snap, "2025-01-01", "2025-01-31")

	assert.Equal(t, 350.0, stats.TotalRevenue)
	assert.Equal(t, 80.0, stats.TotalExpenses)
	assert.Equal(t, 270.0, stats.NetProfit)
	require.NotNil(t, stats.ProfitMargin)
	assert.InDelta(t, 270.0/350.0*100, *stats.ProfitMargin, 1e-9)
}

func TestCalculateClientsAndBacklogIgnoreRange(t *testing.T) {
	snap := Snapshot{
		Clients: []models.Client{
			{Type: models.ClientTypeWholesale, Balance: 500},
			{Type: models.ClientTypeWholesale, Balance: 300},
			{Type: models.ClientTypeRetail, Balance: 120},
		},
		Orders: []models.Order{
			{Status: models.OrderStatusReady, Total: 90, CreatedAt: "2020-01-01T00:00:00Z"},
			{Status: models.OrderStatusPending, Total: 60},
			{Status: models.OrderStatusPending, Total: 40},
			{Status: models.OrderStatusDelivered, Total: 1000},
			{Status: models.OrderStatusCancelled, Total: 500},
		},
	}

	// a narrow range that matches nothing must not affect these numbers
	stats := Calculate(snap, "2025-06-01", "2025-06-02")

	assert.Equal(t, 920.0, stats.PendingCollection)
	assert.Equal(t, 2, stats.WholesaleClientsCount)
	assert.Equal(t, 1, stats.RetailClientsCount)
	assert.Equal(t, 800.0, stats.WholesaleCreditTotal)
	assert.Equal(t, 120.0, stats.RetailCreditTotal)

	assert.Equal(t, 1, stats.ReadyOrdersCount)
	assert.Equal(t, 90.0, stats.ReadyOrdersValue)
	assert.Equal(t, 2, stats.PendingOrdersCount)
	assert.Equal(t, 100.0, stats.PendingOrdersValue)
}

func TestCalculateMarginOmittedWithoutRevenue(t *testing.T) {
	snap := Snapshot{
		Expenses: []models.Expense{{Amount: 75, Date: "2025-01-10"}},
	}

	stats := Calculate(snap, "2025-01-01", "2025-01-31")

	assert.Equal(t, 0.0, stats.TotalRevenue)
	assert.Equal(t, -75.0, stats.NetProfit)
	assert.Nil(t, stats.ProfitMargin)

	payload, err := json.Marshal(stats)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "profitMargin")
}

func TestCalculateTolerantAmounts(t *testing.T) {
	// amounts arriving as strings or garbage decode to numbers or zero,
	// never NaN
	var d models.DeliveredOrder
	require.NoError(t, json.Unmarshal([]byte(`{"paidAmount":"150.5","deliveredAt":"2025-01-10T00:00:00Z"}`), &d))

	var e models.Expense
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"abc","date":"2025-01-10"}`), &e))

	stats := Calculate(Snapshot{
		DeliveredOrders: []models.DeliveredOrder{d},
		Expenses:        []models.Expense{e},
	}, "2025-01-01", "2025-01-31")

	assert.Equal(t, 150.5, stats.TotalRevenue)
	assert.Equal(t, 0.0, stats.TotalExpenses)
	assert.False(t, stats.NetProfit != stats.NetProfit, "net profit must not be NaN")
}
