package inventory

import (
	"encoding/json"
	"testing"

	"storseek-backend/internal/csvio"
	"storseek-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductExportRow(t *testing.T) {
	p := models.Product{
		Name:           "شاحن",
		Category:       "إلكترونيات",
		CostPrice:      50,
		WholesalePrice: 60.5,
		RetailPrice:    75,
		Quantity:       10,
		InfiniteStock:  true,
		IsManufactured: false,
		CreatedAt:      "2025-01-10T08:30:00Z",
	}

	row := productExportRow(p)

	assert.Equal(t, []string{"شاحن", "إلكترونيات", "50", "60.5", "75", "10", "نعم", "لا", "2025-01-10"}, row)
}

func TestExportedCSVReimports(t *testing.T) {
	products := []models.Product{
		{Name: "شاحن", Category: "إلكترونيات", CostPrice: 50, WholesalePrice: 60, RetailPrice: 75, Quantity: 10},
		{Name: "كابل", Category: "إلكترونيات", CostPrice: 5, WholesalePrice: 7, RetailPrice: 9, Quantity: 3},
	}

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, productExportRow(p))
	}
	payload, err := csvio.Marshal(productExportHeaders, rows)
	require.NoError(t, err)

	parsed, err := csvio.Parse(payload)
	require.NoError(t, err)
	rawRows := make([]RawRow, 0, len(parsed))
	for _, r := range parsed {
		rawRows = append(rawRows, RawRow(r))
	}

	result := Reconcile(rawRows, nil, []string{"إلكترونيات"})

	require.Len(t, result.Accepted, 2)
	assert.Empty(t, result.Rejected)
	assert.Equal(t, products[0].Name, result.Accepted[0].Name)
	assert.Equal(t, products[0].CostPrice, result.Accepted[0].CostPrice)
	assert.Equal(t, products[1].Quantity, result.Accepted[1].Quantity)
}

func TestBackupUnmarshalToleratesStringAmounts(t *testing.T) {
	payload := []byte(`{
		"products": [{"id":"p1","name":"شاحن","category":"إلكترونيات","costPrice":50}],
		"categories": ["إلكترونيات"],
		"expenses": [{"id":"e1","description":"إيجار","amount":"500","date":"2025-01-01"}],
		"exportDate": "2025-01-31T10:00:00Z",
		"version": "1.0"
	}`)

	var backup Backup
	require.NoError(t, json.Unmarshal(payload, &backup))

	require.Len(t, backup.Products, 1)
	assert.Equal(t, "شاحن", backup.Products[0].Name)
	require.Len(t, backup.Expenses, 1)
	assert.Equal(t, 500.0, backup.Expenses[0].Amount.Float())
	assert.Nil(t, backup.Orders, "absent collections stay nil so restore can skip them")
}
